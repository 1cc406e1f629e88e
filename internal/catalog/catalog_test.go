// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

func tempCatalog(t *testing.T) *Repository {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "foods.txt"), nil)
	require.NoError(t, err)
	return r
}

func TestAddAndGet(t *testing.T) {
	r := tempCatalog(t)

	err := r.Add(types.Food{
		ID:       "apple",
		Name:     "Apple (medium)",
		Keywords: []string{"apple", "fruit"},
		Calories: 95,
	})
	require.NoError(t, err)

	f := r.Get("apple")
	require.NotNil(t, f)
	assert.Equal(t, "Apple (medium)", f.Name)
	assert.Equal(t, 95.0, f.Calories)
	assert.False(t, f.IsComposite())

	err = r.Add(types.Food{ID: "apple", Name: "Duplicate"})
	assert.ErrorIs(t, err, ErrDuplicateFood)
}

func TestCompositeCalories(t *testing.T) {
	r := tempCatalog(t)
	require.NoError(t, r.Add(types.Food{ID: "bread", Calories: 80}))
	require.NoError(t, r.Add(types.Food{ID: "peanut_butter", Calories: 190}))

	err := r.Add(types.Food{
		ID:   "pb_sandwich",
		Name: "Peanut Butter Sandwich",
		Components: []types.Component{
			{FoodID: "bread", Servings: 2},
			{FoodID: "peanut_butter", Servings: 1},
		},
	})
	require.NoError(t, err)

	f := r.Get("pb_sandwich")
	require.NotNil(t, f)
	assert.True(t, f.IsComposite())
	assert.Equal(t, 350.0, f.Calories)

	// Nested composite sums through the intermediate food.
	require.NoError(t, r.Add(types.Food{ID: "jelly", Calories: 50}))
	err = r.Add(types.Food{
		ID: "pbj_sandwich",
		Components: []types.Component{
			{FoodID: "pb_sandwich", Servings: 1},
			{FoodID: "jelly", Servings: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, r.Get("pbj_sandwich").Calories)
}

func TestUpdate(t *testing.T) {
	r := tempCatalog(t)
	require.NoError(t, r.Add(types.Food{ID: "soda", Name: "Soda", Calories: 150}))

	err := r.Update(types.Food{ID: "soda", Name: "Diet Soda", Calories: 0})
	require.NoError(t, err)
	assert.Equal(t, "Diet Soda", r.Get("soda").Name)

	err = r.Update(types.Food{ID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownFood)
}

func TestSearch(t *testing.T) {
	r := tempCatalog(t)
	require.NoError(t, r.Add(types.Food{ID: "milk", Keywords: []string{"milk", "dairy", "drink"}}))
	require.NoError(t, r.Add(types.Food{ID: "cheese", Keywords: []string{"cheese", "dairy"}}))
	require.NoError(t, r.Add(types.Food{ID: "soda", Keywords: []string{"soda", "drink"}}))

	tests := []struct {
		name     string
		terms    []string
		matchAll bool
		wantIDs  []string
	}{
		{"any matches either term", []string{"dairy", "soda"}, false, []string{"cheese", "milk", "soda"}},
		{"all requires every term", []string{"dairy", "drink"}, true, []string{"milk"}},
		{"case insensitive", []string{"DAIRY"}, false, []string{"cheese", "milk"}},
		{"no terms matches everything", nil, false, []string{"cheese", "milk", "soda"}},
		{"no hits", []string{"fruit"}, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, f := range r.Search(tt.terms, tt.matchAll) {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.txt")
	r, err := Open(path, nil)
	require.NoError(t, err)

	require.NoError(t, r.Add(types.Food{
		ID: "bread", Name: "Wheat Bread (1 slice)",
		Keywords: []string{"bread", "grain"}, Calories: 80,
	}))
	require.NoError(t, r.Add(types.Food{
		ID: "toast", Name: "Toast",
		Components: []types.Component{{FoodID: "bread", Servings: 1}},
	}))
	require.NoError(t, r.Save())

	loaded, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	bread := loaded.Get("bread")
	require.NotNil(t, bread)
	assert.Equal(t, []string{"bread", "grain"}, bread.Keywords)
	assert.Equal(t, 80.0, bread.Calories)

	toast := loaded.Get("toast")
	require.NotNil(t, toast)
	assert.True(t, toast.IsComposite())
	assert.Equal(t, 80.0, toast.Calories, "composite calories recomputed after load")
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.txt")
	content := "B|apple|Apple|apple,fruit|95\n" +
		"garbage line\n" +
		"B|bad_cal|Bad|kw|not-a-number\n" +
		"X|unknown_kind|Nope|kw|1\n" +
		"B||empty id|kw|10\n" +
		"C|no_components|Nope|kw|\n" +
		"\n" +
		"B|soda|Soda|soda,drink|150\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.NotNil(t, r.Get("apple"))
	assert.NotNil(t, r.Get("soda"))
}

func TestCompositeLoadOrderIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.txt")
	// Composite appears before its component.
	content := "C|toast|Toast|toast|bread:2\n" +
		"B|bread|Bread|bread|80\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 160.0, r.Get("toast").Calories)
}

func TestNestedCompositeLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.txt")
	content := "B|bread_wheat|Wheat Bread (1 slice)|bread,grain|80\n" +
		"B|jelly|Grape Jelly (1 tbsp)|jelly,spread|50\n" +
		"B|peanut_butter|Peanut Butter (2 tbsp)|peanut,spread|190\n" +
		"C|pb_sandwich|Peanut Butter Sandwich|sandwich|bread_wheat:2,peanut_butter:1\n" +
		"C|pbj_sandwich|PB&J Sandwich|sandwich|pb_sandwich:1,jelly:1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Resolution must not depend on map iteration order, so exercise the
	// load repeatedly.
	for i := 0; i < 20; i++ {
		r, err := Open(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 350.0, r.Get("pb_sandwich").Calories)
		assert.Equal(t, 400.0, r.Get("pbj_sandwich").Calories, "load %d", i)
	}
}

func TestSeedSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.txt")
	r, err := Open(path, nil)
	require.NoError(t, err)
	r.Seed()
	require.NoError(t, r.Save())

	loaded, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 26, loaded.Len())
	assert.Equal(t, 350.0, loaded.Get("pb_sandwich").Calories)
	assert.Equal(t, 400.0, loaded.Get("pbj_sandwich").Calories)
}

func TestLoadBreaksDefinitionCycles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.txt")
	content := "B|bread|Bread|bread|80\n" +
		"C|a|A|a|b:1,bread:1\n" +
		"C|b|B|b|a:1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := Open(path, nil)
	require.NoError(t, err)
	// The cyclic reference contributes nothing; the rest still resolves.
	assert.Equal(t, 80.0, r.Get("a").Calories)
}

func TestSeed(t *testing.T) {
	r := tempCatalog(t)

	added := r.Seed()
	assert.Equal(t, 26, added)

	pb := r.Get("pb_sandwich")
	require.NotNil(t, pb)
	assert.Equal(t, 350.0, pb.Calories, "2 bread slices plus peanut butter")

	pbj := r.Get("pbj_sandwich")
	require.NotNil(t, pbj)
	assert.Equal(t, 400.0, pbj.Calories)

	// Seeding a populated catalog is a no-op.
	assert.Equal(t, 0, r.Seed())
	assert.Equal(t, 26, r.Len())
}
