// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package foodsource

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	if len(names) != 1 || names[0] != "local" {
		t.Fatalf("Names = %v, want [local]", names)
	}

	if _, err := r.Get("local"); err != nil {
		t.Errorf("Get(local) = %v", err)
	}
	if _, err := r.Get("usda"); err == nil {
		t.Error("Get(unknown) succeeded, want error")
	}
}

func TestLocalSource(t *testing.T) {
	src, err := NewRegistry().Get("local")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := src.Lookup(context.Background(), "apple"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup = %v, want ErrNotFound", err)
	}
	foods, err := src.Search(context.Background(), "apple")
	if err != nil || foods != nil {
		t.Errorf("Search = %v, %v, want empty and no error", foods, err)
	}
}

func openTestDB(t *testing.T) *SQLiteSource {
	t.Helper()
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "foodsource.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { src.Close() })
	return src
}

func TestSQLiteLookup(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()

	if err := src.Put(ctx, types.Food{
		ID: "quinoa", Name: "Quinoa (1 cup cooked)",
		Keywords: []string{"quinoa", "grain"}, Calories: 222,
	}); err != nil {
		t.Fatal(err)
	}

	f, err := src.Lookup(ctx, "quinoa")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "Quinoa (1 cup cooked)" || f.Calories != 222 {
		t.Errorf("Lookup = %+v", f)
	}
	if len(f.Keywords) != 2 || f.Keywords[0] != "grain" {
		t.Errorf("keywords = %v, want normalized [grain quinoa]", f.Keywords)
	}

	if _, err := src.Lookup(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(missing) = %v, want ErrNotFound", err)
	}
}

func TestSQLitePutReplaces(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()

	if err := src.Put(ctx, types.Food{ID: "tofu", Name: "Tofu", Calories: 94}); err != nil {
		t.Fatal(err)
	}
	if err := src.Put(ctx, types.Food{ID: "tofu", Name: "Firm Tofu (4 oz)", Calories: 98}); err != nil {
		t.Fatal(err)
	}

	f, err := src.Lookup(ctx, "tofu")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "Firm Tofu (4 oz)" || f.Calories != 98 {
		t.Errorf("Lookup after replace = %+v", f)
	}
}

func TestSQLiteSearch(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()

	seed := []types.Food{
		{ID: "lentils", Name: "Lentils (1 cup cooked)", Keywords: []string{"lentils", "legume", "protein"}, Calories: 230},
		{ID: "chickpeas", Name: "Chickpeas (1 cup cooked)", Keywords: []string{"chickpeas", "legume", "protein"}, Calories: 269},
		{ID: "salmon", Name: "Salmon (4 oz)", Keywords: []string{"salmon", "fish", "protein"}, Calories: 230},
	}
	for _, f := range seed {
		if err := src.Put(ctx, f); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"keyword match sorted by id", "legume", []string{"chickpeas", "lentils"}},
		{"name match", "Salmon", []string{"salmon"}},
		{"case insensitive", "LENTIL", []string{"lentils"}},
		{"no hits", "dessert", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Search(ctx, tt.query)
			if err != nil {
				t.Fatal(err)
			}
			var ids []string
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("Search(%q)[%d] = %s, want %s", tt.query, i, ids[i], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestRegisterSQLiteSource(t *testing.T) {
	r := NewRegistry()
	src := openTestDB(t)
	r.Register(src)

	names := r.Names()
	if len(names) != 2 || names[1] != "sqlite" {
		t.Errorf("Names = %v, want [local sqlite]", names)
	}
}
