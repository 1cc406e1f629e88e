// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/diet-tracker/internal/catalog"
	"github.com/pdiddy/diet-tracker/internal/diary"
	"github.com/pdiddy/diet-tracker/internal/energy"
	"github.com/pdiddy/diet-tracker/internal/profile"
	"github.com/pdiddy/diet-tracker/internal/undo"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// profileInput is the scripted first-run profile creation: male, 180 cm,
// born 1990-05-15, 80 kg, moderately active.
const profileInput = "1\n180\n1990-05-15\n80\n3\n"

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	cat, err := catalog.Open(filepath.Join(dir, "foods.txt"), nil)
	require.NoError(t, err)
	d, err := diary.Open(filepath.Join(dir, "logs.txt"), nil)
	require.NoError(t, err)
	prof, err := profile.Open(filepath.Join(dir, "profile.txt"), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	s := New(cat, d, prof, energy.NewRegistry(""), undo.NewStack(100, nil),
		strings.NewReader(input), &out)
	return s, &out
}

func TestRunSeedsAndCreatesProfile(t *testing.T) {
	s, out := newTestSession(t, profileInput+"11\n")

	require.NoError(t, s.Run())

	assert.Contains(t, out.String(), "Initialized food catalog with 26 starter foods.")
	assert.Contains(t, out.String(), "Profile created successfully!")
	assert.Contains(t, out.String(), "Goodbye!")

	p := s.Profiles.Get()
	require.NotNil(t, p)
	assert.Equal(t, types.GenderMale, p.Gender)
	assert.Equal(t, 180.0, p.HeightCm)
	snap := p.Snapshot(s.Date)
	require.NotNil(t, snap)
	assert.Equal(t, 80.0, snap.WeightKg)
	assert.Equal(t, types.ActivityModerate, snap.Activity)
}

func TestRunSavesOnEndOfInput(t *testing.T) {
	// Input ends during profile creation; the session saves and stops.
	s, _ := newTestSession(t, "1\n180\n")

	require.NoError(t, s.Run())
	assert.Nil(t, s.Profiles.Get())
	assert.Equal(t, 26, s.Catalog.Len(), "catalog still seeded and saved")
}

func TestAddBasicFoodAndLog(t *testing.T) {
	input := profileInput +
		"1\n" + // Manage Foods
		"1\n" + // Add Basic Food
		"quinoa\nQuinoa (1 cup cooked)\nquinoa,grain\n222\n" +
		"3\n" + // back to main menu
		"3\n" + // Log Food Consumption
		"1\n" + // show all foods
		"quinoa\n2\n" +
		"11\n"
	s, out := newTestSession(t, input)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Food added successfully!")
	assert.Contains(t, out.String(), "Food logged successfully!")

	f := s.Catalog.Get("quinoa")
	require.NotNil(t, f)
	assert.Equal(t, 222.0, f.Calories)
	assert.Equal(t, []string{"grain", "quinoa"}, f.Keywords)

	day := s.Diary.Day(s.Date)
	require.NotNil(t, day)
	require.Len(t, day.Entries, 1)
	assert.Equal(t, "quinoa", day.Entries[0].FoodID)
	assert.Equal(t, 2.0, day.Entries[0].Servings)
}

func TestAddCompositeFood(t *testing.T) {
	input := profileInput +
		"1\n" + // Manage Foods
		"2\n" + // Create Composite Food
		"double_pbj\nDouble PB&J\nsandwich,lunch\n" +
		"pbj_sandwich\n2\n" + // component from the seeded catalog
		"\n" + // finish components
		"3\n" +
		"11\n"
	s, out := newTestSession(t, input)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Composite food added successfully!")

	f := s.Catalog.Get("double_pbj")
	require.NotNil(t, f)
	assert.True(t, f.IsComposite())
	assert.Equal(t, 800.0, f.Calories, "2 x pbj_sandwich at 400 each")
}

func TestUndoAndRedoFromMenu(t *testing.T) {
	input := profileInput +
		"3\n1\napple\n2\n" + // log 2 servings of the seeded apple
		"9\n" + // undo
		"10\n" + // redo
		"9\n" + // undo again
		"9\n" + // nothing left to undo
		"11\n"
	s, out := newTestSession(t, input)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Undid: log 2 servings of apple")
	assert.Contains(t, out.String(), "Redid: log 2 servings of apple")
	assert.Contains(t, out.String(), "No commands to undo.")

	day := s.Diary.Day(s.Date)
	if day != nil {
		assert.Empty(t, day.Entries)
	}
}

func TestDeleteLogEntryNeedsConfirmation(t *testing.T) {
	input := profileInput +
		"3\n1\napple\n1\n" + // log the seeded apple
		"4\n" + // View Food Log
		"1\n" + // delete an entry
		"1\n" + // entry number
		"no\n" + // refuse confirmation
		"2\n" + // back to main menu
		"4\n1\n1\nyes\n" + // delete again, confirmed this time
		"11\n"
	s, out := newTestSession(t, input)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Delete cancelled.")
	assert.Contains(t, out.String(), "Food entry deleted successfully!")

	day := s.Diary.Day(s.Date)
	require.NotNil(t, day)
	assert.Empty(t, day.Entries)
}

func TestChangeDate(t *testing.T) {
	input := profileInput +
		"7\n" + // Change Current Date
		"not-a-date\n" +
		"2026-01-15\n" +
		"11\n"
	s, out := newTestSession(t, input)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Invalid date format.")
	assert.Equal(t, "2026-01-15", s.Date)
}

func TestInvalidMenuChoiceReprompts(t *testing.T) {
	s, out := newTestSession(t, profileInput+"99\nabc\n11\n")

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Invalid choice. Please enter a number between 1 and 11.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestViewStats(t *testing.T) {
	input := profileInput +
		"3\n1\napple\n2\n" + // 190 calories
		"6\n" + // View Statistics
		"11\n"
	s, out := newTestSession(t, input)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Total Calories Consumed: 190.0")
	assert.Contains(t, out.String(), "Target Calories:")
	assert.Contains(t, out.String(), "Weight History:")
}

func TestExistingProfileSkipsCreation(t *testing.T) {
	s, out := newTestSession(t, "11\n")
	s.Profiles.Set(types.Profile{
		Gender:   types.GenderFemale,
		HeightCm: 165,
		Method:   "harris_benedict",
	})

	require.NoError(t, s.Run())
	assert.NotContains(t, out.String(), "Let's create one!")
	assert.Contains(t, out.String(), "Goodbye!")
}
