// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

func testProfile() types.Profile {
	return types.Profile{
		Gender:    types.GenderMale,
		HeightCm:  180,
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Method:    "harris_benedict",
	}
}

func TestSetAndGet(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "profile.txt"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Get() != nil {
		t.Fatal("Get on fresh repository != nil")
	}

	r.Set(testProfile())
	p := r.Get()
	if p == nil || p.HeightCm != 180 {
		t.Fatalf("Get = %+v", p)
	}
}

func TestSetSnapshot(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "profile.txt"), nil)
	if err != nil {
		t.Fatal(err)
	}

	snap := types.DailySnapshot{Date: "2026-08-26", WeightKg: 80, Activity: types.ActivityModerate}
	if err := r.SetSnapshot(snap); !errors.Is(err, ErrNoProfile) {
		t.Errorf("SetSnapshot without profile = %v, want ErrNoProfile", err)
	}

	r.Set(testProfile())
	if err := r.SetSnapshot(snap); err != nil {
		t.Fatal(err)
	}

	// Same date replaces in place.
	snap.WeightKg = 79.5
	if err := r.SetSnapshot(snap); err != nil {
		t.Fatal(err)
	}
	p := r.Get()
	if len(p.Snapshots) != 1 || p.Snapshots[0].WeightKg != 79.5 {
		t.Errorf("snapshots = %+v, want one entry at 79.5", p.Snapshots)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.txt")
	r, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	p := testProfile()
	p.Snapshots = []types.DailySnapshot{
		{Date: "2026-08-25", WeightKg: 80.5, Activity: types.ActivitySedentary},
		{Date: "2026-08-26", WeightKg: 80, Activity: types.ActivityVery},
	}
	r.Set(p)
	if err := r.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("saved lines = %d, want PROFILE plus 2 DAILY", len(lines))
	}
	if lines[0] != "PROFILE|M|180|1990-05-15|harris_benedict" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "DAILY|2026-08-26|80|V" {
		t.Errorf("snapshot line = %q", lines[2])
	}

	loaded, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := loaded.Get()
	if got == nil {
		t.Fatal("loaded profile is nil")
	}
	if got.Gender != types.GenderMale || got.HeightCm != 180 || got.Method != "harris_benedict" {
		t.Errorf("loaded profile = %+v", got)
	}
	snap := got.Snapshot("2026-08-26")
	if snap == nil || snap.WeightKg != 80 || snap.Activity != types.ActivityVery {
		t.Errorf("loaded snapshot = %+v", snap)
	}
}

func TestLoadSkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.txt")
	content := "DAILY|2026-08-20|75|S\n" + // orphan, before the header
		"PROFILE|F|165|1995-03-02|mifflin_st_jeor\n" +
		"DAILY|2026-08-26|62|L\n" +
		"DAILY|bad-date|62|L\n" +
		"DAILY|2026-08-27|heavy|L\n" +
		"UNKNOWN|record\n" +
		"PROFILE|too|few\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := r.Get()
	if p == nil {
		t.Fatal("profile not loaded")
	}
	if p.Gender != types.GenderFemale || p.Method != "mifflin_st_jeor" {
		t.Errorf("profile = %+v", p)
	}
	if len(p.Snapshots) != 1 || p.Snapshots[0].Date != "2026-08-26" {
		t.Errorf("snapshots = %+v, want only the valid one", p.Snapshots)
	}
}

func TestGenderAndActivityCodes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"male", "M", "M"},
		{"female", "F", "F"},
		{"other", "O", "O"},
		{"unknown gender falls back to other", "X", "O"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeGender(decodeGender(tt.in)); got != tt.want {
				t.Errorf("roundtrip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	activities := []struct {
		code string
		want types.ActivityLevel
	}{
		{"S", types.ActivitySedentary},
		{"L", types.ActivityLight},
		{"M", types.ActivityModerate},
		{"V", types.ActivityVery},
		{"E", types.ActivityExtreme},
		{"?", types.ActivitySedentary},
	}
	for _, tt := range activities {
		if got := decodeActivity(tt.code); got != tt.want {
			t.Errorf("decodeActivity(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
