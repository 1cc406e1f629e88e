// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestMatchesKeywords(t *testing.T) {
	f := Food{Keywords: []string{"milk", "dairy", "drink"}}

	tests := []struct {
		name     string
		terms    []string
		matchAll bool
		want     bool
	}{
		{"any with one hit", []string{"dairy", "fruit"}, false, true},
		{"any with no hits", []string{"fruit", "meat"}, false, false},
		{"all present", []string{"milk", "drink"}, true, true},
		{"all with one missing", []string{"milk", "fruit"}, true, false},
		{"case insensitive", []string{"DAIRY"}, false, true},
		{"empty terms match", nil, false, true},
		{"empty terms match all mode", nil, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.MatchesKeywords(tt.terms, tt.matchAll); got != tt.want {
				t.Errorf("MatchesKeywords(%v, %v) = %v, want %v", tt.terms, tt.matchAll, got, tt.want)
			}
		})
	}
}

func TestNormalizeKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lowercases and sorts", []string{"Fruit", "apple"}, []string{"apple", "fruit"}},
		{"trims and drops empties", []string{" apple ", "", "  "}, []string{"apple"}},
		{"deduplicates", []string{"apple", "APPLE", "apple"}, []string{"apple"}},
		{"nil in nil out", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKeywords(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeKeywords(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords("Apple, fruit ,,SNACK")
	want := []string{"apple", "fruit", "snack"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitKeywords = %v, want %v", got, want)
	}
}

func TestIsComposite(t *testing.T) {
	basic := Food{ID: "apple", Calories: 95}
	if basic.IsComposite() {
		t.Error("basic food reported composite")
	}
	composite := Food{ID: "pbj", Components: []Component{{FoodID: "bread", Servings: 2}}}
	if !composite.IsComposite() {
		t.Error("composite food reported basic")
	}
}

func TestProfileAge(t *testing.T) {
	p := Profile{BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{"after birthday", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), 36},
		{"on birthday", time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), 36},
		{"before birthday", time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Age(tt.asOf); got != tt.want {
				t.Errorf("Age(%v) = %d, want %d", tt.asOf, got, tt.want)
			}
		})
	}
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLight, 1.375},
		{ActivityModerate, 1.55},
		{ActivityVery, 1.725},
		{ActivityExtreme, 1.9},
		{ActivityLevel("unknown"), 1.2},
	}
	for _, tt := range tests {
		if got := tt.level.Multiplier(); got != tt.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestProfileSnapshots(t *testing.T) {
	var p Profile

	p.SetSnapshot(DailySnapshot{Date: "2026-08-25", WeightKg: 80})
	p.SetSnapshot(DailySnapshot{Date: "2026-08-26", WeightKg: 79.5})
	p.SetSnapshot(DailySnapshot{Date: "2026-08-25", WeightKg: 80.2})

	if len(p.Snapshots) != 2 {
		t.Fatalf("snapshots = %d, want 2 (same date replaces)", len(p.Snapshots))
	}
	if snap := p.Snapshot("2026-08-25"); snap == nil || snap.WeightKg != 80.2 {
		t.Errorf("Snapshot(2026-08-25) = %+v, want replaced weight", snap)
	}
	if p.Snapshot("2020-01-01") != nil {
		t.Error("Snapshot for unknown date != nil")
	}

	p.RemoveSnapshot("2026-08-25")
	if len(p.Snapshots) != 1 || p.Snapshot("2026-08-25") != nil {
		t.Errorf("snapshots after remove = %+v", p.Snapshots)
	}
}

func TestConfigDefaults(t *testing.T) {
	var c TrackerConfig
	c.ApplyDefaults()

	want := DefaultConfig()
	if !reflect.DeepEqual(c, want) {
		t.Errorf("ApplyDefaults on zero config = %+v, want %+v", c, want)
	}

	// Preset fields survive.
	c = TrackerConfig{Storage: StorageConfig{DataDir: "/var/lib/diet"}}
	c.ApplyDefaults()
	if c.Storage.DataDir != "/var/lib/diet" {
		t.Errorf("DataDir = %s, want preset value kept", c.Storage.DataDir)
	}
	if c.Storage.FoodsFile != "foods.txt" {
		t.Errorf("FoodsFile = %s, want default filled", c.Storage.FoodsFile)
	}
}

func TestStoragePaths(t *testing.T) {
	c := StorageConfig{DataDir: "data", FoodsFile: "foods.txt", LogsFile: "logs.txt", ProfileFile: "profile.txt"}

	if got := c.FoodsPath(); got != filepath.Join("data", "foods.txt") {
		t.Errorf("FoodsPath = %s", got)
	}
	if got := c.LogsPath(); got != filepath.Join("data", "logs.txt") {
		t.Errorf("LogsPath = %s", got)
	}
	if got := c.ProfilePath(); got != filepath.Join("data", "profile.txt") {
		t.Errorf("ProfilePath = %s", got)
	}
}
