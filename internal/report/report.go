// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles a day's consumption summary and exports it as YAML.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/diet-tracker/internal/diary"
	"github.com/pdiddy/diet-tracker/internal/energy"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// Row is one resolved consumption entry in a day report.
type Row struct {
	FoodID   string  `yaml:"food_id"`
	Name     string  `yaml:"name"`
	Servings float64 `yaml:"servings"`
	Calories float64 `yaml:"calories"`
}

// ProfileSummary is the profile context included in a day report.
type ProfileSummary struct {
	Gender   types.Gender        `yaml:"gender"`
	Age      int                 `yaml:"age"`
	HeightCm float64             `yaml:"height_cm"`
	WeightKg float64             `yaml:"weight_kg,omitempty"`
	Activity types.ActivityLevel `yaml:"activity,omitempty"`
	Method   string              `yaml:"method"`
}

// DayReport is the exported summary for a single date.
type DayReport struct {
	Date        string          `yaml:"date"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Profile     *ProfileSummary `yaml:"profile,omitempty"`
	Entries     []Row           `yaml:"entries"`
	Consumed    float64         `yaml:"consumed"`
	Target      float64         `yaml:"target"`
	Difference  float64         `yaml:"difference"`
}

// Build assembles the report for date. The profile may be nil; unknown
// foods render as "Unknown" with zero calories, matching the log view.
func Build(date string, d *diary.Repository, lookup func(id string) *types.Food,
	p *types.Profile, reg *energy.Registry) DayReport {

	r := DayReport{
		Date:        date,
		GeneratedAt: time.Now(),
	}

	if day := d.Day(date); day != nil {
		for _, e := range day.Entries {
			row := Row{FoodID: e.FoodID, Name: "Unknown", Servings: e.Servings}
			if f := lookup(e.FoodID); f != nil {
				row.Name = f.Name
				row.Calories = f.Calories * e.Servings
			}
			r.Entries = append(r.Entries, row)
			r.Consumed += row.Calories
		}
	}

	if p != nil {
		asOf, err := time.Parse(types.DateFormat, date)
		if err != nil {
			asOf = time.Now()
		}
		summary := &ProfileSummary{
			Gender:   p.Gender,
			Age:      p.Age(asOf),
			HeightCm: p.HeightCm,
			Method:   p.Method,
		}
		if snap := p.Snapshot(date); snap != nil {
			summary.WeightKg = snap.WeightKg
			summary.Activity = snap.Activity
		}
		r.Profile = summary
		r.Target = reg.Target(p, date)
	}

	r.Difference = r.Consumed - r.Target
	return r
}

// Write marshals the report to YAML at dir/report-<date>.yaml, creating the
// directory if needed, and returns the written path.
func Write(dir string, r DayReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	data, err := yaml.Marshal(&r)
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	path := filepath.Join(dir, "report-"+r.Date+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
