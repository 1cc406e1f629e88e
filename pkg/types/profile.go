// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Gender selects the BMR formula variant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel scales BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtreme   ActivityLevel = "extreme"
)

// Multiplier returns the TDEE activity factor for the level. Unknown levels
// fall back to the sedentary factor.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityVery:
		return 1.725
	case ActivityExtreme:
		return 1.9
	default:
		return 1.2
	}
}

// DailySnapshot captures the per-date variable inputs to the energy
// estimate: that day's weight and activity level.
type DailySnapshot struct {
	// Date is the civil date in DateFormat.
	Date string `json:"date" yaml:"date"`

	// WeightKg is the body weight in kilograms.
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`

	// Activity is the day's activity level.
	Activity ActivityLevel `json:"activity" yaml:"activity"`
}

// Profile holds the user's static body stats plus per-date snapshots.
type Profile struct {
	// Gender selects the BMR formula variant.
	Gender Gender `json:"gender" yaml:"gender"`

	// HeightCm is the height in centimeters.
	HeightCm float64 `json:"height_cm" yaml:"height_cm"`

	// BirthDate is used to compute age as of the working date.
	BirthDate time.Time `json:"birth_date" yaml:"birth_date"`

	// Method names the energy calculator to use, e.g. "harris_benedict".
	Method string `json:"method" yaml:"method"`

	// Snapshots holds the per-date weight/activity history, at most one per date.
	Snapshots []DailySnapshot `json:"snapshots" yaml:"snapshots"`
}

// Age returns the user's age in whole years as of the given date.
func (p *Profile) Age(asOf time.Time) int {
	years := asOf.Year() - p.BirthDate.Year()
	// Back off one year if the birthday has not yet occurred in asOf's year.
	anniversary := time.Date(asOf.Year(), p.BirthDate.Month(), p.BirthDate.Day(),
		0, 0, 0, 0, time.UTC)
	if anniversary.After(asOf) {
		years--
	}
	return years
}

// Snapshot returns the snapshot for the given civil date, or nil.
func (p *Profile) Snapshot(date string) *DailySnapshot {
	for i := range p.Snapshots {
		if p.Snapshots[i].Date == date {
			return &p.Snapshots[i]
		}
	}
	return nil
}

// SetSnapshot adds the snapshot or replaces an existing one for the same date.
func (p *Profile) SetSnapshot(s DailySnapshot) {
	for i := range p.Snapshots {
		if p.Snapshots[i].Date == s.Date {
			p.Snapshots[i] = s
			return
		}
	}
	p.Snapshots = append(p.Snapshots, s)
}

// RemoveSnapshot deletes the snapshot for the given date if present.
func (p *Profile) RemoveSnapshot(date string) {
	out := p.Snapshots[:0]
	for _, s := range p.Snapshots {
		if s.Date != date {
			out = append(out, s)
		}
	}
	p.Snapshots = out
}
