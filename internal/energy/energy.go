// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package energy estimates daily energy expenditure. Calculators implement
// a BMR formula; the target is BMR scaled by the day's activity factor.
package energy

import (
	"sort"
	"time"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// Calculator computes basal metabolic rate from a profile and a day's snapshot.
type Calculator interface {
	// BMR returns the basal metabolic rate in kcal/day.
	BMR(p *types.Profile, s *types.DailySnapshot, asOf time.Time) float64
	Name() string
	Description() string
}

// Registry holds the available calculators keyed by name.
type Registry struct {
	calculators   map[string]Calculator
	defaultMethod string
}

// NewRegistry returns a registry with the built-in calculators registered.
// defaultMethod is used when a lookup names an unknown calculator; an empty
// value means "harris_benedict".
func NewRegistry(defaultMethod string) *Registry {
	if defaultMethod == "" {
		defaultMethod = "harris_benedict"
	}
	r := &Registry{
		calculators:   make(map[string]Calculator),
		defaultMethod: defaultMethod,
	}
	r.Register(harrisBenedict{})
	r.Register(mifflinStJeor{})
	return r
}

// Register adds a calculator under its name.
func (r *Registry) Register(c Calculator) {
	r.calculators[c.Name()] = c
}

// Get returns the calculator for name, falling back to the default method
// for unknown names.
func (r *Registry) Get(name string) Calculator {
	if c, ok := r.calculators[name]; ok {
		return c
	}
	return r.calculators[r.defaultMethod]
}

// Has reports whether a calculator is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.calculators[name]
	return ok
}

// Names returns the registered calculator names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.calculators))
	for name := range r.calculators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Target returns the TDEE target for the profile on the given civil date:
// the profile's method's BMR scaled by that day's activity factor. Without
// a snapshot for the date there is nothing to compute and Target returns 0.
func (r *Registry) Target(p *types.Profile, date string) float64 {
	if p == nil {
		return 0
	}
	snap := p.Snapshot(date)
	if snap == nil {
		return 0
	}
	asOf, err := time.Parse(types.DateFormat, date)
	if err != nil {
		return 0
	}
	bmr := r.Get(p.Method).BMR(p, snap, asOf)
	return bmr * snap.Activity.Multiplier()
}

// harrisBenedict implements the revised (1984) Harris-Benedict equation.
type harrisBenedict struct{}

func (harrisBenedict) Name() string        { return "harris_benedict" }
func (harrisBenedict) Description() string { return "Harris-Benedict Equation (Revised 1984)" }

func (harrisBenedict) BMR(p *types.Profile, s *types.DailySnapshot, asOf time.Time) float64 {
	age := float64(p.Age(asOf))
	male := 88.362 + 13.397*s.WeightKg + 4.799*p.HeightCm - 5.677*age
	female := 447.593 + 9.247*s.WeightKg + 3.098*p.HeightCm - 4.330*age
	switch p.Gender {
	case types.GenderMale:
		return male
	case types.GenderFemale:
		return female
	default:
		return (male + female) / 2
	}
}

// mifflinStJeor implements the Mifflin-St Jeor equation.
type mifflinStJeor struct{}

func (mifflinStJeor) Name() string        { return "mifflin_st_jeor" }
func (mifflinStJeor) Description() string { return "Mifflin-St Jeor Equation" }

func (mifflinStJeor) BMR(p *types.Profile, s *types.DailySnapshot, asOf time.Time) float64 {
	age := float64(p.Age(asOf))
	base := 10*s.WeightKg + 6.25*p.HeightCm - 5*age
	switch p.Gender {
	case types.GenderMale:
		return base + 5
	case types.GenderFemale:
		return base - 161
	default:
		return ((base + 5) + (base - 161)) / 2
	}
}
