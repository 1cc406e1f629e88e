// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared across diet-tracker:
// the food catalog, the consumption diary, the user profile, and the
// configuration surface.
package types

import (
	"sort"
	"strings"
)

// Component is one ingredient of a composite food: a catalog ID and the
// number of servings of that ingredient per serving of the composite.
type Component struct {
	// FoodID references another catalog entry.
	FoodID string `json:"food_id" yaml:"food_id"`

	// Servings is the quantity of the component, in its own serving units.
	Servings float64 `json:"servings" yaml:"servings"`
}

// Food is a catalog entry. A food with no components is basic and carries
// its own calorie value; a food with components is composite and its
// Calories is the sum of component calories times component servings.
type Food struct {
	// ID is the unique catalog identifier (no spaces, no pipes).
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable label, e.g. "Whole Milk (1 cup)".
	Name string `json:"name" yaml:"name"`

	// Keywords are lowercase search terms. Order is not significant.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Calories is the energy per serving in kcal. For composite foods this
	// is derived from the components, not stored independently.
	Calories float64 `json:"calories" yaml:"calories"`

	// Components lists the ingredients of a composite food. Empty for basic foods.
	Components []Component `json:"components,omitempty" yaml:"components,omitempty"`
}

// IsComposite reports whether the food is defined by components.
func (f *Food) IsComposite() bool {
	return len(f.Components) > 0
}

// MatchesKeywords reports whether the food's keyword set satisfies the
// search terms. With matchAll set every term must be present; otherwise a
// single hit suffices. Matching is exact per keyword and case-insensitive.
func (f *Food) MatchesKeywords(terms []string, matchAll bool) bool {
	if len(terms) == 0 {
		return true
	}
	have := make(map[string]bool, len(f.Keywords))
	for _, k := range f.Keywords {
		have[strings.ToLower(k)] = true
	}
	for _, term := range terms {
		hit := have[strings.ToLower(term)]
		if matchAll && !hit {
			return false
		}
		if !matchAll && hit {
			return true
		}
	}
	return matchAll
}

// NormalizeKeywords lowercases, trims, deduplicates, and sorts a keyword
// list. Empty entries are dropped.
func NormalizeKeywords(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var out []string
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SplitKeywords parses a comma-separated keyword string into a normalized list.
func SplitKeywords(s string) []string {
	return NormalizeKeywords(strings.Split(s, ","))
}
