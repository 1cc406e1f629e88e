// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains the food catalog: an in-memory map of basic and
// composite foods persisted to a pipe-delimited text file.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// Sentinel errors for catalog mutations.
var (
	ErrDuplicateFood = errors.New("food already exists")
	ErrUnknownFood   = errors.New("food not found")
)

// Repository holds the food catalog and its backing file.
type Repository struct {
	path  string
	foods map[string]*types.Food
	log   *zap.SugaredLogger
}

// Open creates a repository backed by the given file and loads it if the
// file exists. A missing file is not an error; the catalog starts empty.
func Open(path string, log *zap.SugaredLogger) (*Repository, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := &Repository{
		path:  path,
		foods: make(map[string]*types.Food),
		log:   log,
	}
	if _, err := os.Stat(path); err == nil {
		if err := r.Load(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Len returns the number of catalog entries.
func (r *Repository) Len() int { return len(r.foods) }

// Get returns the food with the given ID, or nil.
func (r *Repository) Get(id string) *types.Food {
	return r.foods[id]
}

// All returns every catalog entry sorted by ID.
func (r *Repository) All() []*types.Food {
	out := make([]*types.Food, 0, len(r.foods))
	for _, f := range r.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Add inserts a new food. Composite foods have their calorie value derived
// from their components before insertion. Duplicate IDs are rejected.
func (r *Repository) Add(f types.Food) error {
	if _, ok := r.foods[f.ID]; ok {
		return fmt.Errorf("adding %s: %w", f.ID, ErrDuplicateFood)
	}
	if f.IsComposite() {
		f.Calories = r.resolveCalories(&f)
	}
	r.foods[f.ID] = &f
	return nil
}

// Update replaces an existing food. Unknown IDs are rejected.
func (r *Repository) Update(f types.Food) error {
	if _, ok := r.foods[f.ID]; !ok {
		return fmt.Errorf("updating %s: %w", f.ID, ErrUnknownFood)
	}
	if f.IsComposite() {
		f.Calories = r.resolveCalories(&f)
	}
	r.foods[f.ID] = &f
	return nil
}

// Remove deletes the food with the given ID if present.
func (r *Repository) Remove(id string) {
	delete(r.foods, id)
}

// Search returns the foods whose keywords satisfy the terms, sorted by ID.
// With matchAll set every term must be present; otherwise one hit suffices.
func (r *Repository) Search(terms []string, matchAll bool) []*types.Food {
	var out []*types.Food
	for _, f := range r.All() {
		if f.MatchesKeywords(terms, matchAll) {
			out = append(out, f)
		}
	}
	return out
}

// resolveCalories sums component calories times servings. Components that
// are not in the catalog contribute nothing.
func (r *Repository) resolveCalories(f *types.Food) float64 {
	var total float64
	for _, c := range f.Components {
		if comp, ok := r.foods[c.FoodID]; ok {
			total += comp.Calories * c.Servings
		}
	}
	return total
}

// Save writes the catalog to the backing file, one food per line, sorted by
// ID. The file is written to a temp path and renamed into place.
func (r *Repository) Save() error {
	tmp := r.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, f := range r.All() {
		if _, err := w.WriteString(encodeFood(f) + "\n"); err != nil {
			file.Close()
			os.Remove(tmp)
			return fmt.Errorf("writing catalog: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("flushing catalog: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing catalog file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing catalog file: %w", err)
	}
	return nil
}

// Load replaces the in-memory catalog with the contents of the backing
// file. Malformed lines are skipped. Composite calories are recomputed
// recursively once every food is present, so nested composites settle
// from the inside out regardless of line order.
func (r *Repository) Load() error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	r.foods = make(map[string]*types.Food)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f, err := decodeFood(line)
		if err != nil {
			r.log.Debugw("skipping malformed catalog line", "line", lineNo, "err", err)
			continue
		}
		r.foods[f.ID] = f
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	r.resolveAllCalories()
	return nil
}

// resolveAllCalories recomputes every composite's calories after a load.
// decodeFood leaves composite calories at zero, and composites may reference
// other composites defined on any line, so each food is resolved recursively:
// a composite's value is only read once its own components have settled. A
// food already on the resolution path contributes nothing, which breaks
// definition cycles instead of recursing forever.
func (r *Repository) resolveAllCalories() {
	settled := make(map[string]bool, len(r.foods))
	var resolve func(id string, visiting map[string]bool) float64
	resolve = func(id string, visiting map[string]bool) float64 {
		f, ok := r.foods[id]
		if !ok || visiting[id] {
			return 0
		}
		if !f.IsComposite() || settled[id] {
			return f.Calories
		}
		visiting[id] = true
		var total float64
		for _, c := range f.Components {
			total += resolve(c.FoodID, visiting) * c.Servings
		}
		delete(visiting, id)
		f.Calories = total
		settled[id] = true
		return total
	}
	for id := range r.foods {
		resolve(id, make(map[string]bool))
	}
}

// encodeFood renders one catalog line:
//
//	B|id|name|kw1,kw2|calories
//	C|id|name|kw1,kw2|compID:servings,compID:servings
func encodeFood(f *types.Food) string {
	keywords := strings.Join(f.Keywords, ",")
	if !f.IsComposite() {
		return fmt.Sprintf("B|%s|%s|%s|%s",
			f.ID, f.Name, keywords, strconv.FormatFloat(f.Calories, 'f', -1, 64))
	}
	parts := make([]string, 0, len(f.Components))
	for _, c := range f.Components {
		parts = append(parts, fmt.Sprintf("%s:%s",
			c.FoodID, strconv.FormatFloat(c.Servings, 'f', -1, 64)))
	}
	return fmt.Sprintf("C|%s|%s|%s|%s", f.ID, f.Name, keywords, strings.Join(parts, ","))
}

// decodeFood parses one catalog line. Composite calories are left at zero;
// the caller recomputes them once the whole file is loaded.
func decodeFood(line string) (*types.Food, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return nil, fmt.Errorf("want 5 fields, got %d", len(parts))
	}

	kind, id, name := parts[0], parts[1], parts[2]
	if id == "" {
		return nil, errors.New("empty food ID")
	}
	keywords := types.SplitKeywords(parts[3])

	switch kind {
	case "B":
		calories, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid calories %q: %w", parts[4], err)
		}
		return &types.Food{ID: id, Name: name, Keywords: keywords, Calories: calories}, nil

	case "C":
		var components []types.Component
		for _, item := range strings.Split(parts[4], ",") {
			cp := strings.SplitN(item, ":", 2)
			if len(cp) != 2 {
				continue
			}
			servings, err := strconv.ParseFloat(cp[1], 64)
			if err != nil {
				continue
			}
			components = append(components, types.Component{FoodID: cp[0], Servings: servings})
		}
		if len(components) == 0 {
			return nil, errors.New("composite food with no parseable components")
		}
		return &types.Food{ID: id, Name: name, Keywords: keywords, Components: components}, nil

	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}
