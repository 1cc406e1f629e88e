// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package foodsource provides pluggable external food databases that can be
// queried and imported into the catalog. The local source is a placeholder;
// the sqlite source reads a reference database on disk.
package foodsource

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// ErrNotFound is returned by Lookup when the source has no entry for the ID.
var ErrNotFound = errors.New("food not found in source")

// Source is an external food database.
type Source interface {
	// Lookup fetches a single food by its source-local ID.
	Lookup(ctx context.Context, id string) (*types.Food, error)

	// Search returns foods whose name or keywords match the query.
	Search(ctx context.Context, query string) ([]types.Food, error)

	Name() string
	Description() string
}

// Registry holds the available sources keyed by name.
type Registry struct {
	sources map[string]Source
}

// NewRegistry returns a registry with the local placeholder registered.
func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]Source)}
	r.Register(localSource{})
	return r
}

// Register adds a source under its name.
func (r *Registry) Register(s Source) {
	r.sources[s.Name()] = s
}

// Get returns the source for name.
func (r *Registry) Get(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown food source %q", name)
	}
	return s, nil
}

// Names returns the registered source names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.sources))
	for name := range r.sources {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// localSource is the built-in placeholder: it never resolves anything. It
// exists so the lookup path works before a reference database is configured.
type localSource struct{}

func (localSource) Name() string        { return "local" }
func (localSource) Description() string { return "Local food database (placeholder)" }

func (localSource) Lookup(_ context.Context, id string) (*types.Food, error) {
	return nil, fmt.Errorf("local source lookup %s: %w", id, ErrNotFound)
}

func (localSource) Search(_ context.Context, _ string) ([]types.Food, error) {
	return nil, nil
}
