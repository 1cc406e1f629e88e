// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/diet-tracker/internal/catalog"
	"github.com/pdiddy/diet-tracker/internal/diary"
	"github.com/pdiddy/diet-tracker/internal/energy"
	"github.com/pdiddy/diet-tracker/internal/foodsource"
	"github.com/pdiddy/diet-tracker/internal/profile"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// app bundles the opened repositories for one command invocation.
type app struct {
	cfg      types.TrackerConfig
	catalog  *catalog.Repository
	diary    *diary.Repository
	profiles *profile.Repository
	energy   *energy.Registry
	sources  *foodsource.Registry
}

// openApp loads the configuration and every repository.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	cat, err := catalog.Open(cfg.Storage.FoodsPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	d, err := diary.Open(cfg.Storage.LogsPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("opening diary: %w", err)
	}
	prof, err := profile.Open(cfg.Storage.ProfilePath(), logger)
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}

	return &app{
		cfg:      cfg,
		catalog:  cat,
		diary:    d,
		profiles: prof,
		energy:   energy.NewRegistry(cfg.Energy.DefaultMethod),
		sources:  foodsource.NewRegistry(),
	}, nil
}

// resolveDate parses a --date flag value, defaulting to today on empty input.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return time.Now().Format(types.DateFormat), nil
	}
	if _, err := time.Parse(types.DateFormat, flag); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", flag, err)
	}
	return flag, nil
}
