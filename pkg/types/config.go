// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// StorageConfig holds the flat-file persistence settings.
type StorageConfig struct {
	// DataDir is the base directory for the data files (default ".").
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// FoodsFile is the catalog file name within DataDir (default "foods.txt").
	FoodsFile string `json:"foods_file" yaml:"foods_file" mapstructure:"foods_file"`

	// LogsFile is the diary file name within DataDir (default "logs.txt").
	LogsFile string `json:"logs_file" yaml:"logs_file" mapstructure:"logs_file"`

	// ProfileFile is the profile file name within DataDir (default "profile.txt").
	ProfileFile string `json:"profile_file" yaml:"profile_file" mapstructure:"profile_file"`
}

// FoodsPath returns the full path to the catalog file.
func (c StorageConfig) FoodsPath() string { return filepath.Join(c.DataDir, c.FoodsFile) }

// LogsPath returns the full path to the diary file.
func (c StorageConfig) LogsPath() string { return filepath.Join(c.DataDir, c.LogsFile) }

// ProfilePath returns the full path to the profile file.
func (c StorageConfig) ProfilePath() string { return filepath.Join(c.DataDir, c.ProfileFile) }

// UndoConfig holds settings for the command stack.
type UndoConfig struct {
	// Depth is the maximum number of undoable commands retained (default 100).
	Depth int `json:"depth" yaml:"depth" mapstructure:"depth"`
}

// EnergyConfig holds settings for energy estimation.
type EnergyConfig struct {
	// DefaultMethod is the calculator used when the profile names none or an
	// unknown one (default "harris_benedict").
	DefaultMethod string `json:"default_method" yaml:"default_method" mapstructure:"default_method"`
}

// SourceConfig holds settings for the external food source.
type SourceConfig struct {
	// Name selects the registered source: "local" or "sqlite" (default "local").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// DBPath is the SQLite reference database path, used by the sqlite source.
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`
}

// ReportConfig holds settings for day report export.
type ReportConfig struct {
	// OutputDir is the directory for generated YAML reports (default "reports").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// TrackerConfig groups the application configuration sections.
type TrackerConfig struct {
	Storage StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`
	Undo    UndoConfig    `json:"undo" yaml:"undo" mapstructure:"undo"`
	Energy  EnergyConfig  `json:"energy" yaml:"energy" mapstructure:"energy"`
	Source  SourceConfig  `json:"source" yaml:"source" mapstructure:"source"`
	Report  ReportConfig  `json:"report" yaml:"report" mapstructure:"report"`
}

// DefaultConfig returns a TrackerConfig with every default applied.
func DefaultConfig() TrackerConfig {
	return TrackerConfig{
		Storage: StorageConfig{
			DataDir:     ".",
			FoodsFile:   "foods.txt",
			LogsFile:    "logs.txt",
			ProfileFile: "profile.txt",
		},
		Undo:   UndoConfig{Depth: 100},
		Energy: EnergyConfig{DefaultMethod: "harris_benedict"},
		Source: SourceConfig{Name: "local", DBPath: "foodsource.db"},
		Report: ReportConfig{OutputDir: "reports"},
	}
}

// ApplyDefaults fills any zero-valued field from DefaultConfig.
func (c *TrackerConfig) ApplyDefaults() {
	d := DefaultConfig()
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = d.Storage.DataDir
	}
	if c.Storage.FoodsFile == "" {
		c.Storage.FoodsFile = d.Storage.FoodsFile
	}
	if c.Storage.LogsFile == "" {
		c.Storage.LogsFile = d.Storage.LogsFile
	}
	if c.Storage.ProfileFile == "" {
		c.Storage.ProfileFile = d.Storage.ProfileFile
	}
	if c.Undo.Depth <= 0 {
		c.Undo.Depth = d.Undo.Depth
	}
	if c.Energy.DefaultMethod == "" {
		c.Energy.DefaultMethod = d.Energy.DefaultMethod
	}
	if c.Source.Name == "" {
		c.Source.Name = d.Source.Name
	}
	if c.Source.DBPath == "" {
		c.Source.DBPath = d.Source.DBPath
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = d.Report.OutputDir
	}
}
