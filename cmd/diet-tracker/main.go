// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the diet-tracker CLI: a single-user,
// terminal-driven diet tracker over flat text files. The interactive menu
// lives under the menu subcommand; each operation is also exposed as a
// scriptable subcommand (food, log, profile, stats, report).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the process-wide diagnostic logger, configured in the root
// command's PersistentPreRunE. User-facing output goes to stdout directly;
// the logger carries debug detail (skipped lines, command traffic) only.
var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// rootCmd is the base command for the diet-tracker CLI.
var rootCmd = &cobra.Command{
	Use:   "diet-tracker",
	Short: "Track foods, consumption, and calorie targets from the terminal",
	Long: `diet-tracker maintains a food catalog of basic and recipe-style composite
foods, a per-date consumption log, and a user profile used to estimate daily
energy expenditure. Data lives in flat pipe-delimited text files loaded at
startup.

Run "diet-tracker menu" for the interactive session, or use the food, log,
profile, stats, and report subcommands directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := zapcore.WarnLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l.Sugar()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./diet-tracker.yaml or ~/.config/diet-tracker/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("diet-tracker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "diet-tracker"))
		}
	}

	viper.SetEnvPrefix("DIET_TRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig unmarshals the viper state into a TrackerConfig with defaults.
func loadConfig() (types.TrackerConfig, error) {
	var cfg types.TrackerConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
