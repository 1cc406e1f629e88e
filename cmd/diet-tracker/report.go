// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/diet-tracker/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a YAML day report",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		outDir, _ := cmd.Flags().GetString("out")

		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		if outDir == "" {
			outDir = a.cfg.Report.OutputDir
		}

		r := report.Build(date, a.diary, a.catalog.Get, a.profiles.Get(), a.energy)
		path, err := report.Write(outDir, r)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("date", "", "civil date YYYY-MM-DD (default: today)")
	reportCmd.Flags().String("out", "", "output directory (default: config report.output_dir)")
	rootCmd.AddCommand(reportCmd)
}
