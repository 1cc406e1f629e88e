// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/diet-tracker/internal/menu"
	"github.com/pdiddy/diet-tracker/internal/undo"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu session",
	Long: `Menu starts the interactive numbered-menu loop: manage foods, log
consumption, maintain the profile, view statistics, and undo or redo
actions. Data is saved on exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		stack := undo.NewStack(a.cfg.Undo.Depth, logger)
		s := menu.New(a.catalog, a.diary, a.profiles, a.energy, stack, os.Stdin, os.Stdout)
		return s.Run()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
