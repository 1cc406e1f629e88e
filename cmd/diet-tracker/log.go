// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the consumption log",
	Long: `Log records and inspects per-date consumption entries. All subcommands
take --date (YYYY-MM-DD) and default to today.`,
}

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a consumption entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		foodID, _ := cmd.Flags().GetString("food")
		servings, _ := cmd.Flags().GetFloat64("servings")

		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}
		if foodID == "" {
			return fmt.Errorf("--food is required")
		}
		if servings <= 0 {
			return fmt.Errorf("servings must be positive")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		if a.catalog.Get(foodID) == nil {
			return fmt.Errorf("food %q not found in catalog", foodID)
		}

		a.diary.Append(date, foodID, servings)
		if err := a.diary.Save(); err != nil {
			return err
		}
		fmt.Printf("Logged %g servings of %s on %s\n", servings, foodID, date)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the log for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		day := a.diary.Day(date)
		if day == nil || len(day.Entries) == 0 {
			fmt.Printf("No food entries for %s\n", date)
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("#", "Food ID", "Name", "Servings", "Calories")
		var total float64
		for i, e := range day.Entries {
			name := "Unknown"
			var calories float64
			if f := a.catalog.Get(e.FoodID); f != nil {
				name = f.Name
				calories = f.Calories * e.Servings
			}
			total += calories
			table.Append(strconv.Itoa(i+1), e.FoodID, name,
				strconv.FormatFloat(e.Servings, 'f', 1, 64),
				strconv.FormatFloat(calories, 'f', 1, 64))
		}
		table.Render()
		fmt.Printf("Total calories: %.1f\n", total)
		return nil
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete an entry by number",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		entryNo, _ := cmd.Flags().GetInt("entry")

		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}
		if entryNo < 1 {
			return fmt.Errorf("--entry must be 1 or greater")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		entry, err := a.diary.RemoveAt(date, entryNo-1)
		if err != nil {
			return err
		}
		if err := a.diary.Save(); err != nil {
			return err
		}
		fmt.Printf("Removed %g servings of %s on %s\n", entry.Servings, entry.FoodID, date)
		return nil
	},
}

func init() {
	logCmd.PersistentFlags().String("date", "", "civil date YYYY-MM-DD (default: today)")

	logAddCmd.Flags().String("food", "", "catalog food ID")
	logAddCmd.Flags().Float64("servings", 0, "number of servings consumed")

	logRemoveCmd.Flags().Int("entry", 0, "entry number as shown by log list (1-based)")

	logCmd.AddCommand(logAddCmd, logListCmd, logRemoveCmd)
	rootCmd.AddCommand(logCmd)
}
