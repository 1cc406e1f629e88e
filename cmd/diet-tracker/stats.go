// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show target vs consumed calories for a date",
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

		consumed := a.diary.TotalCalories(date, a.catalog.Get)
		target := a.energy.Target(a.profiles.Get(), date)

		fmt.Printf("Date:     %s\n", date)
		fmt.Printf("Consumed: %.1f calories\n", consumed)
		if target > 0 {
			fmt.Printf("Target:   %.1f calories\n", target)
			diff := consumed - target
			if diff > 0 {
				fmt.Printf("Over target by %.1f calories\n", diff)
			} else {
				fmt.Printf("Under target by %.1f calories\n", -diff)
			}
		} else {
			fmt.Println("Target:   unavailable (no profile snapshot for this date)")
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("date", "", "civil date YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(statsCmd)
}
