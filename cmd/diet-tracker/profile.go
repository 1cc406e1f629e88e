// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/diet-tracker/internal/profile"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile and weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		p := a.profiles.Get()
		if p == nil {
			return profile.ErrNoProfile
		}

		fmt.Printf("Gender:     %s\n", p.Gender)
		fmt.Printf("Height:     %.1f cm\n", p.HeightCm)
		fmt.Printf("Birth date: %s\n", p.BirthDate.Format(types.DateFormat))
		fmt.Printf("Age:        %d\n", p.Age(time.Now()))
		fmt.Printf("Method:     %s\n", p.Method)

		if len(p.Snapshots) == 0 {
			return nil
		}
		snaps := make([]types.DailySnapshot, len(p.Snapshots))
		copy(snaps, p.Snapshots)
		sort.Slice(snaps, func(i, j int) bool { return snaps[i].Date < snaps[j].Date })
		fmt.Println("Weight history:")
		for _, s := range snaps {
			fmt.Printf("  %s  %.1f kg  %s\n", s.Date, s.WeightKg, s.Activity)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		genderFlag, _ := cmd.Flags().GetString("gender")
		height, _ := cmd.Flags().GetFloat64("height")
		birth, _ := cmd.Flags().GetString("birth-date")
		method, _ := cmd.Flags().GetString("method")

		a, err := openApp()
		if err != nil {
			return err
		}

		var p types.Profile
		if cur := a.profiles.Get(); cur != nil {
			p = *cur
		} else {
			p.Method = a.cfg.Energy.DefaultMethod
		}

		if genderFlag != "" {
			gender, err := parseGender(genderFlag)
			if err != nil {
				return err
			}
			p.Gender = gender
		}
		if height > 0 {
			p.HeightCm = height
		}
		if birth != "" {
			bd, err := time.Parse(types.DateFormat, birth)
			if err != nil {
				return fmt.Errorf("parse birth date: %w", err)
			}
			p.BirthDate = bd
		}
		if method != "" {
			if !a.energy.Has(method) {
				return fmt.Errorf("unknown method %q (available: %s)",
					method, strings.Join(a.energy.Names(), ", "))
			}
			p.Method = method
		}

		if p.Gender == "" || p.HeightCm <= 0 || p.BirthDate.IsZero() {
			return errors.New("a new profile needs --gender, --height and --birth-date")
		}

		a.profiles.Set(p)
		if err := a.profiles.Save(); err != nil {
			return err
		}
		fmt.Println("Profile saved")
		return nil
	},
}

var profileSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record weight and activity for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		weight, _ := cmd.Flags().GetFloat64("weight")
		activityFlag, _ := cmd.Flags().GetString("activity")

		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}
		if weight <= 0 {
			return fmt.Errorf("--weight must be positive")
		}
		activity, err := parseActivity(activityFlag)
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		snap := types.DailySnapshot{Date: date, WeightKg: weight, Activity: activity}
		if err := a.profiles.SetSnapshot(snap); err != nil {
			return err
		}
		if err := a.profiles.Save(); err != nil {
			return err
		}
		fmt.Printf("Recorded %.1f kg, %s activity for %s\n", weight, activity, date)
		return nil
	},
}

var profileMethodCmd = &cobra.Command{
	Use:   "method [name]",
	Short: "Show or change the energy calculation method",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		p := a.profiles.Get()
		if p == nil {
			return profile.ErrNoProfile
		}

		if len(args) == 0 {
			fmt.Printf("Current method: %s\n", p.Method)
			fmt.Println("Available methods:")
			for _, name := range a.energy.Names() {
				fmt.Printf("  %s: %s\n", name, a.energy.Get(name).Description())
			}
			return nil
		}

		if !a.energy.Has(args[0]) {
			return fmt.Errorf("unknown method %q (available: %s)",
				args[0], strings.Join(a.energy.Names(), ", "))
		}
		p.Method = args[0]
		a.profiles.Set(*p)
		if err := a.profiles.Save(); err != nil {
			return err
		}
		fmt.Printf("Method set to %s\n", args[0])
		return nil
	},
}

func parseGender(s string) (types.Gender, error) {
	switch types.Gender(s) {
	case types.GenderMale, types.GenderFemale, types.GenderOther:
		return types.Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q (male, female or other)", s)
}

func parseActivity(s string) (types.ActivityLevel, error) {
	switch types.ActivityLevel(s) {
	case types.ActivitySedentary, types.ActivityLight, types.ActivityModerate,
		types.ActivityVery, types.ActivityExtreme:
		return types.ActivityLevel(s), nil
	}
	return "", fmt.Errorf("unknown activity level %q (sedentary, light, moderate, very or extreme)", s)
}

func init() {
	profileSetCmd.Flags().String("gender", "", "male, female or other")
	profileSetCmd.Flags().Float64("height", 0, "height in centimeters")
	profileSetCmd.Flags().String("birth-date", "", "birth date YYYY-MM-DD")
	profileSetCmd.Flags().String("method", "", "energy calculation method")

	profileSnapshotCmd.Flags().String("date", "", "civil date YYYY-MM-DD (default: today)")
	profileSnapshotCmd.Flags().Float64("weight", 0, "body weight in kilograms")
	profileSnapshotCmd.Flags().String("activity", string(types.ActivitySedentary),
		"activity level: sedentary, light, moderate, very or extreme")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileSnapshotCmd, profileMethodCmd)
	rootCmd.AddCommand(profileCmd)
}
