// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/pdiddy/diet-tracker/internal/undo"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// promptGender reads a gender choice. allowKeep adds a "keep current" option.
func (s *Session) promptGender(current types.Gender, allowKeep bool) (types.Gender, bool) {
	fmt.Fprintln(s.out, "Select your gender:")
	fmt.Fprintln(s.out, "1. Male")
	fmt.Fprintln(s.out, "2. Female")
	fmt.Fprintln(s.out, "3. Other")
	max := 3
	if allowKeep {
		fmt.Fprintln(s.out, "4. Keep current")
		max = 4
	}
	choice, ok := s.promptChoice(fmt.Sprintf("Enter your choice (1-%d): ", max), max)
	if !ok {
		return "", false
	}
	switch choice {
	case 1:
		return types.GenderMale, true
	case 2:
		return types.GenderFemale, true
	case 3:
		return types.GenderOther, true
	default:
		return current, true
	}
}

// promptActivity reads an activity level choice.
func (s *Session) promptActivity() (types.ActivityLevel, bool) {
	fmt.Fprintln(s.out, "Select your activity level:")
	fmt.Fprintln(s.out, "1. Sedentary (little or no exercise)")
	fmt.Fprintln(s.out, "2. Lightly active (light exercise 1-3 days/week)")
	fmt.Fprintln(s.out, "3. Moderately active (moderate exercise 3-5 days/week)")
	fmt.Fprintln(s.out, "4. Very active (hard exercise 6-7 days/week)")
	fmt.Fprintln(s.out, "5. Extremely active (physical job or twice-daily training)")

	choice, ok := s.promptChoice("Enter your choice (1-5): ", 5)
	if !ok {
		return "", false
	}
	levels := []types.ActivityLevel{
		types.ActivitySedentary, types.ActivityLight, types.ActivityModerate,
		types.ActivityVery, types.ActivityExtreme,
	}
	return levels[choice-1], true
}

// promptBirthDate re-prompts until a valid date is entered.
func (s *Session) promptBirthDate() (time.Time, bool) {
	for {
		line, ok := s.readLine("Enter your birth date (YYYY-MM-DD): ")
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse(types.DateFormat, line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid date format. Please use YYYY-MM-DD.")
			continue
		}
		return t, true
	}
}

// createProfile walks first-run profile creation: static stats plus a
// snapshot for the working date. Returns false when input ended early.
func (s *Session) createProfile() bool {
	fmt.Fprintln(s.out, "\n------ Create User Profile ------")

	gender, ok := s.promptGender("", false)
	if !ok {
		return false
	}
	height, ok := s.promptFloat("Enter your height in centimeters: ",
		"Invalid height. Please enter a positive number.",
		func(f float64) bool { return f > 0 })
	if !ok {
		return false
	}
	birth, ok := s.promptBirthDate()
	if !ok {
		return false
	}
	weight, ok := s.promptFloat("Enter your current weight in kilograms: ",
		"Invalid weight. Please enter a positive number.",
		func(f float64) bool { return f > 0 })
	if !ok {
		return false
	}
	activity, ok := s.promptActivity()
	if !ok {
		return false
	}

	p := types.Profile{
		Gender:    gender,
		HeightCm:  height,
		BirthDate: birth,
		Method:    "harris_benedict",
	}
	p.SetSnapshot(types.DailySnapshot{Date: s.Date, WeightKg: weight, Activity: activity})
	s.Profiles.Set(p)
	fmt.Fprintln(s.out, "Profile created successfully!")
	return true
}

// manageProfile runs the profile sub-menu.
func (s *Session) manageProfile() {
	for {
		fmt.Fprintln(s.out, "\n------ Manage Profile ------")

		if p := s.Profiles.Get(); p != nil {
			asOf, err := time.Parse(types.DateFormat, s.Date)
			if err != nil {
				asOf = s.now()
			}
			fmt.Fprintf(s.out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(s.out, "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(s.out, "Birth Date: %s\n", p.BirthDate.Format(types.DateFormat))
			fmt.Fprintf(s.out, "Age: %d years\n", p.Age(asOf))
			if snap := p.Snapshot(s.Date); snap != nil {
				fmt.Fprintf(s.out, "Current Weight: %.1f kg\n", snap.WeightKg)
				fmt.Fprintf(s.out, "Activity Level: %s\n", snap.Activity)
			}
			fmt.Fprintf(s.out, "Calculation Method: %s\n", p.Method)
		} else {
			fmt.Fprintln(s.out, "No profile exists!")
		}

		fmt.Fprintln(s.out, "\n1. Update Basic Profile")
		fmt.Fprintln(s.out, "2. Update Today's Data")
		fmt.Fprintln(s.out, "3. Change Calculation Method")
		fmt.Fprintln(s.out, "4. Back to Main Menu")

		choice, ok := s.promptChoice("Enter your choice (1-4): ", 4)
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.updateBasicProfile()
		case 2:
			s.updateSnapshot()
		case 3:
			s.changeMethod()
		case 4:
			return
		}
	}
}

// updateBasicProfile edits the static profile fields, keeping current
// values on blank input.
func (s *Session) updateBasicProfile() {
	fmt.Fprintln(s.out, "\n------ Update Basic Profile ------")

	current := s.Profiles.Get()
	if current == nil {
		fmt.Fprintln(s.out, "No profile exists! Creating a new one.")
		s.createProfile()
		return
	}

	gender, ok := s.promptGender(current.Gender, true)
	if !ok {
		return
	}

	height := current.HeightCm
	fmt.Fprintf(s.out, "Current height: %.1f cm\n", current.HeightCm)
	line, ok := s.readLine("Enter your height in centimeters (blank to keep current): ")
	if !ok {
		return
	}
	if line != "" {
		if h, err := strconv.ParseFloat(line, 64); err == nil && h > 0 {
			height = h
		} else {
			fmt.Fprintln(s.out, "Invalid height. Keeping current height.")
		}
	}

	birth := current.BirthDate
	fmt.Fprintf(s.out, "Current birth date: %s\n", current.BirthDate.Format(types.DateFormat))
	line, ok = s.readLine("Enter your birth date (YYYY-MM-DD) (blank to keep current): ")
	if !ok {
		return
	}
	if line != "" {
		if t, err := time.Parse(types.DateFormat, line); err == nil {
			birth = t
		} else {
			fmt.Fprintln(s.out, "Invalid date format. Keeping current birth date.")
		}
	}

	updated := types.Profile{
		Gender:    gender,
		HeightCm:  height,
		BirthDate: birth,
		Method:    current.Method,
		Snapshots: append([]types.DailySnapshot(nil), current.Snapshots...),
	}
	cmd := &undo.SetProfile{Profiles: s.Profiles, Profile: updated}
	if err := s.Undo.Do(cmd); err != nil {
		fmt.Fprintf(s.out, "Error updating profile: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Profile updated successfully!")
}

// updateSnapshot records the working date's weight and activity level.
func (s *Session) updateSnapshot() {
	fmt.Fprintln(s.out, "\n------ Update Today's Data ------")

	p := s.Profiles.Get()
	if p == nil {
		fmt.Fprintln(s.out, "No profile exists! Please create a profile first.")
		return
	}
	if snap := p.Snapshot(s.Date); snap != nil {
		fmt.Fprintf(s.out, "Current weight: %.1f kg\n", snap.WeightKg)
	}

	weight, ok := s.promptFloat("Enter your weight in kilograms: ",
		"Invalid weight. Please enter a positive number.",
		func(f float64) bool { return f > 0 })
	if !ok {
		return
	}
	activity, ok := s.promptActivity()
	if !ok {
		return
	}

	cmd := &undo.SetSnapshot{
		Profiles: s.Profiles,
		Snapshot: types.DailySnapshot{Date: s.Date, WeightKg: weight, Activity: activity},
	}
	if err := s.Undo.Do(cmd); err != nil {
		fmt.Fprintf(s.out, "Error updating daily data: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Daily data updated successfully!")
}

// changeMethod switches the profile's energy calculation method.
func (s *Session) changeMethod() {
	fmt.Fprintln(s.out, "\n------ Change Calculation Method ------")

	p := s.Profiles.Get()
	if p == nil {
		fmt.Fprintln(s.out, "No profile exists! Please create a profile first.")
		return
	}

	names := s.Energy.Names()
	fmt.Fprintln(s.out, "Available calculation methods:")
	for i, name := range names {
		c := s.Energy.Get(name)
		fmt.Fprintf(s.out, "%d. %s - %s\n", i+1, c.Name(), c.Description())
	}
	fmt.Fprintf(s.out, "Current method: %s\n", p.Method)

	choice, ok := s.promptChoice("Enter your choice: ", len(names))
	if !ok {
		return
	}
	p.Method = names[choice-1]
	fmt.Fprintf(s.out, "Calculation method changed to: %s\n", p.Method)
}

// viewStats prints the working date's target, consumption, and weight history.
func (s *Session) viewStats() {
	fmt.Fprintln(s.out, "\n------ View Statistics ------")

	p := s.Profiles.Get()
	if p == nil {
		fmt.Fprintln(s.out, "No profile exists! Please create a profile first.")
		return
	}

	target := s.Energy.Target(p, s.Date)
	consumed := s.Diary.TotalCalories(s.Date, s.Catalog.Get)

	fmt.Fprintf(s.out, "Statistics for %s\n", s.Date)
	fmt.Fprintf(s.out, "Target Calories: %.1f\n", target)
	fmt.Fprintf(s.out, "Total Calories Consumed: %.1f\n", consumed)
	fmt.Fprintf(s.out, "Difference: %.1f\n", consumed-target)

	if len(p.Snapshots) > 0 {
		fmt.Fprintln(s.out, "\nWeight History:")
		history := append([]types.DailySnapshot(nil), p.Snapshots...)
		sort.Slice(history, func(i, j int) bool { return history[i].Date < history[j].Date })
		for _, snap := range history {
			fmt.Fprintf(s.out, "%s: %.1f kg\n", snap.Date, snap.WeightKg)
		}
	}
}
