// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/diet-tracker/internal/undo"
)

// logFood records a consumption entry against the working date.
func (s *Session) logFood() {
	fmt.Fprintln(s.out, "\n------ Log Food Consumption ------")

	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No foods in catalog. Please add foods first.")
		return
	}

	fmt.Fprintln(s.out, "1. Show all foods")
	fmt.Fprintln(s.out, "2. Search foods by keyword")
	choice, ok := s.promptChoice("Enter your choice (1-2): ", 2)
	if !ok {
		return
	}

	foods := s.Catalog.All()
	if choice == 2 {
		foods = s.searchFoods()
	}
	if len(foods) == 0 {
		fmt.Fprintln(s.out, "No foods found.")
		return
	}

	fmt.Fprintln(s.out, "\nAvailable foods:")
	s.renderFoods(foods)

	foodID, ok := s.readLine("Enter food ID: ")
	if !ok {
		return
	}
	if s.Catalog.Get(foodID) == nil {
		fmt.Fprintf(s.out, "Food with ID %q doesn't exist.\n", foodID)
		return
	}
	servings, ok := s.promptFloat("Enter number of servings: ",
		"Invalid servings. Please enter a positive number.",
		func(f float64) bool { return f > 0 })
	if !ok {
		return
	}

	cmd := &undo.AppendLogEntry{
		Diary:    s.Diary,
		Date:     s.Date,
		FoodID:   foodID,
		Servings: servings,
	}
	if err := s.Undo.Do(cmd); err != nil {
		fmt.Fprintf(s.out, "Error logging food: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Food logged successfully!")
}

// viewLog shows the working date's entries with totals and offers deletion.
func (s *Session) viewLog() {
	for {
		fmt.Fprintln(s.out, "\n------ View Food Log ------")

		day := s.Diary.Day(s.Date)
		if day == nil || len(day.Entries) == 0 {
			fmt.Fprintf(s.out, "No food entries for %s\n", s.Date)
			return
		}

		fmt.Fprintf(s.out, "Food log for %s\n", s.Date)
		table := tablewriter.NewWriter(s.out)
		table.Header("#", "Food ID", "Name", "Servings", "Calories")

		var total float64
		for i, e := range day.Entries {
			name := "Unknown"
			var calories float64
			if f := s.Catalog.Get(e.FoodID); f != nil {
				name = f.Name
				calories = f.Calories * e.Servings
			}
			total += calories
			table.Append(strconv.Itoa(i+1), e.FoodID, name,
				strconv.FormatFloat(e.Servings, 'f', 1, 64),
				strconv.FormatFloat(calories, 'f', 1, 64))
		}
		table.Render()

		fmt.Fprintf(s.out, "Total calories: %.1f\n", total)
		if p := s.Profiles.Get(); p != nil {
			target := s.Energy.Target(p, s.Date)
			fmt.Fprintf(s.out, "Target calories: %.1f\n", target)
			fmt.Fprintf(s.out, "Difference: %.1f\n", total-target)
		}

		fmt.Fprintln(s.out, "\n1. Delete a food entry")
		fmt.Fprintln(s.out, "2. Back to main menu")
		choice, ok := s.promptChoice("Enter your choice (1-2): ", 2)
		if !ok || choice == 2 {
			return
		}
		s.deleteLogEntry()
	}
}

// deleteLogEntry removes one entry of the working date after confirmation.
func (s *Session) deleteLogEntry() {
	day := s.Diary.Day(s.Date)
	if day == nil || len(day.Entries) == 0 {
		fmt.Fprintln(s.out, "No food entries to delete.")
		return
	}

	n := len(day.Entries)
	entryNo, ok := s.promptChoice(
		fmt.Sprintf("Enter the entry number to delete (1-%d): ", n), n)
	if !ok {
		return
	}
	index := entryNo - 1

	entry := day.Entries[index]
	name := "Unknown"
	if f := s.Catalog.Get(entry.FoodID); f != nil {
		name = f.Name
	}
	fmt.Fprintf(s.out, "Entry %d: %g servings of %s (%s)\n",
		entryNo, entry.Servings, name, entry.FoodID)

	confirm, ok := s.readLine("Type 'yes' to confirm: ")
	if !ok || !strings.EqualFold(confirm, "yes") {
		fmt.Fprintln(s.out, "Delete cancelled.")
		return
	}

	cmd := &undo.RemoveLogEntry{Diary: s.Diary, Date: s.Date, Index: index}
	if err := s.Undo.Do(cmd); err != nil {
		fmt.Fprintf(s.out, "Error deleting food entry: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Food entry deleted successfully!")
}
