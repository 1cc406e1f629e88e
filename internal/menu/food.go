// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/diet-tracker/internal/undo"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// manageFoods runs the food management sub-menu.
func (s *Session) manageFoods() {
	for {
		fmt.Fprintln(s.out, "\n------ Manage Foods ------")
		fmt.Fprintln(s.out, "1. Add Basic Food")
		fmt.Fprintln(s.out, "2. Create Composite Food")
		fmt.Fprintln(s.out, "3. Back to Main Menu")

		choice, ok := s.promptChoice("Enter your choice (1-3): ", 3)
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.addBasicFood()
		case 2:
			s.addCompositeFood()
		case 3:
			return
		}
	}
}

// promptNewFoodID reads a food ID and rejects duplicates.
func (s *Session) promptNewFoodID() (string, bool) {
	id, ok := s.readLine("Enter food ID (no spaces): ")
	if !ok || id == "" {
		return "", false
	}
	if strings.ContainsAny(id, " |") {
		fmt.Fprintln(s.out, "Food IDs may not contain spaces or pipes.")
		return "", false
	}
	if s.Catalog.Get(id) != nil {
		fmt.Fprintf(s.out, "A food with ID %q already exists.\n", id)
		return "", false
	}
	return id, true
}

func (s *Session) addBasicFood() {
	fmt.Fprintln(s.out, "\n------ Add Basic Food ------")

	id, ok := s.promptNewFoodID()
	if !ok {
		return
	}
	name, ok := s.readLine("Enter food name: ")
	if !ok || name == "" {
		return
	}
	keywordsStr, ok := s.readLine("Enter keywords (comma-separated): ")
	if !ok {
		return
	}
	calories, ok := s.promptFloat("Enter calories per serving: ",
		"Invalid calories. Please enter a non-negative number.",
		func(f float64) bool { return f >= 0 })
	if !ok {
		return
	}

	cmd := &undo.AddFood{
		Catalog: s.Catalog,
		Food: types.Food{
			ID:       id,
			Name:     name,
			Keywords: types.SplitKeywords(keywordsStr),
			Calories: calories,
		},
	}
	if err := s.Undo.Do(cmd); err != nil {
		fmt.Fprintf(s.out, "Error adding food: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Food added successfully!")
}

func (s *Session) addCompositeFood() {
	fmt.Fprintln(s.out, "\n------ Create Composite Food ------")

	id, ok := s.promptNewFoodID()
	if !ok {
		return
	}
	name, ok := s.readLine("Enter food name: ")
	if !ok || name == "" {
		return
	}
	keywordsStr, ok := s.readLine("Enter keywords (comma-separated): ")
	if !ok {
		return
	}

	var components []types.Component
	fmt.Fprintln(s.out, "Add components (enter empty food ID to finish):")
	for {
		compID, ok := s.readLine("Enter component food ID: ")
		if !ok || compID == "" {
			break
		}
		if s.Catalog.Get(compID) == nil {
			fmt.Fprintf(s.out, "Food with ID %q doesn't exist.\n", compID)
			continue
		}
		servings, ok := s.promptFloat("Enter number of servings: ",
			"Invalid servings. Please enter a positive number.",
			func(f float64) bool { return f > 0 })
		if !ok {
			break
		}
		components = append(components, types.Component{FoodID: compID, Servings: servings})
	}

	if len(components) == 0 {
		fmt.Fprintln(s.out, "No components added. Cannot create composite food.")
		return
	}

	cmd := &undo.AddFood{
		Catalog: s.Catalog,
		Food: types.Food{
			ID:         id,
			Name:       name,
			Keywords:   types.SplitKeywords(keywordsStr),
			Components: components,
		},
	}
	if err := s.Undo.Do(cmd); err != nil {
		fmt.Fprintf(s.out, "Error adding composite food: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Composite food added successfully!")
}

// viewFoods prints the whole catalog as a table.
func (s *Session) viewFoods() {
	fmt.Fprintln(s.out, "\n------ View Foods ------")
	foods := s.Catalog.All()
	if len(foods) == 0 {
		fmt.Fprintln(s.out, "No foods in catalog.")
		return
	}
	s.renderFoods(foods)
}

func (s *Session) renderFoods(foods []*types.Food) {
	table := tablewriter.NewWriter(s.out)
	table.Header("ID", "Name", "Keywords", "Calories")
	for _, f := range foods {
		table.Append(f.ID, f.Name, strings.Join(f.Keywords, ", "),
			strconv.FormatFloat(f.Calories, 'f', 1, 64))
	}
	table.Render()
}

// searchFoods prompts for keywords and AND/OR mode and returns the matches.
// With no keywords the whole catalog is returned.
func (s *Session) searchFoods() []*types.Food {
	fmt.Fprintln(s.out, "\n------ Search Foods ------")

	keywordsStr, ok := s.readLine("Enter search keywords (comma-separated): ")
	if !ok {
		return nil
	}
	terms := types.SplitKeywords(keywordsStr)
	if len(terms) == 0 {
		fmt.Fprintln(s.out, "No valid keywords entered. Returning all foods.")
		return s.Catalog.All()
	}

	fmt.Fprintln(s.out, "1. Match ANY keyword (OR search)")
	fmt.Fprintln(s.out, "2. Match ALL keywords (AND search)")
	choice, ok := s.promptChoice("Enter your choice (1-2): ", 2)
	if !ok {
		return nil
	}
	matchAll := choice == 2

	results := s.Catalog.Search(terms, matchAll)
	fmt.Fprintf(s.out, "Found %d foods matching your search criteria.\n", len(results))
	return results
}
