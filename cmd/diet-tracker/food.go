// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdiddy/diet-tracker/internal/foodsource"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food catalog",
	Long: `Food adds, lists, and searches catalog entries. Basic foods carry their
own calorie value; composite foods are defined by components and derive
their calories from them.`,
}

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a basic food",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		name, _ := cmd.Flags().GetString("name")
		keywords, _ := cmd.Flags().GetString("keywords")
		calories, _ := cmd.Flags().GetFloat64("calories")

		if id == "" || name == "" {
			return fmt.Errorf("--id and --name are required")
		}
		if calories < 0 {
			return fmt.Errorf("calories must be non-negative")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		food := types.Food{
			ID:       id,
			Name:     name,
			Keywords: types.SplitKeywords(keywords),
			Calories: calories,
		}
		if err := a.catalog.Add(food); err != nil {
			return err
		}
		if err := a.catalog.Save(); err != nil {
			return err
		}
		fmt.Printf("Added %s (%.1f kcal/serving)\n", id, calories)
		return nil
	},
}

var foodAddCompositeCmd = &cobra.Command{
	Use:   "add-composite",
	Short: "Add a composite food defined by components",
	Long: `Add-composite creates a food whose calories are the sum of its
components. Components are given as repeatable --component id:servings
flags and must already exist in the catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		name, _ := cmd.Flags().GetString("name")
		keywords, _ := cmd.Flags().GetString("keywords")
		componentFlags, _ := cmd.Flags().GetStringArray("component")

		if id == "" || name == "" {
			return fmt.Errorf("--id and --name are required")
		}
		if len(componentFlags) == 0 {
			return fmt.Errorf("at least one --component id:servings is required")
		}

		a, err := openApp()
		if err != nil {
			return err
		}

		var components []types.Component
		for _, spec := range componentFlags {
			parts := strings.SplitN(spec, ":", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid component %q (want id:servings)", spec)
			}
			servings, err := strconv.ParseFloat(parts[1], 64)
			if err != nil || servings <= 0 {
				return fmt.Errorf("invalid servings in component %q", spec)
			}
			if a.catalog.Get(parts[0]) == nil {
				return fmt.Errorf("component food %q not found", parts[0])
			}
			components = append(components, types.Component{FoodID: parts[0], Servings: servings})
		}

		food := types.Food{
			ID:         id,
			Name:       name,
			Keywords:   types.SplitKeywords(keywords),
			Components: components,
		}
		if err := a.catalog.Add(food); err != nil {
			return err
		}
		if err := a.catalog.Save(); err != nil {
			return err
		}
		fmt.Printf("Added composite %s (%.1f kcal/serving)\n", id, a.catalog.Get(id).Calories)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		if a.catalog.Len() == 0 {
			fmt.Println("No foods in catalog.")
			return nil
		}
		renderFoodTable(a.catalog.All())
		return nil
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog by keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, _ := cmd.Flags().GetString("keywords")
		matchAll, _ := cmd.Flags().GetBool("all")

		terms := types.SplitKeywords(keywords)
		if len(terms) == 0 {
			return fmt.Errorf("--keywords is required")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		results := a.catalog.Search(terms, matchAll)
		if len(results) == 0 {
			fmt.Println("No foods matched.")
			return nil
		}
		renderFoodTable(results)
		fmt.Printf("\nFound %d foods.\n", len(results))
		return nil
	},
}

var foodImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import foods from the configured food source",
	Long: `Import queries the configured external food source (see source.name and
source.db_path in the config) and copies matching foods into the catalog.
Foods whose IDs already exist are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		if query == "" {
			return fmt.Errorf("--query is required")
		}

		a, err := openApp()
		if err != nil {
			return err
		}

		if a.cfg.Source.Name == "sqlite" {
			src, err := foodsource.OpenSQLite(a.cfg.Source.DBPath)
			if err != nil {
				return err
			}
			defer src.Close()
			a.sources.Register(src)
		}

		src, err := a.sources.Get(a.cfg.Source.Name)
		if err != nil {
			return err
		}

		foods, err := src.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("querying source %s: %w", src.Name(), err)
		}
		if len(foods) == 0 {
			fmt.Printf("No foods in source %s matched %q.\n", src.Name(), query)
			return nil
		}

		imported, skipped := 0, 0
		for _, f := range foods {
			if err := a.catalog.Add(f); err != nil {
				skipped++
				continue
			}
			imported++
		}
		if imported > 0 {
			if err := a.catalog.Save(); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d foods from %s (%d skipped).\n", imported, src.Name(), skipped)
		return nil
	},
}

func renderFoodTable(foods []*types.Food) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Keywords", "Calories", "Components")
	for _, f := range foods {
		var comps []string
		for _, c := range f.Components {
			comps = append(comps, fmt.Sprintf("%s x%g", c.FoodID, c.Servings))
		}
		table.Append(f.ID, f.Name, strings.Join(f.Keywords, ", "),
			strconv.FormatFloat(f.Calories, 'f', 1, 64), strings.Join(comps, ", "))
	}
	table.Render()
}

func init() {
	foodAddCmd.Flags().String("id", "", "unique food ID (no spaces)")
	foodAddCmd.Flags().String("name", "", "human-readable food name")
	foodAddCmd.Flags().String("keywords", "", "search keywords (comma-separated)")
	foodAddCmd.Flags().Float64("calories", 0, "calories per serving")

	foodAddCompositeCmd.Flags().String("id", "", "unique food ID (no spaces)")
	foodAddCompositeCmd.Flags().String("name", "", "human-readable food name")
	foodAddCompositeCmd.Flags().String("keywords", "", "search keywords (comma-separated)")
	foodAddCompositeCmd.Flags().StringArray("component", nil, "component as id:servings (repeatable)")

	foodSearchCmd.Flags().String("keywords", "", "search keywords (comma-separated)")
	foodSearchCmd.Flags().Bool("all", false, "require every keyword to match (AND search)")

	foodImportCmd.Flags().String("query", "", "search query against the food source")

	foodCmd.AddCommand(foodAddCmd, foodAddCompositeCmd, foodListCmd, foodSearchCmd, foodImportCmd)
	rootCmd.AddCommand(foodCmd)
}
