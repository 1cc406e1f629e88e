// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/diet-tracker/pkg/types"

// seedFood is a compact literal form for the starter catalog.
type seedFood struct {
	id       string
	name     string
	keywords string
	calories float64
}

// starterFoods is the basic catalog written on first run.
var starterFoods = []seedFood{
	// Dairy
	{"milk_whole", "Whole Milk (1 cup)", "milk,dairy,drink", 150},
	{"milk_skim", "Skim Milk (1 cup)", "milk,dairy,drink,skim", 90},
	{"cheese_cheddar", "Cheddar Cheese (1 oz)", "cheese,dairy,cheddar", 110},
	{"yogurt_plain", "Plain Yogurt (1 cup)", "yogurt,dairy", 120},

	// Meat and protein
	{"chicken_breast", "Chicken Breast (4 oz)", "chicken,meat,protein", 170},
	{"beef_ground", "Ground Beef 85% (4 oz)", "beef,meat,protein", 240},
	{"eggs", "Eggs (1 large)", "eggs,protein", 70},
	{"tuna", "Tuna (1 can)", "tuna,fish,protein", 180},

	// Fruit
	{"apple", "Apple (medium)", "apple,fruit", 95},
	{"banana", "Banana (medium)", "banana,fruit", 105},
	{"orange", "Orange (medium)", "orange,fruit,citrus", 65},
	{"strawberries", "Strawberries (1 cup)", "strawberry,fruit,berries", 50},

	// Vegetables
	{"broccoli", "Broccoli (1 cup)", "broccoli,vegetable,veggie", 55},
	{"carrot", "Carrot (medium)", "carrot,vegetable,veggie", 25},
	{"spinach", "Spinach (1 cup)", "spinach,vegetable,veggie,leafy", 7},
	{"potato", "Potato (medium)", "potato,vegetable,starchy", 110},

	// Grains and starches
	{"bread_wheat", "Wheat Bread (1 slice)", "bread,grain,wheat", 80},
	{"rice_white", "White Rice (1 cup cooked)", "rice,grain,white", 200},
	{"pasta", "Pasta (1 cup cooked)", "pasta,grain", 220},
	{"oatmeal", "Oatmeal (1 cup cooked)", "oatmeal,grain,breakfast", 160},

	// Other
	{"peanut_butter", "Peanut Butter (2 tbsp)", "peanut,butter,spread", 190},
	{"jelly", "Grape Jelly (1 tbsp)", "jelly,grape,spread", 50},
	{"olive_oil", "Olive Oil (1 tbsp)", "oil,fat", 120},
	{"soda", "Soda (12 oz can)", "soda,drink,sugar", 150},
}

// Seed populates an empty catalog with the starter foods plus two example
// composites, the second nesting the first. It is a no-op on a non-empty
// catalog. Returns the number of foods added.
func (r *Repository) Seed() int {
	if r.Len() > 0 {
		return 0
	}

	for _, s := range starterFoods {
		r.Add(types.Food{
			ID:       s.id,
			Name:     s.name,
			Keywords: types.SplitKeywords(s.keywords),
			Calories: s.calories,
		})
	}

	r.Add(types.Food{
		ID:       "pb_sandwich",
		Name:     "Peanut Butter Sandwich",
		Keywords: types.SplitKeywords("sandwich,peanut butter,lunch"),
		Components: []types.Component{
			{FoodID: "bread_wheat", Servings: 2},
			{FoodID: "peanut_butter", Servings: 1},
		},
	})
	r.Add(types.Food{
		ID:       "pbj_sandwich",
		Name:     "PB&J Sandwich",
		Keywords: types.SplitKeywords("sandwich,peanut butter,jelly,lunch"),
		Components: []types.Component{
			{FoodID: "pb_sandwich", Servings: 1},
			{FoodID: "jelly", Servings: 1},
		},
	})

	return r.Len()
}
