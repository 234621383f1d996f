package services

import (
	"sort"
	"strings"
)

// FoodNutrients holds per-100g values (calories kcal, sodium mg, rest g).
type FoodNutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

type FoodRecord struct {
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Nutrients FoodNutrients `json:"nutrients_per_100g"`
}

// foodTable is the built-in food database. Values are per 100 g.
var foodTable = map[string]FoodRecord{
	"chicken breast":    {Name: "Chicken Breast", Category: "protein", Nutrients: FoodNutrients{Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6}},
	"salmon":            {Name: "Salmon", Category: "protein", Nutrients: FoodNutrients{Calories: 208, Protein: 20, Carbs: 0, Fats: 13, Sodium: 59}},
	"egg":               {Name: "Egg", Category: "protein", Nutrients: FoodNutrients{Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Sodium: 124}},
	"tofu":              {Name: "Tofu", Category: "protein", Nutrients: FoodNutrients{Calories: 76, Protein: 8, Carbs: 1.9, Fats: 4.8, Sodium: 7}},
	"greek yogurt":      {Name: "Greek Yogurt", Category: "dairy", Nutrients: FoodNutrients{Calories: 59, Protein: 10, Carbs: 3.6, Fats: 0.4, Sugar: 3.2, Sodium: 36}},
	"milk":              {Name: "Milk", Category: "dairy", Nutrients: FoodNutrients{Calories: 42, Protein: 3.4, Carbs: 5, Fats: 1, Sugar: 5, Sodium: 44}},
	"brown rice":        {Name: "Brown Rice", Category: "grain", Nutrients: FoodNutrients{Calories: 111, Protein: 2.6, Carbs: 23, Fats: 0.9, Fiber: 1.8}},
	"oatmeal":           {Name: "Oatmeal", Category: "grain", Nutrients: FoodNutrients{Calories: 68, Protein: 2.4, Carbs: 12, Fats: 1.4, Fiber: 1.7}},
	"whole wheat bread": {Name: "Whole Wheat Bread", Category: "grain", Nutrients: FoodNutrients{Calories: 247, Protein: 13, Carbs: 41, Fats: 3.4, Fiber: 7, Sugar: 6, Sodium: 400}},
	"banana":            {Name: "Banana", Category: "fruit", Nutrients: FoodNutrients{Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3, Fiber: 2.6, Sugar: 12}},
	"apple":             {Name: "Apple", Category: "fruit", Nutrients: FoodNutrients{Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2, Fiber: 2.4, Sugar: 10}},
	"blueberries":       {Name: "Blueberries", Category: "fruit", Nutrients: FoodNutrients{Calories: 57, Protein: 0.7, Carbs: 14, Fats: 0.3, Fiber: 2.4, Sugar: 10}},
	"broccoli":          {Name: "Broccoli", Category: "vegetable", Nutrients: FoodNutrients{Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4, Fiber: 2.6, Sugar: 1.7, Sodium: 33}},
	"spinach":           {Name: "Spinach", Category: "vegetable", Nutrients: FoodNutrients{Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4, Fiber: 2.2, Sodium: 79}},
	"sweet potato":      {Name: "Sweet Potato", Category: "vegetable", Nutrients: FoodNutrients{Calories: 86, Protein: 1.6, Carbs: 20, Fats: 0.1, Fiber: 3, Sugar: 4.2, Sodium: 55}},
	"almonds":           {Name: "Almonds", Category: "nuts", Nutrients: FoodNutrients{Calories: 579, Protein: 21, Carbs: 22, Fats: 50, Fiber: 12.5, Sugar: 4.4}},
	"peanut butter":     {Name: "Peanut Butter", Category: "nuts", Nutrients: FoodNutrients{Calories: 588, Protein: 25, Carbs: 20, Fats: 50, Fiber: 6, Sugar: 9, Sodium: 426}},
	"olive oil":         {Name: "Olive Oil", Category: "fat", Nutrients: FoodNutrients{Calories: 884, Fats: 100}},
	"avocado":           {Name: "Avocado", Category: "fat", Nutrients: FoodNutrients{Calories: 160, Protein: 2, Carbs: 9, Fats: 15, Fiber: 7, Sugar: 0.7, Sodium: 7}},
	"pasta":             {Name: "Pasta", Category: "grain", Nutrients: FoodNutrients{Calories: 131, Protein: 5, Carbs: 25, Fats: 1.1, Fiber: 1.8, Sugar: 0.6}},
}

type FoodService struct{}

func NewFoodService() *FoodService { return &FoodService{} }

// Search matches the query as a case-insensitive substring of the food key,
// sorted by name for stable output.
func (s *FoodService) Search(query string) []FoodRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []FoodRecord{}
	for key, rec := range foodTable {
		if q == "" || strings.Contains(key, q) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Analyze scales a food's per-100g nutrient values to the given grams.
// Unknown foods return false.
func (s *FoodService) Analyze(name string, grams float64) (FoodNutrients, bool) {
	rec, ok := foodTable[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FoodNutrients{}, false
	}
	f := grams / 100.0
	n := rec.Nutrients
	return FoodNutrients{
		Calories: n.Calories * f,
		Protein:  n.Protein * f,
		Carbs:    n.Carbs * f,
		Fats:     n.Fats * f,
		Fiber:    n.Fiber * f,
		Sugar:    n.Sugar * f,
		Sodium:   n.Sodium * f,
	}, true
}
