package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Two nutrition record shapes coexist in documents written over time:
//
//	old: { "id", "date", "meals": { "breakfast": {"foods": [...]}, ... },
//	       "water_intake", "total_calories", ... }
//	new: { "id", "date", "meal_type", "food_items": [...], "water" }
//
// Everything downstream works on the new shape only, so the old per-day
// record is split into one canonical entry per meal right here at the load
// boundary.

type legacyFood struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

type legacyMeal struct {
	Foods []legacyFood `json:"foods"`
}

type rawNutritionRecord struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`

	// new shape
	MealType MealType   `json:"meal_type"`
	Items    []FoodItem `json:"food_items"`
	Water    float64    `json:"water"`

	// old shape
	Meals       map[string]legacyMeal `json:"meals"`
	WaterIntake float64               `json:"water_intake"`
}

// normalizeNutritionRecord turns one persisted record of either shape into
// canonical entries. A record is legacy exactly when it carries a meals map.
func normalizeNutritionRecord(raw json.RawMessage) ([]NutritionEntry, error) {
	var rec rawNutritionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("nutrition record: %w", err)
	}

	if rec.Meals == nil {
		entry := NutritionEntry{
			ID:       rec.ID,
			Date:     rec.Date,
			MealType: rec.MealType,
			Items:    rec.Items,
			Water:    rec.Water,
		}
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		return []NutritionEntry{entry}, nil
	}

	// Legacy per-day record: one entry per present meal, in the usual meal
	// order. Day-level water intake is attached to the first emitted entry
	// so the day total is preserved.
	var out []NutritionEntry
	water := rec.WaterIntake
	for _, mt := range []MealType{Breakfast, Lunch, Dinner, Snack} {
		meal, ok := rec.Meals[string(mt)]
		if !ok || len(meal.Foods) == 0 {
			continue
		}
		items := make([]FoodItem, 0, len(meal.Foods))
		for _, f := range meal.Foods {
			items = append(items, FoodItem{
				Name:     f.Name,
				Quantity: f.Quantity,
				Unit:     f.Unit,
				Macros: Macros{
					Calories: f.Calories,
					Protein:  f.Protein,
					Carbs:    f.Carbs,
					Fats:     f.Fats,
					Fiber:    f.Fiber,
					Sugar:    f.Sugar,
					Sodium:   f.Sodium,
				},
			})
		}
		out = append(out, NutritionEntry{
			ID:       uuid.NewString(),
			Date:     rec.Date,
			MealType: mt,
			Items:    items,
			Water:    water,
		})
		water = 0
	}
	return out, nil
}

func normalizeNutrition(raw []json.RawMessage) ([]NutritionEntry, error) {
	out := make([]NutritionEntry, 0, len(raw))
	for _, r := range raw {
		entries, err := normalizeNutritionRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}
