package store

import (
	"time"

	"github.com/google/uuid"
)

const (
	achievementFirstWorkout = "first_workout"
	achievementCalorieCrush = "calorie_crusher"
	achievementWeekStreak   = "week_streak"
	calorieCrusherThreshold = 500.0
	weekStreakThresholdDays = 7
)

func ptr(v float64) *float64 { return &v }

// seedDocument builds the demonstration dataset written on first access:
// one profile, three workouts, one nutrition day, two health snapshots,
// three goals, three achievements and three streak counters.
func seedDocument(now time.Time) *Document {
	today := dayStart(now)

	return &Document{
		SchemaVersion: SchemaVersion,
		Profile: Profile{
			ID:                 uuid.NewString(),
			Name:               "Alex Morgan",
			Email:              "alex@nutrifit.local",
			Age:                29,
			Gender:             "female",
			Height:             168,
			Weight:             71.5,
			TargetWeight:       65,
			ActivityLevel:      ModeratelyActive,
			FitnessGoals:       []string{"lose_weight", "build_endurance"},
			DailyCalorieTarget: 2000,
			DailyWaterTarget:   8,
			JoinedAt:           today.AddDate(0, -2, 0),
			Preferences: Preferences{
				Units:              "metric",
				Theme:              "light",
				EmailNotifications: true,
				PushNotifications:  false,
			},
		},
		Workouts: []Workout{
			{
				ID:          uuid.NewString(),
				Title:       "Morning Run",
				Description: "Easy pace around the park",
				Type:        Cardio,
				Date:        today,
				Duration:    35,
				Exercises: []Exercise{
					{Name: "Running", Duration: 35},
				},
				CaloriesBurned: 320,
			},
			{
				ID:          uuid.NewString(),
				Title:       "Upper Body Strength",
				Description: "Push day",
				Type:        Strength,
				Date:        today.AddDate(0, 0, -1),
				Duration:    50,
				Exercises: []Exercise{
					{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 45},
					{Name: "Overhead Press", Sets: 3, Reps: 10, Weight: 25},
					{Name: "Push Ups", Sets: 3, Reps: 15},
				},
				CaloriesBurned: 280,
				Notes:          "Felt strong on bench",
			},
			{
				ID:             uuid.NewString(),
				Title:          "Yoga Flow",
				Description:    "Evening stretch and mobility",
				Type:           Flexibility,
				Date:           today.AddDate(0, 0, -2),
				Duration:       25,
				Exercises:      []Exercise{{Name: "Vinyasa Flow", Duration: 25}},
				CaloriesBurned: 90,
			},
		},
		Nutrition: []NutritionEntry{
			{
				ID:       uuid.NewString(),
				Date:     today,
				MealType: Breakfast,
				Items: []FoodItem{
					{Name: "Oatmeal", Quantity: 80, Unit: "g", Macros: Macros{Calories: 300, Protein: 10, Carbs: 54, Fats: 5, Fiber: 8, Sugar: 1}},
					{Name: "Banana", Quantity: 1, Unit: "piece", Macros: Macros{Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4, Fiber: 3.1, Sugar: 14}},
				},
				Water: 2,
			},
			{
				ID:       uuid.NewString(),
				Date:     today,
				MealType: Lunch,
				Items: []FoodItem{
					{Name: "Grilled Chicken Salad", Quantity: 350, Unit: "g", Macros: Macros{Calories: 420, Protein: 38, Carbs: 18, Fats: 22, Fiber: 6, Sugar: 5, Sodium: 540}},
				},
				Water: 3,
			},
		},
		Metrics: []HealthMetric{
			{
				ID:               uuid.NewString(),
				Date:             today,
				Weight:           ptr(71.5),
				Steps:            6200,
				RestingHeartRate: 62,
				MaxHeartRate:     171,
				SleepHours:       7.5,
				SleepQuality:     4,
				Mood:             "good",
				EnergyLevel:      7,
			},
			{
				ID:               uuid.NewString(),
				Date:             today.AddDate(0, 0, -1),
				Weight:           ptr(71.8),
				Steps:            8400,
				RestingHeartRate: 63,
				MaxHeartRate:     168,
				SleepHours:       6.8,
				SleepQuality:     3,
				Mood:             "okay",
				EnergyLevel:      6,
			},
		},
		Goals: []Goal{
			withProgress(Goal{
				ID:           uuid.NewString(),
				Title:        "Reach 65 kg",
				Type:         WeightLoss,
				StartValue:   74,
				TargetValue:  65,
				CurrentValue: 71.5,
				Deadline:     today.AddDate(0, 3, 0),
				Status:       GoalActive,
			}),
			withProgress(Goal{
				ID:           uuid.NewString(),
				Title:        "Run 10 km without stopping",
				Type:         Performance,
				TargetValue:  10,
				CurrentValue: 6,
				Deadline:     today.AddDate(0, 2, 0),
				Status:       GoalActive,
			}),
			withProgress(Goal{
				ID:           uuid.NewString(),
				Title:        "Work out 4x per week",
				Type:         Consistency,
				TargetValue:  4,
				CurrentValue: 3,
				Deadline:     today.AddDate(0, 1, 0),
				Status:       GoalActive,
			}),
		},
		Achievements: []Achievement{
			{
				ID:          achievementFirstWorkout,
				Title:       "First Steps",
				Description: "Log your first workout",
				Icon:        "🏃",
			},
			{
				ID:          achievementCalorieCrush,
				Title:       "Calorie Crusher",
				Description: "Burn 500+ calories in a single workout",
				Icon:        "🔥",
			},
			{
				ID:          achievementWeekStreak,
				Title:       "Week Warrior",
				Description: "Work out 7 days in a row",
				Icon:        "📅",
			},
		},
		Streaks: Streaks{
			Workout:   StreakCounter{Current: 3, Longest: 5, LastDay: dateKey(today)},
			Nutrition: StreakCounter{Current: 2, Longest: 9, LastDay: dateKey(today)},
			Water:     StreakCounter{Current: 1, Longest: 4, LastDay: dateKey(today)},
		},
	}
}

func withProgress(g Goal) Goal {
	g.Progress = GoalProgress(g)
	return g
}
