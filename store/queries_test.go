package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// emptyTestStore returns a store with the collections cleared and the clock
// pinned, so window arithmetic is exact.
func emptyTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	s.now = func() time.Time { return now }
	s.doc.Workouts = nil
	s.doc.Nutrition = nil
	s.doc.Metrics = nil
	s.doc.Goals = nil
	require.NoError(t, s.save())
	return s
}

func TestWorkoutStatsWindowFiltering(t *testing.T) {
	now := time.Date(2026, 6, 15, 18, 30, 0, 0, time.Local)
	s := emptyTestStore(t, now)

	for _, w := range []Workout{
		{Title: "today", Type: Cardio, Date: now, Duration: 30, CaloriesBurned: 300},
		{Title: "recent", Type: Strength, Date: now.AddDate(0, 0, -3), Duration: 50, CaloriesBurned: 200},
		{Title: "old", Type: Cardio, Date: now.AddDate(0, 0, -10), Duration: 60, CaloriesBurned: 500},
	} {
		_, err := s.AddWorkout(w)
		require.NoError(t, err)
	}

	stats := s.WorkoutStats(7)
	require.Equal(t, 2, stats.Count, "the 10-day-old workout falls outside the window")
	require.Equal(t, 80, stats.TotalDuration)
	require.Equal(t, 500.0, stats.TotalCalories)
	require.Equal(t, 40.0, stats.AverageDuration)
	require.Equal(t, 250.0, stats.AverageCalories)
	require.Equal(t, map[WorkoutType]int{Cardio: 1, Strength: 1}, stats.CountByType)
}

func TestWorkoutStatsEmptyWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 18, 30, 0, 0, time.Local)
	s := emptyTestStore(t, now)

	stats := s.WorkoutStats(7)
	require.Equal(t, 0, stats.Count)
	require.Equal(t, 0.0, stats.AverageDuration, "no NaN on an empty window")
	require.Equal(t, 0.0, stats.AverageCalories)
	require.Empty(t, stats.CountByType)
}

func TestTodaysNutritionDefaultsToZeroRecord(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local)
	s := emptyTestStore(t, now)

	n := s.TodaysNutrition()
	require.Equal(t, "2026-06-15", n.Date)
	require.NotNil(t, n.Meals)
	require.Empty(t, n.Meals)
	require.Equal(t, Macros{}, n.Totals)
	require.Equal(t, 0.0, n.Water)
}

func TestTodaysNutritionAggregatesMeals(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local)
	s := emptyTestStore(t, now)

	_, err := s.AddNutritionEntry(NutritionEntry{
		MealType: Breakfast,
		Items:    []FoodItem{{Name: "Eggs", Macros: Macros{Calories: 220, Protein: 18}}},
		Water:    2,
	})
	require.NoError(t, err)
	_, err = s.AddNutritionEntry(NutritionEntry{
		MealType: Lunch,
		Items:    []FoodItem{{Name: "Rice Bowl", Macros: Macros{Calories: 540, Protein: 24}}},
		Water:    1,
	})
	require.NoError(t, err)
	// yesterday's meal must not leak into today
	_, err = s.AddNutritionEntry(NutritionEntry{
		Date:     now.AddDate(0, 0, -1),
		MealType: Dinner,
		Items:    []FoodItem{{Name: "Pasta", Macros: Macros{Calories: 700}}},
	})
	require.NoError(t, err)

	n := s.TodaysNutrition()
	require.Len(t, n.Meals, 2)
	require.Equal(t, 760.0, n.Totals.Calories)
	require.Equal(t, 42.0, n.Totals.Protein)
	require.Equal(t, 3.0, n.Water)
}

func TestTodaysMetricsDefault(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.Local)
	s := emptyTestStore(t, now)

	m := s.TodaysMetrics()
	require.Equal(t, dayStart(now), m.Date)
	require.Nil(t, m.Weight)
	require.Zero(t, m.Steps)
}

func TestWorkoutStreak(t *testing.T) {
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.Local)

	t.Run("counts back from today", func(t *testing.T) {
		s := emptyTestStore(t, now)
		for _, offset := range []int{0, -1, -2} {
			_, err := s.AddWorkout(Workout{Title: "w", Type: Cardio, Date: now.AddDate(0, 0, offset)})
			require.NoError(t, err)
		}
		require.Equal(t, 3, s.WorkoutStreak())
	})

	t.Run("still alive when today is unlogged", func(t *testing.T) {
		s := emptyTestStore(t, now)
		for _, offset := range []int{-1, -2} {
			_, err := s.AddWorkout(Workout{Title: "w", Type: Cardio, Date: now.AddDate(0, 0, offset)})
			require.NoError(t, err)
		}
		require.Equal(t, 2, s.WorkoutStreak())
	})

	t.Run("broken by a gap", func(t *testing.T) {
		s := emptyTestStore(t, now)
		for _, offset := range []int{0, -2, -3} {
			_, err := s.AddWorkout(Workout{Title: "w", Type: Cardio, Date: now.AddDate(0, 0, offset)})
			require.NoError(t, err)
		}
		require.Equal(t, 1, s.WorkoutStreak())
	})

	t.Run("zero without workouts", func(t *testing.T) {
		s := emptyTestStore(t, now)
		require.Equal(t, 0, s.WorkoutStreak())
	})
}

func TestProgressData(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	s := emptyTestStore(t, now)

	_, err := s.AddHealthMetric(HealthMetric{Date: now.AddDate(0, 0, -2), Weight: ptr(72.0), Steps: 4000})
	require.NoError(t, err)
	_, err = s.AddHealthMetric(HealthMetric{Date: now.AddDate(0, 0, -1), Steps: 9000}) // no weigh-in
	require.NoError(t, err)
	_, err = s.AddHealthMetric(HealthMetric{Date: now, Weight: ptr(71.4), Steps: 6000})
	require.NoError(t, err)

	weight := s.ProgressData("weight", 30)
	require.Equal(t, []ProgressPoint{
		{Date: "2026-06-13", Value: 72.0},
		{Date: "2026-06-15", Value: 71.4},
	}, weight, "days without a weigh-in are dropped")

	steps := s.ProgressData("steps", 30)
	require.Len(t, steps, 3)
	require.Equal(t, "2026-06-13", steps[0].Date)
	require.Equal(t, 9000.0, steps[1].Value)

	// two workouts on one day collapse into a single per-day point
	for i := 0; i < 2; i++ {
		_, err = s.AddWorkout(Workout{Title: "w", Type: Cardio, Date: now})
		require.NoError(t, err)
	}
	_, err = s.AddWorkout(Workout{Title: "w", Type: Cardio, Date: now.AddDate(0, 0, -1)})
	require.NoError(t, err)

	workouts := s.ProgressData("workouts", 30)
	require.Equal(t, []ProgressPoint{
		{Date: "2026-06-14", Value: 1},
		{Date: "2026-06-15", Value: 2},
	}, workouts)

	require.Empty(t, s.ProgressData("unknown", 30))
}

func TestDashboardComposition(t *testing.T) {
	s, _ := newTestStore(t)

	paused := GoalPaused
	goals := s.Goals()
	_, err := s.UpdateGoal(goals[0].ID, GoalPatch{Status: &paused})
	require.NoError(t, err)

	d := s.Dashboard()
	require.Len(t, d.ActiveGoals, len(goals)-1, "paused goals stay off the dashboard")
	require.Equal(t, len(s.Workouts()), d.Summary.TotalWorkouts)
	require.Equal(t, s.Profile().Weight, d.Summary.CurrentWeight)
	require.Equal(t, s.Profile().TargetWeight, d.Summary.TargetWeight)
	require.LessOrEqual(t, len(d.RecentWorkouts), 5)
	for i := 1; i < len(d.RecentWorkouts); i++ {
		require.False(t, d.RecentWorkouts[i-1].Date.Before(d.RecentWorkouts[i].Date),
			"recent workouts must be newest first")
	}
}
