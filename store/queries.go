package store

import (
	"math"
	"sort"
)

type WorkoutStats struct {
	Count           int                 `json:"count"`
	TotalDuration   int                 `json:"total_duration"` // minutes
	TotalCalories   float64             `json:"total_calories"`
	AverageDuration float64             `json:"average_duration"`
	AverageCalories float64             `json:"average_calories"`
	CountByType     map[WorkoutType]int `json:"count_by_type"`
}

// WorkoutStats aggregates the workouts inside the trailing window. Averages
// are taken over the filtered set only and are 0, never NaN, when it is
// empty.
func (s *Store) WorkoutStats(windowDays int) WorkoutStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workoutStatsLocked(windowDays)
}

func (s *Store) workoutStatsLocked(windowDays int) WorkoutStats {
	cutoff := dayStart(s.now()).AddDate(0, 0, -windowDays)

	stats := WorkoutStats{CountByType: make(map[WorkoutType]int)}
	for _, w := range s.doc.Workouts {
		if w.Date.Before(cutoff) {
			continue
		}
		stats.Count++
		stats.TotalDuration += w.Duration
		stats.TotalCalories += w.CaloriesBurned
		stats.CountByType[w.Type]++
	}
	if stats.Count > 0 {
		stats.AverageDuration = round2(float64(stats.TotalDuration) / float64(stats.Count))
		stats.AverageCalories = round2(stats.TotalCalories / float64(stats.Count))
	}
	return stats
}

// DailyNutrition is the per-day aggregate over the canonical meal entries.
type DailyNutrition struct {
	Date   string           `json:"date"` // YYYY-MM-DD
	Meals  []NutritionEntry `json:"meals"`
	Totals Macros           `json:"totals"`
	Water  float64          `json:"water"`
}

// TodaysNutrition returns today's aggregate. When nothing was logged the
// result is a zero-valued record for today, never nil, so callers don't
// branch on presence.
func (s *Store) TodaysNutrition() DailyNutrition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todaysNutritionLocked()
}

func (s *Store) todaysNutritionLocked() DailyNutrition {
	today := dateKey(s.now())
	out := DailyNutrition{Date: today, Meals: []NutritionEntry{}}
	for _, e := range s.doc.Nutrition {
		if dateKey(e.Date) != today {
			continue
		}
		out.Meals = append(out.Meals, e)
		out.Totals.add(e.Totals())
		out.Water += e.Water
	}
	return out
}

// TodaysMetrics returns today's snapshot, or a zero-valued snapshot dated
// today (nil weight, zero counters) when none was recorded.
func (s *Store) TodaysMetrics() HealthMetric {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todaysMetricsLocked()
}

func (s *Store) todaysMetricsLocked() HealthMetric {
	today := dateKey(s.now())
	for _, m := range s.doc.Metrics {
		if dateKey(m.Date) == today {
			return m
		}
	}
	return HealthMetric{Date: dayStart(s.now())}
}

// WorkoutStreak is the number of consecutive days, ending today or
// yesterday, with at least one logged workout.
func (s *Store) WorkoutStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workoutStreakLocked()
}

func (s *Store) workoutStreakLocked() int {
	days := make(map[string]bool, len(s.doc.Workouts))
	for _, w := range s.doc.Workouts {
		days[dateKey(w.Date)] = true
	}

	day := dayStart(s.now())
	if !days[dateKey(day)] {
		// a streak is still alive until today ends
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[dateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

type DashboardSummary struct {
	TotalWorkouts      int     `json:"total_workouts"`
	TotalCalories      float64 `json:"total_calories"`
	CurrentWeight      float64 `json:"current_weight"`
	TargetWeight       float64 `json:"target_weight"`
	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	DailyWaterTarget   float64 `json:"daily_water_target"`
}

type DashboardData struct {
	WeeklyStats    WorkoutStats     `json:"weekly_stats"`
	Nutrition      DailyNutrition   `json:"nutrition"`
	Metrics        HealthMetric     `json:"metrics"`
	ActiveGoals    []Goal           `json:"active_goals"`
	Streaks        Streaks          `json:"streaks"`
	RecentWorkouts []Workout        `json:"recent_workouts"`
	Summary        DashboardSummary `json:"summary"`
}

// Dashboard composes the other queries; it computes nothing new itself.
func (s *Store) Dashboard() DashboardData {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := []Goal{}
	for _, g := range s.doc.Goals {
		if g.Status == GoalActive {
			active = append(active, g)
		}
	}

	recent := make([]Workout, len(s.doc.Workouts))
	copy(recent, s.doc.Workouts)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > 5 {
		recent = recent[:5]
	}

	var lifetimeCalories float64
	for _, w := range s.doc.Workouts {
		lifetimeCalories += w.CaloriesBurned
	}

	streaks := s.doc.Streaks
	streaks.Workout.Current = s.workoutStreakLocked()
	if streaks.Workout.Current > streaks.Workout.Longest {
		streaks.Workout.Longest = streaks.Workout.Current
	}

	return DashboardData{
		WeeklyStats:    s.workoutStatsLocked(7),
		Nutrition:      s.todaysNutritionLocked(),
		Metrics:        s.todaysMetricsLocked(),
		ActiveGoals:    active,
		Streaks:        streaks,
		RecentWorkouts: recent,
		Summary: DashboardSummary{
			TotalWorkouts:      len(s.doc.Workouts),
			TotalCalories:      lifetimeCalories,
			CurrentWeight:      s.doc.Profile.Weight,
			TargetWeight:       s.doc.Profile.TargetWeight,
			DailyCalorieTarget: s.doc.Profile.DailyCalorieTarget,
			DailyWaterTarget:   s.doc.Profile.DailyWaterTarget,
		},
	}
}

type ProgressPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// ProgressData projects a (date, value) series for charting, ascending by
// date and limited to the trailing window. Supported metrics: "weight" and
// "steps" from health snapshots (weight entries without a measurement are
// dropped), "workouts" as a per-day workout count.
func (s *Store) ProgressData(metric string, windowDays int) []ProgressPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := dayStart(s.now()).AddDate(0, 0, -windowDays)
	points := []ProgressPoint{}

	switch metric {
	case "weight":
		for _, m := range s.doc.Metrics {
			if m.Date.Before(cutoff) || m.Weight == nil {
				continue
			}
			points = append(points, ProgressPoint{Date: dateKey(m.Date), Value: *m.Weight})
		}
	case "steps":
		for _, m := range s.doc.Metrics {
			if m.Date.Before(cutoff) {
				continue
			}
			points = append(points, ProgressPoint{Date: dateKey(m.Date), Value: float64(m.Steps)})
		}
	case "workouts":
		perDay := make(map[string]float64)
		for _, w := range s.doc.Workouts {
			if w.Date.Before(cutoff) {
				continue
			}
			perDay[dateKey(w.Date)]++
		}
		for day, n := range perDay {
			points = append(points, ProgressPoint{Date: day, Value: n})
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
