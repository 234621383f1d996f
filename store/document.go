package store

import (
	"time"
)

// SchemaVersion tags the persisted document so that a future shape change
// can be detected at load time instead of blowing up mid-query.
const SchemaVersion = 1

const documentKey = "nutrifit.fitness_document"

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtremelyActive  ActivityLevel = "extremely_active"
)

type WorkoutType string

const (
	Strength    WorkoutType = "strength"
	Cardio      WorkoutType = "cardio"
	Flexibility WorkoutType = "flexibility"
	Sports      WorkoutType = "sports"
	Mixed       WorkoutType = "mixed"
)

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

type GoalType string

const (
	WeightLoss  GoalType = "weight_loss"
	WeightGain  GoalType = "weight_gain"
	Performance GoalType = "performance"
	Consistency GoalType = "consistency"
	Custom      GoalType = "custom"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
	GoalCancelled GoalStatus = "cancelled"
)

type Preferences struct {
	Units              string `json:"units"` // "metric" | "imperial"
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
}

type Profile struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Age                int           `json:"age"`
	Gender             string        `json:"gender"`
	Height             float64       `json:"height"` // cm
	Weight             float64       `json:"weight"` // kg
	TargetWeight       float64       `json:"target_weight"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	FitnessGoals       []string      `json:"fitness_goals"`
	DailyCalorieTarget float64       `json:"daily_calorie_target"`
	DailyWaterTarget   float64       `json:"daily_water_target"` // glasses
	JoinedAt           time.Time     `json:"joined_at"`
	Preferences        Preferences   `json:"preferences"`
}

type Exercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`   // kg
	Duration int     `json:"duration"` // minutes, for timed exercises
}

type Workout struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Type           WorkoutType `json:"type"`
	Date           time.Time   `json:"date"`
	Duration       int         `json:"duration"` // minutes
	Exercises      []Exercise  `json:"exercises"`
	CaloriesBurned float64     `json:"calories_burned"`
	Notes          string      `json:"notes"`
}

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func (m *Macros) add(o Macros) {
	m.Calories += o.Calories
	m.Protein += o.Protein
	m.Carbs += o.Carbs
	m.Fats += o.Fats
	m.Fiber += o.Fiber
	m.Sugar += o.Sugar
	m.Sodium += o.Sodium
}

type FoodItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Macros   Macros  `json:"macros"`
}

// NutritionEntry is the canonical nutrition record: exactly one meal of one
// type. Older documents persisted a per-day record with a meals map; those
// are converted on load, see normalize.go.
type NutritionEntry struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	MealType MealType   `json:"meal_type"`
	Items    []FoodItem `json:"food_items"`
	Water    float64    `json:"water"` // glasses logged with this meal
}

func (e NutritionEntry) Totals() Macros {
	var t Macros
	for _, it := range e.Items {
		t.add(it.Macros)
	}
	return t
}

type HealthMetric struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Weight           *float64  `json:"weight"` // nil when not measured that day
	Steps            int       `json:"steps"`
	RestingHeartRate int       `json:"resting_heart_rate"`
	MaxHeartRate     int       `json:"max_heart_rate"`
	SleepHours       float64   `json:"sleep_hours"`
	SleepQuality     int       `json:"sleep_quality"` // 1..5
	Mood             string    `json:"mood"`
	EnergyLevel      int       `json:"energy_level"` // 1..10
}

type Goal struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Type         GoalType   `json:"type"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	StartValue   float64    `json:"start_value"` // baseline for loss/gain goals
	Deadline     time.Time  `json:"deadline"`
	Status       GoalStatus `json:"status"`
	// Progress is refreshed on every write from the values above and is
	// never trusted on read; GoalProgress is the source of truth.
	Progress float64 `json:"progress"`
}

type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at"`
}

type StreakCounter struct {
	Current int    `json:"current"`
	Longest int    `json:"longest"`
	LastDay string `json:"last_day"` // YYYY-MM-DD
}

type Streaks struct {
	Workout   StreakCounter `json:"workout"`
	Nutrition StreakCounter `json:"nutrition"`
	Water     StreakCounter `json:"water"`
}

// Document is the whole persisted state: one profile plus the collections.
type Document struct {
	SchemaVersion int              `json:"schema_version"`
	Profile       Profile          `json:"profile"`
	Workouts      []Workout        `json:"workouts"`
	Nutrition     []NutritionEntry `json:"nutrition"`
	Metrics       []HealthMetric   `json:"metrics"`
	Goals         []Goal           `json:"goals"`
	Achievements  []Achievement    `json:"achievements"`
	Streaks       Streaks          `json:"streaks"`
}

// GoalProgress derives the progress percentage from the goal's values,
// clamped to [0,100]. For weight-loss goals progress runs from the start
// value down toward the target; for everything else it runs up from zero.
func GoalProgress(g Goal) float64 {
	var p float64
	switch g.Type {
	case WeightLoss:
		span := g.StartValue - g.TargetValue
		if span <= 0 {
			return 0
		}
		p = (g.StartValue - g.CurrentValue) / span * 100
	default:
		if g.TargetValue <= 0 {
			return 0
		}
		p = g.CurrentValue / g.TargetValue * 100
	}
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
