package models

import (
	"gorm.io/gorm"
)

// WorkoutPlan is the shareable training template behind the workout pages.
// Schedule covers one week: at most one entry per day-of-week (0–6).
type WorkoutPlan struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Difficulty  string `gorm:"size:16"` // "beginner" | "intermediate" | "advanced"
	Weeks       int    // plan length in weeks
	DaysPerWeek int    // 1..7
	Schedule    []ScheduleDay
	Tags        string // comma-separated
	IsPublic    bool
	CreatedBy   string `gorm:"size:16;default:user"` // "user" | "trainer" | "system"
	Ratings     []PlanRating
}

type ScheduleDay struct {
	gorm.Model
	WorkoutPlanID uint   `gorm:"index"`
	DayOfWeek     int    // 0 (Sunday) .. 6
	WorkoutType   string `gorm:"size:16"` // strength | cardio | flexibility | sports | mixed | rest
	Exercises     []PlanExercise
}

type PlanExercise struct {
	gorm.Model
	ScheduleDayID uint `gorm:"index"`
	Name          string
	Sets          int
	Reps          int
	Weight        float64 // kg, 0 for bodyweight
	Duration      int     // minutes, for timed work
	RestSeconds   int
}

type PlanRating struct {
	gorm.Model
	WorkoutPlanID uint `gorm:"index;not null"`
	UserID        uint `gorm:"index;not null"`
	Score         int  // 1..5
	Comment       string
}

// AverageRating derives the mean score from the loaded ratings; 0 when the
// plan is unrated.
func (p *WorkoutPlan) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(p.Ratings))
}
