package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string

	Age          int
	Gender       string  `gorm:"size:16"`
	Height       float64 // cm
	Weight       float64 // kg
	TargetWeight float64

	ActivityLevel string `gorm:"size:32;default:moderately_active"`
	FitnessGoals  string // comma-separated tags

	DailyCalorieTarget int `gorm:"default:2000"`
	DailyWaterTarget   int `gorm:"default:8"` // glasses

	Units              string `gorm:"size:16;default:metric"`
	Theme              string `gorm:"size:16;default:light"`
	EmailNotifications bool   `gorm:"default:true"`
	PushNotifications  bool

	ProfilePicture string

	ResetToken    string
	ResetTokenExp time.Time

	Disabled bool
}

func (u *User) GoalTags() []string {
	if u.FitnessGoals == "" {
		return []string{}
	}
	return strings.Split(u.FitnessGoals, ",")
}
