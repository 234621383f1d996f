package services

import (
	"errors"
	"fmt"
	"strings"

	"nutrifit/config"
	"nutrifit/models"

	"gorm.io/gorm"
)

type PlanService struct{}

func NewPlanService() *PlanService { return &PlanService{} }

type PlanExerciseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	Duration    int     `json:"duration"`
	RestSeconds int     `json:"rest_seconds"`
}

type ScheduleDayRequest struct {
	DayOfWeek   int                   `json:"day_of_week" binding:"min=0,max=6"`
	WorkoutType string                `json:"workout_type" binding:"required"`
	Exercises   []PlanExerciseRequest `json:"exercises"`
}

type PlanRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Difficulty  string               `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Weeks       int                  `json:"weeks" binding:"required,min=1"`
	DaysPerWeek int                  `json:"days_per_week" binding:"required,min=1,max=7"`
	Schedule    []ScheduleDayRequest `json:"schedule"`
	Tags        []string             `json:"tags"`
	IsPublic    bool                 `json:"is_public"`
}

func (s *PlanService) CreatePlan(userID uint, req PlanRequest) (*models.WorkoutPlan, error) {
	plan := &models.WorkoutPlan{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Weeks:       req.Weeks,
		DaysPerWeek: req.DaysPerWeek,
		Tags:        strings.Join(req.Tags, ","),
		IsPublic:    req.IsPublic,
		CreatedBy:   "user",
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}

	for _, day := range req.Schedule {
		sd := &models.ScheduleDay{
			WorkoutPlanID: plan.ID,
			DayOfWeek:     day.DayOfWeek,
			WorkoutType:   day.WorkoutType,
		}
		if err := config.DB.Create(sd).Error; err != nil {
			return nil, err
		}
		for _, ex := range day.Exercises {
			pe := &models.PlanExercise{
				ScheduleDayID: sd.ID,
				Name:          ex.Name,
				Sets:          ex.Sets,
				Reps:          ex.Reps,
				Weight:        ex.Weight,
				Duration:      ex.Duration,
				RestSeconds:   ex.RestSeconds,
			}
			if err := config.DB.Create(pe).Error; err != nil {
				return nil, err
			}
		}
	}

	return s.GetPlan(userID, plan.ID)
}

// GetPlan loads a plan the user may see: their own, or any public one.
func (s *PlanService) GetPlan(userID, planID uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := config.DB.
		Preload("Schedule.Exercises").
		Preload("Ratings").
		Where("id = ? AND (user_id = ? OR is_public = ?)", planID, userID, true).
		First(&plan).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &plan, nil
}

func (s *PlanService) ListPlans(userID uint, includePublic bool) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	q := config.DB.
		Preload("Schedule.Exercises").
		Preload("Ratings").
		Order("created_at DESC")
	if includePublic {
		q = q.Where("user_id = ? OR is_public = ?", userID, true)
	} else {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Find(&plans).Error
	return plans, err
}

func (s *PlanService) UpdatePlan(userID, planID uint, req PlanRequest) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		return nil, err
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Difficulty = req.Difficulty
	plan.Weeks = req.Weeks
	plan.DaysPerWeek = req.DaysPerWeek
	plan.Tags = strings.Join(req.Tags, ",")
	plan.IsPublic = req.IsPublic
	if err := config.DB.Save(&plan).Error; err != nil {
		return nil, err
	}

	// replace the schedule wholesale
	var days []models.ScheduleDay
	if err := config.DB.Where("workout_plan_id = ?", plan.ID).Find(&days).Error; err != nil {
		return nil, err
	}
	for _, d := range days {
		if err := config.DB.Where("schedule_day_id = ?", d.ID).Delete(&models.PlanExercise{}).Error; err != nil {
			return nil, err
		}
	}
	if err := config.DB.Where("workout_plan_id = ?", plan.ID).Delete(&models.ScheduleDay{}).Error; err != nil {
		return nil, err
	}

	for _, day := range req.Schedule {
		sd := &models.ScheduleDay{
			WorkoutPlanID: plan.ID,
			DayOfWeek:     day.DayOfWeek,
			WorkoutType:   day.WorkoutType,
		}
		if err := config.DB.Create(sd).Error; err != nil {
			return nil, err
		}
		for _, ex := range day.Exercises {
			pe := &models.PlanExercise{
				ScheduleDayID: sd.ID,
				Name:          ex.Name,
				Sets:          ex.Sets,
				Reps:          ex.Reps,
				Weight:        ex.Weight,
				Duration:      ex.Duration,
				RestSeconds:   ex.RestSeconds,
			}
			if err := config.DB.Create(pe).Error; err != nil {
				return nil, err
			}
		}
	}

	return s.GetPlan(userID, plan.ID)
}

func (s *PlanService) DeletePlan(userID, planID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.WorkoutPlan{}).Error
}

// RatePlan upserts the user's rating (1–5) on a plan they can see.
func (s *PlanService) RatePlan(userID, planID uint, score int, comment string) (*models.WorkoutPlan, error) {
	if score < 1 || score > 5 {
		return nil, errors.New("score must be between 1 and 5")
	}
	if _, err := s.GetPlan(userID, planID); err != nil {
		return nil, err
	}

	var rating models.PlanRating
	err := config.DB.
		Where("workout_plan_id = ? AND user_id = ?", planID, userID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rating = models.PlanRating{WorkoutPlanID: planID, UserID: userID, Score: score, Comment: comment}
		if err := config.DB.Create(&rating).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		rating.Score = score
		rating.Comment = comment
		if err := config.DB.Save(&rating).Error; err != nil {
			return nil, err
		}
	}

	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		EmitAlert(plan.UserID, "info",
			fmt.Sprintf("Your plan %q received a %d-star rating", plan.Name, score))
	}
	return plan, nil
}
