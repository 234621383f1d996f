package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nutrifit/config"
	"nutrifit/models"
	"nutrifit/utils"
)

type ProfileInput struct {
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Height             float64  `json:"height"`
	Weight             float64  `json:"weight"`
	TargetWeight       float64  `json:"target_weight"`
	ActivityLevel      string   `json:"activity_level"`
	FitnessGoals       []string `json:"fitness_goals"`
	DailyCalorieTarget int      `json:"daily_calorie_target"`
	DailyWaterTarget   int      `json:"daily_water_target"`
	Units              string   `json:"units"`
	Theme              string   `json:"theme"`
	ProfilePicture     string   `json:"profile_picture"` // base64 data URL
}

// ProfilePayload is the user object every auth endpoint returns; the client
// caches it verbatim as its session snapshot.
func ProfilePayload(user *models.User) map[string]interface{} {
	payload := map[string]interface{}{
		"id":                   user.ID,
		"name":                 user.Name,
		"email":                user.Email,
		"age":                  user.Age,
		"gender":               user.Gender,
		"height":               user.Height,
		"weight":               user.Weight,
		"target_weight":        user.TargetWeight,
		"activity_level":       user.ActivityLevel,
		"fitness_goals":        user.GoalTags(),
		"daily_calorie_target": user.DailyCalorieTarget,
		"daily_water_target":   user.DailyWaterTarget,
		"units":                user.Units,
		"theme":                user.Theme,
		"profile_picture":      user.ProfilePicture,
		"joined_at":            user.CreatedAt.Format("2006-01-02"),
	}

	if bmi, category, err := utils.BMI(user.Height, user.Weight); err == nil {
		payload["bmi"] = bmi
		payload["bmi_category"] = category
	}
	return payload
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", id, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.TargetWeight > 0 {
		user.TargetWeight = input.TargetWeight
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoals != nil {
		user.FitnessGoals = strings.Join(input.FitnessGoals, ",")
	}
	if input.DailyCalorieTarget > 0 {
		user.DailyCalorieTarget = input.DailyCalorieTarget
	}
	if input.DailyWaterTarget > 0 {
		user.DailyWaterTarget = input.DailyWaterTarget
	}
	if input.Units != "" {
		user.Units = input.Units
	}
	if input.Theme != "" {
		user.Theme = input.Theme
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadAvatar(input.ProfilePicture, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return errors.New("current password is incorrect")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(user).Error
}

// StartPasswordReset stores a short-lived reset code and mails it out. It
// reports success regardless of whether the address exists.
func StartPasswordReset(email string) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	config.DB.Save(user)

	_ = utils.SendResetEmail(user.Email, token)
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	result := config.DB.Where("reset_token = ?", token).First(&user)
	if result.Error != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}

func DeactivateUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
