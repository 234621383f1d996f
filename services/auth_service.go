package services

import (
	"errors"
	"os"
	"strings"

	"nutrifit/config"
	"nutrifit/models"
	"nutrifit/utils"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

func RegisterUser(input RegisterUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	EmitAlert(user.ID, "info", "Welcome to NutriFit! Log your first workout to start a streak.")

	// best-effort; registration succeeds even when mail is down
	if os.Getenv("SES_EMAIL") != "" {
		_ = utils.SendWelcomeEmail(user.Email, user.Name)
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	result := config.DB.
		Where("email = ? AND disabled = ?", strings.ToLower(strings.TrimSpace(email)), false).
		First(&user)
	if result.Error != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// RefreshTokenFor issues a fresh bearer token for an already-authenticated
// user.
func RefreshTokenFor(userID uint) (string, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return "", errors.New("user not found or disabled")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
