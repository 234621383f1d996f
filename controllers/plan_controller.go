package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"nutrifit/models"
	"nutrifit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var planSvc = services.NewPlanService()

func planPayload(p *models.WorkoutPlan) gin.H {
	tags := []string{}
	if p.Tags != "" {
		tags = strings.Split(p.Tags, ",")
	}
	return gin.H{
		"id":             p.ID,
		"user_id":        p.UserID,
		"name":           p.Name,
		"description":    p.Description,
		"difficulty":     p.Difficulty,
		"weeks":          p.Weeks,
		"days_per_week":  p.DaysPerWeek,
		"schedule":       p.Schedule,
		"tags":           tags,
		"is_public":      p.IsPublic,
		"created_by":     p.CreatedBy,
		"average_rating": p.AverageRating(),
		"rating_count":   len(p.Ratings),
		"created_at":     p.CreatedAt,
	}
}

func planID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid plan id"})
		return 0, false
	}
	return uint(id), true
}

func CreatePlan(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	plan, err := planSvc.CreatePlan(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": planPayload(plan)})
}

func ListPlans(c *gin.Context) {
	userID := c.GetUint("userID")
	includePublic := c.Query("include_public") == "true"

	plans, err := planSvc.ListPlans(userID, includePublic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(plans))
	for i := range plans {
		out = append(out, planPayload(&plans[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func GetPlan(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := planID(c)
	if !ok {
		return
	}

	plan, err := planSvc.GetPlan(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": planPayload(plan)})
}

func UpdatePlan(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := planID(c)
	if !ok {
		return
	}

	var req services.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	plan, err := planSvc.UpdatePlan(userID, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": planPayload(plan)})
}

func DeletePlan(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := planID(c)
	if !ok {
		return
	}

	if err := planSvc.DeletePlan(userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "plan deleted"}})
}

func RatePlan(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := planID(c)
	if !ok {
		return
	}

	var input struct {
		Score   int    `json:"score" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	plan, err := planSvc.RatePlan(userID, id, input.Score, input.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "plan not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": planPayload(plan)})
}
