package controllers

import (
	"net/http"
	"strconv"

	"nutrifit/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	userID := c.GetUint("userID")

	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	alerts, err := services.ListAlerts(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts})
}
