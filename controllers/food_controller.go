package controllers

import (
	"net/http"
	"strconv"

	"nutrifit/services"

	"github.com/gin-gonic/gin"
)

var foodSvc = services.NewFoodService()

func SearchFoods(c *gin.Context) {
	results := foodSvc.Search(c.Query("query"))
	c.JSON(http.StatusOK, gin.H{"data": results})
}

func AnalyzeFood(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	grams := 100.0
	if g := c.Query("grams"); g != "" {
		parsed, err := strconv.ParseFloat(g, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "grams must be a positive number"})
			return
		}
		grams = parsed
	}

	nutrients, ok := foodSvc.Analyze(name, grams)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "food not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"name":      name,
		"grams":     grams,
		"nutrients": nutrients,
	}})
}
