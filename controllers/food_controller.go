package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mohdrafey1/FitTrack-sub000/config"
	"github.com/mohdrafey1/FitTrack-sub000/services"

	"github.com/gin-gonic/gin"
)

func foodSvc() *services.FoodService { return services.NewFoodService(config.DB) }

func parseFoodID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return 0, false
	}
	return uint(id), true
}

// POST /foods
func CreateFood(c *gin.Context) {
	var input services.CustomFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := foodSvc().Create(c.GetUint("userID"), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// GET /foods
func ListFoods(c *gin.Context) {
	foods, err := foodSvc().List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// PUT /foods/:id
func UpdateFood(c *gin.Context) {
	id, ok := parseFoodID(c)
	if !ok {
		return
	}
	var input services.CustomFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := foodSvc().Update(c.GetUint("userID"), id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidEntry):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id
func DeleteFood(c *gin.Context) {
	id, ok := parseFoodID(c)
	if !ok {
		return
	}
	if err := foodSvc().Delete(c.GetUint("userID"), id); err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}

// GET /foods/:id/preview?quantity=150
func PreviewFood(c *gin.Context) {
	id, ok := parseFoodID(c)
	if !ok {
		return
	}
	quantity, err := strconv.ParseFloat(c.Query("quantity"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	food, scaled, err := foodSvc().Preview(c.GetUint("userID"), id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food":      food,
		"quantity":  quantity,
		"nutrition": scaled,
	})
}
