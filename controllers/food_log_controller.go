package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/config"
	"github.com/mohdrafey1/FitTrack-sub000/services"

	"github.com/gin-gonic/gin"
)

func foodLogSvc() *services.FoodLogService {
	store := services.NewGormFoodLogStore(config.DB, config.AppLocation())
	return services.NewFoodLogService(store)
}

// /logs/:date uses YYYY-MM-DD; the store normalizes to the app timezone.
func parseLogDate(c *gin.Context) (time.Time, bool) {
	day, err := time.ParseInLocation("2006-01-02", c.Param("date"), config.AppLocation())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

func writeLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidEntry),
		errors.Is(err, services.ErrZeroWaterDelta):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /logs/:date fetches the day, lazily creating an empty one.
func GetFoodLog(c *gin.Context) {
	day, ok := parseLogDate(c)
	if !ok {
		return
	}
	log, err := foodLogSvc().GetLog(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

// POST /logs/:date/items
func AddFoodLogItem(c *gin.Context) {
	day, ok := parseLogDate(c)
	if !ok {
		return
	}
	var input services.FoodLogItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := foodLogSvc().AddItem(c.GetUint("userID"), day, input)
	if err != nil {
		writeLogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// DELETE /logs/:date/items/:itemId
func RemoveFoodLogItem(c *gin.Context) {
	day, ok := parseLogDate(c)
	if !ok {
		return
	}
	log, err := foodLogSvc().RemoveItem(c.GetUint("userID"), day, c.Param("itemId"))
	if err != nil {
		writeLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

type WaterInput struct {
	Amount float64 `json:"amount"`
}

// PUT /logs/:date/water (absolute target)
func SetWater(c *gin.Context) {
	day, ok := parseLogDate(c)
	if !ok {
		return
	}
	var input WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := foodLogSvc().SetWater(c.GetUint("userID"), day, input.Amount)
	if err != nil {
		writeLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// POST /logs/:date/water/adjust (signed delta)
func AdjustWater(c *gin.Context) {
	day, ok := parseLogDate(c)
	if !ok {
		return
	}
	var input WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := foodLogSvc().AdjustWater(c.GetUint("userID"), day, input.Amount)
	if err != nil {
		writeLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
