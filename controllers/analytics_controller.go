package controllers

import (
	"net/http"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/config"
	"github.com/mohdrafey1/FitTrack-sub000/services"

	"github.com/gin-gonic/gin"
)

func analyticsSvc() *services.AnalyticsService {
	store := services.NewGormFoodLogStore(config.DB, config.AppLocation())
	return services.NewAnalyticsService(store)
}

// ?from=YYYY-MM-DD&to=YYYY-MM-DD, default last 7 days
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	loc := config.AppLocation()
	now := time.Now().In(loc)
	from := now.AddDate(0, 0, -6)
	to := now

	if q := c.Query("from"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if q := c.Query("to"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// GET /analytics/summary
func AnalyticsSummary(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	summary, err := analyticsSvc().Summary(c.GetUint("userID"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"range":   gin.H{"from": from.Format("2006-01-02"), "to": to.Format("2006-01-02")},
		"summary": summary,
	})
}

// GET /analytics/best-days
func AnalyticsBestDays(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	report, err := analyticsSvc().BestDays(c.GetUint("userID"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /analytics/streaks
func AnalyticsStreaks(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	report, err := analyticsSvc().Streaks(c.GetUint("userID"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
