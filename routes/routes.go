package routes

import (
	"github.com/mohdrafey1/FitTrack-sub000/controllers"
	"github.com/mohdrafey1/FitTrack-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Custom foods
	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.POST("", controllers.CreateFood)
		foods.GET("", controllers.ListFoods)
		foods.PUT("/:id", controllers.UpdateFood)
		foods.DELETE("/:id", controllers.DeleteFood)
		foods.GET("/:id/preview", controllers.PreviewFood)
	}

	// Daily food/water log
	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.GET("/:date", controllers.GetFoodLog)
		logs.POST("/:date/items", controllers.AddFoodLogItem)
		logs.DELETE("/:date/items/:itemId", controllers.RemoveFoodLogItem)
		logs.PUT("/:date/water", controllers.SetWater)
		logs.POST("/:date/water/adjust", controllers.AdjustWater)
	}

	// Range analytics
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", controllers.AnalyticsSummary)
		analytics.GET("/best-days", controllers.AnalyticsBestDays)
		analytics.GET("/streaks", controllers.AnalyticsStreaks)
	}

	return r
}
