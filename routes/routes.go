package routes

import (
	"nutrifit/controllers"
	"nutrifit/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Token-protected auth routes
	authed := r.Group("/api/auth")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/me", controllers.Me)
		authed.POST("/refresh", controllers.RefreshToken)
	}

	user := r.Group("/api/users")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PUT("/password", controllers.ChangePassword)
		user.DELETE("/account", controllers.DeleteAccount)
	}

	plans := r.Group("/api/plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.POST("", controllers.CreatePlan)
		plans.GET("", controllers.ListPlans)
		plans.GET("/:id", controllers.GetPlan)
		plans.PUT("/:id", controllers.UpdatePlan)
		plans.DELETE("/:id", controllers.DeletePlan)
		plans.POST("/:id/ratings", controllers.RatePlan)
	}

	foods := r.Group("/api/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", controllers.SearchFoods)
		foods.GET("/analyze", controllers.AnalyzeFood)
	}

	alerts := r.Group("/api/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	coach := r.Group("/api/coach")
	coach.Use(middlewares.AuthMiddleware())
	{
		coach.POST("/message", controllers.CoachMessage)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/coach", controllers.CoachSocket)
	}

	return r
}
