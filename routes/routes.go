package routes

import (
	"github.com/namratah118/trykymi/controllers"
	"github.com/namratah118/trykymi/middleware"
	"github.com/namratah118/trykymi/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, assistantService *services.AssistantService, debriefService *services.DebriefService) {
	authController := controllers.AuthController{}
	assistantController := controllers.NewAssistantController(assistantService)
	debriefController := controllers.NewDebriefController(debriefService)
	checkinController := controllers.CheckinController{}
	taskController := controllers.TaskController{}
	habitController := controllers.HabitController{}
	planController := controllers.PlanController{}
	reminderController := controllers.ReminderController{}
	insightsController := controllers.InsightsController{}
	userController := controllers.UserController{}

	// public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/assistant/chat", assistantController.Chat)
		private.POST("/assistant/plan", assistantController.GeneratePlan)
		private.GET("/assistant/history", assistantController.History)

		private.POST("/debrief", debriefController.Generate)
		private.POST("/debrief/save", debriefController.Save)

		private.POST("/checkin", checkinController.Submit)
		private.GET("/checkin/today", checkinController.Today)
		private.POST("/score/refresh", checkinController.RefreshScore)

		private.GET("/tasks", taskController.List)
		private.POST("/tasks", taskController.Create)
		private.PUT("/tasks/:id", taskController.Update)
		private.DELETE("/tasks/:id", taskController.Delete)

		private.GET("/habits", habitController.List)
		private.POST("/habits", habitController.Create)
		private.PUT("/habits/:id", habitController.Update)
		private.DELETE("/habits/:id", habitController.Delete)
		private.POST("/habits/:id/log", habitController.Log)

		private.GET("/plans", planController.List)
		private.POST("/plans", planController.Save)
		private.PUT("/plans/:id/complete", planController.Complete)
		private.DELETE("/plans/:id", planController.Delete)

		private.GET("/reminders", reminderController.List)
		private.POST("/reminders", reminderController.Create)
		private.PUT("/reminders/:id", reminderController.Update)
		private.DELETE("/reminders/:id", reminderController.Delete)

		private.GET("/insights/time", insightsController.TimeSummary)
		private.GET("/user", userController.GetUser)
	}

	// health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
