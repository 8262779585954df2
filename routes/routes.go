package routes

import (
	"os"
	"strings"

	"daybook-backend/config"
	"daybook-backend/controllers"
	"daybook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Event routes
		events := api.Group("/events")
		{
			events.POST("", controllers.CreateEvent)
			events.GET("", controllers.GetEvents)
			events.GET("/:id", controllers.GetEvent)
			events.PUT("/:id", controllers.UpdateEvent)
			events.DELETE("/:id", controllers.DeleteEvent)
		}

		// Calendar month view and statistics
		api.GET("/calendar", controllers.GetCalendarMonth)
		api.GET("/calendar/stats", controllers.GetCalendarStats)

		// Kanban task routes
		tasks := api.Group("/tasks")
		{
			tasks.POST("", controllers.CreateTask)
			tasks.GET("", controllers.GetTasks)
			tasks.PUT("/:id", controllers.UpdateTask)
			tasks.PUT("/:id/move", controllers.MoveTask)
			tasks.DELETE("/:id", controllers.DeleteTask)
		}

		// Time tracking routes
		timeEntries := api.Group("/time-entries")
		{
			timeEntries.POST("", controllers.CreateTimeEntry)
			timeEntries.GET("", controllers.GetTimeEntries)
			timeEntries.POST("/start", controllers.StartTimer)
			timeEntries.PUT("/:id/stop", controllers.StopTimer)
			timeEntries.DELETE("/:id", controllers.DeleteTimeEntry)
		}

		// Subscription routes
		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.POST("", controllers.CreateSubscription)
			subscriptions.GET("", controllers.GetSubscriptions)
			subscriptions.PUT("/:id", controllers.UpdateSubscription)
			subscriptions.PUT("/:id/toggle", controllers.ToggleSubscription)
			subscriptions.DELETE("/:id", controllers.DeleteSubscription)
		}

		// Document metadata routes
		documents := api.Group("/documents")
		{
			documents.POST("", controllers.CreateDocument)
			documents.GET("", controllers.GetDocuments)
			documents.DELETE("/:id", controllers.DeleteDocument)
		}

		// Home-screen reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("", controllers.CreateReminder)
			reminders.GET("", controllers.GetReminders)
			reminders.PUT("/:id/toggle", controllers.ToggleReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
		}

		// Post-it note routes
		notes := api.Group("/notes")
		{
			notes.POST("", controllers.CreateNote)
			notes.GET("", controllers.GetNotes)
			notes.PUT("/:id", controllers.UpdateNote)
			notes.DELETE("/:id", controllers.DeleteNote)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		api.GET("/settings", controllers.GetSettings)
		api.PUT("/settings", controllers.UpdateSettings)
	}

	return r
}
