package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/config"
	"github.com/workhive/workhive-backend/internal/database"
	"github.com/workhive/workhive-backend/internal/handlers"
	"github.com/workhive/workhive-backend/internal/media"
	"github.com/workhive/workhive-backend/internal/notify"
	"github.com/workhive/workhive-backend/internal/realtime"
	"github.com/workhive/workhive-backend/internal/services"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	// 2. Database
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Media store
	uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("Failed to init media store:", err)
	}

	// 4. Realtime hub + notification dispatcher. The hub is built here
	// and handed to everything that pushes events; nothing reaches for
	// a global.
	hub := realtime.NewHub()
	dispatcher := notify.NewDispatcher(db, hub)
	dispatcher.Start()
	defer dispatcher.Stop()

	// 5. Auth
	tokens := auth.NewManager(cfg.JWTSecret)

	// 6. Services
	userService := services.NewUserService(db, tokens, uploader)
	jobService := services.NewJobService(db, dispatcher, uploader)
	seekerService := services.NewJobSeekerService(db, dispatcher)
	eventService := services.NewEventService(db, uploader)
	blogService := services.NewBlogService(db, uploader)
	messageService := services.NewMessageService(db, hub)
	notificationService := services.NewNotificationService(db)
	searchService := services.NewSearchService(db, seekerService)
	chartService := services.NewChartService(db)

	// 7. Handlers
	userHandler := handlers.NewUserHandler(userService, cfg.UploadDir)
	jobHandler := handlers.NewJobHandler(jobService, cfg.UploadDir)
	seekerHandler := handlers.NewJobSeekerHandler(seekerService)
	eventHandler := handlers.NewEventHandler(eventService, cfg.UploadDir)
	blogHandler := handlers.NewBlogHandler(blogService, cfg.UploadDir)
	messageHandler := handlers.NewMessageHandler(messageService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	searchHandler := handlers.NewSearchHandler(searchService)
	chartHandler := handlers.NewChartHandler(chartService)
	wsHandler := handlers.NewWSHandler(hub, tokens)

	// 8. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authed := auth.Middleware(tokens)
	maybeAuthed := auth.OptionalMiddleware(tokens)

	r.GET("/health", handlers.HealthCheck)
	r.GET("/ws", wsHandler.Connect)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", authed, userHandler.Update)
			users.DELETE("/:id", authed, userHandler.Delete)
			users.POST("/profile/photo", authed, userHandler.UploadProfilePhoto)
		}

		jobs := api.Group("/jobs")
		{
			jobs.POST("/postJob", authed, jobHandler.Create)
			jobs.GET("/all", jobHandler.List)
			jobs.GET("/filter", jobHandler.Filter)
			jobs.GET("/count", jobHandler.Count)
			jobs.GET("/saved", authed, jobHandler.SavedJobs)
			jobs.DELETE("/saved/:id", authed, jobHandler.DeleteSaved)
			jobs.GET("/:id", maybeAuthed, jobHandler.Get)
			jobs.PUT("/:id", authed, jobHandler.Update)
			jobs.DELETE("/:id", authed, jobHandler.Delete)
			jobs.POST("/:id/logo", authed, jobHandler.UploadLogo)
			jobs.GET("/:id/views", authed, jobHandler.Viewers)
			jobs.POST("/:id/save", authed, jobHandler.ToggleSave)
			jobs.POST("/:id/apply", authed, jobHandler.Apply)
			jobs.GET("/:id/applicants", authed, jobHandler.Applicants)
			jobs.GET("/:id/related", jobHandler.Related)
		}

		seekers := api.Group("/jobseeker")
		{
			seekers.POST("", authed, seekerHandler.Create)
			seekers.GET("", seekerHandler.List)
			seekers.GET("/filter", seekerHandler.List)
			seekers.GET("/count", seekerHandler.Count)
			seekers.POST("/hire", authed, seekerHandler.ToggleHire)
			seekers.GET("/hiring-details", authed, seekerHandler.HiringDetails)
			seekers.PUT("/:postId", authed, seekerHandler.Update)
			seekers.DELETE("/:postId", authed, seekerHandler.Delete)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.POST("", authed, eventHandler.Create)
			events.GET("/filter", eventHandler.Filter)
			events.GET("/count", eventHandler.Count)
			events.POST("/mark-interested", authed, eventHandler.ToggleInterest)
			events.GET("/:id", eventHandler.Get)
			events.PUT("/:id", authed, eventHandler.Update)
			events.DELETE("/:id", authed, eventHandler.Delete)
			events.POST("/:id/logo", authed, eventHandler.UploadLogo)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.List)
			blogs.POST("", authed, blogHandler.Create)
			blogs.GET("/:id", blogHandler.Get)
			blogs.PUT("/:id", authed, blogHandler.Update)
			blogs.DELETE("/:id", authed, blogHandler.Delete)
			blogs.POST("/:id/upload-image", authed, blogHandler.UploadImage)
		}

		messages := api.Group("/messages", authed)
		{
			messages.POST("", messageHandler.Send)
			messages.POST("/mark-messages-as-read", messageHandler.MarkRead)
			messages.GET("/conversations", messageHandler.Conversations)
			messages.GET("/:userId", messageHandler.Conversation)
		}

		notifications := api.Group("/notifications", authed)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PUT("/mark-read", notificationHandler.MarkRead)
		}

		api.GET("/search", searchHandler.Global)

		charts := api.Group("/charts")
		{
			charts.PUT("/:jobId/view", chartHandler.TrackView)
			charts.GET("/views/overtime", chartHandler.ViewsOverTime)
			charts.GET("/views/by-title", chartHandler.ViewsByTitle)
			charts.GET("/views/by-type", chartHandler.ViewsByType)
			charts.GET("/job-postings-by-location", chartHandler.PostingsByLocation)
			charts.GET("/postings/by-company", chartHandler.PostingsByCompany)
			charts.GET("/job-postings-by-employment-type", chartHandler.PostingsByEmploymentType)
			charts.GET("/applications-by-job-type", chartHandler.ApplicationsByJobType)
			charts.GET("/registrations/over-time", chartHandler.RegistrationsOverTime)
			charts.GET("/posts-by-experience-level", chartHandler.SeekerPostsByExperienceLevel)
			charts.GET("/posts-by-time", chartHandler.SeekerPostsOverTime)
			charts.GET("/hirings-over-time", chartHandler.HiringsOverTime)
		}
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
