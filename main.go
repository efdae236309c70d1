package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quest-service/internal/config"
	"quest-service/internal/db"
	"quest-service/internal/event"
	"quest-service/internal/handlers"
	"quest-service/internal/middleware"
	"quest-service/internal/repository"
	"quest-service/internal/service"
	"quest-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env before building the config
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, platform events will not be published")
	}

	// Redis backs the protected-route rate limiter; scoring works without it
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		log.Println("Redis not configured, rate limiting disabled")
	}

	// Consul registration for the platform gateway
	if cfg.Consul.Enabled {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Failed to create Consul client: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Failed to register with Consul: %v", err)
		}
		shutdownChan := make(chan os.Signal, 1)
		signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-shutdownChan
			registry.Deregister()
			os.Exit(0)
		}()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "Quest Service is healthy")
	})

	database := db.Client.Database(cfg.MongoDB.Database)

	// Content catalog
	moduleRepo := repository.NewModuleRepository(database)
	moduleService := service.NewModuleService(moduleRepo)
	moduleHandler := handlers.NewModuleHandler(moduleService)

	questRepo := repository.NewQuestRepository(database)
	questService := service.NewQuestService(questRepo)
	questHandler := handlers.NewQuestHandler(questService)

	// Scoring pipeline
	attemptRepo := repository.NewAttemptRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	submissionService := service.NewSubmissionService(
		questRepo,
		attemptRepo,
		profileRepo,
		progressRepo,
		nil, // time-seeded crisis trigger
	)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)

	// Student read models
	attemptService := service.NewAttemptService(attemptRepo)
	profileService := service.NewProfileService(profileRepo)
	progressService := service.NewProgressService(progressRepo)
	studentHandler := handlers.NewStudentHandler(attemptService, profileService, progressService)

	// Teacher grading
	gradingRepo := repository.NewGradingRepository(database)
	gradingService := service.NewGradingService(gradingRepo)
	gradingHandler := handlers.NewGradingHandler(gradingService)

	// Certificates (simulated mint)
	certRepo := repository.NewCertificateRepository(database)
	certService := service.NewCertificateService(certRepo, progressRepo)
	certHandler := handlers.NewCertificateHandler(certService)

	// Public routes - catalog
	publicModule := r.Group("/public/quest/module")
	{
		publicModule.GET("/", moduleHandler.ListModules)
		publicModule.GET("/:id", moduleHandler.GetModule)
		publicModule.GET("/:id/quests", questHandler.GetQuestsByModule)
	}

	publicQuest := r.Group("/public/quest/catalog")
	{
		publicQuest.GET("/", questHandler.ListQuests)
		publicQuest.GET("/:id", questHandler.GetQuest)
	}

	// Public routes - student read models
	publicStudent := r.Group("/public/quest/student")
	{
		publicStudent.GET("/:id/attempts", studentHandler.GetAttempts)
		publicStudent.GET("/:id/profile", studentHandler.GetProfile)
		publicStudent.GET("/:id/progress", studentHandler.GetProgress)
		publicStudent.GET("/:id/grades", gradingHandler.GetGradesByStudent)
		publicStudent.GET("/:id/certificates", certHandler.GetCertificatesByStudent)
	}

	setupProtectedRoutes(r, cfg, redisClient, submissionHandler, questHandler, moduleHandler, gradingHandler, certHandler, studentHandler, publisher)

	r.Run(":" + cfg.Server.Port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	redisClient *redis.Client,
	submissionHandler *handlers.SubmissionHandler,
	questHandler *handlers.QuestHandler,
	moduleHandler *handlers.ModuleHandler,
	gradingHandler *handlers.GradingHandler,
	certHandler *handlers.CertificateHandler,
	studentHandler *handlers.StudentHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/quest")
	protected.Use(middleware.RequireUserID())
	protected.Use(middleware.RateLimit(redisClient, cfg.Redis.RateLimit, cfg.Redis.RateLimitWindow))

	// === SCORING ===

	protected.POST("/submit", func(c *gin.Context) {
		submissionHandler.SubmitQuest(c)
		if publisher != nil {
			publisher.Publish("quest.attempt.submitted", gin.H{
				"student_id": c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		}
	})

	// === STUDENT PREFERENCES ===

	protected.PUT("/student/:id/profile", func(c *gin.Context) {
		studentHandler.UpdateProfilePreferences(c)
		if publisher != nil {
			publisher.Publish("quest.profile.preferences_updated", gin.H{
				"student_id": c.Param("id"),
				"timestamp":  time.Now(),
			})
		}
	})

	// === CONTENT AUTHORING ===

	protected.POST("/catalog", questHandler.CreateQuest)
	protected.PUT("/catalog/:id", questHandler.UpdateQuest)
	protected.DELETE("/catalog/:id", questHandler.DeleteQuest)
	protected.POST("/module", moduleHandler.CreateModule)

	// === TEACHER GRADING ===

	protectedGrade := r.Group("/protected/grade")
	protectedGrade.Use(middleware.RequireUserID())
	{
		protectedGrade.POST("/submit", func(c *gin.Context) {
			gradingHandler.SubmitGrade(c)
			if publisher != nil {
				publisher.Publish("quest.grade.submitted", gin.H{
					"teacher_id": c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedGrade.GET("/teacher/:id", gradingHandler.GetGradesByTeacher)
	}

	// === CERTIFICATES ===

	protectedCert := r.Group("/protected/certificate")
	protectedCert.Use(middleware.RequireUserID())
	{
		protectedCert.POST("/submit", func(c *gin.Context) {
			certHandler.SubmitCertificate(c)
			if publisher != nil {
				publisher.Publish("quest.certificate.issued", gin.H{
					"student_id": c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
	}
}
