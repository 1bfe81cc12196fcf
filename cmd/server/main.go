package main

import (
	"os"
	"os/signal"
	"syscall"

	"healthcare-appointment-backend/internal/config"
	"healthcare-appointment-backend/internal/database"
	"healthcare-appointment-backend/internal/handler"
	"healthcare-appointment-backend/internal/middleware"
	"healthcare-appointment-backend/internal/repository"
	"healthcare-appointment-backend/internal/service"
	"healthcare-appointment-backend/internal/storage"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize structured logger
	logger := newLogger(cfg)
	defer logger.Sync()
	logger.Info("Configuration loaded successfully")

	// 3. Initialize database connection
	db := database.Connect(cfg, logger)

	// 4. Initialize picture storage
	pictureStore, err := storage.NewDiskPictureStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("Failed to initialize picture storage", zap.Error(err))
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	assignmentRepo := repository.NewAssignmentRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	locationRepo := repository.NewLocationRepo(db)

	// 6. Initialize services
	userService := service.NewUserService(userRepo, logger)
	hospitalService := service.NewHospitalService(hospitalRepo, pictureStore, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, hospitalRepo, doctorRepo, logger)
	appointmentService := service.NewAppointmentService(assignmentRepo, appointmentRepo, logger)
	locationService := service.NewLocationService(locationRepo)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS and request logging middleware
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RequestLogger(logger))

	// 9. Register handlers
	userHandler := handler.NewUserHandler(userService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	locationHandler := handler.NewLocationHandler(locationService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "healthcare-appointment-backend",
		})
	})

	// Serve stored hospital pictures
	r.Static("/uploads", cfg.Upload.Dir)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
			users.GET("/:id/locations", locationHandler.ListForUser)
		}

		hospitals := api.Group("/hospitals")
		{
			hospitals.POST("", hospitalHandler.RegisterHospital)
			hospitals.GET("", hospitalHandler.ListHospitals)
			hospitals.GET("/:id", hospitalHandler.GetHospital)
			hospitals.PUT("/:id", hospitalHandler.UpdateHospital)
			hospitals.DELETE("/:id", hospitalHandler.DeleteHospital)
			hospitals.GET("/:id/assignments", assignmentHandler.ListForHospital)
			hospitals.GET("/:id/appointments", appointmentHandler.ListForHospital)
			hospitals.GET("/:id/appointments/select", appointmentHandler.SelectForHospital)
		}

		assignments := api.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.Create)
			assignments.DELETE("/:id", assignmentHandler.Delete)
		}

		api.GET("/doctors", assignmentHandler.ListDoctors)

		locations := api.Group("/locations")
		{
			locations.POST("", locationHandler.Create)
			locations.GET("", locationHandler.List)
			locations.PUT("/:id", locationHandler.Update)
			locations.DELETE("/:id", locationHandler.Delete)
		}
	}

	// 11. Setup graceful shutdown
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.Server.GinMode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
