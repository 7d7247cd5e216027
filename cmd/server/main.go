package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"clinic-management-backend/internal/config"
	"clinic-management-backend/internal/database"
	"clinic-management-backend/internal/handler"
	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/internal/repository"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/pkg/logger"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logger
	zlog, err := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// 3. Initialize database connection and schema
	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate schema", zap.Error(err))
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	clinicRepo := repository.NewClinicRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	// 5. Initialize services
	tokens := utils.NewSessionTokenManager(cfg.Session.Secret, cfg.Session.TTL)
	authService := service.NewAuthService(userRepo, sessionRepo, tokens, zlog)
	clinicService := service.NewClinicService(clinicRepo, userRepo, zlog)
	patientService := service.NewPatientService(patientRepo, clinicRepo, zlog)
	userService := service.NewUserService(userRepo, sessionRepo, zlog)

	// Seed the bootstrap admin on first startup
	if err := authService.EnsureBootstrapAdmin(cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
		zlog.Fatal("failed to ensure bootstrap admin", zap.Error(err))
	}

	// 6. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// Pages come from the external template set
	r.LoadHTMLGlob(filepath.Join(cfg.Server.TemplatesDir, "*.html"))

	// 7. Register handlers
	authHandler := handler.NewAuthHandler(authService, int(cfg.Session.TTL.Seconds()))
	pageHandler := handler.NewPageHandler()
	patientHandler := handler.NewPatientHandler(patientService)
	adminHandler := handler.NewAdminHandler(userService, clinicService, patientService)

	// 8. Define routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "clinic-management-backend"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(authService))
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/dashboard", pageHandler.Dashboard)
		authed.GET("/tools", middleware.RequireCredits(), pageHandler.Tools)

		authed.GET("/meus_pacientes", patientHandler.MyPatients)
		authed.GET("/paciente/:id", patientHandler.Detail)
		authed.GET("/paciente/:id/montar_relatorio", patientHandler.BuildReport)
		authed.GET("/paciente/:id/relatorios_anteriores", patientHandler.PreviousReports)
		authed.GET("/paciente/:id/adicionar_teste", patientHandler.AddTest)
		authed.GET("/paciente/:id/testes_anteriores", patientHandler.PreviousTests)

		// Admin-only routes
		admin := authed.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/admin", adminHandler.Overview)
			admin.POST("/admin/update_credits/:id", adminHandler.UpdateCredits)
			admin.GET("/admin/delete_user/:id", adminHandler.DeleteUser)
			admin.GET("/admin/add_clinic", adminHandler.AddClinicPage)
			admin.POST("/admin/add_clinic", adminHandler.AddClinic)
			admin.GET("/admin/assign_user", adminHandler.AssignUserPage)
			admin.POST("/admin/assign_user", adminHandler.AssignUser)

			admin.GET("/admin/pacientes", adminHandler.Patients)
			admin.GET("/add_paciente", adminHandler.AddPatientPage)
			admin.POST("/add_paciente", adminHandler.AddPatient)
			admin.GET("/admin/paciente/:id/editar", adminHandler.EditPatientPage)
			admin.POST("/admin/paciente/:id/editar", adminHandler.EditPatient)
			admin.GET("/admin/paciente/:id/deletar", adminHandler.DeletePatient)
		}
	}

	// 9. Start server with graceful shutdown
	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")
}
