package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning_platform/internal/config"
	"learning_platform/internal/handler"
	"learning_platform/internal/middleware"
	"learning_platform/internal/repository"
	"learning_platform/internal/service"
	"learning_platform/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// --- Database Connection ---
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	dbPool, err := config.ConnectDB(startupCtx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(startupCtx, dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTTTL)

	// --- Initialize Repositories ---
	principalRepo := repository.NewPrincipalRepository(dbPool)
	courseRepo := repository.NewCourseRepository(dbPool)
	lessonRepo := repository.NewLessonRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(principalRepo, jwtUtil, cfg.IssueLoginToken)
	courseService := service.NewCourseService(principalRepo, courseRepo, lessonRepo)

	if cfg.InitialAdminEmail != "" {
		if err := authService.SeedAdmin(startupCtx, cfg.InitialAdminName, cfg.InitialAdminEmail, cfg.InitialAdminPassword); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
	}
	cancelStartup()

	if !cfg.IssueLoginToken {
		log.Println("WARNING: AUTH_ISSUE_LOGIN_TOKEN=false, logins will not return a token and protected routes are unreachable")
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)

	router := newRouter(cfg, dbPool)

	// --- Register Routes ---
	authHandler.RegisterAuthRoutes(router)
	courseHandler.RegisterCourseRoutes(router,
		middleware.JWTAuthMiddleware(jwtUtil),
		middleware.TeacherMiddleware(),
		middleware.CourseOwnershipMiddleware(courseService),
	)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

func newRouter(cfg *config.AppConfig, dbPool *pgxpool.Pool) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
