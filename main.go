package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func setupRouter(cfg *config.Config, userService *usecase.UserService, notesService *usecase.NotesService, tokens *services.TokenService) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(cfg.Server.MaxBodyBytes))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Shadow Notes backend is running")
	})
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService)
			})
		}
	}

	// Protected routes (bearer token required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}
	}

	return router
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET_KEY is not set")
	}

	utils.InitValidator()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := repository.NewMongoClient(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.Database.DatabaseName))

	if err := repository.SetupIndexes(ctx, client.Database(cfg.Database.DatabaseName)); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	usersRepo := repository.GetUsersRepo(client, cfg.Database)
	notesRepo := repository.GetNotesRepo(client, cfg.Database)

	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	userService := &usecase.UserService{
		UsersRepo:  usersRepo,
		Tokens:     tokenService,
		BcryptCost: cfg.Auth.BcryptCost,
		Logger:     logger,
	}
	notesService := &usecase.NotesService{
		NotesRepo: notesRepo,
		Logger:    logger,
	}

	go utils.CollectSystemMetrics(cfg.Server.MetricsInterval)

	router := setupRouter(cfg, userService, notesService, tokenService)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	logger.Info("Caught signal, shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect error", zap.Error(err))
	}
	logger.Info("Server shutdown complete")
}
