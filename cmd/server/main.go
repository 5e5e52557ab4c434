package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krthik777/nutritrackBackend/internal/api"
	"github.com/krthik777/nutritrackBackend/internal/config"
	"github.com/krthik777/nutritrackBackend/internal/core"
	"github.com/krthik777/nutritrackBackend/internal/db"
	"github.com/krthik777/nutritrackBackend/internal/middleware"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded")

	// A store that cannot be reached at startup is fatal; there is no
	// partial-availability mode.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	store, err := db.Connect(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	zapLogger.Info("Connected to MongoDB", zap.String("database", appConfig.MongoDatabase))

	if err := store.EnsureIndexes(initCtx); err != nil {
		zapLogger.Fatal("Failed to create unique email index on profile collection", zap.Error(err))
	}
	zapLogger.Info("Unique index ensured on profile.email")

	profileRepo := db.NewProfileRepository(store)
	allergenRepo := db.NewAllergenRepository(store)
	mealPlanRepo := db.NewMealPlanRepository(store)
	foodLogRepo := db.NewFoodLogRepository(store)

	profileService := core.NewProfileService(profileRepo)
	allergenService := core.NewAllergenService(allergenRepo)
	mealPlanService := core.NewMealPlanService(mealPlanRepo)
	foodLogService := core.NewFoodLogService(foodLogRepo, time.Now)

	uploadClient := &http.Client{Timeout: time.Duration(appConfig.UploadTimeoutSeconds) * time.Second}
	uploadService := core.NewUploadService(uploadClient, appConfig.UploadEndpoint, appConfig.UploadBaseURL)

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	api.SetupRoutes(
		router,
		zapLogger,
		profileService,
		allergenService,
		mealPlanService,
		foodLogService,
		uploadService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server forced to shut down", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		zapLogger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zapLogger.Info("Server exited gracefully")
}
