package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/signbridge/server/adapters/audio"
	"github.com/signbridge/server/adapters/stt"
	"github.com/signbridge/server/adapters/video"
	"github.com/signbridge/server/internal/api"
	"github.com/signbridge/server/internal/config"
	"github.com/signbridge/server/internal/signs"
	"github.com/signbridge/server/usecase"
)

func main() {
	godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Fatal("failed to create output directory", zap.Error(err))
	}

	// Load the sign image table once; it is shared read-only by all requests.
	library := signs.LoadLibrary(cfg.SignsDir, logger)

	// Initialize adapters
	encoder := video.NewFFmpegEncoder(cfg.FFmpegBin, logger)
	transcoder := audio.NewFFmpegTranscoder(cfg.FFmpegBin, logger)
	speechToText := &stt.GoogleSpeechToText{}

	// Initialize usecase services
	service := usecase.NewSignService(
		library,
		encoder,
		transcoder,
		speechToText,
		cfg.OutputDir,
		cfg.SpeechLanguage,
		logger,
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize API routes
	api.InitRoutes(e, service, logger)

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.Int("signImages", library.Len()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
