package api

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/signbridge/server/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, service *usecase.SignService, logger *zap.Logger) {
	e.GET("/", dashboard)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "signbridge-server",
		})
	})

	e.GET("/stats", func(c echo.Context) error {
		stats := service.Stats()
		return c.JSON(http.StatusOK, StatsResponse{
			SignImagesLoaded: stats.SignImagesLoaded,
			VideosGenerated:  stats.VideosGenerated,
			UptimeSeconds:    stats.Uptime.Seconds(),
		})
	})

	e.POST("/text-to-sign", func(c echo.Context) error {
		return textToSign(c, service, logger)
	})

	e.POST("/speech-to-sign", func(c echo.Context) error {
		return speechToSign(c, service, logger)
	})

	e.GET("/video/:video_filename", func(c echo.Context) error {
		return getVideo(c, service)
	})
}

func dashboard(c echo.Context) error {
	return c.HTML(http.StatusOK, dashboardHTML)
}

func textToSign(c echo.Context, service *usecase.SignService, logger *zap.Logger) error {
	var req TextToSignRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind text-to-sign request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request format"})
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Text is required"})
	}

	file, err := service.TextToSign(c.Request().Context(), text)
	if err != nil {
		logger.Error("text-to-sign conversion failed",
			zap.String("text", text),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, SignResponse{VideoFile: file, Text: text})
}

func speechToSign(c echo.Context, service *usecase.SignService, logger *zap.Logger) error {
	header, err := c.FormFile("audio_file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "audio_file is required"})
	}

	src, err := header.Open()
	if err != nil {
		logger.Error("failed to open uploaded audio", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to read uploaded audio"})
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "speech-*.webm")
	if err != nil {
		logger.Error("failed to create temp audio file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to store uploaded audio"})
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		logger.Error("failed to write uploaded audio", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to store uploaded audio"})
	}
	if err := tmp.Close(); err != nil {
		logger.Error("failed to flush uploaded audio", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to store uploaded audio"})
	}

	file, text, err := service.SpeechToSign(c.Request().Context(), tmp.Name())
	if err != nil {
		logger.Error("speech-to-sign conversion failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, SignResponse{VideoFile: file, Text: text})
}

func getVideo(c echo.Context, service *usecase.SignService) error {
	path, err := service.VideoPath(c.Param("video_filename"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Video not found"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "video/mp4")
	c.Response().Header().Set("Accept-Ranges", "bytes")
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.File(path)
}
