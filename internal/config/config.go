package config

import (
	"fmt"
	"os"
)

const (
	defaultPort           = "8080"
	defaultSignsDir       = "sign_images"
	defaultOutputDir      = "output_videos"
	defaultFFmpegBin      = "ffmpeg"
	defaultSpeechLanguage = "en-US"
)

// Config holds the process configuration, read from the environment.
// Required fields all have usable defaults; Validate guards against values
// that were explicitly set to something unusable.
type Config struct {
	Port           string // HTTP listen port
	SignsDir       string // directory of per-character sign images
	OutputDir      string // directory generated videos are written to
	FFmpegBin      string // ffmpeg binary, resolved via PATH when bare
	SpeechLanguage string // BCP-47 language code for transcription
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() Config {
	return Config{
		Port:           envOr("PORT", defaultPort),
		SignsDir:       envOr("SIGNS_DIR", defaultSignsDir),
		OutputDir:      envOr("OUTPUT_DIR", defaultOutputDir),
		FFmpegBin:      envOr("FFMPEG_BIN", defaultFFmpegBin),
		SpeechLanguage: envOr("SPEECH_LANGUAGE", defaultSpeechLanguage),
	}
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.SignsDir == "" {
		return fmt.Errorf("signs directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.FFmpegBin == "" {
		return fmt.Errorf("ffmpeg binary is required")
	}
	if c.SpeechLanguage == "" {
		return fmt.Errorf("speech language is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
