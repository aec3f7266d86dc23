package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SIGNS_DIR", "OUTPUT_DIR", "FFMPEG_BIN", "SPEECH_LANGUAGE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SignsDir != "sign_images" {
		t.Errorf("SignsDir = %q, want sign_images", cfg.SignsDir)
	}
	if cfg.OutputDir != "output_videos" {
		t.Errorf("OutputDir = %q, want output_videos", cfg.OutputDir)
	}
	if cfg.FFmpegBin != "ffmpeg" {
		t.Errorf("FFmpegBin = %q, want ffmpeg", cfg.FFmpegBin)
	}
	if cfg.SpeechLanguage != "en-US" {
		t.Errorf("SpeechLanguage = %q, want en-US", cfg.SpeechLanguage)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SIGNS_DIR", "/data/signs")
	t.Setenv("OUTPUT_DIR", "/data/videos")
	t.Setenv("FFMPEG_BIN", "/usr/local/bin/ffmpeg")
	t.Setenv("SPEECH_LANGUAGE", "id-ID")

	cfg := FromEnv()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.SignsDir != "/data/signs" {
		t.Errorf("SignsDir = %q, want /data/signs", cfg.SignsDir)
	}
	if cfg.OutputDir != "/data/videos" {
		t.Errorf("OutputDir = %q, want /data/videos", cfg.OutputDir)
	}
	if cfg.FFmpegBin != "/usr/local/bin/ffmpeg" {
		t.Errorf("FFmpegBin = %q, want /usr/local/bin/ffmpeg", cfg.FFmpegBin)
	}
	if cfg.SpeechLanguage != "id-ID" {
		t.Errorf("SpeechLanguage = %q, want id-ID", cfg.SpeechLanguage)
	}
}

func TestValidate(t *testing.T) {
	cfg := FromEnv()
	cfg.SignsDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty signs directory")
	}

	cfg = FromEnv()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty output directory")
	}
}
