package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/signbridge/server/domain/repositories"
	"github.com/signbridge/server/internal/signs"
)

// SignService orchestrates the conversion flows: text to sign video and
// speech to sign video.
type SignService struct {
	library      *signs.Library
	composer     *signs.Composer
	encoder      repositories.VideoEncoder
	transcoder   repositories.AudioTranscoder
	speechToText repositories.SpeechToText
	outputDir    string
	language     string
	logger       *zap.Logger

	startedAt time.Time
	generated atomic.Int64
}

// Stats is a snapshot of service counters.
type Stats struct {
	SignImagesLoaded int
	VideosGenerated  int64
	Uptime           time.Duration
}

// NewSignService creates a new sign conversion service
func NewSignService(
	library *signs.Library,
	encoder repositories.VideoEncoder,
	transcoder repositories.AudioTranscoder,
	speechToText repositories.SpeechToText,
	outputDir string,
	language string,
	logger *zap.Logger,
) *SignService {
	return &SignService{
		library:      library,
		composer:     signs.NewComposer(library, logger),
		encoder:      encoder,
		transcoder:   transcoder,
		speechToText: speechToText,
		outputDir:    outputDir,
		language:     language,
		logger:       logger,
		startedAt:    time.Now(),
	}
}

// TextToSign composes a sign video for text and returns the generated
// filename. A failed composition leaves no file behind.
func (s *SignService) TextToSign(ctx context.Context, text string) (string, error) {
	filename := fmt.Sprintf("sign_%s_%s.mp4",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8])
	path := filepath.Join(s.outputDir, filename)

	writer, err := s.encoder.Open(ctx, path,
		s.library.Width(), s.library.Height(), signs.FramesPerSecond)
	if err != nil {
		return "", fmt.Errorf("failed to open video writer: %w", err)
	}

	if err := s.composer.Compose(text, writer); err != nil {
		writer.Close()
		os.Remove(path)
		return "", err
	}
	if err := writer.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to finalize video: %w", err)
	}

	s.generated.Add(1)
	s.logger.Info("created sign video",
		zap.String("file", filename),
		zap.String("text", text))
	return filename, nil
}

// SpeechToSign transcribes the uploaded audio file and composes a sign video
// for the transcript. The intermediate WAV is removed on every path.
func (s *SignService) SpeechToSign(ctx context.Context, audioPath string) (string, string, error) {
	wavPath, err := s.transcoder.TranscodeToWAV(ctx, audioPath)
	if err != nil {
		return "", "", err
	}
	defer os.Remove(wavPath)

	wav, err := os.ReadFile(wavPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read re-encoded audio: %w", err)
	}

	text, err := s.speechToText.TranscribeAudio(ctx, wav, repositories.AudioConfig{
		SampleRate: 16000,
		Encoding:   "LINEAR16",
		Language:   s.language,
	})
	if err != nil {
		return "", "", err
	}
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", "", fmt.Errorf("no speech detected")
	}

	s.logger.Info("transcribed speech", zap.String("text", text))

	file, err := s.TextToSign(ctx, text)
	if err != nil {
		return "", "", err
	}
	return file, text, nil
}

// VideoPath resolves a generated video filename to its path on disk. The
// name is reduced to its base so requests cannot traverse outside the
// output directory. Returns os.ErrNotExist-wrapping errors for misses.
func (s *SignService) VideoPath(filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", os.ErrNotExist
	}
	path := filepath.Join(s.outputDir, name)
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", os.ErrNotExist
	}
	return path, nil
}

// Stats reports loaded images, generated videos, and uptime.
func (s *SignService) Stats() Stats {
	return Stats{
		SignImagesLoaded: s.library.Len(),
		VideosGenerated:  s.generated.Load(),
		Uptime:           time.Since(s.startedAt),
	}
}
