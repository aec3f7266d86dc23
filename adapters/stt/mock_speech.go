package stt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/signbridge/server/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// TranscribeAudio implements repositories.SpeechToText
func (s *MockSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.Int("audioSize", len(audioData)),
		zap.Int("sampleRate", config.SampleRate),
		zap.String("encoding", config.Encoding))

	if len(audioData) == 0 {
		return "", fmt.Errorf("no speech detected in audio")
	}

	// Mock transcription based on audio size
	switch {
	case len(audioData) > 10000:
		return "thank you for listening to this demo", nil
	case len(audioData) > 1000:
		return "hello world", nil
	default:
		return "hi", nil
	}
}
