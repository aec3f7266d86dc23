package audio

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/signbridge/server/domain/repositories"
)

// MockTranscoder is a placeholder implementation of AudioTranscoder. It
// copies the source bytes unchanged into the "_fixed.wav" path the real
// transcoder would produce.
type MockTranscoder struct {
	logger *zap.Logger

	// Err, when set, is returned by TranscodeToWAV.
	Err error
}

var _ repositories.AudioTranscoder = (*MockTranscoder)(nil)

// NewMockTranscoder creates a new mock audio transcoder
func NewMockTranscoder(logger *zap.Logger) *MockTranscoder {
	return &MockTranscoder{logger: logger}
}

// TranscodeToWAV implements repositories.AudioTranscoder
func (t *MockTranscoder) TranscodeToWAV(ctx context.Context, src string) (string, error) {
	if t.Err != nil {
		return "", t.Err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read source audio: %w", err)
	}

	out := src + "_fixed.wav"
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write mock wav: %w", err)
	}

	t.logger.Info("mock transcode", zap.String("src", src), zap.String("out", out))
	return out, nil
}
