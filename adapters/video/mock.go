package video

import (
	"context"
	"fmt"
	"image"
	"os"

	"go.uber.org/zap"

	"github.com/signbridge/server/domain/repositories"
)

// MockEncoder is a placeholder implementation of VideoEncoder. It creates
// the output file but records frames instead of encoding them, so tests can
// assert on exact frame counts.
type MockEncoder struct {
	logger *zap.Logger

	// FrameCounts records the number of frames written per opened path, in
	// Open order.
	FrameCounts []int
	// Paths records every path opened.
	Paths []string
	// OpenErr, when set, is returned by Open.
	OpenErr error
	// WriteErr, when set, is returned by the first WriteFrame call.
	WriteErr error
}

var _ repositories.VideoEncoder = (*MockEncoder)(nil)

// NewMockEncoder creates a new mock video encoder
func NewMockEncoder(logger *zap.Logger) *MockEncoder {
	return &MockEncoder{logger: logger}
}

// Open implements repositories.VideoEncoder
func (e *MockEncoder) Open(ctx context.Context, path string, width, height, fps int) (repositories.FrameWriter, error) {
	e.logger.Info("opening mock video encoder",
		zap.String("path", path),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("fps", fps))

	if e.OpenErr != nil {
		return nil, e.OpenErr
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	e.Paths = append(e.Paths, path)
	e.FrameCounts = append(e.FrameCounts, 0)
	return &mockFrameWriter{
		encoder: e,
		file:    f,
		slot:    len(e.FrameCounts) - 1,
		width:   width,
		height:  height,
	}, nil
}

type mockFrameWriter struct {
	encoder *MockEncoder
	file    *os.File
	slot    int
	width   int
	height  int
}

func (w *mockFrameWriter) WriteFrame(frame *image.RGBA) error {
	if w.encoder.WriteErr != nil {
		return w.encoder.WriteErr
	}
	b := frame.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("frame size %dx%d does not match video size %dx%d",
			b.Dx(), b.Dy(), w.width, w.height)
	}
	w.encoder.FrameCounts[w.slot]++
	return nil
}

func (w *mockFrameWriter) Close() error {
	return w.file.Close()
}
