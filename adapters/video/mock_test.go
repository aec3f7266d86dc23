package video_test

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/signbridge/server/adapters/video"
)

func TestMockEncoderCountsFrames(t *testing.T) {
	encoder := video.NewMockEncoder(zaptest.NewLogger(t))
	path := filepath.Join(t.TempDir(), "out.mp4")

	w, err := encoder.Open(context.Background(), path, 16, 16, 15)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for n := 0; n < 3; n++ {
		if err := w.WriteFrame(frame); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := encoder.FrameCounts[0]; got != 3 {
		t.Errorf("frame count = %d, want 3", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestMockEncoderRejectsWrongDimensions(t *testing.T) {
	encoder := video.NewMockEncoder(zaptest.NewLogger(t))
	w, err := encoder.Open(context.Background(), filepath.Join(t.TempDir(), "out.mp4"), 16, 16, 15)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer w.Close()

	if err := w.WriteFrame(image.NewRGBA(image.Rect(0, 0, 8, 8))); err == nil {
		t.Error("expected error for mismatched frame dimensions")
	}
}
