package repositories

import (
	"context"
	"image"
)

// VideoEncoder abstracts video file creation.
type VideoEncoder interface {
	// Open starts an encoding session writing to path. Frames passed to the
	// returned FrameWriter must match the given dimensions.
	Open(ctx context.Context, path string, width, height, fps int) (FrameWriter, error)
}

// FrameWriter receives frames one at a time and finalizes the video on Close.
type FrameWriter interface {
	WriteFrame(frame *image.RGBA) error
	Close() error
}
