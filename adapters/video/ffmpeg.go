package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"

	"go.uber.org/zap"

	"github.com/signbridge/server/domain/repositories"
)

// codecPreference is tried in order; the first encoder the local ffmpeg build
// actually ships wins. libx264 gives the best browser compatibility.
var codecPreference = []string{"libx264", "libopenh264", "mpeg4"}

// FFmpegEncoder implements VideoEncoder by piping raw RGBA frames into an
// ffmpeg process that muxes an MP4.
type FFmpegEncoder struct {
	binary string
	logger *zap.Logger
}

var _ repositories.VideoEncoder = (*FFmpegEncoder)(nil)

// NewFFmpegEncoder creates an encoder using the given ffmpeg binary
// ("ffmpeg" resolves via PATH).
func NewFFmpegEncoder(binary string, logger *zap.Logger) *FFmpegEncoder {
	return &FFmpegEncoder{binary: binary, logger: logger}
}

// Open probes the codec preference list and starts an ffmpeg process for the
// first usable encoder. It fails when no codec is available.
func (e *FFmpegEncoder) Open(ctx context.Context, path string, width, height, fps int) (repositories.FrameWriter, error) {
	var lastErr error
	for _, codec := range codecPreference {
		if !e.encoderAvailable(ctx, codec) {
			lastErr = fmt.Errorf("encoder %s not available", codec)
			continue
		}
		w, err := e.start(ctx, path, width, height, fps, codec)
		if err != nil {
			lastErr = err
			continue
		}
		e.logger.Info("video encoder opened",
			zap.String("codec", codec),
			zap.String("path", path))
		return w, nil
	}
	return nil, fmt.Errorf("could not create video file with any codec: %w", lastErr)
}

func (e *FFmpegEncoder) encoderAvailable(ctx context.Context, codec string) bool {
	out, err := exec.CommandContext(ctx, e.binary, "-hide_banner", "-h", "encoder="+codec).CombinedOutput()
	if err != nil {
		return false
	}
	return !bytes.Contains(out, []byte("Unknown encoder"))
}

func (e *FFmpegEncoder) start(ctx context.Context, path string, width, height, fps int, codec string) (repositories.FrameWriter, error) {
	size := fmt.Sprintf("%dx%d", width, height)
	cmd := exec.CommandContext(ctx, e.binary,
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", size,
		"-r", strconv.Itoa(fps),
		"-i", "pipe:0",
		"-c:v", codec,
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		path,
	)

	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return &ffmpegWriter{
		cmd:    cmd,
		stdin:  stdin,
		stderr: stderr,
		width:  width,
		height: height,
	}, nil
}

type ffmpegWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *bytes.Buffer
	width  int
	height int
}

func (w *ffmpegWriter) WriteFrame(frame *image.RGBA) error {
	b := frame.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("frame size %dx%d does not match video size %dx%d",
			b.Dx(), b.Dy(), w.width, w.height)
	}

	// Fast path: contiguous pixel data starting at the origin.
	if b.Min.X == 0 && b.Min.Y == 0 && frame.Stride == 4*w.width {
		if _, err := w.stdin.Write(frame.Pix); err != nil {
			return w.writeError(err)
		}
		return nil
	}

	row := make([]byte, 4*w.width)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := frame.PixOffset(b.Min.X, y)
		copy(row, frame.Pix[off:off+4*w.width])
		if _, err := w.stdin.Write(row); err != nil {
			return w.writeError(err)
		}
	}
	return nil
}

func (w *ffmpegWriter) writeError(err error) error {
	if msg := bytes.TrimSpace(w.stderr.Bytes()); len(msg) > 0 {
		return fmt.Errorf("ffmpeg rejected frame: %v: %s", err, msg)
	}
	return fmt.Errorf("failed to write frame to ffmpeg: %w", err)
}

// Close finishes the stream and waits for ffmpeg to finalize the file.
func (w *ffmpegWriter) Close() error {
	if err := w.stdin.Close(); err != nil {
		w.cmd.Wait()
		return fmt.Errorf("failed to close ffmpeg stdin: %w", err)
	}
	if err := w.cmd.Wait(); err != nil {
		if msg := bytes.TrimSpace(w.stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("ffmpeg failed: %v: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
