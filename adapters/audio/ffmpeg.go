package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/signbridge/server/domain/repositories"
)

// FFmpegTranscoder implements AudioTranscoder by shelling out to ffmpeg.
// Uploads arrive in whatever container the browser recorded (usually webm),
// and the transcriber only accepts mono 16kHz PCM WAV.
type FFmpegTranscoder struct {
	binary string
	logger *zap.Logger
}

var _ repositories.AudioTranscoder = (*FFmpegTranscoder)(nil)

// NewFFmpegTranscoder creates a transcoder using the given ffmpeg binary.
func NewFFmpegTranscoder(binary string, logger *zap.Logger) *FFmpegTranscoder {
	return &FFmpegTranscoder{binary: binary, logger: logger}
}

// TranscodeToWAV re-encodes src to mono 16kHz pcm_s16le WAV next to the
// source file. The caller removes the returned file.
func (t *FFmpegTranscoder) TranscodeToWAV(ctx context.Context, src string) (string, error) {
	out := src + "_fixed.wav"

	cmd := exec.CommandContext(ctx, t.binary,
		"-hide_banner", "-loglevel", "error", "-y",
		"-i", src,
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		out,
	)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		os.Remove(out)
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return "", fmt.Errorf("ffmpeg conversion failed: %v: %s", err, msg)
		}
		return "", fmt.Errorf("ffmpeg conversion failed: %w", err)
	}

	t.logger.Debug("re-encoded audio",
		zap.String("src", src),
		zap.String("out", out))
	return out, nil
}
