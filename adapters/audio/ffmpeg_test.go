package audio_test

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/signbridge/server/adapters/audio"
	"github.com/signbridge/server/domain/repositories"
)

var _ repositories.AudioTranscoder = (*audio.FFmpegTranscoder)(nil)

// writeWAV writes a minimal RIFF/WAVE file containing silence so the
// integration test has real input without shipping a fixture.
func writeWAV(t *testing.T, path string, samples int) {
	t.Helper()
	data := make([]byte, 44+2*samples)
	copy(data[0:], "RIFF")
	binary.LittleEndian.PutUint32(data[4:], uint32(36+2*samples))
	copy(data[8:], "WAVE")
	copy(data[12:], "fmt ")
	binary.LittleEndian.PutUint32(data[16:], 16)
	binary.LittleEndian.PutUint16(data[20:], 1)      // PCM
	binary.LittleEndian.PutUint16(data[22:], 1)      // mono
	binary.LittleEndian.PutUint32(data[24:], 44100)  // sample rate
	binary.LittleEndian.PutUint32(data[28:], 88200)  // byte rate
	binary.LittleEndian.PutUint16(data[32:], 2)      // block align
	binary.LittleEndian.PutUint16(data[34:], 16)     // bits per sample
	copy(data[36:], "data")
	binary.LittleEndian.PutUint32(data[40:], uint32(2*samples))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write wav fixture: %v", err)
	}
}

// Integration test - only runs if FFMPEG_BIN points at a real ffmpeg binary
func TestFFmpegTranscoderIntegration(t *testing.T) {
	bin := os.Getenv("FFMPEG_BIN")
	if bin == "" {
		t.Skip("Skipping integration test - set FFMPEG_BIN environment variable to an ffmpeg binary")
	}

	src := filepath.Join(t.TempDir(), "input.wav")
	writeWAV(t, src, 44100)

	transcoder := audio.NewFFmpegTranscoder(bin, zaptest.NewLogger(t))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := transcoder.TranscodeToWAV(ctx, src)
	if err != nil {
		t.Fatalf("TranscodeToWAV failed: %v", err)
	}
	defer os.Remove(out)

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("re-encoded file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("re-encoded file is empty")
	}
}

func TestFFmpegTranscoderBadInput(t *testing.T) {
	bin := os.Getenv("FFMPEG_BIN")
	if bin == "" {
		t.Skip("Skipping integration test - set FFMPEG_BIN environment variable to an ffmpeg binary")
	}

	src := filepath.Join(t.TempDir(), "garbage.webm")
	if err := os.WriteFile(src, []byte("not audio"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	transcoder := audio.NewFFmpegTranscoder(bin, zaptest.NewLogger(t))
	if _, err := transcoder.TranscodeToWAV(context.Background(), src); err == nil {
		t.Fatal("expected error for undecodable input")
	}
	if _, err := os.Stat(src + "_fixed.wav"); !os.IsNotExist(err) {
		t.Errorf("partial output left behind, stat err = %v", err)
	}
}

func TestMockTranscoderCopiesSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "input.webm")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	transcoder := audio.NewMockTranscoder(zaptest.NewLogger(t))
	out, err := transcoder.TranscodeToWAV(context.Background(), src)
	if err != nil {
		t.Fatalf("TranscodeToWAV failed: %v", err)
	}
	defer os.Remove(out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("output = %q, want %q", data, "payload")
	}
}
