package repositories

import "context"

// AudioTranscoder abstracts the re-encoding of arbitrary uploaded audio into the
// single format the transcriber accepts.
type AudioTranscoder interface {
	// TranscodeToWAV re-encodes the file at src into a mono 16kHz PCM WAV and
	// returns the path of the new file. The caller owns the returned file and
	// must remove it when done.
	TranscodeToWAV(ctx context.Context, src string) (string, error)
}
