package signs

import (
	"image"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	_ "image/jpeg"
	_ "image/png"
)

// Every sign image is resized to this frame size on load, so all composed
// videos share one geometry regardless of the source material.
const (
	signWidth  = 480
	signHeight = 640
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Library is the in-memory table of per-character sign images. It is built
// once at startup and read-only afterwards, so it is safe to share across
// concurrent requests without synchronization.
type Library struct {
	images map[rune]*image.RGBA
	width  int
	height int
}

// LoadLibrary reads <char>.jpg for every supported character from dir.
// Missing or undecodable files are skipped; a library with zero images is
// still returned so the caller can decide how to surface that.
func LoadLibrary(dir string, logger *zap.Logger) *Library {
	images := make(map[rune]*image.RGBA)
	for _, r := range alphabet {
		path := filepath.Join(dir, string(r)+".jpg")
		img, err := decodeImage(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("failed to decode sign image",
					zap.String("path", path),
					zap.Error(err))
			}
			continue
		}
		images[r] = fitToFrame(img)
	}

	logger.Info("loaded sign images",
		zap.Int("count", len(images)),
		zap.String("dir", dir))
	if len(images) == 0 {
		logger.Warn("no sign images loaded, conversion requests will fail",
			zap.String("dir", dir))
	}

	return &Library{images: images, width: signWidth, height: signHeight}
}

// NewLibrary builds a library from already-decoded images, resizing each to
// the fixed frame size. Used by tests to substitute a small alphabet.
func NewLibrary(images map[rune]image.Image) *Library {
	resized := make(map[rune]*image.RGBA, len(images))
	for r, img := range images {
		resized[r] = fitToFrame(img)
	}
	return &Library{images: resized, width: signWidth, height: signHeight}
}

// Image returns the sign image for r, if one is loaded. The returned image
// is shared; callers must not mutate it.
func (l *Library) Image(r rune) (*image.RGBA, bool) {
	img, ok := l.images[r]
	return img, ok
}

func (l *Library) Len() int {
	return len(l.images)
}

func (l *Library) Empty() bool {
	return len(l.images) == 0
}

// Width is the frame width of every composed video.
func (l *Library) Width() int {
	return l.width
}

// Height is the frame height of every composed video.
func (l *Library) Height() int {
	return l.height
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func fitToFrame(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, signWidth, signHeight))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
