package signs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/signbridge/server/domain/repositories"
)

// Playback constants. Six frames per character at 15fps keeps individual
// signs readable without dragging the video out.
const (
	FramesPerSecond = 15
	charFrames      = 6
	spaceFrames     = 3
	fadeFrames      = 2
)

// ErrLibraryEmpty is returned when composition is attempted before any sign
// images were loaded.
var ErrLibraryEmpty = errors.New("sign images not loaded")

// ErrNothingToSign is returned when the text contains no character with a
// loaded sign image, so no frame would be emitted.
var ErrNothingToSign = errors.New("text contains no characters with sign images")

// Composer turns normalized text into a frame sequence: a fade-in ramp, a
// hold segment, and a fade-out ramp per character, with blank frames for
// spaces.
type Composer struct {
	library *Library
	logger  *zap.Logger
}

func NewComposer(library *Library, logger *zap.Logger) *Composer {
	return &Composer{library: library, logger: logger}
}

// Compose normalizes text and writes the full frame sequence to w. The
// final character holds instead of fading out so the video does not end on
// black. Characters without a loaded image emit nothing and are reported
// once per call.
func (c *Composer) Compose(text string, w repositories.FrameWriter) error {
	if c.library.Empty() {
		return ErrLibraryEmpty
	}

	clean, err := Normalize(text)
	if err != nil {
		return err
	}

	black := blankFrame(c.library.Width(), c.library.Height())
	runes := []rune(clean)

	var skipped []rune
	written := 0
	for i, r := range runes {
		if unicode.IsSpace(r) {
			for n := 0; n < spaceFrames; n++ {
				if err := w.WriteFrame(black); err != nil {
					return fmt.Errorf("failed to write frame: %w", err)
				}
				written++
			}
			continue
		}

		img, ok := c.library.Image(r)
		if !ok {
			skipped = append(skipped, r)
			continue
		}
		frame := c.labeledFrame(r, img)

		// Fade in from black.
		for f := 0; f < fadeFrames; f++ {
			alpha := float64(f) / fadeFrames
			if err := w.WriteFrame(fadeFromBlack(frame, alpha)); err != nil {
				return fmt.Errorf("failed to write frame: %w", err)
			}
			written++
		}

		// Hold.
		for n := 0; n < charFrames-2*fadeFrames; n++ {
			if err := w.WriteFrame(frame); err != nil {
				return fmt.Errorf("failed to write frame: %w", err)
			}
			written++
		}

		if i < len(runes)-1 {
			// Fade out toward the next character.
			for f := 0; f < fadeFrames; f++ {
				alpha := float64(fadeFrames-f) / fadeFrames
				if err := w.WriteFrame(fadeFromBlack(frame, alpha)); err != nil {
					return fmt.Errorf("failed to write frame: %w", err)
				}
				written++
			}
		} else {
			// Last character holds instead of fading out.
			for f := 0; f < fadeFrames; f++ {
				if err := w.WriteFrame(frame); err != nil {
					return fmt.Errorf("failed to write frame: %w", err)
				}
				written++
			}
		}
	}

	if len(skipped) > 0 {
		c.logger.Warn("skipped characters without sign images",
			zap.String("characters", string(skipped)))
	}
	if written == 0 {
		return ErrNothingToSign
	}
	return nil
}

// labeledFrame copies the sign image and overlays the character it depicts,
// white with a black drop shadow, centered near the bottom edge.
func (c *Composer) labeledFrame(r rune, img *image.RGBA) *image.RGBA {
	frame := image.NewRGBA(img.Bounds())
	copy(frame.Pix, img.Pix)

	label := fmt.Sprintf("'%c'", unicode.ToUpper(r))
	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	tw := d.MeasureString(label).Ceil()
	x := (frame.Bounds().Dx() - tw) / 2
	y := frame.Bounds().Dy() - 40

	d.Dot = fixed.P(x+1, y+1)
	d.DrawString(label)
	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(x, y)
	d.DrawString(label)

	return frame
}

// fadeFromBlack returns src linearly blended toward black: alpha 0 is fully
// black, alpha 1 is the unmodified image.
func fadeFromBlack(src *image.RGBA, alpha float64) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = uint8(float64(src.Pix[i]) * alpha)
		out.Pix[i+1] = uint8(float64(src.Pix[i+1]) * alpha)
		out.Pix[i+2] = uint8(float64(src.Pix[i+2]) * alpha)
		out.Pix[i+3] = 0xff
	}
	return out
}

func blankFrame(width, height int) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = 0xff
	}
	return frame
}
