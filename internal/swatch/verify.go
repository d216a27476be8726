package swatch

import (
	"errors"
	"fmt"
	"image"

	"github.com/jmylchreest/swatchgen/internal/colour"
	"github.com/jmylchreest/swatchgen/internal/theme"
)

// ErrMismatch is wrapped by every Verify failure.
var ErrMismatch = errors.New("swatch does not match theme")

// Verify checks that img looks like the swatch Render produces for t: the
// canvas size, then every Probes column sampled down its full height.
func Verify(img image.Image, t theme.Theme) error {
	if len(t.Colors) != theme.ColourCount {
		return fmt.Errorf("%w: theme %q has %d, want %d", ErrColourCount, t.Name, len(t.Colors), theme.ColourCount)
	}

	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return fmt.Errorf("%w: size %dx%d, want %dx%d", ErrMismatch, b.Dx(), b.Dy(), Width, Height)
	}

	var errs []error
	for _, p := range Probes() {
		want := t.Colors[p.Colour]
		for y := 0; y < Height; y++ {
			got := colour.ToRGB(img.At(b.Min.X+p.X, b.Min.Y+y))
			if got.NRGBA() != want.NRGBA() {
				errs = append(errs, fmt.Errorf("%w: pixel (%d, %d) is %s, want %s", ErrMismatch, p.X, y, got.Hex(), want.Hex()))
				break
			}
		}
	}
	return errors.Join(errs...)
}
