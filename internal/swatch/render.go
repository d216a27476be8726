// Package swatch renders striped colour swatches for themes and writes them
// to disk as PNG files.
//
// A swatch is drawn in a unit square that the canvas scales to Width×Height
// pixels. Four nested vertical stripes are filled back to front, outer border
// first, so each later stripe paints over the middle of the previous one.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/jmylchreest/swatchgen/internal/theme"
)

// Canvas dimensions in pixels.
const (
	Width  = 256
	Height = 32
)

// ErrColourCount is returned when a theme does not carry exactly
// theme.ColourCount colours.
var ErrColourCount = errors.New("wrong number of theme colours")

// Stripe is one filled rectangle in unit-square coordinates.
// It spans the full height; Colour indexes into Theme.Colors.
type Stripe struct {
	X      float64
	Width  float64
	Colour int
}

// stripes in draw order.
var stripes = []Stripe{
	{X: 0, Width: 1, Colour: 3},
	{X: 1.0 / 18, Width: 1 - 2.0/18, Colour: 2},
	{X: 1.0/9 + 1.0/18, Width: 1 - 2.0/9 - 2.0/18, Colour: 1},
	{X: 1.0/6 + 1.0/9 + 1.0/18, Width: 2.0 / 6, Colour: 0},
}

// Stripes returns the swatch geometry in draw order.
func Stripes() []Stripe {
	out := make([]Stripe, len(stripes))
	copy(out, stripes)
	return out
}

// Render draws the swatch for t onto a new Width×Height canvas.
func Render(t theme.Theme) (*image.RGBA, error) {
	if len(t.Colors) != theme.ColourCount {
		return nil, fmt.Errorf("%w: theme %q has %d, want %d", ErrColourCount, t.Name, len(t.Colors), theme.ColourCount)
	}

	dc := gg.NewContext(Width, Height)
	dc.Scale(Width, Height)

	for _, s := range stripes {
		// gg.SetRGB truncates c*255, so pass the 8-bit value straight through.
		dc.SetColor(t.Colors[s.Colour].NRGBA())
		dc.DrawRectangle(s.X, 0, s.Width, 1)
		dc.Fill()
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas type %T", dc.Image())
	}
	return img, nil
}

// Encode renders t and writes it to w as PNG.
func Encode(w io.Writer, t theme.Theme) error {
	img, err := Render(t)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode swatch %q: %w", t.Name, err)
	}
	return nil
}

// Probe is a pixel column where a single stripe colour is visible with full
// coverage.
type Probe struct {
	X      int
	Colour int
}

// Probes returns one column per stripe colour, halfway across the part of
// the stripe left uncovered by the next one, plus the leftmost column.
func Probes() []Probe {
	probes := []Probe{{X: 0, Colour: stripes[0].Colour}}
	for i, s := range stripes {
		mid := s.X + s.Width/2
		if i+1 < len(stripes) {
			mid = (s.X + stripes[i+1].X) / 2
		}
		probes = append(probes, Probe{X: int(math.Round(mid * Width)), Colour: s.Colour})
	}
	return probes
}
