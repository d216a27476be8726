// Package colour provides the RGB triple used by swatch themes and helpers
// for converting it to pixel values and terminal previews.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a colour as three integer channels.
// Channels are nominally in [0, 255]; values outside that range are kept
// as-is and wrap when converted to an 8-bit pixel.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(rgb.R), uint8(rgb.G), uint8(rgb.B))
}

// Normalize returns the channels divided by 255.
func (rgb RGB) Normalize() (r, g, b float64) {
	return float64(rgb.R) / 255.0, float64(rgb.G) / 255.0, float64(rgb.B) / 255.0
}

// NRGBA returns the colour as an opaque 8-bit pixel value.
func (rgb RGB) NRGBA() color.NRGBA {
	// #nosec G115 - out-of-range channels wrap, matching the unvalidated input
	return color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 255}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: int(n.R), G: int(n.G), B: int(n.B)}
}
