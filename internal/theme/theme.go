// Package theme holds the compiled-in swatch themes.
package theme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/swatchgen/internal/colour"
)

// ColourCount is the number of stripe colours every theme carries.
const ColourCount = 4

// Theme is a named stripe palette.
//
// Colors are ordered innermost stripe first: Colors[0] is the central band,
// Colors[3] the outer border. Cursor and Input are the terminal accent
// colours paired with the palette; they are not drawn into the swatch.
type Theme struct {
	Name   string       `json:"name"`
	Colors []colour.RGB `json:"colors"`
	Cursor colour.RGB   `json:"cursor"`
	Input  colour.RGB   `json:"input"`
}

var (
	scarletRed    = colour.RGB{R: 241, G: 9, B: 6}
	scarletYellow = colour.RGB{R: 254, G: 222, B: 18}
	scarletGreen  = colour.RGB{R: 54, G: 178, B: 52}
	scarletBlue   = colour.RGB{R: 59, G: 99, B: 172}
	macawBlue     = colour.RGB{R: 22, G: 157, B: 215}
	macawYellow   = colour.RGB{R: 255, G: 211, B: 47}
	hyacinthBlue  = colour.RGB{R: 74, G: 95, B: 188}
	hyacinthEye   = colour.RGB{R: 255, G: 204, B: 85}
	militaryGreen = colour.RGB{R: 109, G: 207, B: 60}
	militaryBlue  = colour.RGB{R: 42, G: 200, B: 255}
	greyFeather   = colour.RGB{R: 177, G: 176, B: 194}
	crestYellow   = colour.RGB{R: 235, G: 226, B: 95}
)

// builtin is the theme table in render order.
var builtin = []Theme{
	{
		Name:   "scarlet",
		Colors: []colour.RGB{scarletRed, scarletYellow, scarletGreen, scarletBlue},
		Cursor: scarletRed,
		Input:  scarletBlue,
	},
	{
		Name:   "blue-and-yellow",
		Colors: []colour.RGB{macawBlue, macawBlue, macawYellow, macawYellow},
		Cursor: macawBlue,
		Input:  macawYellow,
	},
	{
		Name:   "hyacinth",
		Colors: []colour.RGB{hyacinthBlue, hyacinthBlue, hyacinthBlue, hyacinthBlue},
		Cursor: hyacinthEye,
		Input:  hyacinthBlue,
	},
	{
		Name:   "military",
		Colors: []colour.RGB{militaryGreen, militaryGreen, militaryGreen, militaryBlue},
		Cursor: militaryGreen,
		Input:  scarletBlue,
	},
	{
		Name:   "gray",
		Colors: []colour.RGB{greyFeather, greyFeather, greyFeather, greyFeather},
		Cursor: greyFeather,
		Input:  scarletBlue,
	},
	{
		Name:   "yellow-crested",
		Colors: []colour.RGB{greyFeather, greyFeather, greyFeather, crestYellow},
		Cursor: crestYellow,
		Input:  scarletBlue,
	},
}

// Builtin returns a copy of the compiled-in themes in render order.
func Builtin() []Theme {
	themes := make([]Theme, len(builtin))
	for i, t := range builtin {
		t.Colors = slices.Clone(t.Colors)
		themes[i] = t
	}
	return themes
}

// Names returns the names of the compiled-in themes in render order.
func Names() []string {
	names := make([]string, len(builtin))
	for i, t := range builtin {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the compiled-in theme with the given name.
func Lookup(name string) (Theme, bool) {
	for _, t := range Builtin() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Select returns the named themes in table order, or every theme when names
// is empty. Duplicate names are collapsed.
func Select(names []string) ([]Theme, error) {
	all := Builtin()
	if len(names) == 0 {
		return all, nil
	}

	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("unknown theme: %s (available: %s)", name, strings.Join(Names(), ", "))
		}
	}

	selected := make([]Theme, 0, len(names))
	for _, t := range all {
		if slices.Contains(names, t.Name) {
			selected = append(selected, t)
		}
	}
	return selected, nil
}

// Filename returns the swatch file name for the theme.
func (t Theme) Filename() string {
	return t.Name + ".png"
}
