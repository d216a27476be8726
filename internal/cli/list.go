package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatchgen/internal/colour"
	"github.com/jmylchreest/swatchgen/internal/swatch"
	"github.com/jmylchreest/swatchgen/internal/theme"
)

type listOptions struct {
	noColour bool
	json     bool
}

func newListCmd(opts *options) *cobra.Command {
	listOpts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in themes",
		Long: `List the built-in themes with their stripe colours, innermost first,
and the cursor and input accent colours paired with each.

Colour previews are shown when writing to a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := theme.Select(opts.themes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if listOpts.json {
				return writeThemesJSON(out, themes)
			}
			fmt.Fprint(out, renderThemeTable(themes, !listOpts.noColour && isTerminal(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&listOpts.noColour, "no-colour", false, "disable colour previews")
	cmd.Flags().BoolVar(&listOpts.json, "json", false, "output themes as JSON")

	return cmd
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

// renderThemeTable formats themes as a table. With preview set it adds a
// stripe preview column and prints each name on its central stripe colour.
func renderThemeTable(themes []theme.Theme, preview bool) string {
	headers := []string{"NAME", "COLOURS", "CURSOR", "INPUT"}
	if preview {
		headers = append([]string{"SWATCH"}, headers...)
	}

	nameWidth := 0
	for _, t := range themes {
		nameWidth = max(nameWidth, len(t.Name)+2)
	}

	table := NewTable(headers)
	for _, t := range themes {
		hexes := make([]string, len(t.Colors))
		for i, c := range t.Colors {
			hexes[i] = c.Hex()
		}
		name := t.Name
		if preview && len(t.Colors) > 0 {
			name = colour.ColourPreviewWithText(t.Colors[0], t.Name, nameWidth)
		}
		row := []string{name, strings.Join(hexes, " "), t.Cursor.Hex(), t.Input.Hex()}
		if preview {
			row = append([]string{stripePreview(t)}, row...)
		}
		table.AddRow(row)
	}
	return table.Render()
}

// stripePreview draws the swatch as a row of coloured cells, outer stripe
// at both ends and the central stripe widest.
func stripePreview(t theme.Theme) string {
	if len(t.Colors) != theme.ColourCount {
		return ""
	}
	var b strings.Builder
	for i := len(t.Colors) - 1; i > 0; i-- {
		b.WriteString(colour.ColourPreview(t.Colors[i], 1))
	}
	b.WriteString(colour.ColourPreview(t.Colors[0], 4))
	for i := 1; i < len(t.Colors); i++ {
		b.WriteString(colour.ColourPreview(t.Colors[i], 1))
	}
	return b.String()
}

// themeJSON is the JSON form of a theme.
type themeJSON struct {
	Name    string       `json:"name"`
	File    string       `json:"file"`
	Colors  []string     `json:"colors"`
	Cursor  string       `json:"cursor"`
	Input   string       `json:"input"`
	Stripes []stripeJSON `json:"stripes"`
}

// stripeJSON is one stripe in draw order, in unit-square coordinates.
type stripeJSON struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Colour string  `json:"colour"`
}

func writeThemesJSON(w io.Writer, themes []theme.Theme) error {
	out := make([]themeJSON, len(themes))
	for i, t := range themes {
		hexes := make([]string, len(t.Colors))
		for j, c := range t.Colors {
			hexes[j] = c.Hex()
		}
		var stripes []stripeJSON
		if len(t.Colors) == theme.ColourCount {
			for _, st := range swatch.Stripes() {
				stripes = append(stripes, stripeJSON{X: st.X, Width: st.Width, Colour: hexes[st.Colour]})
			}
		}
		out[i] = themeJSON{
			Name:    t.Name,
			File:    t.Filename(),
			Colors:  hexes,
			Cursor:  t.Cursor.Hex(),
			Input:   t.Input.Hex(),
			Stripes: stripes,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode themes: %w", err)
	}
	return nil
}
