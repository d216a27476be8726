package swatch

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatchgen/internal/theme"
)

// Generator writes swatches for a list of themes into one directory.
type Generator struct {
	outputDir string
	logger    hclog.Logger
}

// NewGenerator creates a Generator writing into outputDir.
// An empty outputDir means the current working directory; a nil logger
// discards output.
func NewGenerator(outputDir string, logger hclog.Logger) *Generator {
	if outputDir == "" {
		outputDir = "."
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{
		outputDir: outputDir,
		logger:    logger.Named("swatch"),
	}
}

// OutputDir returns the directory swatches are written to.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Generate writes one swatch per theme, in order, and returns the paths
// written. It stops at the first failure; files already written are kept.
func (g *Generator) Generate(ctx context.Context, themes []theme.Theme) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil { // #nosec G301 - output directory for shareable assets
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(themes))
	for _, t := range themes {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		g.logger.Debug("rendering swatch", "theme", t.Name, "colours", len(t.Colors))
		path, err := WriteFile(g.outputDir, t)
		if err != nil {
			g.logger.Error("swatch failed", "theme", t.Name, "error", err)
			return paths, err
		}
		g.logger.Info("wrote swatch", "theme", t.Name, "path", path)
		paths = append(paths, path)
	}

	return paths, nil
}
