package swatch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/swatchgen/internal/theme"
)

// WriteFile renders t into dir/<name>.png and returns the path written.
//
// The PNG is encoded into a temporary file in dir and renamed into place, so
// a failed write never leaves a partial image under the final name.
func WriteFile(dir string, t theme.Theme) (string, error) {
	finalPath := filepath.Join(dir, t.Filename())

	tmpFile, err := os.CreateTemp(dir, ".swatch-*.png.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file for %s: %w", finalPath, err)
	}
	tmpPath := tmpFile.Name()

	if err := Encode(tmpFile, t); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := tmpFile.Chmod(0o644); err != nil { // #nosec G302 - swatches are shareable assets
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to chmod %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", finalPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", finalPath, err)
	}

	return finalPath, nil
}
