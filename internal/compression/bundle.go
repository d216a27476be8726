// Package compression writes and reads .tar.xz bundles of rendered swatches.
package compression

import (
	"archive/tar"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatchgen/internal/security"
)

const (
	// maxBundleSize bounds how much decompressed data ListTarXz will read.
	maxBundleSize = 64 * 1024 * 1024

	// entryRoot anchors entry names when checking them for traversal.
	entryRoot = "bundle"
)

// WriteTarXz bundles files into an xz-compressed tar archive at dest.
// Entries are stored under their base names with a zero modification time so
// identical inputs produce identical archives.
func WriteTarXz(dest string, files []string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(dest), ".bundle-*.tar.xz.tmp")
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := writeTarXz(tmpFile, files); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close bundle: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write bundle %s: %w", dest, err)
	}
	return nil
}

func writeTarXz(w io.Writer, files []string) error {
	bw := bufio.NewWriter(w)
	xzw, err := xz.NewWriter(bw)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	for _, path := range files {
		if err := addFile(tw, path); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar archive: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return bw.Flush()
}

func addFile(tw *tar.Writer, path string) error {
	name := filepath.Base(path)
	if err := security.ValidateFilePath(name, entryRoot); err != nil {
		return fmt.Errorf("invalid bundle entry %q: %w", path, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 - paths come from the swatches just written
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	header := &tar.Header{
		Name:     name,
		Mode:     0o644,
		Size:     int64(len(data)),
		Typeflag: tar.TypeReg,
		Format:   tar.FormatPAX,
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// ListTarXz returns the regular-file entry names of an xz-compressed tar
// archive in archive order.
func ListTarXz(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 - user-specified bundle, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer f.Close()

	xzr, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(security.NewLimitedReader(xzr, maxBundleSize))

	var names []string
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := security.ValidateFilePath(header.Name, entryRoot); err != nil {
			return nil, fmt.Errorf("invalid bundle entry %q: %w", header.Name, err)
		}
		names = append(names, header.Name)
	}
	return names, nil
}
