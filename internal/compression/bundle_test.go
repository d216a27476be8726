package compression

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ulikunitz/xz"
)

func writeFiles(t *testing.T, dir string, files map[string]string) []string {
	t.Helper()
	var paths []string
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(files[name]), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestWriteTarXzRoundTrip(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, map[string]string{
		"gray.png":    "gray",
		"scarlet.png": "scarlet",
	})
	dest := filepath.Join(dir, "swatches.tar.xz")

	if err := WriteTarXz(dest, paths); err != nil {
		t.Fatalf("WriteTarXz() error = %v", err)
	}

	names, err := ListTarXz(dest)
	if err != nil {
		t.Fatalf("ListTarXz() error = %v", err)
	}
	if want := []string{"gray.png", "scarlet.png"}; !slices.Equal(names, want) {
		t.Errorf("ListTarXz() = %v, want %v", names, want)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("xz.NewReader() error = %v", err)
	}
	tr := tar.NewReader(xzr)
	header, err := tr.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	var content bytes.Buffer
	if _, err := content.ReadFrom(tr); err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if header.Name != "gray.png" || content.String() != "gray" {
		t.Errorf("first entry = %s %q, want gray.png \"gray\"", header.Name, content.String())
	}
}

func TestWriteTarXzMissingInput(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "swatches.tar.xz")

	if err := WriteTarXz(dest, []string{filepath.Join(dir, "missing.png")}); err == nil {
		t.Fatal("WriteTarXz() expected error for missing input")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed bundle left %d files behind", len(entries))
	}
}

func TestListTarXzNotArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.tar.xz")
	if err := os.WriteFile(path, []byte("not xz"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := ListTarXz(path); err == nil {
		t.Error("ListTarXz() expected error for non-xz input")
	}
}
