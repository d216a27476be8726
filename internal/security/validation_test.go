package security

import (
	"io"
	"strings"
	"testing"
)

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "plain file", path: "scarlet.png"},
		{name: "nested", path: "swatches/scarlet.png"},
		{name: "empty", path: "", wantErr: true},
		{name: "traversal", path: "../scarlet.png", wantErr: true},
		{name: "absolute", path: "/etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path, "/tmp/base")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLimitedReader(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("0123456789"), 4)
	buf := make([]byte, 10)

	n, err := r.Read(buf)
	if err != nil || n != 4 {
		t.Fatalf("Read() = %d, %v; want 4, nil", n, err)
	}
	if _, err := r.Read(buf); err == nil || err == io.EOF {
		t.Errorf("Read() past limit error = %v, want limit error", err)
	}
}
