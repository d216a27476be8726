package theme

import (
	"slices"
	"strings"
	"testing"

	"github.com/jmylchreest/swatchgen/internal/colour"
)

func TestBuiltin(t *testing.T) {
	want := []string{"scarlet", "blue-and-yellow", "hyacinth", "military", "gray", "yellow-crested"}

	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	for _, th := range Builtin() {
		if len(th.Colors) != ColourCount {
			t.Errorf("theme %s has %d colours, want %d", th.Name, len(th.Colors), ColourCount)
		}
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	themes := Builtin()
	themes[0].Colors[0] = colour.RGB{}
	themes[0].Name = "changed"

	again := Builtin()
	if again[0].Name != "scarlet" {
		t.Errorf("Builtin()[0].Name = %q after mutation, want scarlet", again[0].Name)
	}
	if again[0].Colors[0] != (colour.RGB{R: 241, G: 9, B: 6}) {
		t.Errorf("Builtin()[0].Colors[0] = %+v after mutation, want unchanged", again[0].Colors[0])
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		wantOK    bool
		wantFirst colour.RGB
		wantLast  colour.RGB
	}{
		{name: "scarlet", wantOK: true, wantFirst: colour.RGB{R: 241, G: 9, B: 6}, wantLast: colour.RGB{R: 59, G: 99, B: 172}},
		{name: "military", wantOK: true, wantFirst: colour.RGB{R: 109, G: 207, B: 60}, wantLast: colour.RGB{R: 42, G: 200, B: 255}},
		{name: "yellow-crested", wantOK: true, wantFirst: colour.RGB{R: 177, G: 176, B: 194}, wantLast: colour.RGB{R: 235, G: 226, B: 95}},
		{name: "ansi", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, ok := Lookup(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if th.Colors[0] != tt.wantFirst {
				t.Errorf("Colors[0] = %+v, want %+v", th.Colors[0], tt.wantFirst)
			}
			if th.Colors[3] != tt.wantLast {
				t.Errorf("Colors[3] = %+v, want %+v", th.Colors[3], tt.wantLast)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr string
	}{
		{name: "empty selects all", names: nil, want: Names()},
		{name: "table order", names: []string{"gray", "scarlet"}, want: []string{"scarlet", "gray"}},
		{name: "duplicates collapse", names: []string{"hyacinth", "hyacinth"}, want: []string{"hyacinth"}},
		{name: "unknown", names: []string{"scarlet", "kea"}, wantErr: "unknown theme: kea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.names)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Select() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			gotNames := make([]string, len(got))
			for i, th := range got {
				gotNames[i] = th.Name
			}
			if !slices.Equal(gotNames, tt.want) {
				t.Errorf("Select() = %v, want %v", gotNames, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	th, _ := Lookup("blue-and-yellow")
	if got := th.Filename(); got != "blue-and-yellow.png" {
		t.Errorf("Filename() = %q, want blue-and-yellow.png", got)
	}
}
