package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptionalMissingDefault(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir(), "")
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected an empty config (-want +got):\n%s", diff)
	}
}

func TestLoadOptionalMissingExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadOptional("", path); err == nil || !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("expected an error naming the file, got %v", err)
	}
}

func TestLoadOptionalReadsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
format: hex
strict: true
bare_hex: true
current_color: "#123"
swatch:
  path: out.png
  columns: 3
  font_size: 9.5
`)
	cfg, err := LoadOptional(dir, "")
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	want := &Config{
		Format:       "hex",
		Strict:       true,
		BareHex:      true,
		CurrentColor: "#123",
		Swatch:       SwatchConfig{Path: "out.png", Columns: 3, FontSize: 9.5},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptionalInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "format: [unclosed\n")
	if _, err := LoadOptional("", path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in      Config
		want    Config
		wantErr bool
	}{
		{
			in: Config{},
			want: Config{Format: "debug", Swatch: SwatchConfig{
				CellWidth: 160, CellHeight: 64, Columns: 4, FontSize: 12,
			}},
		},
		{
			in: Config{Format: " JSON ", Swatch: SwatchConfig{CellWidth: 10, CellHeight: 20, Columns: 1, FontSize: 8}},
			want: Config{Format: "json", Swatch: SwatchConfig{
				CellWidth: 10, CellHeight: 20, Columns: 1, FontSize: 8,
			}},
		},
		{in: Config{Format: "yaml"}, wantErr: true},
	}
	for _, tt := range tests {
		got := tt.in
		err := got.Resolve()
		if tt.wantErr {
			if err == nil {
				t.Errorf("Resolve(%+v): expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%+v) failed: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Resolve(%+v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
