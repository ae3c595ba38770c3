// Package config loads the optional csscolor.yaml file.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "csscolor.yaml"

// Formats lists the accepted output formats.
var Formats = []string{"debug", "hex", "css", "json"}

// Config mirrors csscolor.yaml.
type Config struct {
	Format       string       `yaml:"format,omitempty"`
	Strict       bool         `yaml:"strict,omitempty"`
	BareHex      bool         `yaml:"bare_hex,omitempty"`
	CurrentColor string       `yaml:"current_color,omitempty"`
	Preview      bool         `yaml:"preview,omitempty"`
	Reference    bool         `yaml:"reference,omitempty"`
	Swatch       SwatchConfig `yaml:"swatch"`
}

// SwatchConfig controls the PNG swatch sheet.
type SwatchConfig struct {
	Path       string  `yaml:"path,omitempty"`
	CellWidth  int     `yaml:"cell_width,omitempty"`
	CellHeight int     `yaml:"cell_height,omitempty"`
	Columns    int     `yaml:"columns,omitempty"`
	Font       string  `yaml:"font,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty"`
}

// LoadOptional reads the config at path. A missing file yields an empty
// config. An empty path means FileName in dir.
func LoadOptional(dir, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &cfg, nil
}

// Resolve fills in defaults and validates the values.
func (c *Config) Resolve() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "debug"
	}
	if !slices.Contains(Formats, c.Format) {
		return errors.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}

	s := &c.Swatch
	if s.CellWidth <= 0 {
		s.CellWidth = 160
	}
	if s.CellHeight <= 0 {
		s.CellHeight = 64
	}
	if s.Columns <= 0 {
		s.Columns = 4
	}
	if s.FontSize <= 0 {
		s.FontSize = 12
	}
	return nil
}
