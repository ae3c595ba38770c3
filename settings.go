package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"csscolor/config"
	"csscolor/css"
)

type flags struct {
	configPath   string
	format       string
	strict       bool
	bareHex      bool
	currentColor string
	preview      bool
	reference    bool
	swatch       string
	trace        string
	verbose      bool
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default ./"+config.FileName+" when present)")
	fs.StringVarP(&f.format, "format", "f", "debug", "output format: "+strings.Join(config.Formats, ", "))
	fs.BoolVar(&f.strict, "strict", false, "reject out-of-range values instead of clamping them")
	fs.BoolVar(&f.bareHex, "bare-hex", false, "accept hex colors without the leading '#'")
	fs.StringVar(&f.currentColor, "current-color", "", "color to use for the currentcolor keyword")
	fs.BoolVar(&f.preview, "preview", false, "print a color block before each result")
	fs.BoolVar(&f.reference, "reference", false, "cross-check results against csscolorparser")
	fs.StringVar(&f.swatch, "swatch", "", "write a PNG swatch sheet of the decoded colors")
	fs.StringVar(&f.trace, "trace", "", "write Chrome trace events for each parse")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
}

// settings is the merged result of the config file and the flags.
type settings struct {
	format    string
	preview   bool
	reference bool
	swatch    string
	swatchCfg config.SwatchConfig
	trace     string
	parser    *css.Parser
}

func resolveSettings(cmd *cobra.Command, f *flags) (*settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOptional(wd, f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("bare-hex") {
		cfg.BareHex = f.bareHex
	}
	if changed("current-color") {
		cfg.CurrentColor = f.currentColor
	}
	if changed("preview") {
		cfg.Preview = f.preview
	}
	if changed("reference") {
		cfg.Reference = f.reference
	}
	if changed("swatch") {
		cfg.Swatch.Path = f.swatch
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}

	opts := css.Options{Strict: cfg.Strict, BareHex: cfg.BareHex}
	if cfg.CurrentColor != "" {
		c, err := css.ParseColor(cfg.CurrentColor)
		if err != nil {
			return nil, fmt.Errorf("current color: %w", err)
		}
		opts.CurrentColor = &c
	}
	log.Debugf("Settings: format=%s strict=%v bare_hex=%v current_color=%q", cfg.Format, cfg.Strict, cfg.BareHex, cfg.CurrentColor)

	return &settings{
		format:    cfg.Format,
		preview:   cfg.Preview,
		reference: cfg.Reference,
		swatch:    cfg.Swatch.Path,
		swatchCfg: cfg.Swatch,
		trace:     f.trace,
		parser:    css.NewParser(opts),
	}, nil
}

// maxLineSize bounds a single stdin line.
const maxLineSize = 16 << 20

// readInputs returns the non-blank lines of r.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colors from stdin: %w", err)
	}
	return inputs, nil
}
