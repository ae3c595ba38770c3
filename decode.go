package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	fcolor "github.com/fatih/color"

	"csscolor/color"
	"csscolor/swatch"
	"csscolor/trace"
)

type invalidColorsError struct {
	failed, total int
}

func (e *invalidColorsError) Error() string {
	return fmt.Sprintf("%d of %d colors could not be decoded", e.failed, e.total)
}

// decodeColors parses every input, printing results to outW and parse errors
// to errW. A failure never stops the remaining inputs.
func decodeColors(outW, errW io.Writer, s *settings, inputs []string) error {
	log.Debugf("Decoding %d colors", len(inputs))

	var tracer *trace.MeasureTime
	if s.trace != "" {
		f, err := os.Create(s.trace)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		tracer = trace.NewMeasureTime(f)
		defer func() {
			if tracer == nil {
				return
			}
			if err := tracer.Finish(); err != nil {
				log.Warnf("Failed to write trace %s: %v", s.trace, err)
			}
		}()
	}

	failed := 0
	var entries []swatch.Entry
	for _, input := range inputs {
		if tracer != nil {
			tracer.Time(input)
		}
		c, err := s.parser.Parse(input)
		if tracer != nil {
			tracer.Stop(input)
		}
		if s.reference {
			if msg := crossCheck(input, c, err); msg != "" {
				log.Warnf("%s", msg)
			}
		}
		if err != nil {
			failed++
			fmt.Fprintf(errW, "Error: %v\n", err)
			continue
		}

		line, err := formatColor(s.format, input, c)
		if err != nil {
			return err
		}
		if s.preview {
			line = previewBlock(c) + " " + line
		}
		fmt.Fprintln(outW, line)
		entries = append(entries, swatch.Entry{Label: input, Color: c})
	}

	if tracer != nil {
		err := tracer.Finish()
		tracer = nil
		if err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}
	if s.swatch != "" && len(entries) > 0 {
		opts := swatch.Options{
			CellWidth:  s.swatchCfg.CellWidth,
			CellHeight: s.swatchCfg.CellHeight,
			Columns:    s.swatchCfg.Columns,
			Font:       s.swatchCfg.Font,
			FontSize:   s.swatchCfg.FontSize,
		}
		if err := swatch.Save(s.swatch, entries, opts); err != nil {
			return err
		}
	}
	if failed > 0 {
		return &invalidColorsError{failed: failed, total: len(inputs)}
	}
	return nil
}

type jsonColor struct {
	Input string   `json:"input"`
	RGBA8 [4]uint8 `json:"rgba8"`
	Hex   string   `json:"hex"`
	Name  string   `json:"name,omitempty"`
}

func formatColor(format, input string, c color.Color) (string, error) {
	r, g, b, a := c.RGBA8()
	switch format {
	case "hex":
		return c.HexString(), nil
	case "css":
		return c.CSSString(), nil
	case "json":
		name, _ := color.NameOf(c)
		data, err := json.Marshal(jsonColor{Input: input, RGBA8: [4]uint8{r, g, b, a}, Hex: c.HexString(), Name: name})
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "debug":
		return fmt.Sprintf("[%d, %d, %d, %d]", r, g, b, a), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func previewBlock(c color.Color) string {
	r, g, b, _ := c.RGBA8()
	return fcolor.BgRGB(int(r), int(g), int(b)).Sprint("    ")
}

// crossCheck compares a result with csscolorparser and describes any
// disagreement. It returns "" when both agree.
func crossCheck(input string, got color.Color, err error) string {
	want, refErr := color.ParseReference(input)
	switch {
	case err != nil && refErr != nil:
		return ""
	case err != nil:
		return fmt.Sprintf("%q: rejected (%v) but csscolorparser decodes %s", input, err, want.HexString())
	case refErr != nil:
		return fmt.Sprintf("%q: decoded as %s but csscolorparser rejects it: %v", input, got.HexString(), refErr)
	case !color.SameRGBA8(got, want):
		return fmt.Sprintf("%q: decoded as %s but csscolorparser gives %s", input, got.HexString(), want.HexString())
	}
	log.Debugf("%q agrees with csscolorparser", input)
	return ""
}
