// Package swatch draws decoded colors into a PNG sheet, one labelled cell
// per color.
package swatch

import (
	"fmt"
	"image"

	"fortio.org/log"
	"github.com/fogleman/gg"

	"csscolor/color"
	"csscolor/font"
	"csscolor/rect"
)

const (
	padding     = 6
	checkerSize = 8

	defaultCellWidth  = 160
	defaultCellHeight = 64
	defaultColumns    = 4
	defaultFontSize   = 12
)

type Entry struct {
	Label string
	Color color.Color
}

type Options struct {
	CellWidth  int
	CellHeight int
	Columns    int
	Font       string
	FontSize   float64
}

// withDefaults fills in any size left at zero or below.
func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = defaultCellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = defaultCellHeight
	}
	if o.Columns <= 0 {
		o.Columns = defaultColumns
	}
	if o.FontSize <= 0 {
		o.FontSize = defaultFontSize
	}
	return o
}

// Render draws the entries and returns the image. It returns nil when
// entries is empty. Unset sizes in opts take their defaults.
func Render(entries []Entry, opts Options) image.Image {
	if len(entries) == 0 {
		return nil
	}
	opts = opts.withDefaults()
	cw, ch := float64(opts.CellWidth), float64(opts.CellHeight)
	bounds := rect.GridBounds(len(entries), opts.Columns, cw, ch).RoundOutToInt()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face := font.GetFont(opts.Font, opts.FontSize)
	dc.SetFontFace(face.Font)
	labelHeight := 2 * font.Linespace(face.Font)

	for i, e := range entries {
		cell := rect.Grid(i, opts.Columns, cw, ch)
		inner := cell.Clone()
		inner.Inflate(-padding, -padding)
		if inner.IsEmpty() {
			log.Debugf("Swatch cell %d too small: %v", i, inner)
			continue
		}

		box := inner.Clone()
		box.Bottom -= labelHeight
		if !box.IsEmpty() {
			drawChecker(dc, box)
			dc.SetRGBA(e.Color.R, e.Color.G, e.Color.B, e.Color.A)
			dc.DrawRectangle(box.Left, box.Top, box.Width(), box.Height())
			dc.Fill()
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.SetLineWidth(1)
			dc.DrawRectangle(box.Left, box.Top, box.Width(), box.Height())
			dc.Stroke()
		}

		dc.SetRGB(0, 0, 0)
		textTop := inner.Bottom - labelHeight + font.Ascent(face.Font)
		dc.DrawString(fit(face, e.Label, inner.Width()), inner.Left, textTop)
		dc.DrawString(e.Color.HexString(), inner.Left, textTop+labelHeight/2)
	}
	return dc.Image()
}

// Save renders the entries and writes them to path as PNG.
func Save(path string, entries []Entry, opts Options) error {
	img := Render(entries, opts)
	if img == nil {
		return fmt.Errorf("no colors to draw")
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write swatch %s: %w", path, err)
	}
	log.Infof("Wrote %d colors to %s", len(entries), path)
	return nil
}

func drawChecker(dc *gg.Context, r *rect.Rect) {
	dc.SetRGB(0.8, 0.8, 0.8)
	for y := r.Top; y < r.Bottom; y += checkerSize {
		for x := r.Left; x < r.Right; x += checkerSize {
			if int((x-r.Left)/checkerSize+(y-r.Top)/checkerSize)%2 == 0 {
				continue
			}
			dc.DrawRectangle(x, y, min(checkerSize, r.Right-x), min(checkerSize, r.Bottom-y))
		}
	}
	dc.Fill()
}

// fit shortens label with an ellipsis until it fits in width.
func fit(face font.FontItem, label string, width float64) string {
	if font.Measure(face.Font, label) <= width {
		return label
	}
	runes := []rune(label)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := string(runes) + "..."
		if font.Measure(face.Font, s) <= width {
			return s
		}
	}
	return ""
}
