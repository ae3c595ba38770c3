package rect

import (
	"fmt"
	"image"
	"math"
)

type Rect struct {
	Left, Top, Right, Bottom float64
}

func NewRect(left, top, right, bottom float64) *Rect {
	return &Rect{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// Grid returns the rect of cell n in a grid of the given column count, cells
// laid out left to right, top to bottom. Fewer than one column means one.
func Grid(n, columns int, cellWidth, cellHeight float64) *Rect {
	columns = max(columns, 1)
	col := float64(n % columns)
	row := float64(n / columns)
	return NewRect(col*cellWidth, row*cellHeight, (col+1)*cellWidth, (row+1)*cellHeight)
}

// GridBounds is the size of a grid holding count cells.
func GridBounds(count, columns int, cellWidth, cellHeight float64) *Rect {
	if count == 0 {
		return NewRect(0, 0, 0, 0)
	}
	columns = max(columns, 1)
	cols := min(count, columns)
	rows := (count + columns - 1) / columns
	return NewRect(0, 0, float64(cols)*cellWidth, float64(rows)*cellHeight)
}

func (r *Rect) Inflate(dx, dy float64) {
	r.Left -= dx
	r.Top -= dy
	r.Right += dx
	r.Bottom += dy
}

func (r *Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

func (r *Rect) RoundOutToInt() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)),
		int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)),
		int(math.Ceil(r.Bottom)),
	)
}

func (r *Rect) Width() float64 {
	return r.Right - r.Left
}

func (r *Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r *Rect) String() string {
	return fmt.Sprintf("Rect(left=%.2f, top=%.2f, right=%.2f, bottom=%.2f)", r.Left, r.Top, r.Right, r.Bottom)
}

func (r *Rect) Clone() *Rect {
	return &Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
