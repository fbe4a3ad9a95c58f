package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Direction selects the main axis of an arrangement.
type Direction int

const (
	Column Direction = iota
	Row
)

func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// Item is one block to arrange. Nudge moves it along the cross axis
// (down for a row, right for a column) and may be negative.
type Item struct {
	Block string
	Nudge int
}

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Arrange places items one after another along dir with gap cells between
// them; a negative gap overlaps neighbours and later items cover earlier
// ones. Every item is moved back along the main axis by shift cells. The
// result is clipped to clipW columns. Rects are in result coordinates.
func Arrange(dir Direction, items []Item, gap, shift, clipW int) (string, []Rect) {
	if len(items) == 0 || clipW <= 0 {
		return "", nil
	}
	slack := 0
	for _, it := range items {
		slack = max(slack, abs(it.Nudge))
	}

	rects := make([]Rect, len(items))
	cursor := -shift
	crossW, crossH := 0, 0
	for i, it := range items {
		w, h := blockSize(it.Block)
		r := Rect{W: w, H: h}
		if dir == Row {
			r.X = cursor
			r.Y = slack + it.Nudge
			cursor += w + gap
			crossH = max(crossH, r.Y+h)
		} else {
			r.X = slack + it.Nudge
			r.Y = cursor
			cursor += h + gap
			crossW = max(crossW, r.X+w)
			crossH = max(crossH, r.Y+h)
		}
		rects[i] = r
	}

	width := clipW
	if dir == Column {
		width = min(clipW, crossW)
	}
	canvas := NewCanvas(width, max(0, crossH))
	for i, it := range items {
		canvas.Paint(rects[i].X, rects[i].Y, it.Block)
	}
	return canvas.String(), rects
}

// HitTest returns the index of the topmost rect containing (x, y), or -1.
func HitTest(rects []Rect, x, y int) int {
	for i := len(rects) - 1; i >= 0; i-- {
		if rects[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

func blockSize(block string) (int, int) {
	lines := strings.Split(block, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w, len(lines)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
