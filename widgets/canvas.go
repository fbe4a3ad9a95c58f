package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[m"

// Canvas is a fixed-size grid of styled lines that blocks are painted onto.
// Later paints cover earlier ones.
type Canvas struct {
	width int
	lines []string
}

func NewCanvas(width, height int) *Canvas {
	width = max(0, width)
	height = max(0, height)
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, lines: lines}
}

func (c *Canvas) Width() int { return c.width }
func (c *Canvas) Height() int { return len(c.lines) }

// Paint draws block with its top-left corner at (x, y). Parts that fall
// outside the canvas are clipped, so x and y may be negative.
func (c *Canvas) Paint(x, y int, block string) {
	if c.width == 0 {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = paintLine(c.lines[row], line, x, c.width)
	}
}

func paintLine(base, segment string, x, width int) string {
	segW := ansi.StringWidth(segment)
	if x < 0 {
		segment = dropColumns(segment, -x)
		segW += x
		x = 0
	}
	if segW <= 0 || x >= width {
		return base
	}
	if x+segW > width {
		segment = ansi.Truncate(segment, width-x, "")
		segW = width - x
	}
	left := padRightANSI(ansi.Truncate(base, x, ""), x)
	right := dropColumns(base, x+segW)
	if strings.Contains(base, "\x1b") || strings.Contains(segment, "\x1b") {
		// Keep styles from bleeding across the cut.
		segment = sgrReset + segment + sgrReset
	}
	return padRightANSI(left+segment+right, width)
}

func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
