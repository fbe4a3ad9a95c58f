package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is a two-faced panel. The front shows Badge, the back shows Message.
//
// Turn is the part of a flip still to play, from 1 (just clicked, old face
// fully visible) down to 0 (settled on the face selected by Flipped). The
// panel narrows towards the middle of the turn and the faces swap at 0.5.
type Card struct {
	Badge   string
	Message string
	Flipped bool
	Turn    float64
	Width   int
	Height  int
	Accent  lipgloss.Color
	Dim     bool
}

func (c Card) Render() string {
	width := max(4, c.Width)
	height := max(3, c.Height)

	turn := clampUnit(c.Turn)
	showBack := c.Flipped
	if turn > 0.5 {
		showBack = !showBack
	}
	scale := math.Abs(math.Cos(math.Pi * turn))
	faceWidth := int(math.Round(float64(width) * scale))

	var face string
	if faceWidth < 4 {
		face = c.edge(height)
		faceWidth = 1
	} else {
		face = c.face(showBack, faceWidth, height)
	}
	return centerBlock(face, faceWidth, width)
}

func (c Card) face(back bool, width, height int) string {
	innerW := width - 4
	innerH := height - 2
	content := c.Badge
	if back {
		content = c.Message
	}
	lines := strings.Split(ansi.Wordwrap(content, max(1, innerW), ""), "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
		last := lines[innerH-1]
		lines[innerH-1] = ansi.Truncate(last, max(1, innerW-1), "") + "…"
	}

	border := lipgloss.RoundedBorder()
	if back {
		border = lipgloss.DoubleBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(c.Accent).
		Padding(0, 1).
		Width(width-2).
		Height(innerH).
		Align(lipgloss.Center, lipgloss.Center)
	if back {
		style = style.Foreground(c.Accent)
	} else {
		style = style.Bold(true).Foreground(c.Accent)
	}
	if c.Dim {
		style = style.Faint(true)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (c Card) edge(height int) string {
	style := lipgloss.NewStyle().Foreground(c.Accent)
	if c.Dim {
		style = style.Faint(true)
	}
	return style.Render(strings.TrimSuffix(strings.Repeat("┃\n", height), "\n"))
}

func centerBlock(block string, blockW, width int) string {
	left := (width - blockW) / 2
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = padRightANSI(strings.Repeat(" ", left)+line, width)
	}
	return strings.Join(lines, "\n")
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
