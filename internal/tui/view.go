package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/greetcards/internal/deck"
	"github.com/jask/greetcards/widgets"
)

const (
	headerLines = 2
	footerLines = 3 // blank, continue button, help
	arrowWidth  = 3
	maxNudge    = 2
	mobileGap   = 1
)

type hitKind int

const (
	hitNone hitKind = iota
	hitCard
	hitSlideLeft
	hitSlideRight
	hitContinue
)

type hit struct {
	kind  hitKind
	index int
}

// frame is one rendered screen plus the regions that react to clicks,
// all in screen coordinates.
type frame struct {
	view     string
	dir      widgets.Direction
	cards    []widgets.Rect
	viewport widgets.Rect // visible part of the card area
	left     widgets.Rect
	right    widgets.Rect
	next     widgets.Rect
}

func (f frame) hitTest(x, y int) hit {
	switch {
	case f.next.Contains(x, y):
		return hit{kind: hitContinue}
	case f.left.Contains(x, y):
		return hit{kind: hitSlideLeft}
	case f.right.Contains(x, y):
		return hit{kind: hitSlideRight}
	case !f.viewport.Contains(x, y):
		return hit{kind: hitNone}
	}
	if i := widgets.HitTest(f.cards, x, y); i >= 0 {
		return hit{kind: hitCard, index: i}
	}
	return hit{kind: hitNone}
}

func (a *App) View() string {
	return a.render().view
}

func (a *App) direction() widgets.Direction {
	if a.deck.Viewport() == deck.Desktop {
		return widgets.Row
	}
	return widgets.Column
}

func (a *App) render() frame {
	width := max(1, a.width)
	f := frame{dir: a.direction()}

	header := titleStyle.Render("A few notes for you") + "\n" +
		subtitleStyle.Render(a.subtitle())

	var body string
	if f.dir == widgets.Row {
		body = a.renderRow(&f, width)
	} else {
		body = a.renderColumn(&f, width)
	}

	bodyTop := headerLines
	bodyH := lipgloss.Height(body)
	buttonRow := bodyTop + bodyH + 1

	button := ""
	if a.deck.Ready() {
		button = continueStyle.Render("Continue →")
		f.next = widgets.Rect{X: 0, Y: buttonRow, W: lipgloss.Width(button), H: 1}
	}

	f.view = strings.Join([]string{
		header,
		body,
		"",
		button,
		renderHelp(a.keys.ShortHelp()),
	}, "\n")
	return f
}

func (a *App) subtitle() string {
	flipped := 0
	for _, v := range a.deck.FlipState() {
		if v {
			flipped++
		}
	}
	if a.deck.Ready() {
		return "All read. Whenever you're ready."
	}
	return fmt.Sprintf("Flip every card (%d/%d)", flipped, a.deck.Len())
}

func (a *App) items() []widgets.Item {
	cards := a.deck.Cards()
	items := make([]widgets.Item, len(cards))
	for i, c := range cards {
		panel := widgets.Card{
			Badge:   fmt.Sprintf("♥\n\n%d", i+1),
			Message: c.Message,
			Flipped: a.deck.Flipped(i),
			Turn:    a.turns[i],
			Width:   a.cfg.Layout.CardWidth,
			Height:  a.cfg.Layout.CardHeight,
			Accent:  accentFor(c.Style),
			Dim:     !a.deck.Visible(),
		}
		items[i] = widgets.Item{Block: panel.Render(), Nudge: a.nudge(c.Rotation)}
	}
	return items
}

// nudge approximates a card's rotation with a small cross-axis offset.
func (a *App) nudge(rotation float64) int {
	step := a.cfg.Layout.RotationStep
	if step <= 0 {
		return 0
	}
	n := int(math.Round(rotation / step))
	return min(maxNudge, max(-maxNudge, n))
}

func (a *App) renderRow(f *frame, width int) string {
	clipW := max(1, width-2*arrowWidth)
	gap := -a.cfg.Layout.Cells(a.cfg.Layout.OverlapPx)
	shift := a.cfg.Layout.Cells(a.deck.Offset(a.cfg.Layout.StepPx))
	row, rects := widgets.Arrange(widgets.Row, a.items(), gap, shift, clipW)
	h := lipgloss.Height(row)

	leftStyle, rightStyle := arrowStyle, arrowStyle
	if a.deck.SlideIndex() == 0 {
		leftStyle = arrowOffStyle
	}
	if a.deck.SlideIndex() == a.deck.Len()-1 {
		rightStyle = arrowOffStyle
	}
	left := arrowColumn(leftStyle.Render(" ‹ "), h)
	right := arrowColumn(rightStyle.Render(" › "), h)

	top := headerLines
	f.viewport = widgets.Rect{X: arrowWidth, Y: top, W: clipW, H: h}
	f.left = widgets.Rect{X: 0, Y: top, W: arrowWidth, H: h}
	f.right = widgets.Rect{X: arrowWidth + clipW, Y: top, W: arrowWidth, H: h}
	f.cards = offsetRects(rects, arrowWidth, top)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, row, right)
}

func (a *App) renderColumn(f *frame, width int) string {
	col, rects := widgets.Arrange(widgets.Column, a.items(), mobileGap, 0, width)
	lines := strings.Split(col, "\n")
	avail := a.bodyHeight()
	start := min(a.scroll, len(lines))
	end := len(lines)
	if avail > 0 {
		end = min(end, start+avail)
	}
	lines = lines[start:end]

	top := headerLines
	f.viewport = widgets.Rect{X: 0, Y: top, W: width, H: len(lines)}
	f.cards = offsetRects(rects, 0, top-start)
	return strings.Join(lines, "\n")
}

// bodyHeight is the number of rows available to the cards, or 0 when the
// terminal height is not known yet.
func (a *App) bodyHeight() int {
	if a.height <= 0 {
		return 0
	}
	return max(1, a.height-headerLines-footerLines)
}

func (a *App) maxScroll() int {
	avail := a.bodyHeight()
	if avail == 0 {
		return 0
	}
	col, _ := widgets.Arrange(widgets.Column, a.items(), mobileGap, 0, max(1, a.width))
	return max(0, lipgloss.Height(col)-avail)
}

func arrowColumn(glyph string, h int) string {
	lines := make([]string, max(1, h))
	blank := strings.Repeat(" ", arrowWidth)
	for i := range lines {
		lines[i] = blank
	}
	lines[len(lines)/2] = glyph
	return strings.Join(lines, "\n")
}

func offsetRects(rects []widgets.Rect, dx, dy int) []widgets.Rect {
	out := make([]widgets.Rect, len(rects))
	for i, r := range rects {
		r.X += dx
		r.Y += dy
		out[i] = r
	}
	return out
}
