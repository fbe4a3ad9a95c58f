package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func renderPlain(c Card) []string {
	return strings.Split(ansi.Strip(c.Render()), "\n")
}

func TestCardFaces(t *testing.T) {
	c := Card{Badge: "♥ 1", Message: "hello there", Width: 20, Height: 7, Accent: "#f38ba8"}

	front := strings.Join(renderPlain(c), "\n")
	if !strings.Contains(front, "♥ 1") || strings.Contains(front, "hello") {
		t.Fatalf("front face should show only the badge:\n%s", front)
	}

	c.Flipped = true
	back := strings.Join(renderPlain(c), "\n")
	if !strings.Contains(back, "hello there") || strings.Contains(back, "♥ 1") {
		t.Fatalf("back face should show only the message:\n%s", back)
	}
}

func TestCardKeepsFootprint(t *testing.T) {
	for _, turn := range []float64{0, 0.2, 0.5, 0.8, 1} {
		c := Card{Badge: "B", Message: "m", Width: 16, Height: 6, Turn: turn, Flipped: true}
		lines := renderPlain(c)
		if len(lines) != 6 {
			t.Fatalf("turn %.1f: expected 6 lines, got %d", turn, len(lines))
		}
		for _, l := range lines {
			if w := ansi.StringWidth(l); w != 16 {
				t.Fatalf("turn %.1f: expected width 16, got %d (%q)", turn, w, l)
			}
		}
	}
}

func TestCardTurnSwapsFaceAtHalfway(t *testing.T) {
	c := Card{Badge: "FRONT", Message: "BACK", Width: 20, Height: 5, Flipped: true}

	c.Turn = 0.9
	if out := strings.Join(renderPlain(c), ""); !strings.Contains(out, "FRONT") {
		t.Fatalf("early in the turn the old face should show: %q", out)
	}
	c.Turn = 0.1
	if out := strings.Join(renderPlain(c), ""); !strings.Contains(out, "BACK") {
		t.Fatalf("late in the turn the new face should show: %q", out)
	}
	c.Turn = 0.5
	if out := strings.Join(renderPlain(c), ""); !strings.Contains(out, "┃") {
		t.Fatalf("mid-turn the card should be edge-on: %q", out)
	}
}

func TestCardTruncatesLongMessage(t *testing.T) {
	c := Card{
		Message: strings.Repeat("word ", 60),
		Flipped: true,
		Width:   14,
		Height:  5,
	}
	lines := renderPlain(c)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(strings.Join(lines, ""), "…") {
		t.Fatalf("expected ellipsis on truncated message")
	}
}
