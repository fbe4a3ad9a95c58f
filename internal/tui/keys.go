package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Flip       key.Binding
	SlideLeft  key.Binding
	SlideRight key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Continue   key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Flip:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "flip")),
		SlideLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "slide")),
		SlideRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "slide")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j")),
		Continue:   key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "continue")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.SlideLeft, k.SlideRight, k.ScrollUp, k.Continue, k.Quit}
}

// flipIndex maps a digit key to a zero-based card index.
func flipIndex(msg tea.KeyMsg) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(msg.String()))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}
