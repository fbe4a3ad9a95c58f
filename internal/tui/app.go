package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/greetcards/internal/config"
	"github.com/jask/greetcards/internal/deck"
)

// App hosts a mounted card deck in a terminal. Terminal columns are turned
// into logical pixels with the configured cell width before they reach the
// deck.
type App struct {
	cfg    config.Config
	deck   *deck.Deck
	resize *deck.ResizeObserver
	keys   keyMap

	width  int
	height int
	scroll int // mobile only

	// turns holds the remaining flip animation per card, 1 down to 0.
	turns     []float64
	animating bool
}

// New builds and mounts a deck for a terminal that is width columns wide.
// onNext is called when the user continues after flipping every card.
func New(cfg config.Config, cards []deck.Card, width int, onNext func()) (*App, error) {
	d, err := deck.New(cards, deck.Options{
		Breakpoint: cfg.Layout.BreakpointPx,
		OnNext:     onNext,
	})
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:    cfg,
		deck:   d,
		resize: &deck.ResizeObserver{},
		keys:   newKeyMap(),
		width:  width,
		turns:  make([]float64, d.Len()),
	}
	d.Mount(cfg.Layout.Pixels(width), a.resize)
	a.syncKeys()
	return a, nil
}

func (a *App) Deck() *deck.Deck { return a.deck }

func (a *App) Init() tea.Cmd {
	return fadeInCmd(a.cfg.UI.FadeIn, a.deck.Session())
}

// Close unmounts the deck. It is safe to call more than once.
func (a *App) Close() {
	a.deck.Unmount()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncKeys()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize.Notify(a.cfg.Layout.Pixels(msg.Width))
		a.clampScroll()
		return nil
	case fadeInMsg:
		if msg.session == a.deck.Session() {
			a.deck.Reveal()
		}
		return nil
	case flipFrameMsg:
		return a.advanceFlips()
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Flip):
		if i, ok := flipIndex(msg); ok {
			return a.flip(i)
		}
	case key.Matches(msg, a.keys.SlideLeft):
		a.deck.SlideLeft()
	case key.Matches(msg, a.keys.SlideRight):
		a.deck.SlideRight()
	case key.Matches(msg, a.keys.ScrollUp):
		a.scrollBy(-1)
	case key.Matches(msg, a.keys.ScrollDown):
		a.scrollBy(1)
	case key.Matches(msg, a.keys.Continue):
		a.deck.Continue()
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.scrollBy(-1)
		return nil
	case msg.Button == tea.MouseButtonWheelDown:
		a.scrollBy(1)
		return nil
	case msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress:
		return nil
	}

	hit := a.render().hitTest(msg.X, msg.Y)
	switch hit.kind {
	case hitCard:
		return a.flip(hit.index)
	case hitSlideLeft:
		a.deck.SlideLeft()
	case hitSlideRight:
		a.deck.SlideRight()
	case hitContinue:
		a.deck.Continue()
	}
	return nil
}

func (a *App) flip(i int) tea.Cmd {
	if i < 0 || i >= a.deck.Len() {
		return nil
	}
	a.deck.Flip(i)
	if a.cfg.UI.FlipFrames <= 0 {
		return nil
	}
	// A click mid-turn reverses from where the card currently is.
	a.turns[i] = 1 - a.turns[i]
	if a.animating {
		return nil
	}
	a.animating = true
	return flipFrameCmd()
}

func (a *App) advanceFlips() tea.Cmd {
	step := 1 / float64(max(1, a.cfg.UI.FlipFrames))
	pending := false
	for i, t := range a.turns {
		if t <= 0 {
			continue
		}
		a.turns[i] = max(0, t-step)
		pending = pending || a.turns[i] > 0
	}
	if !pending {
		a.animating = false
		return nil
	}
	return flipFrameCmd()
}

func (a *App) scrollBy(delta int) {
	if a.deck.Viewport() != deck.Mobile {
		return
	}
	a.scroll += delta
	a.clampScroll()
}

func (a *App) clampScroll() {
	if a.deck.Viewport() != deck.Mobile {
		a.scroll = 0
		return
	}
	a.scroll = min(a.scroll, a.maxScroll())
	a.scroll = max(a.scroll, 0)
}

func (a *App) quit() tea.Cmd {
	log.Printf("greetcards: quit requested")
	a.Close()
	return tea.Quit
}

// syncKeys enables only the controls the current layout renders.
func (a *App) syncKeys() {
	mobile := a.deck.Viewport() == deck.Mobile
	a.keys.SlideLeft.SetEnabled(!mobile)
	a.keys.SlideRight.SetEnabled(!mobile)
	a.keys.ScrollUp.SetEnabled(mobile)
	a.keys.ScrollDown.SetEnabled(mobile)
	a.keys.Continue.SetEnabled(a.deck.Ready())
}
