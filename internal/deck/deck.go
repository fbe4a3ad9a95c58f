// Package deck holds the interactive state of the greeting card deck: which
// cards are flipped, the one-way ready latch, the desktop slide position and
// the viewport class. It knows nothing about rendering.
package deck

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

type Options struct {
	// Breakpoint is the mobile/desktop threshold in logical pixels.
	// Zero means MobileBreakpoint.
	Breakpoint int
	// OnNext is invoked by Continue once every card has been flipped.
	OnNext func()
}

type Deck struct {
	cards      []Card
	breakpoint int
	onNext     func()

	flipped  []bool
	ready    bool
	slide    int
	viewport ViewportClass
	visible  bool

	mounted  bool
	session  string
	disposer []func()
}

func New(cards []Card, opts Options) (*Deck, error) {
	if len(cards) != Size {
		return nil, fmt.Errorf("new deck: %w: got %d", ErrCardCount, len(cards))
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = MobileBreakpoint
	}
	if opts.OnNext == nil {
		opts.OnNext = func() {}
	}
	return &Deck{
		cards:      append([]Card(nil), cards...),
		breakpoint: opts.Breakpoint,
		onNext:     opts.OnNext,
		flipped:    make([]bool, len(cards)),
	}, nil
}

// Mount starts a new session: all cards face down, slide at 0, latch clear.
// When obs is non-nil the deck follows its resize notifications until
// Unmount.
func (d *Deck) Mount(width int, obs *ResizeObserver) {
	if d.mounted {
		d.Unmount()
	}
	for i := range d.flipped {
		d.flipped[i] = false
	}
	d.ready = false
	d.slide = 0
	d.visible = false
	d.viewport = Classify(width, d.breakpoint)
	d.session = uuid.NewString()
	d.mounted = true
	if obs != nil {
		d.onUnmount(obs.AddListener(d.Resize))
	}
	log.Printf("deck %s: mounted width=%d viewport=%s", d.session, width, d.viewport)
}

// Unmount releases everything acquired by Mount, newest first. Calling it on
// an unmounted deck does nothing.
func (d *Deck) Unmount() {
	if !d.mounted {
		return
	}
	for i := len(d.disposer) - 1; i >= 0; i-- {
		d.disposer[i]()
	}
	d.disposer = nil
	d.mounted = false
	log.Printf("deck %s: unmounted", d.session)
}

func (d *Deck) onUnmount(fn func()) {
	d.disposer = append(d.disposer, fn)
}

func (d *Deck) Resize(width int) {
	next := Classify(width, d.breakpoint)
	if next != d.viewport {
		log.Printf("deck %s: viewport %s -> %s (width=%d)", d.session, d.viewport, next, width)
	}
	d.viewport = next
}

// Flip toggles one card. It reports true only on the call that sets the
// ready latch. Indexes outside the deck are ignored.
func (d *Deck) Flip(index int) bool {
	if index < 0 || index >= len(d.flipped) {
		return false
	}
	d.flipped[index] = !d.flipped[index]
	if d.ready || !d.allFlipped() {
		return false
	}
	d.ready = true
	log.Printf("deck %s: all cards flipped, ready to continue", d.session)
	return true
}

func (d *Deck) allFlipped() bool {
	for _, f := range d.flipped {
		if !f {
			return false
		}
	}
	return true
}

func (d *Deck) SlideLeft() {
	d.slide = max(d.slide-1, 0)
}

func (d *Deck) SlideRight() {
	d.slide = min(d.slide+1, len(d.cards)-1)
}

// Continue calls the host callback if the latch is set.
func (d *Deck) Continue() bool {
	if !d.ready {
		return false
	}
	log.Printf("deck %s: continue", d.session)
	d.onNext()
	return true
}

// Reveal marks the fade-in as finished.
func (d *Deck) Reveal() {
	d.visible = true
}

func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d *Deck) FlipState() []bool {
	return append([]bool(nil), d.flipped...)
}

func (d *Deck) Flipped(index int) bool {
	if index < 0 || index >= len(d.flipped) {
		return false
	}
	return d.flipped[index]
}

func (d *Deck) Ready() bool { return d.ready }
func (d *Deck) SlideIndex() int { return d.slide }
func (d *Deck) Viewport() ViewportClass { return d.viewport }
func (d *Deck) Visible() bool { return d.visible }
func (d *Deck) Mounted() bool { return d.mounted }
func (d *Deck) Session() string { return d.session }
func (d *Deck) Len() int { return len(d.cards) }

// Offset is the horizontal translation of the desktop row for the current
// slide position.
func (d *Deck) Offset(stepPx int) int {
	return d.slide * stepPx
}
