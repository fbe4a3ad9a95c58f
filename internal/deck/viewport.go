package deck

// MobileBreakpoint is the default width, in logical pixels, below which the
// deck uses the mobile layout.
const MobileBreakpoint = 768

type ViewportClass int

const (
	Mobile ViewportClass = iota
	Desktop
)

func (v ViewportClass) String() string {
	if v == Desktop {
		return "desktop"
	}
	return "mobile"
}

// Classify has no hysteresis: the same width always yields the same class.
func Classify(width, breakpoint int) ViewportClass {
	if width < breakpoint {
		return Mobile
	}
	return Desktop
}

// ResizeObserver fans viewport width changes out to subscribers. It must only
// be used from the UI goroutine.
type ResizeObserver struct {
	listeners []*resizeListener
}

type resizeListener struct {
	fn func(width int)
}

// AddListener subscribes fn and returns a function that removes it. The
// returned function may be called more than once.
func (o *ResizeObserver) AddListener(fn func(width int)) func() {
	l := &resizeListener{fn: fn}
	o.listeners = append(o.listeners, l)
	return func() {
		for i, cur := range o.listeners {
			if cur == l {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers width to every live listener in subscription order.
func (o *ResizeObserver) Notify(width int) {
	snapshot := append([]*resizeListener(nil), o.listeners...)
	for _, l := range snapshot {
		l.fn(width)
	}
}

func (o *ResizeObserver) Len() int {
	return len(o.listeners)
}
