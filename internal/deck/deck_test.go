package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDeck(t *testing.T, onNext func()) *Deck {
	t.Helper()
	d, err := New(DefaultCards(), Options{OnNext: onNext})
	require.NoError(t, err)
	return d
}

func TestNewRejectsWrongCardCount(t *testing.T) {
	_, err := New(DefaultCards()[:4], Options{})
	require.ErrorIs(t, err, ErrCardCount)
}

func TestMountInitialState(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(1024, nil)

	require.True(t, d.Mounted())
	require.Equal(t, []bool{false, false, false, false, false}, d.FlipState())
	require.Equal(t, 0, d.SlideIndex())
	require.Equal(t, Desktop, d.Viewport())
	require.False(t, d.Ready())
	require.False(t, d.Visible())
	require.NotEmpty(t, d.Session())
}

func TestFlipScenarioSetsLatchOnFifthClick(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(500, nil)

	require.False(t, d.Flip(0))
	require.Equal(t, []bool{true, false, false, false, false}, d.FlipState())
	require.False(t, d.Ready())

	for i := 1; i < 4; i++ {
		require.False(t, d.Flip(i))
		require.False(t, d.Ready(), "latch set early after card %d", i)
	}
	require.True(t, d.Flip(4))
	require.True(t, d.Ready())
}

func TestLatchSurvivesUnflip(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(500, nil)
	for i := 0; i < Size; i++ {
		d.Flip(i)
	}
	require.True(t, d.Ready())

	d.Flip(2)
	d.Flip(0)
	require.False(t, d.Flipped(2))
	require.True(t, d.Ready())

	// Re-completing does not report the latch again.
	d.Flip(0)
	require.False(t, d.Flip(2))
	require.True(t, d.Ready())
}

func TestFlipStateMatchesClickParity(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(900, nil)

	rng := rand.New(rand.NewSource(7))
	counts := make([]int, Size)
	sawAll := false
	for n := 0; n < 500; n++ {
		i := rng.Intn(Size)
		d.Flip(i)
		counts[i]++
		all := true
		for j, c := range counts {
			if d.Flipped(j) != (c%2 == 1) {
				t.Fatalf("card %d: flipped=%v after %d clicks", j, d.Flipped(j), c)
			}
			all = all && c%2 == 1
		}
		sawAll = sawAll || all
		if d.Ready() != sawAll {
			t.Fatalf("step %d: ready=%v, all-flipped seen=%v", n, d.Ready(), sawAll)
		}
	}
}

func TestFlipOutOfRangeIgnored(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(900, nil)
	require.False(t, d.Flip(-1))
	require.False(t, d.Flip(Size))
	require.Equal(t, make([]bool, Size), d.FlipState())
	require.False(t, d.Flipped(Size))
}

func TestSlideClamps(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(1024, nil)

	d.SlideLeft()
	require.Equal(t, 0, d.SlideIndex())

	for i := 0; i < Size-1; i++ {
		d.SlideRight()
	}
	require.Equal(t, Size-1, d.SlideIndex())
	d.SlideRight()
	d.SlideRight()
	require.Equal(t, Size-1, d.SlideIndex())
	require.Equal(t, 400, d.Offset(100))

	d.SlideLeft()
	require.Equal(t, 3, d.SlideIndex())
}

func TestSlideNeverLeavesRange(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(1024, nil)
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 300; n++ {
		if rng.Intn(2) == 0 {
			d.SlideLeft()
		} else {
			d.SlideRight()
		}
		if s := d.SlideIndex(); s < 0 || s > Size-1 {
			t.Fatalf("slide index %d out of range", s)
		}
	}
}

func TestResizeClassifies(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(1024, nil)

	d.Resize(500)
	require.Equal(t, Mobile, d.Viewport())
	d.Resize(1024)
	require.Equal(t, Desktop, d.Viewport())
	d.Resize(767)
	require.Equal(t, Mobile, d.Viewport())
	d.Resize(768)
	require.Equal(t, Desktop, d.Viewport())
}

func TestCustomBreakpoint(t *testing.T) {
	d, err := New(DefaultCards(), Options{Breakpoint: 1000})
	require.NoError(t, err)
	d.Mount(900, nil)
	require.Equal(t, Mobile, d.Viewport())
}

func TestContinueRequiresLatch(t *testing.T) {
	calls := 0
	d := newTestDeck(t, func() { calls++ })
	d.Mount(1024, nil)

	require.False(t, d.Continue())
	require.Equal(t, 0, calls)

	for i := 0; i < Size; i++ {
		d.Flip(i)
	}
	require.True(t, d.Continue())
	require.Equal(t, 1, calls)
	require.True(t, d.Continue())
	require.Equal(t, 2, calls)
}

func TestNilOnNextIsNoop(t *testing.T) {
	d := newTestDeck(t, nil)
	d.Mount(1024, nil)
	for i := 0; i < Size; i++ {
		d.Flip(i)
	}
	require.True(t, d.Continue())
}

func TestMountSubscribesAndUnmountReleases(t *testing.T) {
	obs := &ResizeObserver{}
	d := newTestDeck(t, nil)
	d.Mount(1024, obs)
	require.Equal(t, 1, obs.Len())

	obs.Notify(400)
	require.Equal(t, Mobile, d.Viewport())

	d.Unmount()
	require.Equal(t, 0, obs.Len())
	require.False(t, d.Mounted())

	obs.Notify(2000)
	require.Equal(t, Mobile, d.Viewport(), "unmounted deck still followed resizes")

	d.Unmount()
	require.Equal(t, 0, obs.Len())
}

func TestRemountStartsFreshSession(t *testing.T) {
	obs := &ResizeObserver{}
	d := newTestDeck(t, nil)
	d.Mount(1024, obs)
	first := d.Session()
	for i := 0; i < Size; i++ {
		d.Flip(i)
	}
	d.SlideRight()
	d.Reveal()

	d.Mount(600, obs)
	require.Equal(t, 1, obs.Len(), "remount leaked the previous listener")
	require.NotEqual(t, first, d.Session())
	require.False(t, d.Ready())
	require.False(t, d.Visible())
	require.Equal(t, 0, d.SlideIndex())
	require.Equal(t, Mobile, d.Viewport())
	require.Equal(t, make([]bool, Size), d.FlipState())
}

func TestCardsReturnsCopy(t *testing.T) {
	d := newTestDeck(t, nil)
	cards := d.Cards()
	cards[1].Message = "changed"
	require.NotEqual(t, "changed", d.Cards()[1].Message)
	require.Equal(t, Size, d.Len())
}
