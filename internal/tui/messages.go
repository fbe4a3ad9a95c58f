package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fadeInMsg finishes the mount fade-in for the session that scheduled it.
type fadeInMsg struct {
	session string
}

type flipFrameMsg struct{}

const flipFrameInterval = 30 * time.Millisecond

func fadeInCmd(delay time.Duration, session string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return fadeInMsg{session: session} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return fadeInMsg{session: session}
	})
}

func flipFrameCmd() tea.Cmd {
	return tea.Tick(flipFrameInterval, func(time.Time) tea.Msg {
		return flipFrameMsg{}
	})
}
