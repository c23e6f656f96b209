// Package tui provides the Bubble Tea host shell for geocoin.
// It handles the terminal UI loop, key mapping, the SSH server and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long the latest event stays on the status line.
const flashDuration = 4 * time.Second

// FlashExpiredMsg is sent when the status line message of action seq expires.
type FlashExpiredMsg struct {
	Seq int
}

// flashCmd returns a Bubble Tea command that expires the flash of action seq.
func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return FlashExpiredMsg{Seq: seq}
	})
}
