package tui

import "github.com/vovakirdan/geocoin/internal/events"

// StatusLog is a bus observer that keeps the latest event messages for display.
type StatusLog struct {
	limit int
	lines []string
	flash string
	kind  events.Kind
}

// NewStatusLog creates a status log that keeps up to limit messages.
func NewStatusLog(limit int) *StatusLog {
	if limit < 1 {
		limit = 1
	}
	return &StatusLog{limit: limit}
}

// OnEvent records e as the newest message.
func (l *StatusLog) OnEvent(e events.Event) {
	l.lines = append(l.lines, e.Message)
	if len(l.lines) > l.limit {
		l.lines = l.lines[len(l.lines)-l.limit:]
	}
	l.flash = e.Message
	l.kind = e.Kind
}

// Lines returns the kept messages, oldest first.
func (l *StatusLog) Lines() []string {
	return l.lines
}

// Flash returns the message currently shown on the status line.
func (l *StatusLog) Flash() (string, events.Kind) {
	return l.flash, l.kind
}

// ClearFlash empties the status line.
func (l *StatusLog) ClearFlash() {
	l.flash = ""
}
