// Package memento keeps a LIFO stack of game state snapshots for undo.
// Loading is destructive: each snapshot can be restored at most once.
package memento

import (
	"io"

	"github.com/charmbracelet/log"
)

// Manager owns the snapshot stack.
type Manager struct {
	mementos []Snapshot
	limit    int
	logger   *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLimit caps the stack depth; the oldest snapshot is dropped when a save
// would exceed it. Zero or less means unbounded.
func WithLimit(n int) Option {
	return func(m *Manager) {
		m.limit = n
	}
}

// WithLogger sets the logger used for save/load diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save deep-copies the given state and pushes it.
func (m *Manager) Save(player PlayerData, world WorldData, decided map[string]bool) {
	m.Push(Snapshot{Player: player, World: world, Decided: decided})
}

// Push deep-copies s and pushes it.
func (m *Manager) Push(s Snapshot) {
	m.mementos = append(m.mementos, s.Clone())
	if m.limit > 0 && len(m.mementos) > m.limit {
		dropped := len(m.mementos) - m.limit
		m.mementos = append(m.mementos[:0:0], m.mementos[dropped:]...)
		m.logger.Debug("oldest game state dropped", "limit", m.limit)
	}
	m.logger.Debug("game state saved", "saves", len(m.mementos))
}

// Load pops the most recent snapshot. ok is false when the stack is empty.
func (m *Manager) Load() (s Snapshot, ok bool) {
	if len(m.mementos) == 0 {
		m.logger.Debug("no saved states available")
		return Snapshot{}, false
	}
	last := len(m.mementos) - 1
	s = m.mementos[last]
	m.mementos[last] = Snapshot{}
	m.mementos = m.mementos[:last]
	m.logger.Debug("game state loaded", "remaining", len(m.mementos))
	return s, true
}

// Reset discards every saved snapshot. Live game state is not touched.
func (m *Manager) Reset() {
	m.mementos = nil
	m.logger.Debug("all saved game states have been reset")
}

// Len returns the number of saved snapshots.
func (m *Manager) Len() int {
	return len(m.mementos)
}
