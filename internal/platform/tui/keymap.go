package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geocoin/internal/core"
)

// KeyMap defines the key bindings of the map screen.
type KeyMap struct {
	North   key.Binding
	South   key.Binding
	East    key.Binding
	West    key.Binding
	Collect key.Binding
	Deposit key.Binding
	Save    key.Binding
	Undo    key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Collect, k.Deposit, k.Save, k.Undo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.East, k.West},
		{k.Collect, k.Deposit},
		{k.Save, k.Undo, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "north"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "south"),
		),
		East: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "east"),
		),
		West: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "west"),
		),
		Collect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collect"),
		),
		Deposit: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "deposit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a player action.
// Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.North):
		return core.ActionMoveNorth
	case key.Matches(msg, k.South):
		return core.ActionMoveSouth
	case key.Matches(msg, k.East):
		return core.ActionMoveEast
	case key.Matches(msg, k.West):
		return core.ActionMoveWest
	case key.Matches(msg, k.Collect):
		return core.ActionCollect
	case key.Matches(msg, k.Deposit):
		return core.ActionDeposit
	case key.Matches(msg, k.Save):
		return core.ActionSave
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
