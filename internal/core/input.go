package core

import "github.com/vovakirdan/geocoin/internal/grid"

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveEast
	ActionMoveWest
	ActionCollect // Take the first coin of the cache underfoot
	ActionDeposit // Drop the last collected coin underfoot
	ActionSave
	ActionUndo
	ActionReset
	ActionHelp
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveNorth:
		return "North"
	case ActionMoveSouth:
		return "South"
	case ActionMoveEast:
		return "East"
	case ActionMoveWest:
		return "West"
	case ActionCollect:
		return "Collect"
	case ActionDeposit:
		return "Deposit"
	case ActionSave:
		return "Save"
	case ActionUndo:
		return "Undo"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction of a move action.
func (a Action) Direction() (grid.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return grid.North, true
	case ActionMoveSouth:
		return grid.South, true
	case ActionMoveEast:
		return grid.East, true
	case ActionMoveWest:
		return grid.West, true
	}
	return 0, false
}

// Mutates reports whether the action changes game state.
func (a Action) Mutates() bool {
	switch a {
	case ActionNone, ActionHelp, ActionQuit:
		return false
	}
	return true
}
