package sandbox

import (
	"blastradius/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// Action represents a requested sandbox action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionExplode
	ActionGrenade
	ActionFlashbang
	ActionShockwave
	ActionCascade
	ActionShowBlast
	ActionShowCone
	ActionShowLine
	ActionPush
	ActionPull
	ActionToggleVariant
	ActionTeleport
	ActionReset
	ActionQuit
)

// keyToAction maps a tcell key event to a sandbox action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionExplode
	}

	// Rune keys. Case matters for push/pull and reset.
	switch ev.Rune() {
	case 'k':
		return ActionMoveN
	case 'j':
		return ActionMoveS
	case 'l':
		return ActionMoveE
	case 'h':
		return ActionMoveW
	case 'y':
		return ActionMoveNW
	case 'u':
		return ActionMoveNE
	case 'b':
		return ActionMoveSW
	case 'n':
		return ActionMoveSE
	case '.':
		return ActionWait
	case 'e':
		return ActionExplode
	case 'g':
		return ActionGrenade
	case 'f':
		return ActionFlashbang
	case 's':
		return ActionShockwave
	case 'r':
		return ActionCascade
	case 'o':
		return ActionShowBlast
	case 'c':
		return ActionShowCone
	case 'x':
		return ActionShowLine
	case 'p':
		return ActionPush
	case 'P':
		return ActionPull
	case 'v':
		return ActionToggleVariant
	case 't':
		return ActionTeleport
	case 'R':
		return ActionReset
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to a cursor step.
func actionToDelta(a Action) grid.Point {
	switch a {
	case ActionMoveN:
		return grid.P(0, -1)
	case ActionMoveS:
		return grid.P(0, 1)
	case ActionMoveE:
		return grid.P(1, 0)
	case ActionMoveW:
		return grid.P(-1, 0)
	case ActionMoveNE:
		return grid.P(1, -1)
	case ActionMoveNW:
		return grid.P(-1, -1)
	case ActionMoveSE:
		return grid.P(1, 1)
	case ActionMoveSW:
		return grid.P(-1, 1)
	}
	return grid.Point{}
}
