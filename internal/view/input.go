package view

import "github.com/gdamore/tcell/v2"

// Action is a viewer command requested from the keyboard.
type Action uint8

const (
	ActionNone Action = iota
	ActionScrollN
	ActionScrollS
	ActionScrollE
	ActionScrollW
	ActionRegenerate
	ActionToggleMountains
	ActionMoreIslands
	ActionFewerIslands
	ActionCycleTheme
	ActionCenter
	ActionQuit
)

const helpText = "r new map  m mountains  +/- islands  t theme  arrows/hjkl scroll  c center  q quit"

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionScrollN
	case tcell.KeyDown:
		return ActionScrollS
	case tcell.KeyRight:
		return ActionScrollE
	case tcell.KeyLeft:
		return ActionScrollW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionScrollN
	case 'j', 'J':
		return ActionScrollS
	case 'l', 'L':
		return ActionScrollE
	case 'h', 'H':
		return ActionScrollW
	case 'r', 'R', ' ':
		return ActionRegenerate
	case 'm', 'M':
		return ActionToggleMountains
	case '+', '=':
		return ActionMoreIslands
	case '-', '_':
		return ActionFewerIslands
	case 't', 'T':
		return ActionCycleTheme
	case 'c', 'C':
		return ActionCenter
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// scrollDelta converts a scroll action to (dRow, dCol).
func scrollDelta(a Action) (int, int) {
	switch a {
	case ActionScrollN:
		return -1, 0
	case ActionScrollS:
		return 1, 0
	case ActionScrollE:
		return 0, 1
	case ActionScrollW:
		return 0, -1
	}
	return 0, 0
}
