package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkarpov/mariosim/internal/sim"
)

// Control is a session-level command derived from a key press, as opposed
// to a joypad action fed into the simulator.
type Control int

const (
	ControlNone         Control = iota
	ControlRandomTick   // Space/Enter - one tick with a random action
	ControlToggleAuto   // T - toggle auto-play
	ControlPause        // P - pause/resume
	ControlRestart      // R - restart the session
	ControlCycleVariant // V - next display variant
	ControlCycleScheme  // C - next control scheme
	ControlSpeedSlower  // ] - more seconds per auto tick
	ControlSpeedFaster  // [ - fewer seconds per auto tick
	ControlBack         // B/Esc - back to setup
	ControlQuit         // Q/Ctrl+C - exit
)

// actionKeys maps keys to an index into the active scheme's action set.
// Digits pick actions 1-10, then "-" and "=" reach the last two complex
// actions.
var actionKeys = map[string]int{
	"1": 0, "2": 1, "3": 2, "4": 3, "5": 4,
	"6": 5, "7": 6, "8": 7, "9": 8, "0": 9,
	"-": 10, "=": 11,
}

// KeyMapper translates Bubble Tea key messages to controls and actions.
// Centralized so the bindings are testable without a terminal.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapControl translates a key to a session control.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case " ", "enter":
		return ControlRandomTick
	case "t":
		return ControlToggleAuto
	case "p":
		return ControlPause
	case "r":
		return ControlRestart
	case "v":
		return ControlCycleVariant
	case "c":
		return ControlCycleScheme
	case "]":
		return ControlSpeedSlower
	case "[":
		return ControlSpeedFaster
	case "b", "esc":
		return ControlBack
	}
	return ControlNone
}

// MapAction translates a key to a joypad action from the given scheme's
// action set. Returns false when the key selects no action in this scheme.
func (km *KeyMapper) MapAction(msg tea.KeyMsg, scheme sim.Scheme) (sim.Action, bool) {
	idx, ok := actionKeys[msg.String()]
	if !ok {
		return sim.ActionNoop, false
	}
	set := sim.Actions(scheme)
	if idx >= len(set) {
		return sim.ActionNoop, false
	}
	return set[idx], true
}

// MenuAction is a navigation action for the setup and history screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapMenuAction translates a key to a menu navigation action.
func (km *KeyMapper) MapMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "left", "h":
		return MenuActionLeft
	case "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
