// Package sim implements the simulated play session: a bundle of counters
// advanced by discrete ticks plus a placeholder frame renderer. There is no
// emulation or physics here; every tick is a small random mutation of the
// counters, which is the entire point of the demo.
package sim

import "fmt"

// Scheme selects which joypad action set drives the session.
type Scheme string

const (
	SchemeSimple    Scheme = "simple"
	SchemeComplex   Scheme = "complex"
	SchemeRightOnly Scheme = "right"
)

// Action is a named joypad button combination, e.g. "right+A".
type Action string

// ActionNoop is the do-nothing action present in every scheme.
const ActionNoop Action = "NOOP"

// NES joypad combinations per scheme. Right-only is the minimal set for
// walking right, simple adds left movement and standalone jump, complex
// adds left combinations and the d-pad verticals.
var (
	rightOnlyActions = []Action{
		ActionNoop,
		"right",
		"right+A",
		"right+B",
		"right+A+B",
	}

	simpleActions = []Action{
		ActionNoop,
		"right",
		"right+A",
		"right+B",
		"right+A+B",
		"A",
		"left",
	}

	complexActions = []Action{
		ActionNoop,
		"right",
		"right+A",
		"right+B",
		"right+A+B",
		"A",
		"left",
		"left+A",
		"left+B",
		"left+A+B",
		"down",
		"up",
	}
)

// Actions returns the ordered action set for a scheme.
// The returned slice is a copy and safe to modify.
func Actions(s Scheme) []Action {
	var set []Action
	switch s {
	case SchemeComplex:
		set = complexActions
	case SchemeRightOnly:
		set = rightOnlyActions
	default:
		set = simpleActions
	}

	out := make([]Action, len(set))
	copy(out, set)
	return out
}

// Contains reports whether the scheme's action set includes the action.
func (s Scheme) Contains(a Action) bool {
	for _, candidate := range Actions(s) {
		if candidate == a {
			return true
		}
	}
	return false
}

// Title returns a display name for the scheme including its action count.
func (s Scheme) Title() string {
	switch s {
	case SchemeComplex:
		return fmt.Sprintf("Complex (%d actions)", len(complexActions))
	case SchemeRightOnly:
		return fmt.Sprintf("Right only (%d actions)", len(rightOnlyActions))
	default:
		return fmt.Sprintf("Simple (%d actions)", len(simpleActions))
	}
}

// Schemes returns all control schemes in presentation order.
func Schemes() []Scheme {
	return []Scheme{SchemeSimple, SchemeComplex, SchemeRightOnly}
}

// ParseScheme converts a string to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeSimple, SchemeComplex, SchemeRightOnly:
		return Scheme(s), nil
	}
	return "", fmt.Errorf("sim: unknown control scheme %q", s)
}
