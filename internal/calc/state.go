// Package calc implements the calculator's input state machine: button
// presses mutate an explicit State and push display/result text to a
// Renderer.
package calc

import "github.com/jask/jaskcalc/internal/arith"

// Operand selects which of the two operands receives digit presses.
type Operand int

const (
	First Operand = iota
	Second
)

func (o Operand) String() string {
	if o == Second {
		return "second"
	}
	return "first"
}

// State is the calculator's whole mutable state. Operands hold the raw text
// typed by the user; they are only parsed when an evaluation happens.
type State struct {
	FirstOperand  string
	SecondOperand string
	Active        Operand
	Pending       arith.Operator
	LastResult    string

	// lastValue is the number LastResult was formatted from.
	lastValue float64
	hasValue  bool
}

// NewState returns a state with empty operands and no pending operator.
func NewState() *State {
	return &State{}
}

// Reset returns s to its initial values.
func (s *State) Reset() {
	*s = State{}
}

// ActiveText is the raw text of the operand receiving digits.
func (s State) ActiveText() string {
	if s.Active == Second {
		return s.SecondOperand
	}
	return s.FirstOperand
}

// DisplayText is what the display shows: the active operand, or the first
// operand while the second has not been started yet.
func (s State) DisplayText() string {
	if s.Active == Second && s.SecondOperand == "" {
		return s.FirstOperand
	}
	return s.ActiveText()
}

// HasPending reports whether an operator is waiting to be applied.
func (s State) HasPending() bool {
	return s.Pending.Valid()
}

// LastValue returns the number behind LastResult, if one was computed.
func (s State) LastValue() (float64, bool) {
	return s.lastValue, s.hasValue
}
