package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jask/jaskcalc/internal/arith"
)

var ErrInvalidDigit = errors.New("invalid digit")

// Renderer is the view contract the machine drives after each transition.
type Renderer interface {
	RenderDisplay(text string)
	RenderResult(text string)
}

// Options tune how results are rounded and shown.
type Options struct {
	Precision           int
	MaxResultLen        int
	InfinityPlaceholder string
}

func DefaultOptions() Options {
	return Options{
		Precision:           arith.DefaultPrecision,
		MaxResultLen:        16,
		InfinityPlaceholder: "Undefined",
	}
}

// Evaluation describes one finalized computation.
type Evaluation struct {
	Operator arith.Operator
	Left     string
	Right    string
	Value    float64
	Text     string
	// Chained is set when an operator press forced the evaluation.
	Chained bool
}

func (e Evaluation) String() string {
	return fmt.Sprintf("%s %s %s = %s", e.Left, e.Operator.Symbol(), e.Right, e.Text)
}

// Machine applies button presses to a State. It is not safe for concurrent
// use; callers deliver one event at a time.
type Machine struct {
	state *State
	view  Renderer
	opts  Options
}

// New builds a machine around state. A nil state gets a fresh one and a nil
// view disables rendering.
func New(state *State, view Renderer, opts Options) *Machine {
	if state == nil {
		state = NewState()
	}
	if opts.MaxResultLen <= 0 {
		opts.MaxResultLen = DefaultOptions().MaxResultLen
	}
	if opts.Precision < 0 {
		opts.Precision = arith.DefaultPrecision
	}
	return &Machine{state: state, view: view, opts: opts}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return *m.state
}

func (m *Machine) Options() Options {
	return m.opts
}

// OnDigit appends d to the active operand. A second decimal point in the
// same operand is ignored.
func (m *Machine) OnDigit(d string) error {
	if !isDigit(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}
	target := &m.state.FirstOperand
	if m.state.Active == Second {
		target = &m.state.SecondOperand
	}
	if d == "." && strings.Contains(*target, ".") {
		return nil
	}
	*target += d
	m.renderDisplay()
	return nil
}

// OnOperator selects op. With both operands filled it first evaluates the
// pending expression and carries the result forward as the first operand.
func (m *Machine) OnOperator(op arith.Operator) (*Evaluation, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("operator %s: %w", op, arith.ErrUnknownOperator)
	}
	s := m.state
	if s.FirstOperand != "" {
		s.Active = Second
	}
	var chained *Evaluation
	if s.SecondOperand != "" {
		if ev, ok := Evaluate(*s, m.opts.Precision); ok {
			ev.Chained = true
			m.finalize(ev)
			s.Active = Second
			chained = &ev
			m.renderResult()
		}
	}
	s.Pending = op
	m.renderDisplay()
	return chained, nil
}

// OnEqual evaluates the pending expression. When nothing is evaluable the
// press is ignored and nil is returned.
func (m *Machine) OnEqual() *Evaluation {
	ev, ok := Evaluate(*m.state, m.opts.Precision)
	if !ok {
		return nil
	}
	m.finalize(ev)
	m.state.Pending = arith.OpNone
	m.state.Active = First
	m.renderDisplay()
	m.renderResult()
	return &ev
}

// OnClear resets every field.
func (m *Machine) OnClear() {
	m.state.Reset()
	m.renderDisplay()
	m.renderResult()
}

// ResultText is the result view's text for the current state.
func (m *Machine) ResultText() string {
	return ResultText(*m.state, m.opts)
}

func (m *Machine) finalize(ev Evaluation) {
	s := m.state
	s.FirstOperand = ev.Text
	s.SecondOperand = ""
	s.LastResult = truncate(ev.Text, m.opts.MaxResultLen)
	s.lastValue = ev.Value
	s.hasValue = true
}

func (m *Machine) renderDisplay() {
	if m.view != nil {
		m.view.RenderDisplay(m.state.DisplayText())
	}
}

func (m *Machine) renderResult() {
	if m.view != nil {
		m.view.RenderResult(m.ResultText())
	}
}

// Evaluate computes (first, pending, second) from s. It reports false when
// no operator is pending, an operand does not parse, or the result is NaN.
func Evaluate(s State, precision int) (Evaluation, bool) {
	if !s.HasPending() {
		return Evaluation{}, false
	}
	a, err := arith.ParseNumber(s.FirstOperand)
	if err != nil {
		return Evaluation{}, false
	}
	b, err := arith.ParseNumber(s.SecondOperand)
	if err != nil {
		return Evaluation{}, false
	}
	v, err := arith.Apply(s.Pending, a, b)
	if err != nil || math.IsNaN(v) {
		return Evaluation{}, false
	}
	v = arith.Normalize(v, precision)
	return Evaluation{
		Operator: s.Pending,
		Left:     s.FirstOperand,
		Right:    s.SecondOperand,
		Value:    v,
		Text:     arith.Format(v),
	}, true
}

// ResultText returns s.LastResult, or the placeholder when the last value
// computed was positive infinity.
func ResultText(s State, opts Options) string {
	if v, ok := s.LastValue(); ok && math.IsInf(v, 1) {
		return opts.InfinityPlaceholder
	}
	return s.LastResult
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func isDigit(d string) bool {
	if len(d) != 1 {
		return false
	}
	return d == "." || (d[0] >= '0' && d[0] <= '9')
}

