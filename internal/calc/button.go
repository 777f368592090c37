package calc

import (
	"fmt"
	"strings"

	"github.com/jask/jaskcalc/internal/arith"
)

// ButtonKind groups the calculator's buttons.
type ButtonKind int

const (
	DigitButton ButtonKind = iota + 1
	OperatorButton
	EqualButton
	ClearButton
)

// Button is one press on the calculator board.
type Button struct {
	Kind     ButtonKind
	Digit    string
	Operator arith.Operator
}

func Digit(d string) Button { return Button{Kind: DigitButton, Digit: d} }

func Operator(op arith.Operator) Button { return Button{Kind: OperatorButton, Operator: op} }

func Equal() Button { return Button{Kind: EqualButton} }

func Clear() Button { return Button{Kind: ClearButton} }

// Label is the text printed on the button.
func (b Button) Label() string {
	switch b.Kind {
	case DigitButton:
		return b.Digit
	case OperatorButton:
		return b.Operator.Symbol()
	case EqualButton:
		return "="
	case ClearButton:
		return "c"
	default:
		return "?"
	}
}

// ParseButton maps a single token to a button: a digit or ".", an operator
// id or symbol, "=" / "equal", or "c" / "clear".
func ParseButton(token string) (Button, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	switch t {
	case "=", "equal", "equals":
		return Equal(), nil
	case "c", "clear":
		return Clear(), nil
	}
	if isDigit(t) {
		return Digit(t), nil
	}
	if op, err := arith.ParseOperator(t); err == nil {
		return Operator(op), nil
	}
	return Button{}, fmt.Errorf("unknown button %q", token)
}

// Press dispatches b to the matching transition. The returned evaluation is
// non-nil when the press finalized a computation.
func (m *Machine) Press(b Button) (*Evaluation, error) {
	switch b.Kind {
	case DigitButton:
		return nil, m.OnDigit(b.Digit)
	case OperatorButton:
		return m.OnOperator(b.Operator)
	case EqualButton:
		return m.OnEqual(), nil
	case ClearButton:
		m.OnClear()
		return nil, nil
	default:
		return nil, fmt.Errorf("press: unknown button kind %d", b.Kind)
	}
}
