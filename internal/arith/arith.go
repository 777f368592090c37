// Package arith holds the calculator's binary operations and the rounding
// used to hide floating-point representation error in results.
package arith

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrNotANumber      = errors.New("not a number")
)

// Operator identifies one of the four calculator operations. The zero value
// means no operator has been selected.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Operators lists the selectable operators in button order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpNone:
		return "none"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Symbol is the text printed on the operator's button.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return ""
	}
}

// Valid reports whether o is one of the four operations.
func (o Operator) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// ParseOperator accepts a button id ("add") or its symbol ("+").
func ParseOperator(s string) (Operator, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, op := range Operators() {
		if key == op.String() || key == op.Symbol() {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

func Add(a, b float64) float64 { return a + b }

func Subtract(a, b float64) float64 { return a - b }

func Multiply(a, b float64) float64 { return a * b }

// Divide follows IEEE-754: a non-zero value over zero is an infinity.
func Divide(a, b float64) float64 { return a / b }

// Apply runs the operation named by op.
func Apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b), nil
	default:
		return 0, fmt.Errorf("apply %s: %w", op, ErrUnknownOperator)
	}
}
