// Package fixture generates random button sequences and sample tapes.
package fixture

import (
	"context"
	"math/rand"

	"github.com/jask/jaskcalc/internal/arith"
	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/service"
)

var digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."}

// RandomButtons returns n presses weighted towards digits, the way people
// actually use the board.
func RandomButtons(r *rand.Rand, n int) []calc.Button {
	out := make([]calc.Button, 0, n)
	ops := arith.Operators()
	for i := 0; i < n; i++ {
		switch k := r.Intn(20); {
		case k < 12:
			out = append(out, calc.Digit(digits[r.Intn(len(digits))]))
		case k < 17:
			out = append(out, calc.Operator(ops[r.Intn(len(ops))]))
		case k < 19:
			out = append(out, calc.Equal())
		default:
			out = append(out, calc.Clear())
		}
	}
	return out
}

// Seed presses random sequences until n evaluations have been recorded on
// tape, and returns them in the order they happened.
func Seed(ctx context.Context, tape *service.TapeService, r *rand.Rand, n int) ([]calc.Evaluation, error) {
	m := calc.New(nil, nil, calc.DefaultOptions())
	var out []calc.Evaluation
	for len(out) < n {
		for _, b := range RandomButtons(r, 8) {
			ev, err := m.Press(b)
			if err != nil {
				return out, err
			}
			if ev == nil {
				continue
			}
			if _, err := tape.Record(ctx, *ev); err != nil {
				return out, err
			}
			out = append(out, *ev)
			if len(out) == n {
				break
			}
		}
	}
	return out, nil
}
