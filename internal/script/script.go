// Package script replays calculator key sequences without a terminal UI.
package script

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskcalc/internal/calc"
)

// maxSuggestDistance bounds how far a typo may be from a known key before no
// suggestion is offered.
const maxSuggestDistance = 2

var keywords = []string{
	"add", "subtract", "multiply", "divide",
	"+", "-", "*", "/",
	"=", "equal", "equals",
	"c", "clear",
}

// TokenError reports a key the calculator does not have.
type TokenError struct {
	Line       int
	Token      string
	Suggestion string
}

func (e *TokenError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("line %d: unknown key %q (did you mean %q?)", e.Line, e.Token, e.Suggestion)
	}
	return fmt.Sprintf("line %d: unknown key %q", e.Line, e.Token)
}

// Parse turns a whitespace separated key sequence into button presses. A run
// of digits such as "12.5" is one press per character, and "#" comments out
// the rest of a line.
func Parse(src string) ([]calc.Button, error) {
	var out []calc.Button
	sc := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.Fields(text) {
			if isNumber(tok) {
				for _, r := range tok {
					out = append(out, calc.Digit(string(r)))
				}
				continue
			}
			b, err := calc.ParseButton(tok)
			if err != nil {
				return nil, &TokenError{Line: line, Token: tok, Suggestion: Suggest(tok)}
			}
			out = append(out, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return out, nil
}

// Suggest returns the known key closest to tok, or "" when nothing is close.
func Suggest(tok string) string {
	t := strings.ToLower(tok)
	best, bestDist := "", maxSuggestDistance+1
	for _, kw := range keywords {
		if len(kw) == 1 {
			continue
		}
		d := levenshtein.ComputeDistance(t, kw)
		if d < bestDist {
			best, bestDist = kw, d
		}
	}
	if bestDist >= len(t) {
		return ""
	}
	return best
}

// Run presses every button on m in order. onEval, when set, receives each
// finalized computation.
func Run(m *calc.Machine, buttons []calc.Button, onEval func(calc.Evaluation)) error {
	for i, b := range buttons {
		ev, err := m.Press(b)
		if err != nil {
			return fmt.Errorf("press %d (%s): %w", i+1, b.Label(), err)
		}
		if ev != nil && onEval != nil {
			onEval(*ev)
		}
	}
	return nil
}

func isNumber(tok string) bool {
	for _, r := range tok {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return tok != ""
}
