package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/arith"
)

type recordingView struct {
	displays []string
	results  []string
}

func (v *recordingView) RenderDisplay(text string) { v.displays = append(v.displays, text) }
func (v *recordingView) RenderResult(text string)  { v.results = append(v.results, text) }

func (v *recordingView) lastDisplay() string {
	if len(v.displays) == 0 {
		return ""
	}
	return v.displays[len(v.displays)-1]
}

func (v *recordingView) lastResult() string {
	if len(v.results) == 0 {
		return ""
	}
	return v.results[len(v.results)-1]
}

func newTestMachine() (*Machine, *recordingView) {
	view := &recordingView{}
	return New(NewState(), view, DefaultOptions()), view
}

func press(t *testing.T, m *Machine, tokens ...string) {
	t.Helper()
	for _, tok := range tokens {
		b, err := ParseButton(tok)
		require.NoError(t, err, tok)
		_, err = m.Press(b)
		require.NoError(t, err, tok)
	}
}

func pressDigits(t *testing.T, m *Machine, digits string) {
	t.Helper()
	for _, r := range digits {
		require.NoError(t, m.OnDigit(string(r)))
	}
}

func TestDigitsAppendToFirstOperand(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "1", "2", "3")

	s := m.State()
	require.Equal(t, "123", s.FirstOperand)
	require.Equal(t, "", s.SecondOperand)
	require.Equal(t, First, s.Active)
	require.Equal(t, []string{"1", "12", "123"}, view.displays)
	require.Empty(t, view.results)
}

func TestEqualComputesResult(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "1", "2", "+", "3", "=")

	s := m.State()
	require.Equal(t, "15", s.LastResult)
	require.Equal(t, "15", s.FirstOperand)
	require.Equal(t, "", s.SecondOperand)
	require.False(t, s.HasPending())
	require.Equal(t, First, s.Active)
	require.Equal(t, "15", view.lastDisplay())
	require.Equal(t, "15", view.lastResult())
}

func TestOperatorAutoChains(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "1", "+", "2")

	ev, err := m.OnOperator(arith.OpSubtract)
	require.NoError(t, err)
	require.NotNil(t, ev)
	require.True(t, ev.Chained)
	require.Equal(t, "1 + 2 = 3", ev.String())

	s := m.State()
	require.Equal(t, "3", s.FirstOperand)
	require.Equal(t, "3", s.LastResult)
	require.Equal(t, "", s.SecondOperand)
	require.Equal(t, Second, s.Active)
	require.Equal(t, arith.OpSubtract, s.Pending)
	require.Equal(t, "3", view.lastDisplay())

	press(t, m, "3")
	require.Equal(t, "3", m.State().SecondOperand)

	final := m.OnEqual()
	require.NotNil(t, final)
	require.False(t, final.Chained)
	require.Equal(t, "0", m.State().LastResult)
	require.Equal(t, []string{"3", "0"}, view.results)
}

func TestOperatorWithoutSecondOperandOnlySelects(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "4")

	ev, err := m.OnOperator(arith.OpMultiply)
	require.NoError(t, err)
	require.Nil(t, ev)

	ev, err = m.OnOperator(arith.OpDivide)
	require.NoError(t, err)
	require.Nil(t, ev)

	s := m.State()
	require.Equal(t, arith.OpDivide, s.Pending)
	require.Equal(t, Second, s.Active)
	require.Equal(t, "4", s.DisplayText())
	require.Empty(t, view.results)
}

func TestOperatorBeforeFirstOperandKeepsFirstActive(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	_, err := m.OnOperator(arith.OpAdd)
	require.NoError(t, err)

	s := m.State()
	require.Equal(t, First, s.Active)
	require.Equal(t, arith.OpAdd, s.Pending)

	press(t, m, "5")
	require.Equal(t, "5", m.State().FirstOperand)
	// Second operand is still missing, so equal does nothing.
	require.Nil(t, m.OnEqual())
}

func TestOperatorRejectsNone(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	_, err := m.OnOperator(arith.OpNone)
	require.ErrorIs(t, err, arith.ErrUnknownOperator)
}

func TestEqualWithoutOperatorIsSilent(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "7")
	before := m.State()
	displays := len(view.displays)

	require.Nil(t, m.OnEqual())
	require.Equal(t, before, m.State())
	require.Len(t, view.displays, displays)
	require.Empty(t, view.results)
}

func TestEqualWithUnparsableOperandIsSilent(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "2", "+", ".")

	require.Nil(t, m.OnEqual())
	s := m.State()
	require.Equal(t, ".", s.SecondOperand)
	require.True(t, s.HasPending())
	require.Empty(t, view.results)
}

func TestDivideByZeroRendersPlaceholder(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "1", "/", "0", "=")

	s := m.State()
	v, ok := s.LastValue()
	require.True(t, ok)
	require.True(t, math.IsInf(v, 1))
	require.Equal(t, "Infinity", s.LastResult)
	require.Equal(t, DefaultOptions().InfinityPlaceholder, view.lastResult())
	require.Equal(t, DefaultOptions().InfinityPlaceholder, m.ResultText())
	require.NotContains(t, view.results, "Infinity")
}

func TestInfinityCarriesForward(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	press(t, m, "1", "/", "0", "+", "1", "=")

	v, ok := m.State().LastValue()
	require.True(t, ok)
	require.True(t, math.IsInf(v, 1))
}

func TestZeroOverZeroIsNotEvaluable(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	press(t, m, "0", "/", "0")
	require.Nil(t, m.OnEqual())
	require.Equal(t, "", m.State().LastResult)
}

func TestClearResetsEverything(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "9", "*", "9", "=", "+", "1")

	m.OnClear()
	s := m.State()
	require.Equal(t, *NewState(), s)
	require.Equal(t, "", s.FirstOperand)
	require.Equal(t, "", s.SecondOperand)
	require.Equal(t, "", s.LastResult)
	require.False(t, s.HasPending())
	require.Equal(t, First, s.Active)
	require.Equal(t, "", view.lastDisplay())
	require.Equal(t, "", view.lastResult())
}

func TestRoundsNonIntegralResults(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	press(t, m, ".", "1", "+", ".", "2", "=")
	require.Equal(t, "0.3", m.State().LastResult)

	m.OnClear()
	press(t, m, "1", "/", "3", "=")
	require.Equal(t, "0.3333333333", m.State().LastResult)
}

func TestLongResultsAreTruncatedForDisplay(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	pressDigits(t, m, "123456789")
	press(t, m, "*")
	pressDigits(t, m, "123456789")
	press(t, m, "=")

	s := m.State()
	require.Len(t, s.LastResult, 16)
	require.Greater(t, len(s.FirstOperand), 16)
	require.Equal(t, s.FirstOperand[:16], s.LastResult)
}

func TestSecondDecimalPointIsIgnored(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	press(t, m, "1", ".", "5", ".", "2")
	require.Equal(t, "1.52", m.State().FirstOperand)
	require.Equal(t, []string{"1", "1.", "1.5", "1.52"}, view.displays)
}

func TestLeadingZerosAreKept(t *testing.T) {
	t.Parallel()

	m, _ := newTestMachine()
	press(t, m, "0", "0", "7", "+", "1", "=")
	require.Equal(t, "8", m.State().LastResult)
}

func TestOnDigitRejectsNonDigits(t *testing.T) {
	t.Parallel()

	m, view := newTestMachine()
	for _, bad := range []string{"", "a", "12", "+", " "} {
		require.ErrorIs(t, m.OnDigit(bad), ErrInvalidDigit, "input %q", bad)
	}
	require.Equal(t, "", m.State().FirstOperand)
	require.Empty(t, view.displays)
}

func TestNilRendererIsAllowed(t *testing.T) {
	t.Parallel()

	m := New(nil, nil, Options{})
	require.NoError(t, m.OnDigit("2"))
	_, err := m.OnOperator(arith.OpAdd)
	require.NoError(t, err)
	require.NoError(t, m.OnDigit("2"))
	require.NotNil(t, m.OnEqual())
	require.Equal(t, "4", m.State().LastResult)
	require.Equal(t, 16, m.Options().MaxResultLen)
}

func TestEvaluateIsPure(t *testing.T) {
	t.Parallel()

	s := State{FirstOperand: "6", SecondOperand: "4", Active: Second, Pending: arith.OpSubtract}
	ev, ok := Evaluate(s, arith.DefaultPrecision)
	require.True(t, ok)
	require.Equal(t, 2.0, ev.Value)
	require.Equal(t, "2", ev.Text)
	require.Equal(t, "6", s.FirstOperand)

	_, ok = Evaluate(State{FirstOperand: "6", SecondOperand: "4"}, arith.DefaultPrecision)
	require.False(t, ok)
}
