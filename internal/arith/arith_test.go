package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMatchesNativeArithmetic(t *testing.T) {
	t.Parallel()

	pairs := [][2]float64{
		{1, 2}, {-3.5, 7.25}, {0, 9}, {1e10, -4}, {0.1, 0.2}, {123456789, 0.001},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		for op, want := range map[Operator]float64{
			OpAdd:      a + b,
			OpSubtract: a - b,
			OpMultiply: a * b,
			OpDivide:   a / b,
		} {
			got, err := Apply(op, a, b)
			require.NoError(t, err)
			require.Equal(t, want, got, "%s(%v, %v)", op, a, b)
		}
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	t.Parallel()

	_, err := Apply(OpNone, 1, 2)
	require.ErrorIs(t, err, ErrUnknownOperator)

	_, err = Apply(Operator(42), 1, 2)
	require.ErrorIs(t, err, ErrUnknownOperator)
}

func TestDivideByZeroIsInfinite(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsInf(Divide(1, 0), 1))
	require.True(t, math.IsInf(Divide(-1, 0), -1))
	require.True(t, math.IsNaN(Divide(0, 0)))
}

func TestParseOperator(t *testing.T) {
	t.Parallel()

	cases := map[string]Operator{
		"add":       OpAdd,
		"+":         OpAdd,
		" Subtract": OpSubtract,
		"-":         OpSubtract,
		"MULTIPLY":  OpMultiply,
		"*":         OpMultiply,
		"divide":    OpDivide,
		"/":         OpDivide,
	}
	for in, want := range cases {
		got, err := ParseOperator(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseOperator("modulo")
	require.ErrorIs(t, err, ErrUnknownOperator)
}

func TestOperatorLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "divide", OpDivide.String())
	require.Equal(t, "/", OpDivide.Symbol())
	require.Equal(t, "", OpNone.Symbol())
	require.False(t, OpNone.Valid())
	require.True(t, OpMultiply.Valid())
}
