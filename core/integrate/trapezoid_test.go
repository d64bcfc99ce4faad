package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ztab-core/dist"
	"ztab-core/numerr"
)

func TestTrapezoidInvalidArguments(t *testing.T) {
	f := func(x float64) float64 { return x }

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := Trapezoid(5, 1, 100, f)
		var ia *numerr.InvalidArgumentError
		require.ErrorAs(t, err, &ia)
	})
	t.Run("degenerate bounds", func(t *testing.T) {
		_, err := Trapezoid(2, 2, 100, f)
		var ia *numerr.InvalidArgumentError
		require.ErrorAs(t, err, &ia)
	})
	t.Run("too few intervals", func(t *testing.T) {
		_, err := Trapezoid(0, 1, 1, f)
		var ia *numerr.InvalidArgumentError
		require.ErrorAs(t, err, &ia)
	})
}

func TestTrapezoidExactForLinear(t *testing.T) {
	// The trapezoidal rule has zero error on straight lines.
	got, err := Trapezoid(0, 1, 2, func(x float64) float64 { return x })
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-12)

	got, err = Trapezoid(-3, 7, 1000, func(x float64) float64 { return 2*x + 1 })
	require.NoError(t, err)
	require.InDelta(t, 50.0, got, 1e-9)
}

func TestTrapezoidEvaluationCount(t *testing.T) {
	// intervals+1 evaluations: each grid height reused as the next left edge.
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x * x
	}
	_, err := Trapezoid(0, 1, 100, f)
	require.NoError(t, err)
	require.Equal(t, 101, calls)
}

func TestTrapezoidQuadratic(t *testing.T) {
	// integral of x^2 over [0,3] = 9; error shrinks as O(1/n^2).
	got, err := Trapezoid(0, 3, 10000, func(x float64) float64 { return x * x })
	require.NoError(t, err)
	require.InDelta(t, 9.0, got, 1e-6)
}

func TestSNDTotalMass(t *testing.T) {
	got, err := Trapezoid(-10, 10, 10000, dist.SND{}.PDF)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-4)
}

func TestSNDHalfMassAtZero(t *testing.T) {
	got, err := Trapezoid(-10, 0, 10000, dist.SND{}.PDF)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-4)
}

func TestTDistTotalMass(t *testing.T) {
	td, err := dist.NewTDist(5)
	require.NoError(t, err)
	got, err := Trapezoid(-30, 30, 20000, td.PDF)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-3)
	require.False(t, math.IsNaN(got))
}
