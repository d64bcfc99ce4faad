package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ztab-core/dist"
	"ztab-core/integrate"
	"ztab-core/numerr"
)

func TestZForCumulativeInvalidTarget(t *testing.T) {
	for _, p := range []float64{0, 1, -0.5, 1.5} {
		_, err := ZForCumulative(dist.SND{}, p, Options{})
		var ia *numerr.InvalidArgumentError
		require.ErrorAs(t, err, &ia, "target=%g", p)
	}
}

func TestZForCumulativeMedianIsZero(t *testing.T) {
	z, err := ZForCumulative(dist.SND{}, 0.5, Options{})
	require.NoError(t, err)
	require.InDelta(t, 0.0, z, 1e-3)
}

func TestZForCumulativeRoundTrip(t *testing.T) {
	opt := Options{MinusInf: -10}
	for _, target := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.975} {
		z, err := ZForCumulative(dist.SND{}, target, opt)
		require.NoError(t, err, "target=%g", target)
		cum, err := integrate.Trapezoid(-10, z, 10000, dist.SND{}.PDF)
		require.NoError(t, err)
		require.InDelta(t, target, cum, 1e-4, "target=%g z=%g", target, z)
	}
}

func TestZForCumulativeKnownQuantiles(t *testing.T) {
	cases := map[float64]float64{
		0.975: 1.960,
		0.95:  1.645,
		0.995: 2.576,
	}
	for target, want := range cases {
		z, err := ZForCumulative(dist.SND{}, target, Options{})
		require.NoError(t, err, "target=%g", target)
		require.InDelta(t, want, z, 5e-3, "target=%g", target)
	}
}

func TestCentralProbabilityConversion(t *testing.T) {
	require.InDelta(t, 0.975, CentralToCumulative(0.95), 1e-15)
	require.InDelta(t, 0.95, CumulativeToCentral(0.975), 1e-15)

	// 95% central probability on the SND lands at the familiar 1.96.
	z, err := ZForCumulative(dist.SND{}, CentralToCumulative(0.95), Options{})
	require.NoError(t, err)
	require.InDelta(t, 1.96, z, 5e-3)
}

func TestTDistConvergesToSND(t *testing.T) {
	// As dof grows the Student-t quantiles approach the normal's.
	td, err := dist.NewTDist(200)
	require.NoError(t, err)
	z, err := ZForCumulative(td, CentralToCumulative(0.95), Options{})
	require.NoError(t, err)
	require.InDelta(t, 1.96, z, 0.02)
}

func TestZForCumulativeIterationBudget(t *testing.T) {
	z, err := ZForCumulative(dist.SND{}, 0.975, Options{MaxIter: 3})
	var cl *numerr.ConvergenceLimitError
	require.ErrorAs(t, err, &cl)
	require.Equal(t, 3, cl.Iterations)
	require.True(t, numerr.IsConvergenceLimit(err))
	// The best estimate is still usable, just imprecise.
	require.False(t, math.IsNaN(z))
	require.InDelta(t, z, cl.Z, 1e-15)
}

func TestZForCumulativeClampsAtBracketEdge(t *testing.T) {
	// cumulative(1) for the SND is ~0.841, so 0.9999 is unreachable in
	// [-1, 1]; the solver walks to the edge and reports, not crashes.
	z, err := ZForCumulative(dist.SND{}, 0.9999, Options{Lo: -1, Hi: 1, MinusInf: -10})
	var cl *numerr.ConvergenceLimitError
	require.ErrorAs(t, err, &cl)
	require.InDelta(t, 1.0, z, 0.01)
	require.Greater(t, cl.Residual, 0.1)
}

func TestTraceHook(t *testing.T) {
	var steps []Step
	_, err := ZForCumulative(dist.SND{}, 0.9, Options{
		Trace: func(s Step) { steps = append(steps, s) },
	})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	for _, s := range steps {
		require.Less(t, s.Lo, s.Hi, "iteration %d", s.N)
		require.GreaterOrEqual(t, s.Mid, s.Lo)
		require.LessOrEqual(t, s.Mid, s.Hi)
	}
	require.Equal(t, 1, steps[0].N)
}
