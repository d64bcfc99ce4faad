// core/solve/bisect.go
// Inverse CDF lookup by bisection. The cumulative probability
// q(z) = integral(minusInf -> z) of the density is monotonically
// non-decreasing, which is what makes binary search the right inversion
// strategy; the integrator preserves that for sane interval counts.
package solve

import (
	"fmt"
	"math"

	"ztab-core/dist"
	"ztab-core/integrate"
	"ztab-core/numerr"
)

// Step is one bisection iteration, reported through Options.Trace.
type Step struct {
	N        int
	Lo, Hi   float64
	Mid, Cum float64
}

// Options tunes the search. Zero values take the documented defaults.
type Options struct {
	Lo, Hi    float64    // search bracket; both zero means [MinusInf/2, -MinusInf/2]
	Tolerance float64    // probability-space residual target; default 1e-5
	MaxIter   int        // iteration cap; default 200
	Intervals int        // trapezoids per cumulative evaluation; default 10000
	MinusInf  float64    // finite stand-in for -inf; default -10
	Trace     func(Step) // optional per-iteration diagnostic hook
}

func (o *Options) defaults() {
	if o.Tolerance == 0 {
		o.Tolerance = 1e-5
	}
	if o.MaxIter == 0 {
		o.MaxIter = 200
	}
	if o.Intervals == 0 {
		o.Intervals = 10000
	}
	if o.MinusInf == 0 {
		o.MinusInf = -10
	}
	if o.Lo == 0 && o.Hi == 0 {
		o.Lo, o.Hi = o.MinusInf/2, -o.MinusInf/2
	}
}

// ZForCumulative finds z such that the cumulative probability from
// MinusInf to z approximates target, which must lie strictly in (0, 1).
//
// When the target is unreachable inside the bracket (the true root lies
// past an edge), bisection converges to that edge and the result carries a
// soft ConvergenceLimitError instead of failing: callers get the clamped
// estimate plus the residual. The same soft error reports an exhausted
// iteration budget.
func ZForCumulative(d dist.Dist, target float64, opt Options) (float64, error) {
	if target <= 0 || target >= 1 {
		return 0, &numerr.InvalidArgumentError{
			Op:  "solve",
			Msg: fmt.Sprintf("target probability %g must lie strictly between 0 and 1", target),
		}
	}
	opt.defaults()

	lo, hi := opt.Lo, opt.Hi
	mid := lo + (hi-lo)/2
	resid := math.Inf(1)
	for n := 1; n <= opt.MaxIter; n++ {
		mid = lo + (hi-lo)/2
		cum, err := integrate.Trapezoid(opt.MinusInf, mid, opt.Intervals, d.PDF)
		if err != nil {
			return mid, err
		}
		if opt.Trace != nil {
			opt.Trace(Step{N: n, Lo: lo, Hi: hi, Mid: mid, Cum: cum})
		}
		resid = math.Abs(cum - target)
		if resid <= opt.Tolerance {
			return mid, nil
		}
		if cum < target {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < opt.Tolerance {
			// Bracket collapsed without meeting the residual: the target is
			// outside the achievable range. Clamp and report.
			return mid, &numerr.ConvergenceLimitError{Z: mid, Residual: resid, Iterations: n}
		}
	}
	return mid, &numerr.ConvergenceLimitError{Z: mid, Residual: resid, Iterations: opt.MaxIter}
}

// CentralToCumulative converts a central (two-tailed) probability p into
// the one-sided cumulative target (1+p)/2. A 95% central probability is
// the z with 97.5% of the mass to its left.
func CentralToCumulative(p float64) float64 { return (1 + p) / 2 }

// CumulativeToCentral is the inverse of CentralToCumulative.
func CumulativeToCentral(q float64) float64 { return 2*q - 1 }
