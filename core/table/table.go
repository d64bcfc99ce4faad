// core/table/table.go
// Cumulative-distribution table generation in the conventional textbook
// layout: rows step by 0.1, ten columns add 0.01 increments moving away
// from zero (so the -3.4 row spans -3.40 .. -3.49).
package table

import (
	"fmt"
	"math"

	"ztab-core/dist"
	"ztab-core/integrate"
	"ztab-core/numerr"
)

// Config controls the z grid and the integration behind each cell.
// Zero values take the documented defaults.
type Config struct {
	ZMin      float64 // leftmost row label; default -3.4
	ZMax      float64 // rightmost row label (inclusive); default 3.49
	Step      float64 // row spacing; default 0.1, columns at Step/10
	Intervals int     // trapezoids per cell integral; default 10000
	// MinusInf is the finite lower integration bound standing in for -inf.
	// 0 means derive it from the z range. The surrogate is an approximation:
	// its error is bounded by the density's tail mass beyond the bound.
	MinusInf float64
}

func (c *Config) defaults() {
	if c.ZMin == 0 && c.ZMax == 0 {
		c.ZMin, c.ZMax = -3.4, 3.49
	}
	if c.Step == 0 {
		c.Step = 0.1
	}
	if c.Intervals == 0 {
		c.Intervals = 10000
	}
	if c.MinusInf == 0 {
		c.MinusInf = DeriveMinusInf(c.ZMin, c.ZMax)
	}
}

// DeriveMinusInf picks a "far enough" finite stand-in for -inf from the
// reported z range: twice the rounded-up span, negated. Defaults give -14.
func DeriveMinusInf(zmin, zmax float64) float64 {
	return -2 * math.Round(math.Abs(zmin)+zmax+0.5)
}

// Row is one table line: the row label z and the ten cumulative
// probabilities at the column offsets.
type Row struct {
	Z     float64
	Probs [10]float64
}

// Generate computes the full cumulative table for d. Every call integrates
// from scratch; nothing is cached. Monotonicity of the output is a property
// of a well-chosen interval count, not something enforced here: very coarse
// counts can wobble at the margins.
func Generate(d dist.Dist, cfg Config) ([]Row, error) {
	cfg.defaults()
	if cfg.ZMax <= cfg.ZMin {
		return nil, &numerr.InvalidArgumentError{
			Op:  "table",
			Msg: fmt.Sprintf("z range [%g, %g] is empty", cfg.ZMin, cfg.ZMax),
		}
	}
	if cfg.Step <= 0 {
		return nil, &numerr.InvalidArgumentError{
			Op:  "table",
			Msg: fmt.Sprintf("step must be positive, got %g", cfg.Step),
		}
	}

	sub := cfg.Step / 10
	var rows []Row
	for z := cfg.ZMin; z <= cfg.ZMax; z += cfg.Step {
		row := Row{Z: z}
		z1 := z
		for i := 0; i < 10; i++ {
			p, err := integrate.Trapezoid(cfg.MinusInf, z1, cfg.Intervals, d.PDF)
			if err != nil {
				return nil, err
			}
			row.Probs[i] = p
			// Columns move away from zero; the drift guard keeps the row
			// that accumulated to ~1e-15 instead of 0.0 on the positive side.
			if z >= -sub/2 {
				z1 += sub
			} else {
				z1 -= sub
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
