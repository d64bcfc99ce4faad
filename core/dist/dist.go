// core/dist/dist.go
// Closed-form probability densities. Distributions are small value types
// with no state beyond their parameters; densities are pure functions.
package dist

import (
	"fmt"
	"math"

	"ztab-core/numerr"
)

// Dist is a probability distribution with a closed-form density.
type Dist interface {
	// PDF returns the height of the density curve at x. Not a probability.
	PDF(x float64) float64
	Name() string
}

// SND is the standard normal distribution (mean 0, standard deviation 1).
// Equivalent to Normal{Mu: 0, Sigma: 1}; kept separate because the table
// generator evaluates it tens of thousands of times per cell row.
type SND struct{}

func (SND) PDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

func (SND) Name() string { return "SND" }

// Normal is the general normal distribution.
type Normal struct {
	Mu    float64
	Sigma float64
}

func (n Normal) PDF(x float64) float64 {
	dx := x - n.Mu
	return math.Exp(-dx*dx/(2*n.Sigma*n.Sigma)) / (n.Sigma * math.Sqrt(2*math.Pi))
}

func (n Normal) Name() string { return fmt.Sprintf("N(%g,%g)", n.Mu, n.Sigma) }

// TDist is a Student-t distribution with DOF degrees of freedom.
// The x-independent normalization Γ((ν+1)/2) / (√(νπ)·Γ(ν/2)) is computed
// once at construction.
type TDist struct {
	DOF  float64
	norm float64
}

// NewTDist validates dof and builds the distribution. The density is
// undefined for dof <= 2 (gamma singularities at low dof).
func NewTDist(dof float64) (TDist, error) {
	if dof <= 2 {
		return TDist{}, &numerr.DomainError{Op: "student-t dof", Arg: dof}
	}
	g1, err := Gamma((dof + 1) / 2)
	if err != nil {
		return TDist{}, err
	}
	g2, err := Gamma(dof / 2)
	if err != nil {
		return TDist{}, err
	}
	return TDist{DOF: dof, norm: g1 / (math.Sqrt(dof*math.Pi) * g2)}, nil
}

func (t TDist) PDF(x float64) float64 {
	return t.norm * math.Pow(1+x*x/t.DOF, -(t.DOF+1)/2)
}

func (t TDist) Name() string { return fmt.Sprintf("T-%g", t.DOF) }
