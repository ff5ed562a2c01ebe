package normal

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// erfA is the shape constant of the closed-form erf approximation.
const erfA = 0.147

// Distribution maps a z-score to a cumulative probability and a two-tailed
// p-value.
type Distribution interface {
	CDF(z float64) float64
	TwoTailedP(z float64) float64
}

// Erf approximates the error function.
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	x2 := x * x
	return sign * math.Sqrt(1-math.Exp(-x2*(4/math.Pi+erfA*x2)/(1+erfA*x2)))
}

// CDF is the standard normal cumulative distribution function built on Erf.
func CDF(z float64) float64 {
	return 0.5 * (1 + Erf(z/math.Sqrt2))
}

// TwoTailedP returns 2·(1 − CDF(|z|)).
func TwoTailedP(z float64) float64 {
	return 2 * (1 - CDF(math.Abs(z)))
}

// Approx is the Distribution backed by the Erf approximation.
type Approx struct{}

// CDF implements Distribution.
func (Approx) CDF(z float64) float64 { return CDF(z) }

// TwoTailedP implements Distribution.
func (Approx) TwoTailedP(z float64) float64 { return TwoTailedP(z) }

// Exact is the Distribution backed by gonum's exact standard normal.
type Exact struct{}

// CDF implements Distribution.
func (Exact) CDF(z float64) float64 { return distuv.UnitNormal.CDF(z) }

// TwoTailedP implements Distribution. The upper tail is taken through
// Survival to keep precision for large |z|.
func (Exact) TwoTailedP(z float64) float64 {
	return 2 * distuv.UnitNormal.Survival(math.Abs(z))
}
