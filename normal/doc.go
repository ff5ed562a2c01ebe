// Package normal turns z-scores into probabilities under the standard
// normal distribution.
//
// Erf is a closed-form rational/exponential approximation of the error
// function (constant a = 0.147), accurate to roughly 1e-3 relative error.
// It is NOT the exact error function: callers must not expect exact
// agreement with reference statistical packages.
//
//	erf(x) ≈ sign(x) · √(1 − exp(−x² · (4/π + a·x²) / (1 + a·x²)))
//	Φ(z)   = ½ · (1 + erf(z/√2))
//	p      = 2 · (1 − Φ(|z|))        (two-tailed)
//
// Approx exposes the approximation through the Distribution interface;
// Exact backs the same interface with gonum's UnitNormal for callers that
// want reference-grade tails.
package normal
