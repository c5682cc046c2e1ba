package notch

import "math"

// DefaultRadius is the pole radius used by Init.
const DefaultRadius = 0.8

// Coefficients holds the notch section coefficients. The direct input term
// is fixed at 1 and not stored.
//
// The sign convention is
//
//	y = x + B1*x1 + B2*x2 + A1*y1 + A2*y2
type Coefficients struct {
	B1, B2 float64 // feedforward
	A1, A2 float64 // feedback
}

// Design returns the coefficients for a notch at fc (Hz) sampled at fs (Hz)
// with pole radius r. fs = 0 yields NaN coefficients; Design does not guard
// against it.
func Design(fc, fs, r float64) Coefficients {
	c := math.Cos(2 * math.Pi * fc / fs)
	return Coefficients{
		B1: -2 * c,
		B2: 1,
		A1: 2 * r * c,
		A2: -r * r,
	}
}
