// Package notch provides a second-order IIR band-stop (notch) filter that
// consumes one sample per call.
//
// The filter places a zero pair on the unit circle at the notch frequency
// and a pole pair at radius r on the same angle:
//
//	H(z) = (1 + b1*z^-1 + b2*z^-2) / (1 - a1*z^-1 - a2*z^-2)
//
//	b1 = -2*cos(w0)   b2 = 1
//	a1 = 2*r*cos(w0)  a2 = -r^2       w0 = 2*pi*fc/fs
//
// A pole radius closer to 1 narrows the notch. Outputs are always float64,
// independent of the input sample type.
package notch
