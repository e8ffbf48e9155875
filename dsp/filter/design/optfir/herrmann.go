package optfir

import "math"

// Herrmann's empirical constants (1973), reproduced literally: do not
// refactor into symbolic forms, the fit was derived against these exact
// coefficients and drifts numerically under "simplification".
const (
	herrmannA1 = 5.309e-3
	herrmannA2 = 7.114e-2
	herrmannA3 = -4.761e-1
	herrmannA4 = -2.66e-3
	herrmannA5 = -5.941e-1
	herrmannA6 = -4.278e-1
	herrmannB1 = 11.01217
	herrmannB2 = 0.5124401
)

// lporder estimates the minimum FIR order needed for a transition from
// freq1 to freq2 (both as fractions of the sample rate, i.e. 0.5 =
// Nyquist) given passband deviation delta1 and stopband deviation delta2.
//
// The estimate is only accurate for narrow-to-moderate transition bands;
// transitions near DC or Nyquist produce poor results, a documented caveat
// of Herrmann's formula rather than a bug here.
func lporder(freq1, freq2, delta1, delta2 float64) float64 {
	df := math.Abs(freq2 - freq1)
	ddp := math.Log10(delta1)
	dds := math.Log10(delta2)

	dinf := (herrmannA1*ddp*ddp+herrmannA2*ddp+herrmannA3)*dds +
		(herrmannA4*ddp*ddp + herrmannA5*ddp + herrmannA6)
	ff := herrmannB1 + herrmannB2*(ddp-dds)

	// Open question (preserved): some published forms use +ff*df here;
	// this sign is kept to match the legacy tap-count outputs it was
	// validated against.
	return dinf/df - ff*df + 1
}
