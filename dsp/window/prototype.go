package window

import "math"

// SincLowpass builds a windowed-sinc lowpass FIR prototype of the given length,
// cutoff expressed as a fraction of the sampling rate in (0, 0.5), tapered by
// the window type t. The result is normalized to unit DC gain.
//
// This is the classic "fast" alternative to an equiripple (Parks-McClellan)
// design: cheaper to compute, with a gentler transition band and higher
// sidelobes, but adequate as a default polyphase-resampler prototype when the
// caller has not supplied exact ripple/attenuation targets.
func SincLowpass(length int, cutoff float64, t Type, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, validateLength(length)
	}

	if cutoff <= 0 || cutoff >= 0.5 {
		return nil, errInvalidCutoff
	}

	coeffs := Generate(t, length, opts...)

	taps := make([]float64, length)
	center := 0.5 * float64(length-1)

	var sum float64

	for n := range length {
		x := float64(n) - center
		h := 2 * cutoff * sinc(2*cutoff*x) * coeffs[n]
		taps[n] = h
		sum += h
	}

	if sum == 0 {
		return nil, errZeroCoherentGain
	}

	for i := range taps {
		taps[i] /= sum
	}

	return taps, nil
}
