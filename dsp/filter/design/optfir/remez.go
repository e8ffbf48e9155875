package optfir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/polyresample/dsp/window"
)

// FilterClass names the symmetry class passed to an [Engine]. The designer
// constructors in this package only ever request ClassBandpass, the class
// that covers low-pass/high-pass/band-pass/band-reject alike once expressed
// as a set of passband/stopband edges.
type FilterClass string

// ClassBandpass is the only filter class the constructors in this package
// request; multiband low-pass/high-pass/band-pass/band-reject responses are
// all expressible as a bandpass-class edge/amplitude/weight specification.
const ClassBandpass FilterClass = "bandpass"

// ErrDegenerateBands indicates adjacent band edges were equal or out of the
// [0,1] range normalized-to-Nyquist domain.
var ErrDegenerateBands = errors.New("optfir: degenerate band edges")

// ErrNonConvergent indicates the engine could not produce a tap set for the
// requested order and band specification.
var ErrNonConvergent = errors.New("optfir: remez exchange did not converge")

// Engine computes an equiripple (or equiripple-approximating) FIR tap set.
//
// bands holds 2*len(weights) frequency edges, normalized so 1.0 is Nyquist,
// given as consecutive (low, high) pairs, one pair per band. desired holds
// one amplitude per edge (2*len(weights) values, typically equal within a
// pair). weight holds the relative error weight for each band, normally
// max(deviation)/deviation_i. order is the filter order; the returned tap
// vector has length order+1.
type Engine interface {
	Remez(order int, bands, desired, weight []float64, class FilterClass) ([]float64, error)
}

// DefaultEngine is a frequency-sampling approximation to the Parks-McClellan
// exchange: it builds the ideal multiband impulse response from bands and
// desired (weight is checked for length but does not affect the taps) and
// tapers it with a Blackman window. It does not produce a
// true equiripple response, but it is a reasonable stand-in absent a real
// Remez exchange implementation, and satisfies the same Engine contract so
// a more rigorous engine can be substituted without touching the designer
// constructors.
var DefaultEngine Engine = defaultEngine{}

type defaultEngine struct{}

func (defaultEngine) Remez(order int, bands, desired, weight []float64, class FilterClass) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: order must be >= 1, got %d", ErrNonConvergent, order)
	}
	if len(bands)%2 != 0 || len(bands) != len(desired) {
		return nil, fmt.Errorf("%w: bands/desired length mismatch", ErrDegenerateBands)
	}
	nBands := len(bands) / 2
	if nBands == 0 || len(weight) != nBands {
		return nil, fmt.Errorf("%w: expected %d band weights, got %d", ErrDegenerateBands, nBands, len(weight))
	}

	for i := 0; i < len(bands); i++ {
		if bands[i] < 0 || bands[i] > 1 {
			return nil, fmt.Errorf("%w: edge %.6f outside [0,1]", ErrDegenerateBands, bands[i])
		}
	}
	for b := 0; b < nBands; b++ {
		lo, hi := bands[2*b], bands[2*b+1]
		if hi <= lo {
			return nil, fmt.Errorf("%w: band %d edges [%.6f, %.6f] are not increasing", ErrDegenerateBands, b, lo, hi)
		}
	}
	for i := 1; i < len(bands); i++ {
		if bands[i] <= bands[i-1] {
			return nil, fmt.Errorf("%w: edges are not strictly increasing (edge %d: %.6f <= edge %d: %.6f)",
				ErrDegenerateBands, i, bands[i], i-1, bands[i-1])
		}
	}

	numTaps := order + 1
	m := float64(numTaps-1) / 2

	h := make([]float64, numTaps)
	for b := 0; b < nBands; b++ {
		lo, hi := bands[2*b], bands[2*b+1]
		amp := 0.5 * (desired[2*b] + desired[2*b+1])
		if amp == 0 {
			continue
		}
		for n := 0; n < numTaps; n++ {
			t := float64(n) - m
			h[n] += amp * idealBandAt(lo, hi, t)
		}
	}

	taper, err := window.Blackman(numTaps)
	if err != nil {
		return nil, fmt.Errorf("optfir: tapering window: %w", err)
	}
	for n := range h {
		h[n] *= taper[n]
	}

	return h, nil
}

// idealBandAt evaluates the ideal (brick-wall) bandpass impulse response,
// normalized so 1.0 = Nyquist, at sample offset t from its center tap.
func idealBandAt(lo, hi, t float64) float64 {
	if t == 0 {
		return hi - lo
	}
	return (math.Sin(math.Pi*hi*t) - math.Sin(math.Pi*lo*t)) / (math.Pi * t)
}
