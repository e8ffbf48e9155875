package optfir

import "github.com/cwbudde/polyresample/dsp/core"

// StopbandAttenToDev converts a stopband attenuation in dB (expected to be
// positive and large, e.g. 60) to a Remez-compatible linear deviation.
func StopbandAttenToDev(attenDB float64) float64 {
	return 1 / core.DBToLinear(attenDB)
}

// PassbandRippleToDev converts a passband ripple in dB (expected to be
// positive and small, e.g. 0.1) to a Remez-compatible linear deviation
// around unity gain.
func PassbandRippleToDev(rippleDB float64) float64 {
	linear := core.DBToLinear(rippleDB)
	return (linear - 1) / (linear + 1)
}
