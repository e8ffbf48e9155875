// Package optfir estimates equiripple FIR tap counts (Herrmann 1973) and
// exposes four convenience constructors — LowPass, HighPass, BandPass,
// BandReject — that turn passband/stopband edges and ripple/attenuation
// targets into a vector of real FIR taps, suitable for feeding
// dsp/resample's prototype or dsp/filter/fir directly.
//
// The Parks-McClellan/Remez exchange that actually solves for the
// equiripple coefficients is treated as an external collaborator: callers
// supply an [Engine], or let the four constructors fall back to
// [DefaultEngine], a frequency-sampling approximation. Swapping in a more
// rigorous exchange-algorithm implementation does not change the designer
// API.
package optfir
