// Package resample implements a polyphase arbitrary-rate resampler for
// complex baseband signals.
//
// A prototype FIR of length L is decomposed into N polyphase sub-filters of
// K = ceil(L/N) taps each ([Bank]), column-major: sub-filter i holds
// taps[i], taps[i+N], taps[i+2N], ... Each sub-filter is then an independent
// fractional-delay approximation of the prototype, spaced 1/N of an input
// sample apart from its neighbors.
//
// [Resampler] streams through the bank at a nominal ratio Rho = Rout/Rin: an
// integer stride D = floor(N/Rho) plus a fractional remainder F = N/Rho - D
// select which pair of adjacent sub-filters to consult for each output
// sample, and a running accumulator linearly interpolates between them.
// Because D and F fall out of N and Rho directly, Rho is not restricted to a
// rational number with a small denominator: any positive real ratio is
// supported, at a quality set by N and the prototype's transition width.
//
// [Resampler.Work] is the streaming primitive a scheduler drives directly,
// mirroring the consume/produce contract of a block-processing framework.
// [Resampler.Process] wraps it for one-shot, non-streaming conversions.
//
// Taps can be supplied directly, built with dsp/filter/design/optfir
// (Herrmann-sized, with a pluggable Remez engine) or with dsp/window.SincLowpass (windowed
// sinc, cheaper and the default this package falls back on). [NewForRates]
// and [NewForRatio] wire a SincLowpass prototype to a Resampler in one call.
package resample
