// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. It is suitable for short filters
// (order < ~256).
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design/optfir (Parks-McClellan/Remez) or is supplied
// directly by the caller; [Filter] is also used as an offline verification
// tool for taps before they are handed to dsp/resample.
package fir
