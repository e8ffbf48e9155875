package resample

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/polyresample/dsp/interp"
)

var (
	// ErrInvalidRatio indicates a non-positive ratio passed to New or NewForRates.
	ErrInvalidRatio = errors.New("resample: invalid ratio")
	// ErrInvalidRate indicates a non-positive or non-finite input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrInvalidFilterCount indicates a sub-filter count < 1.
	ErrInvalidFilterCount = errors.New("resample: filter count must be >= 1")
	// ErrEmptyTaps indicates an empty prototype tap vector.
	ErrEmptyTaps = errors.New("resample: prototype taps must not be empty")
)

// Resampler converts a complex baseband stream at rate Rin to rate
// Rout = Rin*Rho for any positive real Rho, by streaming through a bank of N
// polyphase sub-filters and linearly interpolating between adjacent
// sub-filter outputs.
//
// A Resampler is not safe for concurrent use. Multiple independent
// Resamplers may run on separate goroutines; Work and SetTaps on the same
// instance must be serialized by the caller, which in practice means
// quiescing Work before calling SetTaps.
type Resampler struct {
	rho float32
	n   int
	d   int
	f   float32

	bank *Bank

	acc        float32
	lastFilter int
	updated    bool
}

// New creates a resampler converting at ratio rho = Rout/Rin using n
// polyphase sub-filters built from prototype taps. rho must be > 0, n must
// be >= 1, and taps must be non-empty.
func New(rho float64, taps []float32, n int) (*Resampler, error) {
	if rho <= 0 || math.IsNaN(rho) || math.IsInf(rho, 0) {
		return nil, ErrInvalidRatio
	}
	if n < 1 {
		return nil, ErrInvalidFilterCount
	}
	if len(taps) == 0 {
		return nil, ErrEmptyTaps
	}

	r := &Resampler{
		rho:  float32(rho),
		n:    n,
		bank: newBank(n, taps),
	}
	r.computeStride()
	return r, nil
}

// computeStride derives D and F from N and Rho: D = floor(N/Rho),
// F = N/Rho - D.
func (r *Resampler) computeStride() {
	ratio := float64(r.n) / float64(r.rho)
	d := math.Floor(ratio)
	r.d = int(d)
	r.f = float32(ratio - d)
}

// SetTaps atomically replaces the prototype tap set, recomputing K (and
// hence History). acc and last_filter are deliberately left untouched:
// phase stays continuous across a tap swap. The caller must invoke Work
// once and discard its (necessarily zero, zero) result before relying on
// the new History value, per the one-shot updated protocol.
func (r *Resampler) SetTaps(taps []float32) error {
	if len(taps) == 0 {
		return ErrEmptyTaps
	}
	r.bank.setTaps(taps)
	r.updated = true
	return nil
}

// History returns K, the number of input samples the caller must keep
// available before the current read cursor for every Work call.
func (r *Resampler) History() int {
	return r.bank.tapsPerFilter()
}

// FilterCount returns N.
func (r *Resampler) FilterCount() int { return r.n }

// DecimationStride returns D, the integer part of N/Rho.
func (r *Resampler) DecimationStride() int { return r.d }

// FractionalStride returns F = N/Rho - D.
func (r *Resampler) FractionalStride() float32 { return r.f }

// Accumulator returns the current fractional accumulator value, acc in [0,1).
func (r *Resampler) Accumulator() float32 { return r.acc }

// LastFilter returns the sub-filter index the next Work call resumes at.
func (r *Resampler) LastFilter() int { return r.lastFilter }

// Ratio returns rho = Rout/Rin as configured at construction.
func (r *Resampler) Ratio() float64 { return float64(r.rho) }

// TapRows returns a copy of the polyphase tap matrix, one slice per
// sub-filter, for debugging and introspection.
func (r *Resampler) TapRows() [][]float32 { return r.bank.tapRows() }

// PrintTaps renders one line per sub-filter, each listing its tap values.
// Diagnostic only; the exact text layout is not part of any contract.
func (r *Resampler) PrintTaps() string {
	var b strings.Builder
	for i := range r.n {
		fmt.Fprintf(&b, "filter[%d]:", i)
		for _, t := range r.bank.row(i) {
			fmt.Fprintf(&b, " %.6e", t)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Work consumes from inputs and produces into outputs, returning the number
// of samples produced and consumed. Each output reads History() samples
// (History()+1 when it wraps to sub-filter 0) from the current cursor on,
// so Work reads up to that many samples past what it reports consuming, and
// stops once fewer than History()+1 samples remain ahead of the cursor. The
// cursor advances by floor(j/N) after each step and j is reduced mod N, so
// the consumed count tracks 1/Rho per output; an output whose step would
// move the cursor past the end of inputs is held back for the next call.
//
// If a tap swap is pending (the one-shot updated flag is set), Work
// produces and consumes nothing and clears the flag: the caller must call
// Work again, now that History() reflects the new tap set, before any
// output is produced.
func (r *Resampler) Work(inputs, outputs []complex64) (produced, consumed int) {
	if r.updated {
		r.updated = false
		return 0, 0
	}

	nIn := len(inputs)
	nOut := len(outputs)
	k := r.bank.tapsPerFilter()

	i := 0
	c := 0
	j := r.lastFilter

	// Every row read at cursor c needs k forward samples, and a row that
	// wraps to filter 0 reads from c+1, so c may only advance while at
	// least k+1 samples remain ahead of it. For k=1 this is the classic
	// one-sample lookahead guard; a larger K (more taps per sub-filter)
	// needs proportionally more margin before the read is safe.
	for i < nOut && c < nIn-k {
		for j < r.n && i < nOut {
			next := r.acc + r.f
			step := math.Floor(float64(next))
			jNext := j + r.d + int(step)
			if c+jNext/r.n > nIn {
				r.lastFilter = j
				return i, c
			}

			o0 := r.bank.filter(j, inputs[c:])

			var o1 complex64
			if j+1 == r.n {
				o1 = r.bank.filter(0, inputs[c+1:])
			} else {
				o1 = r.bank.filter(j+1, inputs[c:])
			}

			outputs[i] = interp.LerpComplex64(o0, o1, r.acc)
			i++

			r.acc = next - float32(step)
			j = jNext
		}

		c += j / r.n
		j %= r.n
	}

	r.lastFilter = j
	return i, c
}

// Process runs the resampler to completion over input and returns all
// produced output. It is a one-shot convenience built on Work for callers
// that do not manage their own streaming buffers; a streaming scheduler
// should call Work directly instead.
func (r *Resampler) Process(input []complex64) []complex64 {
	if r.updated {
		r.Work(nil, nil)
	}

	est := int(float64(len(input))*float64(r.rho)) + r.bank.tapsPerFilter() + 8
	out := make([]complex64, 0, est)

	scratch := make([]complex64, 4096)
	consumed := 0
	for consumed < len(input) {
		p, c := r.Work(input[consumed:], scratch)
		if p == 0 && c == 0 {
			break
		}
		out = append(out, scratch[:p]...)
		consumed += c
	}

	return out
}
