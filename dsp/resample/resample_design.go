package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/polyresample/dsp/window"
)

// Quality controls the default prototype filter built by NewForRatio and
// NewForRates when the caller does not supply taps directly.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage over stopband attenuation.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

// Profile exposes the default filter parameters for a quality mode.
type Profile struct {
	FilterCount       int
	TapsPerPhase      int
	CutoffScale       float64
	KaiserBeta        float64
	NominalStopbandDB float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{FilterCount: 16, TapsPerPhase: 8, CutoffScale: 0.88, KaiserBeta: 5.0, NominalStopbandDB: 55}
	case QualityBest:
		return Profile{FilterCount: 64, TapsPerPhase: 16, CutoffScale: 0.96, KaiserBeta: 9.0, NominalStopbandDB: 90}
	default:
		return Profile{FilterCount: 32, TapsPerPhase: 12, CutoffScale: 0.92, KaiserBeta: 7.5, NominalStopbandDB: 75}
	}
}

type config struct {
	quality      Quality
	filterCount  int
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
	maxDen       int
}

// Option configures the default-prototype constructors NewForRatio and
// NewForRates.
type Option func(*config)

// WithQuality selects a predefined quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) { cfg.quality = q }
}

// WithFilterCount overrides N, the number of polyphase sub-filters.
func WithFilterCount(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.filterCount = n
		}
	}
}

// WithTapsPerPhase overrides K, the tap count of each polyphase sub-filter.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithCutoffScale overrides normalized cutoff scaling in range (0, 1].
// 1.0 is the theoretical anti-aliasing cutoff for the configured ratio.
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta parameter used to taper
// the default sinc prototype.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithMaxDenominator caps the denominator used by RationalApproximation.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

func defaultConfig() config {
	return config{quality: QualityBalanced, maxDen: 4096}
}

func (c config) finalized() config {
	p := QualityProfile(c.quality)
	if c.filterCount <= 0 {
		c.filterCount = p.FilterCount
	}
	if c.tapsPerPhase <= 0 {
		c.tapsPerPhase = p.TapsPerPhase
	}
	if c.cutoffScale <= 0 || c.cutoffScale > 1 {
		c.cutoffScale = p.CutoffScale
	}
	if c.kaiserBeta < 0 {
		c.kaiserBeta = p.KaiserBeta
	}
	if c.maxDen <= 0 {
		c.maxDen = 4096
	}
	return c
}

// NewForRatio builds a resampler for ratio rho using a windowed-sinc
// prototype sized per the requested quality. The cutoff is placed below
// both the input and output Nyquist so the default prototype protects
// against aliasing in either direction (interpolation or decimation).
func NewForRatio(rho float64, opts ...Option) (*Resampler, error) {
	if rho <= 0 || math.IsNaN(rho) || math.IsInf(rho, 0) {
		return nil, ErrInvalidRatio
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg = cfg.finalized()

	taps, err := designPrototype(cfg.filterCount, rho, cfg)
	if err != nil {
		return nil, err
	}

	return New(rho, taps, cfg.filterCount)
}

// NewForRates builds a resampler converting inRate to outRate, i.e.
// rho = outRate/inRate, using a windowed-sinc prototype sized per the
// requested quality.
func NewForRates(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) {
		return nil, ErrInvalidRate
	}
	return NewForRatio(outRate/inRate, opts...)
}

// Upsample2x is a convenience wrapper for rho=2 conversion.
func Upsample2x(input []complex64, opts ...Option) ([]complex64, error) {
	r, err := NewForRatio(2, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// Downsample2x is a convenience wrapper for rho=0.5 conversion.
func Downsample2x(input []complex64, opts ...Option) ([]complex64, error) {
	r, err := NewForRatio(0.5, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// Resample converts input at ratio rho as a one-shot helper.
func Resample(input []complex64, rho float64, opts ...Option) ([]complex64, error) {
	r, err := NewForRatio(rho, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// designPrototype builds an N*K-tap windowed-sinc prototype for ratio rho,
// delegating the window math to dsp/window.SincLowpass. The prototype runs
// at N times the input rate, so the cutoff is min(1, rho) scaled and then
// divided by N: for decimation (rho<1) this protects the output Nyquist,
// for interpolation (rho>=1) the input Nyquist already dominates.
func designPrototype(n int, rho float64, cfg config) ([]float32, error) {
	if n < 1 {
		return nil, ErrInvalidFilterCount
	}

	total := n * cfg.tapsPerPhase
	cutoff := 0.5 * math.Min(1, rho) * cfg.cutoffScale / float64(n)
	if cutoff <= 0 {
		return nil, fmt.Errorf("resample: invalid prototype cutoff %.6f", cutoff)
	}
	// WithCutoffScale(1.0) at rho>=1 with N=1 lands exactly on cutoff=0.5, the
	// theoretical Nyquist edge; SincLowpass needs it strictly below 0.5 to
	// avoid a degenerate sinc, so nudge it in by a negligible epsilon
	// rather than rejecting the documented valid upper bound.
	if cutoff >= 0.5 {
		cutoff = 0.5 - 1e-9
	}

	taps64, err := window.SincLowpass(total, cutoff, window.TypeKaiser, window.WithAlpha(cfg.kaiserBeta))
	if err != nil {
		return nil, fmt.Errorf("resample: prototype design: %w", err)
	}

	taps32 := make([]float32, len(taps64))
	for i, v := range taps64 {
		taps32[i] = float32(v)
	}
	return taps32, nil
}

// RationalApproximation finds small integers num, den such that
// num/den ≈ v, via a truncated continued-fraction expansion capped at
// denominator maxDen. This is purely informational — PrintTaps and
// diagnostics can describe an irrational rho by its best small rational
// neighbor — and plays no role in the resampler's exact D/F/acc arithmetic,
// which consumes rho directly.
func RationalApproximation(v float64, maxDen int) (num, den int) {
	if maxDen <= 0 {
		maxDen = 4096
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1, 1
	}

	a0 := math.Floor(v)
	p0, q0 := 1.0, 0.0
	p1, q1 := a0, 1.0
	x := v

	for {
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		x = 1 / frac
		a := math.Floor(x)
		p2 := a*p1 + p0
		q2 := a*q1 + q0
		if q2 > float64(maxDen) {
			break
		}
		p0, q0 = p1, q1
		p1, q1 = p2, q2
	}

	num = int(math.Round(p1))
	den = int(math.Round(q1))
	if den <= 0 {
		return 1, 1
	}
	g := gcd(num, den)
	return num / g, den / g
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
