package optfir

import "math"

// Config controls the Remez engine and tap padding used by the four
// constructors in this file.
type Config struct {
	Engine    Engine
	ExtraTaps int
}

// Option configures a designer call.
type Option func(*Config)

// WithEngine overrides the Remez collaborator, replacing [DefaultEngine].
func WithEngine(e Engine) Option {
	return func(c *Config) {
		if e != nil {
			c.Engine = e
		}
	}
}

// WithExtraTaps overrides the number of extra taps added to the
// Herrmann-estimated order (default 2).
func WithExtraTaps(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.ExtraTaps = n
		}
	}
}

func defaultDesignerConfig() Config {
	return Config{Engine: DefaultEngine, ExtraTaps: 2}
}

func resolve(opts []Option) Config {
	cfg := defaultDesignerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Engine == nil {
		cfg.Engine = DefaultEngine
	}
	return cfg
}

func maxOf(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func weightsFrom(deviations []float64) []float64 {
	maxDev := maxOf(deviations...)
	wts := make([]float64, len(deviations))
	for i, d := range deviations {
		wts[i] = maxDev / d
	}
	return wts
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

// LowPass designs a low-pass filter: gain in the passband [0, f1], 0 above
// f2, with a transition band between f1 < f2. Fs is the sampling rate, both in
// Hz; passbandRippleDB and stopbandAttenDB should be small (<1) and large
// (>=60) respectively.
func LowPass(gain, fs, f1, f2, passbandRippleDB, stopbandAttenDB float64, opts ...Option) ([]float32, error) {
	cfg := resolve(opts)

	frequencies := []float64{0, (f1 / fs) * 2, (f2 / fs) * 2, 1}
	desiredAmpls := []float64{gain, gain, 0, 0}
	deviations := []float64{
		PassbandRippleToDev(passbandRippleDB) / gain,
		StopbandAttenToDev(stopbandAttenDB),
	}

	l := lporder(f1/fs, f2/fs, deviations[0], deviations[1])
	numberOfTaps := int(math.Ceil(l)) - 1

	wts := weightsFrom(deviations)
	taps, err := cfg.Engine.Remez(numberOfTaps+cfg.ExtraTaps, frequencies, desiredAmpls, wts, ClassBandpass)
	if err != nil {
		return nil, err
	}
	return toFloat32(taps), nil
}

// HighPass designs a high-pass filter: 0 gain below f1, gain in the
// passband [f2, Nyquist], with a transition edge between f1 and f2. Like
// GNU Radio's gr_optfir, the resulting tap count is forced odd (required
// for finite gain at Nyquist) by incrementing the estimated order when
// (order+extraTaps) is odd, so the Remez order passed on is even.
func HighPass(gain, fs, f1, f2, passbandRippleDB, stopbandAttenDB float64, opts ...Option) ([]float32, error) {
	cfg := resolve(opts)

	frequencies := []float64{0, (f1 / fs) * 2, (f2 / fs) * 2, 1}
	desiredAmpls := []float64{0, 0, gain, gain}
	deviations := []float64{
		StopbandAttenToDev(stopbandAttenDB),
		PassbandRippleToDev(passbandRippleDB) / gain,
	}

	l := lporder(f1/fs, f2/fs, deviations[0], deviations[1])
	numberOfTaps := int(math.Ceil(l)) - 1

	if (numberOfTaps+cfg.ExtraTaps)%2 != 0 {
		numberOfTaps++
	}

	wts := weightsFrom(deviations)
	taps, err := cfg.Engine.Remez(numberOfTaps+cfg.ExtraTaps, frequencies, desiredAmpls, wts, ClassBandpass)
	if err != nil {
		return nil, err
	}
	return toFloat32(taps), nil
}

// BandPass designs a band-pass filter: 0 gain below freqSB1 and above
// freqSB2, gain in the passband [freqPB1, freqPB2], with transition edges
// between freqSB1/freqPB1 and freqPB2/freqSB2.
func BandPass(gain, fs, freqSB1, freqPB1, freqPB2, freqSB2, passbandRippleDB, stopbandAttenDB float64, opts ...Option) ([]float32, error) {
	cfg := resolve(opts)

	frequencies := []float64{0, (freqSB1 / fs) * 2, (freqPB1 / fs) * 2, (freqPB2 / fs) * 2, (freqSB2 / fs) * 2, 1}
	desiredAmpls := []float64{0, 0, gain, gain, 0, 0}
	deviations := []float64{
		StopbandAttenToDev(stopbandAttenDB),
		PassbandRippleToDev(passbandRippleDB) / gain,
		StopbandAttenToDev(stopbandAttenDB),
	}

	// Find the side (upper transition or lower transition) needing the
	// most taps, and use that for the order estimate.
	l := maxOf(
		lporder(freqPB2/fs, freqSB2/fs, deviations[1], deviations[2]),
		lporder(freqSB1/fs, freqPB1/fs, deviations[1], deviations[0]),
	)
	numberOfTaps := int(math.Ceil(l)) - 1

	wts := weightsFrom(deviations)
	taps, err := cfg.Engine.Remez(numberOfTaps+cfg.ExtraTaps, frequencies, desiredAmpls, wts, ClassBandpass)
	if err != nil {
		return nil, err
	}
	return toFloat32(taps), nil
}

// BandReject designs a band-reject (notch) filter: gain in the passbands
// [0, freqPB1] and [freqPB2, Nyquist], 0 gain in the stopband
// [freqSB1, freqSB2]. Like HighPass, the resulting tap count is forced odd.
func BandReject(gain, fs, freqPB1, freqSB1, freqSB2, freqPB2, passbandRippleDB, stopbandAttenDB float64, opts ...Option) ([]float32, error) {
	cfg := resolve(opts)

	frequencies := []float64{0, (freqPB1 / fs) * 2, (freqSB1 / fs) * 2, (freqSB2 / fs) * 2, (freqPB2 / fs) * 2, 1}
	desiredAmpls := []float64{gain, gain, 0, 0, gain, gain}
	deviations := []float64{
		PassbandRippleToDev(passbandRippleDB) / gain,
		StopbandAttenToDev(stopbandAttenDB),
		PassbandRippleToDev(passbandRippleDB) / gain,
	}

	l := maxOf(
		lporder(freqPB2/fs, freqSB2/fs, deviations[1], deviations[2]),
		lporder(freqSB1/fs, freqPB1/fs, deviations[1], deviations[0]),
	)
	numberOfTaps := int(math.Ceil(l)) - 1

	if (numberOfTaps+cfg.ExtraTaps)%2 != 0 {
		numberOfTaps++
	}

	wts := weightsFrom(deviations)
	taps, err := cfg.Engine.Remez(numberOfTaps+cfg.ExtraTaps, frequencies, desiredAmpls, wts, ClassBandpass)
	if err != nil {
		return nil, err
	}
	return toFloat32(taps), nil
}
