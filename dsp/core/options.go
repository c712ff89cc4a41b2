package core

// ProcessorConfig defines the sample rate and analysis window shared by
// signal generation and frequency analysis.
type ProcessorConfig struct {
	SampleRate float64
	WindowSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns CD-rate defaults with a 2048-sample window.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		WindowSize: 2048,
	}
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowSize sets the analysis window length. Non-positive values are ignored.
func WithWindowSize(size int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if size > 0 {
			cfg.WindowSize = size
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BinHz returns the frequency spacing of spectrum bins for this config.
func (c ProcessorConfig) BinHz() float64 {
	if c.WindowSize <= 0 {
		return 0
	}
	return c.SampleRate / float64(c.WindowSize)
}
