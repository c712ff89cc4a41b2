// Package config holds the freqscan configuration model and its viper
// loading rules.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-freq/dsp/analysis"
	"github.com/cwbudde/algo-freq/dsp/window"
)

// EnvPrefix prefixes environment overrides, e.g. FREQSCAN_ANALYSIS_WINDOW_SIZE.
const EnvPrefix = "FREQSCAN"

// ErrInvalid marks configuration values rejected by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete freqscan configuration.
type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Output   string         `mapstructure:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Signal   SignalConfig   `mapstructure:"signal"`
}

// AnalysisConfig selects the analyzer settings.
type AnalysisConfig struct {
	Algorithm  string  `mapstructure:"algorithm"`
	Window     string  `mapstructure:"window"`
	WindowSize int     `mapstructure:"window_size"`
	HopDivisor int     `mapstructure:"hop_divisor"`
	SampleRate float64 `mapstructure:"sample_rate"`
	Cepstrum   bool    `mapstructure:"cepstrum"`
	// Top limits the printed curve to the strongest values; 0 prints all.
	Top int `mapstructure:"top"`
}

// SignalConfig describes the input: a raw float32 file or a synthesized mix.
type SignalConfig struct {
	Input     string    `mapstructure:"input"`
	Sine      []float64 `mapstructure:"sine"`
	Harmonics int       `mapstructure:"harmonics"`
	Amplitude float64   `mapstructure:"amplitude"`
	Noise     float64   `mapstructure:"noise"`
	Duration  float64   `mapstructure:"duration"`
	Seed      int64     `mapstructure:"seed"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "table")

	v.SetDefault("analysis.algorithm", "spectrum")
	v.SetDefault("analysis.window", "hanning")
	v.SetDefault("analysis.window_size", 2048)
	v.SetDefault("analysis.hop_divisor", analysis.DefaultHopDivisor)
	v.SetDefault("analysis.sample_rate", 44100.0)
	v.SetDefault("analysis.cepstrum", false)
	v.SetDefault("analysis.top", 10)

	v.SetDefault("signal.input", "")
	v.SetDefault("signal.sine", []float64{})
	v.SetDefault("signal.harmonics", 1)
	v.SetDefault("signal.amplitude", 0.8)
	v.SetDefault("signal.noise", 0.0)
	v.SetDefault("signal.duration", 1.0)
	v.SetDefault("signal.seed", 1)
}

// New returns a viper instance with defaults and environment overrides set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads file (or freqscan.yaml from the search path when file is empty)
// into v and returns the validated configuration. A missing default file is
// not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("freqscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "freqscan"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field that can be checked without reading input.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	switch c.Output {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("%w: output %q (want table, yaml or json)", ErrInvalid, c.Output)
	}

	alg, err := c.Algorithm()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if alg == analysis.Cepstrum && !c.Analysis.Cepstrum {
		return fmt.Errorf("%w: cepstrum requires analysis.cepstrum: true", ErrInvalid)
	}
	if _, err := c.Window(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	a := c.Analysis
	if a.WindowSize < analysis.MinWindowSize || a.WindowSize > analysis.MaxWindowSize || a.WindowSize&(a.WindowSize-1) != 0 {
		return fmt.Errorf("%w: window_size %d must be a power of two in [%d, %d]",
			ErrInvalid, a.WindowSize, analysis.MinWindowSize, analysis.MaxWindowSize)
	}
	if a.HopDivisor < 1 {
		return fmt.Errorf("%w: hop_divisor %d must be >= 1", ErrInvalid, a.HopDivisor)
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %g must be > 0", ErrInvalid, a.SampleRate)
	}
	if a.Top < 0 {
		return fmt.Errorf("%w: top %d must be >= 0", ErrInvalid, a.Top)
	}

	s := c.Signal
	for _, f := range s.Sine {
		if f <= 0 || f >= a.SampleRate/2 {
			return fmt.Errorf("%w: sine %g Hz outside (0, %g)", ErrInvalid, f, a.SampleRate/2)
		}
	}
	if s.Harmonics < 1 {
		return fmt.Errorf("%w: harmonics %d must be >= 1", ErrInvalid, s.Harmonics)
	}
	if s.Amplitude < 0 || s.Noise < 0 {
		return fmt.Errorf("%w: amplitude and noise must be >= 0", ErrInvalid)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration %g must be > 0", ErrInvalid, s.Duration)
	}
	return nil
}

// Algorithm resolves Analysis.Algorithm.
func (c *Config) Algorithm() (analysis.Algorithm, error) {
	return analysis.ParseAlgorithm(c.Analysis.Algorithm)
}

// Window resolves Analysis.Window.
func (c *Config) Window() (window.Type, error) {
	return window.Parse(c.Analysis.Window)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
