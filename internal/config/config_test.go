package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-freq/dsp/analysis"
	"github.com/cwbudde/algo-freq/dsp/window"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "freqscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 2048, cfg.Analysis.WindowSize)
	assert.Equal(t, analysis.DefaultHopDivisor, cfg.Analysis.HopDivisor)
	assert.Equal(t, 44100.0, cfg.Analysis.SampleRate)
	assert.Equal(t, 10, cfg.Analysis.Top)
	assert.Empty(t, cfg.Signal.Sine)

	alg, err := cfg.Algorithm()
	require.NoError(t, err)
	assert.Equal(t, analysis.Spectrum, alg)

	win, err := cfg.Window()
	require.NoError(t, err)
	assert.Equal(t, window.TypeHanning, win)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
output: json
analysis:
  algorithm: enhanced
  window: hamming
  window_size: 1024
  hop_divisor: 4
signal:
  sine: [220, 330]
  harmonics: 3
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, 1024, cfg.Analysis.WindowSize)
	assert.Equal(t, 4, cfg.Analysis.HopDivisor)
	assert.Equal(t, []float64{220, 330}, cfg.Signal.Sine)
	assert.Equal(t, 3, cfg.Signal.Harmonics)

	alg, err := cfg.Algorithm()
	require.NoError(t, err)
	assert.Equal(t, analysis.EnhancedAutocorrelation, alg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "analysis:\n  window_size: 1024\n")
	t.Setenv("FREQSCAN_ANALYSIS_WINDOW_SIZE", "4096")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.Analysis.WindowSize)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel: "warn",
			Output:   "yaml",
			Analysis: AnalysisConfig{
				Algorithm:  "spectrum",
				Window:     "hann",
				WindowSize: 512,
				HopDivisor: 2,
				SampleRate: 48000,
			},
			Signal: SignalConfig{
				Sine:      []float64{1000},
				Harmonics: 1,
				Amplitude: 0.5,
				Duration:  0.25,
			},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"output", func(c *Config) { c.Output = "csv" }},
		{"algorithm", func(c *Config) { c.Analysis.Algorithm = "wavelet" }},
		{"cepstrum disabled", func(c *Config) { c.Analysis.Algorithm = "cepstrum" }},
		{"window", func(c *Config) { c.Analysis.Window = "kaiser" }},
		{"window size small", func(c *Config) { c.Analysis.WindowSize = 16 }},
		{"window size not power of two", func(c *Config) { c.Analysis.WindowSize = 1000 }},
		{"hop divisor", func(c *Config) { c.Analysis.HopDivisor = 0 }},
		{"sample rate", func(c *Config) { c.Analysis.SampleRate = 0 }},
		{"top", func(c *Config) { c.Analysis.Top = -1 }},
		{"sine above nyquist", func(c *Config) { c.Signal.Sine = []float64{30000} }},
		{"harmonics", func(c *Config) { c.Signal.Harmonics = 0 }},
		{"noise", func(c *Config) { c.Signal.Noise = -1 }},
		{"duration", func(c *Config) { c.Signal.Duration = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := valid()
	cfg.Analysis.Algorithm = "cepstrum"
	cfg.Analysis.Cepstrum = true
	require.NoError(t, cfg.Validate())
}
