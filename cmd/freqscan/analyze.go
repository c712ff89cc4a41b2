package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-freq/dsp/analysis"
	"github.com/cwbudde/algo-freq/dsp/core"
	"github.com/cwbudde/algo-freq/dsp/signal"
	"github.com/cwbudde/algo-freq/internal/config"
)

// minReportDB replaces -Inf dB bins, which JSON cannot encode.
const minReportDB = -500

var errNoInput = errors.New("no input: use --input, --sine or --noise")

type peakReport struct {
	Index     float64 `json:"index" yaml:"index"`
	Frequency float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Value     float64 `json:"value" yaml:"value"`
}

type binReport struct {
	Index     int     `json:"index" yaml:"index"`
	Frequency float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Value     float64 `json:"value" yaml:"value"`
}

type analysisReport struct {
	Algorithm  string      `json:"algorithm" yaml:"algorithm"`
	Window     string      `json:"window" yaml:"window"`
	WindowSize int         `json:"window_size" yaml:"window_size"`
	HopSize    int         `json:"hop_size" yaml:"hop_size"`
	SampleRate float64     `json:"sample_rate" yaml:"sample_rate"`
	Samples    int         `json:"samples" yaml:"samples"`
	Frames     int         `json:"frames" yaml:"frames"`
	Unit       string      `json:"unit" yaml:"unit"`
	Peak       *peakReport `json:"peak,omitempty" yaml:"peak,omitempty"`
	Bins       []binReport `json:"bins" yaml:"bins"`
}

func (a *app) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze raw float32 samples or a synthesized signal",
		Args:  cobra.NoArgs,
		RunE:  a.runAnalyze,
	}

	f := cmd.Flags()
	f.StringP("algorithm", "a", "spectrum", "spectrum, autocorrelation, cuberoot, enhanced or cepstrum")
	f.StringP("window", "w", "hanning", "rectangular, bartlett, hamming or hanning")
	f.IntP("window-size", "n", 2048, "frame length, a power of two in [32, 65536]")
	f.Int("hop-divisor", analysis.DefaultHopDivisor, "frame hop is window-size / hop-divisor")
	f.Float64P("sample-rate", "r", 44100, "sample rate in Hz")
	f.Bool("cepstrum", false, "enable the experimental cepstrum algorithm")
	f.Int("top", 10, "print only the strongest N values (0 prints the whole curve)")
	f.StringP("input", "i", "", "raw little-endian float32 mono samples (- for stdin)")
	f.StringSlice("sine", nil, "synthesize sine tones at these frequencies in Hz")
	f.Int("harmonics", 1, "partials per synthesized tone (amplitude 1/k)")
	f.Float64("amplitude", 0.8, "peak amplitude of the synthesized tones")
	f.Float64("noise", 0, "white noise amplitude added to the signal")
	f.Float64("duration", 1, "synthesized signal length in seconds")
	f.Int64("seed", 1, "noise seed")

	for key, name := range map[string]string{
		"analysis.algorithm":   "algorithm",
		"analysis.window":      "window",
		"analysis.window_size": "window-size",
		"analysis.hop_divisor": "hop-divisor",
		"analysis.sample_rate": "sample-rate",
		"analysis.cepstrum":    "cepstrum",
		"analysis.top":         "top",
		"signal.input":         "input",
		"signal.sine":          "sine",
		"signal.harmonics":     "harmonics",
		"signal.amplitude":     "amplitude",
		"signal.noise":         "noise",
		"signal.duration":      "duration",
		"signal.seed":          "seed",
	} {
		a.bind(key, f.Lookup(name))
	}
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg
	alg, err := cfg.Algorithm()
	if err != nil {
		return err
	}
	win, err := cfg.Window()
	if err != nil {
		return err
	}

	data, err := a.loadSignal(cmd, cfg)
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithHopDivisor(cfg.Analysis.HopDivisor)}
	if cfg.Analysis.Cepstrum {
		opts = append(opts, analysis.WithCepstrum())
	}
	analyzer := analysis.New(opts...)

	ws := cfg.Analysis.WindowSize
	out := make([]float32, ws/2)
	res, err := analyzer.Run(alg, win, ws, data, out)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	a.log.WithFields(logrus.Fields{
		"algorithm":   alg.String(),
		"window":      win.String(),
		"window_size": ws,
		"samples":     len(data),
		"frames":      res.Frames,
	}).Info("Analysis complete")

	report := buildReport(res, analyzer.HopSize(ws), cfg.Analysis.SampleRate, len(data), cfg.Analysis.Top)
	if report.Peak == nil {
		a.log.Warn("No peak found")
	}
	return render(cmd.OutOrStdout(), cfg.Output, report, func(tw tableWriter) error {
		return writeAnalysisTable(tw, report)
	})
}

func (a *app) loadSignal(cmd *cobra.Command, cfg *config.Config) ([]float32, error) {
	s := cfg.Signal
	if s.Input != "" {
		var r io.Reader = cmd.InOrStdin()
		if s.Input != "-" {
			f, err := os.Open(s.Input)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		data, err := readFloat32LE(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.Input, err)
		}
		a.log.WithFields(logrus.Fields{"input": s.Input, "samples": len(data)}).Debug("Read samples")
		return data, nil
	}

	if len(s.Sine) == 0 && s.Noise == 0 {
		return nil, errNoInput
	}
	return synthesize(cfg)
}

// readFloat32LE decodes a headerless stream of little-endian float32 samples.
func readFloat32LE(r io.Reader) ([]float32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 4 bytes", len(raw))
	}
	data := make([]float32, len(raw)/4)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return data, nil
}

func synthesize(cfg *config.Config) ([]float32, error) {
	s := cfg.Signal
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.Analysis.SampleRate)},
		signal.WithSeed(s.Seed),
	)
	n := gen.Samples(s.Duration)

	amps := make([]float64, s.Harmonics)
	for k := range amps {
		amps[k] = s.Amplitude / float64(k+1)
	}

	data := make([]float32, n)
	for _, f0 := range s.Sine {
		tone, err := gen.Harmonics(f0, amps, n)
		if err != nil {
			return nil, err
		}
		if err := signal.Mix(data, tone); err != nil {
			return nil, err
		}
	}
	if len(s.Sine) > 1 || s.Harmonics > 1 {
		if err := signal.Normalize(data, s.Amplitude); err != nil {
			return nil, err
		}
	}

	if s.Noise > 0 {
		noise, err := gen.WhiteNoise(s.Noise, n)
		if err != nil {
			return nil, err
		}
		if err := signal.Mix(data, noise); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func buildReport(res analysis.Result, hop int, sampleRate float64, samples, top int) analysisReport {
	report := analysisReport{
		Algorithm:  res.Algorithm.String(),
		Window:     res.Window.String(),
		WindowSize: res.WindowSize,
		HopSize:    hop,
		SampleRate: sampleRate,
		Samples:    samples,
		Frames:     res.Frames,
		Unit:       "dB",
	}
	if res.Algorithm.IsLag() {
		report.Unit = "correlation"
	}

	if p, ok := analysis.FindPeak(res.Curve, res.Algorithm, res.WindowSize, sampleRate); ok {
		report.Peak = &peakReport{Index: p.Index, Frequency: p.Frequency, Value: p.Value}
	}

	binHz := core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithWindowSize(res.WindowSize),
	).BinHz()

	bins := make([]binReport, len(res.Curve))
	for i, v := range res.Curve {
		bins[i] = binReport{
			Index:     i,
			Frequency: binFrequency(res.Algorithm, i, binHz, sampleRate),
			Value:     math.Max(float64(v), minReportDB),
		}
	}
	if top > 0 && top < len(bins) {
		slices.SortStableFunc(bins, func(x, y binReport) int {
			switch {
			case x.Value > y.Value:
				return -1
			case x.Value < y.Value:
				return 1
			}
			return 0
		})
		bins = bins[:top]
	}
	report.Bins = bins
	return report
}

// binFrequency maps a curve index to Hz. Lag zero has no frequency.
func binFrequency(alg analysis.Algorithm, i int, binHz, sampleRate float64) float64 {
	if alg.IsLag() {
		if i == 0 {
			return 0
		}
		return sampleRate / float64(i)
	}
	return float64(i) * binHz
}

func writeAnalysisTable(tw tableWriter, r analysisReport) error {
	if _, err := fmt.Fprintf(tw, "Algorithm:\t%s\nWindow:\t%s (%d samples, hop %d)\nFrames:\t%d of %d samples at %g Hz\n",
		r.Algorithm, r.Window, r.WindowSize, r.HopSize, r.Frames, r.Samples, r.SampleRate); err != nil {
		return err
	}
	if r.Peak != nil {
		if _, err := fmt.Fprintf(tw, "Peak:\t%.2f Hz (index %.3f, value %.4f)\n", r.Peak.Frequency, r.Peak.Index, r.Peak.Value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(tw, "\nIndex\tFrequency [Hz]\tValue [%s]\n-----\t--------------\t----------\n", r.Unit); err != nil {
		return err
	}
	for _, b := range r.Bins {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%.4f\n", b.Index, b.Frequency, b.Value); err != nil {
			return err
		}
	}
	return nil
}
