package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-freq/internal/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	log        *logrus.Logger
	configFile string
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:   config.New(),
		log: logrus.New(),
	}

	root := &cobra.Command{
		Use:   "freqscan",
		Short: "Frequency and pitch analysis of audio sample data",
		Long: `freqscan accumulates windowed FFT frames into a power spectrum (dB)
or an autocorrelation curve (standard, cube-root or enhanced) and
reports the dominant frequency.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "",
		"config file (default ./freqscan.yaml or $HOME/.config/freqscan/freqscan.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", "table", "output format (table, yaml, json)")
	a.bind("log_level", pf.Lookup("log-level"))
	a.bind("output", pf.Lookup("output"))

	root.AddCommand(a.newAnalyzeCmd(), a.newWindowsCmd(), a.newAlgorithmsCmd())
	return root
}

// bind ties a flag to a config key. The keys are static, so a failure is a
// programming error.
func (a *app) bind(key string, f *pflag.Flag) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(cfg.Level())

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("Loaded configuration")
	}
	return nil
}
