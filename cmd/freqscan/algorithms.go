package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-freq/dsp/analysis"
)

type algorithmReport struct {
	Code    int    `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Domain  string `json:"domain" yaml:"domain"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

func (a *app) newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List analysis algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports := algorithmReports(a.cfg.Analysis.Cepstrum)
			return render(cmd.OutOrStdout(), a.cfg.Output, reports, func(tw tableWriter) error {
				if _, err := fmt.Fprintf(tw, "Code\tAlgorithm\tDomain\tEnabled\n----\t---------\t------\t-------\n"); err != nil {
					return err
				}
				for _, r := range reports {
					if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", r.Code, r.Name, r.Domain, r.Enabled); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func algorithmReports(cepstrum bool) []algorithmReport {
	algs := append(analysis.Algorithms(), analysis.Cepstrum)
	reports := make([]algorithmReport, len(algs))
	for i, alg := range algs {
		domain := "frequency"
		if alg.IsLag() {
			domain = "lag"
		}
		reports[i] = algorithmReport{
			Code:    int(alg),
			Name:    alg.String(),
			Domain:  domain,
			Enabled: alg != analysis.Cepstrum || cepstrum,
		}
	}
	return reports
}
