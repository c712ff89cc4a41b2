package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-freq/dsp/window"
)

type windowReport struct {
	Code              int     `json:"code" yaml:"code"`
	Name              string  `json:"name" yaml:"name"`
	Size              int     `json:"size" yaml:"size"`
	CoherentGain      float64 `json:"coherent_gain" yaml:"coherent_gain"`
	ENBW              float64 `json:"enbw_bins" yaml:"enbw_bins"`
	Bandwidth3dB      float64 `json:"bandwidth_3db_bins" yaml:"bandwidth_3db_bins"`
	HighestSidelobedB float64 `json:"highest_sidelobe_db" yaml:"highest_sidelobe_db"`
	ScallopLossdB     float64 `json:"scallop_loss_db" yaml:"scallop_loss_db"`
}

func (a *app) newWindowsCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List window functions with their spectral properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 2 {
				return fmt.Errorf("window size must be >= 2: %d", size)
			}
			reports := windowReports(size)
			return render(cmd.OutOrStdout(), a.cfg.Output, reports, func(tw tableWriter) error {
				return writeWindowTable(tw, reports)
			})
		},
	}
	cmd.Flags().IntVar(&size, "size", 1024, "window length in samples")
	return cmd
}

func windowReports(size int) []windowReport {
	types := window.Types()
	reports := make([]windowReport, len(types))
	for i, t := range types {
		an := window.Analyze(window.Generate(t, size))
		reports[i] = windowReport{
			Code:              int(t),
			Name:              t.String(),
			Size:              size,
			CoherentGain:      an.CoherentGain,
			ENBW:              an.ENBW,
			Bandwidth3dB:      an.Bandwidth3dB,
			HighestSidelobedB: an.HighestSidelobedB,
			ScallopLossdB:     an.ScallopLossdB,
		}
	}
	return reports
}

func writeWindowTable(tw tableWriter, reports []windowReport) error {
	if _, err := fmt.Fprintf(tw, "Code\tWindow\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\tScallop [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t------\t----\t-------------\t-----------\t-------------\t-------------\t------------\n"); err != nil {
		return err
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\n",
			r.Code, r.Name, r.Size, r.CoherentGain, r.ENBW, r.Bandwidth3dB, r.HighestSidelobedB, r.ScallopLossdB); err != nil {
			return err
		}
	}
	return nil
}
