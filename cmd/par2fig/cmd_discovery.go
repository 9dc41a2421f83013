package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"par2fig/internal/config"
	"par2fig/internal/figures"
	"par2fig/internal/render"
	"par2fig/internal/results"
)

var discoveryFlags struct {
	resultsPath string
	csvPath     string
	outDir      string
	dpi         int
}

var discoveryCmd = &cobra.Command{
	Use:   "discovery",
	Short: "Generate the discovery-rate bar chart (figure 1)",
	Long: `Generate the discovery-rate bar chart from the results document.

With --csv, the figure is built from the standalone per-tissue CSV export
instead: bars sorted by rate, labelled significant/total.`,
	Args: cobra.NoArgs,
	RunE: runDiscovery,
}

func init() {
	f := discoveryCmd.Flags()
	f.StringVar(&discoveryFlags.resultsPath, "results", "", "Results document path")
	f.StringVar(&discoveryFlags.csvPath, "csv", "", "Standalone CSV export path")
	f.Lookup("csv").NoOptDefVal = config.Default().DiscoveryCSV
	f.StringVarP(&discoveryFlags.outDir, "out", "o", "", "Output directory")
	f.IntVar(&discoveryFlags.dpi, "dpi", 0, "Raster output DPI")
}

func runDiscovery(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig(discoveryFlags.resultsPath, discoveryFlags.outDir, discoveryFlags.dpi)
	if err != nil {
		return err
	}

	var fig *render.Figure
	if discoveryFlags.csvPath != "" {
		rows, err := results.LoadDiscoveryCSV(discoveryFlags.csvPath)
		if err != nil {
			return fmt.Errorf("load discovery csv: %w", err)
		}
		fig = figures.DiscoveryFromCSV(rows)
	} else {
		proj, err := loadProjector(cfg.Results)
		if err != nil {
			return err
		}
		fig, err = buildDiscovery(proj)
		if err != nil {
			return err
		}
	}

	enc := newEncoder(cfg)
	if err := enc.Save(fig); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", fig.Name, enc.OutDir)
	return nil
}
