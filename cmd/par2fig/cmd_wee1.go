package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wee1Flags struct {
	resultsPath string
	outDir      string
	dpi         int
}

var wee1Cmd = &cobra.Command{
	Use:   "wee1",
	Short: "Generate the Wee1 candidate profile (figure 4)",
	Args:  cobra.NoArgs,
	RunE:  runWee1,
}

func init() {
	f := wee1Cmd.Flags()
	f.StringVar(&wee1Flags.resultsPath, "results", "", "Results document path")
	f.StringVarP(&wee1Flags.outDir, "out", "o", "", "Output directory")
	f.IntVar(&wee1Flags.dpi, "dpi", 0, "Raster output DPI")
}

func runWee1(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig(wee1Flags.resultsPath, wee1Flags.outDir, wee1Flags.dpi)
	if err != nil {
		return err
	}
	proj, err := loadProjector(cfg.Results)
	if err != nil {
		return err
	}
	fig, err := buildWee1(proj)
	if err != nil {
		return err
	}
	enc := newEncoder(cfg)
	if err := enc.Save(fig); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", fig.Name, enc.OutDir)
	return nil
}
