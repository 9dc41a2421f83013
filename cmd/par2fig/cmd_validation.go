package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validationFlags struct {
	resultsPath string
	outDir      string
	dpi         int
}

var validationCmd = &cobra.Command{
	Use:   "validation",
	Short: "Generate the validation summary (figure 5)",
	Args:  cobra.NoArgs,
	RunE:  runValidation,
}

func init() {
	f := validationCmd.Flags()
	f.StringVar(&validationFlags.resultsPath, "results", "", "Results document path")
	f.StringVarP(&validationFlags.outDir, "out", "o", "", "Output directory")
	f.IntVar(&validationFlags.dpi, "dpi", 0, "Raster output DPI")
}

func runValidation(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig(validationFlags.resultsPath, validationFlags.outDir, validationFlags.dpi)
	if err != nil {
		return err
	}
	proj, err := loadProjector(cfg.Results)
	if err != nil {
		return err
	}
	fig, err := buildValidation(proj)
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
