package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"par2fig/internal/config"
	"par2fig/internal/figures"
	"par2fig/internal/render"
	"par2fig/internal/results"
)

var modelFlags struct {
	resultsPath string
	dataPath    string
	outDir      string
	dpi         int
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Generate the pathway model schematic (figure 3)",
	Long: `Generate the clock-to-tissue pathway schematic. Tissues whose pathway
gates Wee1 carry a highlighted border.

With --data, the tissue set comes from the standalone pathway model JSON
instead of the built-in layout.`,
	Args: cobra.NoArgs,
	RunE: runModel,
}

func init() {
	f := modelCmd.Flags()
	f.StringVar(&modelFlags.resultsPath, "results", "", "Results document path")
	f.StringVar(&modelFlags.dataPath, "data", "", "Standalone pathway model JSON path")
	f.Lookup("data").NoOptDefVal = config.Default().PathwayModel
	f.StringVarP(&modelFlags.outDir, "out", "o", "", "Output directory")
	f.IntVar(&modelFlags.dpi, "dpi", 0, "Raster output DPI")
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig(modelFlags.resultsPath, modelFlags.outDir, modelFlags.dpi)
	if err != nil {
		return err
	}

	var fig *render.Figure
	if modelFlags.dataPath != "" {
		model, err := results.LoadPathwayModel(modelFlags.dataPath)
		if err != nil {
			return fmt.Errorf("load pathway model: %w", err)
		}
		fig = figures.ModelFromPathway(model)
	} else {
		proj, err := loadProjector(cfg.Results)
		if err != nil {
			return err
		}
		fig, err = buildModel(proj)
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
