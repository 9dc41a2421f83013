package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"par2fig/internal/config"
	"par2fig/internal/figures"
	"par2fig/internal/results"
	"par2fig/internal/views"
)

var heatmapFlags struct {
	resultsPath string
	dataPath    string
	maxTargets  int
	outDir      string
	dpi         int
}

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Generate the gene-significance heatmap (figure 2)",
	Long: `Generate the target-gene x clock-gene significance heatmap from the
results document.

With --data, per-tissue -log10(p) heatmaps are built from the standalone
JSON export instead, one figure per tissue.`,
	Args: cobra.NoArgs,
	RunE: runHeatmap,
}

func init() {
	f := heatmapCmd.Flags()
	f.StringVar(&heatmapFlags.resultsPath, "results", "", "Results document path")
	f.StringVar(&heatmapFlags.dataPath, "data", "", "Standalone heatmap JSON path")
	f.Lookup("data").NoOptDefVal = config.Default().HeatmapData
	f.IntVar(&heatmapFlags.maxTargets, "max-targets", geneHeatmapTargets, "Top target genes to show (0 = all)")
	f.StringVarP(&heatmapFlags.outDir, "out", "o", "", "Output directory")
	f.IntVar(&heatmapFlags.dpi, "dpi", 0, "Raster output DPI")
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig(heatmapFlags.resultsPath, heatmapFlags.outDir, heatmapFlags.dpi)
	if err != nil {
		return err
	}
	enc := newEncoder(cfg)

	if heatmapFlags.dataPath != "" {
		doc, err := results.LoadHeatmapDoc(heatmapFlags.dataPath)
		if err != nil {
			return fmt.Errorf("load heatmap data: %w", err)
		}
		for _, tissue := range views.HeatmapTissues(doc) {
			m, err := views.TissueMatrix(doc, tissue)
			if err != nil {
				return err
			}
			fig := figures.TissueHeatmap(tissue, m)
			if err := enc.Save(fig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", fig.Name, enc.OutDir)
		}
		return nil
	}

	proj, err := loadProjector(cfg.Results)
	if err != nil {
		return err
	}
	m := proj.GeneSignificanceMatrix(heatmapFlags.maxTargets)
	fig := figures.GeneHeatmap(m, proj.Summary().SignificantBonferroni)
	if err := enc.Save(fig); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", fig.Name, enc.OutDir)
	return nil
}
