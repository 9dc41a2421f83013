package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"par2fig/internal/figures"
	"par2fig/internal/logging"
	"par2fig/internal/render"
	"par2fig/internal/views"
)

var allFlags struct {
	resultsPath string
	outDir      string
	dpi         int
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every manuscript figure",
	Long: `Generate all five manuscript figures from the comprehensive results
document. Figures are independent: a failing figure is logged and skipped
while the rest still render. The exit status is non-zero if any failed.`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	f := allCmd.Flags()
	f.StringVar(&allFlags.resultsPath, "results", "", "Results document path")
	f.StringVarP(&allFlags.outDir, "out", "o", "", "Output directory")
	f.IntVar(&allFlags.dpi, "dpi", 0, "Raster output DPI")
}

type figureJob struct {
	name  string
	build func(*views.Projector) (*render.Figure, error)
}

func figureJobs() []figureJob {
	return []figureJob{
		{figures.NameDiscovery, buildDiscovery},
		{figures.NameHeatmap, buildHeatmap},
		{figures.NameModel, buildModel},
		{figures.NameWee1Profile, buildWee1},
		{figures.NameValidation, buildValidation},
	}
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig(allFlags.resultsPath, allFlags.outDir, allFlags.dpi)
	if err != nil {
		return err
	}
	proj, err := loadProjector(cfg.Results)
	if err != nil {
		return err
	}
	enc := newEncoder(cfg)
	log := logging.New("all")

	jobs := figureJobs()
	failures := make([]error, len(jobs))
	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			fig, err := job.build(proj)
			if err == nil {
				err = enc.Save(fig)
			}
			if err != nil {
				log.Error("figure failed", "figure", job.name, "error", err)
				failures[i] = err
				return nil
			}
			log.Info("figure written", "figure", job.name, "dir", enc.OutDir)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d figures failed", failed, len(jobs))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d figures to %s\n", len(jobs), enc.OutDir)
	return nil
}
