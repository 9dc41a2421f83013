package main

import (
	"fmt"

	"par2fig/internal/config"
	"par2fig/internal/figures"
	"par2fig/internal/render"
	"par2fig/internal/results"
	"par2fig/internal/views"
)

// geneHeatmapTargets is how many top target genes figure 2 shows by default.
const geneHeatmapTargets = 8

// runConfig resolves the effective config: defaults, then the --config file,
// then explicit flag overrides.
func runConfig(resultsPath, outDir string, dpi int) (config.Config, error) {
	cfg := config.Default()
	if rootFlags.configPath != "" {
		c, err := config.LoadFromPath(rootFlags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = c
	}
	if resultsPath != "" {
		cfg.Results = resultsPath
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	if dpi > 0 {
		cfg.DPI = dpi
	}
	return cfg, nil
}

func loadProjector(resultsPath string) (*views.Projector, error) {
	doc, err := results.Load(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return views.New(doc), nil
}

func newEncoder(cfg config.Config) *render.Encoder {
	enc := render.NewEncoder(cfg.OutDir)
	enc.DPI = cfg.DPI
	return enc
}

// Figure builders shared by `all` and the single-figure subcommands.

func buildDiscovery(p *views.Projector) (*render.Figure, error) {
	rows, err := p.DiscoveryRateTable()
	if err != nil {
		return nil, err
	}
	return figures.Discovery(rows, p.Summary()), nil
}

func buildHeatmap(p *views.Projector) (*render.Figure, error) {
	m := p.GeneSignificanceMatrix(geneHeatmapTargets)
	return figures.GeneHeatmap(m, p.Summary().SignificantBonferroni), nil
}

func buildModel(p *views.Projector) (*render.Figure, error) {
	profile, err := p.Wee1Profile()
	if err != nil {
		return nil, err
	}
	return figures.Model(profile), nil
}

func buildWee1(p *views.Projector) (*render.Figure, error) {
	profile, err := p.Wee1Profile()
	if err != nil {
		return nil, err
	}
	return figures.Wee1Profile(profile, p.Summary().TotalDatasets), nil
}

func buildValidation(p *views.Projector) (*render.Figure, error) {
	return figures.Validation(p.SignificanceFunnel(), p.EigenperiodComparison(), p.Summary()), nil
}
