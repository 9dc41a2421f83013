package figures

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"

	"par2fig/internal/render"
	"par2fig/internal/results"
	"par2fig/internal/views"
)

var funnelColors = []color.RGBA{Slate, Cyan, Purple, Orange, Red}

func funnelDisplayLabel(s views.Stage) string {
	switch s {
	case views.StageBonferroni:
		return "Bonferroni\nSig"
	case views.StageFDR:
		return "FDR\nSig"
	case views.StageHighConfidence:
		return "High\nConfidence"
	case views.StageTier0:
		return "TIER 0"
	default:
		return "Tested"
	}
}

// Validation builds the figure-5 three-panel summary: eigenperiod
// separation, the significance funnel on a log10 scale, and a statistics
// box. Funnel bar heights are log10 of the counts; the labels carry the raw
// counts so no displayed number is invented.
func Validation(funnel []views.FunnelStage, ep views.EigenperiodComparison, summary results.ExecutiveSummary) *render.Figure {
	eigen := &render.BarChart{
		Title:  fmt.Sprintf("Eigenperiod Separation\n(p < %.1e)", ep.PValue),
		YLabel: "Eigenperiod (hours)",
		Bars: []render.Bar{
			{Label: "Healthy\nTissues", Value: ep.HealthyMean, Color: Green, ValueLabel: fmt.Sprintf("%.1fh", ep.HealthyMean)},
			{Label: "Cancer\nModels", Value: ep.CancerMean, Color: Red, ValueLabel: fmt.Sprintf("%.1fh", ep.CancerMean)},
		},
		ValueMax:     30,
		HasRefLine:   true,
		RefLine:      24,
		RefLineLabel: "Circadian (24h)",
	}

	bars := make([]render.Bar, len(funnel))
	for i, stage := range funnel {
		height := 0.0
		if stage.Count > 0 {
			height = math.Log10(float64(stage.Count))
		}
		bars[i] = render.Bar{
			Label:      funnelDisplayLabel(stage.Stage),
			Value:      height,
			Color:      funnelColors[i%len(funnelColors)],
			ValueLabel: comma(stage.Count),
		}
	}
	funnelChart := &render.BarChart{
		Title:  "Significance Funnel\n(Multiple Testing Correction)",
		YLabel: "log10(Count)",
		Bars:   bars,
	}

	stats := &render.StatsBox{
		Lines: []string{
			"VALIDATION SUMMARY",
			"══════════════════════════",
			"",
			fmt.Sprintf("Total Datasets:        %d", summary.TotalDatasets),
			fmt.Sprintf("Pairs Tested:          %s", comma(summary.TotalPairsTested)),
			fmt.Sprintf("Bonferroni Sig:        %s", comma(summary.SignificantBonferroni)),
			fmt.Sprintf("FDR Sig:               %d", summary.SignificantFDR),
			fmt.Sprintf("High Confidence:       %d", summary.HighConfidencePairs),
			fmt.Sprintf("TIER 0 Candidates:     %d", summary.Tier0Candidates),
			"",
			"══════════════════════════",
			"Eigenperiod Separation:",
			fmt.Sprintf("Healthy: %.1fh", ep.HealthyMean),
			fmt.Sprintf("Cancer:  %.1fh", ep.CancerMean),
			fmt.Sprintf("p-value: %.1e", ep.PValue),
			"══════════════════════════",
		},
	}

	return &render.Figure{
		Name:   NameValidation,
		Rows:   1,
		Cols:   3,
		Width:  15 * vg.Inch,
		Height: 5 * vg.Inch,
		Panels: []render.Panel{eigen, funnelChart, stats},
	}
}
