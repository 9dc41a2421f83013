package figures

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"par2fig/internal/render"
	"par2fig/internal/views"
)

// Wee1Profile builds the figure-4 candidate profile: a tissue-coverage bar
// panel next to a monospace statistics box. Every statistic comes from the
// tier-0 summary verbatim.
func Wee1Profile(profile *views.Wee1Profile, totalDatasets int) *render.Figure {
	bars := make([]render.Bar, len(profile.Tissues))
	n := len(profile.Tissues)
	for i, tissue := range profile.Tissues {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		bars[i] = render.Bar{
			Label:      tissue,
			Value:      1,
			Color:      lerp(Teal, Green, t),
			ValueLabel: fmt.Sprintf("All %d clock genes", profile.ClockGenesGating),
			NoteColor:  Green,
		}
	}

	coverage := &render.BarChart{
		Title: fmt.Sprintf("Wee1: TIER 0 Candidate\n%d Tissues with Clock Gating",
			profile.TissuesWithSignificance),
		XLabel:     "Significant Gating",
		Bars:       bars,
		Horizontal: true,
		ValueMax:   1.2,
	}

	stats := &render.StatsBox{
		Lines: []string{
			"WEE1 - CIRCADIAN GATEKEEPER",
			"═══════════════════════════════",
			"",
			fmt.Sprintf("Tissues with Significance:  %d", profile.TissuesWithSignificance),
			fmt.Sprintf("Clock Genes Gating Wee1:    %d / 8", profile.ClockGenesGating),
			fmt.Sprintf("Average Effect Size:        %.3f", profile.AvgEffectSize),
			"",
			"─────────────────────────────────",
			"Biological Role:",
			profile.BiologicalRole,
			"",
			"─────────────────────────────────",
			"Cancer Relevance:",
			profile.CancerRelevance,
			"",
			"═══════════════════════════════",
			"Source: COMPREHENSIVE_RESULTS.json",
			fmt.Sprintf("Validated: %d datasets", totalDatasets),
		},
	}

	return &render.Figure{
		Name:   NameWee1Profile,
		Rows:   1,
		Cols:   2,
		Width:  14 * vg.Inch,
		Height: 6 * vg.Inch,
		Panels: []render.Panel{coverage, stats},
	}
}
