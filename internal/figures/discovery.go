package figures

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/vg"

	"par2fig/internal/render"
	"par2fig/internal/results"
	"par2fig/internal/views"
)

func categoryColor(c views.Category) color.RGBA {
	switch c {
	case views.CategoryCancer:
		return Red
	case views.CategoryOrganoid:
		return Green
	default:
		return Cyan
	}
}

// Discovery builds the figure-1 bar chart from the document-driven
// discovery-rate table: one bar per tissue plus the cancer and organoid
// context bars, colored by category.
func Discovery(rows []views.DiscoveryRow, summary results.ExecutiveSummary) *render.Figure {
	bars := make([]render.Bar, len(rows))
	var tissueCount int
	rateOf := map[views.Category]float64{}
	for i, row := range rows {
		bars[i] = render.Bar{
			Label:      row.Label,
			Value:      row.Rate,
			Color:      categoryColor(row.Category),
			ValueLabel: fmt.Sprintf("%.1f%%", row.Rate),
		}
		if row.Category == views.CategoryTissue {
			tissueCount++
		}
		if _, seen := rateOf[row.Category]; !seen {
			rateOf[row.Category] = row.Rate
		}
	}

	chart := &render.BarChart{
		Title:       "PAR(2) Circadian Gating Discovery Rates\n(Bonferroni-corrected significance)",
		XLabel:      "Tissue/Condition",
		YLabel:      "Discovery Rate (%)",
		Bars:        bars,
		RotateTicks: true,
		Legend: []render.LegendEntry{
			{Label: fmt.Sprintf("Mouse Tissues (n=%d, rate=%.1f%%)", tissueCount, rateOf[views.CategoryTissue]), Color: Cyan},
			{Label: fmt.Sprintf("Cancer (MYC-ON, rate=%.1f%%)", rateOf[views.CategoryCancer]), Color: Red},
			{Label: fmt.Sprintf("Organoids (rate=%.1f%%)", rateOf[views.CategoryOrganoid]), Color: Green},
		},
		Annotations: []string{
			fmt.Sprintf("Source: %d datasets, %s pairs tested", summary.TotalDatasets, comma(summary.TotalPairsTested)),
		},
	}

	return &render.Figure{
		Name:   NameDiscovery,
		Width:  14 * vg.Inch,
		Height: 6 * vg.Inch,
		Panels: []render.Panel{chart},
	}
}

// DiscoveryFromCSV builds the standalone figure-1 variant from the companion
// CSV. Bars are sorted by rate descending and labeled significant/total.
func DiscoveryFromCSV(rows []results.DiscoveryCSVRow) *render.Figure {
	sorted := append([]results.DiscoveryCSVRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rate > sorted[j].Rate })

	bars := make([]render.Bar, len(sorted))
	for i, row := range sorted {
		bars[i] = render.Bar{
			Label:      row.Tissue,
			Value:      row.Rate,
			Color:      Cyan,
			ValueLabel: fmt.Sprintf("%d/%d", row.Significant, row.Total),
		}
	}

	chart := &render.BarChart{
		Title:       "Circadian Gating Discovery Rates Across Mouse Tissues",
		XLabel:      "Tissue",
		YLabel:      "Discovery Rate (%)",
		Bars:        bars,
		RotateTicks: true,
	}

	return &render.Figure{
		Name:   NameDiscovery,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		Panels: []render.Panel{chart},
	}
}
