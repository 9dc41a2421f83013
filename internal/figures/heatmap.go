package figures

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"par2fig/internal/render"
	"par2fig/internal/views"
)

// GeneHeatmap builds the figure-2 grid of top target genes against clock
// genes. Cell values are each target's tissue-significance count, annotated
// in-cell; counts above 3 annotate in white against the hotter fill.
func GeneHeatmap(m *views.GeneMatrix, bonferroniSignificant int) *render.Figure {
	rows, cols := m.Values.Dims()
	cells := make([][]string, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			cells[i][j] = fmt.Sprintf("%d", int(m.Values.At(i, j)))
		}
	}

	hm := &render.Heatmap{
		Title:        "Circadian Gating: Target Genes × Clock Genes\n(Tissues with Bonferroni significance)",
		XLabel:       "Clock Gene",
		YLabel:       "Target Gene",
		RowLabels:    m.RowLabels,
		ColLabels:    m.ColLabels,
		Values:       m.Values,
		Min:          0,
		Max:          6,
		CellLabels:   cells,
		StrongCutoff: 3,
		Annotations: []string{
			fmt.Sprintf("Data: %s Bonferroni-significant pairs", comma(bonferroniSignificant)),
		},
	}

	return &render.Figure{
		Name:   NameHeatmap,
		Width:  10 * vg.Inch,
		Height: 8 * vg.Inch,
		Panels: []render.Panel{hm},
	}
}

// TissueHeatmap builds one standalone per-tissue heatmap of -log10(p)
// values from the figure-2 fragment.
func TissueHeatmap(tissue string, m *views.GeneMatrix) *render.Figure {
	rows, cols := m.Values.Dims()
	cells := make([][]string, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			cells[i][j] = fmt.Sprintf("%.2f", m.Values.At(i, j))
		}
	}

	// taller fragments get taller canvases, half an inch per gene row
	inches := float64(rows) * 0.5
	if inches < 4 {
		inches = 4
	}

	hm := &render.Heatmap{
		Title:        fmt.Sprintf("Circadian Gating in %s\n(-log10 p-value)", tissue),
		XLabel:       "Clock Gene",
		YLabel:       "Target Gene",
		RowLabels:    m.RowLabels,
		ColLabels:    m.ColLabels,
		Values:       m.Values,
		CellLabels:   cells,
		StrongCutoff: 2, // -log10(p) of 2 is p=0.01; hot cells annotate white
	}

	return &render.Figure{
		Name:   fmt.Sprintf("%s_%s", NameHeatmap, safeName(tissue)),
		Width:  12 * vg.Inch,
		Height: vg.Length(inches) * vg.Inch,
		Panels: []render.Panel{hm},
	}
}
