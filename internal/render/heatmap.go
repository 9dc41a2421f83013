package render

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Heatmap is a labeled grid panel. Row 0 of Values renders at the top,
// matching the stored rank order (rank 0 = strongest candidate first).
type Heatmap struct {
	Title  string
	XLabel string
	YLabel string

	RowLabels []string
	ColLabels []string
	Values    *mat.Dense

	Min, Max float64 // color range; Max <= Min means derive from data

	CellLabels   [][]string // optional per-cell annotations, row-major
	StrongCutoff float64    // cells above this value annotate in white

	Annotations []string // small gray caption under the grid
}

// Plot builds the heatmap with categorical ticks on both axes.
func (h *Heatmap) Plot() (*plot.Plot, error) {
	rows, cols := h.Values.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.New("heatmap grid is empty")
	}
	if len(h.RowLabels) != rows || len(h.ColLabels) != cols {
		return nil, errors.New("heatmap labels do not match grid dimensions")
	}

	p := plot.New()
	p.Title.Text = h.Title
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = h.YLabel

	hm := plotter.NewHeatMap(&heatGrid{values: h.Values}, palette.Heat(12, 1))
	if h.Max > h.Min {
		hm.Min = h.Min
		hm.Max = h.Max
	}
	p.Add(hm)

	// y ticks are flipped with the grid so labels track their rows
	flipped := make([]string, rows)
	for i, l := range h.RowLabels {
		flipped[rows-1-i] = l
	}
	p.X.Tick.Marker = categoricalTicks(h.ColLabels)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YTop
	p.Y.Tick.Marker = categoricalTicks(flipped)

	if h.CellLabels != nil {
		if err := h.addCellLabels(p, rows, cols); err != nil {
			return nil, err
		}
	}
	if len(h.Annotations) > 0 {
		if err := h.addCaption(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (h *Heatmap) addCellLabels(p *plot.Plot, rows, cols int) error {
	var xys plotter.XYs
	var texts []string
	var strong []bool
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i >= len(h.CellLabels) || j >= len(h.CellLabels[i]) || h.CellLabels[i][j] == "" {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(rows - 1 - i)})
			texts = append(texts, h.CellLabels[i][j])
			strong = append(strong, h.Values.At(i, j) > h.StrongCutoff)
		}
	}
	if len(texts) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(9)
		if strong[i] {
			labels.TextStyle[i].Color = color.White
		}
	}
	p.Add(labels)
	return nil
}

func (h *Heatmap) addCaption(p *plot.Plot) error {
	xys := make(plotter.XYs, len(h.Annotations))
	for i := range h.Annotations {
		xys[i] = plotter.XY{X: -0.5, Y: -0.9 - 0.4*float64(i)}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: h.Annotations})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = annotationGray
		labels.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(labels)
	return nil
}

// heatGrid adapts a mat.Dense to plotter.GridXYZ, flipping rows so the first
// matrix row plots at the top like the source ranking.
type heatGrid struct {
	values *mat.Dense
}

func (g *heatGrid) Dims() (c, r int) {
	r, c = g.values.Dims()
	return c, r
}

func (g *heatGrid) Z(c, r int) float64 {
	rows, _ := g.values.Dims()
	return g.values.At(rows-1-r, c)
}

func (g *heatGrid) X(c int) float64 { return float64(c) }
func (g *heatGrid) Y(r int) float64 { return float64(r) }

// categoricalTicks places one labeled tick per category index.
type categoricalTicks []string

func (t categoricalTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, label := range t {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}
