package render

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var annotationGray = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Bar is one bar of a BarChart. ValueLabel, when set, is drawn at the bar's
// end (above for vertical charts, to the right for horizontal ones).
type Bar struct {
	Label      string
	Value      float64
	Color      color.Color
	ValueLabel string
	NoteColor  color.Color // ValueLabel color; nil means gray
}

// LegendEntry is a color swatch with a label.
type LegendEntry struct {
	Label string
	Color color.Color
}

// BarChart is a categorical bar chart panel with per-bar colors.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar

	Horizontal  bool
	ValueMax    float64 // cap of the value axis; 0 = data max × 1.15
	RotateTicks bool    // slant category labels (crowded tissue names)

	RefLine      float64 // dashed reference line on the value axis
	RefLineLabel string
	HasRefLine   bool

	Legend      []LegendEntry
	Annotations []string // small gray text lines, top-left corner
}

// Plot builds the bar chart. Each bar is its own plotter so it can carry its
// own color; the other positions hold zero-height bars that draw nothing.
func (b *BarChart) Plot() (*plot.Plot, error) {
	if len(b.Bars) == 0 {
		return nil, errors.New("bar chart has no bars")
	}

	p := plot.New()
	p.Title.Text = b.Title
	p.X.Label.Text = b.XLabel
	p.Y.Label.Text = b.YLabel

	n := len(b.Bars)
	names := make([]string, n)
	width := vg.Points(18)
	var dataMax float64
	for i, bar := range b.Bars {
		names[i] = bar.Label
		if bar.Value > dataMax {
			dataMax = bar.Value
		}
		vals := make(plotter.Values, n)
		vals[i] = bar.Value
		bc, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return nil, err
		}
		bc.Color = bar.Color
		bc.Horizontal = b.Horizontal
		bc.LineStyle.Width = 0
		p.Add(bc)
	}

	if b.Horizontal {
		p.NominalY(names...)
	} else {
		p.NominalX(names...)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Width = 0
	grid.Horizontal.Dashes = []vg.Length{2, 2}
	grid.Horizontal.Color = color.RGBA{A: 0x40}
	if b.Horizontal {
		grid.Horizontal.Width = 0
		grid.Vertical.Width = vg.Points(0.5)
		grid.Vertical.Dashes = []vg.Length{2, 2}
		grid.Vertical.Color = color.RGBA{A: 0x40}
	}
	p.Add(grid)

	if b.HasRefLine {
		line, err := refLine(b.RefLine, n, b.Horizontal)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		if b.RefLineLabel != "" {
			p.Legend.Add(b.RefLineLabel, line)
		}
	}

	if err := b.addValueLabels(p); err != nil {
		return nil, err
	}

	valueMax := b.ValueMax
	if valueMax <= 0 {
		valueMax = dataMax * 1.15
	}
	if b.Horizontal {
		p.X.Min = 0
		p.X.Max = valueMax
	} else {
		p.Y.Min = 0
		p.Y.Max = valueMax
	}

	if b.RotateTicks {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YTop
	}

	for _, le := range b.Legend {
		thumb, err := plotter.NewBarChart(plotter.Values{0}, width)
		if err != nil {
			return nil, err
		}
		thumb.Color = le.Color
		thumb.LineStyle.Width = 0
		p.Legend.Add(le.Label, thumb)
	}
	if len(b.Legend) > 0 || (b.HasRefLine && b.RefLineLabel != "") {
		p.Legend.Top = true
	}

	if err := addAnnotations(p, b.Annotations, valueMax, b.Horizontal, n); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *BarChart) addValueLabels(p *plot.Plot) error {
	var xys plotter.XYs
	var texts []string
	var colors []color.Color
	for i, bar := range b.Bars {
		if bar.ValueLabel == "" {
			continue
		}
		if b.Horizontal {
			xys = append(xys, plotter.XY{X: bar.Value, Y: float64(i)})
		} else {
			xys = append(xys, plotter.XY{X: float64(i), Y: bar.Value})
		}
		texts = append(texts, bar.ValueLabel)
		c := bar.NoteColor
		if c == nil {
			c = annotationGray
		}
		colors = append(colors, c)
	}
	if len(texts) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	if b.Horizontal {
		labels.Offset = vg.Point{X: vg.Points(3)}
	} else {
		labels.Offset = vg.Point{Y: vg.Points(3)}
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = colors[i]
		labels.TextStyle[i].Font.Size = vg.Points(8)
		if b.Horizontal {
			labels.TextStyle[i].XAlign = text.XLeft
			labels.TextStyle[i].YAlign = text.YCenter
		} else {
			labels.TextStyle[i].XAlign = text.XCenter
			labels.TextStyle[i].YAlign = text.YBottom
		}
	}
	p.Add(labels)
	return nil
}

func refLine(v float64, n int, horizontal bool) (*plotter.Line, error) {
	pts := plotter.XYs{{X: -0.5, Y: v}, {X: float64(n) - 0.5, Y: v}}
	if horizontal {
		pts = plotter.XYs{{X: v, Y: -0.5}, {X: v, Y: float64(n) - 0.5}}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = annotationGray
	line.LineStyle.Dashes = []vg.Length{6, 4}
	line.LineStyle.Width = vg.Points(1)
	return line, nil
}

func addAnnotations(p *plot.Plot, notes []string, valueMax float64, horizontal bool, n int) error {
	if len(notes) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(notes))
	for i := range notes {
		if horizontal {
			xys[i] = plotter.XY{X: valueMax * 0.02, Y: float64(n) - 0.6 - 0.35*float64(i)}
		} else {
			xys[i] = plotter.XY{X: -0.4, Y: valueMax * (0.97 - 0.05*float64(i))}
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: notes})
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

// StatsBox is a borderless panel of monospace text lines, used for the
// summary boxes of the profile and validation figures.
type StatsBox struct {
	Title string
	Lines []string
}

// Plot lays the lines out top-down on a hidden-axes canvas.
func (s *StatsBox) Plot() (*plot.Plot, error) {
	if len(s.Lines) == 0 {
		return nil, errors.New("stats box has no lines")
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.HideAxes()

	xys := make(plotter.XYs, len(s.Lines))
	for i := range s.Lines {
		xys[i] = plotter.XY{X: 0.05, Y: 0.95 - 0.055*float64(i)}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: s.Lines})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Variant = "Mono"
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].XAlign = text.XLeft
		labels.TextStyle[i].YAlign = text.YTop
	}
	p.Add(labels)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p, nil
}
