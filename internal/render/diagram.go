package render

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	font "golang.org/x/image/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Hub is the central circle of a Diagram.
type Hub struct {
	Label  string
	X, Y   float64
	Radius float64
	Fill   color.Color
	Border color.Color
}

// Box is a rectangular node with a bold label and an italic caption.
type Box struct {
	Label   string
	Caption string
	X, Y    float64 // center, data coordinates
	W, H    float64
	Fill    color.Color
	Border  color.Color
	BorderW vg.Length
}

// Arrow is a straight arrow between two data-coordinate points.
type Arrow struct {
	X0, Y0 float64
	X1, Y1 float64
	Color  color.Color
}

// Note is free-floating small text on the diagram.
type Note struct {
	Text   string
	X, Y   float64
	Color  color.Color
	Italic bool
}

// Diagram is a schematic panel drawn on hidden axes in fixed data
// coordinates, in the manner of the protection-model figure.
type Diagram struct {
	Title      string
	XMax, YMax float64
	Hub        Hub
	Boxes      []Box
	Arrows     []Arrow
	Notes      []Note
}

// Plot builds the schematic on a hidden-axes canvas.
func (d *Diagram) Plot() (*plot.Plot, error) {
	if d.XMax <= 0 || d.YMax <= 0 {
		return nil, errors.New("diagram bounds not set")
	}

	p := plot.New()
	p.Title.Text = d.Title
	p.HideAxes()
	p.X.Min, p.X.Max = 0, d.XMax
	p.Y.Min, p.Y.Max = 0, d.YMax
	p.Add(&diagramPlotter{d: d})
	return p, nil
}

type diagramPlotter struct {
	d *Diagram
}

func (dp *diagramPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	d := dp.d

	for _, a := range d.Arrows {
		dp.drawArrow(c, trX, trY, a)
	}
	for _, b := range d.Boxes {
		dp.drawBox(c, plt, trX, trY, b)
	}
	dp.drawHub(c, plt, trX, trY, d.Hub)
	for _, n := range d.Notes {
		sty := dp.textStyle(plt, n.Color, vg.Points(9))
		if n.Italic {
			sty.Font.Style = font.StyleItalic
		}
		c.FillText(sty, vg.Point{X: trX(n.X), Y: trY(n.Y)}, n.Text)
	}
}

func (dp *diagramPlotter) drawHub(c draw.Canvas, plt *plot.Plot, trX, trY func(float64) vg.Length, h Hub) {
	center := vg.Point{X: trX(h.X), Y: trY(h.Y)}
	radius := trX(h.X+h.Radius) - trX(h.X)

	var path vg.Path
	path.Move(vg.Point{X: center.X + radius, Y: center.Y})
	path.Arc(center, radius, 0, 2*math.Pi)
	path.Close()

	c.SetColor(h.Fill)
	c.Fill(path)
	c.SetColor(h.Border)
	c.SetLineWidth(vg.Points(2))
	c.Stroke(path)

	c.FillText(dp.textStyle(plt, color.White, vg.Points(10)), center, h.Label)
}

func (dp *diagramPlotter) drawBox(c draw.Canvas, plt *plot.Plot, trX, trY func(float64) vg.Length, b Box) {
	xmin, xmax := trX(b.X-b.W/2), trX(b.X+b.W/2)
	ymin, ymax := trY(b.Y-b.H/2), trY(b.Y+b.H/2)
	corners := []vg.Point{
		{X: xmin, Y: ymin},
		{X: xmax, Y: ymin},
		{X: xmax, Y: ymax},
		{X: xmin, Y: ymax},
	}
	c.FillPolygon(b.Fill, corners)
	borderW := b.BorderW
	if borderW == 0 {
		borderW = vg.Points(1)
	}
	c.StrokeLines(draw.LineStyle{Color: b.Border, Width: borderW},
		append(corners, corners[0]))

	labelPt := vg.Point{X: trX(b.X), Y: trY(b.Y + b.H/4)}
	c.FillText(dp.textStyle(plt, color.White, vg.Points(9)), labelPt, b.Label)
	if b.Caption != "" {
		captionSty := dp.textStyle(plt, color.White, vg.Points(7))
		captionSty.Font.Style = font.StyleItalic
		captionPt := vg.Point{X: trX(b.X), Y: trY(b.Y - b.H/8)}
		c.FillText(captionSty, captionPt, b.Caption)
	}
}

func (dp *diagramPlotter) drawArrow(c draw.Canvas, trX, trY func(float64) vg.Length, a Arrow) {
	from := vg.Point{X: trX(a.X0), Y: trY(a.Y0)}
	to := vg.Point{X: trX(a.X1), Y: trY(a.Y1)}

	sty := draw.LineStyle{Color: a.Color, Width: vg.Points(1.5)}
	c.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)

	// arrowhead: small triangle aligned with the shaft
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	head := vg.Points(7)
	halfW := vg.Points(3)
	base := vg.Point{
		X: to.X - vg.Length(ux)*head,
		Y: to.Y - vg.Length(uy)*head,
	}
	left := vg.Point{X: base.X - vg.Length(uy)*halfW, Y: base.Y + vg.Length(ux)*halfW}
	right := vg.Point{X: base.X + vg.Length(uy)*halfW, Y: base.Y - vg.Length(ux)*halfW}
	c.FillPolygon(a.Color, []vg.Point{to, left, right})
}

func (dp *diagramPlotter) textStyle(plt *plot.Plot, col color.Color, size vg.Length) text.Style {
	sty := plt.Title.TextStyle
	sty.Color = col
	sty.Font.Size = size
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter
	return sty
}
