// Package render turns figure draw specifications into paired PDF and PNG
// artifacts. It is the only package that touches gonum/plot's drawing
// surface; builders upstream describe figures as data.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"par2fig/internal/logging"
)

// DefaultDPI matches the publication requirement for raster output.
const DefaultDPI = 300

// Panel is one subplot of a figure.
type Panel interface {
	// Plot builds the gonum plot for this panel.
	Plot() (*plot.Plot, error)
}

// Figure is a complete draw specification: a named grid of panels with an
// overall canvas size. Panels are laid out row-major.
type Figure struct {
	Name   string // output basename, no extension
	Rows   int    // 0 means a single row
	Cols   int    // 0 means one column per panel
	Width  vg.Length
	Height vg.Length
	Panels []Panel
}

// Encoder writes figures as <name>.pdf and <name>.png into OutDir,
// creating the directory on first use.
type Encoder struct {
	OutDir string
	DPI    int
}

// NewEncoder returns an encoder targeting outDir at the default DPI.
func NewEncoder(outDir string) *Encoder {
	return &Encoder{OutDir: outDir, DPI: DefaultDPI}
}

// Save renders fig once per format and writes both artifacts. Nothing is
// written if any panel fails to build.
func (e *Encoder) Save(fig *Figure) error {
	if len(fig.Panels) == 0 {
		return fmt.Errorf("render %s: figure has no panels", fig.Name)
	}
	plots := make([]*plot.Plot, len(fig.Panels))
	for i, panel := range fig.Panels {
		p, err := panel.Plot()
		if err != nil {
			return fmt.Errorf("render %s: panel %d: %w", fig.Name, i, err)
		}
		plots[i] = p
	}

	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return fmt.Errorf("render %s: %w", fig.Name, err)
	}

	log := logging.New("render")

	pdfPath := filepath.Join(e.OutDir, fig.Name+".pdf")
	pdf := vgpdf.New(fig.Width, fig.Height)
	e.drawTiled(draw.New(pdf), fig, plots)
	if err := writeCanvas(pdfPath, pdf.WriteTo); err != nil {
		return err
	}

	dpi := e.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	pngPath := filepath.Join(e.OutDir, fig.Name+".png")
	img := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(dpi))
	e.drawTiled(draw.New(img), fig, plots)
	png := vgimg.PngCanvas{Canvas: img}
	if err := writeCanvas(pngPath, png.WriteTo); err != nil {
		return err
	}

	log.Debug("figure written", "name", fig.Name, "pdf", pdfPath, "png", pngPath)
	return nil
}

func (e *Encoder) drawTiled(dc draw.Canvas, fig *Figure, plots []*plot.Plot) {
	rows, cols := fig.Rows, fig.Cols
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = (len(plots) + rows - 1) / rows
	}
	if rows == 1 && cols == 1 {
		plots[0].Draw(dc)
		return
	}

	grid := make([][]*plot.Plot, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			if i := r*cols + c; i < len(plots) {
				grid[r][c] = plots[i]
			}
		}
	}

	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}
}

func writeCanvas(path string, writeTo func(w io.Writer) (int64, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := writeTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
