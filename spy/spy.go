package spy

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Pattern is the structural view a spy plot needs: the shape and one
// (row, col) pair per stored entry. CooMatrix and CsrMatrix both
// provide it.
type Pattern interface {
	Rows() int
	Cols() int
	RowIndices() []int
	ColIndices() []int
}

// Options tunes the rendered plot.
type Options struct {
	// Title is drawn above the plot; empty for none.
	Title string
	// Width and Height of the canvas; zero values default to 4 inches.
	Width, Height vg.Length
}

// Save renders the sparsity pattern of p and writes it to path; the
// extension selects the format. The vertical axis is inverted so row 0
// appears at the top, matching matrix notation.
func Save(p Pattern, path string, opts Options) error {
	rows, cols := p.RowIndices(), p.ColIndices()

	pts := make(plotter.XYs, len(rows))
	for i := range rows {
		// Negate the row so the plot reads top-down.
		pts[i].X = float64(cols[i])
		pts[i].Y = float64(-rows[i])
	}

	pl := plot.New()
	pl.Title.Text = opts.Title
	pl.X.Label.Text = "column"
	pl.Y.Label.Text = "row"
	pl.X.Min, pl.X.Max = -0.5, float64(p.Cols())-0.5
	pl.Y.Min, pl.Y.Max = -(float64(p.Rows()) - 0.5), 0.5

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("spy: build scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	pl.Add(scatter)

	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 4 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}

	if err := pl.Save(w, h, path); err != nil {
		return fmt.Errorf("spy: save %s: %w", path, err)
	}

	return nil
}
