// Package spy implements sparsity-pattern plotting for csr matrices.
package spy

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/csrband/csr"
)

// glyphRadius is the side of each nonzero marker. Small enough that banded
// patterns up to a few hundred rows stay readable at the default plot size.
const glyphRadius = vg.Length(2)

// Points returns one plotter.XY per stored entry: X is the column, Y the
// negated row, so the pattern reads top-down like the matrix itself.
// Iteration follows storage order, making the result deterministic.
// Returns csr.ErrNilMatrix for a nil matrix.
func Points(m *csr.Matrix) (plotter.XYs, error) {
	if m == nil {
		return nil, fmt.Errorf("spy: %w", csr.ErrNilMatrix)
	}
	pts := make(plotter.XYs, 0, m.NNZ())
	for r := 0; r < m.Rows(); r++ {
		cols, _, err := m.Row(r)
		if err != nil {
			return nil, fmt.Errorf("spy: %w", err)
		}
		for _, c := range cols {
			pts = append(pts, plotter.XY{X: float64(c), Y: -float64(r)})
		}
	}
	return pts, nil
}

// Pattern builds the spy plot for m: a scatter of square glyphs, titled with
// the matrix's shape, nonzero count and bandwidth. The caller saves it via
// (*plot.Plot).Save.
func Pattern(m *csr.Matrix) (*plot.Plot, error) {
	pts, err := Points(m)
	if err != nil {
		return nil, err
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("spy: scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.BoxGlyph{}
	sc.GlyphStyle.Radius = glyphRadius

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d×%d, nnz=%d, bandwidth=%d",
		m.Rows(), m.Cols(), m.NNZ(), m.Bandwidth())
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(sc)
	return p, nil
}
