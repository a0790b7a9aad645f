// Package spy renders the sparsity pattern of a csr.Matrix as a scatter
// plot — one square glyph per stored entry, rows growing downward — in the
// style of MATLAB's spy().
//
// The typical use is eyeballing what a reordering did to the band:
//
//	before, _ := spy.Pattern(m)
//	after, _ := spy.Pattern(reordered)
//	_ = before.Save(4*vg.Inch, 4*vg.Inch, "before.png")
//	_ = after.Save(4*vg.Inch, 4*vg.Inch, "after.png")
//
// Supporting/debug surface only: the plot carries no correctness property
// beyond marking exactly the stored entries.
package spy
