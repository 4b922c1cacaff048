// Package spy renders sparsity-pattern plots ("spy plots") of sparse
// matrices.
//
// What: one dot per stored entry, rows growing downward as in matrix
// notation, written to any image format gonum/plot supports (png, svg,
// pdf, ...).
//
// Why: the storage pattern is the first thing to inspect when a sparse
// computation misbehaves — a band that should be diagonal, a dense row
// that should not exist — and a picture answers faster than a dump of
// index arrays.
//
// Both CooMatrix and CsrMatrix satisfy Pattern directly.
package spy
