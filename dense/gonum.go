package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ToGonum copies a Real64 matrix into a fresh *mat.Dense so results can
// flow into gonum's decompositions and solvers.
func ToGonum(m *Matrix[algebra.Real64]) *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}

	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum copies any gonum matrix into a Real64 dense matrix.
func FromGonum(src mat.Matrix) *Matrix[algebra.Real64] {
	rows, cols := src.Dims()
	out := &Matrix[algebra.Real64]{
		rows: rows,
		cols: cols,
		data: make([]algebra.Real64, rows*cols),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = algebra.Real64(src.At(i, j))
		}
	}

	return out
}
