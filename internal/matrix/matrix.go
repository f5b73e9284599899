// Package matrix provides the dense linear-algebra kernel the
// spectral/inertial/geometric algorithms share: construction, basic
// arithmetic, and symmetric eigendecomposition on top of
// gonum.org/v1/gonum/mat.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"graphpart/internal/errs"
)

// Dense is an n×n matrix over reals, backed by gonum's mat.Dense.
type Dense struct {
	n    int
	data *mat.Dense
}

// New builds a Dense matrix from a 2-D array. Every row must have the
// same length as the number of rows (square matrices only).
func New(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return &Dense{n: 0, data: mat.NewDense(0, 0, nil)}, nil
	}
	flat := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errs.New(errs.InvalidInput, fmt.Sprintf("row %d has %d columns, want %d (matrix must be square)", i, len(row), n))
		}
		flat = append(flat, row...)
	}
	return &Dense{n: n, data: mat.NewDense(n, n, flat)}, nil
}

// NewZero builds an n×n matrix of zeros.
func NewZero(n int) *Dense {
	return &Dense{n: n, data: mat.NewDense(n, n, nil)}
}

// N returns the matrix dimension.
func (m *Dense) N() int { return m.n }

// At returns M[i,j].
func (m *Dense) At(i, j int) float64 { return m.data.At(i, j) }

// Set sets M[i,j] = v.
func (m *Dense) Set(i, j int, v float64) { m.data.Set(i, j, v) }

// Rows returns the matrix as a fresh [][]float64 copy.
func (m *Dense) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]float64, m.n)
		for j := 0; j < m.n; j++ {
			rows[i][j] = m.data.At(i, j)
		}
	}
	return rows
}

// RowSum returns Σⱼ M[i,j] for row i.
func (m *Dense) RowSum(i int) float64 {
	sum := 0.0
	for j := 0; j < m.n; j++ {
		sum += m.data.At(i, j)
	}
	return sum
}

// RowSums returns the vector of row sums, i.e. the (unweighted or
// weighted) degree of every vertex.
func (m *Dense) RowSums() []float64 {
	sums := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		sums[i] = m.RowSum(i)
	}
	return sums
}

// Diag builds the diagonal matrix D with D[i,i] = values[i].
func Diag(values []float64) *Dense {
	n := len(values)
	d := NewZero(n)
	for i, v := range values {
		d.Set(i, i, v)
	}
	return d
}

// Sub returns m - other, element-wise. Both must share dimension n.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if m.n != other.n {
		return nil, errs.New(errs.InvalidInput, fmt.Sprintf("dimension mismatch: %d vs %d", m.n, other.n))
	}
	out := NewZero(m.n)
	out.data.Sub(m.data, other.data)
	return out, nil
}

// IsSymmetric reports whether M[i,j] == M[j,i] within tol for every i,j.
func (m *Dense) IsSymmetric(tol float64) bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if diff := m.data.At(i, j) - m.data.At(j, i); diff > tol || diff < -tol {
				return false
			}
		}
	}
	return true
}

// Sym converts m to a gonum SymDense, assuming (without re-checking)
// that the matrix is already symmetric.
func (m *Dense) Sym() *mat.SymDense {
	sym := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			sym.SetSym(i, j, m.data.At(i, j))
		}
	}
	return sym
}

