package matrix

import (
	"gonum.org/v1/gonum/mat"

	"graphpart/internal/errs"
)

const eigenTol = 1e-9

// Eigen holds a symmetric eigendecomposition: ascending eigenvalues and
// their eigenvectors as columns of Vectors.
type Eigen struct {
	Values  []float64
	Vectors *mat.Dense
}

// EigenSym computes the symmetric eigendecomposition of m via
// gonum/mat.EigenSym. Fails with errs.Numerical if factorization doesn't
// converge or m isn't symmetric within tolerance.
func EigenSym(m *Dense) (*Eigen, error) {
	if !m.IsSymmetric(1e-6) {
		return nil, errs.New(errs.Numerical, "matrix is not symmetric within tolerance")
	}

	var eig mat.EigenSym
	ok := eig.Factorize(m.Sym(), true)
	if !ok {
		return nil, errs.New(errs.Numerical, "eigendecomposition failed to converge")
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	return &Eigen{Values: values, Vectors: &vectors}, nil
}

// Column returns the i-th eigenvector (column i of Vectors).
func (e *Eigen) Column(i int) []float64 {
	n, _ := e.Vectors.Dims()
	col := make([]float64, n)
	for r := 0; r < n; r++ {
		col[r] = e.Vectors.At(r, i)
	}
	return col
}

// SecondSmallestIndex returns the index of the second-smallest DISTINCT
// eigenvalue — the argmin over {i : λᵢ ≠ min(λ)} (spec.md §4.1). Ties on
// the minimum are skipped rather than returned. Fails with
// errs.Numerical if every eigenvalue is equal (no distinct second value
// exists), rather than reproducing the teacher's FindSecondSmallestIndex
// bug of returning an out-of-range index (spec.md §9 open question).
func (e *Eigen) SecondSmallestIndex() (int, error) {
	if len(e.Values) == 0 {
		return -1, errs.New(errs.Numerical, "no eigenvalues")
	}
	min := e.Values[0]
	for i := 1; i < len(e.Values); i++ {
		if e.Values[i] > min+eigenTol {
			return i, nil
		}
	}
	return -1, errs.New(errs.Numerical, "all eigenvalues equal; no second-smallest distinct value")
}

// ThirdSmallestIndex returns the index right after secondIdx in the
// ascending eigenvalue order — the eigenvector Geometric's 2-D embedding
// pairs with the Fiedler vector (spec.md §4.4). Eigenvalues are counted
// with multiplicity here, so when the Fiedler eigenvalue is repeated
// (e.g. a complete graph) the returned index carries that same value.
// Fails with errs.Numerical if secondIdx is the last index.
func (e *Eigen) ThirdSmallestIndex(secondIdx int) (int, error) {
	if secondIdx+1 < len(e.Values) {
		return secondIdx + 1, nil
	}
	return -1, errs.New(errs.Numerical, "no third eigenvalue found")
}

// Fiedler computes the Laplacian of m and returns its Fiedler vector —
// the eigenvector of the second-smallest distinct eigenvalue.
func Fiedler(m *Dense) ([]float64, error) {
	lap, err := Laplacian(m)
	if err != nil {
		return nil, err
	}
	eig, err := EigenSym(lap)
	if err != nil {
		return nil, err
	}
	idx, err := eig.SecondSmallestIndex()
	if err != nil {
		return nil, err
	}
	return eig.Column(idx), nil
}
