package matrix

// Laplacian builds L = D - M where D is diagonal with D[i,i] = Σⱼ M[i,j].
// M is the unweighted adjacency matrix for the spectral pipeline, or the
// weighted matrix for inertial/geometric (spec.md §3).
func Laplacian(m *Dense) (*Dense, error) {
	d := Diag(m.RowSums())
	return d.Sub(m)
}
