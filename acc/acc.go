// Package acc implements the auto- and cross-covariance (ACC) transform.
// It converts an n×D descriptor matrix into a fixed-length vector of D²·L
// values, so peptides of any length share one feature space.
package acc

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateLag marks a peptide too short for the requested maximum lag:
// the covariance sum at lag L needs at least L+1 residues. Short peptides are
// rejected whole rather than zero-filled, so no NaN or Inf ever reaches the
// output table.
var ErrDegenerateLag = errors.New("peptide shorter than maximum lag requires")

// ErrBadLag marks a non-positive maximum lag.
var ErrBadLag = errors.New("maximum lag must be positive")

// Transform computes the ACC feature vector of an encoded peptide.
//
// For each lag l = 1..maxLag the two windows of the matrix, rows [0, n-l)
// and rows [l, n), are multiplied as transpose(head) × tail in a single
// matrix product; entry (j,k) of the D×D result over (n-l) is the mean
// cross-product of descriptor j with descriptor k at offset l. Each D×D
// block is flattened row-major (j outer, k inner) and blocks are appended
// in increasing lag order, matching BuildLabels exactly.
func Transform(encoded *mat.Dense, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLag, maxLag)
	}
	n, dim := encoded.Dims()
	if n <= maxLag {
		return nil, fmt.Errorf("%w: length %d, max lag %d", ErrDegenerateLag, n, maxLag)
	}

	features := make([]float64, 0, dim*dim*maxLag)
	var block mat.Dense
	for lag := 1; lag <= maxLag; lag++ {
		head := encoded.Slice(0, n-lag, 0, dim)
		tail := encoded.Slice(lag, n, 0, dim)
		block.Mul(head.T(), tail)
		block.Scale(1/float64(n-lag), &block)
		for j := 0; j < dim; j++ {
			features = append(features, block.RawRowView(j)...)
		}
		block.Reset()
	}
	return features, nil
}

// MinLength returns the shortest peptide length usable at a given maximum lag.
func MinLength(maxLag int) int {
	return maxLag + 1
}
