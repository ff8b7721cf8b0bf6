// Package encoder converts peptide strings into descriptor matrices.
package encoder

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"pepfeat_go/descriptors"
)

// ErrEmptyPeptide marks an empty string handed to Encode. Whitespace must be
// stripped by the input reader before this point.
var ErrEmptyPeptide = errors.New("empty peptide")

// Encode maps a peptide to an n×D matrix, one row of descriptor values per
// residue. A peptide containing any unrecognized residue is rejected whole;
// the error names the offending residue and its position.
func Encode(peptide string, table *descriptors.Table) (*mat.Dense, error) {
	if len(peptide) == 0 {
		return nil, ErrEmptyPeptide
	}
	encoded := mat.NewDense(len(peptide), table.Dim, nil)
	for i := 0; i < len(peptide); i++ {
		vec, err := table.Lookup(peptide[i])
		if err != nil {
			return nil, fmt.Errorf("residue %d of %q: %w", i+1, peptide, err)
		}
		encoded.SetRow(i, vec)
	}
	return encoded, nil
}
