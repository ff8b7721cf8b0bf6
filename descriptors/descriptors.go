// Package descriptors holds the amino-acid descriptor tables used to turn
// peptide residues into numeric vectors. Two presets are shipped: the five
// E-descriptors of Venkatarajan & Braun (2001) and the three z-scales of
// Hellberg et al. (1987). A table is pure data, built once per run.
package descriptors

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol marks a residue outside the 20-letter amino acid alphabet.
var ErrUnknownSymbol = errors.New("unknown amino acid symbol")

// ErrUnknownPreset marks a preset name other than "E" or "Z".
var ErrUnknownPreset = errors.New("unknown descriptor preset")

// Table maps one-letter amino acid codes to descriptor vectors of a fixed
// dimensionality. All 20 standard residues are present; no other key is.
type Table struct {
	Preset string
	Dim    int
	values map[byte][]float64
}

// E-descriptors: five principal components of 237 physicochemical properties
// (Venkatarajan & Braun 2001).
var eDescriptors = map[byte][]float64{
	'A': {0.008, 0.134, -0.475, -0.039, 0.181},
	'R': {0.171, -0.361, 0.107, -0.258, -0.364},
	'N': {0.255, 0.038, 0.117, 0.118, -0.055},
	'D': {0.303, -0.057, -0.014, 0.225, 0.156},
	'C': {-0.132, 0.174, 0.070, 0.565, -0.374},
	'Q': {0.149, -0.184, -0.030, 0.035, -0.112},
	'E': {0.221, -0.280, -0.315, 0.157, 0.303},
	'G': {0.218, 0.562, -0.024, 0.018, 0.106},
	'H': {0.023, -0.177, 0.041, 0.280, -0.021},
	'I': {-0.353, 0.071, -0.088, -0.195, -0.107},
	'L': {-0.267, 0.018, -0.265, -0.274, 0.206},
	'K': {0.243, -0.339, -0.044, -0.325, -0.027},
	'M': {-0.239, -0.141, -0.155, 0.321, 0.077},
	'F': {-0.329, -0.023, 0.072, -0.002, 0.208},
	'P': {0.173, 0.286, 0.407, -0.215, 0.384},
	'S': {0.199, 0.238, -0.015, -0.068, -0.196},
	'T': {0.068, 0.147, -0.015, -0.132, -0.274},
	'W': {-0.296, -0.186, 0.389, 0.083, 0.297},
	'Y': {-0.141, -0.057, 0.425, -0.096, -0.091},
	'V': {-0.274, 0.136, -0.187, -0.196, -0.299},
}

// z-scales: three PCA scores of physicochemical properties
// (Hellberg et al. 1987).
var zDescriptors = map[byte][]float64{
	'A': {0.07, -1.73, 0.09},
	'R': {2.88, 2.52, -3.44},
	'N': {3.22, 1.45, 0.84},
	'D': {3.64, 1.13, 2.36},
	'C': {0.71, -0.97, 4.13},
	'Q': {2.18, 0.53, -1.14},
	'E': {3.08, 0.39, -0.07},
	'G': {2.23, -5.36, 0.30},
	'H': {2.41, 1.74, 1.11},
	'I': {-4.44, -1.68, -1.03},
	'L': {-4.19, -1.03, -0.98},
	'K': {2.84, 1.41, -3.14},
	'M': {-2.49, -0.27, -0.41},
	'F': {-4.92, 1.30, 0.45},
	'P': {-1.22, 0.88, 2.23},
	'S': {1.96, -1.63, 0.57},
	'T': {0.92, -2.09, -1.40},
	'W': {-4.75, 3.65, 0.85},
	'Y': {-1.39, 2.32, 0.01},
	'V': {-2.69, -2.53, -1.29},
}

// NewTable builds the descriptor table for a preset: "E" (Dim 5) or "Z" (Dim 3).
func NewTable(preset string) (*Table, error) {
	switch preset {
	case "E":
		return &Table{Preset: "E", Dim: 5, values: eDescriptors}, nil
	case "Z":
		return &Table{Preset: "Z", Dim: 3, values: zDescriptors}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected E or Z)", ErrUnknownPreset, preset)
	}
}

// Lookup returns the descriptor vector for a one-letter amino acid code.
// The returned slice is shared table data and must not be modified.
func (t *Table) Lookup(symbol byte) ([]float64, error) {
	vec, ok := t.values[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, string(symbol))
	}
	return vec, nil
}

// Symbols returns the 20 residue codes in alphabetical order.
func (t *Table) Symbols() []byte {
	symbols := make([]byte, 0, len(t.values))
	for s := 'A'; s <= 'Z'; s++ {
		if _, ok := t.values[byte(s)]; ok {
			symbols = append(symbols, byte(s))
		}
	}
	return symbols
}
