package descriptors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"pepfeat_go/descriptors"
)

func TestPresets(t *testing.T) {
	cases := []struct {
		preset string
		dim    int
	}{
		{"E", 5},
		{"Z", 3},
	}
	for _, tc := range cases {
		table, err := descriptors.NewTable(tc.preset)
		require.NoError(t, err)
		require.Equal(t, tc.preset, table.Preset)
		require.Equal(t, tc.dim, table.Dim)

		symbols := table.Symbols()
		require.Len(t, symbols, 20)
		require.Equal(t, "ACDEFGHIKLMNPQRSTVWY", string(symbols))
		for _, s := range symbols {
			vec, err := table.Lookup(s)
			require.NoError(t, err)
			require.Len(t, vec, tc.dim)
		}
	}
}

func TestReferenceValues(t *testing.T) {
	e, err := descriptors.NewTable("E")
	require.NoError(t, err)
	ala, err := e.Lookup('A')
	require.NoError(t, err)
	require.Equal(t, []float64{0.008, 0.134, -0.475, -0.039, 0.181}, ala)
	trp, err := e.Lookup('W')
	require.NoError(t, err)
	require.Equal(t, []float64{-0.296, -0.186, 0.389, 0.083, 0.297}, trp)

	z, err := descriptors.NewTable("Z")
	require.NoError(t, err)
	gly, err := z.Lookup('G')
	require.NoError(t, err)
	require.Equal(t, []float64{2.23, -5.36, 0.30}, gly)
	lys, err := z.Lookup('K')
	require.NoError(t, err)
	require.Equal(t, []float64{2.84, 1.41, -3.14}, lys)
}

func TestUnknownSymbol(t *testing.T) {
	table, err := descriptors.NewTable("Z")
	require.NoError(t, err)
	for _, bad := range []byte{'X', 'Z', 'B', 'a', '*', ' '} {
		_, err := table.Lookup(bad)
		require.True(t, errors.Is(err, descriptors.ErrUnknownSymbol), "symbol %q", string(bad))
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := descriptors.NewTable("Q")
	require.True(t, errors.Is(err, descriptors.ErrUnknownPreset))
}
