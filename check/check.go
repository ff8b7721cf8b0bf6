package check

import (
	"fmt"
	"os"

	"pepfeat_go/acc"
	"pepfeat_go/config"
	"pepfeat_go/descriptors"
	"pepfeat_go/encoder"
)

// Run performs a quick self-test: both descriptor presets resolve all 20
// residues at the expected dimensionality, and a fixed peptide produces an
// ACC vector of the expected length. Prints version info on success.
func Run(args []string) {
	for _, preset := range []string{"E", "Z"} {
		table, err := descriptors.NewTable(preset)
		if err != nil {
			fail(err)
		}
		symbols := table.Symbols()
		if len(symbols) != 20 {
			fail(fmt.Errorf("preset %s: %d residues, want 20", preset, len(symbols)))
		}
		for _, s := range symbols {
			vec, err := table.Lookup(s)
			if err != nil {
				fail(err)
			}
			if len(vec) != table.Dim {
				fail(fmt.Errorf("preset %s residue %c: %d values, want %d",
					preset, s, len(vec), table.Dim))
			}
		}

		encoded, err := encoder.Encode("ACDEFGHIK", table)
		if err != nil {
			fail(err)
		}
		features, err := acc.Transform(encoded, 3)
		if err != nil {
			fail(err)
		}
		want := table.Dim * table.Dim * 3
		if len(features) != want {
			fail(fmt.Errorf("preset %s: %d features, want %d", preset, len(features), want))
		}
		if len(acc.BuildLabels(table.Dim, 3)) != want+2 {
			fail(fmt.Errorf("preset %s: label count disagrees with feature count", preset))
		}
	}
	fmt.Printf("Successfully running pepfeat! (%s)\n", config.Main_version)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
	os.Exit(1)
}
