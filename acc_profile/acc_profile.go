package acc_profile

import (
	"flag"
	"fmt"
	"os"

	"pepfeat_go/config"
	"pepfeat_go/descriptors"
	"pepfeat_go/pipeline"
	common "pepfeat_go/utils"
)

// Run executes the acc_profile command. It reads a peptide list, encodes
// each peptide with the chosen descriptor preset, applies the ACC transform
// up to the maximum lag, and writes the feature table as CSV. Peptides with
// unknown residues or too few residues for the maximum lag are reported to
// stderr and skipped.
func Run(args []string) {

	fs := flag.NewFlagSet("acc_profile", flag.ExitOnError) // Isolated flag set for the "acc_profile" subcommand

	preset := fs.String("preset", "E", "Descriptor preset: E (5 descriptors) or Z (3 descriptors)")
	maxLag := fs.Int("max_lag", 5, "Maximum lag for the ACC transform")
	class := fs.String("class", "0", "Class label appended to every record")
	workers := fs.Int("workers", 1, "Concurrent peptide workers (1 = sequential)")
	inFile := fs.String("in_file", "", "Peptide list input (one per line, or FASTA; .gz accepted)")
	outFile := fs.String("out_file", "", "CSV output file")
	plotFile := fs.String("plot", "", "Optional SVG output for the per-lag profile")
	summary := fs.Bool("summary", false, "Print per-column mean/stddev to stdout")

	fs.Parse(args)

	settings := config.Settings{
		Preset:  *preset,
		MaxLag:  *maxLag,
		Class:   *class,
		Workers: *workers,
		InFile:  *inFile,
		OutFile: *outFile,
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	table, err := descriptors.NewTable(settings.Preset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	peptides, err := common.ReadPeptides(settings.InFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	results, err := pipeline.Run(peptides, pipeline.Options{
		Table:   table,
		MaxLag:  settings.MaxLag,
		Class:   settings.Class,
		Workers: settings.Workers,
		Log:     os.Stderr,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := pipeline.WriteCSV(settings.OutFile, results); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d records to %s (%d skipped)\n",
		len(results.Records), settings.OutFile, results.Skipped)

	if *summary {
		pipeline.WriteSummary(os.Stdout, results)
	}

	if *plotFile != "" {
		profile := pipeline.LagProfile(results, table.Dim, settings.MaxLag)
		if err := pipeline.SaveLagProfilePlot(*plotFile, profile); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote lag profile plot to %s\n", *plotFile)
	}
}
