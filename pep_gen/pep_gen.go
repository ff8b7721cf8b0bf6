package pep_gen

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// 20 standard amino acids
var aminoAcids = []rune("ACDEFGHIKLMNPQRSTVWY")

// randPeptide returns a random peptide whose length is drawn uniformly from
// [minLen, maxLen].
func randPeptide(rng *rand.Rand, minLen, maxLen int) string {
	length := minLen + rng.Intn(maxLen-minLen+1)
	seq := make([]rune, length)
	for i := range seq {
		seq[i] = aminoAcids[rng.Intn(len(aminoAcids))]
	}
	return string(seq)
}

// Run executes the pep_gen command, generating a random peptide list for
// test inputs. One peptide per line, suitable as acc_profile input.
func Run(args []string) {

	fs := flag.NewFlagSet("pep_gen", flag.ExitOnError)

	count := fs.Int("count", 100, "Number of peptides to generate")
	minLen := fs.Int("min_len", 8, "Minimum peptide length")
	maxLen := fs.Int("max_len", 25, "Maximum peptide length")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	outFile := fs.String("out_file", "", "Output file (default: stdout)")

	fs.Parse(args)

	if *minLen < 1 || *maxLen < *minLen {
		fmt.Fprintln(os.Stderr, "Error: need 1 <= min_len <= max_len")
		os.Exit(1)
	}

	// Set RNG seed
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var builder strings.Builder
	for i := 0; i < *count; i++ {
		builder.WriteString(randPeptide(rng, *minLen, *maxLen))
		builder.WriteByte('\n')
	}

	if *outFile == "" {
		fmt.Print(builder.String())
		return
	}
	if err := os.WriteFile(*outFile, []byte(builder.String()), 0644); err != nil {
		fmt.Println("Error writing to file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d peptides to %s\n", *count, *outFile)
}
