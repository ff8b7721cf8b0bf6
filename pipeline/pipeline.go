// Package pipeline runs the encode → ACC-transform sequence over a peptide
// list and collects the result table. Invalid peptides are skipped with a
// diagnostic; only configuration and I/O problems abort a run.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"pepfeat_go/acc"
	"pepfeat_go/descriptors"
	"pepfeat_go/encoder"
)

// ErrDimensionMismatch marks an encoded matrix whose column count disagrees
// with the run's descriptor dimensionality. Fatal: every row would be
// malformed the same way.
var ErrDimensionMismatch = errors.New("descriptor dimensionality mismatch")

// Record is one output row: the peptide, its feature vector, and the class
// label the caller supplied for the whole run.
type Record struct {
	Peptide  string
	Features []float64
	Class    string
}

// Table pairs the header with the rows. Header length always equals
// 2 + Dim²·MaxLag, and every record's feature count is Dim²·MaxLag.
type Table struct {
	Header  []string
	Records []Record
	Skipped int
}

// Options configures one pipeline invocation.
type Options struct {
	Table   *descriptors.Table
	MaxLag  int
	Class   string
	Workers int       // number of concurrent peptide workers; <=1 is sequential
	Log     io.Writer // diagnostics for skipped peptides; nil discards
}

func (o *Options) logf(format string, args ...interface{}) {
	if o.Log != nil {
		fmt.Fprintf(o.Log, format+"\n", args...)
	}
}

// Run processes peptides in input order. Each peptide is normalized, encoded
// and transformed; a peptide with an unknown residue or too few residues for
// the maximum lag is skipped, logged, and excluded from the table entirely.
// Row order always matches input order, including with Workers > 1.
func Run(peptides []string, opts Options) (*Table, error) {
	if opts.Table == nil {
		return nil, fmt.Errorf("%w: no descriptor table configured", ErrDimensionMismatch)
	}
	if opts.MaxLag < 1 {
		return nil, fmt.Errorf("%w: got %d", acc.ErrBadLag, opts.MaxLag)
	}

	table := &Table{Header: acc.BuildLabels(opts.Table.Dim, opts.MaxLag)}

	var results []result
	var err error
	if opts.Workers > 1 {
		results, err = runParallel(peptides, &opts)
	} else {
		results, err = runSequential(peptides, &opts)
	}
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		if res.skipErr != nil {
			opts.logf("Skipping peptide: %v", res.skipErr)
			table.Skipped++
			continue
		}
		table.Records = append(table.Records, res.record)
	}
	return table, nil
}

// result carries one peptide's outcome along with its input index so the
// parallel path can restore input order.
type result struct {
	index   int
	record  Record
	skipErr error
}

func runSequential(peptides []string, opts *Options) ([]result, error) {
	results := make([]result, 0, len(peptides))
	for i, peptide := range peptides {
		res, err := processOne(i, peptide, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func runParallel(peptides []string, opts *Options) ([]result, error) {
	type job struct {
		index   int
		peptide string
	}
	jobs := make(chan job, opts.Workers*2)
	results := make([]result, len(peptides))
	errs := make([]error, len(peptides))

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index], errs[j.index] = processOne(j.index, j.peptide, opts)
			}
		}()
	}
	for i, peptide := range peptides {
		jobs <- job{i, peptide}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// processOne runs one peptide through encode and transform. A recoverable
// problem (unknown residue, degenerate lag) lands in skipErr; anything else
// is returned as a fatal error.
func processOne(index int, peptide string, opts *Options) (result, error) {
	peptide = Normalize(peptide)

	encoded, err := encoder.Encode(peptide, opts.Table)
	if err != nil {
		if errors.Is(err, descriptors.ErrUnknownSymbol) || errors.Is(err, encoder.ErrEmptyPeptide) {
			return result{index: index, skipErr: err}, nil
		}
		return result{}, err
	}
	if _, cols := encoded.Dims(); cols != opts.Table.Dim {
		return result{}, fmt.Errorf("%w: encoded %d columns, table dimension %d",
			ErrDimensionMismatch, cols, opts.Table.Dim)
	}

	features, err := acc.Transform(encoded, opts.MaxLag)
	if err != nil {
		if errors.Is(err, acc.ErrDegenerateLag) {
			return result{index: index, skipErr: fmt.Errorf("%q: %w", peptide, err)}, nil
		}
		return result{}, err
	}
	return result{
		index:  index,
		record: Record{Peptide: peptide, Features: features, Class: opts.Class},
	}, nil
}

// Normalize strips all whitespace from a raw input line, including embedded
// spaces, and uppercases it. Runs before validation so stray formatting never
// spuriously rejects a record.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}
