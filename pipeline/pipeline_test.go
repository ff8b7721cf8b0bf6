package pipeline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pepfeat_go/descriptors"
	"pepfeat_go/pipeline"
)

func zOptions(t *testing.T) pipeline.Options {
	t.Helper()
	table, err := descriptors.NewTable("Z")
	require.NoError(t, err)
	return pipeline.Options{Table: table, MaxLag: 2, Class: "1"}
}

func TestRunCollectsRecordsInInputOrder(t *testing.T) {
	peptides := []string{"ACDEFG", "KLMNPQ", "RSTVWY"}
	table, err := pipeline.Run(peptides, zOptions(t))
	require.NoError(t, err)

	require.Len(t, table.Records, 3)
	require.Zero(t, table.Skipped)
	for i, rec := range table.Records {
		require.Equal(t, peptides[i], rec.Peptide)
		require.Len(t, rec.Features, 3*3*2)
		require.Equal(t, "1", rec.Class)
	}
	require.Len(t, table.Header, 3*3*2+2)
}

func TestInvalidPeptideSkippedWithOneDiagnostic(t *testing.T) {
	var log bytes.Buffer
	opts := zOptions(t)
	opts.Log = &log

	table, err := pipeline.Run([]string{"ACDEFG", "AXZQAA", "RSTVWY"}, opts)
	require.NoError(t, err)

	require.Len(t, table.Records, 2)
	require.Equal(t, 1, table.Skipped)
	require.Equal(t, "ACDEFG", table.Records[0].Peptide)
	require.Equal(t, "RSTVWY", table.Records[1].Peptide)

	diagnostics := strings.Split(strings.TrimSpace(log.String()), "\n")
	require.Len(t, diagnostics, 1)
	require.Contains(t, diagnostics[0], "AXZQAA")
}

func TestDegenerateLagPeptideSkipped(t *testing.T) {
	var log bytes.Buffer
	opts := zOptions(t)
	opts.MaxLag = 5
	opts.Log = &log

	// Length 3 cannot support max lag 5 at any lag above 2.
	table, err := pipeline.Run([]string{"ACD", "ACDEFGHIK"}, opts)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	require.Equal(t, "ACDEFGHIK", table.Records[0].Peptide)
	require.Equal(t, 1, table.Skipped)
	require.Contains(t, log.String(), "ACD")
	require.Contains(t, log.String(), "max lag 5")
}

func TestNormalizeStripsWhitespace(t *testing.T) {
	require.Equal(t, "ACDEFG", pipeline.Normalize("  ac def g\t"))

	table, err := pipeline.Run([]string{" ACD EFG \n"}, zOptions(t))
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	require.Equal(t, "ACDEFG", table.Records[0].Peptide)
}

func TestDeterminism(t *testing.T) {
	peptides := []string{"ACDEFGHIK", "LMNPQRSTV", "WYACDEFGH"}
	first, err := pipeline.Run(peptides, zOptions(t))
	require.NoError(t, err)
	second, err := pipeline.Run(peptides, zOptions(t))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParallelMatchesSequential(t *testing.T) {
	peptides := []string{
		"ACDEFGHIK", "LMNPQRSTV", "WYACDEFGH", "AXBADPEP", "KLM",
		"MKWVTFISLLFLFSSAYS", "GIVEQCCTSICSLYQLENYCN",
	}
	sequential, err := pipeline.Run(peptides, zOptions(t))
	require.NoError(t, err)

	opts := zOptions(t)
	opts.Workers = 4
	parallel, err := pipeline.Run(peptides, opts)
	require.NoError(t, err)

	require.Equal(t, sequential.Records, parallel.Records)
	require.Equal(t, sequential.Skipped, parallel.Skipped)
}

func TestPermutationInvariance(t *testing.T) {
	peptides := []string{"ACDEFGHIK", "LMNPQRSTV", "WYACDEFGH"}
	forward, err := pipeline.Run(peptides, zOptions(t))
	require.NoError(t, err)

	reversed := []string{peptides[2], peptides[1], peptides[0]}
	backward, err := pipeline.Run(reversed, zOptions(t))
	require.NoError(t, err)

	require.Equal(t, forward.Records[0], backward.Records[2])
	require.Equal(t, forward.Records[1], backward.Records[1])
	require.Equal(t, forward.Records[2], backward.Records[0])
}

func TestWriteCSV(t *testing.T) {
	peptides := []string{"ACDEFG", "KLMNPQ"}
	table, err := pipeline.Run(peptides, zOptions(t))
	require.NoError(t, err)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	require.NoError(t, pipeline.WriteCSV(first, table))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, strings.Join(table.Header, ","), lines[0])
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, len(table.Header), "row %d width matches header", i+1)
		require.Equal(t, peptides[i], fields[0])
		require.Equal(t, "1", fields[len(fields)-1])
	}

	// Identical runs produce byte-identical files.
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, pipeline.WriteCSV(second, table))
	again, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestLagProfile(t *testing.T) {
	table, err := pipeline.Run([]string{"ACDEFGHIK"}, zOptions(t))
	require.NoError(t, err)

	profile := pipeline.LagProfile(table, 3, 2)
	require.Len(t, profile, 2)

	rec := table.Records[0]
	for lag := 0; lag < 2; lag++ {
		sum := 0.0
		for _, v := range rec.Features[lag*9 : (lag+1)*9] {
			if v < 0 {
				v = -v
			}
			sum += v
		}
		require.InDelta(t, sum/9, profile[lag], 1e-12)
	}
}
