package pipeline

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat"
)

// LagProfile returns the mean absolute ACC value per lag, averaged over all
// records and all dim² descriptor pairs. Lag l's value sits at index l-1.
func LagProfile(table *Table, dim, maxLag int) []float64 {
	block := dim * dim
	profile := make([]float64, maxLag)
	if len(table.Records) == 0 {
		return profile
	}
	for lag := 0; lag < maxLag; lag++ {
		sum := 0.0
		for _, rec := range table.Records {
			for _, v := range rec.Features[lag*block : (lag+1)*block] {
				sum += math.Abs(v)
			}
		}
		profile[lag] = sum / float64(block*len(table.Records))
	}
	return profile
}

// WriteSummary prints per-column mean and standard deviation of the feature
// columns, one line per column.
func WriteSummary(w io.Writer, table *Table) {
	fmt.Fprintf(w, "Records: %d (skipped: %d)\n", len(table.Records), table.Skipped)
	if len(table.Records) == 0 {
		return
	}
	fmt.Fprintln(w, "Column\tMean\tStdDev")
	column := make([]float64, len(table.Records))
	for c := 0; c < len(table.Records[0].Features); c++ {
		for i, rec := range table.Records {
			column[i] = rec.Features[c]
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\n",
			table.Header[c+1], stat.Mean(column, nil), stat.StdDev(column, nil))
	}
}
