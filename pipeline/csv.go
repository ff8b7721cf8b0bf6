package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the table to filename: header row first, then one row per
// record. Floats use Go's shortest round-trip representation so identical
// runs produce byte-identical files.
func WriteCSV(filename string, table *Table) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", filename, err)
	}
	row := make([]string, len(table.Header))
	for _, rec := range table.Records {
		row = row[:0]
		row = append(row, rec.Peptide)
		for _, v := range rec.Features {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, rec.Class)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record to %s: %w", filename, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
