// Common package contains input helpers shared by the pepfeat tools.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPeptides loads peptide strings from a file, one peptide per line.
// FASTA input is also accepted: header lines start the next record and
// sequence lines are concatenated. Gzipped files are detected by magic bytes
// and decompressed transparently. Whitespace is stripped from every line;
// blank lines are skipped. No residue validation happens here; unknown
// residues are the encoder's job.
func ReadPeptides(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		f.Seek(0, io.SeekStart)
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader for %s: %w", file, err)
		}
		defer gr.Close()
		reader = gr
	} else {
		f.Seek(0, io.SeekStart)
	}

	peptides, err := ParsePeptides(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return peptides, nil
}

// ParsePeptides scans peptide lines from r. The first '>' seen switches the
// scan into FASTA mode for the rest of the input.
func ParsePeptides(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var peptides []string
	var fastaBuffer strings.Builder
	inFasta := false

	flush := func() {
		if fastaBuffer.Len() > 0 {
			peptides = append(peptides, fastaBuffer.String())
			fastaBuffer.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), "")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			inFasta = true
			continue
		}
		if inFasta {
			fastaBuffer.WriteString(line)
		} else {
			peptides = append(peptides, line)
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return peptides, nil
}
