package acc

import "fmt"

// BuildLabels generates the CSV header matching Transform's output layout:
// "Peptide", then ACC<j><k><lag> for lag = 1..maxLag with j outer and k
// inner over 1..dim, then "Class". Length is always dim²·maxLag + 2.
// Pure function of (dim, maxLag); build it once per run.
func BuildLabels(dim, maxLag int) []string {
	labels := make([]string, 0, dim*dim*maxLag+2)
	labels = append(labels, "Peptide")
	for lag := 1; lag <= maxLag; lag++ {
		for j := 1; j <= dim; j++ {
			for k := 1; k <= dim; k++ {
				labels = append(labels, fmt.Sprintf("ACC%d%d%d", j, k, lag))
			}
		}
	}
	return append(labels, "Class")
}
