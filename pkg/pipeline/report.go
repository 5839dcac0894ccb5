package pipeline

import (
	"fmt"
	"io"

	pkgio "github.com/matzehuels/pageorder/pkg/io"
)

// WriteReport writes the summary as indented JSON.
func WriteReport(w io.Writer, s *Summary) error {
	return pkgio.WriteJSON(w, s)
}

// WriteSums writes the two middle sums, one per line: the ordered sum
// first, then the corrected sum.
func WriteSums(w io.Writer, s *Summary) error {
	_, err := fmt.Fprintf(w, "%d\n%d\n", s.OrderedMiddleSum, s.CorrectedMiddleSum)
	return err
}
