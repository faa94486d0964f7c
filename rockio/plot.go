package rockio

import (
	"bufio"
	"fmt"
	"io"
)

// WritePlotFile emits sizes/counts as whitespace-separated ASCII (box
// size, count) pairs, one per line, matching the `{pore,surf,rock}_
// frac_plot.dat` format of spec §6. sizes must be strictly increasing
// and the same length as counts.
func WritePlotFile(w io.Writer, sizes []int, counts []int64) error {
	if len(sizes) != len(counts) {
		return ErrMismatchedLengths
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			return ErrNonMonotonicSizes
		}
	}

	bw := bufio.NewWriter(w)
	for i, size := range sizes {
		if _, err := fmt.Fprintf(bw, "%d %d\n", size, counts[i]); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}
