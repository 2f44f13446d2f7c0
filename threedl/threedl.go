// Package threedl writes the .3dl segmented grid LUT format.
//
// A .3dl file opens with a segmentation header of sample positions over the
// format's conventional 10 bit range, followed by one integer RGB row per
// grid point with the blue axis varying fastest.
package threedl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/haldworks/clut"
)

// OutputDomain is the fixed 10 bit output range of the format, applied
// regardless of the source LUT's domain.
const OutputDomain = 1023

// Write serializes l as .3dl text. The grid resolution is preserved; sample
// values are rescaled to the 10 bit domain and rounded to whole numbers.
func Write(w io.Writer, l *clut.ColorLUT) error {
	intervals, err := clut.UniformIntervals(OutputDomain, l.SampleCount)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i, v := range intervals {
		if i > 0 {
			if _, err := bw.WriteString("   "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%d", v); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	values := l.Translated(
		clut.RedFastest(false),
		clut.OutputSamples(l.SampleCount),
		clut.OutputDomain(OutputDomain),
	)
	for v, ok := values.Next(); ok; v, ok = values.Next() {
		if _, err := fmt.Fprintf(bw, "%.0f %.0f %.0f\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read is the .3dl decode path. Not implemented.
func Read(r io.Reader) (*clut.ColorLUT, error) {
	return nil, fmt.Errorf("%w: reading .3dl files", clut.ErrUnsupported)
}
