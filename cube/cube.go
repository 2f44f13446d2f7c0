// Package cube writes the Adobe/Resolve .cube LUT format: a LUT_3D_SIZE
// header followed by one normalized float RGB row per grid point with the
// red axis varying fastest.
package cube

import (
	"bufio"
	"fmt"
	"io"

	"github.com/haldworks/clut"
)

// OutputDomain is the fixed normalized output range of the format.
const OutputDomain = 1.0

// Write serializes l as .cube text. The grid resolution is preserved;
// sample values are rescaled to [0, 1] and printed at 7 significant digits.
func Write(w io.Writer, l *clut.ColorLUT) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", l.SampleCount); err != nil {
		return err
	}
	values := l.Translated(
		clut.RedFastest(true),
		clut.OutputSamples(l.SampleCount),
		clut.OutputDomain(OutputDomain),
	)
	for v, ok := values.Next(); ok; v, ok = values.Next() {
		if _, err := fmt.Fprintf(bw, "%.7g %.7g %.7g\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read is the .cube decode path. Not implemented.
func Read(r io.Reader) (*clut.ColorLUT, error) {
	return nil, fmt.Errorf("%w: reading .cube files", clut.ErrUnsupported)
}
