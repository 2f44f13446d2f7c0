package clut

import (
	"math"

	"github.com/kovidgoyal/go-parallel"
)

// Identity returns the identity LUT for the given grid: every grid point's
// stored value is its own input coordinate. Integral kind grids round each
// coordinate to the nearest representable value.
func Identity(sampleCount int, inputDomain float64, kind Kind) (*ColorLUT, error) {
	l, err := New(make([]float64, 3*sampleCount*sampleCount*sampleCount), sampleCount, inputDomain, kind, true)
	if err != nil {
		return nil, err
	}
	dist := l.sampleDistance
	quantize := func(v float64) float64 { return v }
	if kind == Integral {
		quantize = math.Round
	}
	i := 0
	for b := range sampleCount {
		for g := range sampleCount {
			for r := range sampleCount {
				l.Data[i] = quantize(float64(r) * dist)
				l.Data[i+1] = quantize(float64(g) * dist)
				l.Data[i+2] = quantize(float64(b) * dist)
				i += 3
			}
		}
	}
	return l, nil
}

// FromFunc samples the transform f over the unit cube into a normalized
// Real LUT of the given resolution, red axis fastest. f receives components
// in [0, 1] and must be safe for concurrent calls: planes are sampled in
// parallel.
func FromFunc(sampleCount int, f func(r, g, b float64) Value3D) (*ColorLUT, error) {
	l, err := New(make([]float64, 3*sampleCount*sampleCount*sampleCount), sampleCount, 1.0, Real, true)
	if err != nil {
		return nil, err
	}
	dist := 1 / float64(sampleCount-1)
	fill := func(start, limit int) {
		for b := start; b < limit; b++ {
			i := flat_index(sampleCount, 0, 0, b)
			for g := range sampleCount {
				for r := range sampleCount {
					v := f(float64(r)*dist, float64(g)*dist, float64(b)*dist)
					l.Data[i], l.Data[i+1], l.Data[i+2] = v[0], v[1], v[2]
					i += 3
				}
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, fill, 0, sampleCount); err != nil {
		return nil, err
	}
	return l, nil
}

// Resample materializes a new LUT of a different grid resolution over the
// same domain, kind and axis order, resolving every new grid point by
// trilinear interpolation against the receiver. Grid points are independent
// and read-only against the source buffer, so blue axis planes are computed
// in parallel. Integral kind sources round the interpolated values so the
// result stays representable at the source bit depth.
//
// Resampling to the source's own resolution reproduces the sample buffer
// exactly.
func (l *ColorLUT) Resample(sampleCount int) (*ColorLUT, error) {
	out, err := New(make([]float64, 3*sampleCount*sampleCount*sampleCount), sampleCount, l.InputDomain, l.Kind, l.RedIncrementsFastest)
	if err != nil {
		return nil, err
	}
	if sampleCount == l.SampleCount {
		copy(out.Data, l.Data)
		return out, nil
	}
	stride := l.InputDomain / float64(sampleCount-1)
	quantize := func(v float64) float64 { return v }
	if l.Kind == Integral {
		quantize = math.Round
	}
	fill := func(start, limit int) {
		for b := start; b < limit; b++ {
			i := flat_index(sampleCount, 0, 0, b)
			for g := range sampleCount {
				for r := range sampleCount {
					// (r,g,b) walks the physical buffer; recover the logical
					// coordinate before interpolating in input space.
					rc, gc, bc := r, g, b
					if !l.RedIncrementsFastest {
						rc, bc = bc, rc
					}
					v := l.Interpolate(
						min(float64(rc)*stride, l.InputDomain),
						min(float64(gc)*stride, l.InputDomain),
						min(float64(bc)*stride, l.InputDomain),
					)
					out.Data[i] = quantize(v[0])
					out.Data[i+1] = quantize(v[1])
					out.Data[i+2] = quantize(v[2])
					i += 3
				}
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, fill, 0, sampleCount); err != nil {
		return nil, err
	}
	return out, nil
}
