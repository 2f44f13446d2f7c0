package clut

import "math"

// uniformTolerance is the maximum fraction by which a rounded interval may
// deviate from the ideal spacing before the distribution is rejected.
const uniformTolerance = 0.07

// UniformIntervals produces samples evenly spaced integer values from 0 to
// end, rounding each ideal position to the nearest integer. Combinations
// whose rounding error exceeds the tolerance in any single step fail with a
// *NonUniformError: not every end/samples pair survives quantisation (0-255
// in 16 samples rounds cleanly, many others do not).
//
// The .3dl writer uses this for its segmentation header.
func UniformIntervals(end float64, samples int) ([]int, error) {
	if samples < 2 {
		return nil, &SampleCountError{SampleCount: samples}
	}
	dist := end / float64(samples-1)
	values := make([]int, samples)
	for i := range values {
		values[i] = int(math.Round(dist * float64(i)))
	}
	for i := 1; i < samples; i++ {
		actual := float64(values[i] - values[i-1])
		if math.Abs(actual/dist-1) > uniformTolerance {
			return nil, &NonUniformError{End: end, Samples: samples, Index: i, Spacing: actual, Ideal: dist}
		}
	}
	return values, nil
}

// UniformIntervalsFloat is the unquantised counterpart of UniformIntervals.
// Exact spacing needs no uniformity check.
func UniformIntervalsFloat(end float64, samples int) ([]float64, error) {
	if samples < 2 {
		return nil, &SampleCountError{SampleCount: samples}
	}
	dist := end / float64(samples-1)
	values := make([]float64, samples)
	for i := range values {
		values[i] = dist * float64(i)
	}
	return values, nil
}
