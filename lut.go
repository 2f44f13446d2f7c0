package clut

import (
	"fmt"
	"math"
	"math/big"
)

var _ = fmt.Print

// Kind tags the numeric kind of a sample buffer. A LUT decoded from an 8 or
// 16 bit image is Integral with a whole number domain (255 or 65535); a
// normalized LUT is Real with a domain of 1.0. The two are never mixed
// within one buffer.
type Kind int

const (
	Integral Kind = iota
	Real
)

func (k Kind) String() string {
	switch k {
	case Integral:
		return "integral"
	case Real:
		return "real"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ColorLUT is a sampled cubic color grid. Data holds SampleCount³ grid
// points of 3 interleaved samples each, in canonical order
// offset = 3*(r + N*g + N²*b). A ColorLUT is read-only after construction.
type ColorLUT struct {
	// Data is the flat sample buffer. It must not be mutated.
	Data []float64
	// SampleCount is the grid resolution per axis, at least 2.
	SampleCount int
	// InputDomain is the maximum representable input component value.
	InputDomain float64
	// Kind is the numeric kind of Data, matching InputDomain.
	Kind Kind
	// RedIncrementsFastest records which axis varies fastest as the flat
	// offset increases: red when true, blue when false.
	RedIncrementsFastest bool

	sampleDistance float64
}

// New validates the grid parameters and wraps data in a ColorLUT. The buffer
// is owned by the returned LUT and must not be modified by the caller.
func New(data []float64, sampleCount int, inputDomain float64, kind Kind, redIncrementsFastest bool) (*ColorLUT, error) {
	if sampleCount < 2 {
		return nil, &SampleCountError{SampleCount: sampleCount}
	}
	switch kind {
	case Integral:
		if inputDomain < 1 || inputDomain != math.Trunc(inputDomain) {
			return nil, &DomainKindError{Kind: kind, Domain: inputDomain}
		}
	case Real:
		if !(inputDomain > 0) || math.IsInf(inputDomain, 0) {
			return nil, &DomainKindError{Kind: kind, Domain: inputDomain}
		}
	default:
		return nil, &DomainKindError{Kind: kind, Domain: inputDomain}
	}
	if want := 3 * sampleCount * sampleCount * sampleCount; len(data) != want {
		return nil, &BufferSizeError{Got: len(data), Want: want}
	}
	return &ColorLUT{
		Data:                 data,
		SampleCount:          sampleCount,
		InputDomain:          inputDomain,
		Kind:                 kind,
		RedIncrementsFastest: redIncrementsFastest,
		sampleDistance:       inputDomain / float64(sampleCount-1),
	}, nil
}

// SampleDistance is the input-space spacing between adjacent grid samples,
// InputDomain / (SampleCount - 1).
func (l *ColorLUT) SampleDistance() float64 { return l.sampleDistance }

func (l *ColorLUT) String() string {
	return fmt.Sprintf("ColorLUT{ grid:%[1]dx%[1]dx%[1]d domain:%[2]g kind:%[3]s red_fastest:%[4]v }",
		l.SampleCount, l.InputDomain, l.Kind, l.RedIncrementsFastest)
}

// flat_index maps grid coordinates to the offset of the first of the three
// samples at that grid point in canonical storage order.
func flat_index(size, r, g, b int) int {
	return 3 * (r + size*g + size*size*b)
}

// At returns the stored color value at grid coordinates (r, g, b), each in
// [0, SampleCount). When RedIncrementsFastest is false the red and blue
// coordinates are swapped before indexing, so the caller always addresses
// the logical axes regardless of the physical buffer layout. Out of range
// coordinates panic with *IndexError; callers are responsible for clamping.
func (l *ColorLUT) At(r, g, b int) Value3D {
	if !l.RedIncrementsFastest {
		r, b = b, r
	}
	n := l.SampleCount
	if r < 0 || r >= n || g < 0 || g >= n || b < 0 || b >= n {
		panic(&IndexError{R: r, G: g, B: b, SampleCount: n})
	}
	i := flat_index(n, r, g, b)
	return Value3D{l.Data[i], l.Data[i+1], l.Data[i+2]}
}

// axis_position resolves one input component to its lower grid index and the
// fractional distance toward the upper neighbor. At the domain's upper edge
// the index is clamped to SampleCount-2 with a fraction of 1 so the upper
// neighbor stays inside the grid; the lower edge needs no special case since
// index 0 is already valid.
//
// The division is carried out in rational arithmetic. Naive floating
// remainders drift when the sample distance is not exactly representable
// (e.g. 1023/31), and the drift accumulates into a systematic bias over many
// lookups.
func (l *ColorLUT) axis_position(v float64) (idx0 int, d float64) {
	if v == l.InputDomain {
		return l.SampleCount - 2, 1
	}
	num := new(big.Rat).SetFloat64(v)
	den := new(big.Rat).Mul(
		new(big.Rat).SetFloat64(l.InputDomain),
		big.NewRat(1, int64(l.SampleCount-1)),
	)
	q := num.Quo(num, den)
	floor := new(big.Int).Quo(q.Num(), q.Denom())
	idx0 = int(floor.Int64())
	frac := q.Sub(q, new(big.Rat).SetInt(floor))
	d, _ = frac.Float64()
	return idx0, d
}

func lerp(a, b Value3D, d float64) Value3D {
	return a.Scale(1 - d).Add(b.Scale(d))
}

// Interpolate returns the trilinearly interpolated color value for an input
// triple with each component in [0, InputDomain]. Inputs outside the domain
// violate an internal precondition and panic via At.
func (l *ColorLUT) Interpolate(r, g, b float64) Value3D {
	r0, rd := l.axis_position(r)
	g0, gd := l.axis_position(g)
	b0, bd := l.axis_position(b)
	r1, g1, b1 := r0+1, g0+1, b0+1

	c000 := l.At(r0, g0, b0)
	c001 := l.At(r0, g0, b1)
	c010 := l.At(r0, g1, b0)
	c011 := l.At(r0, g1, b1)
	c100 := l.At(r1, g0, b0)
	c101 := l.At(r1, g0, b1)
	c110 := l.At(r1, g1, b0)
	c111 := l.At(r1, g1, b1)

	// Reduce along red, then green, then blue. The reduction order does not
	// change the result but is fixed for reproducibility.
	c00 := lerp(c000, c100, rd)
	c01 := lerp(c001, c101, rd)
	c10 := lerp(c010, c110, rd)
	c11 := lerp(c011, c111, rd)

	c0 := lerp(c00, c10, gd)
	c1 := lerp(c01, c11, gd)

	return lerp(c0, c1, bd)
}
