package clut

// TranslateOption configures a call to Translated.
type TranslateOption func(*translateConfig)

type translateConfig struct {
	redFastest   bool
	sampleCount  int
	outputDomain float64
}

// RedFastest sets the iteration order of the produced sequence: red axis
// varying fastest when true (the .cube convention), blue axis fastest when
// false (the .3dl convention). Defaults to red fastest.
func RedFastest(enabled bool) TranslateOption {
	return func(c *translateConfig) {
		c.redFastest = enabled
	}
}

// OutputSamples sets the grid resolution of the produced sequence; it must
// be at least 2. When it differs from the source's SampleCount, values are
// resolved by trilinear interpolation; when equal, by exact direct lookup.
// Defaults to the source's own resolution.
func OutputSamples(n int) TranslateOption {
	return func(c *translateConfig) {
		c.sampleCount = n
	}
}

// OutputDomain sets the maximum component value of the produced sequence.
// Values are scaled by outputDomain/InputDomain after lookup. Defaults to
// the source's own domain.
func OutputDomain(domain float64) TranslateOption {
	return func(c *translateConfig) {
		c.outputDomain = domain
	}
}

// ValueStream is a finite, single-pass sequence of output color values in a
// fixed grid order. It is not restartable: once Next reports exhaustion the
// stream is spent. Values are materialized one at a time.
type ValueStream struct {
	lut     *ColorLUT
	cfg     translateConfig
	scale   float64 // output domain scaling factor, 1 when domains match
	stride  float64 // input-space distance per output grid step, 0 for direct lookup
	r, g, b int     // next grid coordinate
	done    bool
}

// Translated produces the full output grid as a lazy value sequence, with
// axis order, grid size and domain conversions applied as requested. The
// element count is OutputSamples³ and the iteration order is the nested
// loop implied by the axis order, outermost axis varying slowest.
func (l *ColorLUT) Translated(opts ...TranslateOption) *ValueStream {
	cfg := translateConfig{
		redFastest:   true,
		sampleCount:  l.SampleCount,
		outputDomain: l.InputDomain,
	}
	for _, option := range opts {
		option(&cfg)
	}
	s := &ValueStream{lut: l, cfg: cfg, scale: cfg.outputDomain / l.InputDomain}
	if cfg.sampleCount != l.SampleCount {
		s.stride = l.InputDomain / float64(cfg.sampleCount-1)
	}
	return s
}

// Len reports the total number of values the stream yields over its
// lifetime, regardless of how many have been consumed.
func (s *ValueStream) Len() int {
	n := s.cfg.sampleCount
	return n * n * n
}

// Next yields the next value in sequence. The second return is false once
// the stream is exhausted.
func (s *ValueStream) Next() (Value3D, bool) {
	if s.done {
		return Value3D{}, false
	}
	var v Value3D
	if s.stride != 0 {
		// Clamp against the domain: float rounding can push the last grid
		// coordinate a hair past it, which would fault in the indexer.
		v = s.lut.Interpolate(
			min(float64(s.r)*s.stride, s.lut.InputDomain),
			min(float64(s.g)*s.stride, s.lut.InputDomain),
			min(float64(s.b)*s.stride, s.lut.InputDomain),
		)
	} else {
		v = s.lut.At(s.r, s.g, s.b)
	}
	if s.scale != 1 {
		v = v.Scale(s.scale)
	}
	s.advance()
	return v, true
}

func (s *ValueStream) advance() {
	n := s.cfg.sampleCount
	if s.cfg.redFastest {
		if s.r++; s.r < n {
			return
		}
		s.r = 0
		if s.g++; s.g < n {
			return
		}
		s.g = 0
		if s.b++; s.b < n {
			return
		}
	} else {
		if s.b++; s.b < n {
			return
		}
		s.b = 0
		if s.g++; s.g < n {
			return
		}
		s.g = 0
		if s.r++; s.r < n {
			return
		}
	}
	s.done = true
}
