package clut

import (
	"errors"
	"fmt"
)

// The three failure categories. Every error returned by this module and its
// format subpackages unwraps to exactly one of them, so callers can classify
// failures with errors.Is without matching message text.
var (
	// ErrStructural marks input that is well formed as a file but cannot
	// represent a color LUT (palette, alpha, bad dimensions, ...).
	ErrStructural = errors.New("structurally unsuitable LUT source")

	// ErrValidation marks malformed construction parameters or data that
	// fails an internal consistency check.
	ErrValidation = errors.New("LUT validation failed")

	// ErrUnsupported marks a conversion path that is recognised but not
	// implemented.
	ErrUnsupported = errors.New("unsupported operation")
)

// RejectionError reports a structural feature of the source that rules it
// out as a Hald CLUT, such as a palette or an alpha channel.
type RejectionError struct {
	Feature string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: source has %s", ErrStructural, e.Feature)
}

func (e *RejectionError) Unwrap() error { return ErrStructural }

// BitDepthError reports a sample bit depth other than 8 or 16.
type BitDepthError struct {
	Bits int
}

func (e *BitDepthError) Error() string {
	return fmt.Sprintf("%s: unsupported bit depth %d", ErrStructural, e.Bits)
}

func (e *BitDepthError) Unwrap() error { return ErrStructural }

// DimensionError reports image dimensions that cannot hold a cubic grid.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %dx%d are not Hald CLUT dimensions", ErrStructural, e.Width, e.Height)
}

func (e *DimensionError) Unwrap() error { return ErrStructural }

// BufferSizeError reports a sample buffer whose length does not match the
// declared grid.
type BufferSizeError struct {
	Got, Want int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("%s: buffer holds %d samples, grid needs %d", ErrValidation, e.Got, e.Want)
}

func (e *BufferSizeError) Unwrap() error { return ErrValidation }

// DomainKindError reports an input domain that is incompatible with the
// declared numeric kind of the sample buffer.
type DomainKindError struct {
	Kind   Kind
	Domain float64
}

func (e *DomainKindError) Error() string {
	return fmt.Sprintf("%s: domain %g is not valid for %s data", ErrValidation, e.Domain, e.Kind)
}

func (e *DomainKindError) Unwrap() error { return ErrValidation }

// SampleCountError reports a per-axis grid resolution below the minimum of 2.
type SampleCountError struct {
	SampleCount int
}

func (e *SampleCountError) Error() string {
	return fmt.Sprintf("%s: sample count %d, need at least 2", ErrValidation, e.SampleCount)
}

func (e *SampleCountError) Unwrap() error { return ErrValidation }

// NonUniformError reports interval parameters whose rounded spacing drifts
// beyond tolerance from the ideal spacing.
type NonUniformError struct {
	End     float64
	Samples int
	Index   int     // first adjacent pair that exceeded tolerance
	Spacing float64 // actual rounded spacing at Index
	Ideal   float64
}

func (e *NonUniformError) Error() string {
	return fmt.Sprintf("%s: intervals over [0,%g] with %d samples are non-uniform: spacing %g at step %d, ideal %g",
		ErrValidation, e.End, e.Samples, e.Spacing, e.Index, e.Ideal)
}

func (e *NonUniformError) Unwrap() error { return ErrValidation }

// IndexError is the panic value raised when a grid coordinate is outside
// [0, SampleCount). Reaching it from valid external input indicates a defect
// in boundary clamping, not bad user data.
type IndexError struct {
	R, G, B     int
	SampleCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid index (%d,%d,%d) outside cube of size %d", e.R, e.G, e.B, e.SampleCount)
}
