// Package haldclut reads Hald CLUT images: square images whose pixels
// enumerate a cubic color grid in scan order, red axis fastest.
package haldclut

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/kettek/apng"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/haldworks/clut"
	"github.com/haldworks/clut/pngmeta"
)

var _ = fmt.Print

// is_perfect_six_root reports whether n is a perfect sixth power. A square
// image of width w holds a cubic grid exactly when w² is one, i.e. when w is
// a perfect cube.
func is_perfect_six_root(n uint64) bool {
	c := uint64(math.Pow(float64(n), 1.0/6))
	return c*c*c*c*c*c == n || (c+1)*(c+1)*(c+1)*(c+1)*(c+1)*(c+1) == n
}

// grid_size validates Hald CLUT dimensions and returns the per-axis sample
// count they encode.
func grid_size(width, height int) (int, error) {
	if width < 2 || width != height || !is_perfect_six_root(uint64(width)*uint64(width)) {
		return 0, &clut.DimensionError{Width: width, Height: height}
	}
	return int(math.Round(math.Cbrt(float64(width) * float64(width)))), nil
}

// ReadFile decodes the Hald CLUT image at path.
func ReadFile(path string) (*clut.ColorLUT, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Read decodes a Hald CLUT image into a ColorLUT that owns a freshly built
// sample buffer. PNG sources are validated at the chunk level first; other
// formats Go can decode (TIFF, BMP, WebP) are accepted when their pixel
// layout qualifies.
func Read(r io.Reader) (*clut.ColorLUT, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if pngmeta.IsPNG(data) {
		return read_png(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return from_image(img)
}

func read_png(data []byte) (*clut.ColorLUT, error) {
	md, err := pngmeta.Scan(data)
	if err != nil {
		return nil, err
	}
	// Each rejection is distinct: the caller learns exactly which feature
	// disqualified the file.
	switch {
	case md.HasPalette:
		return nil, &clut.RejectionError{Feature: "a color palette"}
	case md.HasGamma:
		return nil, &clut.RejectionError{Feature: "a gamma value"}
	case md.HasTransparency:
		return nil, &clut.RejectionError{Feature: "a transparent color"}
	case md.HasAlpha():
		return nil, &clut.RejectionError{Feature: "an alpha channel"}
	case md.Animated:
		return nil, &clut.RejectionError{Feature: "animation frames"}
	}
	if md.BitDepth != 8 && md.BitDepth != 16 {
		return nil, &clut.BitDepthError{Bits: md.BitDepth}
	}
	if _, err := grid_size(md.Width, md.Height); err != nil {
		return nil, err
	}
	p, err := apng.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(p.Frames) != 1 {
		return nil, &clut.RejectionError{Feature: "animation frames"}
	}
	return from_image(p.Frames[0].Image)
}

// from_image flattens decoded pixels into interleaved RGB samples and wraps
// them in a ColorLUT. Greyscale sources are expanded by replicating each
// sample into a full triple.
func from_image(img image.Image) (*clut.ColorLUT, error) {
	bounds := img.Bounds()
	sampleCount, err := grid_size(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	samples, bitdepth, err := flatten(img)
	if err != nil {
		return nil, err
	}
	domain := float64(uint64(1)<<bitdepth - 1)
	return clut.New(samples, sampleCount, domain, clut.Integral, true)
}

func flatten(img image.Image) (samples []float64, bitdepth int, err error) {
	bounds := img.Bounds()
	npix := bounds.Dx() * bounds.Dy()
	switch img := img.(type) {
	case *image.Gray:
		samples = make([]float64, 0, 3*npix)
		for y := range bounds.Dy() {
			row := img.Pix[y*img.Stride:]
			for x := range bounds.Dx() {
				v := float64(row[x])
				samples = append(samples, v, v, v)
			}
		}
		return samples, 8, nil
	case *image.Gray16:
		samples = make([]float64, 0, 3*npix)
		for y := range bounds.Dy() {
			row := img.Pix[y*img.Stride:]
			for x := range bounds.Dx() {
				v := float64(binary.BigEndian.Uint16(row[2*x:]))
				samples = append(samples, v, v, v)
			}
		}
		return samples, 16, nil
	case *image.RGBA:
		samples = make([]float64, 0, 3*npix)
		for y := range bounds.Dy() {
			row := img.Pix[y*img.Stride:]
			for x := range bounds.Dx() {
				s := row[4*x : 4*x+4 : 4*x+4]
				if s[3] != 0xff {
					return nil, 0, &clut.RejectionError{Feature: "an alpha channel"}
				}
				samples = append(samples, float64(s[0]), float64(s[1]), float64(s[2]))
			}
		}
		return samples, 8, nil
	case *image.RGBA64:
		samples = make([]float64, 0, 3*npix)
		for y := range bounds.Dy() {
			row := img.Pix[y*img.Stride:]
			for x := range bounds.Dx() {
				s := row[8*x : 8*x+8 : 8*x+8]
				if binary.BigEndian.Uint16(s[6:]) != 0xffff {
					return nil, 0, &clut.RejectionError{Feature: "an alpha channel"}
				}
				samples = append(samples,
					float64(binary.BigEndian.Uint16(s[0:])),
					float64(binary.BigEndian.Uint16(s[2:])),
					float64(binary.BigEndian.Uint16(s[4:])))
			}
		}
		return samples, 16, nil
	case *image.NRGBA, *image.NRGBA64:
		return nil, 0, &clut.RejectionError{Feature: "an alpha channel"}
	case *image.Paletted:
		return nil, 0, &clut.RejectionError{Feature: "a color palette"}
	default:
		return nil, 0, &clut.RejectionError{Feature: fmt.Sprintf("an unsupported color model (%T)", img)}
	}
}

// Write is the Hald CLUT encode path. It is not implemented yet; the error
// is explicit so callers can tell it apart from data validity failures.
func Write(w io.Writer, l *clut.ColorLUT) error {
	return fmt.Errorf("%w: writing Hald CLUT images", clut.ErrUnsupported)
}
