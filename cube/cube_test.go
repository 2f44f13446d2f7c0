package cube

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldworks/clut"
	"github.com/haldworks/clut/haldclut"
)

func TestWrite(t *testing.T) {
	t.Run("TinyIdentity", func(t *testing.T) {
		l, err := clut.Identity(2, 255, clut.Integral)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, l))
		// Red axis fastest, normalized domain.
		want := strings.Join([]string{
			"LUT_3D_SIZE 2",
			"0 0 0",
			"1 0 0",
			"0 1 0",
			"1 1 0",
			"0 0 1",
			"1 0 1",
			"0 1 1",
			"1 1 1",
		}, "\n") + "\n"
		assert.Equal(t, want, buf.String())
	})
	t.Run("SevenSignificantDigits", func(t *testing.T) {
		data := []float64{
			1, 2, 3, 254, 253, 252,
			10, 20, 30, 40, 50, 60,
			100, 110, 120, 130, 140, 150,
			200, 210, 220, 230, 240, 250,
		}
		l, err := clut.New(data, 2, 255, clut.Integral, true)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, l))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 9)
		assert.Equal(t, "0.003921569 0.007843137 0.01176471", lines[1])
		assert.Equal(t, "0.9960784 0.9921569 0.9882353", lines[2])
	})
}

// The whole read side feeding the write side: an identity Hald CLUT PNG
// becomes a .cube whose every row is the normalized grid coordinate.
func TestIdentityHaldToCube(t *testing.T) {
	const n = 16
	width := 64 // 64² pixels = 16³ grid points
	img := image.NewRGBA(image.Rect(0, 0, width, width))
	dist := 255.0 / float64(n-1)
	for p := range n * n * n {
		img.Pix[4*p] = uint8(math.Round(float64(p%n) * dist))
		img.Pix[4*p+1] = uint8(math.Round(float64((p/n)%n) * dist))
		img.Pix[4*p+2] = uint8(math.Round(float64(p/(n*n)) * dist))
		img.Pix[4*p+3] = 0xff
	}
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	l, err := haldclut.Read(&pngBuf)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, l))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 1+n*n*n)
	assert.Equal(t, "LUT_3D_SIZE 16", lines[0])

	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		require.Len(t, fields, 3, "row %d", i)
		var got [3]float64
		for c := range 3 {
			_, err := fmt.Sscanf(fields[c], "%g", &got[c])
			require.NoError(t, err)
		}
		assert.InDelta(t, float64(i%n)/15, got[0], 0.002, "row %d", i)
		assert.InDelta(t, float64((i/n)%n)/15, got[1], 0.002, "row %d", i)
		assert.InDelta(t, float64(i/(n*n))/15, got[2], 0.002, "row %d", i)
	}
	// Spot rows are exact thirds and ones.
	assert.Equal(t, "0.3333333 0 0", lines[1+5])
	assert.Equal(t, "1 1 1", lines[len(lines)-1])
}

func TestReadUnsupported(t *testing.T) {
	_, err := Read(strings.NewReader("LUT_3D_SIZE 2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, clut.ErrUnsupported)
}
