package pngmeta

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ihdrEnd is the offset just past the IHDR chunk: 8 signature bytes plus
// length, tag, 13 byte body and CRC.
const ihdrEnd = 8 + 8 + 13 + 4

func encode_png(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// splice_chunk inserts a chunk immediately after IHDR, with a valid CRC.
func splice_chunk(t *testing.T, data []byte, tag string, body []byte) []byte {
	t.Helper()
	var chunk bytes.Buffer
	require.NoError(t, binary.Write(&chunk, binary.BigEndian, uint32(len(body))))
	chunk.WriteString(tag)
	chunk.Write(body)
	crc := crc32.NewIEEE()
	crc.Write([]byte(tag))
	crc.Write(body)
	require.NoError(t, binary.Write(&chunk, binary.BigEndian, crc.Sum32()))
	out := slices.Clone(data[:ihdrEnd])
	out = append(out, chunk.Bytes()...)
	return append(out, data[ihdrEnd:]...)
}

func opaque_rgba(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func TestScan(t *testing.T) {
	t.Run("TruecolorOpaque", func(t *testing.T) {
		md, err := Scan(encode_png(t, opaque_rgba(4, 6)))
		require.NoError(t, err)
		assert.Equal(t, 4, md.Width)
		assert.Equal(t, 6, md.Height)
		assert.Equal(t, 8, md.BitDepth)
		assert.Equal(t, ColorTypeTruecolor, md.ColorType)
		assert.False(t, md.HasAlpha())
		assert.False(t, md.Greyscale())
		assert.False(t, md.HasPalette)
		assert.False(t, md.HasGamma)
		assert.False(t, md.HasTransparency)
		assert.False(t, md.Animated)
	})
	t.Run("Greyscale16", func(t *testing.T) {
		md, err := Scan(encode_png(t, image.NewGray16(image.Rect(0, 0, 4, 4))))
		require.NoError(t, err)
		assert.Equal(t, 16, md.BitDepth)
		assert.Equal(t, ColorTypeGreyscale, md.ColorType)
		assert.True(t, md.Greyscale())
		assert.False(t, md.HasAlpha())
	})
	t.Run("AlphaChannel", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		img.Set(0, 0, color.NRGBA{R: 1, A: 128})
		md, err := Scan(encode_png(t, img))
		require.NoError(t, err)
		assert.Equal(t, ColorTypeTruecolorAlpha, md.ColorType)
		assert.True(t, md.HasAlpha())
	})
	t.Run("Paletted", func(t *testing.T) {
		img := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
			color.RGBA{A: 0xff}, color.RGBA{R: 0xff, A: 0xff},
		})
		md, err := Scan(encode_png(t, img))
		require.NoError(t, err)
		assert.True(t, md.HasPalette)
	})
	t.Run("GammaChunk", func(t *testing.T) {
		data := splice_chunk(t, encode_png(t, opaque_rgba(4, 4)), "gAMA", []byte{0, 0, 0xb1, 0x8f})
		md, err := Scan(data)
		require.NoError(t, err)
		assert.True(t, md.HasGamma)
	})
	t.Run("TransparencyChunk", func(t *testing.T) {
		data := splice_chunk(t, encode_png(t, opaque_rgba(4, 4)), "tRNS", make([]byte, 6))
		md, err := Scan(data)
		require.NoError(t, err)
		assert.True(t, md.HasTransparency)
	})
	t.Run("AnimationControlChunk", func(t *testing.T) {
		data := splice_chunk(t, encode_png(t, opaque_rgba(4, 4)), "acTL", make([]byte, 8))
		md, err := Scan(data)
		require.NoError(t, err)
		assert.True(t, md.Animated)
	})
	t.Run("NotPNG", func(t *testing.T) {
		_, err := Scan([]byte("GIF89a definitely not a png"))
		assert.ErrorContains(t, err, "bad signature")
	})
	t.Run("Truncated", func(t *testing.T) {
		data := encode_png(t, opaque_rgba(4, 4))
		_, err := Scan(data[:ihdrEnd+4])
		assert.Error(t, err)
	})
}
