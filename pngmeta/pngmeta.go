// Package pngmeta extracts chunk level metadata from PNG data.
//
// Go's image decoders resolve ancillary chunks silently, but a Hald CLUT
// source has to be rejected when it carries color management or transparency
// information (gAMA, tRNS, PLTE), so the chunk table is inspected directly.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// PNG color types, per the IHDR specification.
const (
	ColorTypeGreyscale      = 0
	ColorTypeTruecolor      = 2
	ColorTypeIndexed        = 3
	ColorTypeGreyscaleAlpha = 4
	ColorTypeTruecolorAlpha = 6
)

// Meta describes a PNG stream's properties as declared by its chunk table
// up to the first IDAT.
type Meta struct {
	Width, Height int
	BitDepth      int
	ColorType     int

	HasPalette      bool // PLTE chunk present or indexed color type
	HasGamma        bool // gAMA chunk present
	HasTransparency bool // tRNS chunk present
	Animated        bool // acTL chunk present
}

// Greyscale reports whether samples carry a single grey channel.
func (m *Meta) Greyscale() bool {
	return m.ColorType == ColorTypeGreyscale || m.ColorType == ColorTypeGreyscaleAlpha
}

// HasAlpha reports whether pixels carry an explicit alpha channel.
func (m *Meta) HasAlpha() bool {
	return m.ColorType == ColorTypeGreyscaleAlpha || m.ColorType == ColorTypeTruecolorAlpha
}

// IsPNG reports whether data begins with the PNG signature.
func IsPNG(data []byte) bool {
	return len(data) >= len(pngSignature) && bytes.Equal(data[:len(pngSignature)], pngSignature)
}

// Scan walks the chunk table of an in-memory PNG stream and returns its
// metadata. Scanning stops at the first IDAT chunk: the PNG specification
// places IHDR, PLTE and all relevant ancillary chunks before the image data.
// Chunk payloads other than IHDR are not read, and CRCs are not verified;
// that is the pixel decoder's job.
func Scan(data []byte) (*Meta, error) {
	if !IsPNG(data) {
		return nil, fmt.Errorf("not a PNG stream: bad signature")
	}
	md := &Meta{}
	rest := data[len(pngSignature):]
	seenIHDR := false
	for len(rest) >= 8 {
		length := int(binary.BigEndian.Uint32(rest[0:4]))
		tag := string(rest[4:8])
		body := rest[8:]
		if length < 0 || len(body) < length {
			return nil, fmt.Errorf("truncated PNG chunk %q: %d byte body, %d remain", tag, length, len(body))
		}
		body = body[:length]
		switch tag {
		case "IHDR":
			if length < 13 {
				return nil, fmt.Errorf("short IHDR chunk: %d bytes", length)
			}
			md.Width = int(binary.BigEndian.Uint32(body[0:4]))
			md.Height = int(binary.BigEndian.Uint32(body[4:8]))
			md.BitDepth = int(body[8])
			md.ColorType = int(body[9])
			if md.ColorType == ColorTypeIndexed {
				md.HasPalette = true
			}
			seenIHDR = true
		case "PLTE":
			md.HasPalette = true
		case "gAMA":
			md.HasGamma = true
		case "tRNS":
			md.HasTransparency = true
		case "acTL":
			md.Animated = true
		case "IDAT":
			if !seenIHDR {
				return nil, fmt.Errorf("PNG IDAT before IHDR")
			}
			return md, nil
		}
		// 4 byte CRC trails every chunk body.
		rest = rest[8+length:]
		if len(rest) < 4 {
			return nil, fmt.Errorf("truncated PNG chunk %q: missing CRC", tag)
		}
		rest = rest[4:]
	}
	return nil, fmt.Errorf("PNG stream ended before IDAT")
}
