// Package lutio selects LUT formats by file extension and performs the
// actual file I/O for conversions. Destination files are written atomically:
// output goes to a temporary file which is renamed into place only after a
// fully successful write, so a failed conversion never leaves a half
// written LUT behind.
package lutio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/haldworks/clut"
	"github.com/haldworks/clut/cube"
	"github.com/haldworks/clut/haldclut"
	"github.com/haldworks/clut/threedl"
)

var _ = fmt.Print

// Format is a LUT file format.
type Format int

const (
	UNKNOWN Format = iota
	HALDCLUT
	THREEDL
	CUBE
)

var FormatExts = map[string]Format{
	"png":      HALDCLUT,
	"tif":      HALDCLUT,
	"tiff":     HALDCLUT,
	"bmp":      HALDCLUT,
	"webp":     HALDCLUT,
	"haldclut": HALDCLUT,
	"3dl":      THREEDL,
	"cube":     CUBE,
}

var formatNames = map[Format]string{
	HALDCLUT: "haldclut",
	THREEDL:  "3dl",
	CUBE:     "cube",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat resolves a format name as accepted on the command line.
func ParseFormat(name string) (Format, error) {
	if f, ok := FormatExts[strings.ToLower(name)]; ok {
		return f, nil
	}
	return UNKNOWN, fmt.Errorf("not a color LUT format: %q", name)
}

// FormatForPath infers the format from a file extension, following the
// convention that .png (and other image extensions) mean a Hald CLUT.
func FormatForPath(path string) Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return FormatExts[ext]
}

type fileSystem interface {
	Open(name string) (io.ReadCloser, error)
	CreateTemp(dir, pattern string) (*os.File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

type localFS struct{}

func (localFS) Open(name string) (io.ReadCloser, error)          { return os.Open(name) }
func (localFS) CreateTemp(dir, pattern string) (*os.File, error) { return os.CreateTemp(dir, pattern) }
func (localFS) Rename(oldpath, newpath string) error             { return os.Rename(oldpath, newpath) }
func (localFS) Remove(name string) error                         { return os.Remove(name) }

var fs fileSystem = localFS{}

// Open reads the LUT at path, selecting the reader by extension.
func Open(path string) (*clut.ColorLUT, error) {
	format := FormatForPath(path)
	if format == UNKNOWN {
		return nil, fmt.Errorf("%s: not a color LUT file type", path)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var l *clut.ColorLUT
	switch format {
	case HALDCLUT:
		l, err = haldclut.Read(f)
	case THREEDL:
		l, err = threedl.Read(f)
	case CUBE:
		l, err = cube.Read(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Save writes l to path in the given format, atomically. When format is
// UNKNOWN it is inferred from the destination extension.
func Save(path string, format Format, l *clut.ColorLUT) (err error) {
	if format == UNKNOWN {
		format = FormatForPath(path)
	}
	var write func(io.Writer, *clut.ColorLUT) error
	switch format {
	case HALDCLUT:
		write = haldclut.Write
	case THREEDL:
		write = threedl.Write
	case CUBE:
		write = cube.Write
	default:
		return fmt.Errorf("%s: not a color LUT file type", path)
	}
	dir, base := filepath.Split(path)
	tmp, err := fs.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			fs.Remove(tmp.Name())
		}
	}()
	if err = write(tmp, l); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return fs.Rename(tmp.Name(), path)
}
