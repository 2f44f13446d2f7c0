// lutgen generates color LUTs from built-in looks and writes them in any
// supported destination format. Useful for producing identity grids and
// simple grading looks to feed into cluttool.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/haldworks/clut"
	"github.com/haldworks/clut/lutio"
)

var _ = fmt.Print

var looks = map[string]func(r, g, b float64) clut.Value3D{
	"identity": func(r, g, b float64) clut.Value3D {
		return clut.Value3D{r, g, b}
	},
	"invert": func(r, g, b float64) clut.Value3D {
		return clut.Value3D{1 - r, 1 - g, 1 - b}
	},
	"grayscale": func(r, g, b float64) clut.Value3D {
		l, _, _ := colorful.Color{R: r, G: g, B: b}.Lab()
		c := colorful.Lab(l, 0, 0).Clamped()
		return clut.Value3D{c.R, c.G, c.B}
	},
	"warm": func(r, g, b float64) clut.Value3D {
		return hue_shift(r, g, b, -8)
	},
	"cool": func(r, g, b float64) clut.Value3D {
		return hue_shift(r, g, b, 8)
	},
}

func hue_shift(r, g, b, degrees float64) clut.Value3D {
	h, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
	c := colorful.Hsv(math.Mod(h+degrees+360, 360), min(s*1.05, 1), v).Clamped()
	return clut.Value3D{c.R, c.G, c.B}
}

func look_names() []string {
	names := make([]string, 0, len(looks))
	for name := range looks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	size := flag.Int("size", 33, "grid size of the generated LUT")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: lutgen [options] look dest\nlooks: %v\n", look_names())
		flag.PrintDefaults()
		os.Exit(1)
	}
	name, dest := flag.Arg(0), flag.Arg(1)
	look, ok := looks[name]
	if !ok {
		err = fmt.Errorf("unknown look %q, have %v", name, look_names())
		return
	}
	var l *clut.ColorLUT
	if l, err = clut.FromFunc(*size, look); err != nil {
		return
	}
	err = lutio.Save(dest, lutio.UNKNOWN, l)
}
