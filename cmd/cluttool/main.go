package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/haldworks/clut"
	"github.com/haldworks/clut/lutio"
)

var _ = fmt.Print

// Config carries environment defaults for the command line options.
type Config struct {
	DestType string `envconfig:"CLUTTOOL_DEST_TYPE"`
	Size     int    `envconfig:"CLUTTOOL_SIZE"`
	Verbose  bool   `envconfig:"CLUTTOOL_VERBOSE" default:"false"`
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	var cfg Config
	if err = envconfig.Process("", &cfg); err != nil {
		return
	}
	destType := flag.String("dest-type", cfg.DestType,
		"destination LUT format (3dl, cube, haldclut); inferred from the destination extension when empty")
	size := flag.Int("size", cfg.Size,
		"resample the LUT to this grid size before writing; 0 keeps the source size")
	verbose := flag.Bool("verbose", cfg.Verbose, "report decoded LUT properties on stderr")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: cluttool [options] src dest")
		flag.PrintDefaults()
		os.Exit(1)
	}
	src, dest := flag.Arg(0), flag.Arg(1)

	format := lutio.UNKNOWN
	if *destType != "" {
		if format, err = lutio.ParseFormat(*destType); err != nil {
			return
		}
	}

	var l *clut.ColorLUT
	if l, err = lutio.Open(src); err != nil {
		return
	}
	if *verbose {
		fmt.Fprintln(os.Stderr, "cluttool: decoded", l)
	}
	if *size > 0 && *size != l.SampleCount {
		if l, err = l.Resample(*size); err != nil {
			return
		}
		if *verbose {
			fmt.Fprintln(os.Stderr, "cluttool: resampled to", l)
		}
	}
	if err = lutio.Save(dest, format, l); err != nil {
		return
	}
	if *verbose {
		fmt.Fprintln(os.Stderr, "cluttool: wrote", dest)
	}
}
