/*
Package clut models 3D color lookup tables (LUTs) and converts them between
on-disk representations.

A color LUT approximates a color transform by sparsely sampling a cubic RGB
grid; values between grid points are recovered with trilinear interpolation.
The ColorLUT type owns the flat sample buffer and grid metadata, and the
format subpackages (haldclut, threedl, cube) translate between ColorLUT and
the corresponding file grammars.
*/
package clut

import "fmt"

type ClutVersion struct {
	Major, Minor, Patch uint
}

func (v ClutVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var Version = ClutVersion{0, 2, 0}
