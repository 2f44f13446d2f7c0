package clut

import "fmt"

// Value3D is an immutable three component color value in R, G, B order.
type Value3D [3]float64

func (v Value3D) String() string {
	return fmt.Sprintf("Value3D{%g %g %g}", v[0], v[1], v[2])
}

func (v Value3D) Add(o Value3D) Value3D {
	return Value3D{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Value3D) Scale(f float64) Value3D {
	return Value3D{v[0] * f, v[1] * f, v[2] * f}
}
