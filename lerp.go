package petal

import "github.com/lucasb-eyer/go-colorful"

// LerpFunc interpolates between a and b by t in [0, 1].
//
// Every LerpFunc in this package satisfies lerp(a, b, 0) == a,
// lerp(a, b, 1) == b and lerp(a, a, t) == a.
type LerpFunc[T any] func(a, b T, t float64) T

// LerpFloat64 linearly interpolates between two float64 values. The
// endpoints are returned exactly so that a settled animation never drifts
// from its declared value.
func LerpFloat64(a, b, t float64) float64 {
	if t <= 0 || a == b {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpVal interpolates two lengths. Lengths in the same unit blend
// arithmetically; lengths in different units cannot be mixed without layout
// information, so the result switches from a to b halfway through.
func LerpVal(a, b Val, t float64) Val {
	if a.Unit != b.Unit {
		if t < 0.5 {
			return a
		}
		return b
	}
	return Val{Unit: a.Unit, Value: LerpFloat64(a.Value, b.Value, t)}
}

// LerpEdges interpolates each side independently.
func LerpEdges(a, b Edges, t float64) Edges {
	return Edges{
		Left:   LerpVal(a.Left, b.Left, t),
		Right:  LerpVal(a.Right, b.Right, t),
		Top:    LerpVal(a.Top, b.Top, t),
		Bottom: LerpVal(a.Bottom, b.Bottom, t),
	}
}

// LerpVec2 interpolates each axis independently.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor interpolates per channel in RGB space; alpha blends linearly.
func LerpColor(a, b Color, t float64) Color {
	if t <= 0 || a == b {
		return a
	}
	if t >= 1 {
		return b
	}
	c := colorful.Color{R: a.R, G: a.G, B: a.B}.BlendRgb(colorful.Color{R: b.R, G: b.G, B: b.B}, t)
	return Color{R: c.R, G: c.G, B: c.B, A: LerpFloat64(a.A, b.A, t)}
}
