package petal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default paint color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black. It is the default background
// of a node that has a background slot but no declared color.
var ColorTransparent = Color{}

// FromColor converts any image/color value to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// image/color returns premultiplied 16-bit components.
	fa := float64(a)
	return Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// ColorFromName looks up an SVG 1.1 color keyword such as "white" or
// "cornflowerblue". The second result is false for unknown names.
func ColorFromName(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// ColorFromHex parses "#rrggbb" or "#rgb" into an opaque Color.
func ColorFromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// RGBA8 converts the color to a premultiplied color.RGBA for rendering.
func (c Color) RGBA8() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of pointer event delivered by the host's input
// system. The scene maps these onto interaction phases.
type EventType uint8

const (
	EventPointerDown   EventType = iota // a pointer button was pressed over the node
	EventPointerUp                      // a pointer button was released over the node
	EventPointerEnter                   // the pointer entered the node's bounds
	EventPointerLeave                   // the pointer left the node's bounds
	EventPressCanceled                  // a press ended outside the node (drag away, capture loss)
)

func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "pointer_down"
	case EventPointerUp:
		return "pointer_up"
	case EventPointerEnter:
		return "pointer_enter"
	case EventPointerLeave:
		return "pointer_leave"
	case EventPressCanceled:
		return "press_canceled"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(e))
	}
}
