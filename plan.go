package gauge

import (
	"fmt"
	"iter"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in integer pixel coordinates.
// Width and Height are non-negative for drawable rectangles; a direction
// rectangle may carry negative extents (see GradientRect).
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns Width·Height, or zero for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// PrimitiveType identifies the kind of a drawing primitive.
type PrimitiveType uint8

const (
	PrimFill     PrimitiveType = iota // flat rectangle fill
	PrimGradient                      // gradient rectangle fill
	PrimStroke                        // rectangle border ring
)

var primitiveTypeNames = [...]string{
	PrimFill:     "Fill",
	PrimGradient: "Gradient",
	PrimStroke:   "Stroke",
}

// String returns the string representation of a PrimitiveType.
func (t PrimitiveType) String() string {
	if int(t) < len(primitiveTypeNames) {
		return primitiveTypeNames[t]
	}
	return "Unknown"
}

// Primitive is implemented by FilledRect, GradientRect and StrokeRect.
type Primitive interface {
	Type() PrimitiveType
}

// FilledRect fills Rect with a single color.
type FilledRect struct {
	Rect  Rect
	Color gg.RGBA
}

// Type implements Primitive.
func (FilledRect) Type() PrimitiveType { return PrimFill }

// GradientRect fills Rect with a linear gradient.
//
// The gradient runs from (Direction.X, Direction.Y) to
// (Direction.X+Direction.Width, Direction.Y+Direction.Height); a negative
// extent runs it toward decreasing coordinates. Start sits at offset 0,
// Mid (when non-nil) at 0.5 and End (when non-nil) at 1.
type GradientRect struct {
	Rect      Rect
	Direction Rect
	Start     gg.RGBA
	Mid       *gg.RGBA
	End       *gg.RGBA
}

// Type implements Primitive.
func (GradientRect) Type() PrimitiveType { return PrimGradient }

// Stops returns the gradient's color stops in offset order.
func (g GradientRect) Stops() []gg.ColorStop {
	stops := []gg.ColorStop{{Offset: 0, Color: g.Start}}
	if g.Mid != nil {
		stops = append(stops, gg.ColorStop{Offset: 0.5, Color: *g.Mid})
	}
	if g.End != nil {
		stops = append(stops, gg.ColorStop{Offset: 1, Color: *g.End})
	}
	return stops
}

// Brush returns a gg brush painting the gradient: a solid Start when no
// optional stop is set, otherwise a linear gradient along Direction.
func (g GradientRect) Brush() gg.Brush {
	if g.Mid == nil && g.End == nil {
		return gg.Solid(g.Start)
	}
	d := g.Direction
	lg := gg.NewLinearGradientBrush(float64(d.X), float64(d.Y),
		float64(d.X+d.Width), float64(d.Y+d.Height))
	for _, s := range g.Stops() {
		lg.AddColorStop(s.Offset, s.Color)
	}
	return lg
}

// StrokeRect draws a border ring of the given width inside Rect.
type StrokeRect struct {
	Rect  Rect
	Width int
	Color gg.RGBA
}

// Type implements Primitive.
func (StrokeRect) Type() PrimitiveType { return PrimStroke }

// BarPlan is the ordered primitive list of one bar: border and background
// first, then the filled and unfilled regions, then tick separators.
type BarPlan struct {
	Title string
	// Body is the bar's fill area, inside border and padding.
	Body       Rect
	Primitives []Primitive
}

// Plan is the backend-agnostic result of a layout pass.
type Plan struct {
	// Bounds is the area covered by the whole group.
	Bounds Rect
	// Bars holds one entry per bar, in collection order.
	Bars []BarPlan
}

// Primitives iterates every primitive of the plan in drawing order.
func (p Plan) Primitives() iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		for _, bp := range p.Bars {
			for _, prim := range bp.Primitives {
				if !yield(prim) {
					return
				}
			}
		}
	}
}
