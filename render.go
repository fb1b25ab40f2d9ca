package gauge

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Backend receives the primitives of a render pass and turns them into
// pixels, vector commands or anything else. Rectangles are in pixels.
//
// # Implementation Contract
//
//   - FillRectangle paints r with c.
//   - FillRectangleGradient paints r with a linear gradient running along
//     dir (see GradientRect); mid and end are optional stops at 0.5 and 1.
//     With both nil the result is a flat start color.
//   - StrokeRectangle paints a ring of the given width along the inside of r.
type Backend interface {
	FillRectangle(r Rect, c gg.RGBA) error
	FillRectangleGradient(r, dir Rect, start gg.RGBA, mid, end *gg.RGBA) error
	StrokeRectangle(r Rect, width int, c gg.RGBA) error
}

// Render issues every primitive of plan to b in plan order and returns the
// width the group occupies. It stops at the first backend error.
func Render(b Backend, plan Plan) (int, error) {
	for _, bp := range plan.Bars {
		for _, prim := range bp.Primitives {
			if err := draw(b, prim); err != nil {
				return 0, fmt.Errorf("gauge: bar %q: %s: %w", bp.Title, prim.Type(), err)
			}
		}
	}
	return plan.Bounds.Width, nil
}

func draw(b Backend, prim Primitive) error {
	switch p := prim.(type) {
	case FilledRect:
		return b.FillRectangle(p.Rect, p.Color)
	case GradientRect:
		return b.FillRectangleGradient(p.Rect, p.Direction, p.Start, p.Mid, p.End)
	case StrokeRect:
		return b.StrokeRectangle(p.Rect, p.Width, p.Color)
	default:
		return fmt.Errorf("unsupported primitive %T", prim)
	}
}
