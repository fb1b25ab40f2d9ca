// Package term previews gauges in a terminal.
//
// Every pixel of the drawing area becomes half a character cell: each line
// of output shows two pixel rows with an upper half block whose foreground
// is the upper pixel and whose background is the lower one. Importing the
// package registers the "term" target.
package term

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/backend"
)

func init() {
	backend.Register(backend.TargetTerm, func(width, height int) backend.Target {
		return New(width, height)
	})
}

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Target paints primitives into a grid of cells.
type Target struct {
	size  gauge.Size
	cells []gg.RGBA
	set   []bool
}

var _ backend.Target = (*Target)(nil)

// New creates a width×height cell grid with every cell unset.
func New(width, height int) *Target {
	width, height = max(width, 0), max(height, 0)
	return &Target{
		size:  gauge.Size{Width: width, Height: height},
		cells: make([]gg.RGBA, width*height),
		set:   make([]bool, width*height),
	}
}

// Name implements backend.Target.
func (t *Target) Name() string { return backend.TargetTerm }

// Size implements backend.Target.
func (t *Target) Size() gauge.Size { return t.size }

// At returns the color of the cell at (x, y) and whether it was painted.
func (t *Target) At(x, y int) (gg.RGBA, bool) {
	if x < 0 || y < 0 || x >= t.size.Width || y >= t.size.Height {
		return gg.RGBA{}, false
	}
	i := y*t.size.Width + x
	return t.cells[i], t.set[i]
}

// FillRectangle implements gauge.Backend.
func (t *Target) FillRectangle(r gauge.Rect, c gg.RGBA) error {
	t.paint(r, func(int, int) gg.RGBA { return c })
	return nil
}

// FillRectangleGradient implements gauge.Backend. Each cell takes the
// gradient color at its center.
func (t *Target) FillRectangleGradient(r, dir gauge.Rect, start gg.RGBA, mid, end *gg.RGBA) error {
	brush := gauge.GradientRect{Rect: r, Direction: dir, Start: start, Mid: mid, End: end}.Brush()
	t.paint(r, func(x, y int) gg.RGBA {
		return brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
	})
	return nil
}

// StrokeRectangle implements gauge.Backend. The ring lies inside r.
func (t *Target) StrokeRectangle(r gauge.Rect, width int, c gg.RGBA) error {
	if width <= 0 {
		return nil
	}
	w := min(width, r.Width, r.Height)
	solid := func(int, int) gg.RGBA { return c }
	t.paint(gauge.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: w}, solid)
	t.paint(gauge.Rect{X: r.X, Y: r.Y + r.Height - w, Width: r.Width, Height: w}, solid)
	t.paint(gauge.Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}, solid)
	t.paint(gauge.Rect{X: r.X + r.Width - w, Y: r.Y, Width: w, Height: r.Height}, solid)
	return nil
}

func (t *Target) paint(r gauge.Rect, colorAt func(x, y int) gg.RGBA) {
	if r.Empty() {
		return
	}
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, t.size.Width), min(r.Y+r.Height, t.size.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*t.size.Width + x
			t.cells[i] = colorAt(x, y)
			t.set[i] = true
		}
	}
}

// Encode writes the grid as ANSI text. Colors are degraded to what w
// supports, as detected by lipgloss.
func (t *Target) Encode(w io.Writer) error {
	_, err := io.WriteString(w, t.render(lipgloss.NewRenderer(w)))
	return err
}

// String renders the grid with lipgloss' default renderer.
func (t *Target) String() string {
	return t.render(lipgloss.DefaultRenderer())
}

func (t *Target) render(re *lipgloss.Renderer) string {
	var sb strings.Builder
	for y := 0; y < t.size.Height; y += 2 {
		for x := 0; x < t.size.Width; x++ {
			top, topSet := t.At(x, y)
			bottom, bottomSet := t.At(x, y+1)
			if !topSet && !bottomSet {
				sb.WriteByte(' ')
				continue
			}
			st := re.NewStyle()
			switch {
			case !topSet:
				sb.WriteString(st.Foreground(lipgloss.Color(hexColor(bottom))).Render(lowerHalf))
			case !bottomSet:
				sb.WriteString(st.Foreground(lipgloss.Color(hexColor(top))).Render(upperHalf))
			default:
				st = st.Foreground(lipgloss.Color(hexColor(top))).Background(lipgloss.Color(hexColor(bottom)))
				sb.WriteString(st.Render(upperHalf))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func hexColor(c gg.RGBA) string {
	n := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
