// Package raster draws gauges into a gg.Context.
//
// Importing the package registers the "raster" target:
//
//	import _ "github.com/gogpu/gauge/backend/raster"
package raster

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/backend"
)

func init() {
	backend.Register(backend.TargetRaster, func(width, height int) backend.Target {
		return NewTarget(width, height)
	})
}

// Backend draws gauge primitives with a gg.Context.
// Fills and strokes share the context's brush, which Backend replaces on
// every call.
type Backend struct {
	dc *gg.Context
}

// New returns a Backend drawing into dc.
func New(dc *gg.Context) *Backend {
	return &Backend{dc: dc}
}

// Context returns the underlying drawing context.
func (b *Backend) Context() *gg.Context { return b.dc }

// FillRectangle implements gauge.Backend.
func (b *Backend) FillRectangle(r gauge.Rect, c gg.RGBA) error {
	return b.fill(r, gg.Solid(c))
}

// FillRectangleGradient implements gauge.Backend.
func (b *Backend) FillRectangleGradient(r, dir gauge.Rect, start gg.RGBA, mid, end *gg.RGBA) error {
	g := gauge.GradientRect{Rect: r, Direction: dir, Start: start, Mid: mid, End: end}
	return b.fill(r, g.Brush())
}

// StrokeRectangle implements gauge.Backend. The ring lies inside r.
func (b *Backend) StrokeRectangle(r gauge.Rect, width int, c gg.RGBA) error {
	if r.Empty() || width <= 0 {
		return nil
	}
	lw := float64(width)
	b.dc.SetStrokeBrush(gg.Solid(c))
	b.dc.SetLineWidth(lw)
	b.dc.DrawRectangle(float64(r.X)+lw/2, float64(r.Y)+lw/2,
		float64(r.Width)-lw, float64(r.Height)-lw)
	if err := b.dc.Stroke(); err != nil {
		return fmt.Errorf("raster: stroke %s: %w", r, err)
	}
	return nil
}

func (b *Backend) fill(r gauge.Rect, brush gg.Brush) error {
	if r.Empty() {
		return nil
	}
	b.dc.SetFillBrush(brush)
	b.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	if err := b.dc.Fill(); err != nil {
		return fmt.Errorf("raster: fill %s: %w", r, err)
	}
	return nil
}

// Target is a raster Backend that owns its context and encodes PNG.
type Target struct {
	*Backend
	size gauge.Size
}

var _ backend.Target = (*Target)(nil)

// NewTarget creates a target over a fresh width×height context.
func NewTarget(width, height int) *Target {
	return &Target{
		Backend: New(gg.NewContext(width, height)),
		size:    gauge.Size{Width: width, Height: height},
	}
}

// Name implements backend.Target.
func (t *Target) Name() string { return backend.TargetRaster }

// Size implements backend.Target.
func (t *Target) Size() gauge.Size { return t.size }

// Encode writes the context as PNG.
func (t *Target) Encode(w io.Writer) error {
	return t.dc.EncodePNG(w)
}
