// Package record captures gauge renders as gg recordings.
//
// A recording is a list of typed vector commands that can be replayed to
// any gg recording backend (raster, PDF, SVG). Importing the package
// registers the "record" target, which encodes by replaying into gg's
// raster recording backend and writing PNG.
package record

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	// Registers the "raster" recording backend used by Encode.
	_ "github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/backend"
)

func init() {
	backend.Register(backend.TargetRecord, func(width, height int) backend.Target {
		return New(width, height)
	})
}

// Target records gauge primitives with a recording.Recorder.
type Target struct {
	rec  *recording.Recorder
	size gauge.Size
}

var _ backend.Target = (*Target)(nil)

// New creates a target recording a width×height canvas.
func New(width, height int) *Target {
	return &Target{
		rec:  recording.NewRecorder(width, height),
		size: gauge.Size{Width: width, Height: height},
	}
}

// Name implements backend.Target.
func (t *Target) Name() string { return backend.TargetRecord }

// Size implements backend.Target.
func (t *Target) Size() gauge.Size { return t.size }

// Recorder returns the underlying recorder.
func (t *Target) Recorder() *recording.Recorder { return t.rec }

// FillRectangle implements gauge.Backend.
func (t *Target) FillRectangle(r gauge.Rect, c gg.RGBA) error {
	t.fill(r, gg.Solid(c))
	return nil
}

// FillRectangleGradient implements gauge.Backend.
func (t *Target) FillRectangleGradient(r, dir gauge.Rect, start gg.RGBA, mid, end *gg.RGBA) error {
	g := gauge.GradientRect{Rect: r, Direction: dir, Start: start, Mid: mid, End: end}
	t.fill(r, g.Brush())
	return nil
}

// StrokeRectangle implements gauge.Backend. The ring lies inside r.
func (t *Target) StrokeRectangle(r gauge.Rect, width int, c gg.RGBA) error {
	if r.Empty() || width <= 0 {
		return nil
	}
	lw := float64(width)
	t.rec.SetStrokeBrush(gg.Solid(c))
	t.rec.SetLineWidth(lw)
	// Stroked as a path: playback replays path strokes only.
	t.rec.DrawRectangle(float64(r.X)+lw/2, float64(r.Y)+lw/2,
		float64(r.Width)-lw, float64(r.Height)-lw)
	t.rec.Stroke()
	return nil
}

func (t *Target) fill(r gauge.Rect, brush gg.Brush) {
	if r.Empty() {
		return
	}
	t.rec.SetFillBrush(brush)
	t.rec.FillRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
}

// Finish ends recording and returns the captured commands. The target
// must not be drawn to afterwards.
func (t *Target) Finish() *recording.Recording {
	return t.rec.FinishRecording()
}

// Encode finishes the recording, replays it into gg's raster recording
// backend and writes the result as PNG.
func (t *Target) Encode(w io.Writer) error {
	rb, err := recording.NewBackend("raster")
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if err := t.Finish().Playback(rb); err != nil {
		return fmt.Errorf("record: playback: %w", err)
	}
	wb, ok := rb.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("record: raster backend %T cannot write", rb)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("record: encode: %w", err)
	}
	return nil
}
