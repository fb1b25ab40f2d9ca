package backend

import (
	"errors"
	"io"

	"github.com/gogpu/gauge"
)

// Common backend errors.
var (
	// ErrUnknownTarget is returned when a requested target is not registered.
	ErrUnknownTarget = errors.New("backend: unknown target")

	// ErrNoTarget is returned by Default when no target is registered.
	ErrNoTarget = errors.New("backend: no target available")
)

// Target is a gauge.Backend that owns its output surface and can encode it.
//
// Targets are registered via Register() and created via New() or Default().
type Target interface {
	gauge.Backend

	// Name returns the target identifier (e.g., "raster", "term").
	Name() string

	// Size returns the drawing area the target was created with.
	Size() gauge.Size

	// Encode writes the drawn output to w: PNG for pixel targets,
	// ANSI text for terminal targets.
	Encode(w io.Writer) error
}
