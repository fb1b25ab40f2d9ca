// Package backend provides a registry of named gauge render targets.
//
// A target is a gauge.Backend that owns its output surface (a pixel
// context, a vector recording, a terminal cell grid) and can encode it.
// Targets register themselves from init() functions, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/gauge/backend/raster"
//
// # Target Selection
//
// Use Default() for the best available target, or New() for a specific one:
//
//	t, err := backend.New("term", 40, 8)
//	if err != nil {
//		return err
//	}
//	if _, err := group.Render(t, t.Size(), 0); err != nil {
//		return err
//	}
//	return t.Encode(os.Stdout)
package backend
