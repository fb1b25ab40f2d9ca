// Package gauge lays out and renders groups of bar gauges.
//
// # Overview
//
// A Group holds shared geometry (Params) and an ordered set of bars. Each
// bar has a title, a [min, max] range, a current value, a fill direction
// and its own colors. A render pass turns that state into a Plan: for every
// bar, the exact pixel rectangles of its border, its filled and unfilled
// regions and, in ticks mode, its tick separators. The Plan is then issued
// to a Backend.
//
// # Quick Start
//
//	g := gauge.NewGroup()
//	g.SetProperties(gauge.GroupProps{Width: gauge.Ptr(120), TicksCount: gauge.Ptr(10)})
//	g.SetBarProperties("cpu", gauge.BarProps{FG: gauge.Ptr("#a6e3a1"), FGEnd: gauge.Ptr("red")})
//	g.AddValue("cpu", 42)
//
//	dc := gg.NewContext(200, 24)
//	used, err := g.Render(raster.New(dc), gauge.Size{Width: 200, Height: 24}, 0)
//
// # Geometry
//
// Horizontal groups stack bars top to bottom and fill left to right.
// Vertical groups pack bars left to right and fill bottom to top.
// Reversed bars fill from the opposite end, with their gradient mirrored.
//
// In continuous mode the filled length is round(length · fraction). When
// both TicksCount and TicksGap are positive the fill axis is cut into
// TicksCount ticks separated by TicksGap pixels, and the fill snaps to
// whole ticks. Rounding is always half up.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, as in gg.
//
// # Concurrency
//
// A Group is single-threaded. Layout is a pure function and may be called
// from any goroutine on values that are not being mutated.
package gauge
