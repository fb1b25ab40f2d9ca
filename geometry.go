package gauge

// Alignment places a group's bounding box along the available width.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignFlex
)

var alignmentNames = [...]string{
	AlignLeft:  "left",
	AlignRight: "right",
	AlignFlex:  "flex",
}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "unknown"
}

// ParseAlignment returns the Alignment named s ("left", "right", "flex").
func ParseAlignment(s string) (Alignment, bool) {
	for i, name := range alignmentNames {
		if name == s {
			return Alignment(i), true
		}
	}
	return AlignLeft, false
}

// Size is the drawing area available to a group.
type Size struct {
	Width, Height int
}

// Layout computes the render plan of bars under params.
//
// available is the drawing area, align and offset place the bounding box
// horizontally: left and flex groups start at offset, right groups end
// offset pixels before the right edge.
//
// Layout is pure: equal inputs give equal plans. Bars must satisfy the
// Bar range invariant; progress is not re-clamped here.
func Layout(params Params, bars []*Bar, available Size, align Alignment, offset int) Plan {
	n := len(bars)
	if n == 0 {
		return Plan{}
	}

	dec := params.decoration()
	var bounds Rect
	if params.Vertical {
		thickness := (params.Width - 2*dec*n - params.Gap*(n-1)) / n
		bounds.Width = n*(thickness+2*dec+params.Gap) - params.Gap
	} else {
		_, length := params.tickUnit(params.Width - 2*dec)
		bounds.Width = length + 2*dec
	}
	bounds.Height = available.Height
	if align == AlignRight {
		bounds.X = available.Width - offset - bounds.Width
	} else {
		bounds.X = offset
	}

	plan := Plan{Bounds: bounds, Bars: make([]BarPlan, 0, n)}
	if params.Vertical {
		layoutVertical(&plan, params, bars, available)
	} else {
		layoutHorizontal(&plan, params, bars, available)
	}
	return plan
}

// bodyTop is the y coordinate of the first pixel of a bar body.
func bodyTop(params Params, bounds Rect, available Size) int {
	return bounds.Y + int(float64(available.Height)*(1-params.Height))/2 + params.decoration()
}

// layoutVertical packs bars left to right; each fills bottom to top.
func layoutVertical(plan *Plan, params Params, bars []*Bar, available Size) {
	n := len(bars)
	dec := params.decoration()
	thickness := (params.Width - 2*dec*n - params.Gap*(n-1)) / n
	unit, length := params.tickUnit(roundHalfUp(float64(available.Height)*params.Height) - 2*dec)

	x := plan.Bounds.X + dec
	y := bodyTop(params, plan.Bounds, available)

	for _, bar := range bars {
		body := Rect{X: x, Y: y, Width: thickness, Height: length}
		var prims []Primitive
		prims = appendBorder(prims, params, body, bar)

		progress := progressPixels(params, bar, length, unit)
		dir := Rect{X: body.X, Y: body.Y + length, Height: -length}
		if bar.reverse {
			progress = length - progress
			dir = Rect{X: body.X, Y: body.Y, Height: length}
		}

		// Lower part grows upward from the bottom edge.
		lower := Rect{X: body.X, Y: body.Y + length - progress, Width: thickness, Height: progress}
		upper := Rect{X: body.X, Y: body.Y, Width: thickness, Height: length - progress}
		prims = appendRegions(prims, bar, lower, upper, dir)

		if params.Ticks() && unit > 0 && !body.Empty() {
			for ty := body.Y + unit - params.TicksGap; ty <= body.Y+length-params.TicksGap; ty += unit {
				prims = append(prims, FilledRect{
					Rect:  Rect{X: body.X, Y: ty, Width: thickness, Height: params.TicksGap},
					Color: bar.colors.BG,
				})
			}
		}

		plan.Bars = append(plan.Bars, BarPlan{Title: bar.title, Body: body, Primitives: prims})
		x += thickness + params.Gap + 2*dec
	}
}

// layoutHorizontal stacks bars top to bottom; each fills left to right.
func layoutHorizontal(plan *Plan, params Params, bars []*Bar, available Size) {
	n := len(bars)
	dec := params.decoration()
	unit, length := params.tickUnit(params.Width - 2*dec)
	thickness := roundHalfUp((float64(available.Height)*params.Height -
		float64(n*2*dec) - float64(params.Gap*(n-1))) / float64(n))

	x := plan.Bounds.X + dec
	y := bodyTop(params, plan.Bounds, available)

	for _, bar := range bars {
		body := Rect{X: x, Y: y, Width: length, Height: thickness}
		var prims []Primitive
		prims = appendBorder(prims, params, body, bar)

		progress := progressPixels(params, bar, length, unit)
		dir := Rect{X: body.X, Y: body.Y, Width: length}
		if bar.reverse {
			progress = length - progress
			dir = Rect{X: body.X + length, Y: body.Y, Width: -length}
		}

		left := Rect{X: body.X, Y: body.Y, Width: progress, Height: thickness}
		right := Rect{X: body.X + progress, Y: body.Y, Width: length - progress, Height: thickness}
		prims = appendRegions(prims, bar, left, right, dir)

		if params.Ticks() && unit > 0 && !body.Empty() {
			for tx := body.X + unit - params.TicksGap; tx <= body.X+length-params.TicksGap; tx += unit {
				prims = append(prims, FilledRect{
					Rect:  Rect{X: tx, Y: body.Y, Width: params.TicksGap, Height: thickness},
					Color: bar.colors.BG,
				})
			}
		}

		plan.Bars = append(plan.Bars, BarPlan{Title: bar.title, Body: body, Primitives: prims})
		y += thickness + params.Gap + 2*dec
	}
}

// progressPixels converts a bar's fraction into filled pixels along a fill
// axis of the given length. In ticks mode the fill snaps to whole ticks.
func progressPixels(params Params, bar *Bar, length, unit int) int {
	if params.Ticks() {
		on := roundHalfUp(float64(params.TicksCount) * bar.Fraction())
		if on <= 0 || unit <= 0 {
			return 0
		}
		return on*unit - params.TicksGap
	}
	return roundHalfUp(float64(length) * bar.Fraction())
}

// appendBorder emits the background under the border and the border ring
// around body. Nothing is emitted when the border width is zero.
func appendBorder(prims []Primitive, params Params, body Rect, bar *Bar) []Primitive {
	if params.BorderWidth <= 0 {
		return prims
	}
	dec := params.decoration()
	outer := Rect{
		X:      body.X - dec,
		Y:      body.Y - dec,
		Width:  body.Width + 2*dec,
		Height: body.Height + 2*dec,
	}
	if outer.Empty() {
		return prims
	}
	if params.BorderPadding > 0 {
		prims = append(prims, FilledRect{Rect: outer, Color: bar.colors.BG})
	}
	return append(prims, StrokeRect{Rect: outer, Width: params.BorderWidth, Color: bar.colors.BorderColor})
}

// appendRegions emits the progress region and the remainder. A forward bar
// paints progress with the gradient and the remainder with fg_off; a
// reversed bar swaps the two, so the gradient always covers the value.
func appendRegions(prims []Primitive, bar *Bar, progress, remainder, dir Rect) []Primitive {
	if !progress.Empty() {
		if bar.reverse {
			prims = append(prims, FilledRect{Rect: progress, Color: bar.colors.FGOff})
		} else {
			prims = append(prims, gradient(bar, progress, dir))
		}
	}
	if !remainder.Empty() {
		if bar.reverse {
			prims = append(prims, gradient(bar, remainder, dir))
		} else {
			prims = append(prims, FilledRect{Rect: remainder, Color: bar.colors.FGOff})
		}
	}
	return prims
}

func gradient(bar *Bar, r, dir Rect) GradientRect {
	return GradientRect{
		Rect:      r,
		Direction: dir,
		Start:     bar.colors.FG,
		Mid:       cloneColor(bar.colors.FGCenter),
		End:       cloneColor(bar.colors.FGEnd),
	}
}

// roundHalfUp rounds by adding 0.5 and truncating toward zero.
func roundHalfUp(v float64) int {
	return int(v + 0.5)
}
