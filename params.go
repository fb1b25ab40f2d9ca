package gauge

// Params is the geometry shared by every bar of a group.
type Params struct {
	// Width is the pixel footprint along the packing axis.
	Width int
	// Height is the fraction (0-1) of the available height used by bar bodies.
	Height float64
	// Gap is the distance in pixels between adjacent bars.
	Gap int
	// BorderWidth is the width of the border ring. Zero disables borders.
	BorderWidth int
	// BorderPadding is the space between the border ring and the bar body.
	BorderPadding int
	// TicksCount is the number of discrete ticks. Zero selects continuous fill.
	TicksCount int
	// TicksGap is the width of the separator between ticks.
	TicksGap int
	// Vertical places bars side by side and fills them bottom to top.
	Vertical bool
}

// DefaultParams returns the parameters of a newly created group.
func DefaultParams() Params {
	return Params{
		Width:       80,
		Height:      0.80,
		Gap:         2,
		BorderWidth: 1,
		TicksGap:    1,
	}
}

// Ticks reports whether the fill axis is discretized.
func (p Params) Ticks() bool {
	return p.TicksCount > 0 && p.TicksGap > 0
}

// decoration is the space a border and its padding take on one side.
func (p Params) decoration() int {
	return p.BorderWidth + p.BorderPadding
}

// tickUnit returns the size of one tick plus its separator for a fill axis
// of the given length, and the length snapped to a whole number of ticks.
// Outside ticks mode the unit is zero and the length is unchanged.
func (p Params) tickUnit(length int) (unit, snapped int) {
	if !p.Ticks() {
		return 0, length
	}
	unit = (length + p.TicksGap) / p.TicksCount
	return unit, unit*p.TicksCount - p.TicksGap
}

// GroupProps is a partial update of a group's Params.
// A nil field leaves the corresponding parameter unchanged.
type GroupProps struct {
	Gap           *int
	TicksCount    *int
	TicksGap      *int
	BorderPadding *int
	BorderWidth   *int
	Width         *int
	Height        *float64
	Vertical      *bool
}

// apply merges the non-nil fields into p.
func (gp GroupProps) apply(p *Params) {
	setIf(&p.Gap, gp.Gap)
	setIf(&p.TicksCount, gp.TicksCount)
	setIf(&p.TicksGap, gp.TicksGap)
	setIf(&p.BorderPadding, gp.BorderPadding)
	setIf(&p.BorderWidth, gp.BorderWidth)
	setIf(&p.Width, gp.Width)
	setIf(&p.Height, gp.Height)
	setIf(&p.Vertical, gp.Vertical)
}

// BarProps is a partial update of one bar. Color fields hold color
// specifications for the group's ColorResolver. A nil field leaves the
// corresponding property unchanged.
type BarProps struct {
	FG          *string
	BG          *string
	FGOff       *string
	BorderColor *string
	FGCenter    *string
	FGEnd       *string
	MinValue    *float64
	MaxValue    *float64
	Reverse     *bool
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v. It is a convenience for building GroupProps
// and BarProps literals.
func Ptr[T any](v T) *T {
	return &v
}
