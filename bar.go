package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Epsilon is the smallest gap kept between a bar's minimum and maximum.
// A range update that would leave max_value ≤ min_value moves max_value to
// min_value + Epsilon instead of being rejected.
const Epsilon = 1e-4

// Default range of a newly created bar.
const (
	DefaultMinValue = 0.0
	DefaultMaxValue = 100.0
)

// BarColors holds the colors of one bar.
// FGCenter and FGEnd are optional gradient stops; nil means absent.
type BarColors struct {
	FG          gg.RGBA  // base fill, gradient start
	FGOff       gg.RGBA  // unfilled region
	BG          gg.RGBA  // background and tick gaps
	BorderColor gg.RGBA  // border ring
	FGCenter    *gg.RGBA // gradient stop at the middle of the bar
	FGEnd       *gg.RGBA // gradient stop at the end of the bar
}

// HasGradient reports whether at least one optional gradient stop is set.
func (c BarColors) HasGradient() bool {
	return c.FGCenter != nil || c.FGEnd != nil
}

// Bar is a single gauge of a Group.
//
// A Bar always satisfies min < max and min ≤ value ≤ max. Bars are created
// and owned by a Bars collection; their title never changes.
type Bar struct {
	title   string
	min     float64
	max     float64
	value   float64
	reverse bool
	colors  BarColors
}

func newBar(title string, theme Theme) *Bar {
	return &Bar{
		title: title,
		min:   DefaultMinValue,
		max:   DefaultMaxValue,
		colors: BarColors{
			FG:          theme.FG,
			FGOff:       theme.BG,
			BG:          theme.BG,
			BorderColor: theme.FG,
		},
	}
}

// Title returns the bar's identifying title.
func (b *Bar) Title() string { return b.title }

// Min returns the value at or below which the bar is empty.
func (b *Bar) Min() float64 { return b.min }

// Max returns the value at or above which the bar is full.
func (b *Bar) Max() float64 { return b.max }

// Value returns the current value, always within [Min, Max].
func (b *Bar) Value() float64 { return b.value }

// Reverse reports whether the bar fills from its high end.
func (b *Bar) Reverse() bool { return b.reverse }

// Colors returns a copy of the bar's colors. The optional stops are copied
// too, so the result does not alias the bar.
func (b *Bar) Colors() BarColors {
	c := b.colors
	c.FGCenter = cloneColor(c.FGCenter)
	c.FGEnd = cloneColor(c.FGEnd)
	return c
}

// Fraction returns (value − min) / (max − min), in [0, 1].
func (b *Bar) Fraction() float64 {
	return (b.value - b.min) / (b.max - b.min)
}

// SetValue stores v clamped into [Min, Max]. NaN is ignored.
func (b *Bar) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	b.value = clamp(v, b.min, b.max)
}

// SetRange updates the bounds that are non-nil, min first.
// If the result would leave max ≤ min, max becomes min + Epsilon, or the
// next float64 above min when Epsilon is too small to change it.
// The current value is then clamped into the new range.
// Non-finite bounds are ignored. It reports whether max had to be corrected.
func (b *Bar) SetRange(minValue, maxValue *float64) (nudged bool) {
	if minValue != nil && finite(*minValue) {
		b.min = *minValue
	}
	if maxValue != nil && finite(*maxValue) {
		b.max = *maxValue
	}
	if b.max <= b.min {
		b.max = b.min + Epsilon
		// Epsilon is lost in the float64 spacing of large bounds.
		if b.max <= b.min {
			b.max = math.Nextafter(b.min, math.Inf(1))
		}
		nudged = true
	}
	b.value = clamp(b.value, b.min, b.max)
	return nudged
}

// SetReverse sets the fill direction.
func (b *Bar) SetReverse(reverse bool) { b.reverse = reverse }

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func cloneColor(c *gg.RGBA) *gg.RGBA {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
