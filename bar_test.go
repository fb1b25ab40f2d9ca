package gauge

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewBarDefaults(t *testing.T) {
	theme := Theme{FG: gg.Red, BG: gg.Blue}
	b := newBar("cpu", theme)

	if b.Title() != "cpu" {
		t.Errorf("Title() = %q, want %q", b.Title(), "cpu")
	}
	if b.Min() != 0 || b.Max() != 100 || b.Value() != 0 {
		t.Errorf("range = [%v, %v] value %v, want [0, 100] value 0", b.Min(), b.Max(), b.Value())
	}
	if b.Reverse() {
		t.Error("Reverse() = true, want false")
	}
	c := b.Colors()
	if c.FG != gg.Red || c.BorderColor != gg.Red {
		t.Errorf("fg/border = %v/%v, want theme fg", c.FG, c.BorderColor)
	}
	if c.BG != gg.Blue || c.FGOff != gg.Blue {
		t.Errorf("bg/fg_off = %v/%v, want theme bg", c.BG, c.FGOff)
	}
	if c.HasGradient() {
		t.Error("new bar has gradient stops")
	}
}

func TestBarSetValueClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 42, 42},
		{"below", -5, 0},
		{"above", 250, 100},
		{"at min", 0, 0},
		{"at max", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBar("x", DefaultTheme())
			b.SetValue(tt.in)
			if b.Value() != tt.want {
				t.Errorf("SetValue(%v): Value() = %v, want %v", tt.in, b.Value(), tt.want)
			}
		})
	}
}

func TestBarSetValueIgnoresNaN(t *testing.T) {
	b := newBar("x", DefaultTheme())
	b.SetValue(30)
	b.SetValue(math.NaN())
	if b.Value() != 30 {
		t.Errorf("Value() = %v after NaN, want 30", b.Value())
	}
}

func TestBarSetRange(t *testing.T) {
	f := Ptr[float64]

	tests := []struct {
		name       string
		value      float64
		min, max   *float64
		wantMin    float64
		wantMax    float64
		wantValue  float64
		wantNudged bool
	}{
		{"max equal to min", 50, nil, f(0), 0, Epsilon, Epsilon, true},
		{"both equal", 50, f(10), f(10), 10, 10.0001, 10.0001, true},
		{"min above max", 50, f(200), nil, 200, 200 + Epsilon, 200, true},
		{"narrow clamps value down", 80, f(0), f(60), 0, 60, 60, false},
		{"raise min clamps value up", 5, f(20), nil, 20, 100, 20, false},
		{"no change", 5, nil, nil, 0, 100, 5, false},
		{"nan ignored", 5, f(math.NaN()), f(math.Inf(1)), 0, 100, 5, false},
		{"huge equal bounds", 50, f(2e12), f(2e12), 2e12, math.Nextafter(2e12, math.Inf(1)), 2e12, true},
		{"huge negative equal bounds", 50, f(-1e15), f(-1e15), -1e15, math.Nextafter(-1e15, math.Inf(1)), math.Nextafter(-1e15, math.Inf(1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBar("x", DefaultTheme())
			b.SetValue(tt.value)
			nudged := b.SetRange(tt.min, tt.max)

			if nudged != tt.wantNudged {
				t.Errorf("nudged = %v, want %v", nudged, tt.wantNudged)
			}
			if math.Abs(b.Min()-tt.wantMin) > 1e-9 || math.Abs(b.Max()-tt.wantMax) > 1e-9 {
				t.Errorf("range = [%v, %v], want [%v, %v]", b.Min(), b.Max(), tt.wantMin, tt.wantMax)
			}
			if math.Abs(b.Value()-tt.wantValue) > 1e-9 {
				t.Errorf("Value() = %v, want %v", b.Value(), tt.wantValue)
			}
		})
	}
}

func TestBarInvariantsHoldAfterUpdates(t *testing.T) {
	b := newBar("x", DefaultTheme())
	updates := []struct{ min, max, value float64 }{
		{0, 100, 50}, {60, 10, 70}, {-5, -5, 3}, {1e6, 1, -1e6}, {3, 3.00001, 3.5}, {2e12, 2e12, 5}, {-1e15, -1e15, 0}, {0, 1, 0.5},
	}
	for _, u := range updates {
		b.SetRange(Ptr(u.min), Ptr(u.max))
		b.SetValue(u.value)
		if !(b.Min() < b.Max()) {
			t.Fatalf("after %+v: min %v !< max %v", u, b.Min(), b.Max())
		}
		if b.Value() < b.Min() || b.Value() > b.Max() {
			t.Fatalf("after %+v: value %v outside [%v, %v]", u, b.Value(), b.Min(), b.Max())
		}
		if f := b.Fraction(); f < 0 || f > 1 {
			t.Fatalf("after %+v: Fraction() = %v", u, f)
		}
	}
}

func TestBarFraction(t *testing.T) {
	b := newBar("x", DefaultTheme())
	b.SetRange(Ptr(50.0), Ptr(56.0))
	b.SetValue(53)
	if got := b.Fraction(); got != 0.5 {
		t.Errorf("Fraction() = %v, want 0.5", got)
	}
}

func TestBarColorsDoesNotAlias(t *testing.T) {
	b := newBar("x", DefaultTheme())
	center := gg.Green
	b.colors.FGCenter = &center

	c := b.Colors()
	*c.FGCenter = gg.Black
	if *b.colors.FGCenter != gg.Green {
		t.Error("mutating Colors().FGCenter changed the bar")
	}
}
