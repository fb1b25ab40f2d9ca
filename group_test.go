package gauge

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func TestGroupDefaults(t *testing.T) {
	g := NewGroup()
	if g.Params() != DefaultParams() {
		t.Errorf("Params() = %+v, want %+v", g.Params(), DefaultParams())
	}
	if g.Align() != AlignLeft {
		t.Errorf("Align() = %v, want left", g.Align())
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestGroupInvalidateOnEveryChange(t *testing.T) {
	calls := 0
	g := NewGroup(WithInvalidate(func() { calls++ }))

	g.SetProperties(GroupProps{Width: Ptr(120)})
	g.SetBarProperties("cpu", BarProps{FG: Ptr("red")})
	g.AddValue("cpu", 10)
	g.SetAlign(AlignRight)

	if calls != 4 {
		t.Errorf("invalidate called %d times, want 4", calls)
	}

	// Rendering is not a change.
	g.Plan(Size{Width: 200, Height: 20}, 0)
	if calls != 4 {
		t.Errorf("Plan() triggered invalidate")
	}

	g.Close()
	if calls != 5 {
		t.Errorf("Close() did not invalidate: %d calls, want 5", calls)
	}
}

func TestGroupSetPropertiesPartial(t *testing.T) {
	g := NewGroup()
	g.SetProperties(GroupProps{TicksCount: Ptr(10), Vertical: Ptr(true)})

	want := DefaultParams()
	want.TicksCount = 10
	want.Vertical = true
	if g.Params() != want {
		t.Errorf("Params() = %+v, want %+v", g.Params(), want)
	}
}

func TestGroupAddValueCreatesBar(t *testing.T) {
	theme := Theme{FG: gg.Green, BG: gg.Black}
	g := NewGroup(WithTheme(theme))
	g.AddValue("cpu", 250)

	b := g.Bar("cpu")
	if b == nil {
		t.Fatal("Bar(cpu) = nil after AddValue")
	}
	if b.Min() != DefaultMinValue || b.Max() != DefaultMaxValue || b.Value() != 100 {
		t.Errorf("bar range/value = [%v, %v] %v, want [0, 100] 100", b.Min(), b.Max(), b.Value())
	}
	c := b.Colors()
	if c.FG != theme.FG || c.BorderColor != theme.FG || c.BG != theme.BG || c.FGOff != theme.BG {
		t.Errorf("colors = %+v, not inherited from theme %+v", c, theme)
	}
	if c.HasGradient() {
		t.Error("new bar has gradient stops")
	}
}

func TestGroupBarsKeepInsertionOrder(t *testing.T) {
	g := NewGroup()
	g.AddValue("b", 1)
	g.SetBarProperties("a", BarProps{})
	g.AddValue("b", 2)
	g.AddValue("c", 3)

	var titles []string
	for b := range g.Bars() {
		titles = append(titles, b.Title())
	}
	if want := []string{"b", "a", "c"}; !slices.Equal(titles, want) {
		t.Errorf("titles = %q, want %q", titles, want)
	}
}

func TestGroupColorFailureKeepsPrevious(t *testing.T) {
	g := NewGroup()
	g.SetBarProperties("cpu", BarProps{FG: Ptr("#ff0000"), FGEnd: Ptr("blue")})
	g.SetBarProperties("cpu", BarProps{FG: Ptr("not-a-color"), FGEnd: Ptr("#zzz")})

	c := g.Bar("cpu").Colors()
	if c.FG != gg.Red {
		t.Errorf("FG = %+v, want red kept", c.FG)
	}
	if c.FGEnd == nil || *c.FGEnd != gg.Blue {
		t.Errorf("FGEnd = %v, want blue kept", c.FGEnd)
	}
}

func TestGroupOptionalStopStaysAbsent(t *testing.T) {
	g := NewGroup()
	g.SetBarProperties("cpu", BarProps{FGCenter: Ptr("bogus")})
	if c := g.Bar("cpu").Colors(); c.FGCenter != nil {
		t.Errorf("FGCenter = %v, want nil", c.FGCenter)
	}
}

func TestGroupAllColorKeys(t *testing.T) {
	g := NewGroup()
	g.SetBarProperties("x", BarProps{
		FG:          Ptr("red"),
		BG:          Ptr("blue"),
		FGOff:       Ptr("black"),
		BorderColor: Ptr("white"),
		FGCenter:    Ptr("yellow"),
		FGEnd:       Ptr("lime"),
	})
	c := g.Bar("x").Colors()
	if c.FG != gg.Red || c.BG != gg.Blue || c.FGOff != gg.Black || c.BorderColor != gg.White {
		t.Errorf("colors = %+v", c)
	}
	if c.FGCenter == nil || *c.FGCenter != gg.Yellow || c.FGEnd == nil || *c.FGEnd != gg.Green {
		t.Errorf("stops = %v, %v", c.FGCenter, c.FGEnd)
	}
}

func TestGroupRangeNudge(t *testing.T) {
	g := NewGroup()
	g.SetBarProperties("x", BarProps{MinValue: Ptr(10.0), MaxValue: Ptr(10.0)})

	b := g.Bar("x")
	if b.Min() != 10 || b.Max() != 10.0001 {
		t.Errorf("range = [%v, %v], want [10, 10.0001]", b.Min(), b.Max())
	}
	if b.Value() < b.Min() || b.Value() > b.Max() {
		t.Errorf("value %v outside [%v, %v]", b.Value(), b.Min(), b.Max())
	}
}

func TestGroupReverse(t *testing.T) {
	g := NewGroup()
	g.SetBarProperties("x", BarProps{Reverse: Ptr(true)})
	if !g.Bar("x").Reverse() {
		t.Error("Reverse() = false after setting true")
	}
	g.SetBarProperties("x", BarProps{FG: Ptr("red")})
	if !g.Bar("x").Reverse() {
		t.Error("absent Reverse field changed the bar")
	}
}

func TestGroupCustomResolver(t *testing.T) {
	errNo := errors.New("no")
	r := ColorResolverFunc(func(spec string) (gg.RGBA, error) {
		if spec == "brand" {
			return gg.Magenta, nil
		}
		return gg.RGBA{}, errNo
	})
	g := NewGroup(WithResolver(r))
	g.SetBarProperties("x", BarProps{FG: Ptr("brand"), BG: Ptr("red")})

	c := g.Bar("x").Colors()
	if c.FG != gg.Magenta {
		t.Errorf("FG = %+v, want magenta", c.FG)
	}
	if c.BG != DefaultTheme().BG {
		t.Errorf("BG = %+v, want theme background kept", c.BG)
	}
}

func TestGroupNilResolverKeepsDefault(t *testing.T) {
	g := NewGroup(WithResolver(nil))
	g.SetBarProperties("x", BarProps{FG: Ptr("red")})
	if g.Bar("x").Colors().FG != gg.Red {
		t.Error("WithResolver(nil) replaced the default resolver")
	}
}

func TestGroupClose(t *testing.T) {
	g := NewGroup()
	g.AddValue("a", 1)
	g.AddValue("b", 2)
	g.Close()

	if g.Len() != 0 || g.Bar("a") != nil {
		t.Errorf("group not empty after Close: Len() = %d", g.Len())
	}
	g.AddValue("c", 3)
	if g.Len() != 1 {
		t.Errorf("Len() = %d after reuse, want 1", g.Len())
	}
}

func TestGroupPlanUsesAlign(t *testing.T) {
	g := NewGroup(WithParams(Params{Width: 50, Height: 1}), WithAlign(AlignRight))
	g.AddValue("a", 0)
	if got := g.Plan(Size{Width: 120, Height: 10}, 5).Bounds.X; got != 65 {
		t.Errorf("Bounds.X = %d, want 65", got)
	}
}

func TestGroupHugeEqualBoundsStillFill(t *testing.T) {
	g := NewGroup(WithParams(Params{Width: 80, Height: 1}))
	g.SetBarProperties("disk", BarProps{MinValue: Ptr(2e12), MaxValue: Ptr(2e12)})

	b := g.Bar("disk")
	if !(b.Min() < b.Max()) {
		t.Fatalf("range = [%v, %v], want min < max", b.Min(), b.Max())
	}
	if f := b.Fraction(); f != 0 {
		t.Fatalf("Fraction() = %v, want 0", f)
	}

	tests := []struct {
		name  string
		value float64
		want  PrimitiveType
	}{
		{"empty", 0, PrimFill},
		{"full", 3e12, PrimGradient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.AddValue("disk", tt.value)
			bp := g.Plan(Size{Width: 200, Height: 20}, 0).Bars[0]
			if len(bp.Primitives) != 1 {
				t.Fatalf("primitives = %+v, want one region", bp.Primitives)
			}
			p := bp.Primitives[0]
			if p.Type() != tt.want {
				t.Errorf("region type = %s, want %s", p.Type(), tt.want)
			}
			var r Rect
			switch p := p.(type) {
			case FilledRect:
				r = p.Rect
			case GradientRect:
				r = p.Rect
			}
			if r != bp.Body {
				t.Errorf("region %v does not cover body %v", r, bp.Body)
			}
		})
	}
}
