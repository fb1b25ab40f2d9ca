package gauge

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestNamedColorsResolve(t *testing.T) {
	tests := []struct {
		spec string
		want gg.RGBA
	}{
		{"#ff0000", gg.Red},
		{"#0000FF", gg.Blue},
		{"#fff", gg.White},
		{"#00000000", gg.Transparent},
		{"#f00f", gg.Red},
		{"  #000000 ", gg.Black},
		{"red", gg.Red},
		{"SteelBlue", gg.Hex("#4682b4")},
		{"steelblue", gg.Hex("#4682b4")},
		{"Steel Blue", gg.Hex("#4682b4")},
		{"WHITE", gg.White},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := NamedColors{}.ResolveColor(tt.spec)
			if err != nil {
				t.Fatalf("ResolveColor(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ResolveColor(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestNamedColorsInvalid(t *testing.T) {
	for _, spec := range []string{"", "   ", "#", "#12", "#12345", "#gggggg", "#12345z", "#+fff", "#ff_f", "#-fff", "notacolor", "#ff0000ff00"} {
		t.Run(spec, func(t *testing.T) {
			_, err := NamedColors{}.ResolveColor(spec)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ResolveColor(%q) error = %v, want ErrInvalidColor", spec, err)
			}
		})
	}
}

func TestColorResolverFunc(t *testing.T) {
	var called string
	r := ColorResolverFunc(func(spec string) (gg.RGBA, error) {
		called = spec
		return gg.Green, nil
	})
	got, err := r.ResolveColor("anything")
	if err != nil || got != gg.Green || called != "anything" {
		t.Errorf("ResolveColor() = %+v, %v (called with %q)", got, err, called)
	}
}

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()
	if th.FG != gg.Hex("#eeeeee") || th.BG != gg.Hex("#222222") {
		t.Errorf("DefaultTheme() = %+v", th)
	}
}
