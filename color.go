package gauge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrInvalidColor is returned by a ColorResolver when a color specification
// cannot be turned into a color.
var ErrInvalidColor = errors.New("gauge: invalid color")

// ColorResolver turns a color specification string into a color.
//
// Groups absorb resolution failures: a color property whose specification
// does not resolve keeps its previous value.
type ColorResolver interface {
	ResolveColor(spec string) (gg.RGBA, error)
}

// ColorResolverFunc adapts an ordinary function to the ColorResolver interface.
type ColorResolverFunc func(spec string) (gg.RGBA, error)

// ResolveColor calls f(spec).
func (f ColorResolverFunc) ResolveColor(spec string) (gg.RGBA, error) {
	return f(spec)
}

// NamedColors is the default ColorResolver. It accepts hex specifications
// ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA") and SVG/X11 color names
// matched case-insensitively ("SteelBlue", "steelblue").
type NamedColors struct{}

// ResolveColor implements ColorResolver.
func (NamedColors) ResolveColor(spec string) (gg.RGBA, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return gg.RGBA{}, fmt.Errorf("%w: empty specification", ErrInvalidColor)
	}
	if spec[0] == '#' {
		return parseHexColor(spec[1:])
	}
	name := strings.ReplaceAll(cases.Fold().String(spec), " ", "")
	if c, ok := colornames.Map[name]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, spec)
}

// parseHexColor is a strict variant of gg.Hex: it rejects malformed digits
// and lengths instead of falling back to black.
func parseHexColor(hex string) (gg.RGBA, error) {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: bad hex length in %q", ErrInvalidColor, "#"+hex)
	}
	if _, err := strconv.ParseUint(hex, 16, 64); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: bad hex digit in %q", ErrInvalidColor, "#"+hex)
	}
	return gg.Hex(hex), nil
}

// Theme is the snapshot of default colors a new bar inherits.
// A bar's fg and border color start as FG; its bg and fg_off start as BG.
type Theme struct {
	FG gg.RGBA
	BG gg.RGBA
}

// DefaultTheme returns the theme used when a Group is created without WithTheme.
func DefaultTheme() Theme {
	return Theme{
		FG: gg.Hex("#eeeeee"),
		BG: gg.Hex("#222222"),
	}
}
