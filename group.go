package gauge

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/gogpu/gg"
)

// Option configures a Group during creation.
//
// Example:
//
//	g := gauge.NewGroup(
//	    gauge.WithTheme(gauge.Theme{FG: gg.Hex("#89b4fa"), BG: gg.Hex("#1e1e2e")}),
//	    gauge.WithInvalidate(func() { host.Redraw() }),
//	)
type Option func(*groupOptions)

type groupOptions struct {
	theme      Theme
	resolver   ColorResolver
	invalidate func()
	align      Alignment
	params     Params
}

func defaultGroupOptions() groupOptions {
	return groupOptions{
		theme:    DefaultTheme(),
		resolver: NamedColors{},
		params:   DefaultParams(),
	}
}

// WithTheme sets the colors new bars inherit.
func WithTheme(t Theme) Option {
	return func(o *groupOptions) {
		o.theme = t
	}
}

// WithResolver sets the resolver for color specifications.
// A nil resolver keeps the default NamedColors.
func WithResolver(r ColorResolver) Option {
	return func(o *groupOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithInvalidate sets the function called after every configuration
// change, so the host can schedule a redraw.
func WithInvalidate(fn func()) Option {
	return func(o *groupOptions) {
		o.invalidate = fn
	}
}

// WithAlign sets the horizontal alignment of the group.
func WithAlign(a Alignment) Option {
	return func(o *groupOptions) {
		o.align = a
	}
}

// WithParams replaces the default geometry.
func WithParams(p Params) Option {
	return func(o *groupOptions) {
		o.params = p
	}
}

// Group is a multi-bar gauge: shared geometry plus an ordered set of bars.
//
// A Group is not safe for concurrent use. Configuration updates and render
// passes must be serialized by the host, typically on its event loop.
type Group struct {
	params     Params
	bars       *Bars
	resolver   ColorResolver
	invalidate func()
	align      Alignment
}

// NewGroup creates an empty group.
func NewGroup(opts ...Option) *Group {
	o := defaultGroupOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Group{
		params:     o.params,
		bars:       NewBars(o.theme),
		resolver:   o.resolver,
		invalidate: o.invalidate,
		align:      o.align,
	}
}

// Params returns the current geometry.
func (g *Group) Params() Params { return g.params }

// Align returns the horizontal alignment.
func (g *Group) Align() Alignment { return g.align }

// SetAlign changes the horizontal alignment.
func (g *Group) SetAlign(a Alignment) {
	g.align = a
	g.changed()
}

// SetProperties applies the present fields of p to the group geometry.
func (g *Group) SetProperties(p GroupProps) {
	p.apply(&g.params)
	g.changed()
}

// SetBarProperties applies the present fields of p to the bar with the
// given title, creating the bar if needed.
//
// Colors that fail to resolve keep their previous value; an optional
// gradient stop that was absent stays absent. Range conflicts are
// corrected as described for Bar.SetRange. None of these are errors.
func (g *Group) SetBarProperties(title string, p BarProps) {
	bar := g.findOrCreate(title)
	log := Logger().With(slog.String("bar", title))

	c := &bar.colors
	g.resolveInto(log, "fg", p.FG, &c.FG)
	g.resolveInto(log, "bg", p.BG, &c.BG)
	g.resolveInto(log, "fg_off", p.FGOff, &c.FGOff)
	g.resolveInto(log, "border_color", p.BorderColor, &c.BorderColor)
	c.FGCenter = g.resolveOptional(log, "fg_center", p.FGCenter, c.FGCenter)
	c.FGEnd = g.resolveOptional(log, "fg_end", p.FGEnd, c.FGEnd)

	if p.MinValue != nil || p.MaxValue != nil {
		if bar.SetRange(p.MinValue, p.MaxValue) {
			log.Debug("gauge: max_value raised above min_value",
				slog.Float64("min", bar.min), slog.Float64("max", bar.max))
		}
	}
	if p.Reverse != nil {
		bar.SetReverse(*p.Reverse)
	}
	g.changed()
}

// AddValue stores v, clamped into the bar's range, as the current value of
// the bar with the given title, creating the bar if needed.
func (g *Group) AddValue(title string, v float64) {
	g.findOrCreate(title).SetValue(v)
	g.changed()
}

// Bar returns the bar with the given title, or nil.
func (g *Group) Bar(title string) *Bar {
	return g.bars.Find(title)
}

// Bars iterates the bars in insertion order.
func (g *Group) Bars() iter.Seq[*Bar] {
	return g.bars.All()
}

// Len returns the number of bars.
func (g *Group) Len() int { return g.bars.Len() }

// Plan computes the render plan for the given drawing area.
func (g *Group) Plan(available Size, offset int) Plan {
	return Layout(g.params, slices.Collect(g.bars.All()), available, g.align, offset)
}

// Render lays the group out in available and draws it with b.
// It returns the width the group occupies.
func (g *Group) Render(b Backend, available Size, offset int) (int, error) {
	plan := g.Plan(available, offset)
	Logger().Debug("gauge: render",
		slog.Int("bars", len(plan.Bars)),
		slog.String("bounds", plan.Bounds.String()))
	return Render(b, plan)
}

// Close releases every bar. The group stays usable and empty.
func (g *Group) Close() {
	g.bars.Clear()
	g.changed()
}

func (g *Group) findOrCreate(title string) *Bar {
	bar, created := g.bars.FindOrCreate(title)
	if created {
		Logger().Debug("gauge: bar created", slog.String("bar", title))
	}
	return bar
}

func (g *Group) resolveInto(log *slog.Logger, key string, spec *string, dst *gg.RGBA) {
	if spec == nil {
		return
	}
	c, err := g.resolver.ResolveColor(*spec)
	if err != nil {
		log.Debug("gauge: color ignored", slog.String("key", key), slog.Any("error", err))
		return
	}
	*dst = c
}

func (g *Group) resolveOptional(log *slog.Logger, key string, spec *string, prev *gg.RGBA) *gg.RGBA {
	if spec == nil {
		return prev
	}
	c, err := g.resolver.ResolveColor(*spec)
	if err != nil {
		log.Debug("gauge: color ignored", slog.String("key", key), slog.Any("error", err))
		return prev
	}
	return &c
}

func (g *Group) changed() {
	if g.invalidate != nil {
		g.invalidate()
	}
}
