package cli

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/config"
)

// drawLegend writes each bar title over its body, centered, in the theme
// foreground color.
func drawLegend(dc *gg.Context, cfg *config.Config, plan gauge.Plan) error {
	if len(plan.Bars) == 0 {
		return nil
	}
	theme, err := cfg.ResolveTheme(gauge.NamedColors{})
	if err != nil {
		return err
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("legend font: %w", err)
	}
	defer func() { _ = source.Close() }()

	size := float64(min(plan.Bars[0].Body.Width, plan.Bars[0].Body.Height)) * 0.8
	if size < 6 {
		gauge.Logger().Debug("legend skipped: bars too thin", "size", size)
		return nil
	}
	dc.SetFont(source.Face(size))
	dc.SetColor(theme.FG)
	for _, bp := range plan.Bars {
		b := bp.Body
		dc.DrawStringAnchored(bp.Title,
			float64(b.X)+float64(b.Width)/2, float64(b.Y)+float64(b.Height)/2, 0.5, 0.5)
	}
	return nil
}
