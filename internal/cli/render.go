package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/backend"
	"github.com/gogpu/gauge/backend/raster"
	_ "github.com/gogpu/gauge/backend/record"
	_ "github.com/gogpu/gauge/backend/term"
	"github.com/gogpu/gauge/config"
)

var (
	outputPath string
	targetName string
	legend     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the group to a PNG file",
	Long: fmt.Sprintf(`Render lays out the group described by --config on its surface and
writes the result to --output.

Targets: %s`, strings.Join(backend.Available(), ", ")),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		g, err := cfg.NewGroup()
		if err != nil {
			return err
		}
		return renderToFile(cfg, g, targetName, outputPath)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "gauge.png", "output file")
	renderCmd.Flags().StringVarP(&targetName, "target", "t", backend.TargetRaster, "render target")
	renderCmd.Flags().BoolVar(&legend, "legend", false, "draw bar titles (raster target only)")
	rootCmd.AddCommand(renderCmd)
}

// renderToFile draws g on a fresh target and writes the encoded output.
func renderToFile(cfg *config.Config, g *gauge.Group, name, path string) error {
	t, err := backend.New(name, cfg.Surface.Width, cfg.Surface.Height)
	if err != nil {
		return err
	}
	used, err := g.Render(t, t.Size(), cfg.Layout.Offset)
	if err != nil {
		return err
	}
	if legend {
		rt, ok := t.(*raster.Target)
		if !ok {
			return fmt.Errorf("--legend needs the %s target, got %s", backend.TargetRaster, t.Name())
		}
		if err := drawLegend(rt.Context(), cfg, g.Plan(t.Size(), cfg.Layout.Offset)); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	gauge.Logger().Info("rendered", "file", path, "target", t.Name(), "width", used, "bars", g.Len())
	return nil
}
