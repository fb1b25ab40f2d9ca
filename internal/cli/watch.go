package cli

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/backend"
	"github.com/gogpu/gauge/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render whenever the configuration file changes",
	Long: `Watch renders the group once, then renders it again every time the
--config file changes, until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return errors.New("watch needs --config")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		updates, err := config.Watch(ctx, configPath)
		if err != nil {
			return err
		}

		var w watcher
		for {
			select {
			case <-ctx.Done():
				return nil
			case cfg := <-updates:
				if err := setupLogging(cfg); err != nil {
					return err
				}
				dirty, err := w.update(cfg)
				if err != nil {
					if w.g == nil {
						return err
					}
					gauge.Logger().Warn("reload skipped", "error", err)
					continue
				}
				if !dirty {
					continue
				}
				if err := renderToFile(cfg, w.g, targetName, outputPath); err != nil {
					gauge.Logger().Warn("render failed", "error", err)
				}
			}
		}
	},
}

// watcher holds the group re-rendered by the watch command.
type watcher struct {
	g     *gauge.Group
	theme gauge.Theme
	dirty bool
}

// update applies cfg and reports whether the group needs a new render.
// A theme change replaces the group, since bars take their default
// colors from the theme when they are created.
func (w *watcher) update(cfg *config.Config) (bool, error) {
	theme, err := cfg.ResolveTheme(gauge.NamedColors{})
	if err != nil {
		return false, err
	}
	if w.g == nil || theme != w.theme {
		if w.g != nil {
			w.g.Close()
		}
		w.theme = theme
		w.g = gauge.NewGroup(gauge.WithTheme(theme), gauge.WithInvalidate(func() { w.dirty = true }))
		w.dirty = true
	}
	cfg.Apply(w.g)
	dirty := w.dirty
	w.dirty = false
	return dirty, nil
}

func init() {
	watchCmd.Flags().StringVarP(&outputPath, "output", "o", "gauge.png", "output file")
	watchCmd.Flags().StringVarP(&targetName, "target", "t", backend.TargetRaster, "render target")
	rootCmd.AddCommand(watchCmd)
}
