package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/gauge/backend"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw the group in the terminal",
	Long: `Preview renders the group with the terminal target: one pixel per
half character cell. Keep the surface small (e.g. 80x24).`,
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
		t, err := backend.New(backend.TargetTerm, cfg.Surface.Width, cfg.Surface.Height)
		if err != nil {
			return err
		}
		if _, err := g.Render(t, t.Size(), cfg.Layout.Offset); err != nil {
			return err
		}
		return t.Encode(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
