package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var active string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the tabs and exit",
		Long: `render draws the configured tabs once, without a terminal UI,
and writes the frame to stdout. Use --active to pick the tab shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			tabs := buildTabs(cfg)
			if cmd.Flags().Changed("active") {
				tabs.SetActiveTab(active)
			}
			out := tabs.View()
			if err := tabs.Err(); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			logger.Debug("rendered frame",
				"active", tabs.ActiveTab(),
				"panels", tabs.Frame().VisiblePanels(),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&active, "active", "", "id of the tab to show")
	return cmd
}
