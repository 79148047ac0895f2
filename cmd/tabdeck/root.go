package main

import (
	"context"
	"io"

	"tabdeck/internal/config"
	"tabdeck/internal/trace"
	"tabdeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all commands.
type options struct {
	configPath string
	defaultTab string
	logFile    string
	logLevel   string
	noMouse    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tabdeck",
		Short: "Tabbed panels in the terminal",
		Long: `tabdeck shows a row of tabs and the panel of the active tab.
Click a tab to switch panels; press q to quit.

Tabs are read from $HOME/.config/tabdeck/config.toml (or --config).
Without a config file three demo tabs are shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/tabdeck/config.toml)")
	flags.StringVar(&opts.defaultTab, "default-tab", "", "id of the tab active at start")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	cmd.AddCommand(newRenderCmd(opts))
	return cmd
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("default-tab") {
		cfg.DefaultTab = opts.defaultTab
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	return cfg, nil
}

func runInteractive(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// The program owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	tabs := buildTabs(cfg)
	tabs.Subscribe(func(from, to string) {
		logger.Info("active tab changed", "from", from, "to", to)
	})

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	}
	if exporter != nil {
		tabs.Subscribe(exporter.ObserveTabChange)
		defer func() {
			if err := exporter.Shutdown(context.Background()); err != nil {
				logger.Warn("trace shutdown", "err", err)
			}
		}()
	}

	var zones ui.Zones
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		zones = ui.NewZones()
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	app := ui.NewAppModel(tabs, zones)
	app.Title = cfg.UI.Title

	logger.Info("starting", "tabs", len(cfg.Tabs), "default", cfg.DefaultTab, "mouse", cfg.UI.Mouse)
	if _, err := tea.NewProgram(app.AsTeaModel(), progOpts...).Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	logger.Info("exited", "active", tabs.ActiveTab())
	return nil
}

// newLogger builds the command logger. When cfg.File is empty it writes to
// fallback. The returned func closes the log file, if any.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		level = l
	}

	w, closeFn := fallback, func() error { return nil }
	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "tabdeck",
		Level:           level,
		ReportTimestamp: cfg.File != "",
	})
	return logger, closeFn, nil
}
