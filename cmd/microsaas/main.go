package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/microsaas/console/internal/logging"
	"github.com/microsaas/console/internal/shell"
	"github.com/microsaas/console/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "microsaas",
		Short: "MicroSaaS console",
		Long: `MicroSaaS console: a sidebar, a header and five pages
(Dashboard, Templates, Data Sources, Tools, Settings).

Without a subcommand the console runs in the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cfg)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("MicroSaaS console\n  Version: %s\n  Commit:  %s\n  Built:   %s\n", version, commit, buildTime))
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/microsaas/config.yml)")

	root.AddCommand(
		newServeCmd(&configPath),
		newLayoutCmd(),
	)
	return root
}

func runTUI(cfg cliConfig) error {
	logger, closeLog, err := logging.New(cfg.logging(), logging.SinkDiscard)
	if err != nil {
		return err
	}
	defer closeLog()

	dashboard := tui.NewDashboardModel(shell.New(), tui.Options{
		NarrowWidth:        cfg.NarrowWidth,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Mouse:              cfg.Mouse,
		Version:            version,
		Logger:             logger,
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	logger.Info("starting tui", zap.String("version", version))
	p := tea.NewProgram(dashboard, opts...)
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
