// Package cmd implements the paneui CLI commands.
//
// The root command loads configuration once, configures logging and error
// reporting, and dispatches to demo, scan and version.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-drift/paneui/cmd/paneui/internal/config"
	uierrors "github.com/go-drift/paneui/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	theme      string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "paneui",
		Short: "PaneUI - retained-mode window widgets and layout diagnostics",
		Long: `PaneUI builds draggable windows of sections and controls on a node host
and scans the resulting trees for common layout mistakes.

Use "paneui <command> --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "paneui version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $HOME/.config/paneui/config.yaml)")
	flags.StringVar(&a.theme, "theme", "", "theme YAML file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newScanCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}

// load reads configuration, applies flag overrides, and installs logging.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = a.theme
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return a.setLogger(cmd.ErrOrStderr())
}

// setLogger routes slog and reported UI errors to w at the configured level.
func (a *app) setLogger(w io.Writer) error {
	level, err := config.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	uierrors.SetHandler(&uierrors.LogHandler{Logger: a.logger, Verbose: level <= slog.LevelDebug})
	return nil
}
