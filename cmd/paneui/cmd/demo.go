package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-drift/paneui/cmd/paneui/internal/config"
	"github.com/go-drift/paneui/cmd/paneui/internal/demo"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host/memhost"
	"github.com/go-drift/paneui/pkg/host/termhost"
	"github.com/go-drift/paneui/pkg/paneui"
)

// ErrNotTerminal is returned by demo when stdout is not a terminal.
var ErrNotTerminal = errors.New("demo needs an interactive terminal")

// Terminal probes, replaced in tests.
var (
	isTerminal   = term.IsTerminal
	terminalSize = term.GetSize
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		title  string
		stress int
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the demo window in the terminal",
		Long: `Open a window with one of each control in the terminal. Drag the title
bar to move it, click controls to use them, and press q to quit.

Callback activity is logged to demo.log_file when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("title") {
				a.cfg.Demo.Title = title
			}
			if cmd.Flags().Changed("stress") {
				a.cfg.Scan.Stress = stress
			}
			return a.runDemo(cmd)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "window title")
	cmd.Flags().IntVar(&stress, "stress", 0, "add N extra buttons to the demo window")
	return cmd
}

func (a *app) runDemo(cmd *cobra.Command) error {
	fd := int(os.Stdout.Fd())
	if !isTerminal(fd) {
		return ErrNotTerminal
	}
	cols, rows, err := terminalSize(fd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	logger, closeLog, err := a.demoLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	th, err := a.loadTheme()
	if err != nil {
		return err
	}
	h := memhost.New(memhost.WithViewport(graphics.Size{
		Width:  float64(cols * termhost.CellWidth),
		Height: float64((rows - 1) * termhost.CellHeight),
	}))
	lib, err := paneui.Create(h, paneui.DefaultName, paneui.WithTheme(th), paneui.WithLogger(logger))
	if err != nil {
		return err
	}
	defer lib.Destroy()

	if _, err := demo.Build(lib, demo.Options{
		Title:  a.cfg.Demo.Title,
		Stress: a.cfg.Scan.Stress,
		Logger: logger,
	}); err != nil {
		return err
	}
	return termhost.Run(cmd.Context(), h, termhost.WithLogger(logger))
}

// demoLogger writes to the configured log file. The terminal belongs to the
// UI, so without a file logs are discarded.
func (a *app) demoLogger() (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if a.cfg.Demo.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(a.cfg.Demo.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open demo log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil
}
