package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/paneui/cmd/paneui/internal/config"
	"github.com/go-drift/paneui/cmd/paneui/internal/demo"
	"github.com/go-drift/paneui/pkg/diagnostics"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host/memhost"
	"github.com/go-drift/paneui/pkg/paneui"
	"github.com/go-drift/paneui/pkg/theme"
)

// ErrFindings is returned by scan --strict when the report is not clean.
var ErrFindings = errors.New("diagnostics reported warnings or errors")

func newScanCmd(a *app) *cobra.Command {
	var (
		stress         int
		strict         bool
		format         string
		maxDescendants int
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Build the demo window headless and print diagnostics",
		Long: `Build the demo window on an in-memory host and scan it for layout
problems: missing sizes, out-of-range transparency, sub-pixel positions,
overflowing stacks, clipped text, missing glyphs, inert buttons and oversized
trees.

With --stress N the window gets N extra buttons, which is a quick way to see
the tree-size warning. With --strict the command fails when anything beyond
the clean OK entry is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("stress") {
				a.cfg.Scan.Stress = stress
			}
			if flags.Changed("strict") {
				a.cfg.Scan.Strict = strict
			}
			if flags.Changed("format") {
				a.cfg.Scan.Format = format
			}
			if flags.Changed("max-descendants") {
				a.cfg.Scan.MaxDescendants = maxDescendants
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runScan(cmd)
		},
	}
	cmd.Flags().IntVar(&stress, "stress", 0, "add N extra buttons to the demo window")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when warnings or errors are found")
	cmd.Flags().StringVar(&format, "format", config.FormatText, "output format: text or json")
	cmd.Flags().IntVar(&maxDescendants, "max-descendants", diagnostics.DefaultScanner.MaxDescendants, "node count above which the tree is flagged")
	return cmd
}

func (a *app) runScan(cmd *cobra.Command) error {
	th, err := a.loadTheme()
	if err != nil {
		return err
	}
	scanner := diagnostics.DefaultScanner
	scanner.MaxDescendants = a.cfg.Scan.MaxDescendants

	h := memhost.New(memhost.WithViewport(graphics.Size{Width: a.cfg.Viewport.Width, Height: a.cfg.Viewport.Height}))
	lib, err := paneui.Create(h, paneui.DefaultName,
		paneui.WithTheme(th),
		paneui.WithLogger(a.logger),
		paneui.WithScanner(scanner),
	)
	if err != nil {
		return err
	}
	defer lib.Destroy()

	if _, err := demo.Build(lib, demo.Options{
		Title:  a.cfg.Demo.Title,
		Stress: a.cfg.Scan.Stress,
		Logger: a.logger,
	}); err != nil {
		return err
	}
	report := lib.ScanDiagnostics(nil)

	out := cmd.OutOrStdout()
	switch a.cfg.Scan.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Summary string `json:"summary"`
			diagnostics.Report
		}{report.Summary(), report}); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	default:
		fmt.Fprint(out, renderReport(out, report))
	}

	if a.cfg.Scan.Strict && !report.Clean() {
		return ErrFindings
	}
	return nil
}

// loadTheme returns the configured theme, or the default when none is set.
func (a *app) loadTheme() (*theme.ThemeData, error) {
	if a.cfg.Theme == "" {
		return theme.Default(), nil
	}
	return theme.Load(a.cfg.Theme)
}
