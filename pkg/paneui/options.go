package paneui

import (
	"log/slog"

	"github.com/go-drift/paneui/pkg/diagnostics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/theme"
)

// Option configures Create.
type Option func(*config)

type config struct {
	session host.SessionResolver
	theme   *theme.ThemeData
	lenient bool
	logger  *slog.Logger
	scanner *diagnostics.Scanner
}

// WithSession supplies the per-user surface resolver. Without it, Create
// asks the host itself when the host implements host.SessionResolver.
func WithSession(r host.SessionResolver) Option {
	return func(c *config) { c.session = r }
}

// WithTheme styles the library's windows with t instead of theme.Current.
func WithTheme(t *theme.ThemeData) Option {
	return func(c *config) { c.theme = t }
}

// WithLenientProperties makes node creation skip properties the host
// rejects instead of failing.
func WithLenientProperties() Option {
	return func(c *config) { c.lenient = true }
}

// WithLogger sets the logger for lifecycle debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithScanner replaces the thresholds used by ScanDiagnostics.
func WithScanner(s diagnostics.Scanner) Option {
	return func(c *config) { c.scanner = &s }
}
