package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/paneui/pkg/diagnostics"
)

// renderReport formats a report for a terminal. Colors are dropped when w
// is not a terminal.
func renderReport(w io.Writer, r diagnostics.Report) string {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true)
	path := re.NewStyle().Faint(true)
	tags := map[diagnostics.Severity]lipgloss.Style{
		diagnostics.SeverityError: re.NewStyle().Foreground(lipgloss.Color("#E5484D")).Bold(true),
		diagnostics.SeverityWarn:  re.NewStyle().Foreground(lipgloss.Color("#F5A524")),
		diagnostics.SeverityOK:    re.NewStyle().Foreground(lipgloss.Color("#30A46C")),
	}

	var sb strings.Builder
	sb.WriteString(title.Render("diagnostics: " + r.Summary()))
	sb.WriteByte('\n')
	for _, sev := range []diagnostics.Severity{diagnostics.SeverityError, diagnostics.SeverityWarn, diagnostics.SeverityOK} {
		for _, f := range r.Findings {
			if f.Severity != sev {
				continue
			}
			tag := strings.ToUpper(sev.String())
			sb.WriteString("  ")
			sb.WriteString(tags[sev].Width(6).Render(tag))
			if f.Node != "" {
				sb.WriteString(path.Render(f.Node + ":"))
				sb.WriteByte(' ')
			}
			sb.WriteString(f.Message)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
