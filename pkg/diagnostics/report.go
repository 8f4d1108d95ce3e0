package diagnostics

import (
	"fmt"
	"slices"
	"strings"
)

// Severity ranks a finding.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarn
	SeverityError
)

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Check identifies the rule that produced a finding.
type Check string

const (
	CheckNoRoot       Check = "no-root"
	CheckMissingSize  Check = "missing-size"
	CheckTransparency Check = "transparency"
	CheckSubPixel     Check = "sub-pixel"
	CheckOverflow     Check = "overflow"
	CheckTextClipped  Check = "text-clipped"
	CheckMissingGlyph Check = "missing-glyph"
	CheckInertControl Check = "inert-control"
	CheckScale        Check = "scale"
	CheckClean        Check = "clean"
)

// Finding is one diagnostic entry.
type Finding struct {
	Severity Severity `json:"severity"`
	Check    Check    `json:"check"`
	// Node is the dotted path of the offending node, empty for tree-wide
	// findings.
	Node    string `json:"node,omitempty"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	if f.Node == "" {
		return f.Message
	}
	return f.Node + ": " + f.Message
}

// Report is an immutable scan result. OK, Warn and Error hold the rendered
// findings of each severity in discovery order.
type Report struct {
	OK       []string  `json:"ok"`
	Warn     []string  `json:"warn"`
	Error    []string  `json:"error"`
	Findings []Finding `json:"findings"`
}

func newReport(findings []Finding) Report {
	r := Report{Findings: findings}
	for _, f := range findings {
		switch f.Severity {
		case SeverityOK:
			r.OK = append(r.OK, f.String())
		case SeverityWarn:
			r.Warn = append(r.Warn, f.String())
		case SeverityError:
			r.Error = append(r.Error, f.String())
		}
	}
	return r
}

// Clone returns a copy that shares no slices with r.
func (r Report) Clone() Report {
	return Report{
		OK:       slices.Clone(r.OK),
		Warn:     slices.Clone(r.Warn),
		Error:    slices.Clone(r.Error),
		Findings: slices.Clone(r.Findings),
	}
}

// Clean reports whether the scan found no warnings or errors.
func (r Report) Clean() bool {
	return len(r.Warn) == 0 && len(r.Error) == 0
}

// Summary returns a one-line count of entries per severity.
func (r Report) Summary() string {
	return fmt.Sprintf("%d ok, %d warn, %d error", len(r.OK), len(r.Warn), len(r.Error))
}

// Filter returns the findings produced by check.
func (r Report) Filter(check Check) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

// String renders the report as indented text, errors first.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "diagnostics: %s\n", r.Summary())
	for _, group := range []struct {
		tag     string
		entries []string
	}{
		{"ERROR", r.Error},
		{"WARN", r.Warn},
		{"OK", r.OK},
	} {
		for _, e := range group.entries {
			fmt.Fprintf(&sb, "  %-5s %s\n", group.tag, e)
		}
	}
	return sb.String()
}
