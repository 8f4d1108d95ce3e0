package diagnostics

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

// Messages for tree-wide findings.
const (
	MessageNoRoot = "no display root for diagnostics"
	MessageClean  = "no obvious issues detected"
)

// Scanner holds the thresholds used by Scan.
type Scanner struct {
	// MaxDescendants is the node count above which the tree is flagged.
	MaxDescendants int
	// RowEstimate is the height assumed per stacked child when checking
	// for overflow.
	RowEstimate float64
	// PixelTolerance is how far a position may sit from a whole pixel.
	PixelTolerance float64
}

// DefaultScanner uses the standard thresholds.
var DefaultScanner = Scanner{MaxDescendants: 400, RowEstimate: 28, PixelTolerance: 0.01}

// Scan inspects root with DefaultScanner.
func Scan(root host.Node) Report {
	return DefaultScanner.Scan(root)
}

// Scan inspects root and every node below it. It never mutates the tree.
func (s Scanner) Scan(root host.Node) Report {
	if root == nil || root.Destroyed() {
		return newReport([]Finding{{Severity: SeverityError, Check: CheckNoRoot, Message: MessageNoRoot}})
	}
	var findings []Finding
	warn := func(n host.Node, check Check, format string, args ...any) {
		findings = append(findings, Finding{
			Severity: SeverityWarn,
			Check:    check,
			Node:     host.Path(n),
			Message:  fmt.Sprintf(format, args...),
		})
	}

	host.Walk(root, func(n host.Node) bool {
		s.checkNode(n, warn)
		return true
	})

	if count := host.CountDescendants(root); count > s.MaxDescendants {
		warn(root, CheckScale, "%d descendants exceeds %d; consider splitting the tree", count, s.MaxDescendants)
	}
	if len(findings) == 0 {
		findings = append(findings, Finding{Severity: SeverityOK, Check: CheckClean, Message: MessageClean})
	}
	return newReport(findings)
}

type warnFunc func(n host.Node, check Check, format string, args ...any)

func (s Scanner) checkNode(n host.Node, warn warnFunc) {
	kind := n.Kind()
	if kind.IsGuiObject() {
		if _, ok := n.Get(host.Size); !ok {
			warn(n, CheckMissingSize, "no Size set")
		}
		if v, ok := n.Get(host.BackgroundTransparency); ok {
			if t, ok := number(v); !ok || math.IsNaN(t) || t < 0 || t > 1 {
				warn(n, CheckTransparency, "BackgroundTransparency %v outside [0, 1]", v)
			}
		}
		pos := host.AbsolutePositionOf(n)
		if !graphics.IsWholePixel(pos.X, s.PixelTolerance) || !graphics.IsWholePixel(pos.Y, s.PixelTolerance) {
			warn(n, CheckSubPixel, "position (%g, %g) is not on a whole pixel", pos.X, pos.Y)
		}
	}

	if host.FindChildOfKind(n, host.KindListLayout) != nil {
		rows := 0
		for _, c := range n.Children() {
			if c.Kind().IsGuiObject() {
				rows++
			}
		}
		estimate := float64(rows) * s.RowEstimate
		height := host.AbsoluteSizeOf(n).Height
		if estimate > height && !host.Bool(n, host.ClipsDescendants, false) {
			warn(n, CheckOverflow, "stacked content (~%gpx for %d rows) overflows height %gpx without clipping", estimate, rows, height)
		}
	}

	if kind.IsText() {
		if !host.Bool(n, host.TextFits, true) && !host.Bool(n, host.TextWrapped, false) {
			warn(n, CheckTextClipped, "text %q does not fit and does not wrap", host.String(n, host.Text))
		}
		if strings.ContainsRune(host.String(n, host.Text), '\uFFFD') {
			warn(n, CheckMissingGlyph, "text contains a replacement character")
		}
	}

	if kind.IsButton() && !host.Bool(n, host.Active, true) {
		warn(n, CheckInertControl, "button is not Active and cannot be clicked")
	}
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	}
	return 0, false
}
