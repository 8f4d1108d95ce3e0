package testing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/go-drift/paneui/pkg/host"
)

// Finder locates nodes in a tree.
type Finder interface {
	// Evaluate returns all matching nodes under root, root included,
	// in depth-first pre-order.
	Evaluate(root host.Node) []host.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// keyedFinder is implemented by finders that match a single string key, so
// a miss can suggest near keys.
type keyedFinder interface {
	Finder
	key(n host.Node) (string, bool)
	want() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []host.Node
	finder Finder
	roots  []host.Node
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() host.Node {
	if len(r.nodes) == 0 {
		panic(r.missMessage())
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() host.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) host.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []host.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists reports whether at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Err returns nil when something matched, otherwise an error naming the
// finder and any near matches.
func (r FinderResult) Err() error {
	if len(r.nodes) > 0 {
		return nil
	}
	return fmt.Errorf("%s", r.missMessage())
}

// Suggestions returns the keys in the searched tree closest to what a
// keyed finder wanted. It is empty for other finders or when nothing is near.
func (r FinderResult) Suggestions() []string {
	kf, ok := r.finder.(keyedFinder)
	if !ok {
		return nil
	}
	return suggest(kf, r.roots)
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

func (r FinderResult) missMessage() string {
	msg := "Finder found no nodes: " + r.description()
	if s := r.Suggestions(); len(s) > 0 {
		quoted := make([]string, len(s))
		for i, v := range s {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		msg += " (did you mean " + strings.Join(quoted, ", ") + "?)"
	}
	return msg
}

// maxSuggestions caps how many near keys are reported.
const maxSuggestions = 3

// suggest ranks every distinct key in the tree by edit distance to the
// wanted key. Keys further than a third of the wanted length (minimum 2)
// are not suggested.
func suggest(f keyedFinder, roots []host.Node) []string {
	want := f.want()
	limit := max(2, len(want)/3)
	type candidate struct {
		key  string
		dist int
	}
	seen := make(map[string]bool)
	var cands []candidate
	for _, root := range roots {
		host.Walk(root, func(n host.Node) bool {
			k, ok := f.key(n)
			if !ok || k == "" || seen[k] {
				return true
			}
			seen[k] = true
			if d := levenshtein.ComputeDistance(want, k); d <= limit {
				cands = append(cands, candidate{k, d})
			}
			return true
		})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].key < cands[j].key
	})
	var out []string
	for i := 0; i < len(cands) && i < maxSuggestions; i++ {
		out = append(out, cands[i].key)
	}
	return out
}

// --- Concrete finders ---

// nameFinder matches nodes by exact Name.
type nameFinder struct {
	name string
}

func (f *nameFinder) Evaluate(root host.Node) []host.Node {
	return collectMatches(root, func(n host.Node) bool { return n.Name() == f.name })
}

func (f *nameFinder) Description() string {
	return fmt.Sprintf("ByName(%q)", f.name)
}

func (f *nameFinder) key(n host.Node) (string, bool) { return n.Name(), true }
func (f *nameFinder) want() string                   { return f.name }

// ByName returns a finder that matches nodes whose Name equals name.
func ByName(name string) Finder {
	return &nameFinder{name: name}
}

// textFinder matches text-bearing nodes by exact Text.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root host.Node) []host.Node {
	return collectMatches(root, func(n host.Node) bool {
		k, ok := f.key(n)
		return ok && k == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

func (f *textFinder) key(n host.Node) (string, bool) {
	if !n.Kind().IsText() {
		return "", false
	}
	return host.String(n, host.Text), true
}

func (f *textFinder) want() string { return f.text }

// ByText returns a finder that matches labels, buttons and text boxes whose
// Text equals text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches text-bearing nodes containing a substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root host.Node) []host.Node {
	return collectMatches(root, func(n host.Node) bool {
		return n.Kind().IsText() && strings.Contains(host.String(n, host.Text), f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches text-bearing nodes whose
// Text contains substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// kindFinder matches nodes of one kind.
type kindFinder struct {
	kind host.Kind
}

func (f *kindFinder) Evaluate(root host.Node) []host.Node {
	return collectMatches(root, func(n host.Node) bool { return n.Kind() == f.kind })
}

func (f *kindFinder) Description() string {
	return fmt.Sprintf("ByKind(%s)", f.kind)
}

// ByKind returns a finder that matches nodes of the given kind.
func ByKind(kind host.Kind) Finder {
	return &kindFinder{kind: kind}
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(host.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root host.Node) []host.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(host.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' below nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root host.Node) []host.Node {
	var results []host.Node
	seen := make(map[host.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are strict descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches walks root depth-first, collecting nodes that satisfy the
// predicate.
func collectMatches(root host.Node, predicate func(host.Node) bool) []host.Node {
	var results []host.Node
	host.Walk(root, func(n host.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}
