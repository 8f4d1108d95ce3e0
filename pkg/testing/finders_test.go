package testing

import (
	"strings"
	"testing"

	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/testing/internal/testbed"
)

func newBench(t *testing.T) (*Tester, *testbed.Counter) {
	t.Helper()
	tester := NewTesterWithT(t)
	bench, err := testbed.NewCounter(tester.Host())
	if err != nil {
		t.Fatalf("NewCounter: %v", err)
	}
	return tester, bench
}

func TestByName(t *testing.T) {
	tester, bench := newBench(t)

	result := tester.Find(ByName("Increment"))
	if result.Count() != 1 {
		t.Fatalf("expected 1 match, got %d", result.Count())
	}
	if result.First() != bench.Button {
		t.Errorf("expected the increment button, got %s", host.Path(result.First()))
	}
}

func TestByText(t *testing.T) {
	tester, _ := newBench(t)

	if !tester.Find(ByText("+1")).Exists() {
		t.Error("expected to find text '+1'")
	}
	if tester.Find(ByText("99")).Exists() {
		t.Error("should not find text '99'")
	}
}

func TestByTextContaining(t *testing.T) {
	tester, _ := newBench(t)

	if !tester.Find(ByTextContaining("1")).Exists() {
		t.Error("expected to find text containing '1'")
	}
}

func TestByKind(t *testing.T) {
	tester, _ := newBench(t)

	if got := tester.Find(ByKind(host.KindTextBox)).Count(); got != 1 {
		t.Errorf("expected 1 text box, got %d", got)
	}
	// The global surface is a screen too.
	if got := tester.Find(ByKind(host.KindScreen)).Count(); got != 2 {
		t.Errorf("expected 2 screens, got %d", got)
	}
}

func TestByPredicate(t *testing.T) {
	tester, _ := newBench(t)

	result := tester.Find(ByPredicate(func(n host.Node) bool {
		return host.Bool(n, host.Active, false)
	}))
	// The button and the text box accept input by default.
	if result.Count() != 2 {
		t.Errorf("expected 2 active nodes, got %d", result.Count())
	}
}

func TestDescendant(t *testing.T) {
	tester, bench := newBench(t)

	result := tester.Find(Descendant(ByName("Panel"), ByKind(host.KindTextLabel)))
	if result.Count() != 1 || result.First() != bench.Label {
		t.Errorf("expected only the count label under Panel, got %d", result.Count())
	}
	if tester.Find(Descendant(ByName("Panel"), ByName("Panel"))).Exists() {
		t.Error("Descendant should not match the ancestor itself")
	}
}

func TestFinderResult_Accessors(t *testing.T) {
	tester, _ := newBench(t)

	result := tester.Find(ByKind(host.KindTextLabel))
	if result.FirstOrNil() == nil {
		t.Error("expected FirstOrNil to return a node")
	}
	if result.At(0) != result.First() {
		t.Error("At(0) should equal First()")
	}
	if len(result.All()) != result.Count() {
		t.Error("All() length should equal Count()")
	}
	if result.Err() != nil {
		t.Errorf("unexpected Err: %v", result.Err())
	}

	empty := tester.Find(ByName("Nothing"))
	if empty.FirstOrNil() != nil {
		t.Error("expected FirstOrNil to return nil on no match")
	}
}

func TestFinderResult_FirstPanicsOnMiss(t *testing.T) {
	tester, _ := newBench(t)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, `ByName("Nothing")`) {
			t.Errorf("panic message should name the finder, got %v", r)
		}
	}()
	tester.Find(ByName("Nothing")).First()
}

func TestFinderResult_AtOutOfRange(t *testing.T) {
	tester, _ := newBench(t)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	tester.Find(ByKind(host.KindTextBox)).At(3)
}

func TestSuggestions(t *testing.T) {
	tester, _ := newBench(t)

	tests := []struct {
		name   string
		finder Finder
		first  string
	}{
		{"name typo", ByName("Incremnt"), "Increment"},
		{"name case", ByName("panel"), "Panel"},
		{"text typo", ByText("+2"), "+1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tester.Find(tt.finder)
			s := result.Suggestions()
			if len(s) == 0 || s[0] != tt.first {
				t.Fatalf("expected first suggestion %q, got %v", tt.first, s)
			}
			if err := result.Err(); err == nil || !strings.Contains(err.Error(), `did you mean "`+tt.first+`"`) {
				t.Errorf("expected error to suggest %q, got %v", tt.first, err)
			}
		})
	}
}

func TestSuggestions_NoneWhenFar(t *testing.T) {
	tester, _ := newBench(t)

	result := tester.Find(ByName("CompletelyDifferent"))
	if s := result.Suggestions(); len(s) != 0 {
		t.Errorf("expected no suggestions, got %v", s)
	}
	if strings.Contains(result.Err().Error(), "did you mean") {
		t.Errorf("unexpected suggestion in %v", result.Err())
	}
	if s := tester.Find(ByKind(host.KindStroke)).Suggestions(); s != nil {
		t.Errorf("kind finders should not suggest, got %v", s)
	}
}
