package widgets

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/paneui/pkg/animation"
	"github.com/go-drift/paneui/pkg/errors"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/host/memhost"
	"github.com/go-drift/paneui/pkg/node"
	"github.com/go-drift/paneui/pkg/theme"
)

type recordingHandler struct {
	errors    []*errors.UIError
	callbacks []*errors.CallbackError
}

func (h *recordingHandler) HandleError(err *errors.UIError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)  {}
func (h *recordingHandler) HandleCallbackError(err *errors.CallbackError) {
	h.callbacks = append(h.callbacks, err)
}

func withHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func withClock(t *testing.T) *testClock {
	t.Helper()
	c := &testClock{now: time.Unix(1_700_000_000, 0)}
	prev := animation.SetClock(c)
	t.Cleanup(func() { animation.SetClock(prev) })
	return c
}

// instantTheme disables the dropdown animation.
func instantTheme() *theme.ThemeData {
	th := theme.Default()
	th.Metrics.DropdownDuration = 0
	return th
}

func newEnv(th *theme.ThemeData) (Env, *memhost.Host) {
	h := memhost.New(memhost.WithViewport(graphics.Size{Width: 800, Height: 600}))
	return Env{Host: h, Theme: th}, h
}

func newWindow(t *testing.T, env Env, h *memhost.Host) *Window {
	t.Helper()
	w, err := NewWindow(env, h.GlobalSurface(), WindowOptions{})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return w
}

func TestNewWindow_Defaults(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)

	if w.Title() != "Window" {
		t.Errorf("Title = %q", w.Title())
	}
	if got := w.Position(); got != (graphics.Offset{X: 100, Y: 100}) {
		t.Errorf("Position = %+v", got)
	}
	if got := w.Size(); got != (graphics.Size{Width: 320, Height: 360}) {
		t.Errorf("Size = %+v", got)
	}
	if got := host.AbsolutePositionOf(w.CloseButton()); got != (graphics.Offset{X: 390, Y: 104}) {
		t.Errorf("close at %+v", got)
	}
	if got := host.AbsolutePositionOf(w.MinimizeButton()); got != (graphics.Offset{X: 360, Y: 104}) {
		t.Errorf("minimize at %+v", got)
	}
	if got := host.AbsoluteSizeOf(w.CloseButton()); got != (graphics.Size{Width: 26, Height: 22}) {
		t.Errorf("close size %+v", got)
	}
	layout := host.FindChildOfKind(w.Body(), host.KindListLayout)
	if layout == nil {
		t.Fatal("body has no ListLayout")
	}
	if p := host.Float(layout, host.Padding, -1); p != 6 {
		t.Errorf("body padding = %v", p)
	}
	if !host.Bool(w.Body(), host.ClipsDescendants, false) {
		t.Error("body must clip overflow")
	}
	if got := host.Path(w.Body()); got != "GlobalSurface.Window.Body" {
		t.Errorf("body path = %q", got)
	}
}

func TestNewWindow_Options(t *testing.T) {
	env, h := newEnv(instantTheme())
	pos := graphics.Offset{X: 0, Y: 0}
	w, err := NewWindow(env, h.GlobalSurface(), WindowOptions{Title: "Mixer", Size: graphics.Size{Width: 400, Height: 200}, Position: &pos})
	if err != nil {
		t.Fatal(err)
	}
	if w.Position() != pos || w.Size() != (graphics.Size{Width: 400, Height: 200}) {
		t.Errorf("window at %+v size %+v", w.Position(), w.Size())
	}
	if got := host.String(host.FindFirstChild(w.Titlebar(), "Title"), host.Text); got != "Mixer" {
		t.Errorf("title label = %q", got)
	}
}

func TestNewWindow_DestroyedParent(t *testing.T) {
	env, h := newEnv(instantTheme())
	parent, _ := h.NewNode(host.KindScreen)
	parent.Destroy()
	if _, err := NewWindow(env, parent, WindowOptions{}); !stderrors.Is(err, host.ErrDestroyed) {
		t.Errorf("expected ErrDestroyed, got %v", err)
	}
}

func TestWindow_MinimizeRestores(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	a := w.AddSection("A")
	b := w.AddSection("B")
	if err := b.Node().Set(host.Visible, false); err != nil {
		t.Fatal(err)
	}

	h.Click(memhost.Center(w.MinimizeButton()))
	if !w.Minimized() {
		t.Fatal("expected minimized")
	}
	if got := w.Size(); got != (graphics.Size{Width: 320, Height: 30}) {
		t.Errorf("minimized size = %+v", got)
	}
	for _, s := range []*Section{a, b} {
		if host.Bool(s.Node(), host.Visible, true) {
			t.Errorf("section %s should be hidden", s.Name())
		}
	}

	h.Click(memhost.Center(w.MinimizeButton()))
	if w.Minimized() {
		t.Fatal("expected restored")
	}
	if got := w.Size(); got != (graphics.Size{Width: 320, Height: 360}) {
		t.Errorf("restored size = %+v", got)
	}
	if !host.Bool(a.Node(), host.Visible, false) {
		t.Error("section A should be visible again")
	}
	if host.Bool(b.Node(), host.Visible, true) {
		t.Error("section B was hidden before minimizing and must stay hidden")
	}
}

func TestWindow_AddSectionWhileMinimized(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	w.ToggleMinimize()
	s := w.AddSection("Late")
	if host.Bool(s.Node(), host.Visible, true) {
		t.Error("section added while minimized should start hidden")
	}
	w.ToggleMinimize()
	if !host.Bool(s.Node(), host.Visible, false) {
		t.Error("section should show on restore")
	}
}

func TestWindow_CloseReleasesEverything(t *testing.T) {
	env, h := newEnv(instantTheme())
	baseline := h.ListenerCount(h.GlobalSurface())
	w := newWindow(t, env, h)
	s := w.AddSection("Controls")
	s.AddButton("Go", nil)
	s.AddSlider("Level", 0, 1, 0.5, nil)
	if _, err := s.AddDropdown("Mode", []string{"a", "b"}, nil); err != nil {
		t.Fatal(err)
	}
	var closed int
	w.OnClose(func(*Window) { closed++ })

	h.Click(memhost.Center(w.CloseButton()))
	if !w.Closed() || !w.Container().Destroyed() {
		t.Fatal("window should be destroyed")
	}
	if closed != 1 {
		t.Errorf("OnClose ran %d times", closed)
	}
	if got := h.ListenerCount(h.GlobalSurface()); got != baseline {
		t.Errorf("listeners = %d, want %d", got, baseline)
	}
	w.Close()
	if closed != 1 {
		t.Error("closing twice must not rerun hooks")
	}

	late := w.AddSection("Late")
	if !stderrors.Is(late.Err(), ErrWindowClosed) || !stderrors.Is(w.Err(), ErrWindowClosed) {
		t.Errorf("expected ErrWindowClosed, got %v / %v", late.Err(), w.Err())
	}
	late.AddButton("x", nil)
	if len(h.GlobalSurface().Children()) != 0 {
		t.Error("content for a closed window must not attach anywhere")
	}
}

func TestWindow_AncestorDestroyMarksClosed(t *testing.T) {
	env, h := newEnv(instantTheme())
	root, _ := h.NewNode(host.KindScreen)
	_ = root.SetParent(h.GlobalSurface())
	w, err := NewWindow(env, root, WindowOptions{})
	if err != nil {
		t.Fatal(err)
	}
	root.Destroy()
	if !w.Closed() {
		t.Error("destroying an ancestor should close the window")
	}
	if w.Drag().Dragging() {
		t.Error("drag should be idle")
	}
}

func TestWindow_DragTitlebar(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)

	if hit := h.PressAt(graphics.Offset{X: 150, Y: 110}); hit != w.Titlebar() {
		t.Fatalf("press hit %v", hit)
	}
	h.MovePointer(graphics.Offset{X: 200.6, Y: 160.2})
	if got := w.Position(); got != (graphics.Offset{X: 151, Y: 150}) {
		t.Errorf("Position = %+v", got)
	}
	h.MovePointer(graphics.Offset{X: 5000, Y: 5000})
	if got := w.Position(); got != (graphics.Offset{X: 480, Y: 240}) {
		t.Errorf("clamped Position = %+v", got)
	}
	h.PointerUp(graphics.Offset{X: 5000, Y: 5000})
	h.MovePointer(graphics.Offset{X: 10, Y: 10})
	if got := w.Position(); got != (graphics.Offset{X: 480, Y: 240}) {
		t.Errorf("window moved after release: %+v", got)
	}
}

func TestWindow_MoveTo(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	w.MoveTo(graphics.Offset{X: 10.5, Y: -40})
	if got := w.Position(); got != (graphics.Offset{X: 11, Y: 0}) {
		t.Errorf("Position = %+v", got)
	}
}

func TestSection_GrowsPerControl(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	s := w.AddSection("Grow")
	if got := host.AbsoluteSizeOf(s.Node()).Height; got != 22 {
		t.Errorf("empty height = %v", got)
	}
	s.AddButton("a", nil)
	s.AddToggle("b", false, nil)
	s.AddTextbox("c", "", nil)
	if got := host.AbsoluteSizeOf(s.Node()).Height; got != 22+3*(28+6) {
		t.Errorf("height = %v", got)
	}
	ctrls := s.Controls()
	if len(ctrls) != 3 || ctrls[0].Label() != "a" || ctrls[2].Label() != "c" {
		t.Errorf("controls = %v", ctrls)
	}
	// Rows stack in call order.
	y0 := host.AbsolutePositionOf(ctrls[0].Node()).Y
	y1 := host.AbsolutePositionOf(ctrls[1].Node()).Y
	if y0 != 152 || y1 != 152+34 {
		t.Errorf("rows at %v, %v", y0, y1)
	}
}

func TestSections_StackInOrder(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	a := w.AddSection("A")
	a.AddButton("x", nil)
	b := w.AddSection("B")
	if got := host.AbsolutePositionOf(b.Node()).Y; got != 130+56+6 {
		t.Errorf("second section at y=%v", got)
	}
	if n := len(w.Sections()); n != 2 {
		t.Errorf("Sections = %d", n)
	}
}

func TestButton_PanickingCallbackKeepsWorking(t *testing.T) {
	rec := withHandler(t)
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	calls := 0
	btn := w.AddSection("S").AddButton("Boom", func() {
		calls++
		panic("user bug")
	})

	h.Click(memhost.Center(btn.Node()))
	h.Click(memhost.Center(btn.Node()))
	if calls != 2 || btn.Clicks() != 2 {
		t.Errorf("calls = %d, clicks = %d", calls, btn.Clicks())
	}
	if len(rec.callbacks) != 2 {
		t.Fatalf("reported %d callback errors", len(rec.callbacks))
	}
	cb := rec.callbacks[0]
	if cb.Callback != "OnClick" || cb.Widget != "GlobalSurface.Window.Body.S.Content.Boom" {
		t.Errorf("callback error = %+v", cb)
	}
}

func TestToggle_StateAfterActivations(t *testing.T) {
	for _, initial := range []bool{false, true} {
		for n := 0; n < 6; n++ {
			env, h := newEnv(instantTheme())
			w := newWindow(t, env, h)
			var seen []bool
			tg, get := w.AddSection("S").AddToggle("T", initial, func(v bool) { seen = append(seen, v) })
			for i := 0; i < n; i++ {
				h.Activate(tg.Switch())
			}
			want := initial != (n%2 == 1)
			if get() != want {
				t.Errorf("initial=%v n=%d: state = %v, want %v", initial, n, get(), want)
			}
			if len(seen) != n {
				t.Errorf("onChange ran %d times, want %d", len(seen), n)
			}
			wantText := "OFF"
			if want {
				wantText = "ON"
			}
			if got := host.String(tg.Switch(), host.Text); got != wantText {
				t.Errorf("label = %q, want %q", got, wantText)
			}
		}
	}
}

func TestToggle_SetValueSkipsCallback(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	called := false
	tg, get := w.AddSection("S").AddToggle("T", false, func(bool) { called = true })
	tg.SetValue(true)
	if !get() || called {
		t.Errorf("state = %v, called = %v", get(), called)
	}
}

func TestSlider_InitialClampAndSwap(t *testing.T) {
	env, h := newEnv(instantTheme())
	s := newWindow(t, env, h).AddSection("S")

	over := s.AddSlider("over", 0, 100, 150, nil)
	if over.Value() != 100 || over.Fraction() != 1 {
		t.Errorf("value %v fraction %v", over.Value(), over.Fraction())
	}
	swapped := s.AddSlider("swapped", 10, 0, 5, nil)
	if swapped.Min() != 0 || swapped.Max() != 10 || swapped.Fraction() != 0.5 {
		t.Errorf("min %v max %v fraction %v", swapped.Min(), swapped.Max(), swapped.Fraction())
	}
	if got := host.String(host.FindFirstChild(swapped.Node(), "Value"), host.Text); got != "5" {
		t.Errorf("readout = %q", got)
	}
}

func TestSlider_DegenerateRange(t *testing.T) {
	env, h := newEnv(instantTheme())
	var got []float64
	sl := newWindow(t, env, h).AddSection("S").AddSlider("flat", 5, 5, 9, func(v float64) { got = append(got, v) })
	if sl.Fraction() != 0 || sl.Value() != 5 {
		t.Errorf("fraction %v value %v", sl.Fraction(), sl.Value())
	}
	track := host.AbsolutePositionOf(sl.Track())
	h.PointerDown(sl.Track(), graphics.Offset{X: track.X + 200, Y: track.Y + 2})
	h.PointerUp(graphics.Offset{X: track.X + 200, Y: track.Y + 2})
	if sl.Fraction() != 0 || len(got) != 1 || got[0] != 5 {
		t.Errorf("fraction %v samples %v", sl.Fraction(), got)
	}
}

func TestSlider_DragStaysInRange(t *testing.T) {
	env, h := newEnv(instantTheme())
	var samples []float64
	sl := newWindow(t, env, h).AddSection("S").AddSlider("V", 0, 100, 0, func(v float64) { samples = append(samples, v) })
	track := host.AbsolutePositionOf(sl.Track())
	size := host.AbsoluteSizeOf(sl.Track())
	y := track.Y + size.Height/2

	if hit := h.PressAt(graphics.Offset{X: track.X + size.Width/4, Y: y}); hit != sl.Track() {
		t.Fatalf("press hit %v", hit)
	}
	if sl.Value() != 25 {
		t.Errorf("value after press = %v", sl.Value())
	}
	for _, x := range []float64{-1000, track.X + size.Width*0.75, 5000, track.X} {
		h.MovePointer(graphics.Offset{X: x, Y: y + 300})
		if sl.Value() < 0 || sl.Value() > 100 || sl.Fraction() < 0 || sl.Fraction() > 1 {
			t.Fatalf("value %v fraction %v out of range", sl.Value(), sl.Fraction())
		}
	}
	h.PointerUp(graphics.Offset{X: 0, Y: 0})
	want := []float64{25, 0, 75, 100, 0}
	if len(samples) != len(want) {
		t.Fatalf("samples = %v, want %v", samples, want)
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, samples[i], want[i])
		}
	}
	fill := host.AbsoluteSizeOf(host.FindFirstChild(sl.Track(), "Fill"))
	if fill.Width != 0 {
		t.Errorf("fill width = %v", fill.Width)
	}
}

func TestSlider_DragDoesNotLeakAcrossInstances(t *testing.T) {
	env, h := newEnv(instantTheme())
	s := newWindow(t, env, h).AddSection("S")
	a := s.AddSlider("a", 0, 1, 0, nil)
	b := s.AddSlider("b", 0, 1, 0, nil)
	track := host.AbsolutePositionOf(a.Track())
	h.PointerDown(a.Track(), graphics.Offset{X: track.X, Y: track.Y})
	h.MovePointer(graphics.Offset{X: track.X + 1000, Y: track.Y})
	if a.Value() != 1 || b.Value() != 0 {
		t.Errorf("a = %v, b = %v", a.Value(), b.Value())
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{0: "0", 12.5: "12.5", 1.0 / 3: "0.33", -7.25: "-7.25", 100: "100"}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTextbox_SubmitsOnlyOnConfirm(t *testing.T) {
	env, h := newEnv(instantTheme())
	var submitted []string
	tb := newWindow(t, env, h).AddSection("S").AddTextbox("Name", "type a name", func(s string) { submitted = append(submitted, s) })

	if got := host.String(tb.Input(), host.PlaceholderText); got != "type a name" {
		t.Errorf("placeholder = %q", got)
	}
	h.SetText(tb.Input(), "h")
	h.SetText(tb.Input(), "hi")
	h.FocusLost(tb.Input(), false)
	if len(submitted) != 0 {
		t.Fatalf("submitted %v without confirm", submitted)
	}
	if tb.Text() != "hi" {
		t.Errorf("Text = %q", tb.Text())
	}
	h.FocusLost(tb.Input(), true)
	if len(submitted) != 1 || submitted[0] != "hi" {
		t.Errorf("submitted = %v", submitted)
	}

	h.SetText(tb.Input(), "")
	h.FocusLost(tb.Input(), true)
	if len(submitted) != 2 || submitted[1] != "" {
		t.Errorf("empty submit should send empty text, got %v", submitted)
	}
}

func TestDropdown_NoOptions(t *testing.T) {
	env, h := newEnv(instantTheme())
	s := newWindow(t, env, h).AddSection("S")
	d, err := s.AddDropdown("Mode", nil, nil)
	if d != nil || !stderrors.Is(err, ErrNoOptions) {
		t.Errorf("got %v, %v", d, err)
	}
	if len(s.Controls()) != 0 {
		t.Error("failed dropdown must not be added")
	}
}

func TestDropdown_SelectClosesAndFiresOnce(t *testing.T) {
	env, h := newEnv(instantTheme())
	options := []string{"Low", "Mid", "High"}
	var picked []string
	d, err := newWindow(t, env, h).AddSection("S").AddDropdown("Quality", options, func(s string) { picked = append(picked, s) })
	if err != nil {
		t.Fatal(err)
	}
	options[0] = "mutated"
	if d.Selected() != "Low" || host.String(d.Trigger(), host.Text) != "Low" {
		t.Errorf("initial label %q / %q", d.Selected(), host.String(d.Trigger(), host.Text))
	}

	h.Click(memhost.Center(d.Trigger()))
	if !d.IsOpen() || d.PanelHeight() != 3*28 || !host.Bool(d.Panel(), host.Visible, false) {
		t.Fatalf("open = %v height = %v", d.IsOpen(), d.PanelHeight())
	}

	item := d.Items()[1]
	if hit := h.Click(memhost.Center(item)); hit != item {
		t.Fatalf("click hit %v, want option", hit)
	}
	if d.Selected() != "Mid" || host.String(d.Trigger(), host.Text) != "Mid" {
		t.Errorf("label = %q", d.Selected())
	}
	if d.IsOpen() || d.PanelHeight() != 0 || host.Bool(d.Panel(), host.Visible, true) {
		t.Errorf("panel should be closed: open=%v height=%v", d.IsOpen(), d.PanelHeight())
	}
	if len(picked) != 1 || picked[0] != "Mid" {
		t.Errorf("onSelect calls = %v", picked)
	}
	if d.Options()[0] != "Low" {
		t.Error("options must be copied at construction")
	}
}

func TestDropdown_AnimatesFromOpenFlag(t *testing.T) {
	clock := withClock(t)
	env, h := newEnv(theme.Default())
	d, err := newWindow(t, env, h).AddSection("S").AddDropdown("Mode", []string{"a", "b"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	d.SetOpen(true)
	if !d.Animating() {
		t.Fatal("expected animation")
	}
	clock.now = clock.now.Add(75 * time.Millisecond)
	h.Step()
	mid := d.PanelHeight()
	if mid <= 0 || mid >= 56 {
		t.Errorf("mid-flight height = %v", mid)
	}

	// Both triggers write the same flag; the panel follows the last write.
	h.Activate(d.Trigger())
	if d.IsOpen() {
		t.Fatal("trigger should close")
	}
	clock.now = clock.now.Add(time.Second)
	h.Step()
	if d.PanelHeight() != 0 || host.Bool(d.Panel(), host.Visible, true) || d.Animating() {
		t.Errorf("height = %v after closing", d.PanelHeight())
	}

	d.SetOpen(true)
	clock.now = clock.now.Add(time.Second)
	h.Step()
	if d.PanelHeight() != 56 {
		t.Errorf("open height = %v", d.PanelHeight())
	}
	if !d.Select("b") || d.Select("zzz") {
		t.Error("Select should accept known options only")
	}
}

func TestDropdown_PanelRaisedWhileOpen(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	s := w.AddSection("S")
	d, _ := s.AddDropdown("Mode", []string{"a", "b"}, nil)
	next := s.AddButton("Next", nil)

	d.SetOpen(true)
	item := d.Items()[0]
	if hit := h.HitTest(memhost.Center(item)); hit != item {
		t.Errorf("option should be above the next row, hit %s", host.Path(hit))
	}
	d.SetOpen(false)
	if hit := h.HitTest(memhost.Center(next.Node())); hit != next.Node() {
		t.Errorf("closed dropdown should not cover the next row, hit %v", hit)
	}
}

func TestDropdown_SiblingCloseKeepsSectionRaised(t *testing.T) {
	env, h := newEnv(instantTheme())
	w := newWindow(t, env, h)
	top := w.AddSection("Top")
	a, _ := top.AddDropdown("A", []string{"a1", "a2"}, nil)
	b, _ := top.AddDropdown("B", []string{"b1", "b2", "b3"}, nil)
	below := w.AddSection("Below")
	for _, label := range []string{"Under1", "Under2", "Under3"} {
		below.AddButton(label, nil)
	}

	b.SetOpen(true)
	a.SetOpen(true)
	a.Select("a2")

	if !b.IsOpen() {
		t.Fatal("closing A should leave B open")
	}
	for _, item := range b.Items() {
		if hit := h.HitTest(memhost.Center(item)); hit != item {
			t.Errorf("B option %s should be hittable while B is open, hit %s", host.String(item, host.Text), host.Path(hit))
		}
	}
	if z := zIndex(top.Node()); z != raisedZIndex {
		t.Errorf("section ZIndex = %d, want %d while B is open", z, raisedZIndex)
	}

	b.SetOpen(false)
	if z := zIndex(top.Node()); z != 1 {
		t.Errorf("section ZIndex = %d, want 1 once every panel is hidden", z)
	}
	under := below.Controls()[0].Node()
	if hit := h.HitTest(memhost.Center(under)); hit != under {
		t.Errorf("closed dropdowns should not cover the next section, hit %v", hit)
	}
}

func zIndex(n host.Node) int {
	v, _ := n.Get(host.ZIndex)
	z, _ := v.(int)
	return z
}

func TestSection_RejectedPropertyReportedAsPropertyError(t *testing.T) {
	rec := withHandler(t)
	env, h := newEnv(instantTheme())
	schema := host.Schema{}
	for kind, props := range host.DefaultSchema {
		copied := make(map[host.Prop]host.ValueType, len(props))
		for p, vt := range props {
			copied[p] = vt
		}
		schema[kind] = copied
	}
	delete(schema[host.KindFrame], host.LayoutOrder)
	env.Factory = &node.Factory{Host: h, Schema: schema}

	s := newWindow(t, env, h).AddSection("S")
	if s.Node() == nil {
		t.Fatal("section should still be built leniently")
	}
	if s.Err() == nil {
		t.Error("section should record the strict failure")
	}
	if len(rec.errors) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(rec.errors))
	}
	if got := rec.errors[0].Kind; got != errors.KindProperty {
		t.Errorf("Kind = %s, want %s", got, errors.KindProperty)
	}
	var perr *errors.PropertyError
	if !stderrors.As(rec.errors[0], &perr) || perr.Prop != string(host.LayoutOrder) {
		t.Errorf("reported error should wrap the LayoutOrder PropertyError, got %v", rec.errors[0])
	}
}
