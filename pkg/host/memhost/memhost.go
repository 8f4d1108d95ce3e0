// Package memhost is an in-memory display host.
//
// It keeps the node tree, resolves sizes and positions (including vertical
// stack layout), measures text with a bitmap font face, hit-tests, and lets
// callers inject pointer and keyboard input. It backs headless diagnostics,
// the terminal host, and the test harness.
//
// A Host is not safe for concurrent use; drive it from one goroutine.
package memhost

import (
	"github.com/go-drift/paneui/pkg/animation"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultViewport is the viewport size used when none is configured.
var DefaultViewport = graphics.Size{Width: 1280, Height: 720}

// Host is an in-memory implementation of host.Host.
type Host struct {
	schema    host.Schema
	viewport  graphics.Size
	pointer   graphics.Offset
	face      font.Face
	global    *node
	user      *node
	listeners listenerSet
	seq       uint64
}

// Option configures a Host.
type Option func(*Host)

// WithViewport sets the initial viewport size.
func WithViewport(size graphics.Size) Option {
	return func(h *Host) { h.viewport = size }
}

// WithUserSurface creates a per-user display surface with the given name,
// making the host resolve it through UserSurface.
func WithUserSurface(name string) Option {
	return func(h *Host) {
		h.user = h.newSurface(name)
	}
}

// WithFace replaces the font face used for text measurement.
func WithFace(face font.Face) Option {
	return func(h *Host) { h.face = face }
}

// WithSchema replaces the property schema enforced by Set.
func WithSchema(s host.Schema) Option {
	return func(h *Host) { h.schema = s }
}

// New creates a host with a global surface.
func New(opts ...Option) *Host {
	h := &Host{
		schema:   host.DefaultSchema,
		viewport: DefaultViewport,
		face:     basicfont.Face7x13,
	}
	h.global = h.newSurface("GlobalSurface")
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) newSurface(name string) *node {
	n := h.alloc(host.KindScreen)
	n.props[host.Name] = name
	return n
}

// NewNode implements host.Host.
func (h *Host) NewNode(kind host.Kind) (host.Node, error) {
	if _, ok := h.schema[kind]; !ok {
		return nil, &unknownKindError{kind: kind}
	}
	return h.alloc(kind), nil
}

// GlobalSurface implements host.Host.
func (h *Host) GlobalSurface() host.Node {
	return h.global
}

// UserSurface implements host.SessionResolver.
func (h *Host) UserSurface() (host.Node, bool) {
	if h.user == nil || h.user.destroyed {
		return nil, false
	}
	return h.user, true
}

// PointerPosition implements host.Host.
func (h *Host) PointerPosition() graphics.Offset {
	return h.pointer
}

// ViewportSize implements host.Host.
func (h *Host) ViewportSize() graphics.Size {
	return h.viewport
}

// SetViewportSize changes the viewport size. Layout is recomputed lazily.
func (h *Host) SetViewportSize(size graphics.Size) {
	h.viewport = size
}

// Subscribe implements host.Host.
func (h *Host) Subscribe(t host.EventType, fn func(host.Event)) func() {
	return h.listeners.add(t, fn)
}

// Step advances one frame: active animation tickers are stepped.
func (h *Host) Step() {
	animation.StepTickers()
}

// Surfaces returns the global surface followed by the user surface, if any.
func (h *Host) Surfaces() []host.Node {
	out := []host.Node{h.global}
	if h.user != nil && !h.user.destroyed {
		out = append(out, h.user)
	}
	return out
}

type unknownKindError struct {
	kind host.Kind
}

func (e *unknownKindError) Error() string {
	return "memhost: unknown node kind " + string(e.kind)
}

// listenerSet stores subscriptions keyed by event type. Dispatch iterates
// a snapshot in subscription order so handlers may unsubscribe themselves.
type listenerSet struct {
	next    int
	entries map[host.EventType][]listener
}

type listener struct {
	id int
	fn func(host.Event)
}

func (s *listenerSet) add(t host.EventType, fn func(host.Event)) func() {
	if s.entries == nil {
		s.entries = make(map[host.EventType][]listener)
	}
	s.next++
	id := s.next
	s.entries[t] = append(s.entries[t], listener{id: id, fn: fn})
	return func() {
		list := s.entries[t]
		for i, l := range list {
			if l.id == id {
				s.entries[t] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

func (s *listenerSet) dispatch(ev host.Event) {
	list := s.entries[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

func (s *listenerSet) clear() {
	s.entries = nil
}

func (s *listenerSet) count() int {
	n := 0
	for _, list := range s.entries {
		n += len(list)
	}
	return n
}
