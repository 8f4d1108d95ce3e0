// Package testbed builds small node trees used by the harness tests.
package testbed

import (
	"strconv"
	"time"

	"github.com/go-drift/paneui/pkg/animation"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/node"
)

// Counter is a panel with a label showing a count, a button that increments
// it, and a text box that records submitted text.
type Counter struct {
	Screen    host.Node
	Panel     host.Node
	Label     host.Node
	Button    host.Node
	Entry     host.Node
	Count     int
	Submitted []string
}

// NewCounter builds a Counter on the global surface of h. The panel sits at
// (10, 10) and is 200x100.
func NewCounter(h host.Host) (*Counter, error) {
	f := node.New(h)
	c := &Counter{}
	var err error
	if c.Screen, err = f.CreateIn(h.GlobalSurface(), host.KindScreen, host.Props{host.Name: "Bench"}); err != nil {
		return nil, err
	}
	if c.Panel, err = f.CreateIn(c.Screen, host.KindFrame, host.Props{
		host.Name:     "Panel",
		host.Position: host.Px(10, 10),
		host.Size:     host.Px(200, 100),
	}); err != nil {
		return nil, err
	}
	if c.Label, err = f.CreateIn(c.Panel, host.KindTextLabel, host.Props{
		host.Name: "Count",
		host.Text: "0",
		host.Size: host.Px(100, 20),
	}); err != nil {
		return nil, err
	}
	if c.Button, err = f.CreateIn(c.Panel, host.KindTextButton, host.Props{
		host.Name:     "Increment",
		host.Text:     "+1",
		host.Position: host.Px(0, 30),
		host.Size:     host.Px(100, 20),
	}); err != nil {
		return nil, err
	}
	if c.Entry, err = f.CreateIn(c.Panel, host.KindTextBox, host.Props{
		host.Name:     "Entry",
		host.Position: host.Px(0, 60),
		host.Size:     host.Px(200, 20),
	}); err != nil {
		return nil, err
	}
	c.Button.Subscribe(host.EventActivated, func(host.Event) {
		c.Count++
		_ = c.Label.Set(host.Text, strconv.Itoa(c.Count))
	})
	c.Entry.Subscribe(host.EventFocusLost, func(ev host.Event) {
		if ev.Submitted {
			c.Submitted = append(c.Submitted, ev.Text)
		}
	})
	return c, nil
}

// Cover places an active frame over the whole panel.
func (c *Counter) Cover(h host.Host) (host.Node, error) {
	return node.New(h).CreateIn(c.Screen, host.KindFrame, host.Props{
		host.Name:     "Cover",
		host.Position: host.Px(0, 0),
		host.Size:     host.Px(400, 400),
		host.Active:   true,
		host.ZIndex:   5,
	})
}

// Bar is a frame whose width animates from 0 to Width.
type Bar struct {
	Node       host.Node
	Width      float64
	Controller *animation.Controller
}

// NewBar builds a Bar under parent and starts its animation.
func NewBar(h host.Host, parent host.Node, width float64, d time.Duration) (*Bar, error) {
	n, err := node.New(h).CreateIn(parent, host.KindFrame, host.Props{
		host.Name: "Bar",
		host.Size: host.Px(0, 10),
	})
	if err != nil {
		return nil, err
	}
	b := &Bar{Node: n, Width: width, Controller: animation.NewController(d)}
	b.Controller.AddListener(func() {
		_ = b.Node.Set(host.Size, host.Px(b.Controller.Value*b.Width, 10))
	})
	b.Controller.AnimateTo(1)
	return b, nil
}
