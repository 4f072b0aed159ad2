package platform

import (
	"time"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
)

// DefaultDoubleClickWindow matches common desktop defaults
const DefaultDoubleClickWindow = 400 * time.Millisecond

// ClickDetector promotes a second press of the same button on the same cell
// within Window to a DoubleClick; a third press starts over
type ClickDetector struct {
	Window time.Duration

	last   time.Time
	button Button
	pos    core.Point
	armed  bool
}

// NewClickDetector returns a detector with the given window, DefaultDoubleClickWindow if zero
func NewClickDetector(window time.Duration) *ClickDetector {
	if window <= 0 {
		window = DefaultDoubleClickWindow
	}
	return &ClickDetector{Window: window}
}

// Press classifies a press edge
func (d *ClickDetector) Press(b Button, p core.Point, now time.Time) event.MouseEventType {
	if d.armed && b == d.button && p == d.pos && now.Sub(d.last) <= d.Window {
		d.armed = false
		return event.DoubleClick
	}
	d.armed = true
	d.button = b
	d.pos = p
	d.last = now
	return event.Click
}
