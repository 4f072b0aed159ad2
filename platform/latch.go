package platform

import (
	"github.com/lixenwraith/gridterm/event"
)

// Button indexes the latched mouse buttons
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonExtra1
	ButtonExtra2
	ButtonExtra3
	ButtonExtra4
	buttonCount
)

// ButtonLatch rebuilds held-button state from native streams that only
// report transitions (press, release) instead of a per-event button mask
type ButtonLatch struct {
	held [buttonCount]bool
}

// Press latches b, returns true on the up-to-down edge
func (l *ButtonLatch) Press(b Button) bool {
	if b >= buttonCount || l.held[b] {
		return false
	}
	l.held[b] = true
	return true
}

// Release unlatches b, returns true on the down-to-up edge
func (l *ButtonLatch) Release(b Button) bool {
	if b >= buttonCount || !l.held[b] {
		return false
	}
	l.held[b] = false
	return true
}

// ReleaseAll clears every latch, for streams that report release without naming the button
// Returns true if anything was held
func (l *ButtonLatch) ReleaseAll() bool {
	was := false
	for i := range l.held {
		was = was || l.held[i]
		l.held[i] = false
	}
	return was
}

// Held reports whether b is latched
func (l *ButtonLatch) Held(b Button) bool {
	return b < buttonCount && l.held[b]
}

// Apply copies the latched buttons into e's snapshot fields
func (l *ButtonLatch) Apply(e *event.MouseEvent) {
	e.LeftButton = l.held[ButtonLeft]
	e.MiddleButton = l.held[ButtonMiddle]
	e.RightButton = l.held[ButtonRight]
	e.ExtraButton1 = l.held[ButtonExtra1]
	e.ExtraButton2 = l.held[ButtonExtra2]
	e.ExtraButton3 = l.held[ButtonExtra3]
	e.ExtraButton4 = l.held[ButtonExtra4]
}
