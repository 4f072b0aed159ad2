package event

import (
	"fmt"

	"github.com/lixenwraith/gridterm/core"
)

// MouseEvent carries a full button snapshot and the pointer cell
type MouseEvent struct {
	Type         MouseEventType
	LeftButton   bool
	MiddleButton bool
	RightButton  bool
	ExtraButton1 bool
	ExtraButton2 bool
	ExtraButton3 bool
	ExtraButton4 bool
	Position     core.Point
	WheelDelta   int16 // Positive away from the user / to the right
}

// KeyboardEvent carries one key transition and the modifier snapshot at that moment
type KeyboardEvent struct {
	Type         KeyboardEventType
	Key          Key
	KeyCode      uint16 // Native code, backend specific
	Character    rune   // 0 when the key produces no text
	LeftControl  bool
	LeftShift    bool
	LeftMenu     bool
	RightControl bool
	RightShift   bool
	RightMenu    bool
}

// Control reports either control modifier
func (e KeyboardEvent) Control() bool { return e.LeftControl || e.RightControl }

// Shift reports either shift modifier
func (e KeyboardEvent) Shift() bool { return e.LeftShift || e.RightShift }

// Alt reports either menu modifier
func (e KeyboardEvent) Alt() bool { return e.LeftMenu || e.RightMenu }

// WindowEvent reports window geometry or focus changes
// Size is in cells for Resize, Position in backend units for Move
type WindowEvent struct {
	Type     WindowEventType
	Position core.Point
	Size     core.Size
}

// Event is a closed union; exactly the member selected by Kind is meaningful
type Event struct {
	Kind     Kind
	Mouse    MouseEvent
	Keyboard KeyboardEvent
	Window   WindowEvent
}

// FromMouse wraps a mouse event
func FromMouse(e MouseEvent) Event {
	return Event{Kind: KindMouse, Mouse: e}
}

// FromKeyboard wraps a keyboard event
func FromKeyboard(e KeyboardEvent) Event {
	return Event{Kind: KindKeyboard, Keyboard: e}
}

// FromWindow wraps a window event
func FromWindow(e WindowEvent) Event {
	return Event{Kind: KindWindow, Window: e}
}

func (e Event) String() string {
	switch e.Kind {
	case KindMouse:
		m := e.Mouse
		return fmt.Sprintf("mouse %s at %d,%d L=%t M=%t R=%t wheel=%d",
			m.Type, m.Position.X, m.Position.Y, m.LeftButton, m.MiddleButton, m.RightButton, m.WheelDelta)
	case KindKeyboard:
		k := e.Keyboard
		return fmt.Sprintf("keyboard %s %s char=%q ctrl=%t shift=%t alt=%t",
			k.Type, k.Key, k.Character, k.Control(), k.Shift(), k.Alt())
	case KindWindow:
		w := e.Window
		return fmt.Sprintf("window %s pos=%d,%d size=%dx%d",
			w.Type, w.Position.X, w.Position.Y, w.Size.Width, w.Size.Height)
	}
	return "event(unknown)"
}
