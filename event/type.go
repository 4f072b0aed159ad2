package event

// Kind discriminates the Event union
type Kind uint8

const (
	KindMouse Kind = iota
	KindKeyboard
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindMouse:
		return "mouse"
	case KindKeyboard:
		return "keyboard"
	case KindWindow:
		return "window"
	}
	return "unknown"
}

// MouseEventType is the superset of mouse activity across backends
// A backend without a capability reports the simpler variant (Click instead of DoubleClick)
type MouseEventType uint8

const (
	MouseMove MouseEventType = iota
	Click
	DoubleClick
	Wheel
	HorizontalWheel
	VerticalWheel
)

func (t MouseEventType) String() string {
	switch t {
	case MouseMove:
		return "move"
	case Click:
		return "click"
	case DoubleClick:
		return "double_click"
	case Wheel:
		return "wheel"
	case HorizontalWheel:
		return "horizontal_wheel"
	case VerticalWheel:
		return "vertical_wheel"
	}
	return "unknown"
}

// KeyboardEventType distinguishes press from release
type KeyboardEventType uint8

const (
	KeyDown KeyboardEventType = iota
	KeyUp
)

func (t KeyboardEventType) String() string {
	if t == KeyUp {
		return "key_up"
	}
	return "key_down"
}

// WindowEventType enumerates window lifecycle notifications
type WindowEventType uint8

const (
	WindowMove WindowEventType = iota
	WindowResize
	WindowFocus
	WindowLostFocus
	WindowClose
)

func (t WindowEventType) String() string {
	switch t {
	case WindowMove:
		return "move"
	case WindowResize:
		return "resize"
	case WindowFocus:
		return "focus"
	case WindowLostFocus:
		return "lost_focus"
	case WindowClose:
		return "close"
	}
	return "unknown"
}
