package terminal

import "bufio"

// MouseMode controls which mouse events are reported (bitmask)
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press/release events
	MouseModeDrag   MouseMode = 1 << 1 // Drag events (button held + motion)
	MouseModeMotion MouseMode = 1 << 2 // All motion events

	MouseModeAll = MouseModeClick | MouseModeDrag | MouseModeMotion
)

// writeMouseMode switches reporting from old to mode
func writeMouseMode(w *bufio.Writer, old, mode MouseMode) {
	// Disable modes no longer needed (reverse order of enable)
	if old&MouseModeMotion != 0 && mode&MouseModeMotion == 0 {
		w.Write(csiMouseMotionOff)
	}
	if old&MouseModeDrag != 0 && mode&MouseModeDrag == 0 {
		w.Write(csiMouseDragOff)
	}
	if old&MouseModeClick != 0 && mode&MouseModeClick == 0 {
		w.Write(csiMouseClickOff)
	}
	if mode == MouseModeNone && old != MouseModeNone {
		w.Write(csiMouseSGROff)
	}

	// SGR first so the terminal never sends legacy encoded reports
	if mode != MouseModeNone && old == MouseModeNone {
		w.Write(csiMouseSGROn)
	}
	if mode&MouseModeClick != 0 && old&MouseModeClick == 0 {
		w.Write(csiMouseClickOn)
	}
	if mode&MouseModeDrag != 0 && old&MouseModeDrag == 0 {
		w.Write(csiMouseDragOn)
	}
	if mode&MouseModeMotion != 0 && old&MouseModeMotion == 0 {
		w.Write(csiMouseMotionOn)
	}
}
