// Package platform defines the contracts a native terminal backend fulfils
// Core packages never depend on a concrete backend, only on these interfaces
package platform

import (
	"errors"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
)

// ErrUnimplemented is returned by optional queries the backend cannot answer
var ErrUnimplemented = errors.New("not implemented by backend")

// Terminal is the screen sink
type Terminal interface {
	// ConsoleSize returns the grid extent in cells
	ConsoleSize() (core.Size, error)
	Clear() error
	SetCursor(p core.Point) error
	SetCursorVisible(visible bool) error
	// Write renders the whole buffer, no diffing against earlier frames
	Write(buf *core.CellBuffer) error
	// Dispose restores the native terminal; safe to call more than once
	Dispose() error
}

// Window exposes the hosting window, where the backend can reach it
type Window interface {
	ClientSize() (core.Size, error)
	WindowSize() (core.Size, error)
	SetWindowSize(size core.Size) error
	WindowPosition() (core.Point, error)
	SetWindowPosition(p core.Point) error
}

// Mouse exposes pointer queries beyond the event stream
type Mouse interface {
	AbsolutePosition() (core.Point, error)
	ClientPosition() (core.Point, error)
	SetPosition(p core.Point) error
	ShowCursor(visible bool) error
}

// Application bundles one backend's capabilities
type Application interface {
	Terminal() Terminal
	Window() Window
	Mouse() Mouse
	// ListenEvents waits for native input and appends zero or more normalized
	// events to q. It touches nothing else; trackers are updated by the loop
	ListenEvents(q *event.Queue) error
}
