package terminal

// Backend abstracts the platform tty so the parser and writer can be driven
// by an in-memory fake in tests
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns the grid in cells
	Size() (width, height int)

	// PixelSize returns the text area in pixels, zeros when the tty does not report it
	PixelSize() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// An empty slice with nil error signals a poll timeout
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
