//go:build !unix

package terminal

import "errors"

// ErrNotTerminal is returned when no raw tty is available
var ErrNotTerminal = errors.New("raw terminal backend requires a unix tty")

type unsupportedBackend struct{}

func newBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error                              { return ErrNotTerminal }
func (unsupportedBackend) Fini()                                    {}
func (unsupportedBackend) Size() (int, int)                         { return 80, 24 }
func (unsupportedBackend) PixelSize() (int, int)                    { return 0, 0 }
func (unsupportedBackend) Write(p []byte) (int, error)              { return len(p), nil }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error)     { return nil, ErrNotTerminal }
func (unsupportedBackend) SetResizeHandler(func(width, height int)) {}
