package terminal

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
)

// DefaultPollInterval bounds how long ListenEvents waits for the first event
const DefaultPollInterval = 16 * time.Millisecond

// Options configure the raw backend
type Options struct {
	ColorMode    ColorMode
	MouseMode    MouseMode
	PollInterval time.Duration
	Background   core.Color // Used by Clear
	Logger       *slog.Logger
}

// DefaultOptions detects color support and enables full mouse reporting
func DefaultOptions() Options {
	return Options{
		ColorMode:    DetectColorMode(),
		MouseMode:    MouseModeAll,
		PollInterval: DefaultPollInterval,
		Background:   core.Black,
	}
}

// Terminal drives a raw tty; it is the Terminal, Window, Mouse and
// Application of the platform contracts at once
type Terminal struct {
	backend Backend
	opts    Options
	logger  *slog.Logger

	output   *outputBuffer
	input    *inputReader
	resizeCh chan event.Event

	// Loop-goroutine state
	lastMouse core.Point

	mu            sync.Mutex
	initialized   bool
	finalized     bool
	cursorVisible bool
	mouseMode     MouseMode
}

var (
	_ platform.Application = (*Terminal)(nil)
	_ platform.Terminal    = (*Terminal)(nil)
	_ platform.Window      = (*Terminal)(nil)
	_ platform.Mouse       = (*Terminal)(nil)
)

// New creates a terminal on stdin/stdout; call Init before use
func New(opts Options) *Terminal {
	return NewWithBackend(newBackend(), opts)
}

// NewWithBackend creates a terminal over an explicit backend
func NewWithBackend(b Backend, opts Options) *Terminal {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("backend", "raw")

	return &Terminal{
		backend:  b,
		opts:     opts,
		logger:   logger,
		output:   newOutputBuffer(b, opts.ColorMode),
		input:    newInputReader(b, logger),
		resizeCh: make(chan event.Event, 1),
	}
}

// Init enters raw mode, alternate screen, hides cursor and starts the reader
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}

	t.backend.SetResizeHandler(func(w, h int) {
		ev := event.FromWindow(event.WindowEvent{Type: event.WindowResize, Size: core.Sz(w, h)})
		// Latest size wins
		select {
		case t.resizeCh <- ev:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ev:
			default:
			}
		}
	})

	w := t.output.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	w.Write(csiAutoWrapOff)
	w.Write(csiFocusOn)
	writeMouseMode(w, MouseModeNone, t.opts.MouseMode)
	t.mouseMode = t.opts.MouseMode
	t.cursorVisible = false

	if err := t.output.clear(t.opts.Background); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal setup: %w", err)
	}

	t.input.start()

	t.initialized = true
	t.logger.Info("terminal initialized", "color_mode", t.opts.ColorMode.String())
	return nil
}

// Dispose restores terminal state. Safe to call multiple times
func (t *Terminal) Dispose() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	w := t.output.writer
	writeMouseMode(w, t.mouseMode, MouseModeNone)
	w.Write(csiFocusOff)
	w.Flush()

	t.input.stop()

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer has it
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
	err := w.Flush()

	t.backend.Fini()
	t.finalized = true
	t.logger.Info("terminal disposed")
	return err
}

// ColorMode returns the active color mode
func (t *Terminal) ColorMode() ColorMode {
	return t.opts.ColorMode
}

// ConsoleSize returns current terminal dimensions
func (t *Terminal) ConsoleSize() (core.Size, error) {
	w, h := t.backend.Size()
	return core.Sz(w, h), nil
}

// Clear fills the screen with the configured background
func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	return t.output.clear(t.opts.Background)
}

// Write repaints every cell of buf, clipped to the terminal
func (t *Terminal) Write(buf *core.CellBuffer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	w, h := t.backend.Size()
	if err := t.output.frame(buf, w, h); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// SetCursor positions the cursor (0-indexed), clamped to the screen
func (t *Terminal) SetCursor(p core.Point) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	w, h := t.backend.Size()
	x := max(0, min(p.X, w-1))
	y := max(0, min(p.Y, h-1))

	wBuf := t.output.writer
	writeCursorPos(wBuf, x, y)
	return wBuf.Flush()
}

// SetCursorVisible shows or hides the text cursor
func (t *Terminal) SetCursorVisible(visible bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || t.cursorVisible == visible {
		return nil
	}
	t.cursorVisible = visible

	w := t.output.writer
	if visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
	return w.Flush()
}

// SetMouseMode changes which mouse events the terminal reports
func (t *Terminal) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	w := t.output.writer
	writeMouseMode(w, t.mouseMode, mode)
	t.mouseMode = mode
	return w.Flush()
}

// Terminal implements platform.Application
func (t *Terminal) Terminal() platform.Terminal { return t }

// Window implements platform.Application
func (t *Terminal) Window() platform.Window { return t }

// Mouse implements platform.Application
func (t *Terminal) Mouse() platform.Mouse { return t }

// ListenEvents waits up to the poll interval for input, then moves everything
// pending into q without blocking again
func (t *Terminal) ListenEvents(q *event.Queue) error {
	timer := time.NewTimer(t.opts.PollInterval)
	defer timer.Stop()

	in := t.input.events()

	select {
	case ev, ok := <-in:
		if !ok {
			return t.input.Err()
		}
		t.enqueue(q, ev)
	case ev := <-t.resizeCh:
		t.enqueue(q, ev)
	case <-timer.C:
		return nil
	}

	for {
		select {
		case ev, ok := <-in:
			if !ok {
				return t.input.Err()
			}
			t.enqueue(q, ev)
		case ev := <-t.resizeCh:
			t.enqueue(q, ev)
		default:
			return nil
		}
	}
}

func (t *Terminal) enqueue(q *event.Queue, ev event.Event) {
	if ev.Kind == event.KindMouse {
		t.lastMouse = ev.Mouse.Position
	}
	q.Add(ev)
}

// ClientSize returns the text area in pixels when the tty reports it
func (t *Terminal) ClientSize() (core.Size, error) {
	w, h := t.backend.PixelSize()
	if w == 0 || h == 0 {
		return core.Size{}, platform.ErrUnimplemented
	}
	return core.Sz(w, h), nil
}

// WindowSize is unknown to a tty, decorations are outside its reach
func (t *Terminal) WindowSize() (core.Size, error) {
	return core.Size{}, platform.ErrUnimplemented
}

// SetWindowSize asks the emulator to resize to size cells
func (t *Terminal) SetWindowSize(size core.Size) error {
	return t.windowOp(windowOpResizeCell, size.Height, size.Width)
}

// WindowPosition would need a query round-trip through stdin
func (t *Terminal) WindowPosition() (core.Point, error) {
	return core.Point{}, platform.ErrUnimplemented
}

// SetWindowPosition asks the emulator to move its window, in pixels
func (t *Terminal) SetWindowPosition(p core.Point) error {
	return t.windowOp(windowOpMove, p.X, p.Y)
}

func (t *Terminal) windowOp(op, a, b int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	w := t.output.writer
	writeWindowOp(w, op, a, b)
	return w.Flush()
}

// AbsolutePosition is not observable from a tty
func (t *Terminal) AbsolutePosition() (core.Point, error) {
	return core.Point{}, platform.ErrUnimplemented
}

// ClientPosition returns the cell of the last mouse report
func (t *Terminal) ClientPosition() (core.Point, error) {
	return t.lastMouse, nil
}

// SetPosition cannot warp the pointer from a tty
func (t *Terminal) SetPosition(core.Point) error {
	return platform.ErrUnimplemented
}

// ShowCursor cannot change pointer visibility from a tty
func (t *Terminal) ShowCursor(bool) error {
	return platform.ErrUnimplemented
}
