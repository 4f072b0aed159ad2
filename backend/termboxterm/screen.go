// Package termboxterm runs the platform contracts on termbox-go
//
// termbox keeps process-global state, so only one Screen may be
// initialized at a time
package termboxterm

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
	"github.com/lixenwraith/gridterm/terminal"
)

// Options configure the termbox backend
type Options struct {
	PollInterval time.Duration
	Background   core.Color
	Logger       *slog.Logger
}

// Screen adapts termbox to platform.Application
type Screen struct {
	opts   Options
	logger *slog.Logger

	events chan termbox.Event
	quit   chan struct{}
	done   chan struct{}

	mouse     *mouseTracker
	now       func() time.Time
	lastMouse core.Point

	mu            sync.Mutex
	initialized   bool
	finalized     bool
	cursor        core.Point
	cursorVisible bool
}

var (
	_ platform.Application = (*Screen)(nil)
	_ platform.Terminal    = (*Screen)(nil)
	_ platform.Window      = (*Screen)(nil)
	_ platform.Mouse       = (*Screen)(nil)
)

// New creates a termbox screen; call Init before use
func New(opts Options) *Screen {
	if opts.PollInterval <= 0 {
		opts.PollInterval = terminal.DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Screen{
		opts:   opts,
		logger: logger.With("backend", "termbox"),
		events: make(chan termbox.Event, 256),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		mouse:  newMouseTracker(),
		now:    time.Now,
	}
}

// attr maps a palette color to a termbox 256-color attribute
func attr(c core.Color) termbox.Attribute {
	return termbox.Attribute(c.PaletteIndex()) + 1
}

// Init takes over the terminal and starts the event pump
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()

	if err := termbox.Clear(attr(core.Grey), attr(s.opts.Background)); err != nil {
		termbox.Close()
		return fmt.Errorf("termbox clear: %w", err)
	}
	if err := termbox.Flush(); err != nil {
		termbox.Close()
		return fmt.Errorf("termbox flush: %w", err)
	}

	terminal.Go(func() { s.pump(termbox.PollEvent) })

	s.initialized = true
	s.logger.Info("screen initialized")
	return nil
}

// pump forwards polled events until an interrupt arrives
// Sends wait for the loop; once quit closes they are discarded so the pump
// keeps polling and Interrupt, which blocks until PollEvent takes it, returns
func (s *Screen) pump(poll func() termbox.Event) {
	defer close(s.done)
	defer close(s.events)
	for {
		ev := poll()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
		}
	}
}

// Dispose stops the pump and restores the terminal. Safe to call multiple times
func (s *Screen) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	close(s.quit)
	termbox.Interrupt()
	select {
	case <-s.done:
	case <-time.After(200 * time.Millisecond):
	}
	termbox.Close()
	s.finalized = true
	s.logger.Info("screen disposed")
	return nil
}

// ConsoleSize returns the terminal size in cells
func (s *Screen) ConsoleSize() (core.Size, error) {
	w, h := termbox.Size()
	return core.Sz(w, h), nil
}

// Clear fills the screen with the configured background
func (s *Screen) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	if err := termbox.Clear(attr(core.Grey), attr(s.opts.Background)); err != nil {
		return err
	}
	return termbox.Flush()
}

// Write copies buf into the back buffer, clipped, and flushes
func (s *Screen) Write(buf *core.CellBuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}

	w, h := termbox.Size()
	cols := min(buf.Width(), w)
	rows := min(buf.Height(), h)
	cells := buf.Cells()
	stride := buf.Width()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*stride+x]
			termbox.SetCell(x, y, printable(c.Rune), attr(c.Foreground), attr(c.Background))
		}
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("termbox flush: %w", err)
	}
	return nil
}

func printable(r rune) rune {
	if r == 0 {
		return ' '
	}
	if r >= 0x20 && r < 0x7f {
		return r
	}
	if runewidth.RuneWidth(r) != 1 {
		return '?'
	}
	return r
}

// SetCursor moves the text cursor, clamped to the screen
func (s *Screen) SetCursor(p core.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := termbox.Size()
	s.cursor = core.Pt(max(0, min(p.X, w-1)), max(0, min(p.Y, h-1)))
	if s.cursorVisible {
		termbox.SetCursor(s.cursor.X, s.cursor.Y)
		return termbox.Flush()
	}
	return nil
}

// SetCursorVisible shows or hides the text cursor
func (s *Screen) SetCursorVisible(visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursorVisible = visible
	if visible {
		termbox.SetCursor(s.cursor.X, s.cursor.Y)
	} else {
		termbox.HideCursor()
	}
	return termbox.Flush()
}

// Terminal implements platform.Application
func (s *Screen) Terminal() platform.Terminal { return s }

// Window implements platform.Application
func (s *Screen) Window() platform.Window { return s }

// Mouse implements platform.Application
func (s *Screen) Mouse() platform.Mouse { return s }

// ListenEvents waits up to the poll interval for the first event, then drains
func (s *Screen) ListenEvents(q *event.Queue) error {
	timer := time.NewTimer(s.opts.PollInterval)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return terminal.ErrInputClosed
		}
		if err := s.dispatch(q, ev); err != nil {
			return err
		}
	case <-timer.C:
		return nil
	}

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return terminal.ErrInputClosed
			}
			if err := s.dispatch(q, ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *Screen) dispatch(q *event.Queue, tev termbox.Event) error {
	switch tev.Type {
	case termbox.EventKey:
		q.Add(event.FromKeyboard(translateKey(tev)))
	case termbox.EventMouse:
		me := s.mouse.translate(tev, s.now())
		s.lastMouse = me.Position
		q.Add(event.FromMouse(me))
	case termbox.EventResize:
		q.Add(event.FromWindow(event.WindowEvent{
			Type: event.WindowResize,
			Size: core.Sz(tev.Width, tev.Height),
		}))
	case termbox.EventError:
		return fmt.Errorf("termbox input: %w", tev.Err)
	}
	return nil
}

// ClientSize is not exposed by termbox
func (s *Screen) ClientSize() (core.Size, error) {
	return core.Size{}, platform.ErrUnimplemented
}

// WindowSize is not exposed by termbox
func (s *Screen) WindowSize() (core.Size, error) {
	return core.Size{}, platform.ErrUnimplemented
}

// SetWindowSize is not exposed by termbox
func (s *Screen) SetWindowSize(core.Size) error {
	return platform.ErrUnimplemented
}

// WindowPosition is not exposed by termbox
func (s *Screen) WindowPosition() (core.Point, error) {
	return core.Point{}, platform.ErrUnimplemented
}

// SetWindowPosition is not exposed by termbox
func (s *Screen) SetWindowPosition(core.Point) error {
	return platform.ErrUnimplemented
}

// AbsolutePosition is not observable through termbox
func (s *Screen) AbsolutePosition() (core.Point, error) {
	return core.Point{}, platform.ErrUnimplemented
}

// ClientPosition returns the cell of the last mouse report
func (s *Screen) ClientPosition() (core.Point, error) {
	return s.lastMouse, nil
}

// SetPosition cannot warp the pointer
func (s *Screen) SetPosition(core.Point) error {
	return platform.ErrUnimplemented
}

// ShowCursor cannot change pointer visibility
func (s *Screen) ShowCursor(bool) error {
	return platform.ErrUnimplemented
}
