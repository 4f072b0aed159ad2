// Package tcellterm runs the platform contracts on top of a tcell screen
package tcellterm

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
	"github.com/lixenwraith/gridterm/terminal"
)

const wheelStep = 120

// Options configure the tcell backend
type Options struct {
	PollInterval time.Duration
	Background   core.Color
	Logger       *slog.Logger
}

// Screen adapts a tcell.Screen to platform.Application
type Screen struct {
	screen tcell.Screen
	opts   Options
	logger *slog.Logger

	events chan tcell.Event
	quit   chan struct{}

	// Mouse bookkeeping, owned by the ListenEvents caller
	buttons   tcell.ButtonMask
	latch     platform.ButtonLatch
	clicks    *platform.ClickDetector
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

// New opens the default tcell screen for the current terminal
func New(opts Options) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewWithScreen(s, opts), nil
}

// NewWithScreen wraps an existing screen, e.g. a simulation screen
func NewWithScreen(s tcell.Screen, opts Options) *Screen {
	if opts.PollInterval <= 0 {
		opts.PollInterval = terminal.DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Screen{
		screen: s,
		opts:   opts,
		logger: logger.With("backend", "tcell"),
		events: make(chan tcell.Event, 256),
		quit:   make(chan struct{}),
		clicks: platform.NewClickDetector(platform.DefaultDoubleClickWindow),
		now:    time.Now,
	}
}

// Init initializes the screen and starts the event pump
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}

	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()
	s.screen.Fill(' ', s.style(core.Grey, s.opts.Background))
	s.screen.Show()

	terminal.Go(s.pump)

	s.initialized = true
	s.logger.Info("screen initialized", "colors", s.screen.Colors())
	return nil
}

// pump forwards tcell events until the screen is finalized
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Dispose finalizes the screen. Safe to call multiple times
func (s *Screen) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	close(s.quit)
	s.screen.Fini()
	s.finalized = true
	s.logger.Info("screen disposed")
	return nil
}

func (s *Screen) style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg.PaletteIndex()))).
		Background(tcell.PaletteColor(int(bg.PaletteIndex())))
}

// ConsoleSize returns the screen size in cells
func (s *Screen) ConsoleSize() (core.Size, error) {
	w, h := s.screen.Size()
	return core.Sz(w, h), nil
}

// Clear fills the screen with the configured background
func (s *Screen) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	s.screen.Fill(' ', s.style(core.Grey, s.opts.Background))
	s.screen.Show()
	return nil
}

// Write copies buf into the screen, clipped, and shows it
func (s *Screen) Write(buf *core.CellBuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}

	w, h := s.screen.Size()
	cols := min(buf.Width(), w)
	rows := min(buf.Height(), h)
	cells := buf.Cells()
	stride := buf.Width()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*stride+x]
			s.screen.SetContent(x, y, printable(c.Rune), nil, s.style(c.Foreground, c.Background))
		}
	}
	s.screen.Show()
	return nil
}

// printable keeps one rune per column
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

	w, h := s.screen.Size()
	s.cursor = core.Pt(max(0, min(p.X, w-1)), max(0, min(p.Y, h-1)))
	if s.cursorVisible {
		s.screen.ShowCursor(s.cursor.X, s.cursor.Y)
		s.screen.Show()
	}
	return nil
}

// SetCursorVisible shows or hides the text cursor
func (s *Screen) SetCursorVisible(visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursorVisible = visible
	if visible {
		s.screen.ShowCursor(s.cursor.X, s.cursor.Y)
	} else {
		s.screen.HideCursor()
	}
	s.screen.Show()
	return nil
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
		s.dispatch(q, ev)
	case <-timer.C:
		return nil
	}

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return terminal.ErrInputClosed
			}
			s.dispatch(q, ev)
		default:
			return nil
		}
	}
}

func (s *Screen) dispatch(q *event.Queue, tev tcell.Event) {
	ev, ok := s.translate(tev)
	if !ok {
		return
	}
	if ev.Kind == event.KindMouse {
		s.lastMouse = ev.Mouse.Position
	}
	q.Add(ev)
}

// translate normalizes one tcell event; false for events with no counterpart
func (s *Screen) translate(tev tcell.Event) (event.Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		return event.FromKeyboard(translateKey(ev)), true

	case *tcell.EventMouse:
		return event.FromMouse(s.translateMouse(ev)), true

	case *tcell.EventResize:
		w, h := ev.Size()
		return event.FromWindow(event.WindowEvent{Type: event.WindowResize, Size: core.Sz(w, h)}), true

	case *tcell.EventFocus:
		if ev.Focused {
			return event.FromWindow(event.WindowEvent{Type: event.WindowFocus}), true
		}
		return event.FromWindow(event.WindowEvent{Type: event.WindowLostFocus}), true

	case *tcell.EventError:
		s.logger.Warn("tcell error event", "error", ev.Error())
	}
	return event.Event{}, false
}

// mouseButtons pairs tcell masks with latch buttons
var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button platform.Button
}{
	{tcell.Button1, platform.ButtonLeft},
	{tcell.Button3, platform.ButtonMiddle},
	{tcell.Button2, platform.ButtonRight},
	{tcell.Button4, platform.ButtonExtra1},
	{tcell.Button5, platform.ButtonExtra2},
	{tcell.Button6, platform.ButtonExtra3},
	{tcell.Button7, platform.ButtonExtra4},
}

// translateMouse diffs the button mask against the previous report,
// since tcell reports state rather than transitions
func (s *Screen) translateMouse(ev *tcell.EventMouse) event.MouseEvent {
	x, y := ev.Position()
	pos := core.Pt(x, y)
	mask := ev.Buttons()
	me := event.MouseEvent{Type: event.MouseMove, Position: pos}

	switch {
	case mask&tcell.WheelUp != 0:
		me.Type, me.WheelDelta = event.Wheel, wheelStep
	case mask&tcell.WheelDown != 0:
		me.Type, me.WheelDelta = event.Wheel, -wheelStep
	case mask&tcell.WheelLeft != 0:
		me.Type, me.WheelDelta = event.HorizontalWheel, -wheelStep
	case mask&tcell.WheelRight != 0:
		me.Type, me.WheelDelta = event.HorizontalWheel, wheelStep
	default:
		// Every edge updates the latch; the first press decides the type,
		// so a double click survives a chord reported in the same event
		pressed := false
		for _, mb := range mouseButtons {
			down := mask&mb.mask != 0
			was := s.buttons&mb.mask != 0
			switch {
			case down && !was:
				s.latch.Press(mb.button)
				if !pressed {
					me.Type = s.clicks.Press(mb.button, pos, s.now())
					pressed = true
				}
			case !down && was:
				s.latch.Release(mb.button)
				if !pressed {
					me.Type = event.Click
				}
			}
		}
		s.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3 |
			tcell.Button4 | tcell.Button5 | tcell.Button6 | tcell.Button7)
	}

	s.latch.Apply(&me)
	return me
}

// ClientSize is not exposed by tcell
func (s *Screen) ClientSize() (core.Size, error) {
	return core.Size{}, platform.ErrUnimplemented
}

// WindowSize is not exposed by tcell
func (s *Screen) WindowSize() (core.Size, error) {
	return core.Size{}, platform.ErrUnimplemented
}

// SetWindowSize asks the emulator for a new size in cells
func (s *Screen) SetWindowSize(size core.Size) error {
	s.screen.SetSize(size.Width, size.Height)
	return nil
}

// WindowPosition is not exposed by tcell
func (s *Screen) WindowPosition() (core.Point, error) {
	return core.Point{}, platform.ErrUnimplemented
}

// SetWindowPosition is not exposed by tcell
func (s *Screen) SetWindowPosition(core.Point) error {
	return platform.ErrUnimplemented
}

// AbsolutePosition is not observable through tcell
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
