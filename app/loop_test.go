package app

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
)

var errExhausted = errors.New("script exhausted")

// fakeApp replays scripted event batches, one per ListenEvents call
type fakeApp struct {
	batches   [][]event.Event
	sizes     []core.Size // ConsoleSize per iteration, last one repeats
	calls     int
	writes    int
	writeErrs int // Fail this many writes first
	frames    []*core.CellBuffer
	listenErr error
}

func (a *fakeApp) Terminal() platform.Terminal { return a }
func (a *fakeApp) Window() platform.Window     { return nil }
func (a *fakeApp) Mouse() platform.Mouse       { return nil }

func (a *fakeApp) ListenEvents(q *event.Queue) error {
	if a.listenErr != nil {
		return a.listenErr
	}
	if a.calls >= len(a.batches) {
		return errExhausted
	}
	for _, ev := range a.batches[a.calls] {
		q.Add(ev)
	}
	a.calls++
	return nil
}

func (a *fakeApp) ConsoleSize() (core.Size, error) {
	i := min(a.calls, len(a.sizes)-1)
	return a.sizes[i], nil
}

func (a *fakeApp) Clear() error                { return nil }
func (a *fakeApp) SetCursor(core.Point) error  { return nil }
func (a *fakeApp) SetCursorVisible(bool) error { return nil }
func (a *fakeApp) Dispose() error              { return nil }

func (a *fakeApp) Write(buf *core.CellBuffer) error {
	a.writes++
	if a.writeErrs > 0 {
		a.writeErrs--
		return errors.New("broken pipe")
	}
	snap := core.NewCellBuffer(core.Cell{}, buf.Size())
	snap.WriteCellBuffer(buf, core.Point{})
	a.frames = append(a.frames, snap)
	return nil
}

func key(k event.Key, ch rune) event.Event {
	return event.FromKeyboard(event.KeyboardEvent{Type: event.KeyDown, Key: k, Character: ch})
}

func mouse(typ event.MouseEventType, p core.Point, left bool) event.Event {
	return event.FromMouse(event.MouseEvent{Type: typ, Position: p, LeftButton: left})
}

func TestRunDemoQuits(t *testing.T) {
	app := &fakeApp{
		sizes: []core.Size{core.Sz(60, 20)},
		batches: [][]event.Event{
			{mouse(event.Click, core.Pt(3, 3), true), mouse(event.MouseMove, core.Pt(4, 3), true)},
			{key(event.KeyQ, 'q')},
		},
	}
	ctx := NewContext(core.DefaultCell(' '))
	demo := NewDemo(event.KeyQ, core.Black, "fake")

	if err := Run(ctx, app, Options{Fill: core.DefaultCell(' ')}, demo); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if len(app.frames) != 1 {
		t.Fatalf("Expected 1 frame before quit, got %d", len(app.frames))
	}
	if ctx.Frame != 1 {
		t.Errorf("Expected frame counter 1, got %d", ctx.Frame)
	}
	if !ctx.Mouse.LeftButton || ctx.Mouse.Position != core.Pt(4, 3) {
		t.Errorf("Mouse tracker not updated: %+v", ctx.Mouse)
	}
	if !ctx.Keyboard.IsDown(event.KeyQ) {
		t.Error("Keyboard tracker did not see the quit key")
	}

	frame := app.frames[0]
	for _, p := range []core.Point{core.Pt(3, 3), core.Pt(4, 3)} {
		if c, _ := frame.Get(p); c.Rune != paintRune {
			t.Errorf("Expected painted cell at %v, got %q", p, c.Rune)
		}
	}
	if c, _ := frame.Get(core.Pt(1, 0)); c.Rune != 'g' || c.Background != core.DarkBlue {
		t.Errorf("Expected stats bar on row 0, got %+v", c)
	}
}

func TestRunCtrlCQuits(t *testing.T) {
	ctrlC := event.FromKeyboard(event.KeyboardEvent{Type: event.KeyDown, Key: event.KeyC, LeftControl: true})
	app := &fakeApp{
		sizes:   []core.Size{core.Sz(10, 5)},
		batches: [][]event.Event{{ctrlC}},
	}
	ctx := NewContext(core.DefaultCell(' '))

	if err := Run(ctx, app, Options{}, NewDemo(event.KeyQ, core.Black, "fake")); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if app.writes != 0 {
		t.Errorf("Expected no frames, got %d", app.writes)
	}
}

func TestRunResizesBuffer(t *testing.T) {
	app := &fakeApp{
		sizes:   []core.Size{core.Sz(10, 4), core.Sz(30, 8), core.Size{}},
		batches: [][]event.Event{{}, {}, {}},
	}
	ctx := NewContext(core.DefaultCell(' '))

	err := Run(ctx, app, Options{}, NewDemo(event.KeyQ, core.Black, "fake"))
	if !errors.Is(err, errExhausted) {
		t.Fatalf("Expected script exhaustion, got %v", err)
	}
	if len(app.frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(app.frames))
	}
	want := []core.Size{core.Sz(10, 4), core.Sz(30, 8), {}}
	for i, f := range app.frames {
		if f.Size() != want[i] {
			t.Errorf("Frame %d size %v, want %v", i, f.Size(), want[i])
		}
	}
}

func TestRunSkipsFailedWrites(t *testing.T) {
	app := &fakeApp{
		sizes:     []core.Size{core.Sz(5, 5)},
		batches:   [][]event.Event{{}, {}, {}, {}},
		writeErrs: 2,
	}
	ctx := NewContext(core.DefaultCell(' '))

	err := Run(ctx, app, Options{}, NewDemo(event.KeyQ, core.Black, "fake"))
	if !errors.Is(err, errExhausted) {
		t.Fatalf("Expected script exhaustion, got %v", err)
	}
	if app.writes != 4 || ctx.Frame != 2 {
		t.Errorf("Expected 4 writes and 2 frames, got %d and %d", app.writes, ctx.Frame)
	}
}

func TestRunGivesUpAfterMaxWriteFailures(t *testing.T) {
	app := &fakeApp{
		sizes:     []core.Size{core.Sz(5, 5)},
		batches:   [][]event.Event{{}, {}, {}, {}},
		writeErrs: 10,
	}
	ctx := NewContext(core.DefaultCell(' '))

	err := Run(ctx, app, Options{MaxWriteFailures: 3}, NewDemo(event.KeyQ, core.Black, "fake"))
	if err == nil || errors.Is(err, errExhausted) {
		t.Fatalf("Expected write failure, got %v", err)
	}
	if app.writes != 3 {
		t.Errorf("Expected 3 attempts, got %d", app.writes)
	}
}

func TestRunPropagatesListenError(t *testing.T) {
	boom := errors.New("tty gone")
	app := &fakeApp{sizes: []core.Size{core.Sz(5, 5)}, listenErr: boom}

	err := Run(NewContext(core.DefaultCell(' ')), app, Options{}, NewDemo(event.KeyQ, core.Black, "fake"))
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped listen error, got %v", err)
	}
}

func TestLostFocusResetsKeyboard(t *testing.T) {
	app := &fakeApp{
		sizes: []core.Size{core.Sz(5, 5)},
		batches: [][]event.Event{
			{key(event.KeyA, 'a'), event.FromWindow(event.WindowEvent{Type: event.WindowLostFocus})},
		},
	}
	ctx := NewContext(core.DefaultCell(' '))

	Run(ctx, app, Options{}, NewDemo(event.KeyQ, core.Black, "fake"))
	if ctx.Keyboard.IsDown(event.KeyA) {
		t.Error("Expected keyboard state cleared on focus loss")
	}
}

func TestDemoBrushAndErase(t *testing.T) {
	ctx := NewContext(core.DefaultCell(' '))
	ctx.Buffer.Resize(core.DefaultCell(' '), core.Sz(20, 10))
	d := NewDemo(event.KeyQ, core.Black, "fake")

	feed := func(ev event.Event) {
		track(ctx, ev)
		if err := d.HandleEvent(ctx, ev); err != nil {
			t.Fatal(err)
		}
	}

	feed(event.FromMouse(event.MouseEvent{Type: event.Wheel, WheelDelta: 120}))
	if d.brush != 1 {
		t.Errorf("Expected brush 1 after wheel up, got %d", d.brush)
	}
	feed(event.FromMouse(event.MouseEvent{Type: event.Wheel, WheelDelta: -120}))
	feed(event.FromMouse(event.MouseEvent{Type: event.Wheel, WheelDelta: -120}))
	if d.brush != len(brushColors)-1 {
		t.Errorf("Expected brush to wrap backwards, got %d", d.brush)
	}

	feed(mouse(event.Click, core.Pt(5, 5), true))
	if _, ok := d.painted[core.Pt(5, 5)]; !ok {
		t.Fatal("Expected left button to paint")
	}
	feed(event.FromMouse(event.MouseEvent{Type: event.Click, Position: core.Pt(5, 5), RightButton: true}))
	if _, ok := d.painted[core.Pt(5, 5)]; ok {
		t.Error("Expected right button to erase")
	}

	feed(mouse(event.DoubleClick, core.Pt(10, 5), true))
	if len(d.stamps) != 1 {
		t.Fatalf("Expected a stamp, got %d", len(d.stamps))
	}
	if err := d.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	if c, _ := ctx.Buffer.Get(core.Pt(12, 5)); c.Rune != paintRune {
		t.Errorf("Expected stamp to reach radius, got %q", c.Rune)
	}

	feed(key(event.KeyDelete, 0))
	if len(d.painted) != 0 || len(d.stamps) != 0 {
		t.Error("Expected delete to clear the painting")
	}
}

func TestDemoDrawTinyBuffers(t *testing.T) {
	d := NewDemo(event.KeyQ, core.Black, "fake")
	for _, s := range []core.Size{{}, core.Sz(1, 1), core.Sz(3, 1), core.Sz(1, 3)} {
		ctx := NewContext(core.DefaultCell(' '))
		ctx.Buffer.Resize(core.DefaultCell(' '), s)
		if err := d.Draw(ctx); err != nil {
			t.Errorf("Draw on %v failed: %v", s, err)
		}
	}
}

func TestFPSCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewFPSCounter(start)

	for i := 1; i <= 30; i++ {
		c.Tick(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	if c.FPS() != 0 {
		t.Errorf("Expected no rate before a full second, got %f", c.FPS())
	}
	for i := 31; i <= 50; i++ {
		c.Tick(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	if c.FPS() != 50 {
		t.Errorf("Expected 50 fps, got %f", c.FPS())
	}
}
