package tcellterm

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim, Options{PollInterval: 50 * time.Millisecond})
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(func() { s.Dispose() })
	return s, sim
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		key   event.Key
		ch    rune
		shift bool
		ctrl  bool
		alt   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), event.KeyA, 'a', false, false, false},
		{"upper", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), event.KeyQ, 'Q', true, false, false},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), event.KeyX, 'x', false, false, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.KeyReturn, '\r', false, false, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), event.KeyEscape, 0x1b, false, false, false},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), event.KeyC, 0, false, true, false},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), event.KeyArrowUp, 0, true, false, false},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), event.KeyNext, 0, false, false, false},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), event.KeyTab, 0, true, false, false},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), event.KeyF12, 0, false, false, false},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), event.KeyDelete, 0, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := translateKey(tt.ev)
			if k.Type != event.KeyDown {
				t.Errorf("Expected KeyDown, got %v", k.Type)
			}
			if k.Key != tt.key {
				t.Errorf("Key = %v, want %v", k.Key, tt.key)
			}
			if k.Character != tt.ch {
				t.Errorf("Character = %q, want %q", k.Character, tt.ch)
			}
			if k.LeftShift != tt.shift || k.LeftControl != tt.ctrl || k.LeftMenu != tt.alt {
				t.Errorf("Modifiers shift=%t ctrl=%t alt=%t, want %t %t %t",
					k.LeftShift, k.LeftControl, k.LeftMenu, tt.shift, tt.ctrl, tt.alt)
			}
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	s := NewWithScreen(tcell.NewSimulationScreen(""), Options{})
	clock := time.Unix(100, 0)
	s.now = func() time.Time { return clock }

	steps := []struct {
		name  string
		ev    *tcell.EventMouse
		typ   event.MouseEventType
		left  bool
		right bool
		wheel int16
	}{
		{"press", tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), event.Click, true, false, 0},
		{"drag", tcell.NewEventMouse(4, 4, tcell.Button1, tcell.ModNone), event.MouseMove, true, false, 0},
		{"chord", tcell.NewEventMouse(4, 4, tcell.Button1|tcell.Button2, tcell.ModNone), event.Click, true, true, 0},
		{"release left", tcell.NewEventMouse(4, 4, tcell.Button2, tcell.ModNone), event.Click, false, true, 0},
		{"release all", tcell.NewEventMouse(4, 4, tcell.ButtonNone, tcell.ModNone), event.Click, false, false, 0},
		{"move", tcell.NewEventMouse(9, 1, tcell.ButtonNone, tcell.ModNone), event.MouseMove, false, false, 0},
		{"wheel up", tcell.NewEventMouse(9, 1, tcell.WheelUp, tcell.ModNone), event.Wheel, false, false, 120},
		{"wheel down", tcell.NewEventMouse(9, 1, tcell.WheelDown, tcell.ModNone), event.Wheel, false, false, -120},
		{"wheel right", tcell.NewEventMouse(9, 1, tcell.WheelRight, tcell.ModNone), event.HorizontalWheel, false, false, 120},
	}

	for _, st := range steps {
		clock = clock.Add(time.Second)
		m := s.translateMouse(st.ev)
		if m.Type != st.typ {
			t.Errorf("%s: type %v, want %v", st.name, m.Type, st.typ)
		}
		if m.LeftButton != st.left || m.RightButton != st.right {
			t.Errorf("%s: buttons L=%t R=%t, want L=%t R=%t", st.name, m.LeftButton, m.RightButton, st.left, st.right)
		}
		if m.WheelDelta != st.wheel {
			t.Errorf("%s: wheel %d, want %d", st.name, m.WheelDelta, st.wheel)
		}
	}

	// Two quick presses on one cell
	s.translateMouse(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	s.translateMouse(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	clock = clock.Add(50 * time.Millisecond)
	if m := s.translateMouse(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)); m.Type != event.DoubleClick {
		t.Errorf("Expected DoubleClick, got %v", m.Type)
	}
}

func TestTranslateMouseChordKeepsFirstPress(t *testing.T) {
	s := NewWithScreen(tcell.NewSimulationScreen(""), Options{})
	clock := time.Unix(100, 0)
	s.now = func() time.Time { return clock }

	s.translateMouse(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	s.translateMouse(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))
	clock = clock.Add(50 * time.Millisecond)

	// Left and right land together; the left double click is not overwritten
	m := s.translateMouse(tcell.NewEventMouse(2, 2, tcell.Button1|tcell.Button2, tcell.ModNone))
	if m.Type != event.DoubleClick {
		t.Errorf("Expected DoubleClick, got %v", m.Type)
	}
	if !m.LeftButton || !m.RightButton {
		t.Errorf("Expected both buttons held, got L=%t R=%t", m.LeftButton, m.RightButton)
	}

	// Releasing left while pressing middle reports the press
	clock = clock.Add(time.Second)
	m = s.translateMouse(tcell.NewEventMouse(2, 2, tcell.Button2|tcell.Button3, tcell.ModNone))
	if m.Type != event.Click {
		t.Errorf("Expected Click, got %v", m.Type)
	}
	if m.LeftButton || !m.MiddleButton || !m.RightButton {
		t.Errorf("Unexpected buttons L=%t M=%t R=%t", m.LeftButton, m.MiddleButton, m.RightButton)
	}
}

func TestTranslateWindowEvents(t *testing.T) {
	s := NewWithScreen(tcell.NewSimulationScreen(""), Options{})

	ev, ok := s.translate(tcell.NewEventResize(120, 40))
	if !ok || ev.Window.Type != event.WindowResize || ev.Window.Size != core.Sz(120, 40) {
		t.Errorf("Unexpected resize translation: %v", ev)
	}

	ev, ok = s.translate(&tcell.EventFocus{Focused: false})
	if !ok || ev.Window.Type != event.WindowLostFocus {
		t.Errorf("Unexpected focus translation: %v", ev)
	}

	if _, ok := s.translate(tcell.NewEventInterrupt(nil)); ok {
		t.Error("Interrupt should not translate")
	}
}

func TestWrite(t *testing.T) {
	s, sim := newSimScreen(t, 4, 2)

	buf := core.NewCellBuffer(core.DefaultCell('.'), core.Sz(6, 3))
	buf.Set(core.Pt(1, 0), core.NewCell('A', core.Yellow, core.DarkBlue))
	buf.Set(core.Pt(2, 1), core.NewCell('世', core.White, core.Black))

	if err := s.Write(buf); err != nil {
		t.Fatal(err)
	}

	r, _, style, _ := sim.GetContent(1, 0)
	if r != 'A' {
		t.Errorf("Expected A, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.PaletteColor(int(core.Yellow.PaletteIndex())) || bg != tcell.PaletteColor(int(core.DarkBlue.PaletteIndex())) {
		t.Errorf("Unexpected colors fg=%v bg=%v", fg, bg)
	}

	if r, _, _, _ := sim.GetContent(2, 1); r != '?' {
		t.Errorf("Expected wide rune replaced, got %q", r)
	}
	if r, _, _, _ := sim.GetContent(0, 1); r != '.' {
		t.Errorf("Expected default cell, got %q", r)
	}

	if size, _ := s.ConsoleSize(); size != core.Sz(4, 2) {
		t.Errorf("ConsoleSize = %v", size)
	}
}

func TestListenEvents(t *testing.T) {
	s, sim := newSimScreen(t, 20, 10)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectMouse(5, 6, tcell.Button1, tcell.ModNone)

	q := event.NewQueue()
	var gotKey, gotMouse bool
	for i := 0; i < 20 && !(gotKey && gotMouse); i++ {
		if err := s.ListenEvents(q); err != nil {
			t.Fatal(err)
		}
		q.Drain(func(ev event.Event) {
			switch ev.Kind {
			case event.KindKeyboard:
				gotKey = gotKey || ev.Keyboard.Key == event.KeyQ
			case event.KindMouse:
				gotMouse = gotMouse || ev.Mouse.Type == event.Click
			}
		})
	}
	if !gotKey || !gotMouse {
		t.Fatalf("Expected key and mouse events, key=%t mouse=%t", gotKey, gotMouse)
	}
	if p, _ := s.ClientPosition(); p != core.Pt(5, 6) {
		t.Errorf("ClientPosition = %v, want (5,6)", p)
	}
}
