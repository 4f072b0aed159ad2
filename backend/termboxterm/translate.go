package termboxterm

import (
	"time"
	"unicode"

	"github.com/nsf/termbox-go"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
)

const wheelStep = 120

// namedKeys maps termbox special keys; ctrl letters are handled by range
var namedKeys = map[termbox.Key]event.Key{
	termbox.KeyF1:         event.KeyF1,
	termbox.KeyF2:         event.KeyF2,
	termbox.KeyF3:         event.KeyF3,
	termbox.KeyF4:         event.KeyF4,
	termbox.KeyF5:         event.KeyF5,
	termbox.KeyF6:         event.KeyF6,
	termbox.KeyF7:         event.KeyF7,
	termbox.KeyF8:         event.KeyF8,
	termbox.KeyF9:         event.KeyF9,
	termbox.KeyF10:        event.KeyF10,
	termbox.KeyF11:        event.KeyF11,
	termbox.KeyF12:        event.KeyF12,
	termbox.KeyInsert:     event.KeyInsert,
	termbox.KeyDelete:     event.KeyDelete,
	termbox.KeyHome:       event.KeyHome,
	termbox.KeyEnd:        event.KeyEnd,
	termbox.KeyPgup:       event.KeyPrior,
	termbox.KeyPgdn:       event.KeyNext,
	termbox.KeyArrowUp:    event.KeyArrowUp,
	termbox.KeyArrowDown:  event.KeyArrowDown,
	termbox.KeyArrowLeft:  event.KeyLeft,
	termbox.KeyArrowRight: event.KeyRight,
	termbox.KeyEnter:      event.KeyReturn,
	termbox.KeyTab:        event.KeyTab,
	termbox.KeyBackspace:  event.KeyBack,
	termbox.KeyBackspace2: event.KeyBack,
	termbox.KeyEsc:        event.KeyEscape,
	termbox.KeySpace:      event.KeySpace,
}

var keyChars = map[termbox.Key]rune{
	termbox.KeyEnter:      '\r',
	termbox.KeyTab:        '\t',
	termbox.KeyBackspace:  '\b',
	termbox.KeyBackspace2: '\b',
	termbox.KeyEsc:        0x1b,
	termbox.KeySpace:      ' ',
}

// translateKey maps a termbox key event to a KeyDown
func translateKey(ev termbox.Event) event.KeyboardEvent {
	k := event.KeyboardEvent{
		Type:     event.KeyDown,
		LeftMenu: ev.Mod&termbox.ModAlt != 0,
	}

	if ev.Ch != 0 {
		k.Key = event.KeyForRune(ev.Ch)
		k.Character = ev.Ch
		k.KeyCode = uint16(ev.Ch)
		k.LeftShift = unicode.IsUpper(ev.Ch)
		return k
	}

	k.KeyCode = uint16(ev.Key)
	if key, ok := namedKeys[ev.Key]; ok {
		k.Key = key
		k.Character = keyChars[ev.Key]
		return k
	}

	switch {
	case ev.Key >= termbox.KeyCtrlA && ev.Key <= termbox.KeyCtrlZ:
		k.Key = event.KeyA + event.Key(ev.Key-termbox.KeyCtrlA)
		k.LeftControl = true
	case ev.Key == termbox.KeyCtrlSpace:
		k.Key = event.KeySpace
		k.LeftControl = true
	}
	return k
}

// mouseTracker rebuilds button state from termbox's press/release stream
type mouseTracker struct {
	latch  platform.ButtonLatch
	clicks *platform.ClickDetector
}

func newMouseTracker() *mouseTracker {
	return &mouseTracker{clicks: platform.NewClickDetector(platform.DefaultDoubleClickWindow)}
}

// translate maps a termbox mouse event received at now
// Release carries no button so it drops every latch
func (m *mouseTracker) translate(ev termbox.Event, now time.Time) event.MouseEvent {
	pos := core.Pt(ev.MouseX, ev.MouseY)
	me := event.MouseEvent{Type: event.MouseMove, Position: pos}

	var button platform.Button
	switch ev.Key {
	case termbox.MouseWheelUp:
		me.Type, me.WheelDelta = event.Wheel, wheelStep
	case termbox.MouseWheelDown:
		me.Type, me.WheelDelta = event.Wheel, -wheelStep
	case termbox.MouseRelease:
		m.latch.ReleaseAll()
		me.Type = event.Click
	case termbox.MouseLeft:
		button = platform.ButtonLeft
	case termbox.MouseMiddle:
		button = platform.ButtonMiddle
	case termbox.MouseRight:
		button = platform.ButtonRight
	}

	switch ev.Key {
	case termbox.MouseLeft, termbox.MouseMiddle, termbox.MouseRight:
		// Drags and repeats arrive as presses of a held button
		if m.latch.Press(button) && ev.Mod&termbox.ModMotion == 0 {
			me.Type = m.clicks.Press(button, pos, now)
		}
	}

	m.latch.Apply(&me)
	return me
}
