package tcellterm

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridterm/event"
)

// namedKeys covers tcell keys that are not runes, ctrl letters or function keys
// Tab, Enter, Backspace and Escape alias ctrl codes in tcell and are listed once
var namedKeys = map[tcell.Key]event.Key{
	tcell.KeyUp:         event.KeyArrowUp,
	tcell.KeyDown:       event.KeyArrowDown,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPrior,
	tcell.KeyPgDn:       event.KeyNext,
	tcell.KeyInsert:     event.KeyInsert,
	tcell.KeyDelete:     event.KeyDelete,
	tcell.KeyBacktab:    event.KeyTab,
	tcell.KeyClear:      event.KeyClear,
	tcell.KeyPause:      event.KeyPause,
	tcell.KeyPrint:      event.KeySnapshot,
	tcell.KeyHelp:       event.KeyHelp,
	tcell.KeyCancel:     event.KeyCancel,
	tcell.KeyEnter:      event.KeyReturn,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyBackspace:  event.KeyBack,
	tcell.KeyBackspace2: event.KeyBack,
	tcell.KeyEscape:     event.KeyEscape,
}

// keyChars are the characters reported for keys that type one
var keyChars = map[tcell.Key]rune{
	tcell.KeyEnter:      '\r',
	tcell.KeyTab:        '\t',
	tcell.KeyBackspace:  '\b',
	tcell.KeyBackspace2: '\b',
	tcell.KeyEscape:     0x1b,
}

// translateKey maps a tcell key event to a KeyDown
func translateKey(ev *tcell.EventKey) event.KeyboardEvent {
	mod := ev.Modifiers()
	k := event.KeyboardEvent{
		Type:        event.KeyDown,
		KeyCode:     uint16(ev.Key()),
		LeftShift:   mod&tcell.ModShift != 0,
		LeftControl: mod&tcell.ModCtrl != 0,
		LeftMenu:    mod&(tcell.ModAlt|tcell.ModMeta) != 0,
	}

	key := ev.Key()
	switch {
	case key == tcell.KeyRune:
		r := ev.Rune()
		k.Key = event.KeyForRune(r)
		k.Character = r
		k.KeyCode = uint16(r)
		if unicode.IsUpper(r) {
			k.LeftShift = true
		}
		if k.LeftControl {
			// Ctrl chords type nothing, matching the raw parser
			k.Character = 0
		}
	case key == tcell.KeyBacktab:
		k.Key = event.KeyTab
		k.LeftShift = true
	case namedKeys[key] != event.KeyNone:
		k.Key = namedKeys[key]
		k.Character = keyChars[key]
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		k.Key = event.KeyA + event.Key(key-tcell.KeyCtrlA)
		k.LeftControl = true
	case key == tcell.KeyCtrlSpace:
		k.Key = event.KeySpace
		k.LeftControl = true
	case key >= tcell.KeyF1 && key <= tcell.KeyF24:
		k.Key = event.KeyF1 + event.Key(key-tcell.KeyF1)
	}
	return k
}
