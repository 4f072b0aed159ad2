package terminal

import (
	"github.com/lixenwraith/gridterm/event"
)

// Modifier flags decoded from input
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// xtermModifier decodes the xterm modifier parameter (1 + bitmask)
// Meta is folded into Alt
func xtermModifier(param int) Modifier {
	if param < 2 {
		return ModNone
	}
	bits := param - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&(2|8) != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// csiFinalKeys maps the final byte of ESC [ [1;mod] X to a key
var csiFinalKeys = map[byte]event.Key{
	'A': event.KeyArrowUp,
	'B': event.KeyArrowDown,
	'C': event.KeyRight,
	'D': event.KeyLeft,
	'E': event.KeyClear, // Keypad 5 without numlock
	'H': event.KeyHome,
	'F': event.KeyEnd,
	'P': event.KeyF1,
	'Q': event.KeyF2,
	'R': event.KeyF3,
	'S': event.KeyF4,
	'Z': event.KeyTab, // Shift+Tab, modifier added by the parser
}

// csiTildeKeys maps the number of ESC [ N [;mod] ~ to a key
var csiTildeKeys = map[int]event.Key{
	1:  event.KeyHome,
	2:  event.KeyInsert,
	3:  event.KeyDelete,
	4:  event.KeyEnd,
	5:  event.KeyPrior,
	6:  event.KeyNext,
	7:  event.KeyHome,
	8:  event.KeyEnd,
	11: event.KeyF1,
	12: event.KeyF2,
	13: event.KeyF3,
	14: event.KeyF4,
	15: event.KeyF5,
	17: event.KeyF6,
	18: event.KeyF7,
	19: event.KeyF8,
	20: event.KeyF9,
	21: event.KeyF10,
	23: event.KeyF11,
	24: event.KeyF12,
	25: event.KeyF13,
	26: event.KeyF14,
	28: event.KeyF15,
	29: event.KeyF16,
	31: event.KeyF17,
	32: event.KeyF18,
	33: event.KeyF19,
	34: event.KeyF20,
}

// linuxConsoleKeys maps ESC [ [ X (Linux console function keys)
var linuxConsoleKeys = map[byte]event.Key{
	'A': event.KeyF1,
	'B': event.KeyF2,
	'C': event.KeyF3,
	'D': event.KeyF4,
	'E': event.KeyF5,
}

// ss3Keys maps ESC O X, including the application keypad
var ss3Keys = map[byte]event.Key{
	'A': event.KeyArrowUp,
	'B': event.KeyArrowDown,
	'C': event.KeyRight,
	'D': event.KeyLeft,
	'H': event.KeyHome,
	'F': event.KeyEnd,
	'P': event.KeyF1,
	'Q': event.KeyF2,
	'R': event.KeyF3,
	'S': event.KeyF4,
	'M': event.KeyReturn,
	'j': event.KeyMultiply,
	'k': event.KeyAdd,
	'l': event.KeySeparator,
	'm': event.KeySubtract,
	'n': event.KeyDecimal,
	'o': event.KeyDivide,
	'p': event.KeyNumPad0,
	'q': event.KeyNumPad1,
	'r': event.KeyNumPad2,
	's': event.KeyNumPad3,
	't': event.KeyNumPad4,
	'u': event.KeyNumPad5,
	'v': event.KeyNumPad6,
	'w': event.KeyNumPad7,
	'x': event.KeyNumPad8,
	'y': event.KeyNumPad9,
}

// controlKey maps a C0 control byte to its key and implied modifiers
// Bytes 0x01-0x1A are Ctrl+letter except the ones terminals reserve for editing keys
func controlKey(b byte) (event.Key, rune, Modifier) {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return event.KeySpace, 0, ModCtrl
	case 0x08: // Ctrl+H or Backspace
		return event.KeyBack, '\b', ModNone
	case 0x09:
		return event.KeyTab, '\t', ModNone
	case 0x0a, 0x0d: // LF, CR
		return event.KeyReturn, '\r', ModNone
	case 0x1b:
		return event.KeyEscape, 0x1b, ModNone
	case 0x1c:
		return event.KeyOem5, 0, ModCtrl
	case 0x1d:
		return event.KeyOem6, 0, ModCtrl
	case 0x1e: // Ctrl+^
		return event.Key6, 0, ModCtrl | ModShift
	case 0x1f: // Ctrl+_
		return event.KeyMinus, 0, ModCtrl | ModShift
	case 0x7f:
		return event.KeyBack, '\b', ModNone
	}
	if b >= 0x01 && b <= 0x1a {
		return event.KeyA + event.Key(b-0x01), 0, ModCtrl
	}
	return event.KeyNone, 0, ModNone
}
