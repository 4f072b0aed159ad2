package event

import "strings"

// Key identifies a physical or virtual key, modelled on virtual-key codes
// Mouse buttons are keys too so KeyboardState can track them uniformly
type Key uint8

const (
	KeyNone Key = iota

	// Mouse buttons
	KeyLeftButton
	KeyRightButton
	KeyCancel
	KeyMiddleButton
	KeyXButton1
	KeyXButton2

	// Editing
	KeyBack
	KeyTab
	KeyClear
	KeyReturn
	KeyShift
	KeyControl
	KeyMenu
	KeyPause
	KeyCapital
	KeyKana
	KeyJunja
	KeyFinal
	KeyKanji
	KeyEscape
	KeyConvert
	KeyNonConvert
	KeyAccept
	KeyModeChange
	KeySpace

	// Navigation
	KeyPrior
	KeyNext
	KeyEnd
	KeyHome
	KeyLeft
	KeyArrowUp
	KeyRight
	KeyArrowDown
	KeySelect
	KeyPrint
	KeyExecute
	KeySnapshot
	KeyInsert
	KeyDelete
	KeyHelp

	// Digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// System
	KeyLeftWin
	KeyRightWin
	KeyApps
	KeySleep

	// Numeric keypad
	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyMultiply
	KeyAdd
	KeySeparator
	KeySubtract
	KeyDecimal
	KeyDivide

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Locks
	KeyNumLock
	KeyScroll

	// Sided modifiers
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftMenu
	KeyRightMenu

	// Browser and media
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserSearch
	KeyBrowserFavorites
	KeyBrowserHome
	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNextTrack
	KeyMediaPreviousTrack
	KeyMediaStop
	KeyMediaPlayPause
	KeyLaunchMail
	KeyLaunchMediaSelect
	KeyLaunchApp1
	KeyLaunchApp2

	// OEM punctuation
	KeyOem1 // ;:
	KeyPlus
	KeyComma
	KeyMinus
	KeyPeriod
	KeyOem2 // /?
	KeyOem3 // `~
	KeyOem4 // [{
	KeyOem5 // \|
	KeyOem6 // ]}
	KeyOem7 // '"
	KeyOem8
	KeyOem102

	// Misc
	KeyProcessKey
	KeyPacket
	KeyAttn
	KeyCrSel
	KeyExSel
	KeyEraseEof
	KeyPlay
	KeyZoom
	KeyPA1
	KeyOemClear

	// KeyCount is the number of defined keys, sizes KeyboardState
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:                "none",
	KeyLeftButton:          "left_button",
	KeyRightButton:         "right_button",
	KeyCancel:              "cancel",
	KeyMiddleButton:        "middle_button",
	KeyXButton1:            "x_button_1",
	KeyXButton2:            "x_button_2",
	KeyBack:                "backspace",
	KeyTab:                 "tab",
	KeyClear:               "clear",
	KeyReturn:              "enter",
	KeyShift:               "shift",
	KeyControl:             "control",
	KeyMenu:                "alt",
	KeyPause:               "pause",
	KeyCapital:             "caps_lock",
	KeyKana:                "kana",
	KeyJunja:               "junja",
	KeyFinal:               "final",
	KeyKanji:               "kanji",
	KeyEscape:              "escape",
	KeyConvert:             "convert",
	KeyNonConvert:          "non_convert",
	KeyAccept:              "accept",
	KeyModeChange:          "mode_change",
	KeySpace:               "space",
	KeyPrior:               "page_up",
	KeyNext:                "page_down",
	KeyEnd:                 "end",
	KeyHome:                "home",
	KeyLeft:                "left",
	KeyArrowUp:             "up",
	KeyRight:               "right",
	KeyArrowDown:           "down",
	KeySelect:              "select",
	KeyPrint:               "print",
	KeyExecute:             "execute",
	KeySnapshot:            "print_screen",
	KeyInsert:              "insert",
	KeyDelete:              "delete",
	KeyHelp:                "help",
	Key0:                   "0",
	Key1:                   "1",
	Key2:                   "2",
	Key3:                   "3",
	Key4:                   "4",
	Key5:                   "5",
	Key6:                   "6",
	Key7:                   "7",
	Key8:                   "8",
	Key9:                   "9",
	KeyA:                   "a",
	KeyB:                   "b",
	KeyC:                   "c",
	KeyD:                   "d",
	KeyE:                   "e",
	KeyF:                   "f",
	KeyG:                   "g",
	KeyH:                   "h",
	KeyI:                   "i",
	KeyJ:                   "j",
	KeyK:                   "k",
	KeyL:                   "l",
	KeyM:                   "m",
	KeyN:                   "n",
	KeyO:                   "o",
	KeyP:                   "p",
	KeyQ:                   "q",
	KeyR:                   "r",
	KeyS:                   "s",
	KeyT:                   "t",
	KeyU:                   "u",
	KeyV:                   "v",
	KeyW:                   "w",
	KeyX:                   "x",
	KeyY:                   "y",
	KeyZ:                   "z",
	KeyLeftWin:             "left_win",
	KeyRightWin:            "right_win",
	KeyApps:                "apps",
	KeySleep:               "sleep",
	KeyNumPad0:             "numpad_0",
	KeyNumPad1:             "numpad_1",
	KeyNumPad2:             "numpad_2",
	KeyNumPad3:             "numpad_3",
	KeyNumPad4:             "numpad_4",
	KeyNumPad5:             "numpad_5",
	KeyNumPad6:             "numpad_6",
	KeyNumPad7:             "numpad_7",
	KeyNumPad8:             "numpad_8",
	KeyNumPad9:             "numpad_9",
	KeyMultiply:            "multiply",
	KeyAdd:                 "add",
	KeySeparator:           "separator",
	KeySubtract:            "subtract",
	KeyDecimal:             "decimal",
	KeyDivide:              "divide",
	KeyF1:                  "f1",
	KeyF2:                  "f2",
	KeyF3:                  "f3",
	KeyF4:                  "f4",
	KeyF5:                  "f5",
	KeyF6:                  "f6",
	KeyF7:                  "f7",
	KeyF8:                  "f8",
	KeyF9:                  "f9",
	KeyF10:                 "f10",
	KeyF11:                 "f11",
	KeyF12:                 "f12",
	KeyF13:                 "f13",
	KeyF14:                 "f14",
	KeyF15:                 "f15",
	KeyF16:                 "f16",
	KeyF17:                 "f17",
	KeyF18:                 "f18",
	KeyF19:                 "f19",
	KeyF20:                 "f20",
	KeyF21:                 "f21",
	KeyF22:                 "f22",
	KeyF23:                 "f23",
	KeyF24:                 "f24",
	KeyNumLock:             "num_lock",
	KeyScroll:              "scroll_lock",
	KeyLeftShift:           "left_shift",
	KeyRightShift:          "right_shift",
	KeyLeftControl:         "left_control",
	KeyRightControl:        "right_control",
	KeyLeftMenu:            "left_alt",
	KeyRightMenu:           "right_alt",
	KeyBrowserBack:         "browser_back",
	KeyBrowserForward:      "browser_forward",
	KeyBrowserRefresh:      "browser_refresh",
	KeyBrowserStop:         "browser_stop",
	KeyBrowserSearch:       "browser_search",
	KeyBrowserFavorites:    "browser_favorites",
	KeyBrowserHome:         "browser_home",
	KeyVolumeMute:          "volume_mute",
	KeyVolumeDown:          "volume_down",
	KeyVolumeUp:            "volume_up",
	KeyMediaNextTrack:      "media_next",
	KeyMediaPreviousTrack:  "media_previous",
	KeyMediaStop:           "media_stop",
	KeyMediaPlayPause:      "media_play_pause",
	KeyLaunchMail:          "launch_mail",
	KeyLaunchMediaSelect:   "launch_media_select",
	KeyLaunchApp1:          "launch_app_1",
	KeyLaunchApp2:          "launch_app_2",
	KeyOem1:                "semicolon",
	KeyPlus:                "plus",
	KeyComma:               "comma",
	KeyMinus:               "minus",
	KeyPeriod:              "period",
	KeyOem2:                "slash",
	KeyOem3:                "backquote",
	KeyOem4:                "left_bracket",
	KeyOem5:                "backslash",
	KeyOem6:                "right_bracket",
	KeyOem7:                "quote",
	KeyOem8:                "oem_8",
	KeyOem102:              "oem_102",
	KeyProcessKey:          "process",
	KeyPacket:              "packet",
	KeyAttn:                "attn",
	KeyCrSel:               "crsel",
	KeyExSel:               "exsel",
	KeyEraseEof:            "erase_eof",
	KeyPlay:                "play",
	KeyZoom:                "zoom",
	KeyPA1:                 "pa1",
	KeyOemClear:            "oem_clear",
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, KeyCount)
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	// Common aliases
	m["esc"] = KeyEscape
	m["return"] = KeyReturn
	m["ctrl"] = KeyControl
	m["menu"] = KeyMenu
	m["pgup"] = KeyPrior
	m["pgdn"] = KeyNext
	m["del"] = KeyDelete
	m["ins"] = KeyInsert
	return m
}()

// String returns the canonical lower_snake name
func (k Key) String() string {
	if k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey resolves a key name, case-insensitive, accepting dashes for underscores
func ParseKey(name string) (Key, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	k, ok := nameToKey[n]
	return k, ok
}

// KeyForRune maps a character to the key that produces it on a US layout
// Letters ignore case; unmapped runes return KeyNone
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case ';', ':':
		return KeyOem1
	case '=', '+':
		return KeyPlus
	case ',', '<':
		return KeyComma
	case '-', '_':
		return KeyMinus
	case '.', '>':
		return KeyPeriod
	case '/', '?':
		return KeyOem2
	case '`', '~':
		return KeyOem3
	case '[', '{':
		return KeyOem4
	case '\\', '|':
		return KeyOem5
	case ']', '}':
		return KeyOem6
	case '\'', '"':
		return KeyOem7
	}
	return KeyNone
}
