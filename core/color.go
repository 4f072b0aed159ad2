package core

import (
	"fmt"
	"strings"
)

// Color is one of the 16 palette entries shared by every backend
type Color uint8

const (
	Black Color = iota
	Red
	DarkRed
	Green
	DarkGreen
	Yellow
	DarkYellow
	Blue
	DarkBlue
	Magenta
	DarkMagenta
	Cyan
	DarkCyan
	Grey
	DarkGrey
	White

	ColorCount
)

var colorNames = [ColorCount]string{
	Black:       "black",
	Red:         "red",
	DarkRed:     "dark_red",
	Green:       "green",
	DarkGreen:   "dark_green",
	Yellow:      "yellow",
	DarkYellow:  "dark_yellow",
	Blue:        "blue",
	DarkBlue:    "dark_blue",
	Magenta:     "magenta",
	DarkMagenta: "dark_magenta",
	Cyan:        "cyan",
	DarkCyan:    "dark_cyan",
	Grey:        "grey",
	DarkGrey:    "dark_grey",
	White:       "white",
}

// paletteIndex maps Color to the xterm 16-color index (0-7 normal, 8-15 bright)
var paletteIndex = [ColorCount]uint8{
	Black:       0,
	DarkRed:     1,
	DarkGreen:   2,
	DarkYellow:  3,
	DarkBlue:    4,
	DarkMagenta: 5,
	DarkCyan:    6,
	Grey:        7,
	DarkGrey:    8,
	Red:         9,
	Green:       10,
	Yellow:      11,
	Blue:        12,
	Magenta:     13,
	Cyan:        14,
	White:       15,
}

// String returns the canonical lower-case name
func (c Color) String() string {
	if c >= ColorCount {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Valid reports whether c is a palette entry
func (c Color) Valid() bool {
	return c < ColorCount
}

// PaletteIndex returns the xterm 16-color index, 0 for invalid colors
func (c Color) PaletteIndex() uint8 {
	if c >= ColorCount {
		return 0
	}
	return paletteIndex[c]
}

// ParseColor resolves a color name; "gray" spellings and dashes are accepted
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	n = strings.ReplaceAll(n, "gray", "grey")
	for i, cn := range colorNames {
		if cn == n || strings.ReplaceAll(cn, "_", "") == n {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}
