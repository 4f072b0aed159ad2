package terminal

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gridterm/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a flag value; "auto" and "" defer to DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256", "palette":
		return ColorMode256, nil
	case "truecolor", "24bit", "rgb":
		return ColorModeTrueColor, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", s)
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// paletteHex is the classic VGA rendition of the 16 palette entries
var paletteHex = [core.ColorCount]string{
	core.Black:       "#000000",
	core.DarkRed:     "#800000",
	core.DarkGreen:   "#008000",
	core.DarkYellow:  "#808000",
	core.DarkBlue:    "#000080",
	core.DarkMagenta: "#800080",
	core.DarkCyan:    "#008080",
	core.Grey:        "#c0c0c0",
	core.DarkGrey:    "#808080",
	core.Red:         "#ff0000",
	core.Green:       "#00ff00",
	core.Yellow:      "#ffff00",
	core.Blue:        "#0000ff",
	core.Magenta:     "#ff00ff",
	core.Cyan:        "#00ffff",
	core.White:       "#ffffff",
}

var paletteRGB = buildPalette()

func buildPalette() [core.ColorCount]RGB {
	var p [core.ColorCount]RGB
	for i, hex := range paletteHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("palette entry %d: %v", i, err))
		}
		r, g, b := c.RGB255()
		p[i] = RGB{R: r, G: g, B: b}
	}
	return p
}

// ColorRGB returns the truecolor rendition of c, black for invalid colors
func ColorRGB(c core.Color) RGB {
	if !c.Valid() {
		return RGB{}
	}
	return paletteRGB[c]
}
