package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/core"
)

// outputBuffer renders whole frames; every Write repaints every cell
type outputBuffer struct {
	colorMode ColorMode
	writer    *bufio.Writer

	// Substituted for runes that would not occupy exactly one column
	replacement rune

	// Style state for coalescing within one frame
	lastFg    core.Color
	lastBg    core.Color
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:      bufio.NewWriterSize(w, 65536),
		colorMode:   colorMode,
		replacement: '?',
	}
}

// frame writes buf from the top-left, clipped to width×height
func (o *outputBuffer) frame(buf *core.CellBuffer, width, height int) error {
	w := o.writer
	o.lastValid = false

	cols := min(buf.Width(), width)
	rows := min(buf.Height(), height)
	cells := buf.Cells()
	stride := buf.Width()

	for y := 0; y < rows; y++ {
		writeCursorPos(w, 0, y)
		row := cells[y*stride : y*stride+cols]

		for _, c := range row {
			o.writeStyle(w, c.Foreground, c.Background)

			r := o.printable(c.Rune)
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	return w.Flush()
}

// printable keeps the grid aligned: zero-width and wide runes are replaced
func (o *outputBuffer) printable(r rune) rune {
	if r >= 0x20 && r < 0x7f {
		return r
	}
	if r == 0 {
		return ' '
	}
	if runewidth.RuneWidth(r) != 1 {
		return o.replacement
	}
	return r
}

// writeStyle emits a single combined SGR sequence when colors change
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg core.Color) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	if !fgChanged && !bgChanged {
		return
	}

	w.Write(csi)
	if fgChanged {
		o.writeColor(w, fg, true)
	}
	if bgChanged {
		if fgChanged {
			w.WriteByte(';')
		}
		o.writeColor(w, bg, false)
	}
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastValid = true
}

// writeColor writes color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeColor(w *bufio.Writer, c core.Color, fg bool) {
	if o.colorMode == ColorModeTrueColor {
		if fg {
			w.Write(csiFgRGB)
		} else {
			w.Write(csiBgRGB)
		}
		rgb := ColorRGB(c)
		writeInt(w, int(rgb.R))
		w.WriteByte(';')
		writeInt(w, int(rgb.G))
		w.WriteByte(';')
		writeInt(w, int(rgb.B))
		return
	}

	if fg {
		w.Write(csiFg256)
	} else {
		w.Write(csiBg256)
	}
	writeInt(w, int(c.PaletteIndex()))
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg core.Color) error {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csi)
	o.writeColor(w, bg, false)
	w.WriteByte('m')
	w.Write(csiClear)

	o.lastValid = false
	return w.Flush()
}
