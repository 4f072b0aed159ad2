package app

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/render"
)

// brushColors cycle with the wheel
var brushColors = []core.Color{
	core.Yellow, core.Red, core.Green, core.Cyan, core.Magenta, core.White, core.Blue,
}

const (
	paintRune = '%'
	stampSize = 2
)

type stamp struct {
	center core.Point
	color  core.Color
}

// Demo is the interactive showcase: a stats bar, a canvas test pattern,
// mouse painting and a readout of the last key
type Demo struct {
	QuitKey    event.Key
	Background core.Color
	Backend    string

	brush   int
	painted map[core.Point]core.Color
	stamps  []stamp

	lastKey   event.KeyboardEvent
	haveKey   bool
	lastMouse event.MouseEventType
}

func NewDemo(quit event.Key, bg core.Color, backend string) *Demo {
	return &Demo{
		QuitKey:    quit,
		Background: bg,
		Backend:    backend,
		painted:    make(map[core.Point]core.Color),
	}
}

// HandleEvent implements Handler
func (d *Demo) HandleEvent(ctx *Context, ev event.Event) error {
	switch ev.Kind {
	case event.KindKeyboard:
		k := ev.Keyboard
		d.lastKey, d.haveKey = k, true
		if (k.Key == d.QuitKey && !k.Control()) || (k.Key == event.KeyC && k.Control()) {
			return ErrQuit
		}
		if k.Key == event.KeyDelete {
			clear(d.painted)
			d.stamps = d.stamps[:0]
		}

	case event.KindMouse:
		m := ev.Mouse
		d.lastMouse = m.Type
		switch m.Type {
		case event.Wheel, event.HorizontalWheel:
			step := 1
			if m.WheelDelta < 0 {
				step = len(brushColors) - 1
			}
			d.brush = (d.brush + step) % len(brushColors)
		case event.DoubleClick:
			d.stamps = append(d.stamps, stamp{m.Position, brushColors[d.brush]})
		}
		switch {
		case ctx.Mouse.LeftButton:
			d.painted[m.Position] = brushColors[d.brush]
		case ctx.Mouse.RightButton:
			delete(d.painted, m.Position)
		}
	}
	return nil
}

// Draw implements Handler
func (d *Demo) Draw(ctx *Context) error {
	buf := ctx.Buffer
	buf.Fill(core.NewCell(' ', core.Grey, d.Background))
	if buf.Len() == 0 {
		return nil
	}

	if err := d.drawPattern(buf); err != nil {
		return fmt.Errorf("test pattern: %w", err)
	}

	stampPaint := render.NewSolidPaint(core.Cell{})
	cv := render.NewCanvas(buf, nil, stampPaint)
	for _, s := range d.stamps {
		stampPaint.Cell = core.NewCell(paintRune, s.color, d.Background)
		if err := cv.FillCircleFromCenter(s.center, stampSize); err != nil {
			return err
		}
	}
	for p, c := range d.painted {
		buf.Set(p, core.NewCell(paintRune, c, d.Background))
	}

	d.drawStats(ctx)
	d.drawKeyReadout(buf)
	return nil
}

func solid(r rune, fg, bg core.Color) render.Paint {
	return render.NewSolidPaint(core.NewCell(r, fg, bg))
}

// drawPattern exercises every canvas primitive once
func (d *Demo) drawPattern(buf *core.CellBuffer) error {
	bg := d.Background
	cv := render.NewCanvas(buf, solid('#', core.Cyan, bg), solid('.', core.DarkCyan, bg))

	rects := errors.Join(
		cv.FillRect(core.Pt(2, 2), core.Sz(12, 5)),
		cv.StrokeRect(core.Pt(2, 2), core.Sz(12, 5)),
	)

	cv.SetStroke(solid('*', core.Yellow, bg))
	cv.MoveTo(core.Pt(16, 2))
	chain := errors.Join(
		cv.LineTo(core.Pt(28, 6)),
		cv.BezierTo(core.Pt(42, 2), core.Pt(35, 12)),
		cv.LineTo(core.Pt(42, 8)),
	)

	cv.SetFill(solid('o', core.DarkGreen, bg))
	cv.SetStroke(solid('O', core.Green, bg))
	circles := errors.Join(
		cv.FillCircleFromCenter(core.Pt(8, 14), 4),
		cv.StrokeCircleFromCenter(core.Pt(8, 14), 4),
		cv.StrokeCircle(core.Pt(15, 12), 2),
	)

	cv.SetFill(solid(':', core.DarkMagenta, bg))
	cv.SetStroke(solid('@', core.Magenta, bg))
	ellipses := errors.Join(
		cv.FillEllipse(core.Pt(22, 10), core.Sz(20, 8)),
		cv.StrokeEllipse(core.Pt(22, 10), core.Sz(20, 8)),
		cv.StrokeEllipseFromCenter(core.Pt(52, 6), core.Sz(14, 4)),
	)

	return errors.Join(rects, chain, circles, ellipses)
}

func mark(on bool, name string) string {
	if on {
		return name
	}
	return "-"
}

func (d *Demo) drawStats(ctx *Context) {
	buf := ctx.Buffer
	bar := core.NewCell(' ', core.White, core.DarkBlue)
	buf.RepeatCell(bar, core.Pt(0, 0), buf.Width())

	m := ctx.Mouse
	text := fmt.Sprintf(" gridterm [%s] %dx%d  %.1f fps  frame %d  mouse %d,%d %s%s%s %s  brush %s ",
		d.Backend, buf.Width(), buf.Height(), ctx.FPS.FPS(), ctx.Frame,
		m.Position.X, m.Position.Y,
		mark(m.LeftButton, "L"), mark(m.MiddleButton, "M"), mark(m.RightButton, "R"),
		d.lastMouse, brushColors[d.brush])
	buf.WriteString(text, core.Pt(0, 0), core.White, core.DarkBlue)
}

func (d *Demo) drawKeyReadout(buf *core.CellBuffer) {
	y := buf.Height() - 1
	if y < 1 {
		return
	}
	buf.RepeatCell(core.NewCell(' ', core.Black, core.Grey), core.Pt(0, y), buf.Width())

	key := "none"
	if d.haveKey {
		k := d.lastKey
		key = k.Key.String()
		if k.Control() {
			key = "ctrl+" + key
		}
		if k.Alt() {
			key = "alt+" + key
		}
		if k.Shift() {
			key = "shift+" + key
		}
		if k.Character >= 0x20 {
			key += fmt.Sprintf(" %q", k.Character)
		}
	}
	text := fmt.Sprintf(" key %s | %s quits  left paint  right erase  wheel brush  double-click stamp  del clears ",
		key, d.QuitKey)
	buf.WriteString(text, core.Pt(0, y), core.Black, core.Grey)
}
