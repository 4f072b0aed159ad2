package render

import (
	"fmt"

	"github.com/lixenwraith/gridterm/core"
)

// Canvas is a drawing cursor over a CellBuffer
// It borrows the buffer for one drawing session; nothing else should mutate the buffer meanwhile
// Failed calls leave both the buffer and the pen position untouched
type Canvas struct {
	buf    *core.CellBuffer
	pen    core.Point
	stroke Paint
	fill   Paint
}

// NewCanvas binds a canvas to buf; either paint may be nil
func NewCanvas(buf *core.CellBuffer, stroke, fill Paint) *Canvas {
	return &Canvas{
		buf:    buf,
		stroke: stroke,
		fill:   fill,
	}
}

// Buffer returns the bound buffer
func (c *Canvas) Buffer() *core.CellBuffer {
	return c.buf
}

// SetStroke replaces the stroke paint, nil disables stroking
func (c *Canvas) SetStroke(p Paint) {
	c.stroke = p
}

// SetFill replaces the fill paint, nil disables filling
func (c *Canvas) SetFill(p Paint) {
	c.fill = p
}

// Position returns the pen position
func (c *Canvas) Position() core.Point {
	return c.pen
}

// MoveTo repositions the pen without drawing
func (c *Canvas) MoveTo(p core.Point) {
	c.pen = p
}

// LineTo strokes a line from the pen to end, both endpoints included
func (c *Canvas) LineTo(end core.Point) error {
	if c.stroke == nil {
		return ErrMissingStroke
	}
	c.line(c.stroke, c.pen.X, c.pen.Y, end.X, end.Y)
	c.pen = end
	return nil
}

// BezierTo strokes a quadratic Bézier curve from the pen through control to end
func (c *Canvas) BezierTo(end, control core.Point) error {
	if c.stroke == nil {
		return ErrMissingStroke
	}
	c.quadBezier(c.stroke, c.pen.X, c.pen.Y, control.X, control.Y, end.X, end.Y)
	c.pen = end
	return nil
}

// StrokeRect outlines [p.X, p.X+size.Width] × [p.Y, p.Y+size.Height], leaving the pen at p
func (c *Canvas) StrokeRect(p core.Point, size core.Size) error {
	if c.stroke == nil {
		return ErrMissingStroke
	}
	if err := checkSize(size); err != nil {
		return err
	}

	x0, y0 := p.X, p.Y
	x1, y1 := p.X+size.Width, p.Y+size.Height

	c.MoveTo(core.Pt(x0, y0))
	// Stroke is set, so the chained calls cannot fail
	_ = c.LineTo(core.Pt(x1, y0))
	_ = c.LineTo(core.Pt(x1, y1))
	_ = c.LineTo(core.Pt(x0, y1))
	_ = c.LineTo(core.Pt(x0, y0))
	return nil
}

// FillRect paints every cell of [p.X, p.X+size.Width] × [p.Y, p.Y+size.Height]
func (c *Canvas) FillRect(p core.Point, size core.Size) error {
	if c.fill == nil {
		return ErrMissingFill
	}
	if err := checkSize(size); err != nil {
		return err
	}

	for y := p.Y; y <= p.Y+size.Height; y++ {
		for x := p.X; x <= p.X+size.Width; x++ {
			c.fill.Paint(c.buf, core.Pt(x, y))
		}
	}
	return nil
}

// StrokeCircle outlines a circle whose bounding box starts at p
func (c *Canvas) StrokeCircle(p core.Point, radius int) error {
	return c.StrokeCircleFromCenter(p.Add(core.Pt(radius, radius)), radius)
}

// StrokeCircleFromCenter outlines a circle around center
func (c *Canvas) StrokeCircleFromCenter(center core.Point, radius int) error {
	if c.stroke == nil {
		return ErrMissingStroke
	}
	if radius < 0 {
		return fmt.Errorf("radius %d: %w", radius, ErrInvalidGeometry)
	}
	c.circle(c.stroke, center.X, center.Y, radius, false)
	return nil
}

// FillCircle fills a circle whose bounding box starts at p
func (c *Canvas) FillCircle(p core.Point, radius int) error {
	return c.FillCircleFromCenter(p.Add(core.Pt(radius, radius)), radius)
}

// FillCircleFromCenter fills a circle around center
func (c *Canvas) FillCircleFromCenter(center core.Point, radius int) error {
	if c.fill == nil {
		return ErrMissingFill
	}
	if radius < 0 {
		return fmt.Errorf("radius %d: %w", radius, ErrInvalidGeometry)
	}
	c.circle(c.fill, center.X, center.Y, radius, true)
	return nil
}

// StrokeEllipse outlines the ellipse inscribed in [p.X, p.X+size.Width] × [p.Y, p.Y+size.Height]
func (c *Canvas) StrokeEllipse(p core.Point, size core.Size) error {
	if c.stroke == nil {
		return ErrMissingStroke
	}
	if err := checkSize(size); err != nil {
		return err
	}
	c.ellipse(c.stroke, p.X, p.Y, p.X+size.Width, p.Y+size.Height, false)
	return nil
}

// StrokeEllipseFromCenter outlines an ellipse of the given extent around center
func (c *Canvas) StrokeEllipseFromCenter(center core.Point, size core.Size) error {
	return c.StrokeEllipse(center.Sub(core.Pt(size.Width/2, size.Height/2)), size)
}

// FillEllipse fills the ellipse inscribed in [p.X, p.X+size.Width] × [p.Y, p.Y+size.Height]
func (c *Canvas) FillEllipse(p core.Point, size core.Size) error {
	if c.fill == nil {
		return ErrMissingFill
	}
	if err := checkSize(size); err != nil {
		return err
	}
	c.ellipse(c.fill, p.X, p.Y, p.X+size.Width, p.Y+size.Height, true)
	return nil
}

// FillEllipseFromCenter fills an ellipse of the given extent around center
func (c *Canvas) FillEllipseFromCenter(center core.Point, size core.Size) error {
	return c.FillEllipse(center.Sub(core.Pt(size.Width/2, size.Height/2)), size)
}

func checkSize(size core.Size) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("size %dx%d: %w", size.Width, size.Height, ErrInvalidGeometry)
	}
	return nil
}

func (c *Canvas) plot(p Paint, x, y int) {
	p.Paint(c.buf, core.Point{X: x, Y: y})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
