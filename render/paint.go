package render

import (
	"github.com/lixenwraith/gridterm/core"
)

// Paint colors one cell touched by a drawing operation
// Implementations must tolerate out-of-range positions
type Paint interface {
	Paint(buf *core.CellBuffer, p core.Point)
}

// SolidPaint writes a fixed cell
type SolidPaint struct {
	Cell core.Cell
}

// NewSolidPaint wraps c
func NewSolidPaint(c core.Cell) *SolidPaint {
	return &SolidPaint{Cell: c}
}

// Paint implements Paint
func (s *SolidPaint) Paint(buf *core.CellBuffer, p core.Point) {
	buf.Set(p, s.Cell)
}

// PaintFunc adapts a function to Paint
type PaintFunc func(buf *core.CellBuffer, p core.Point)

// Paint implements Paint
func (f PaintFunc) Paint(buf *core.CellBuffer, p core.Point) {
	f(buf, p)
}
