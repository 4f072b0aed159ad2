package core

// CellBuffer is a dense row-major grid of cells: index = x + width*y
// Not safe for concurrent use; the frame loop owns it exclusively
type CellBuffer struct {
	size  Size
	cells []Cell
}

// NewCellBuffer allocates a buffer filled with def
func NewCellBuffer(def Cell, size Size) *CellBuffer {
	b := &CellBuffer{}
	b.reset(def, size)
	return b
}

func (b *CellBuffer) reset(def Cell, size Size) {
	if size.Area() == 0 {
		// Keep the extent for equality checks, but hold no cells
		b.size = size
		b.cells = b.cells[:0]
		return
	}
	b.size = size
	b.cells = make([]Cell, size.Area())
	for i := range b.cells {
		b.cells[i] = def
	}
}

// Size returns the grid extent
func (b *CellBuffer) Size() Size {
	return b.size
}

// Width returns the column count
func (b *CellBuffer) Width() int {
	return b.size.Width
}

// Height returns the row count
func (b *CellBuffer) Height() int {
	return b.size.Height
}

// Len returns the number of cells
func (b *CellBuffer) Len() int {
	return len(b.cells)
}

// Cells exposes the row-major backing slice for renderers
// Callers must not retain it across Resize
func (b *CellBuffer) Cells() []Cell {
	return b.cells
}

// Each visits every cell in row-major order
func (b *CellBuffer) Each(fn func(p Point, c Cell)) {
	w := b.size.Width
	for i, c := range b.cells {
		fn(Point{X: i % w, Y: i / w}, c)
	}
}

// Resize reallocates and fills with def when size differs; equal sizes keep contents
// Any size change discards previous contents
func (b *CellBuffer) Resize(def Cell, size Size) {
	if size == b.size {
		return
	}
	b.reset(def, size)
}

// Fill overwrites every cell with c
func (b *CellBuffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// IndexOf maps a position to its flat index
func (b *CellBuffer) IndexOf(p Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= b.size.Width || p.Y >= b.size.Height {
		return 0, false
	}
	idx := p.X + b.size.Width*p.Y
	if idx >= len(b.cells) {
		return 0, false
	}
	return idx, true
}

// CoordinatesOf maps a flat index back to its position
func (b *CellBuffer) CoordinatesOf(idx int) (Point, bool) {
	if b.size.Area() == 0 || idx < 0 || idx >= len(b.cells) {
		return Point{}, false
	}
	return Point{X: idx % b.size.Width, Y: idx / b.size.Width}, true
}

// Get returns the cell at p
func (b *CellBuffer) Get(p Point) (Cell, bool) {
	idx, ok := b.IndexOf(p)
	if !ok {
		return Cell{}, false
	}
	return b.cells[idx], true
}

// Set writes c at p, returns false if p is outside the grid
func (b *CellBuffer) Set(p Point, c Cell) bool {
	idx, ok := b.IndexOf(p)
	if !ok {
		return false
	}
	b.cells[idx] = c
	return true
}

// WriteString writes one rune per cell from p along the row, restyling each
// Writing stops at the row end, returns the number of cells written
func (b *CellBuffer) WriteString(text string, p Point, fg, bg Color) int {
	idx, ok := b.IndexOf(p)
	if !ok {
		return 0
	}
	rowEnd := idx - p.X + b.size.Width

	n := 0
	for _, r := range text {
		if idx >= rowEnd {
			break
		}
		b.cells[idx] = Cell{Rune: r, Foreground: fg, Background: bg}
		idx++
		n++
	}
	return n
}

// RepeatCell writes length copies of c from p along the row
func (b *CellBuffer) RepeatCell(c Cell, p Point, length int) int {
	idx, ok := b.IndexOf(p)
	if !ok || length <= 0 {
		return 0
	}
	end := min(idx+length, idx-p.X+b.size.Width)
	for i := idx; i < end; i++ {
		b.cells[i] = c
	}
	return end - idx
}

// WriteCellBuffer blits src with its top-left at p, clipping on all sides
func (b *CellBuffer) WriteCellBuffer(src *CellBuffer, p Point) {
	if src == nil || src.Len() == 0 || b.Len() == 0 {
		return
	}

	sw, sh := src.size.Width, src.size.Height

	// Source window that lands inside the destination
	x0 := max(0, -p.X)
	y0 := max(0, -p.Y)
	x1 := min(sw, b.size.Width-p.X)
	y1 := min(sh, b.size.Height-p.Y)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for sy := y0; sy < y1; sy++ {
		srcRow := src.cells[sy*sw+x0 : sy*sw+x1]
		dst := (p.Y+sy)*b.size.Width + p.X + x0
		copy(b.cells[dst:dst+len(srcRow)], srcRow)
	}
}
