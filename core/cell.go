package core

// Cell is one grid slot
type Cell struct {
	Rune       rune
	Foreground Color
	Background Color
}

// NewCell builds a cell with explicit colors
func NewCell(r rune, fg, bg Color) Cell {
	return Cell{Rune: r, Foreground: fg, Background: bg}
}

// DefaultCell builds a Grey on Black cell
func DefaultCell(r rune) Cell {
	return Cell{Rune: r, Foreground: Grey, Background: Black}
}
