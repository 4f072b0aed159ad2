package core

import (
	"testing"
)

func TestNewCellBuffer(t *testing.T) {
	def := NewCell(' ', White, Blue)
	buf := NewCellBuffer(def, Sz(80, 24))

	if buf.Len() != 80*24 {
		t.Fatalf("Expected %d cells, got %d", 80*24, buf.Len())
	}
	if buf.Width() != 80 || buf.Height() != 24 {
		t.Errorf("Expected 80x24, got %dx%d", buf.Width(), buf.Height())
	}

	buf.Each(func(p Point, c Cell) {
		if c != def {
			t.Errorf("Expected default cell at %v, got %+v", p, c)
		}
	})
}

func TestEmptyBuffer(t *testing.T) {
	buf := NewCellBuffer(DefaultCell(' '), Size{})

	if buf.Len() != 0 {
		t.Errorf("Expected no cells, got %d", buf.Len())
	}
	if _, ok := buf.CoordinatesOf(0); ok {
		t.Error("Expected CoordinatesOf to fail on empty buffer")
	}
	if _, ok := buf.IndexOf(Pt(0, 0)); ok {
		t.Error("Expected IndexOf to fail on empty buffer")
	}
	if buf.Set(Pt(0, 0), DefaultCell('x')) {
		t.Error("Expected Set to fail on empty buffer")
	}
}

func TestIndexRoundTrip(t *testing.T) {
	sizes := []Size{Sz(1, 1), Sz(7, 3), Sz(3, 7), Sz(80, 24)}

	for _, s := range sizes {
		buf := NewCellBuffer(DefaultCell(' '), s)
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				p := Pt(x, y)
				idx, ok := buf.IndexOf(p)
				if !ok {
					t.Fatalf("%v: IndexOf(%v) failed", s, p)
				}
				if idx != x+s.Width*y {
					t.Errorf("%v: IndexOf(%v) = %d, want %d", s, p, idx, x+s.Width*y)
				}
				back, ok := buf.CoordinatesOf(idx)
				if !ok || back != p {
					t.Errorf("%v: round trip %v -> %d -> %v", s, p, idx, back)
				}
			}
		}
	}
}

func TestIndexOfOutOfRange(t *testing.T) {
	buf := NewCellBuffer(DefaultCell(' '), Sz(10, 5))

	tests := []Point{
		Pt(-1, 0), Pt(0, -1), Pt(10, 0), Pt(0, 5), Pt(10, 5), Pt(-3, -3),
	}
	for _, p := range tests {
		if _, ok := buf.IndexOf(p); ok {
			t.Errorf("Expected IndexOf(%v) to fail", p)
		}
		if _, ok := buf.Get(p); ok {
			t.Errorf("Expected Get(%v) to fail", p)
		}
		if buf.Set(p, DefaultCell('x')) {
			t.Errorf("Expected Set(%v) to fail", p)
		}
	}

	if _, ok := buf.CoordinatesOf(50); ok {
		t.Error("Expected CoordinatesOf(len) to fail")
	}
	if _, ok := buf.CoordinatesOf(-1); ok {
		t.Error("Expected CoordinatesOf(-1) to fail")
	}
}

func TestGetSet(t *testing.T) {
	buf := NewCellBuffer(DefaultCell(' '), Sz(10, 10))
	cell := NewCell('A', Red, DarkBlue)

	if !buf.Set(Pt(5, 5), cell) {
		t.Fatal("Expected Set to succeed")
	}
	got, ok := buf.Get(Pt(5, 5))
	if !ok {
		t.Fatal("Expected Get to succeed")
	}
	if got != cell {
		t.Errorf("Expected %+v, got %+v", cell, got)
	}
}

func TestResize(t *testing.T) {
	buf := NewCellBuffer(DefaultCell(' '), Sz(4, 4))
	buf.Set(Pt(1, 1), DefaultCell('x'))

	// Same size keeps contents
	buf.Resize(DefaultCell('.'), Sz(4, 4))
	if c, _ := buf.Get(Pt(1, 1)); c.Rune != 'x' {
		t.Errorf("Expected contents preserved on same-size resize, got %q", c.Rune)
	}
	if c, _ := buf.Get(Pt(0, 0)); c.Rune != ' ' {
		t.Errorf("Expected untouched cell preserved, got %q", c.Rune)
	}

	// Different size discards
	fill := NewCell('#', Yellow, Black)
	buf.Resize(fill, Sz(6, 2))
	if buf.Len() != 12 {
		t.Fatalf("Expected 12 cells, got %d", buf.Len())
	}
	for i, c := range buf.Cells() {
		if c != fill {
			t.Errorf("Cell %d not refilled: %+v", i, c)
		}
	}

	// Shrink to empty and back
	buf.Resize(fill, Size{})
	if buf.Len() != 0 {
		t.Errorf("Expected empty after resize to zero, got %d", buf.Len())
	}
	buf.Resize(fill, Sz(2, 2))
	if buf.Len() != 4 {
		t.Errorf("Expected 4 cells, got %d", buf.Len())
	}
}

func TestWriteString(t *testing.T) {
	buf := NewCellBuffer(DefaultCell('.'), Sz(5, 2))

	n := buf.WriteString("hello world", Pt(2, 0), White, Red)
	if n != 3 {
		t.Errorf("Expected 3 cells written, got %d", n)
	}

	want := "..hel"
	for x, r := range want {
		c, _ := buf.Get(Pt(x, 0))
		if c.Rune != r {
			t.Errorf("Row 0 col %d: expected %q, got %q", x, r, c.Rune)
		}
	}
	if c, _ := buf.Get(Pt(2, 0)); c.Foreground != White || c.Background != Red {
		t.Errorf("Expected restyled cell, got %+v", c)
	}

	// No wrap into the next row
	for x := 0; x < 5; x++ {
		if c, _ := buf.Get(Pt(x, 1)); c.Rune != '.' {
			t.Errorf("Row 1 col %d was written: %q", x, c.Rune)
		}
	}

	// Multi-byte runes occupy one cell each
	buf.WriteString("αβ", Pt(0, 1), Green, Black)
	if c, _ := buf.Get(Pt(1, 1)); c.Rune != 'β' {
		t.Errorf("Expected β, got %q", c.Rune)
	}

	if n := buf.WriteString("x", Pt(-1, 0), White, Black); n != 0 {
		t.Errorf("Expected out-of-range start to write nothing, wrote %d", n)
	}
}

func TestRepeatCell(t *testing.T) {
	buf := NewCellBuffer(DefaultCell('.'), Sz(6, 2))
	c := NewCell('-', Grey, DarkGrey)

	if n := buf.RepeatCell(c, Pt(1, 0), 100); n != 5 {
		t.Errorf("Expected 5 cells, got %d", n)
	}
	if got, _ := buf.Get(Pt(0, 0)); got.Rune != '.' {
		t.Error("Cell before start was overwritten")
	}
	if got, _ := buf.Get(Pt(0, 1)); got.Rune != '.' {
		t.Error("RepeatCell wrapped into next row")
	}

	if n := buf.RepeatCell(c, Pt(0, 1), 0); n != 0 {
		t.Errorf("Expected zero-length repeat to write nothing, got %d", n)
	}
}

func TestWriteCellBuffer(t *testing.T) {
	dst := NewCellBuffer(DefaultCell('.'), Sz(5, 5))
	src := NewCellBuffer(DefaultCell('#'), Sz(3, 3))
	src.Set(Pt(0, 0), DefaultCell('a'))
	src.Set(Pt(2, 2), DefaultCell('z'))

	tests := []struct {
		name  string
		at    Point
		hashs int
		check map[Point]rune
	}{
		{"inside", Pt(1, 1), 7, map[Point]rune{Pt(1, 1): 'a', Pt(3, 3): 'z', Pt(0, 0): '.'}},
		{"clip right bottom", Pt(3, 3), 3, map[Point]rune{Pt(3, 3): 'a', Pt(4, 4): '#'}},
		{"clip left top", Pt(-2, -2), 0, map[Point]rune{Pt(0, 0): 'z', Pt(1, 1): '.'}},
		{"fully outside", Pt(5, 0), 0, map[Point]rune{Pt(4, 0): '.'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst.Fill(DefaultCell('.'))
			dst.WriteCellBuffer(src, tt.at)

			hashes := 0
			for _, c := range dst.Cells() {
				if c.Rune == '#' {
					hashes++
				}
			}
			if hashes != tt.hashs {
				t.Errorf("Expected %d '#' cells, got %d", tt.hashs, hashes)
			}
			for p, r := range tt.check {
				if c, _ := dst.Get(p); c.Rune != r {
					t.Errorf("At %v expected %q, got %q", p, r, c.Rune)
				}
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"black", Black, false},
		{"Dark_Blue", DarkBlue, false},
		{"dark-grey", DarkGrey, false},
		{"darkgray", DarkGrey, false},
		{"gray", Grey, false},
		{"chartreuse", Black, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPaletteIndexUnique(t *testing.T) {
	seen := make(map[uint8]Color)
	for c := Color(0); c < ColorCount; c++ {
		idx := c.PaletteIndex()
		if prev, dup := seen[idx]; dup {
			t.Errorf("%v and %v share palette index %d", prev, c, idx)
		}
		seen[idx] = c
	}
}
