package input

import (
	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
)

// MouseState is a snapshot of the last mouse event
type MouseState struct {
	LeftButton   bool
	MiddleButton bool
	RightButton  bool
	ExtraButton1 bool
	ExtraButton2 bool
	ExtraButton3 bool
	ExtraButton4 bool
	Position     core.Point
}

// NewMouseState returns a snapshot at the origin with no buttons held
func NewMouseState() *MouseState {
	return &MouseState{}
}

// Update overwrites every field from e; no debouncing or merging
func (s *MouseState) Update(e event.MouseEvent) {
	s.LeftButton = e.LeftButton
	s.MiddleButton = e.MiddleButton
	s.RightButton = e.RightButton
	s.ExtraButton1 = e.ExtraButton1
	s.ExtraButton2 = e.ExtraButton2
	s.ExtraButton3 = e.ExtraButton3
	s.ExtraButton4 = e.ExtraButton4
	s.Position = e.Position
}

// AnyButton reports whether any button is held
func (s *MouseState) AnyButton() bool {
	return s.LeftButton || s.MiddleButton || s.RightButton ||
		s.ExtraButton1 || s.ExtraButton2 || s.ExtraButton3 || s.ExtraButton4
}
