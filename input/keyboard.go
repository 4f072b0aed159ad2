package input

import (
	"github.com/lixenwraith/gridterm/event"
)

// KeyboardState tracks which keys are held
// Every keyboard event must be fed through Update, otherwise the modifier bits go stale
type KeyboardState struct {
	Keys [event.KeyCount]bool
}

// NewKeyboardState returns a tracker with every key released
func NewKeyboardState() *KeyboardState {
	return &KeyboardState{}
}

// Update sets the event's key from its transition, then overwrites the six
// sided modifier bits from the event's flags regardless of which key it carries
func (s *KeyboardState) Update(e event.KeyboardEvent) {
	if e.Key < event.KeyCount {
		s.Keys[e.Key] = e.Type == event.KeyDown
	}
	s.Keys[event.KeyLeftShift] = e.LeftShift
	s.Keys[event.KeyLeftControl] = e.LeftControl
	s.Keys[event.KeyLeftMenu] = e.LeftMenu
	s.Keys[event.KeyRightShift] = e.RightShift
	s.Keys[event.KeyRightControl] = e.RightControl
	s.Keys[event.KeyRightMenu] = e.RightMenu
}

// IsDown reports whether k is held
func (s *KeyboardState) IsDown(k event.Key) bool {
	if k >= event.KeyCount {
		return false
	}
	return s.Keys[k]
}

// Reset releases every key, used when the window loses focus
func (s *KeyboardState) Reset() {
	s.Keys = [event.KeyCount]bool{}
}
