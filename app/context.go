// Package app wires a platform backend to the core: it owns the frame loop,
// the per-loop state and the demo scene
package app

import (
	"time"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/input"
)

// Context is the loop state handed to every handler call
// It is owned by the loop goroutine and must not be shared
type Context struct {
	Buffer   *core.CellBuffer
	Queue    *event.Queue
	Keyboard *input.KeyboardState
	Mouse    *input.MouseState
	FPS      *FPSCounter

	// Frame counts successfully written frames
	Frame uint64
}

// NewContext creates loop state with an empty buffer; Run sizes it to the console
func NewContext(fill core.Cell) *Context {
	return &Context{
		Buffer:   core.NewCellBuffer(fill, core.Size{}),
		Queue:    event.NewQueue(),
		Keyboard: input.NewKeyboardState(),
		Mouse:    input.NewMouseState(),
		FPS:      NewFPSCounter(time.Now()),
	}
}

// FPSCounter reports frames per second, recomputed about once a second
type FPSCounter struct {
	start  time.Time
	frames int
	fps    float64
}

func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{start: now}
}

// Tick records one frame at now
func (c *FPSCounter) Tick(now time.Time) {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.start = now
	}
}

// FPS returns the rate measured over the last complete window
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
