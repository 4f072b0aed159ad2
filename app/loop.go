package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
)

// ErrQuit is returned by a handler to end Run without error
var ErrQuit = errors.New("quit requested")

// Handler receives events and draws frames
type Handler interface {
	// HandleEvent is called for each queued event after the trackers saw it
	HandleEvent(ctx *Context, ev event.Event) error
	// Draw renders into ctx.Buffer, which is already sized to the console
	Draw(ctx *Context) error
}

// Options configure Run
type Options struct {
	// Fill is used for cells exposed by a resize
	Fill   core.Cell
	Logger *slog.Logger

	// MaxWriteFailures ends the loop after that many consecutive failed
	// writes; zero retries forever
	MaxWriteFailures int

	now func() time.Time
}

// Run drives app until the handler returns ErrQuit or the backend fails
// One iteration: size buffer, gather events, update trackers, handle, draw, write
func Run(ctx *Context, a platform.Application, opts Options, h Handler) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}
	term := a.Terminal()
	failures := 0

	for {
		size, err := term.ConsoleSize()
		if err != nil {
			return fmt.Errorf("console size: %w", err)
		}
		ctx.Buffer.Resize(opts.Fill, size)

		if err := a.ListenEvents(ctx.Queue); err != nil {
			return fmt.Errorf("listen events: %w", err)
		}

		for {
			ev, ok := ctx.Queue.Next()
			if !ok {
				break
			}
			track(ctx, ev)
			if err := h.HandleEvent(ctx, ev); err != nil {
				return stopErr(err)
			}
		}

		if err := h.Draw(ctx); err != nil {
			return stopErr(err)
		}

		if err := term.Write(ctx.Buffer); err != nil {
			failures++
			logger.Warn("frame skipped", "error", err, "consecutive", failures)
			if opts.MaxWriteFailures > 0 && failures >= opts.MaxWriteFailures {
				return fmt.Errorf("write frame after %d attempts: %w", failures, err)
			}
			continue
		}
		failures = 0
		ctx.Frame++
		ctx.FPS.Tick(now())
	}
}

// track feeds the state trackers before the handler sees the event
func track(ctx *Context, ev event.Event) {
	switch ev.Kind {
	case event.KindKeyboard:
		ctx.Keyboard.Update(ev.Keyboard)
	case event.KindMouse:
		ctx.Mouse.Update(ev.Mouse)
	case event.KindWindow:
		if ev.Window.Type == event.WindowLostFocus {
			// Key-ups are lost while unfocused
			ctx.Keyboard.Reset()
		}
	}
}

func stopErr(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
