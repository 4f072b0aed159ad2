package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/gridterm/app"
	"github.com/lixenwraith/gridterm/backend/tcellterm"
	"github.com/lixenwraith/gridterm/backend/termboxterm"
	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
	"github.com/lixenwraith/gridterm/terminal"
)

var (
	backendFlag  = flag.String("backend", "raw", "Backend: raw, tcell, termbox")
	colorFlag    = flag.String("color", "auto", "Color mode for the raw backend: auto, truecolor, 256")
	pollFlag     = flag.Duration("poll", terminal.DefaultPollInterval, "Longest wait for input per frame")
	quitFlag     = flag.String("quit", "q", "Key name that quits the demo")
	bgFlag       = flag.String("bg", "black", "Background color name")
	logFlag      = flag.String("log", "", "Log file path (empty disables logging)")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
)

// backend is the lifecycle every selectable application exposes
type backend interface {
	platform.Application
	Init() error
	Dispose() error
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		terminal.HandleCrash(recover())
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridterm-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile, err := app.InitLogger(*logFlag, *logLevelFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	quit, ok := event.ParseKey(*quitFlag)
	if !ok {
		return fmt.Errorf("unknown quit key %q", *quitFlag)
	}
	bg, err := core.ParseColor(*bgFlag)
	if err != nil {
		return err
	}

	b, err := newBackend(*backendFlag, bg, *pollFlag, logger)
	if err != nil {
		return err
	}
	if err := b.Init(); err != nil {
		return err
	}
	defer b.Dispose()

	fill := core.NewCell(' ', core.Grey, bg)
	ctx := app.NewContext(fill)
	demo := app.NewDemo(quit, bg, *backendFlag)

	logger.Info("demo started", "backend", *backendFlag, "quit", quit.String())
	start := time.Now()
	err = app.Run(ctx, b, app.Options{Fill: fill, Logger: logger}, demo)
	logger.Info("demo stopped", "frames", ctx.Frame, "elapsed", time.Since(start), "error", err)
	return err
}

func newBackend(name string, bg core.Color, poll time.Duration, logger *slog.Logger) (backend, error) {
	switch name {
	case "raw":
		mode, err := terminal.ParseColorMode(*colorFlag)
		if err != nil {
			return nil, err
		}
		return terminal.New(terminal.Options{
			ColorMode:    mode,
			MouseMode:    terminal.MouseModeAll,
			PollInterval: poll,
			Background:   bg,
			Logger:       logger,
		}), nil
	case "tcell":
		s, err := tcellterm.New(tcellterm.Options{PollInterval: poll, Background: bg, Logger: logger})
		if err != nil {
			return nil, err
		}
		return s, nil
	case "termbox":
		return termboxterm.New(termboxterm.Options{PollInterval: poll, Background: bg, Logger: logger}), nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}
