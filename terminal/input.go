package terminal

import (
	"errors"
	"log/slog"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/gridterm/core"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/platform"
)

// ErrInputClosed is reported once stdin reaches EOF or the reader is stopped
var ErrInputClosed = errors.New("terminal input closed")

// wheelStep matches the per-notch delta of desktop wheel APIs
const wheelStep = 120

// inputReader turns raw stdin bytes into normalized events on its own goroutine
type inputReader struct {
	backend Backend
	logger  *slog.Logger
	eventCh chan event.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	err     error

	// Persistent buffer for stream assembly across reads
	buf []byte

	// Mouse state owned by the reader goroutine
	latch  platform.ButtonLatch
	clicks *platform.ClickDetector
	now    func() time.Time
}

// newInputReader creates a new input reader
func newInputReader(backend Backend, logger *slog.Logger) *inputReader {
	return &inputReader{
		backend: backend,
		logger:  logger,
		eventCh: make(chan event.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
		clicks:  platform.NewClickDetector(platform.DefaultDoubleClickWindow),
		now:     time.Now,
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	Go(r.readLoop)
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Don't block forever if a read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(200 * time.Millisecond):
	}
}

// events returns the event channel, closed when the reader exits
func (r *inputReader) events() <-chan event.Event {
	return r.eventCh
}

// Err returns the error that ended the reader
func (r *inputReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		return ErrInputClosed
	}
	return r.err
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)
	defer close(r.eventCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			return
		}

		if len(data) == 0 {
			// Poll timeout: a lone pending ESC is the Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendKey(event.KeyEscape, 0x1b, 0x1b, ModNone)
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parseInput(r.buf)

		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendRune(rune(b), ModNone)
			i++
			continue
		}

		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}
			consumed := r.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			i += consumed
			continue
		}

		if b < 0x20 || b == 0x7f {
			key, ch, mod := controlKey(b)
			r.sendKey(key, ch, uint16(b), mod)
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i
		}
		rn, size := utf8.DecodeRune(data[i:])
		if rn != utf8.RuneError || size > 1 {
			r.sendRune(rn, ModNone)
		}
		i += size
	}
	return i
}

// parseEscape dispatches on the byte after ESC, returns 0 on incomplete
func (r *inputReader) parseEscape(data []byte) int {
	switch {
	case data[1] == 0x1b:
		// ESC ESC -> Alt+Escape
		r.sendKey(event.KeyEscape, 0x1b, 0x1b, ModAlt)
		return 2
	case data[1] == '[':
		return r.parseCSI(data)
	case data[1] == 'O':
		return r.parseSS3(data)
	case data[1] < 0x20 || data[1] == 0x7f:
		key, ch, mod := controlKey(data[1])
		r.sendKey(key, ch, uint16(data[1]), mod|ModAlt)
		return 2
	case data[1] < 0x7f:
		r.sendRune(rune(data[1]), ModAlt)
		return 2
	}

	// Alt+UTF-8
	if !utf8.FullRune(data[1:]) {
		return 0
	}
	rn, size := utf8.DecodeRune(data[1:])
	r.sendRune(rn, ModAlt)
	return 1 + size
}

// maxCSILen bounds the scan for a final byte; longer runs are treated as garbage
const maxCSILen = 32

// parseCSI handles ESC [ params final
func (r *inputReader) parseCSI(data []byte) int {
	if len(data) < 3 {
		return 0
	}

	switch data[2] {
	case '<':
		return r.parseSGRMouse(data)
	case '[':
		if len(data) < 4 {
			return 0
		}
		if key, ok := linuxConsoleKeys[data[3]]; ok {
			r.sendKey(key, 0, uint16(data[3]), ModNone)
		}
		return 4
	}

	end := 2
	for end < len(data) && end < maxCSILen {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if b < 0x20 || b > 0x7e {
			// Not a CSI body, drop the introducer
			return 2
		}
		end++
	}
	if end >= maxCSILen {
		return end
	}
	if end >= len(data) {
		return 0
	}

	final := data[end]
	params, ok := parseParams(data[2:end])
	if !ok {
		return end + 1
	}
	p := func(i, def int) int {
		if i < len(params) && params[i] > 0 {
			return params[i]
		}
		return def
	}

	switch {
	case final == '~':
		if key, ok := csiTildeKeys[p(0, 0)]; ok {
			r.sendKey(key, 0, uint16(p(0, 0)), xtermModifier(p(1, 1)))
		}
	case final == 'I' && len(params) == 0:
		r.send(event.FromWindow(event.WindowEvent{Type: event.WindowFocus}))
	case final == 'O' && len(params) == 0:
		r.send(event.FromWindow(event.WindowEvent{Type: event.WindowLostFocus}))
	default:
		if key, ok := csiFinalKeys[final]; ok {
			mod := xtermModifier(p(1, 1))
			if final == 'Z' {
				mod |= ModShift
			}
			r.sendKey(key, 0, uint16(final), mod)
		} else {
			r.logger.Debug("unhandled CSI sequence", "seq", string(data[1:end+1]))
		}
	}
	return end + 1
}

// parseSS3 handles ESC O X, unknown keys are consumed to prevent garbage
func (r *inputReader) parseSS3(data []byte) int {
	if len(data) < 3 {
		return 0
	}
	if key, ok := ss3Keys[data[2]]; ok {
		var ch rune
		if key == event.KeyReturn {
			ch = '\r'
		}
		r.sendKey(key, ch, uint16(data[2]), ModNone)
	}
	return 3
}

// parseParams decodes "n;n;n" with empty fields as zero
func parseParams(data []byte) ([]int, bool) {
	if len(data) == 0 {
		return nil, true
	}
	params := make([]int, 1, 4)
	for _, b := range data {
		switch {
		case b == ';':
			params = append(params, 0)
		case b >= '0' && b <= '9':
			v := &params[len(params)-1]
			*v = *v*10 + int(b-'0')
			if *v > 9999 { // Sanity limit
				return nil, false
			}
		default:
			// Private markers and intermediates are not keys we know
			return nil, false
		}
	}
	return params, true
}

// parseSGRMouse parses ESC [ < Btn ; X ; Y M/m
func (r *inputReader) parseSGRMouse(data []byte) int {
	end := 3
	for end < len(data) && end < maxCSILen {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= maxCSILen {
		return end
	}
	if end >= len(data) {
		return 0
	}

	params, ok := parseParams(data[3:end])
	if !ok || len(params) != 3 {
		return end + 1
	}
	btn, x, y := params[0], params[1], params[2]
	pos := core.Pt(x-1, y-1) // Convert to 0-indexed
	release := data[end] == 'm'
	motion := btn&32 != 0

	// Strip modifier and motion bits, leaving the button code
	code := btn &^ (4 | 8 | 16 | 32)

	ev := event.MouseEvent{Type: event.MouseMove, Position: pos}

	switch {
	case code >= 64 && code < 128:
		switch code - 64 {
		case 0:
			ev.Type, ev.WheelDelta = event.Wheel, wheelStep
		case 1:
			ev.Type, ev.WheelDelta = event.Wheel, -wheelStep
		case 2:
			ev.Type, ev.WheelDelta = event.HorizontalWheel, -wheelStep
		case 3:
			ev.Type, ev.WheelDelta = event.HorizontalWheel, wheelStep
		}

	default:
		button, named := sgrButton(code)
		switch {
		case motion:
			// Drag reports the held button; latch it in case the press was missed
			if named {
				r.latch.Press(button)
			}
		case release && named:
			r.latch.Release(button)
			ev.Type = event.Click
		case release:
			r.latch.ReleaseAll()
			ev.Type = event.Click
		case named:
			r.latch.Press(button)
			ev.Type = r.clicks.Press(button, pos, r.now())
		}
	}

	r.latch.Apply(&ev)
	r.send(event.FromMouse(ev))
	return end + 1
}

// sgrButton maps an SGR button code to a latch button; code 3 is "no button"
func sgrButton(code int) (platform.Button, bool) {
	switch code {
	case 0:
		return platform.ButtonLeft, true
	case 1:
		return platform.ButtonMiddle, true
	case 2:
		return platform.ButtonRight, true
	case 128:
		return platform.ButtonExtra1, true
	case 129:
		return platform.ButtonExtra2, true
	case 130:
		return platform.ButtonExtra3, true
	case 131:
		return platform.ButtonExtra4, true
	}
	return 0, false
}

// sendRune emits a printable character; upper-case letters imply Shift
func (r *inputReader) sendRune(ch rune, mod Modifier) {
	if unicode.IsUpper(ch) {
		mod |= ModShift
	}
	r.sendKey(event.KeyForRune(ch), ch, uint16(ch), mod)
}

// sendKey emits a KeyDown; terminals report no key-up
func (r *inputReader) sendKey(key event.Key, ch rune, code uint16, mod Modifier) {
	r.send(event.FromKeyboard(event.KeyboardEvent{
		Type:        event.KeyDown,
		Key:         key,
		KeyCode:     code,
		Character:   ch,
		LeftShift:   mod&ModShift != 0,
		LeftMenu:    mod&ModAlt != 0,
		LeftControl: mod&ModCtrl != 0,
	}))
}

// send delivers an event to the channel, waiting for the loop to catch up
// A stopped reader discards instead of blocking
func (r *inputReader) send(ev event.Event) {
	select {
	case r.eventCh <- ev:
	case <-r.stopCh:
	}
}
