package termboxterm

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
)

// scriptedPoll returns n key events, then blocks until interrupt is signalled
func scriptedPoll(n int, interrupt <-chan struct{}) func() termbox.Event {
	sent := 0
	return func() termbox.Event {
		if sent < n {
			sent++
			return termbox.Event{Type: termbox.EventKey, Ch: 'x'}
		}
		<-interrupt
		return termbox.Event{Type: termbox.EventInterrupt}
	}
}

func TestPumpWaitsForSlowLoop(t *testing.T) {
	s := New(Options{})
	interrupt := make(chan struct{})

	const n = 600
	go s.pump(scriptedPoll(n, interrupt))

	// Let the pump fill the channel and block
	time.Sleep(50 * time.Millisecond)

	got := 0
	timeout := time.After(2 * time.Second)
	for got < n {
		select {
		case ev := <-s.events:
			if ev.Ch != 'x' {
				t.Fatalf("Event %d: expected 'x', got %q", got, ev.Ch)
			}
			got++
		case <-timeout:
			t.Fatalf("Expected %d events, received %d", n, got)
		}
	}

	close(interrupt)
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("Pump did not exit on interrupt")
	}
}

func TestPumpKeepsPollingAfterQuit(t *testing.T) {
	s := New(Options{})
	interrupt := make(chan struct{})

	// Nobody reads events; the pump blocks once the channel is full
	go s.pump(scriptedPoll(400, interrupt))
	time.Sleep(50 * time.Millisecond)

	close(s.quit)

	// The pump must reach the interrupt poll without a reader
	close(interrupt)
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("Pump still blocked after quit")
	}
}
