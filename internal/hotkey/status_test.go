package hotkey

import (
	"strings"
	"testing"
	"time"
)

func TestStatusResetDelay(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    time.Duration
	}{
		{name: "short clamps to minimum", message: "ok", want: 1200 * time.Millisecond},
		{name: "scaled", message: strings.Repeat("x", 20), want: 1500 * time.Millisecond},
		{name: "long clamps to maximum", message: strings.Repeat("x", 200), want: 3400 * time.Millisecond},
		{name: "counts runes", message: strings.Repeat("⌘", 20), want: 1500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusResetDelay(tt.message); got != tt.want {
				t.Errorf("StatusResetDelay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHumanList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A and B"},
		{[]string{"A", "B", "C"}, "A, B, and C"},
	}
	for _, tt := range tests {
		if got := HumanList(tt.items); got != tt.want {
			t.Errorf("HumanList(%q) = %q, want %q", tt.items, got, tt.want)
		}
	}
}

// manualTimers replaces time.AfterFunc so tests decide when resets fire.
type manualTimers struct {
	pending []func()
}

func (m *manualTimers) schedule(_ time.Duration, f func()) func() bool {
	m.pending = append(m.pending, f)
	return func() bool { return true }
}

func (m *manualTimers) fireAll() {
	pending := m.pending
	m.pending = nil
	for _, f := range pending {
		f()
	}
}

func newTestBoard(timers *manualTimers, seen *[]string) *StatusBoard {
	b := NewStatusBoard(func(msg string) { *seen = append(*seen, msg) })
	b.schedule = timers.schedule
	return b
}

func TestStatusBoardFlashRestoresResting(t *testing.T) {
	timers := &manualTimers{}
	var seen []string
	b := newTestBoard(timers, &seen)

	b.SetResting("ready")
	b.Flash("reloaded")
	if got := b.Message(); got != "reloaded" {
		t.Fatalf("Message() = %q, want reloaded", got)
	}
	timers.fireAll()
	if got := b.Message(); got != "ready" {
		t.Errorf("Message() after reset = %q, want ready", got)
	}
	if want := []string{"ready", "reloaded", "ready"}; strings.Join(seen, "|") != strings.Join(want, "|") {
		t.Errorf("notifications = %q, want %q", seen, want)
	}
}

func TestStatusBoardStaleResetIgnored(t *testing.T) {
	timers := &manualTimers{}
	var seen []string
	b := newTestBoard(timers, &seen)

	b.SetResting("ready")
	b.Flash("first")
	b.Flash("second")
	// The first flash's reset fires late, after the second flash.
	first := timers.pending[0]
	first()
	if got := b.Message(); got != "second" {
		t.Fatalf("stale reset overwrote message: %q", got)
	}

	timers.pending[1]()
	if got := b.Message(); got != "ready" {
		t.Errorf("Message() = %q, want ready", got)
	}
}

func TestStatusBoardSetCancelsFlash(t *testing.T) {
	timers := &manualTimers{}
	var seen []string
	b := newTestBoard(timers, &seen)

	b.SetResting("ready")
	b.Flash("reloaded")
	b.Set("recording")
	timers.fireAll()
	if got := b.Message(); got != "recording" {
		t.Errorf("Message() = %q, want recording", got)
	}
}
