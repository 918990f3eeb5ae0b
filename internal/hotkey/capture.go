package hotkey

import (
	"time"

	"github.com/google/uuid"
)

const (
	// CaptureActivationDebounce is how long after a capture session opens
	// the shortcut that opened it (⌘⇧K) is still swallowed.
	CaptureActivationDebounce = 350 * time.Millisecond
	// CaptureTimeout closes a capture session nobody finished.
	CaptureTimeout = 15 * time.Second
)

// ShouldIgnoreCaptureActivation reports whether a key press recorded
// elapsed after the capture session opened is the ⌘⇧K shortcut that
// opened it. The boundary is inclusive.
func ShouldIgnoreCaptureActivation(elapsed time.Duration, keyName string, hasCommand, hasShift, hasExtraModifiers bool) bool {
	return elapsed <= CaptureActivationDebounce &&
		Canonicalize(keyName) == "k" &&
		hasCommand && hasShift &&
		!hasExtraModifiers
}

// CaptureSession records a new hotkey from the next key press.
type CaptureSession struct {
	ID      uuid.UUID
	started time.Time
	now     func() time.Time
}

// Capture is a key press accepted by a CaptureSession.
type Capture struct {
	SessionID uuid.UUID
	Key       string
	Modifiers ModifierSet
	// AutoApplied is set when SafeCaptureModifiers replaced an empty
	// modifier set.
	AutoApplied bool
}

// NewCaptureSession starts a session. now defaults to time.Now.
func NewCaptureSession(now func() time.Time) *CaptureSession {
	if now == nil {
		now = time.Now
	}
	return &CaptureSession{ID: uuid.New(), started: now(), now: now}
}

// Elapsed returns the time since the session started.
func (s *CaptureSession) Elapsed() time.Duration {
	return s.now().Sub(s.started)
}

// Expired reports whether the session ran past CaptureTimeout.
func (s *CaptureSession) Expired() bool {
	return s.Elapsed() > CaptureTimeout
}

// Capture turns a key event into a hotkey candidate. Key-ups, repeats,
// bare modifier keys and the activation shortcut are skipped.
func (s *CaptureSession) Capture(ev Event) (Capture, bool) {
	if !ev.KeyDown || ev.AutoRepeat || IsModifierKeyCode(ev.KeyCode) {
		return Capture{}, false
	}
	key, ok := KeyForCode(ev.KeyCode)
	if !ok {
		return Capture{}, false
	}
	extra := ev.Flags.Without(Command).Without(Shift)
	if ShouldIgnoreCaptureActivation(s.Elapsed(), key, ev.Flags.Has(Command), ev.Flags.Has(Shift), !extra.IsEmpty()) {
		return Capture{}, false
	}

	c := Capture{SessionID: s.ID, Key: key, Modifiers: ev.Flags}
	if c.Modifiers.IsEmpty() && ShouldAutoApplySafeCaptureModifiers(key) {
		c.Modifiers = SafeCaptureModifiers
		c.AutoApplied = true
	}
	return c, true
}

// Parsed returns the capture as a ParsedHotkey with explicit modifiers.
func (c Capture) Parsed() ParsedHotkey {
	mods := c.Modifiers
	return ParsedHotkey{Key: c.Key, RequiredModifiers: &mods}
}
