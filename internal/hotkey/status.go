package hotkey

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const statusEmptyKey = "Hotkey disabled: trigger key is empty. Enter one key like space, f6, or /."

func statusUnsupportedKey(key string) string {
	return fmt.Sprintf("Hotkey disabled: unsupported trigger key '%s'. Use one key like space, f6, or /.", key)
}

func statusModifierOnlyKey(key string) string {
	return fmt.Sprintf("Hotkey disabled: trigger key cannot be only a modifier '%s'. Choose one key like space or f6, then set modifiers with the toggles above.", key)
}

func statusShortcutInKeyField(key string) string {
	return fmt.Sprintf("Hotkey disabled: key field expects one trigger key (like space or f6), not a full shortcut '%s'. Set modifiers with the toggles above.", key)
}

func statusHighRisk(key string) string {
	return fmt.Sprintf("Hotkey disabled: %s without modifiers is too easy to trigger", DisplayKey(key))
}

func statusMissingPermissions(names []string, appName string) string {
	if len(names) == 1 {
		return fmt.Sprintf("Hotkey disabled: missing %s permission. Open System Settings → Privacy & Security → %s and enable %s.",
			names[0], names[0], appName)
	}
	return fmt.Sprintf("Hotkey disabled: missing %s permission. Open System Settings → Privacy & Security and enable %s in both sections.",
		HumanList(names), appName)
}

func statusActive(combo string, mode Mode) string {
	if mode == ModeHold {
		return fmt.Sprintf("Hotkey active: %s (hold to record)", combo)
	}
	return fmt.Sprintf("Hotkey active: %s (press to start or stop recording)", combo)
}

func statusHoldArmed(combo string) string {
	return fmt.Sprintf("Hold active: %s (release to stop recording)", combo)
}

const statusStopped = "Hotkey stopped."

// HumanList joins items as "A", "A and B" or "A, B, and C".
func HumanList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

const (
	statusResetBase    = 900 * time.Millisecond
	statusResetPerChar = 30 * time.Millisecond
	statusResetMin     = 1200 * time.Millisecond
	statusResetMax     = 3400 * time.Millisecond
)

// StatusResetDelay is how long a transient message stays up, scaled by
// its length and clamped to [1.2s, 3.4s].
func StatusResetDelay(message string) time.Duration {
	d := statusResetBase + statusResetPerChar*time.Duration(utf8.RuneCountInString(message))
	return max(statusResetMin, min(statusResetMax, d))
}

// StatusBoard holds the current status message. Flash shows a message
// temporarily; a generation counter makes sure a superseded reset never
// overwrites a newer message.
type StatusBoard struct {
	mu         sync.Mutex
	message    string
	resting    string
	generation uint64
	cancel     func() bool
	onChange   func(string)
	schedule   func(time.Duration, func()) func() bool
}

// NewStatusBoard returns a board that reports every change to onChange.
// onChange may be nil.
func NewStatusBoard(onChange func(string)) *StatusBoard {
	return &StatusBoard{
		onChange: onChange,
		schedule: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
	}
}

// Message returns the message currently shown.
func (b *StatusBoard) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message
}

// SetResting shows message and makes it the one transient messages
// fall back to.
func (b *StatusBoard) SetResting(message string) {
	b.mu.Lock()
	b.bumpLocked()
	b.resting = message
	b.message = message
	b.mu.Unlock()
	b.notify(message)
}

// Set shows message until the next change without touching the resting
// message.
func (b *StatusBoard) Set(message string) {
	b.mu.Lock()
	b.bumpLocked()
	b.message = message
	b.mu.Unlock()
	b.notify(message)
}

// Flash shows message for StatusResetDelay(message), then restores the
// resting message unless something else changed the board meanwhile.
func (b *StatusBoard) Flash(message string) {
	b.mu.Lock()
	gen := b.bumpLocked()
	b.message = message
	b.cancel = b.schedule(StatusResetDelay(message), func() { b.reset(gen) })
	b.mu.Unlock()
	b.notify(message)
}

func (b *StatusBoard) reset(gen uint64) {
	b.mu.Lock()
	if gen != b.generation {
		b.mu.Unlock()
		return
	}
	b.cancel = nil
	b.message = b.resting
	msg := b.message
	b.mu.Unlock()
	b.notify(msg)
}

func (b *StatusBoard) bumpLocked() uint64 {
	b.generation++
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	return b.generation
}

func (b *StatusBoard) notify(message string) {
	if b.onChange != nil {
		b.onChange(message)
	}
}
