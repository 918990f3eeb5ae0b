package hotkey

import (
	"errors"
	"fmt"
)

// ErrBackendNotAvailable is returned when a backend cannot be used on the current system.
var ErrBackendNotAvailable = errors.New("backend not available on this system")

// ErrUnregistrableKey is returned when a backend has no native code for a key
// or cannot express a modifier.
var ErrUnregistrableKey = errors.New("key cannot be registered with this backend")

// ErrNotRegistered is returned by Manager.CaptureNext when no key is grabbed.
var ErrNotRegistered = errors.New("no hotkey is registered")

// Binding is one key combination to grab globally.
type Binding struct {
	Modifiers ModifierSet
	Key       string
	KeyCode   KeyCode
	// Forbidden modifiers must not be held. Backends that grab extra
	// lock-key variants skip the ones listed here.
	Forbidden ModifierSet
}

// String returns the binding as "control+shift+space".
func (b Binding) String() string {
	if b.Modifiers.IsEmpty() {
		return b.Key
	}
	return fmt.Sprintf("%s+%s", b.Modifiers, b.Key)
}

// Backend is an interface that abstracts different hotkey registration implementations.
// This allows us to support multiple display servers (Windows, macOS, X11) without
// the Monitor knowing which one delivers its events.
type Backend interface {
	// Register grabs a single key combination globally.
	// Returns a RegisteredHotkey handle and any error encountered.
	Register(b Binding) (RegisteredHotkey, error)

	// UnregisterAll removes all hotkeys registered by this backend.
	UnregisterAll() error

	// Name returns a human-readable name for this backend (for logging).
	Name() string

	// IsAvailable returns true if this backend can be used on the current system.
	IsAvailable() bool
}

// RegisteredHotkey represents a registered hotkey and provides channels
// that receive events when the combination is pressed and released.
type RegisteredHotkey interface {
	// Keydown returns a channel that receives events when the key is pressed.
	Keydown() <-chan struct{}

	// Keyup returns a channel that receives events when the key is released.
	Keyup() <-chan struct{}

	// Close cleans up resources associated with this hotkey.
	// Both channels are closed once the hotkey is released.
	Close() error
}
