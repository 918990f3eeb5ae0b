package hotkey

import (
	"fmt"
	"log"
	"sync"

	"golang.design/x/hotkey"
)

// LegacyBackend wraps the golang.design/x/hotkey library.
// This backend supports Windows, macOS, and X11 on Linux.
// It does NOT support Wayland.
type LegacyBackend struct {
	mu             sync.Mutex
	registeredKeys map[string]*legacyHotkey
	displayServer  DisplayServer
}

// NewLegacyBackend creates a new legacy backend using golang.design/x/hotkey.
func NewLegacyBackend(ds DisplayServer) *LegacyBackend {
	log.Printf("Legacy backend: Using display server: %s", ds)

	return &LegacyBackend{
		registeredKeys: make(map[string]*legacyHotkey),
		displayServer:  ds,
	}
}

// Name returns the name of this backend.
func (b *LegacyBackend) Name() string {
	return "Legacy (golang.design/x/hotkey)"
}

// IsAvailable checks if this backend can be used on the current system.
func (b *LegacyBackend) IsAvailable() bool {
	switch b.displayServer {
	case DisplayServerWindows, DisplayServerMacOS, DisplayServerX11:
		return true
	case DisplayServerWayland:
		// golang.design/x/hotkey does NOT support Wayland
		log.Println("Legacy backend: Not available on Wayland")
		return false
	default:
		log.Println("Legacy backend: Unknown display server, assuming unavailable")
		return false
	}
}

// Register grabs the binding, plus any lock-key variants the platform
// needs, and merges their events into one RegisteredHotkey.
func (b *LegacyBackend) Register(binding Binding) (RegisteredHotkey, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := binding.String()
	if existing, exists := b.registeredKeys[name]; exists {
		log.Printf("Legacy backend: Hotkey '%s' already registered, returning existing", name)
		return existing, nil
	}

	variants, key, err := nativeBinding(binding)
	if err != nil {
		return nil, fmt.Errorf("failed to map hotkey '%s': %w", name, err)
	}

	wrapped := &legacyHotkey{
		name:      name,
		keydownCh: make(chan struct{}),
		keyupCh:   make(chan struct{}),
		stopCh:    make(chan struct{}),
	}
	for _, mods := range variants {
		hk := hotkey.New(mods, key)
		if err := hk.Register(); err != nil {
			wrapped.unregisterAll()
			return nil, fmt.Errorf("failed to register hotkey '%s': %w", name, err)
		}
		wrapped.hotkeys = append(wrapped.hotkeys, hk)
	}

	wrapped.startEventConverters()

	b.registeredKeys[name] = wrapped
	log.Printf("Legacy backend: Successfully registered hotkey '%s' (%d variants)", name, len(wrapped.hotkeys))

	return wrapped, nil
}

// UnregisterAll removes all registered hotkeys.
func (b *LegacyBackend) UnregisterAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	log.Printf("Legacy backend: Unregistering all %d hotkeys", len(b.registeredKeys))

	for name, hk := range b.registeredKeys {
		if err := hk.Close(); err != nil {
			log.Printf("Legacy backend: Error unregistering '%s': %v", name, err)
		}
	}

	b.registeredKeys = make(map[string]*legacyHotkey)
	return nil
}

// legacyHotkey fans in the events of every registered variant.
type legacyHotkey struct {
	name      string
	hotkeys   []*hotkey.Hotkey
	keydownCh chan struct{}
	keyupCh   chan struct{}
	stopCh    chan struct{} // Signal to stop the converter goroutines
	closeOnce sync.Once
}

func (lh *legacyHotkey) Keydown() <-chan struct{} {
	return lh.keydownCh
}

func (lh *legacyHotkey) Keyup() <-chan struct{} {
	return lh.keyupCh
}

// startEventConverters converts hotkey.Event channels to struct{} channels.
// This bridges the golang.design/x/hotkey API with our Backend interface.
func (lh *legacyHotkey) startEventConverters() {
	var wg sync.WaitGroup
	for _, hk := range lh.hotkeys {
		wg.Add(1)
		go func(hk *hotkey.Hotkey) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("RECOVERED FROM PANIC IN LEGACY HOTKEY CONVERTER (%s): %v", lh.name, r)
				}
			}()

			for {
				var out chan struct{}
				select {
				case <-lh.stopCh:
					return
				case <-hk.Keydown():
					out = lh.keydownCh
				case <-hk.Keyup():
					out = lh.keyupCh
				}
				select {
				case out <- struct{}{}:
				case <-lh.stopCh:
					return
				}
			}
		}(hk)
	}
	go func() {
		wg.Wait()
		close(lh.keydownCh)
		close(lh.keyupCh)
	}()
}

// Close unregisters every variant and stops the converters.
func (lh *legacyHotkey) Close() error {
	var err error
	lh.closeOnce.Do(func() {
		close(lh.stopCh)
		err = lh.unregisterAll()
	})
	return err
}

func (lh *legacyHotkey) unregisterAll() error {
	var firstErr error
	for _, hk := range lh.hotkeys {
		if err := hk.Unregister(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to unregister hotkey '%s': %w", lh.name, err)
		}
	}
	return firstErr
}

// SelectBackend chooses the appropriate backend based on the current environment.
// Windows, macOS and X11 use LegacyBackend. Wayland has no global grab the
// library can use, so nil is returned and the Monitor stays unfed.
func SelectBackend() Backend {
	ds := DetectDisplayServer()

	switch ds {
	case DisplayServerWindows, DisplayServerMacOS, DisplayServerX11:
		backend := NewLegacyBackend(ds)
		if backend.IsAvailable() {
			log.Printf("Selected backend: %s for %s", backend.Name(), ds)
			return backend
		}
		log.Printf("Warning: Legacy backend not available for %s", ds)
		return nil

	case DisplayServerWayland:
		log.Println("Wayland detected - global hotkeys unavailable")
		return nil

	default:
		log.Printf("Warning: Unknown display server, hotkeys unavailable")
		return nil
	}
}
