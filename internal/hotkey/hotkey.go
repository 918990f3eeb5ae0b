package hotkey

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Manager keeps the backend grabs in step with the Monitor and feeds it
// the events they deliver.
//
// Actions configured on the Monitor run with the Manager lock held and
// must not call back into the Manager.
type Manager struct {
	mu         sync.Mutex
	backend    Backend
	monitor    *Monitor
	registered []RegisteredHotkey
	// generation counts releases so events from a closed grab are dropped.
	generation uint64
	capture    *captureRequest
}

type captureRequest struct {
	session *CaptureSession
	result  chan Capture
}

// NewManager creates a new hotkey manager. backend may be nil, in which
// case the Monitor is still validated but never receives events.
func NewManager(backend Backend, monitor *Monitor) *Manager {
	return &Manager{
		backend: backend,
		monitor: monitor,
	}
}

// Apply validates cfg and grabs its key when the Monitor accepts it.
func (m *Manager) Apply(cfg Configuration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.monitor.UpdateConfig(cfg)
	return m.registerLocked()
}

// Reload re-reads the configuration through the Monitor's source.
func (m *Manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.monitor.ReloadConfig(); err != nil {
		return fmt.Errorf("failed to reload hotkey configuration: %w", err)
	}
	return m.registerLocked()
}

// SetMode switches between toggle and hold.
func (m *Manager) SetMode(mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.monitor.SetMode(mode)
	return m.registerLocked()
}

// Stop releases every grab and disables the Monitor.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.monitor.Stop()
	m.unregisterLocked()
}

// UnregisterAll releases every grab without touching the Monitor.
func (m *Manager) UnregisterAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unregisterLocked()
}

// CaptureNext diverts the next press of a grabbed key to a CaptureSession
// instead of the Monitor, so pressing the hotkey to test it does not
// start a recording. It gives up after CaptureTimeout.
func (m *Manager) CaptureNext(ctx context.Context) (Capture, error) {
	req := &captureRequest{session: NewCaptureSession(nil), result: make(chan Capture, 1)}

	m.mu.Lock()
	if len(m.registered) == 0 {
		m.mu.Unlock()
		return Capture{}, ErrNotRegistered
	}
	m.capture = req
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		if m.capture == req {
			m.capture = nil
		}
		m.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, CaptureTimeout)
	defer cancel()
	select {
	case c := <-req.result:
		log.Printf("Hotkey manager: capture %s got %s", c.SessionID, FormatHotkey(c.Modifiers, c.Key))
		return c, nil
	case <-ctx.Done():
		return Capture{}, fmt.Errorf("no key press captured: %w", ctx.Err())
	}
}

// Status returns the Monitor's current status message.
func (m *Manager) Status() string {
	return m.monitor.Status()
}

// Configuration returns the configuration in effect.
func (m *Manager) Configuration() Configuration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.monitor.Configuration()
}

// Active reports whether the Monitor accepted the configuration.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.monitor.Active()
}

// Registered returns how many bindings are currently grabbed.
func (m *Manager) Registered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.registered)
}

// registerLocked grabs the configured key and each key equivalent to it.
// Only a failure on the configured key itself is an error.
func (m *Manager) registerLocked() error {
	m.unregisterLocked()
	if !m.monitor.Active() {
		return nil
	}
	if m.backend == nil {
		return fmt.Errorf("cannot register hotkey: %w", ErrBackendNotAvailable)
	}

	cfg := m.monitor.Configuration()
	primary := m.monitor.KeyCode()
	for _, code := range EquivalentKeyCodes(primary) {
		key, ok := KeyForCode(code)
		if !ok {
			continue
		}
		binding := Binding{Modifiers: cfg.Required, Key: key, KeyCode: code, Forbidden: cfg.Forbidden}

		hk, err := m.backend.Register(binding)
		if err != nil {
			if code == primary {
				m.unregisterLocked()
				return fmt.Errorf("failed to register hotkey '%s': %w", binding, err)
			}
			log.Printf("Hotkey manager: skipping equivalent key '%s': %v", binding, err)
			continue
		}
		m.registered = append(m.registered, hk)
		go m.pump(hk, binding, m.generation)
		log.Printf("Hotkey manager: registered '%s' via %s", binding, m.backend.Name())
	}
	return nil
}

func (m *Manager) unregisterLocked() {
	m.generation++
	if len(m.registered) == 0 {
		return
	}
	for _, hk := range m.registered {
		if err := hk.Close(); err != nil {
			log.Printf("Hotkey manager: %v", err)
		}
	}
	m.registered = nil
	if m.backend != nil {
		if err := m.backend.UnregisterAll(); err != nil {
			log.Printf("Hotkey manager: %v", err)
		}
	}
}

// pump forwards one grab's events until its channels close. The grab
// only fires with exactly its modifiers held, so they become the flags.
func (m *Manager) pump(hk RegisteredHotkey, b Binding, gen uint64) {
	keydown, keyup := hk.Keydown(), hk.Keyup()
	for keydown != nil || keyup != nil {
		select {
		case _, ok := <-keydown:
			if !ok {
				keydown = nil
				continue
			}
			m.dispatch(gen, Event{KeyCode: b.KeyCode, Flags: b.Modifiers, KeyDown: true})
		case _, ok := <-keyup:
			if !ok {
				keyup = nil
				continue
			}
			m.dispatch(gen, Event{KeyCode: b.KeyCode, Flags: b.Modifiers})
		}
	}
}

// dispatch hands ev to the Monitor unless the grab it came from was
// released while the event waited for the lock.
func (m *Manager) dispatch(gen uint64, ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		log.Printf("Hotkey manager: dropping event from released grab (key code 0x%02X)", uint16(ev.KeyCode))
		return
	}
	if req := m.capture; req != nil {
		if c, ok := req.session.Capture(ev); ok {
			req.result <- c
			m.capture = nil
		}
		return
	}
	m.monitor.Handle(ev)
}
