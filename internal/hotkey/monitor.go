package hotkey

import (
	"log"
	"strings"
)

// Event is one key transition reported by an OS listener.
type Event struct {
	KeyCode    KeyCode
	Flags      ModifierSet
	KeyDown    bool
	AutoRepeat bool
}

// Actions are invoked by Monitor when the hotkey fires. Nil fields are
// skipped.
type Actions struct {
	OnToggle    func()
	OnHoldStart func()
	OnHoldEnd   func()
}

// PermissionChecker reports the OS permissions a global listener needs.
type PermissionChecker interface {
	HasAccessibilityPermission() bool
	HasInputMonitoringPermission() bool
}

// ConfigSource loads the stored configuration for ReloadConfig.
type ConfigSource func() (Configuration, error)

type matchState int

const (
	stateIdle matchState = iota
	// stateToggleDown: toggle mode, trigger held since the accepted press.
	stateToggleDown
	// stateHoldArmed: hold mode, recording while the trigger is held.
	stateHoldArmed
)

func (s matchState) String() string {
	switch s {
	case stateToggleDown:
		return "toggle-down"
	case stateHoldArmed:
		return "hold-armed"
	default:
		return "idle"
	}
}

// Monitor matches key events against the configured hotkey.
//
// A Monitor is not safe for concurrent use. The listener that feeds it
// must serialize calls to Handle with configuration changes; Manager
// does this for the golang.design/x/hotkey backend.
type Monitor struct {
	appName     string
	permissions PermissionChecker
	actions     Actions
	source      ConfigSource
	status      *StatusBoard

	config  Configuration
	key     string
	keyCode KeyCode
	combo   string
	active  bool
	state   matchState
}

// MonitorOptions configures NewMonitor.
type MonitorOptions struct {
	// AppName is quoted in permission messages.
	AppName     string
	Permissions PermissionChecker
	Actions     Actions
	Source      ConfigSource
	// OnStatus is called with every status change.
	OnStatus func(string)
}

// NewMonitor returns a disabled monitor. Call UpdateConfig or
// ReloadConfig to arm it.
func NewMonitor(opts MonitorOptions) *Monitor {
	return &Monitor{
		appName:     opts.AppName,
		permissions: opts.Permissions,
		actions:     opts.Actions,
		source:      opts.Source,
		status:      NewStatusBoard(opts.OnStatus),
	}
}

// UpdateConfig validates cfg and arms the monitor if it is usable.
// In-flight toggle or hold state is always cleared.
func (m *Monitor) UpdateConfig(cfg Configuration) {
	m.resetState()
	m.config = cfg.Normalized()
	m.active = false

	msg, ok := m.validate()
	if !ok {
		log.Printf("Hotkey monitor: %s", msg)
		m.status.SetResting(msg)
		return
	}
	m.active = true
	log.Printf("Hotkey monitor: armed %s in %s mode", m.combo, m.config.Mode)
	m.status.SetResting(msg)
}

// ReloadConfig re-reads the configuration from the source, or re-applies
// the current one when there is no source. A load error keeps the
// current configuration and is returned.
func (m *Monitor) ReloadConfig() error {
	cfg := m.config
	if m.source != nil {
		loaded, err := m.source()
		if err != nil {
			m.resetState()
			return err
		}
		cfg = loaded
	}
	m.UpdateConfig(cfg)
	if m.active {
		m.status.Flash("Hotkey reloaded: " + m.combo)
	}
	return nil
}

// SetMode switches between toggle and hold, clearing in-flight state.
func (m *Monitor) SetMode(mode Mode) {
	cfg := m.config
	cfg.Mode = mode
	m.UpdateConfig(cfg)
}

// Stop disables the monitor until the next UpdateConfig or ReloadConfig.
func (m *Monitor) Stop() {
	m.resetState()
	m.active = false
	m.status.SetResting(statusStopped)
}

func (m *Monitor) resetState() {
	if m.state == stateHoldArmed && m.actions.OnHoldEnd != nil {
		m.actions.OnHoldEnd()
	}
	m.state = stateIdle
}

// validate checks the key field and permissions in order and returns
// either the refusal message or the ready message.
func (m *Monitor) validate() (string, bool) {
	raw := m.config.Key
	typed := strings.TrimSpace(raw)
	if _, literal := literalKeys[raw]; typed == "" && !literal {
		return statusEmptyKey, false
	}
	if isModifierOnlyInput(raw) {
		return statusModifierOnlyKey(typed), false
	}
	if LooksLikeModifierComboInput(raw) {
		return statusShortcutInKeyField(typed), false
	}
	if !IsSupportedKey(raw) {
		return statusUnsupportedKey(typed), false
	}

	m.key = Canonicalize(raw)
	m.keyCode, _ = KeyCodeFor(m.key)
	m.combo = FormatHotkey(m.config.Required, m.key)

	if IsHighRiskHotkey(m.config.Required, m.key) {
		return statusHighRisk(m.key), false
	}
	if missing := m.missingPermissions(); len(missing) > 0 {
		return statusMissingPermissions(missing, m.appName), false
	}
	return statusActive(m.combo, m.config.Mode), true
}

func (m *Monitor) missingPermissions() []string {
	if m.permissions == nil {
		return nil
	}
	var missing []string
	if !m.permissions.HasAccessibilityPermission() {
		missing = append(missing, "Accessibility")
	}
	if !m.permissions.HasInputMonitoringPermission() {
		missing = append(missing, "Input Monitoring")
	}
	return missing
}

// Handle processes one key event and reports whether it was consumed.
// Consumed events should not reach the foreground app.
func (m *Monitor) Handle(ev Event) bool {
	if !m.active || !KeyCodeMatches(ev.KeyCode, m.keyCode) {
		return false
	}
	if !ev.KeyDown {
		return m.handleKeyUp()
	}
	if !m.modifiersMatch(ev.Flags) {
		return false
	}

	switch m.config.Mode {
	case ModeHold:
		if m.state == stateHoldArmed || ev.AutoRepeat {
			return true
		}
		m.state = stateHoldArmed
		if m.actions.OnHoldStart != nil {
			m.actions.OnHoldStart()
		}
		m.status.Set(statusHoldArmed(m.combo))
	default:
		// One toggle per physical press; repeats are swallowed.
		if m.state == stateToggleDown || ev.AutoRepeat {
			return true
		}
		m.state = stateToggleDown
		if m.actions.OnToggle != nil {
			m.actions.OnToggle()
		}
	}
	return true
}

// handleKeyUp ends the current press. Modifiers are not checked because
// they are often released before the key.
func (m *Monitor) handleKeyUp() bool {
	switch m.state {
	case stateToggleDown:
		m.state = stateIdle
		return true
	case stateHoldArmed:
		m.state = stateIdle
		if m.actions.OnHoldEnd != nil {
			m.actions.OnHoldEnd()
		}
		m.status.SetResting(statusActive(m.combo, m.config.Mode))
		return true
	}
	return false
}

func (m *Monitor) modifiersMatch(flags ModifierSet) bool {
	return flags.Contains(m.config.Required) && !flags.Intersects(m.config.Forbidden)
}

// Status returns the current status message.
func (m *Monitor) Status() string {
	return m.status.Message()
}

// FlashStatus shows a transient message over the current status.
func (m *Monitor) FlashStatus(message string) {
	m.status.Flash(message)
}

// Active reports whether the monitor is armed.
func (m *Monitor) Active() bool {
	return m.active
}

// Configuration returns the normalized configuration in effect.
func (m *Monitor) Configuration() Configuration {
	return m.config
}

// Key returns the canonical trigger key, valid while Active.
func (m *Monitor) Key() string {
	return m.key
}

// KeyCode returns the trigger key code, valid while Active.
func (m *Monitor) KeyCode() KeyCode {
	return m.keyCode
}

// HoldSessionArmed reports whether a hold-mode recording is in progress.
func (m *Monitor) HoldSessionArmed() bool {
	return m.state == stateHoldArmed
}

// ToggleKeyDown reports whether the toggle trigger is still held after
// an accepted press.
func (m *Monitor) ToggleKeyDown() bool {
	return m.state == stateToggleDown
}
