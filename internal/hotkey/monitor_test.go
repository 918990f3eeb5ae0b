package hotkey

import (
	"errors"
	"testing"
)

type fakePermissions struct {
	accessibility   bool
	inputMonitoring bool
}

func (p fakePermissions) HasAccessibilityPermission() bool   { return p.accessibility }
func (p fakePermissions) HasInputMonitoringPermission() bool { return p.inputMonitoring }

type actionCounts struct {
	toggles, holdStarts, holdEnds int
}

func newTestMonitor(counts *actionCounts, perms PermissionChecker) *Monitor {
	return NewMonitor(MonitorOptions{
		AppName:     "Dictation Hotkey",
		Permissions: perms,
		Actions: Actions{
			OnToggle:    func() { counts.toggles++ },
			OnHoldStart: func() { counts.holdStarts++ },
			OnHoldEnd:   func() { counts.holdEnds++ },
		},
	})
}

func down(code KeyCode, flags ModifierSet) Event {
	return Event{KeyCode: code, Flags: flags, KeyDown: true}
}

func up(code KeyCode) Event {
	return Event{KeyCode: code}
}

var ctrlShift = NewModifierSet(Control, Shift)

func TestMonitorToggleFiresOncePerPress(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	m.UpdateConfig(DefaultConfiguration())

	if want := "Hotkey active: ⌃⇧Space (press to start or stop recording)"; m.Status() != want {
		t.Fatalf("Status() = %q, want %q", m.Status(), want)
	}

	if !m.Handle(down(KeyCodeSpace, ctrlShift)) {
		t.Fatal("first press not consumed")
	}
	if !m.ToggleKeyDown() {
		t.Error("ToggleKeyDown() = false while held")
	}
	// A second key-down without a key-up, and OS auto-repeat, are swallowed.
	if !m.Handle(down(KeyCodeSpace, ctrlShift)) {
		t.Error("duplicate key-down not consumed")
	}
	repeat := down(KeyCodeSpace, ctrlShift)
	repeat.AutoRepeat = true
	if !m.Handle(repeat) {
		t.Error("auto-repeat not consumed")
	}
	if counts.toggles != 1 {
		t.Fatalf("toggles = %d after one press, want 1", counts.toggles)
	}

	// Modifiers are often released first; the key-up still ends the press.
	if !m.Handle(up(KeyCodeSpace)) {
		t.Error("key-up not consumed")
	}
	if m.ToggleKeyDown() {
		t.Error("ToggleKeyDown() = true after release")
	}
	m.Handle(down(KeyCodeSpace, ctrlShift))
	if counts.toggles != 2 {
		t.Errorf("toggles = %d after two presses, want 2", counts.toggles)
	}
}

func TestMonitorIdleAutoRepeatIsSwallowed(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	m.UpdateConfig(DefaultConfiguration())

	ev := down(KeyCodeSpace, ctrlShift)
	ev.AutoRepeat = true
	if !m.Handle(ev) {
		t.Error("idle auto-repeat not consumed")
	}
	if counts.toggles != 0 {
		t.Errorf("idle auto-repeat toggled %d times", counts.toggles)
	}
}

func TestMonitorModifierMatching(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	cfg := DefaultConfiguration()
	cfg.Forbidden = NewModifierSet(Option)
	m.UpdateConfig(cfg)

	tests := []struct {
		name  string
		flags ModifierSet
		want  bool
	}{
		{name: "missing required", flags: NewModifierSet(Control), want: false},
		{name: "forbidden held", flags: ctrlShift.With(Option), want: false},
		{name: "extra unforbidden modifier", flags: ctrlShift.With(Command), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Handle(down(KeyCodeSpace, tt.flags))
			m.Handle(up(KeyCodeSpace))
			if got != tt.want {
				t.Errorf("Handle = %v, want %v", got, tt.want)
			}
		})
	}
	if m.Handle(down(KeyCodeTab, ctrlShift)) {
		t.Error("other key consumed")
	}
}

func TestMonitorHoldArmsAndDisarms(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	cfg := DefaultConfiguration()
	cfg.Mode = ModeHold
	m.UpdateConfig(cfg)

	if want := "Hotkey active: ⌃⇧Space (hold to record)"; m.Status() != want {
		t.Fatalf("Status() = %q, want %q", m.Status(), want)
	}

	m.Handle(down(KeyCodeSpace, ctrlShift))
	if !m.HoldSessionArmed() || counts.holdStarts != 1 {
		t.Fatalf("after key-down: armed=%v starts=%d", m.HoldSessionArmed(), counts.holdStarts)
	}
	if want := "Hold active: ⌃⇧Space (release to stop recording)"; m.Status() != want {
		t.Errorf("Status() = %q, want %q", m.Status(), want)
	}

	repeat := down(KeyCodeSpace, ctrlShift)
	repeat.AutoRepeat = true
	m.Handle(repeat)
	if counts.holdStarts != 1 {
		t.Errorf("auto-repeat restarted hold: starts=%d", counts.holdStarts)
	}

	m.Handle(up(KeyCodeSpace))
	if m.HoldSessionArmed() || counts.holdEnds != 1 {
		t.Fatalf("after key-up: armed=%v ends=%d", m.HoldSessionArmed(), counts.holdEnds)
	}
	if want := "Hotkey active: ⌃⇧Space (hold to record)"; m.Status() != want {
		t.Errorf("Status() = %q, want %q", m.Status(), want)
	}
}

func TestMonitorReconfigureEndsHold(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	cfg := DefaultConfiguration()
	cfg.Mode = ModeHold
	m.UpdateConfig(cfg)

	m.Handle(down(KeyCodeSpace, ctrlShift))
	m.SetMode(ModeToggle)
	if counts.holdEnds != 1 || m.HoldSessionArmed() {
		t.Errorf("SetMode during hold: ends=%d armed=%v", counts.holdEnds, m.HoldSessionArmed())
	}
	// The stale key-up must not toggle anything.
	m.Handle(up(KeyCodeSpace))
	if counts.toggles != 0 {
		t.Errorf("toggles = %d", counts.toggles)
	}
}

func TestMonitorKeyCodeEquivalence(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	m.UpdateConfig(Configuration{Required: NewModifierSet(Control), Key: "enter"})

	if !m.Handle(down(KeyCodeKeypadEnter, NewModifierSet(Control))) {
		t.Fatal("keypad enter did not trigger a return hotkey")
	}
	if !m.Handle(up(KeyCodeKeypadEnter)) {
		t.Error("keypad enter key-up not consumed")
	}
	if counts.toggles != 1 {
		t.Errorf("toggles = %d, want 1", counts.toggles)
	}
}

func TestMonitorValidation(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Configuration
		perms      PermissionChecker
		wantActive bool
		wantStatus string
	}{
		{
			name:       "unsupported key",
			cfg:        Configuration{Required: ctrlShift, Key: "invalid key name"},
			wantStatus: "Hotkey disabled: unsupported trigger key 'invalid key name'. Use one key like space, f6, or /.",
		},
		{
			name:       "unsupported key is trimmed",
			cfg:        Configuration{Required: ctrlShift, Key: "  f100 "},
			wantStatus: "Hotkey disabled: unsupported trigger key 'f100'. Use one key like space, f6, or /.",
		},
		{
			name:       "slash separated aliases",
			cfg:        Configuration{Required: ctrlShift, Key: "escape/esc"},
			wantStatus: "Hotkey disabled: unsupported trigger key 'escape/esc'. Use one key like space, f6, or /.",
		},
		{
			name:       "empty key",
			cfg:        Configuration{Required: ctrlShift, Key: "  "},
			wantStatus: "Hotkey disabled: trigger key is empty. Enter one key like space, f6, or /.",
		},
		{
			name:       "literal space is a key",
			cfg:        Configuration{Required: ctrlShift, Key: " "},
			wantActive: true,
			wantStatus: "Hotkey active: ⌃⇧Space (press to start or stop recording)",
		},
		{
			name:       "modifier only",
			cfg:        Configuration{Required: ctrlShift, Key: "ctrl"},
			wantStatus: "Hotkey disabled: trigger key cannot be only a modifier 'ctrl'. Choose one key like space or f6, then set modifiers with the toggles above.",
		},
		{
			name:       "full shortcut in key field",
			cfg:        Configuration{Key: "cmd+space"},
			wantStatus: "Hotkey disabled: key field expects one trigger key (like space or f6), not a full shortcut 'cmd+space'. Set modifiers with the toggles above.",
		},
		{
			name:       "high risk",
			cfg:        Configuration{Key: "space"},
			wantStatus: "Hotkey disabled: Space without modifiers is too easy to trigger",
		},
		{
			name:       "bare function key is fine",
			cfg:        Configuration{Key: "f6", Mode: ModeHold},
			wantActive: true,
			wantStatus: "Hotkey active: F6 (hold to record)",
		},
		{
			name:       "one permission missing",
			cfg:        DefaultConfiguration(),
			perms:      fakePermissions{accessibility: true},
			wantStatus: "Hotkey disabled: missing Input Monitoring permission. Open System Settings → Privacy & Security → Input Monitoring and enable Dictation Hotkey.",
		},
		{
			name:       "both permissions missing",
			cfg:        DefaultConfiguration(),
			perms:      fakePermissions{},
			wantStatus: "Hotkey disabled: missing Accessibility and Input Monitoring permission. Open System Settings → Privacy & Security and enable Dictation Hotkey in both sections.",
		},
		{
			name:       "permissions granted",
			cfg:        DefaultConfiguration(),
			perms:      fakePermissions{accessibility: true, inputMonitoring: true},
			wantActive: true,
			wantStatus: "Hotkey active: ⌃⇧Space (press to start or stop recording)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counts actionCounts
			m := newTestMonitor(&counts, tt.perms)
			m.UpdateConfig(tt.cfg)
			if m.Active() != tt.wantActive {
				t.Errorf("Active() = %v, want %v", m.Active(), tt.wantActive)
			}
			if m.Status() != tt.wantStatus {
				t.Errorf("Status() = %q\nwant       %q", m.Status(), tt.wantStatus)
			}
		})
	}
}

func TestMonitorInactiveIgnoresEvents(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	m.UpdateConfig(Configuration{Key: "invalid key name"})

	if m.Handle(down(KeyCodeSpace, ctrlShift)) {
		t.Error("inactive monitor consumed an event")
	}
	if counts.toggles != 0 {
		t.Errorf("toggles = %d", counts.toggles)
	}
}

func TestMonitorReloadConfig(t *testing.T) {
	var counts actionCounts
	stored := Configuration{Required: ctrlShift, Key: "f6"}
	var loadErr error
	m := NewMonitor(MonitorOptions{
		AppName: "Dictation Hotkey",
		Actions: Actions{OnToggle: func() { counts.toggles++ }},
		Source:  func() (Configuration, error) { return stored, loadErr },
	})

	if err := m.ReloadConfig(); err != nil {
		t.Fatalf("ReloadConfig() = %v", err)
	}
	if !m.Active() || m.Key() != "f6" {
		t.Fatalf("after reload: active=%v key=%q", m.Active(), m.Key())
	}
	if want := "Hotkey reloaded: ⌃⇧F6"; m.Status() != want {
		t.Errorf("Status() = %q, want %q", m.Status(), want)
	}

	loadErr = errors.New("disk on fire")
	stored.Key = "g"
	if err := m.ReloadConfig(); !errors.Is(err, loadErr) {
		t.Fatalf("ReloadConfig() = %v, want load error", err)
	}
	if m.Key() != "f6" || !m.Active() {
		t.Errorf("failed reload changed config: key=%q active=%v", m.Key(), m.Active())
	}
}

func TestMonitorStop(t *testing.T) {
	var counts actionCounts
	m := newTestMonitor(&counts, nil)
	m.UpdateConfig(DefaultConfiguration())
	m.Stop()

	if m.Active() || m.Status() != "Hotkey stopped." {
		t.Errorf("after Stop: active=%v status=%q", m.Active(), m.Status())
	}
	if m.Handle(down(KeyCodeSpace, ctrlShift)) {
		t.Error("stopped monitor consumed an event")
	}
}
