// ==== internal/ui/systray.go ====
package ui

import (
	"fmt"
	"log"
	"sync"

	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
	"github.com/getlantern/systray"
)

// maxStatusTitle bounds the status line; the full text stays in the tooltip.
const maxStatusTitle = 60

// TrayActions are the menu callbacks. Nil fields leave their item disabled.
type TrayActions struct {
	OnSetHotkey      func()
	OnTestHotkey     func()
	OnSetMode        func(hotkey.Mode)
	OnCopyStatus     func()
	OnShowLastChange func()
	OnOpenConfig     func()
	OnReload         func()
	OnQuit           func()
}

// SystrayManager handles the system tray icon and menu
type SystrayManager struct {
	appName      string
	version      string
	embeddedIcon []byte
	actions      TrayActions

	mu            sync.Mutex
	ready         bool
	status        string
	mode          hotkey.Mode
	hasLastChange bool

	miStatus     *systray.MenuItem
	miHotkey     *systray.MenuItem
	miToggle     *systray.MenuItem
	miHold       *systray.MenuItem
	miLastChange *systray.MenuItem
	combo        string
}

// NewSystrayManager creates a new system tray manager
func NewSystrayManager(appName, version string, embeddedIcon []byte, actions TrayActions) *SystrayManager {
	return &SystrayManager{
		appName:      appName,
		version:      version,
		embeddedIcon: embeddedIcon,
		actions:      actions,
		mode:         hotkey.ModeToggle,
	}
}

// Run initializes and starts the system tray. It blocks until Quit.
func (s *SystrayManager) Run() {
	systray.Run(s.onReady, s.onExit)
}

// statusTitle shortens message for a menu item title.
func statusTitle(message string) string {
	if message == "" {
		return "Hotkey status unknown"
	}
	r := []rune(message)
	if len(r) <= maxStatusTitle {
		return message
	}
	return string(r[:maxStatusTitle-1]) + "…"
}

// modeTitles returns the titles of the Toggle and Hold items, with a
// check mark on the active one.
func modeTitles(mode hotkey.Mode) (toggle, hold string) {
	toggle, hold = "  Toggle (press to start and stop)", "  Hold (record while held)"
	if mode == hotkey.ModeHold {
		return toggle, "✓ Hold (record while held)"
	}
	return "✓ Toggle (press to start and stop)", hold
}

// UpdateStatus shows message as the status line.
func (s *SystrayManager) UpdateStatus(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = message
	if !s.ready {
		return
	}
	s.miStatus.SetTitle(statusTitle(message))
	s.miStatus.SetTooltip(message)
	systray.SetTooltip(fmt.Sprintf("%s: %s", s.appName, message))
}

// UpdateHotkey shows the configured combination and mode.
func (s *SystrayManager) UpdateHotkey(combo string, mode hotkey.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.combo = combo
	s.mode = mode
	if !s.ready {
		return
	}
	s.applyHotkeyLocked()
}

func (s *SystrayManager) applyHotkeyLocked() {
	title := "Hotkey: (none)"
	if s.combo != "" {
		title = "Hotkey: " + s.combo
	}
	s.miHotkey.SetTitle(title)
	toggle, hold := modeTitles(s.mode)
	s.miToggle.SetTitle(toggle)
	s.miHold.SetTitle(hold)
}

// UpdateLastChangeStatus enables "Show Last Change" once a change exists.
func (s *SystrayManager) UpdateLastChangeStatus(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasLastChange = enabled
	if !s.ready {
		return
	}
	if enabled && s.actions.OnShowLastChange != nil {
		s.miLastChange.Enable()
	} else {
		s.miLastChange.Disable()
	}
}

// onReady is called by systray once the tray is ready.
func (s *SystrayManager) onReady() {
	title := fmt.Sprintf("%s %s", s.appName, s.version)
	systray.SetTitle(title)
	systray.SetTooltip(title)
	if len(s.embeddedIcon) > 0 {
		systray.SetIcon(s.embeddedIcon)
	} else {
		log.Println("Warning: No embedded icon data to set for systray.")
	}

	miVersion := systray.AddMenuItem(fmt.Sprintf("Version: %s", s.version), s.appName+" version")
	miVersion.Disable()
	systray.AddSeparator()

	s.mu.Lock()
	s.miStatus = systray.AddMenuItem(statusTitle(s.status), s.status)
	s.miStatus.Disable()
	s.miHotkey = systray.AddMenuItem("Hotkey: (none)", "Current global hotkey")
	s.miHotkey.Disable()
	miMode := systray.AddMenuItem("Mode", "How the hotkey controls recording")
	s.miToggle = miMode.AddSubMenuItem("", "Press once to start, again to stop")
	s.miHold = miMode.AddSubMenuItem("", "Record only while the hotkey is held")
	s.mu.Unlock()

	miSetHotkey := systray.AddMenuItem("Set Hotkey…", "Type a new hotkey such as ctrl+shift+d")
	miTestHotkey := systray.AddMenuItem("Test Hotkey…", "Press the hotkey to check that it arrives")
	miCopyStatus := systray.AddMenuItem("Copy Status", "Copy the status message to the clipboard")
	systray.AddSeparator()

	miReload := systray.AddMenuItem("Reload Configuration", "Read the config file again")
	miOpenConfig := systray.AddMenuItem("Open Config File", "Open the config file in the default editor")
	miLastChange := systray.AddMenuItem("Show Last Change", "Show what the last hotkey change altered")
	systray.AddSeparator()
	miQuit := systray.AddMenuItem("Quit", "Exit the application")

	s.mu.Lock()
	s.miLastChange = miLastChange
	s.ready = true
	s.miStatus.SetTitle(statusTitle(s.status))
	s.applyHotkeyLocked()
	if !s.hasLastChange || s.actions.OnShowLastChange == nil {
		s.miLastChange.Disable()
	}
	s.mu.Unlock()

	handle(miSetHotkey, "Set Hotkey", s.actions.OnSetHotkey)
	handle(miTestHotkey, "Test Hotkey", s.actions.OnTestHotkey)
	handle(miCopyStatus, "Copy Status", s.actions.OnCopyStatus)
	handle(miReload, "Reload Configuration", s.actions.OnReload)
	handle(miOpenConfig, "Open Config File", s.actions.OnOpenConfig)
	handle(miLastChange, "Show Last Change", s.actions.OnShowLastChange)
	if s.actions.OnSetMode != nil {
		handle(s.miToggle, "Toggle mode", func() { s.actions.OnSetMode(hotkey.ModeToggle) })
		handle(s.miHold, "Hold mode", func() { s.actions.OnSetMode(hotkey.ModeHold) })
	} else {
		s.miToggle.Disable()
		s.miHold.Disable()
	}

	go func() {
		<-miQuit.ClickedCh
		log.Println("Quit menu item clicked.")
		if s.actions.OnQuit != nil {
			s.actions.OnQuit()
		}
		systray.Quit()
	}()

	log.Println("Systray ready and menu configured.")
}

// handle runs fn for every click on item, or disables item when fn is nil.
func handle(item *systray.MenuItem, name string, fn func()) {
	if fn == nil {
		item.Disable()
		return
	}
	go func() {
		for range item.ClickedCh {
			log.Printf("%s menu item clicked.", name)
			fn()
		}
	}()
}

// onExit is called when the systray is exiting
func (s *SystrayManager) onExit() {
	log.Println("Systray exiting.")
}
