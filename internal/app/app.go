// ==== internal/app/app.go ====
package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/TanaroSch/dictation-hotkey/internal/config"
	"github.com/TanaroSch/dictation-hotkey/internal/diffutil"
	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
	"github.com/TanaroSch/dictation-hotkey/internal/permissions"
	"github.com/TanaroSch/dictation-hotkey/internal/resources"
	"github.com/TanaroSch/dictation-hotkey/internal/ui"
	"github.com/atotto/clipboard"
)

const appName = "Dictation Hotkey"

// Application represents the main application
type Application struct {
	version string

	mu     sync.Mutex
	config *config.Config
	// lastBefore and lastAfter describe the hotkey around the most recent
	// change, for "Show Last Change".
	lastBefore, lastAfter string

	notifications  *ui.NotificationManager
	recording      *recordingState
	monitor        *hotkey.Monitor
	hotkeyManager  *hotkey.Manager
	systrayManager *ui.SystrayManager
	watcher        *config.Watcher
	iconData       []byte

	// copyText is clipboard.WriteAll outside tests.
	copyText func(string) error
}

// New creates a new application instance
func New(cfg *config.Config, version string) *Application {
	app := &Application{
		config:   cfg,
		version:  version,
		copyText: clipboard.WriteAll,
	}

	var err error
	app.iconData, err = resources.GetIcon()
	if err != nil {
		log.Printf("Warning: Failed to load embedded icon: %v", err)
	}
	pngIcon, err := resources.GetPNG()
	if err != nil {
		log.Printf("Warning: Failed to load notification icon: %v", err)
	}

	app.notifications = ui.NewNotificationManager(cfg.UseNotifications, appName, pngIcon)
	ui.InitGlobalNotifications(app.notifications)

	app.systrayManager = ui.NewSystrayManager(appName, version, app.iconData, ui.TrayActions{
		OnSetHotkey:      app.onSetHotkey,
		OnTestHotkey:     app.onTestHotkey,
		OnSetMode:        app.onSetMode,
		OnCopyStatus:     app.onCopyStatus,
		OnShowLastChange: app.onShowLastChange,
		OnOpenConfig:     app.onOpenConfigFile,
		OnReload:         app.onReloadConfig,
		OnQuit:           app.onQuit,
	})

	app.init(hotkey.SelectBackend(), permissions.New(), notifyingRecorder{notify: app.notifications.ShowNotification})
	return app
}

// init builds the hotkey pipeline. Tests call it with fakes.
func (a *Application) init(backend hotkey.Backend, perms hotkey.PermissionChecker, recorder Recorder) {
	a.recording = newRecordingState(recorder)
	a.monitor = hotkey.NewMonitor(hotkey.MonitorOptions{
		AppName:     appName,
		Permissions: perms,
		Actions: hotkey.Actions{
			OnToggle:    a.recording.toggle,
			OnHoldStart: a.recording.start,
			OnHoldEnd:   a.recording.stop,
		},
		Source:   a.loadConfiguration,
		OnStatus: a.onStatus,
	})
	a.hotkeyManager = hotkey.NewManager(backend, a.monitor)
}

// Run starts the application
func (a *Application) Run() {
	a.start()
	// Start the systray manager (blocking call)
	a.systrayManager.Run()
}

// start registers the configured hotkey and starts watching the config file.
func (a *Application) start() {
	a.mu.Lock()
	cfg := a.config.Configuration()
	watch := a.config.WatchConfig
	path := a.config.GetConfigPath()
	a.mu.Unlock()

	if err := a.hotkeyManager.Apply(cfg); err != nil {
		log.Printf("Warning: Failed to register hotkey: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Hotkey Registration Issue", fmt.Sprintf("The hotkey could not be registered: %v", err))
	}
	a.refreshTray()

	if watch && path != "" {
		w, err := config.Watch(path, config.DefaultWatchDelay, a.onConfigFileChanged)
		if err != nil {
			log.Printf("Warning: Config file will not be watched: %v", err)
		} else {
			a.watcher = w
		}
	}
}

// loadConfiguration is the Monitor's source. It runs with the hotkey
// manager locked, so it must not call back into it.
func (a *Application) loadConfiguration() (hotkey.Configuration, error) {
	a.mu.Lock()
	path := a.config.GetConfigPath()
	a.mu.Unlock()

	newConfig, err := config.Load(path)
	if err != nil {
		return hotkey.Configuration{}, err
	}

	a.mu.Lock()
	a.config = newConfig
	a.mu.Unlock()
	a.notifications.SetEnabled(newConfig.UseNotifications)
	return newConfig.Configuration(), nil
}

func (a *Application) onStatus(message string) {
	log.Printf("Status: %s", message)
	if a.systrayManager != nil {
		a.systrayManager.UpdateStatus(message)
	}
}

func (a *Application) refreshTray() {
	if a.systrayManager == nil {
		return
	}
	cfg := a.hotkeyManager.Configuration()
	combo := ""
	if k := hotkey.Canonicalize(cfg.Key); k != "" {
		combo = hotkey.FormatHotkey(cfg.Required, k)
	}
	a.systrayManager.UpdateHotkey(combo, cfg.Mode)
}

// recordChange remembers a hotkey change and reports its summary. An
// unchanged hotkey returns false and is not remembered.
func (a *Application) recordChange(before, after hotkey.Configuration) (string, bool) {
	b, af := before.Describe(), after.Describe()
	changes, summary := diffutil.GenerateDiffAndSummary(b, af)
	if len(changes) == 0 {
		return summary, false
	}
	log.Printf("Hotkey settings changed:\n%s", diffutil.FormatChanges(changes))

	a.mu.Lock()
	a.lastBefore, a.lastAfter = b, af
	a.mu.Unlock()
	if a.systrayManager != nil {
		a.systrayManager.UpdateLastChangeStatus(true)
	}
	return summary, true
}

func (a *Application) onConfigFileChanged() {
	a.reload(false)
}

// onReloadConfig is called when the reload menu item is clicked
func (a *Application) onReloadConfig() {
	a.reload(true)
}

// reload re-reads the config file. Manual reloads always report back;
// watcher reloads stay quiet unless the hotkey changed or loading failed.
func (a *Application) reload(manual bool) {
	log.Println("Reloading configuration...")
	before := a.hotkeyManager.Configuration()
	err := a.hotkeyManager.Reload()
	if err != nil {
		log.Printf("Error reloading configuration: %v", err)
		ui.ShowAdminNotification(ui.LevelError, "Configuration Error", fmt.Sprintf("Failed to reload configuration. Error: %v", err))
		return
	}
	a.refreshTray()

	summary, changed := a.recordChange(before, a.hotkeyManager.Configuration())
	switch {
	case changed:
		ui.ShowAdminNotification(ui.LevelInfo, "Configuration Reloaded", summary)
	case manual:
		ui.ShowAdminNotification(ui.LevelInfo, "Configuration Reloaded", "Hotkey settings are unchanged.")
	}
	if manual && !a.hotkeyManager.Active() {
		ui.ShowAdminNotification(ui.LevelWarn, "Hotkey Inactive", a.hotkeyManager.Status())
	}
}

// applyHotkey saves cfg and registers it.
func (a *Application) applyHotkey(cfg hotkey.Configuration) {
	if err := a.saveConfiguration(cfg); err != nil {
		log.Printf("Failed to save hotkey: %v", err)
		ui.ShowAdminNotification(ui.LevelError, "Save Error", fmt.Sprintf("Failed to save the hotkey. Error: %v", err))
		return
	}

	before := a.hotkeyManager.Configuration()
	err := a.hotkeyManager.Apply(cfg)
	a.refreshTray()
	summary, _ := a.recordChange(before, a.hotkeyManager.Configuration())
	if err != nil {
		log.Printf("Warning: Failed to register hotkey: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Hotkey Registration Issue", fmt.Sprintf("The hotkey was saved but could not be registered: %v", err))
		return
	}
	ui.ShowAdminNotification(ui.LevelInfo, "Hotkey Updated", summary)
}

func (a *Application) saveConfiguration(cfg hotkey.Configuration) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	previous := a.config.Hotkey
	a.config.SetConfiguration(cfg)
	if err := a.config.Save(); err != nil {
		a.config.Hotkey = previous
		return err
	}
	return nil
}

// onSetMode switches between toggle and hold and saves the choice.
func (a *Application) onSetMode(mode hotkey.Mode) {
	cfg := a.hotkeyManager.Configuration()
	if cfg.Mode == mode {
		return
	}
	cfg.Mode = mode
	if err := a.saveConfiguration(cfg); err != nil {
		log.Printf("Failed to save hotkey mode: %v", err)
		ui.ShowAdminNotification(ui.LevelError, "Save Error", fmt.Sprintf("Failed to save the hotkey mode. Error: %v", err))
		return
	}

	before := a.hotkeyManager.Configuration()
	if err := a.hotkeyManager.SetMode(mode); err != nil {
		log.Printf("Warning: Failed to register hotkey after mode change: %v", err)
	}
	a.refreshTray()
	a.recordChange(before, a.hotkeyManager.Configuration())
}

// onCopyStatus copies the status message to the clipboard.
func (a *Application) onCopyStatus() {
	status := a.hotkeyManager.Status()
	if err := a.copyText(status); err != nil {
		log.Printf("Failed to copy status: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Clipboard Error", fmt.Sprintf("Could not copy the status. Error: %v", err))
		return
	}
	log.Printf("Copied status to clipboard: %s", status)
}

// onShowLastChange opens the details of the last hotkey change.
func (a *Application) onShowLastChange() {
	a.mu.Lock()
	before, after := a.lastBefore, a.lastAfter
	a.mu.Unlock()
	if before == "" && after == "" {
		ui.ShowAdminNotification(ui.LevelInfo, "Hotkey Changes", "No hotkey changes recorded yet.")
		return
	}
	if err := ui.ShowChangeDetails("Hotkey Change Details", before, after); err != nil {
		log.Printf("Error showing change details: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Change View Error", err.Error())
	}
}

// onQuit is called when the quit menu item is clicked
func (a *Application) onQuit() {
	log.Println("Quit requested. Unregistering hotkey.")
	a.shutdown()
}

func (a *Application) shutdown() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("Error closing config watcher: %v", err)
		}
	}
	a.hotkeyManager.Stop()
	a.recording.stop()
}

// onOpenConfigFile is called when the open config menu item is clicked
func (a *Application) onOpenConfigFile() {
	a.mu.Lock()
	configPath := a.config.GetConfigPath()
	a.mu.Unlock()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		log.Printf("Warning: Failed to get absolute path for '%s': %v. Proceeding with original path.", configPath, err)
		absPath = configPath
	}
	if _, err := os.Stat(absPath); err != nil {
		log.Printf("Error checking config file '%s': %v", absPath, err)
		ui.ShowAdminNotification(ui.LevelWarn, "Error Opening File", fmt.Sprintf("Config file not available: %s", absPath))
		return
	}
	if err := ui.OpenFileInDefaultApp(absPath); err != nil {
		log.Printf("Error opening config file '%s': %v", absPath, err)
		ui.ShowAdminNotification(ui.LevelWarn, "Error Opening File", fmt.Sprintf("Could not open config file '%s': %v", absPath, err))
	}
}
