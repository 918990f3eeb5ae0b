package ui

import (
	"log"
	"sync"
	"sync/atomic"
)

// Level ranks a notification. Info notices follow the user's
// use_notifications setting; warnings and errors are always shown.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// NotificationManager handles showing notifications across platforms
type NotificationManager struct {
	enabled      atomic.Bool
	appName      string
	embeddedIcon []byte

	// notify is platformNotify outside tests.
	notify func(title, message string) error
}

// NewNotificationManager creates a new notification manager
func NewNotificationManager(useNotifications bool, appName string, embeddedIcon []byte) *NotificationManager {
	n := &NotificationManager{
		appName:      appName,
		embeddedIcon: embeddedIcon,
	}
	n.notify = n.platformNotify
	n.enabled.Store(useNotifications)
	return n
}

// SetEnabled follows use_notifications after a config reload.
func (n *NotificationManager) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Enabled reports whether info notices are shown.
func (n *NotificationManager) Enabled() bool {
	return n.enabled.Load()
}

// ShowNotification displays an info notification if enabled
func (n *NotificationManager) ShowNotification(title, message string) {
	n.Notify(LevelInfo, title, message)
}

// Notify shows a notification at level. Every notice is logged, shown or not.
func (n *NotificationManager) Notify(level Level, title, message string) {
	log.Printf("Notification [%s] %s: %s", level, title, message)
	if level == LevelInfo && !n.enabled.Load() {
		return
	}
	if err := n.notify(title, message); err != nil {
		log.Printf("Error showing notification: %v", err)
	}
}

var (
	globalMu            sync.RWMutex
	globalNotifications *NotificationManager
)

// InitGlobalNotifications installs the manager used by the package level
// helpers, so menu handlers need not carry one around.
func InitGlobalNotifications(n *NotificationManager) {
	globalMu.Lock()
	globalNotifications = n
	globalMu.Unlock()
}

// ShowAdminNotification reports through the global manager. Before
// InitGlobalNotifications it only logs.
func ShowAdminNotification(level Level, title, message string) {
	globalMu.RLock()
	n := globalNotifications
	globalMu.RUnlock()
	if n == nil {
		log.Printf("Notification [%s] %s: %s (notifications not initialized)", level, title, message)
		return
	}
	n.Notify(level, title, message)
}
