// Package permissions checks the OS permissions a global hotkey listener
// needs. Only macOS gates them; elsewhere every check reports granted.
package permissions

import "github.com/TanaroSch/dictation-hotkey/internal/hotkey"

var _ hotkey.PermissionChecker = Checker{}

// Checker implements hotkey.PermissionChecker against the running system.
type Checker struct{}

// New returns a Checker for the current process.
func New() Checker {
	return Checker{}
}

// HasAccessibilityPermission reports whether the process is trusted for
// accessibility, which synthetic text insertion needs.
func (Checker) HasAccessibilityPermission() bool {
	return accessibilityTrusted()
}

// HasInputMonitoringPermission reports whether the process may listen to
// keyboard events outside its own windows.
func (Checker) HasInputMonitoringPermission() bool {
	return listenEventAccess()
}
