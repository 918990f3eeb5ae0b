//go:build !darwin

package permissions

import "testing"

func TestCheckerGrantsOutsideMacOS(t *testing.T) {
	c := New()
	if !c.HasAccessibilityPermission() {
		t.Error("HasAccessibilityPermission() = false")
	}
	if !c.HasInputMonitoringPermission() {
		t.Error("HasInputMonitoringPermission() = false")
	}
}
