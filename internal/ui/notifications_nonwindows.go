//go:build !windows

package ui

import "github.com/gen2brain/beeep"

func (n *NotificationManager) platformNotify(title, message string) error {
	// beeep takes an icon path; the embedded PNG only exists in memory here.
	return beeep.Notify(title, message, "")
}
