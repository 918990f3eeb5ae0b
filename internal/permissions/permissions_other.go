//go:build !darwin

package permissions

func accessibilityTrusted() bool { return true }

func listenEventAccess() bool { return true }
