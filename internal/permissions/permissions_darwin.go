//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreGraphics
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>
*/
import "C"

func accessibilityTrusted() bool {
	return C.AXIsProcessTrusted() != 0
}

// CGPreflightListenEventAccess never prompts; the prompt comes from
// System Settings.
func listenEventAccess() bool {
	return bool(C.CGPreflightListenEventAccess())
}
