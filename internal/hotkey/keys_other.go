//go:build !windows && !linux && !darwin

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

// nativeBinding is not implemented on this OS.
// The project targets Windows, macOS and Linux.
func nativeBinding(b Binding) ([][]hotkey.Modifier, hotkey.Key, error) {
	return nil, 0, fmt.Errorf("hotkey '%s': %w", b, ErrBackendNotAvailable)
}
