//go:build !linux

package hotkey

import "golang.design/x/hotkey"

// expandModifiers registers the combination once. RegisterHotKey and
// Carbon ignore lock keys.
func expandModifiers(modifiers []hotkey.Modifier, _ Binding) [][]hotkey.Modifier {
	return [][]hotkey.Modifier{modifiers}
}
