//go:build linux

package hotkey

import "golang.design/x/hotkey"

// expandModifiers returns every mask combination to grab so the hotkey
// still triggers with NumLock or CapsLock engaged. XGrabKey matches the
// mask exactly. CapsLock variants are skipped when the binding requires
// or forbids CapsLock itself.
func expandModifiers(modifiers []hotkey.Modifier, b Binding) [][]hotkey.Modifier {
	with := func(extra ...hotkey.Modifier) []hotkey.Modifier {
		return append(append([]hotkey.Modifier(nil), modifiers...), extra...)
	}

	variants := [][]hotkey.Modifier{with(), with(hotkey.Mod2)}
	if b.Modifiers.Has(CapsLock) || b.Forbidden.Has(CapsLock) {
		return variants
	}
	return append(variants, with(linuxCapsLockMask), with(hotkey.Mod2, linuxCapsLockMask))
}
