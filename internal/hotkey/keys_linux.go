//go:build linux

package hotkey

import "golang.design/x/hotkey"

// platformKeys holds X11 keysyms for keys the library has no constant for.
var platformKeys = map[string]hotkey.Key{
	"delete":        0xff08, // BackSpace
	"forwarddelete": 0xffff, // Delete
	"home":          0xff50,
	"end":           0xff57,
	"pageup":        0xff55, // Prior
	"pagedown":      0xff56, // Next
	"help":          0xff63, // Insert
	"minus":         0x2d,
	"equals":        0x3d,
	"openbracket":   0x5b,
	"closebracket":  0x5d,
	"backslash":     0x5c,
	"semicolon":     0x3b,
	"quote":         0x27,
	"comma":         0x2c,
	"period":        0x2e,
	"slash":         0x2f,
	"backtick":      0x60,
	"section":       0xa7,
	"f21":           0xffd2,
	"f22":           0xffd3,
	"f23":           0xffd4,
	"f24":           0xffd5,

	"keypad0":        0xffb0,
	"keypad1":        0xffb1,
	"keypad2":        0xffb2,
	"keypad3":        0xffb3,
	"keypad4":        0xffb4,
	"keypad5":        0xffb5,
	"keypad6":        0xffb6,
	"keypad7":        0xffb7,
	"keypad8":        0xffb8,
	"keypad9":        0xffb9,
	"keypadmultiply": 0xffaa,
	"keypadplus":     0xffab,
	"keypadminus":    0xffad,
	"keypaddecimal":  0xffae,
	"keypaddivide":   0xffaf,
	"keypadenter":    0xff8d,
	"keypadequals":   0xffbd,
	"keypadclear":    0xff7f, // Num_Lock sits where Clear is on Apple keyboards
}

// X11 lock masks that commonly interfere with XGrabKey.
// CapsLock is LockMask (1<<1) and NumLock is usually Mod2.
const (
	linuxCapsLockMask hotkey.Modifier = 1 << 1
)

// nativeModifiers maps modifiers to X11 masks.
// Alt is typically Mod1 and Super/Win is typically Mod4.
func nativeModifiers(mods ModifierSet) ([]hotkey.Modifier, error) {
	var out []hotkey.Modifier
	for _, m := range mods.Modifiers() {
		switch m {
		case Control:
			out = append(out, hotkey.ModCtrl)
		case Option:
			out = append(out, hotkey.Mod1)
		case Shift:
			out = append(out, hotkey.ModShift)
		case Command:
			out = append(out, hotkey.Mod4)
		case CapsLock:
			out = append(out, linuxCapsLockMask)
		}
	}
	return out, nil
}
