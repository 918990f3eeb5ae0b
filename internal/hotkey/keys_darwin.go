//go:build darwin

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

// platformKeys holds Carbon kVK codes for keys the library has no
// constant for. Apple keyboards stop at F20.
var platformKeys = map[string]hotkey.Key{
	"delete":        0x33,
	"forwarddelete": 0x75,
	"home":          0x73,
	"end":           0x77,
	"pageup":        0x74,
	"pagedown":      0x79,
	"help":          0x72,
	"minus":         0x1B,
	"equals":        0x18,
	"openbracket":   0x21,
	"closebracket":  0x1E,
	"backslash":     0x2A,
	"semicolon":     0x29,
	"quote":         0x27,
	"comma":         0x2B,
	"period":        0x2F,
	"slash":         0x2C,
	"backtick":      0x32,
	"section":       0x0A, // kVK_ISO_Section

	"keypad0":        0x52,
	"keypad1":        0x53,
	"keypad2":        0x54,
	"keypad3":        0x55,
	"keypad4":        0x56,
	"keypad5":        0x57,
	"keypad6":        0x58,
	"keypad7":        0x59,
	"keypad8":        0x5B,
	"keypad9":        0x5C,
	"keypaddecimal":  0x41,
	"keypadmultiply": 0x43,
	"keypadplus":     0x45,
	"keypadclear":    0x47,
	"keypaddivide":   0x4B,
	"keypadenter":    0x4C,
	"keypadminus":    0x4E,
	"keypadequals":   0x51,
}

func nativeModifiers(mods ModifierSet) ([]hotkey.Modifier, error) {
	var out []hotkey.Modifier
	for _, m := range mods.Modifiers() {
		switch m {
		case Control:
			out = append(out, hotkey.ModCtrl)
		case Option:
			out = append(out, hotkey.ModOption)
		case Shift:
			out = append(out, hotkey.ModShift)
		case Command:
			out = append(out, hotkey.ModCmd)
		case CapsLock:
			return nil, fmt.Errorf("caps lock as a required modifier: %w", ErrUnregistrableKey)
		}
	}
	return out, nil
}
