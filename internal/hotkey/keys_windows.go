//go:build windows

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

// platformKeys holds Windows virtual-key codes for keys the library has
// no constant for. Keypad Enter shares VK_RETURN and cannot be grabbed
// separately, so it is absent.
var platformKeys = map[string]hotkey.Key{
	"delete":        0x08, // VK_BACK
	"forwarddelete": 0x2E, // VK_DELETE
	"home":          0x24,
	"end":           0x23,
	"pageup":        0x21,
	"pagedown":      0x22,
	"help":          0x2D, // VK_INSERT
	"minus":         0xBD,
	"equals":        0xBB,
	"openbracket":   0xDB,
	"closebracket":  0xDD,
	"backslash":     0xDC,
	"semicolon":     0xBA,
	"quote":         0xDE,
	"comma":         0xBC,
	"period":        0xBE,
	"slash":         0xBF,
	"backtick":      0xC0,
	"section":       0xE2, // VK_OEM_102
	"f21":           0x84,
	"f22":           0x85,
	"f23":           0x86,
	"f24":           0x87,

	"keypad0":        0x60,
	"keypad1":        0x61,
	"keypad2":        0x62,
	"keypad3":        0x63,
	"keypad4":        0x64,
	"keypad5":        0x65,
	"keypad6":        0x66,
	"keypad7":        0x67,
	"keypad8":        0x68,
	"keypad9":        0x69,
	"keypadmultiply": 0x6A,
	"keypadplus":     0x6B,
	"keypadminus":    0x6D,
	"keypaddecimal":  0x6E,
	"keypaddivide":   0x6F,
	"keypadequals":   0x92, // VK_OEM_NEC_EQUAL
	"keypadclear":    0x0C, // VK_CLEAR
}

func nativeModifiers(mods ModifierSet) ([]hotkey.Modifier, error) {
	var out []hotkey.Modifier
	for _, m := range mods.Modifiers() {
		switch m {
		case Control:
			out = append(out, hotkey.ModCtrl)
		case Option:
			out = append(out, hotkey.ModAlt)
		case Shift:
			out = append(out, hotkey.ModShift)
		case Command:
			// On Windows, treat cmd as the Windows key.
			out = append(out, hotkey.ModWin)
		case CapsLock:
			return nil, fmt.Errorf("caps lock as a required modifier: %w", ErrUnregistrableKey)
		}
	}
	return out, nil
}
