package hotkey

// KeyCode is a USB HID keyboard usage ID (usage page 0x07). Every OS
// listener translates its native codes into this space before calling
// Monitor.Handle.
type KeyCode uint16

const (
	KeyCodeReturn        KeyCode = 0x28
	KeyCodeEscape        KeyCode = 0x29
	KeyCodeDelete        KeyCode = 0x2A
	KeyCodeTab           KeyCode = 0x2B
	KeyCodeSpace         KeyCode = 0x2C
	KeyCodeCapsLock      KeyCode = 0x39
	KeyCodeForwardDelete KeyCode = 0x4C
	KeyCodeKeypadEnter   KeyCode = 0x58
	KeyCodeLeftControl   KeyCode = 0xE0
	KeyCodeRightGUI      KeyCode = 0xE7
)

var keyCodes = map[string]KeyCode{
	"return":        KeyCodeReturn,
	"escape":        KeyCodeEscape,
	"delete":        KeyCodeDelete,
	"tab":           KeyCodeTab,
	"space":         KeyCodeSpace,
	"minus":         0x2D,
	"equals":        0x2E,
	"openbracket":   0x2F,
	"closebracket":  0x30,
	"backslash":     0x31,
	"semicolon":     0x33,
	"quote":         0x34,
	"backtick":      0x35,
	"comma":         0x36,
	"period":        0x37,
	"slash":         0x38,
	"help":          0x49,
	"home":          0x4A,
	"pageup":        0x4B,
	"forwarddelete": KeyCodeForwardDelete,
	"end":           0x4D,
	"pagedown":      0x4E,
	"right":         0x4F,
	"left":          0x50,
	"down":          0x51,
	"up":            0x52,
	"section":       0x64,

	"keypadclear":    0x53,
	"keypaddivide":   0x54,
	"keypadmultiply": 0x55,
	"keypadminus":    0x56,
	"keypadplus":     0x57,
	"keypadenter":    KeyCodeKeypadEnter,
	"keypaddecimal":  0x63,
	"keypadequals":   0x67,
}

// keyNames is the reverse of keyCodes.
var keyNames = map[KeyCode]string{}

func init() {
	for i := 0; i < 26; i++ {
		keyCodes[string(rune('a'+i))] = KeyCode(0x04 + i)
	}
	for i := 1; i <= 9; i++ {
		keyCodes[string(rune('0'+i))] = KeyCode(0x1E + i - 1)
		keyCodes["keypad"+string(rune('0'+i))] = KeyCode(0x59 + i - 1)
	}
	keyCodes["0"] = 0x27
	keyCodes["keypad0"] = 0x62
	for i := 1; i <= 12; i++ {
		keyCodes[functionKeyName(i)] = KeyCode(0x3A + i - 1)
	}
	for i := 13; i <= 24; i++ {
		keyCodes[functionKeyName(i)] = KeyCode(0x68 + i - 13)
	}
	for name, code := range keyCodes {
		keyNames[code] = name
	}
}

func functionKeyName(n int) string {
	if n < 10 {
		return "f" + string(rune('0'+n))
	}
	return "f" + string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// equivalentKeyCodes groups physically distinct keys that users treat as
// the same key.
var equivalentKeyCodes = [][]KeyCode{
	{KeyCodeReturn, KeyCodeKeypadEnter},
	{KeyCodeDelete, KeyCodeForwardDelete},
}

// KeyCodeFor returns the key code of a key in any accepted spelling.
func KeyCodeFor(key string) (KeyCode, bool) {
	code, ok := keyCodes[Canonicalize(key)]
	return code, ok
}

// KeyForCode returns the canonical key name for code. Modifier keys and
// codes outside the supported vocabulary report false.
func KeyForCode(code KeyCode) (string, bool) {
	name, ok := keyNames[code]
	return name, ok
}

// IsModifierKeyCode reports whether code belongs to a modifier key.
func IsModifierKeyCode(code KeyCode) bool {
	return code == KeyCodeCapsLock || (code >= KeyCodeLeftControl && code <= KeyCodeRightGUI)
}

// EquivalentKeyCodes returns code and every code that matches it.
func EquivalentKeyCodes(code KeyCode) []KeyCode {
	for _, class := range equivalentKeyCodes {
		for _, member := range class {
			if member == code {
				return append([]KeyCode(nil), class...)
			}
		}
	}
	return []KeyCode{code}
}

// KeyCodeMatches reports whether an event key code triggers the
// configured key code, either directly or through an equivalence class
// such as Return and Keypad Enter.
func KeyCodeMatches(event, configured KeyCode) bool {
	if event == configured {
		return true
	}
	for _, class := range equivalentKeyCodes {
		if containsKeyCode(class, event) && containsKeyCode(class, configured) {
			return true
		}
	}
	return false
}

func containsKeyCode(codes []KeyCode, code KeyCode) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
