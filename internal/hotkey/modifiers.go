package hotkey

import (
	"strings"
)

// Modifier is one of the five configurable modifier keys.
// fn/globe exists on the keyboard but cannot be configured and is
// tracked separately on ParsedHotkey.
type Modifier uint8

const (
	Command Modifier = 1 << iota
	Shift
	Option
	Control
	CapsLock
)

// AllModifiers lists the configurable modifiers in display order (⌃⌥⇧⌘⇪).
var AllModifiers = []Modifier{Control, Option, Shift, Command, CapsLock}

// String returns the canonical lowercase name of the modifier.
func (m Modifier) String() string {
	switch m {
	case Command:
		return "command"
	case Shift:
		return "shift"
	case Option:
		return "option"
	case Control:
		return "control"
	case CapsLock:
		return "capslock"
	default:
		return "unknown"
	}
}

// Label returns the human-facing name used in status messages.
func (m Modifier) Label() string {
	switch m {
	case Command:
		return "Command"
	case Shift:
		return "Shift"
	case Option:
		return "Option"
	case Control:
		return "Control"
	case CapsLock:
		return "Caps Lock"
	default:
		return "Unknown"
	}
}

// Glyph returns the macOS menu glyph for the modifier.
func (m Modifier) Glyph() string {
	switch m {
	case Command:
		return "⌘"
	case Shift:
		return "⇧"
	case Option:
		return "⌥"
	case Control:
		return "⌃"
	case CapsLock:
		return "⇪"
	default:
		return ""
	}
}

// ModifierSet is a bitset over the configurable modifiers.
type ModifierSet uint8

// NewModifierSet returns a set containing mods.
func NewModifierSet(mods ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s = s.With(m)
	}
	return s
}

func (s ModifierSet) Has(m Modifier) bool { return s&ModifierSet(m) != 0 }

func (s ModifierSet) With(m Modifier) ModifierSet { return s | ModifierSet(m) }

func (s ModifierSet) Without(m Modifier) ModifierSet { return s &^ ModifierSet(m) }

// Minus returns the modifiers of s that are not in other.
func (s ModifierSet) Minus(other ModifierSet) ModifierSet { return s &^ other }

// Contains reports whether every modifier in other is also in s.
func (s ModifierSet) Contains(other ModifierSet) bool { return s&other == other }

// Intersects reports whether s and other share at least one modifier.
func (s ModifierSet) Intersects(other ModifierSet) bool { return s&other != 0 }

func (s ModifierSet) IsEmpty() bool { return s == 0 }

// Modifiers returns the members of s in display order.
func (s ModifierSet) Modifiers() []Modifier {
	var mods []Modifier
	for _, m := range AllModifiers {
		if s.Has(m) {
			mods = append(mods, m)
		}
	}
	return mods
}

// Len returns the number of modifiers in s.
func (s ModifierSet) Len() int {
	return len(s.Modifiers())
}

// String joins the canonical modifier names with "+", e.g. "control+shift".
func (s ModifierSet) String() string {
	names := make([]string, 0, 5)
	for _, m := range s.Modifiers() {
		names = append(names, m.String())
	}
	return strings.Join(names, "+")
}

// Glyphs renders the set as macOS menu glyphs, e.g. "⌃⇧".
func (s ModifierSet) Glyphs() string {
	var b strings.Builder
	for _, m := range s.Modifiers() {
		b.WriteString(m.Glyph())
	}
	return b.String()
}

var modifierTokens = map[string]Modifier{
	// command
	"cmd":              Command,
	"command":          Command,
	"commandkey":       Command,
	"cmdkey":           Command,
	"meta":             Command,
	"super":            Command,
	"win":              Command,
	"windows":          Command,
	"windowskey":       Command,
	"commandorcontrol": Command,
	"cmdorctrl":        Command,
	"commandorctrl":    Command,
	"cmdorcontrol":     Command,
	"apple":            Command,
	"⌘":                Command,
	"@":                Command,

	// shift
	"shift":    Shift,
	"shft":     Shift,
	"shiftkey": Shift,
	"⇧":        Shift,
	"$":        Shift,

	// option
	"opt":       Option,
	"option":    Option,
	"optionkey": Option,
	"alt":       Option,
	"altkey":    Option,
	"alternate": Option,
	"⌥":         Option,
	"~":         Option,

	// control
	"ctrl":       Control,
	"control":    Control,
	"controlkey": Control,
	"ctrlkey":    Control,
	"ctl":        Control,
	"⌃":          Control,
	"^":          Control,

	// caps lock
	"caps":        CapsLock,
	"capslock":    CapsLock,
	"capslockkey": CapsLock,
	"⇪":           CapsLock,
}

var nonConfigurableTokens = map[string]bool{
	"fn":            true,
	"function":      true,
	"globe":         true,
	"globekey":      true,
	"🌐":             true,
	"fnglobe":       true,
	"globefn":       true,
	"functionglobe": true,
	"globefunction": true,
}

// symbolModifiers are the ASCII notation characters that double as
// punctuation keys. They are modifiers inside a combination but become
// the trigger key when nothing else can be.
var symbolModifiers = map[string]bool{"@": true, "$": true, "~": true, "^": true}

// modifierLookupForm reduces a token to the form used by the modifier
// tables: normalized, with spaces, dashes and underscores removed.
func modifierLookupForm(token string) string {
	s := normalizeText(token)
	if len([]rune(s)) == 1 {
		return s
	}
	return compact(s)
}

// ParseModifierToken classifies token as one of the configurable modifiers.
// fn/globe is reported by IsNonConfigurableModifierToken instead.
func ParseModifierToken(token string) (Modifier, bool) {
	m, ok := modifierTokens[modifierLookupForm(token)]
	return m, ok
}

// IsNonConfigurableModifierToken reports whether token names fn/globe.
func IsNonConfigurableModifierToken(token string) bool {
	return nonConfigurableTokens[modifierLookupForm(token)]
}

// isModifierToken reports whether token is any modifier, configurable or not.
func isModifierToken(token string) bool {
	if _, ok := ParseModifierToken(token); ok {
		return true
	}
	return IsNonConfigurableModifierToken(token)
}
