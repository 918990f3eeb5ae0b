package hotkey

import "strings"

// Mode selects how the trigger key drives recording.
type Mode string

const (
	// ModeToggle starts or stops recording on each press.
	ModeToggle Mode = "toggle"
	// ModeHold records while the key is held.
	ModeHold Mode = "hold"
)

// ParseMode maps a stored mode string to a Mode. Anything unknown,
// including "", is toggle.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeHold {
		return ModeHold
	}
	return ModeToggle
}

// DefaultKey is used when the configuration has no key at all.
const DefaultKey = "space"

// Configuration is the hotkey as stored by the application.
// Key is kept as typed so status messages can quote it.
type Configuration struct {
	Required  ModifierSet
	Forbidden ModifierSet
	Key       string
	Mode      Mode
}

// DefaultConfiguration returns ⌃⇧Space in toggle mode.
func DefaultConfiguration() Configuration {
	return Configuration{
		Required: NewModifierSet(Control, Shift),
		Key:      DefaultKey,
		Mode:     ModeToggle,
	}
}

// Normalized returns c with a modifier that is both required and
// forbidden kept only as required, and an unknown mode read as toggle.
func (c Configuration) Normalized() Configuration {
	c.Forbidden = c.Forbidden.Minus(c.Required)
	c.Mode = ParseMode(string(c.Mode))
	return c
}

// Describe renders c one setting per line, for change summaries.
func (c Configuration) Describe() string {
	var b strings.Builder
	b.WriteString("key: " + c.Key + "\n")
	b.WriteString("mode: " + string(c.Mode) + "\n")
	b.WriteString("required: " + c.Required.String() + "\n")
	b.WriteString("forbidden: " + c.Forbidden.String() + "\n")
	return b.String()
}
