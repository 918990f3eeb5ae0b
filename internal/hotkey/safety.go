package hotkey

import "fmt"

// SafeCaptureModifiers is pre-selected by the capture UI when the user
// presses a bare single-character key.
var SafeCaptureModifiers = NewModifierSet(Control, Option)

// IsHighRiskHotkey reports whether the combination fires during ordinary
// typing: no modifiers on a character key or space.
func IsHighRiskHotkey(required ModifierSet, key string) bool {
	if !required.IsEmpty() {
		return false
	}
	k := Canonicalize(key)
	return k == "space" || isSingleCharacterKey(k)
}

// ShouldAutoApplySafeCaptureModifiers reports whether the capture UI
// should pre-select SafeCaptureModifiers for key.
func ShouldAutoApplySafeCaptureModifiers(key string) bool {
	return isSingleCharacterKey(Canonicalize(key))
}

// SystemConflict is a known OS shortcut.
type SystemConflict struct {
	Modifiers ModifierSet
	Key       string
	Name      string
}

var knownConflicts = []SystemConflict{
	{NewModifierSet(Command), "space", "Spotlight"},
	{NewModifierSet(Control), "space", "Select the previous input source"},
	{NewModifierSet(Command, Control), "space", "Character Viewer (emoji picker)"},
	{NewModifierSet(Control, Option), "space", "Select the next input source"},
	{NewModifierSet(Command, Option), "space", "Finder search window"},
	{NewModifierSet(Command, Option, Control), "space", "Input source switching"},
	{NewModifierSet(Command), "tab", "App Switcher"},
	{NewModifierSet(Command, Shift), "tab", "App Switcher (reverse)"},
	{NewModifierSet(Command, Shift), "3", "Screenshot of the screen"},
	{NewModifierSet(Command, Shift), "4", "Screenshot of a selection"},
	{NewModifierSet(Command, Shift), "5", "Screenshot toolbar"},
	{NewModifierSet(Command, Shift), "6", "Screenshot of the Touch Bar"},
	{NewModifierSet(Command), "q", "Quit app"},
	{NewModifierSet(Command, Control), "q", "Lock Screen"},
	{NewModifierSet(Command), "h", "Hide app"},
	{NewModifierSet(Command), "c", "Copy"},
	{NewModifierSet(Command), "v", "Paste"},
	{NewModifierSet(Command), "x", "Cut"},
	{NewModifierSet(Command), "a", "Select All"},
	{NewModifierSet(Command), "z", "Undo"},
	{NewModifierSet(Command), "m", "Minimize window"},
	{NewModifierSet(Command), "return", "Send or confirm in many apps"},
	{NewModifierSet(Command), "w", "Close window"},
	{NewModifierSet(Command), "s", "Save"},
	{NewModifierSet(Command), "f", "Find"},
	{NewModifierSet(Command), "n", "New window"},
	{NewModifierSet(Command), "t", "New tab"},
	{NewModifierSet(Command), "p", "Print"},
	{NewModifierSet(Command), "r", "Reload"},
	{NewModifierSet(Command), "o", "Open"},
	{NewModifierSet(Command), "l", "Address bar"},
	{NewModifierSet(Command), "comma", "App settings"},
	{NewModifierSet(Command), "period", "Cancel operation"},
	{NewModifierSet(Command), "backtick", "Cycle app windows"},
	{NewModifierSet(Command), "section", "Cycle app windows"},
	{NewModifierSet(Command, Shift), "section", "Cycle app windows (reverse)"},
	{NewModifierSet(Command, Option), "escape", "Force Quit"},
	{0, "fn", "Input source or emoji picker (Globe key)"},
}

// FindSystemConflict looks up the combination in the table of known OS
// shortcuts.
func FindSystemConflict(required ModifierSet, key string) (SystemConflict, bool) {
	k := Canonicalize(key)
	for _, c := range knownConflicts {
		if c.Modifiers == required && c.Key == k {
			return c, true
		}
	}
	return SystemConflict{}, false
}

// SystemConflictWarning returns an advisory when the combination is
// already taken by the OS, or "" when it is not.
func SystemConflictWarning(required ModifierSet, key string) string {
	c, ok := FindSystemConflict(required, key)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s is a system shortcut (%s). The OS may handle it before this app sees it.",
		FormatHotkey(c.Modifiers, c.Key), c.Name)
}

// EscapeCancelConflictWarning warns that Escape also discards an
// in-progress recording.
func EscapeCancelConflictWarning(key string) string {
	if Canonicalize(key) != "escape" {
		return ""
	}
	return "Esc also discards the current recording. Pressing it while recording cancels dictation instead of stopping it."
}

// ShowsHoldAccidentalTriggerWarning reports whether holding the
// combination could start recordings by accident while typing.
func ShowsHoldAccidentalTriggerWarning(mode Mode, required ModifierSet, key string) bool {
	return mode == ModeHold && IsHighRiskHotkey(required, key)
}

// HoldAccidentalTriggerWarning returns the text shown when
// ShowsHoldAccidentalTriggerWarning holds, or "".
func HoldAccidentalTriggerWarning(mode Mode, required ModifierSet, key string) string {
	if !ShowsHoldAccidentalTriggerWarning(mode, required, key) {
		return ""
	}
	return fmt.Sprintf("Holding %s without modifiers starts a recording whenever the key repeats while typing. Add a modifier to avoid accidental recordings.",
		DisplayKey(key))
}

// Assessment bundles the advisories for a parsed draft. Advisories never
// block saving; Monitor applies its own hard checks.
type Assessment struct {
	Key       string
	Modifiers ModifierSet
	Supported bool
	HighRisk  bool
	Warnings  []string
}

// Assess resolves parsed against the modifiers currently configured and
// collects every advisory that applies.
func Assess(parsed ParsedHotkey, current ModifierSet, mode Mode) Assessment {
	mods := parsed.ResolveModifiers(current)
	a := Assessment{
		Key:       parsed.Key,
		Modifiers: mods,
		Supported: IsSupportedKey(parsed.Key),
		HighRisk:  IsHighRiskHotkey(mods, parsed.Key),
	}
	if parsed.ContainsNonConfigurableModifiers {
		a.Warnings = append(a.Warnings, "fn/Globe cannot be required by the hotkey and was ignored.")
	}
	for _, w := range []string{
		SystemConflictWarning(mods, parsed.Key),
		EscapeCancelConflictWarning(parsed.Key),
		HoldAccidentalTriggerWarning(mode, mods, parsed.Key),
	} {
		if w != "" {
			a.Warnings = append(a.Warnings, w)
		}
	}
	return a
}
