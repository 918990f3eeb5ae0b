package hotkey

import "testing"

func mods(m ...Modifier) *ModifierSet {
	s := NewModifierSet(m...)
	return &s
}

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name          string
		draft         string
		wantKey       string
		wantMods      *ModifierSet
		wantNonConfig bool
	}{
		{name: "plus separated", draft: "cmd+shift+d", wantKey: "d", wantMods: mods(Command, Shift)},
		{name: "compact glyphs", draft: "⌘⇧space", wantKey: "space", wantMods: mods(Command, Shift)},
		{name: "dash separated", draft: "Ctrl-Shift-K", wantKey: "k", wantMods: mods(Control, Shift)},
		{name: "comma separated", draft: "ctrl,alt,f6", wantKey: "f6", wantMods: mods(Control, Option)},
		{name: "slash separated", draft: "ctrl/opt/space", wantKey: "space", wantMods: mods(Control, Option)},
		{name: "spaces", draft: "control option space", wantKey: "space", wantMods: mods(Control, Option)},
		{name: "bare key inherits modifiers", draft: "space", wantKey: "space"},
		{name: "literal space", draft: " ", wantKey: "space"},
		{name: "bare function key", draft: "F6", wantKey: "f6"},
		{name: "multi-word key", draft: "cmd page down", wantKey: "pagedown", wantMods: mods(Command)},
		{name: "function key phrase", draft: "function key 12", wantKey: "f12"},
		{name: "fn is not a modifier", draft: "fn f6", wantKey: "f6", wantMods: mods(), wantNonConfig: true},
		{name: "globe with modifier", draft: "globe+ctrl+a", wantKey: "a", wantMods: mods(Control), wantNonConfig: true},
		{name: "trailing plus is the key", draft: "cmd+", wantKey: "equals", wantMods: mods(Command)},
		{name: "trailing plus after space", draft: "cmd+ ", wantKey: "equals", wantMods: mods(Command)},
		{name: "trailing comma is the key", draft: "ctrl+,", wantKey: "comma", wantMods: mods(Control)},
		{name: "lone plus", draft: "+", wantKey: "equals"},
		{name: "symbol falls back to key", draft: "cmd+~", wantKey: "backtick", wantMods: mods(Command)},
		{name: "caps lock phrase", draft: "caps lock+a", wantKey: "a", wantMods: mods(CapsLock)},
		{name: "command or control", draft: "command or control+k", wantKey: "k", wantMods: mods(Command)},
		{name: "unsupported key still parses", draft: "ctrl+f100", wantKey: "f100", wantMods: mods(Control)},
		{name: "keypad phrase", draft: "num pad plus", wantKey: "keypadplus"},
		{name: "alias phrase", draft: "shift space bar", wantKey: "space", wantMods: mods(Shift)},
		{name: "variation selector", draft: "⌘\uFE0F+k", wantKey: "k", wantMods: mods(Command)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDraft(tt.draft)
			if !ok {
				t.Fatalf("ParseDraft(%q) failed", tt.draft)
			}
			if got.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", got.Key, tt.wantKey)
			}
			switch {
			case tt.wantMods == nil && got.RequiredModifiers != nil:
				t.Errorf("RequiredModifiers = %v, want nil", *got.RequiredModifiers)
			case tt.wantMods != nil && got.RequiredModifiers == nil:
				t.Errorf("RequiredModifiers = nil, want %v", *tt.wantMods)
			case tt.wantMods != nil && *got.RequiredModifiers != *tt.wantMods:
				t.Errorf("RequiredModifiers = %v, want %v", *got.RequiredModifiers, *tt.wantMods)
			}
			if got.ContainsNonConfigurableModifiers != tt.wantNonConfig {
				t.Errorf("ContainsNonConfigurableModifiers = %v, want %v", got.ContainsNonConfigurableModifiers, tt.wantNonConfig)
			}
		})
	}
}

func TestParseDraftFailures(t *testing.T) {
	tests := []struct {
		name  string
		draft string
	}{
		{name: "empty", draft: ""},
		{name: "whitespace", draft: "   "},
		{name: "modifiers only", draft: "cmd+shift"},
		{name: "fn only", draft: "fn"},
		{name: "two keys", draft: "cmd+a+b"},
		{name: "slash separated aliases", draft: "escape/esc"},
		{name: "invalid key name", draft: "invalid key name"},
		{name: "two spaced keys", draft: "cmd d f"},
		{name: "key word after named key", draft: "ctrl space d"},
		{name: "keys around a modifier", draft: "page cmd down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ParseDraft(tt.draft); ok {
				t.Errorf("ParseDraft(%q) = %+v, want failure", tt.draft, got)
			}
		})
	}
}

func TestResolveModifiers(t *testing.T) {
	current := NewModifierSet(Control, Option)

	inherit, _ := ParseDraft("f6")
	if got := inherit.ResolveModifiers(current); got != current {
		t.Errorf("bare key resolved to %v, want current %v", got, current)
	}

	explicit, _ := ParseDraft("cmd+f6")
	if got := explicit.ResolveModifiers(current); got != NewModifierSet(Command) {
		t.Errorf("explicit draft resolved to %v, want command", got)
	}

	fnOnly, _ := ParseDraft("fn+f6")
	if got := fnOnly.ResolveModifiers(current); !got.IsEmpty() {
		t.Errorf("fn draft resolved to %v, want empty", got)
	}
}

func TestLooksLikeModifierComboInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"cmd+space", true},
		{"ctrl shift k", true},
		{"⌘K", true},
		{"fn f6", true},
		{"space", false},
		{"page down", false},
		{"cmd", false},
		{"~", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := LooksLikeModifierComboInput(tt.input); got != tt.want {
			t.Errorf("LooksLikeModifierComboInput(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsModifierOnlyInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ctrl", true},
		{"Shift", true},
		{"caps lock", true},
		{"cmd+shift", true},
		{"fn", true},
		{"⌘", true},
		{"~", false},
		{"space", false},
		{"cmd+k", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isModifierOnlyInput(tt.input); got != tt.want {
			t.Errorf("isModifierOnlyInput(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
