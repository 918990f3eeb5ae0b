package hotkey

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// literalKeys are raw inputs that name a key by being that character.
// They are matched before any trimming.
var literalKeys = map[string]string{
	" ":    "space",
	"\t":   "tab",
	"\r":   "return",
	"\n":   "return",
	"\r\n": "return",
}

// characterKeys maps single glyphs and punctuation to key names.
// Shifted punctuation maps to the physical key that produces it.
var characterKeys = map[string]string{
	// modifier and key glyphs
	"⌘": "command",
	"⇧": "shift",
	"⌥": "option",
	"⌃": "control",
	"⇪": "capslock",
	"⎋": "escape",
	"⌫": "delete",
	"⌦": "forwarddelete",
	"⇥": "tab",
	"↩": "return",
	"↵": "return",
	"⏎": "return",
	"⌅": "return",
	"⌤": "return",
	"§": "section",
	"±": "section",
	"🌐": "fn",
	"⏏": "eject",
	"␣": "space",
	"←": "left",
	"→": "right",
	"↑": "up",
	"↓": "down",
	"⇞": "pageup",
	"⇟": "pagedown",
	"↖": "home",
	"↘": "end",

	// unshifted punctuation
	"-":  "minus",
	"=":  "equals",
	"[":  "openbracket",
	"]":  "closebracket",
	"\\": "backslash",
	";":  "semicolon",
	"'":  "quote",
	",":  "comma",
	".":  "period",
	"/":  "slash",
	"`":  "backtick",

	// shifted punctuation
	"!":  "1",
	"@":  "2",
	"#":  "3",
	"$":  "4",
	"%":  "5",
	"^":  "6",
	"&":  "7",
	"*":  "8",
	"(":  "9",
	")":  "0",
	"_":  "minus",
	"+":  "equals",
	"{":  "openbracket",
	"}":  "closebracket",
	"|":  "backslash",
	":":  "semicolon",
	"\"": "quote",
	"<":  "comma",
	">":  "period",
	"?":  "slash",
	"~":  "backtick",
}

// wordAliases is keyed by the compact form: lowercase with spaces,
// dashes and underscores removed.
var wordAliases = map[string]string{
	"space":    "space",
	"spacebar": "space",
	"spacekey": "space",
	"spc":      "space",

	"tab":    "tab",
	"tabkey": "tab",

	"return":    "return",
	"returnkey": "return",
	"ret":       "return",
	"enter":     "return",
	"enterkey":  "return",
	"cr":        "return",

	"escape":    "escape",
	"escapekey": "escape",
	"esc":       "escape",
	"esckey":    "escape",

	"delete":       "delete",
	"deletekey":    "delete",
	"del":          "delete",
	"backspace":    "delete",
	"backspacekey": "delete",
	"bksp":         "delete",
	"bs":           "delete",

	"forwarddelete": "forwarddelete",
	"forwarddel":    "forwarddelete",
	"fwddelete":     "forwarddelete",
	"fwddel":        "forwarddelete",
	"deleteforward": "forwarddelete",
	"fdel":          "forwarddelete",

	"home":     "home",
	"end":      "end",
	"pageup":   "pageup",
	"pgup":     "pageup",
	"pagedown": "pagedown",
	"pgdn":     "pagedown",
	"pgdown":   "pagedown",
	"pagedn":   "pagedown",

	"left":       "left",
	"leftarrow":  "left",
	"arrowleft":  "left",
	"right":      "right",
	"rightarrow": "right",
	"arrowright": "right",
	"up":         "up",
	"uparrow":    "up",
	"arrowup":    "up",
	"down":       "down",
	"downarrow":  "down",
	"arrowdown":  "down",

	"help":   "help",
	"insert": "help",
	"ins":    "help",

	"minus":        "minus",
	"dash":         "minus",
	"hyphen":       "minus",
	"equals":       "equals",
	"equal":        "equals",
	"plus":         "equals",
	"openbracket":  "openbracket",
	"leftbracket":  "openbracket",
	"bracketleft":  "openbracket",
	"closebracket": "closebracket",
	"rightbracket": "closebracket",
	"bracketright": "closebracket",
	"backslash":    "backslash",
	"pipe":         "backslash",
	"semicolon":    "semicolon",
	"colon":        "semicolon",
	"quote":        "quote",
	"apostrophe":   "quote",
	"singlequote":  "quote",
	"comma":        "comma",
	"period":       "period",
	"dot":          "period",
	"fullstop":     "period",
	"slash":        "slash",
	"forwardslash": "slash",
	"question":     "slash",
	"questionmark": "slash",
	"backtick":     "backtick",
	"backquote":    "backtick",
	"grave":        "backtick",
	"tilde":        "backtick",
	"section":      "section",
	"sectionsign":  "section",

	"zero":  "0",
	"one":   "1",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
	"seven": "7",
	"eight": "8",
	"nine":  "9",

	"command":  "command",
	"cmd":      "command",
	"meta":     "command",
	"super":    "command",
	"win":      "command",
	"shift":    "shift",
	"option":   "option",
	"opt":      "option",
	"alt":      "option",
	"control":  "control",
	"ctrl":     "control",
	"capslock": "capslock",
	"caps":     "capslock",
	"fn":       "fn",
	"globe":    "fn",
	"eject":    "eject",
}

var (
	functionKeyPattern = regexp.MustCompile(`^(?:functionkey|function|fnkey|fkey|fn|f)(\d+)$`)
	keypadPattern      = regexp.MustCompile(`^(?:numberpad|numpad|keypad|num|kp)(.+)$`)
	supportedFKey      = regexp.MustCompile(`^f(?:[1-9]|1[0-9]|2[0-4])$`)
)

var keypadSuffixes = map[string]string{
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4",
	"5": "5", "6": "6", "7": "7", "8": "8", "9": "9",
	"plus": "plus", "add": "plus", "+": "plus",
	"minus": "minus", "subtract": "minus", "-": "minus",
	"multiply": "multiply", "times": "multiply", "star": "multiply", "asterisk": "multiply", "*": "multiply",
	"divide": "divide", "slash": "divide",
	"enter": "enter", "return": "enter",
	"decimal": "decimal", "period": "decimal", "dot": "decimal", ".": "decimal",
	"equals": "equals", "equal": "equals", "=": "equals",
	"clear": "clear",
}

// namedKeys is the supported vocabulary beyond letters, digits, function
// keys and the keypad.
var namedKeys = map[string]string{
	"space":         "Space",
	"tab":           "Tab",
	"return":        "Return/Enter",
	"escape":        "Esc",
	"delete":        "Delete",
	"forwarddelete": "Forward Delete",
	"home":          "Home",
	"end":           "End",
	"pageup":        "Page Up",
	"pagedown":      "Page Down",
	"left":          "Left Arrow",
	"right":         "Right Arrow",
	"up":            "Up Arrow",
	"down":          "Down Arrow",
	"help":          "Help/Insert",
	"minus":         "-",
	"equals":        "=",
	"openbracket":   "[",
	"closebracket":  "]",
	"backslash":     "\\",
	"semicolon":     ";",
	"quote":         "'",
	"comma":         ",",
	"period":        ".",
	"slash":         "/",
	"backtick":      "`",
	"section":       "§",
}

var keypadLabels = map[string]string{
	"plus":     "Num+",
	"minus":    "Num-",
	"multiply": "Num*",
	"divide":   "Num/",
	"enter":    "Num Enter",
	"decimal":  "Num.",
	"equals":   "Num=",
	"clear":    "Num Clear",
}

// otherLabels covers canonical names that are not supported trigger keys.
var otherLabels = map[string]string{
	"command":  "Command",
	"shift":    "Shift",
	"option":   "Option",
	"control":  "Control",
	"capslock": "Caps Lock",
	"fn":       "Fn/Globe",
	"eject":    "Eject",
}

// foldText lowercases s, strips variation selectors and collapses runs of
// whitespace. Invalid UTF-8 becomes U+FFFD.
func foldText(s string) string {
	s = strings.ToLower(strings.ToValidUTF8(s, "\uFFFD"))
	out, _, err := transform.String(runes.Remove(runes.In(unicode.Variation_Selector)), s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// normalizeText is foldText followed by NFC.
func normalizeText(s string) string {
	return norm.NFC.String(foldText(s))
}

var compactReplacer = strings.NewReplacer(" ", "", "-", "", "_", "")

func compact(s string) string {
	return compactReplacer.Replace(s)
}

// Canonicalize maps a user-typed key token to its canonical key name.
// It never fails: input that matches nothing is returned normalized,
// and IsSupportedKey rejects it.
func Canonicalize(raw string) string {
	if key, ok := literalKeys[raw]; ok {
		return key
	}
	s := foldText(raw)
	if utf8.RuneCountInString(s) > 1 {
		// "escape/esc" becomes "escapeesc", not an alternative spelling.
		s = strings.Join(strings.Fields(strings.ReplaceAll(s, "/", "")), " ")
	}
	// NFC goes last: dropping a slash can put a mark next to a letter.
	s = norm.NFC.String(s)
	switch utf8.RuneCountInString(s) {
	case 0:
		return ""
	case 1:
		if key, ok := characterKeys[s]; ok {
			return key
		}
		return s
	}

	c := compact(s)
	if key, ok := wordAliases[c]; ok {
		return key
	}
	if m := functionKeyPattern.FindStringSubmatch(c); m != nil {
		return "f" + trimLeadingZeros(m[1])
	}
	if key, ok := canonicalKeypad(s, c); ok {
		return key
	}
	return s
}

func canonicalKeypad(s, c string) (string, bool) {
	forms := []string{strings.NewReplacer(" ", "", "_", "").Replace(s), c}
	for _, form := range forms {
		m := keypadPattern.FindStringSubmatch(form)
		if m == nil {
			continue
		}
		if suffix, ok := keypadSuffixes[m[1]]; ok {
			return "keypad" + suffix, true
		}
	}
	return "", false
}

func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// IsSupportedKey reports whether raw canonicalizes to a key that can be
// used as a trigger.
func IsSupportedKey(raw string) bool {
	return isSupportedCanonical(Canonicalize(raw))
}

func isSupportedCanonical(key string) bool {
	if _, ok := namedKeys[key]; ok {
		return true
	}
	if supportedFKey.MatchString(key) {
		return true
	}
	if _, ok := keypadSuffix(key); ok {
		return true
	}
	return isAlphanumeric(key)
}

func keypadSuffix(key string) (string, bool) {
	suffix, found := strings.CutPrefix(key, "keypad")
	if !found {
		return "", false
	}
	if canonical, ok := keypadSuffixes[suffix]; ok && canonical == suffix {
		return suffix, true
	}
	return "", false
}

func isAlphanumeric(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// isSingleCharacterKey reports whether the canonical key is typed as a
// single character: a letter, a digit or a punctuation key.
func isSingleCharacterKey(key string) bool {
	if isAlphanumeric(key) {
		return true
	}
	label, ok := namedKeys[key]
	return ok && utf8.RuneCountInString(label) == 1
}

// DisplayKey returns the human-facing label of raw, e.g. "Return/Enter"
// for "enter" or "F12" for "fkey12".
func DisplayKey(raw string) string {
	key := Canonicalize(raw)
	if label, ok := namedKeys[key]; ok {
		return label
	}
	if label, ok := otherLabels[key]; ok {
		return label
	}
	if suffix, ok := keypadSuffix(key); ok {
		if label, ok := keypadLabels[suffix]; ok {
			return label
		}
		return "Num" + suffix
	}
	if functionKeyPattern.MatchString(key) {
		return strings.ToUpper(key)
	}
	if utf8.RuneCountInString(key) == 1 {
		return strings.ToUpper(key)
	}
	return key
}

// FormatHotkey renders a combination with modifier glyphs, e.g. "⌃⇧Space".
func FormatHotkey(mods ModifierSet, key string) string {
	return mods.Glyphs() + DisplayKey(key)
}
