package hotkey

import (
	"strings"
	"unicode"
)

// ParsedHotkey is the result of parsing a free-form hotkey draft.
type ParsedHotkey struct {
	Key string
	// RequiredModifiers is nil when the draft named no modifiers at all,
	// meaning the currently configured modifiers stay in place. A non-nil
	// empty set means the draft named only fn/globe.
	RequiredModifiers                *ModifierSet
	ContainsNonConfigurableModifiers bool
}

// ResolveModifiers returns the modifiers to configure given the ones
// currently in effect.
func (p ParsedHotkey) ResolveModifiers(current ModifierSet) ModifierSet {
	if p.RequiredModifiers == nil {
		return current
	}
	return *p.RequiredModifiers
}

type tokenKind int

const (
	tokenKey tokenKind = iota
	tokenModifier
	tokenNonConfigurable
)

// word is one whitespace- or separator-delimited piece of a draft.
type word struct {
	text string
	// hardBreak is set when a '+', ',' or '/' separates this word from
	// the previous one. Key words merge only across soft breaks.
	hardBreak bool
	literal   bool
}

type token struct {
	kind      tokenKind
	text      string
	modifier  Modifier
	hardBreak bool
	// symbol marks @ $ ~ ^, which fall back to being the key.
	symbol bool
}

// compactGlyphs are split out of words so "⌘⇧space" reads as three tokens.
const compactGlyphs = "⌘⇧⌥⌃⇪🌐@$~^"

func isHardSeparator(r rune) bool {
	return r == '+' || r == ',' || r == '/'
}

func isSeparator(r rune) bool {
	return isHardSeparator(r) || r == '-'
}

// splitWords breaks a draft into words. A separator with nothing before
// it, or one left dangling at the end, is itself the key.
func splitWords(draft string) []word {
	var (
		words       []word
		cur         strings.Builder
		pendingHard = true
		lastSep     rune
		lastSepUsed bool
	)

	flush := func() bool {
		text := strings.TrimSpace(cur.String())
		cur.Reset()
		if text == "" {
			return false
		}
		hard := pendingHard
		for i, f := range splitGlyphs(strings.Fields(text)) {
			words = append(words, word{text: f, hardBreak: hard && i == 0})
		}
		pendingHard = false
		return true
	}

	for _, r := range draft {
		if !isSeparator(r) {
			cur.WriteRune(r)
			if !unicode.IsSpace(r) {
				lastSepUsed = false
			}
			continue
		}
		if flush() {
			pendingHard = isHardSeparator(r)
			lastSep = r
			lastSepUsed = true
			continue
		}
		// Nothing precedes this separator, so it names the key.
		words = append(words, word{text: string(r), hardBreak: true, literal: true})
		pendingHard = true
		lastSepUsed = false
	}
	if !flush() && lastSepUsed {
		words = append(words, word{text: string(lastSep), hardBreak: true, literal: true})
	}
	return words
}

// splitGlyphs separates modifier glyphs and notation symbols from the
// text around them.
func splitGlyphs(fields []string) []string {
	var out []string
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if strings.ContainsRune(compactGlyphs, r) {
				if b.Len() > 0 {
					out = append(out, b.String())
					b.Reset()
				}
				out = append(out, string(r))
				continue
			}
			b.WriteRune(r)
		}
		if b.Len() > 0 {
			out = append(out, b.String())
		}
	}
	return out
}

// maxPhraseWords bounds multi-word lookups such as "function key 12" or
// "command or control".
const maxPhraseWords = 3

// classify turns words into tokens. Function-key phrases are tried
// first so "function key 12" is not read as fn plus two key words.
func classify(words []word) []token {
	var tokens []token
	for i := 0; i < len(words); {
		if n, ok := matchPhrase(words, i, isFunctionKeyPhrase); ok {
			tokens = append(tokens, token{kind: tokenKey, text: joinWords(words[i : i+n]), hardBreak: words[i].hardBreak})
			i += n
			continue
		}
		if n, ok := matchPhrase(words, i, isModifierToken); ok {
			phrase := joinWords(words[i : i+n])
			tok := token{kind: tokenNonConfigurable, text: phrase, hardBreak: words[i].hardBreak}
			if m, ok := ParseModifierToken(phrase); ok {
				tok.kind = tokenModifier
				tok.modifier = m
				tok.symbol = symbolModifiers[phrase]
			}
			tokens = append(tokens, tok)
			i += n
			continue
		}
		tokens = append(tokens, token{kind: tokenKey, text: words[i].text, hardBreak: words[i].hardBreak})
		i++
	}
	return tokens
}

// matchPhrase finds the longest run of softly joined words starting at i
// that satisfies match.
func matchPhrase(words []word, i int, match func(string) bool) (int, bool) {
	if words[i].literal {
		return 0, false
	}
	for n := maxPhraseWords; n >= 1; n-- {
		if i+n > len(words) || !softRun(words[i:i+n]) {
			continue
		}
		if match(joinWords(words[i : i+n])) {
			return n, true
		}
	}
	return 0, false
}

func softRun(words []word) bool {
	for j, w := range words {
		if w.literal || (j > 0 && w.hardBreak) {
			return false
		}
	}
	return true
}

func joinWords(words []word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.text
	}
	return strings.Join(parts, " ")
}

func isFunctionKeyPhrase(phrase string) bool {
	return functionKeyPattern.MatchString(compact(normalizeText(phrase)))
}

// keyCandidates groups softly joined key tokens into runs. A run becomes
// one candidate only when it names a key as a whole, such as "page down";
// otherwise each word counts separately. A modifier between two key words
// keeps them apart.
func keyCandidates(tokens []token) []string {
	var (
		candidates []string
		run        []string
	)
	flush := func() {
		if len(run) > 1 && isKeyPhrase(strings.Join(run, " ")) {
			candidates = append(candidates, strings.Join(run, " "))
		} else {
			candidates = append(candidates, run...)
		}
		run = nil
	}
	for _, t := range tokens {
		if t.kind != tokenKey {
			if len(run) > 0 {
				flush()
			}
			continue
		}
		if len(run) > 0 && t.hardBreak {
			flush()
		}
		run = append(run, t.text)
	}
	if len(run) > 0 {
		flush()
	}
	return candidates
}

// isKeyPhrase reports whether a multi-word phrase is a key alias, a
// function key or a keypad key.
func isKeyPhrase(phrase string) bool {
	s := normalizeText(phrase)
	c := compact(s)
	if _, ok := wordAliases[c]; ok {
		return true
	}
	if functionKeyPattern.MatchString(c) {
		return true
	}
	_, ok := canonicalKeypad(s, c)
	return ok
}

// resolveSymbolKey turns the last notation symbol into the key when a
// draft such as "cmd+~" has no other key candidate.
func resolveSymbolKey(tokens []token) []token {
	for _, t := range tokens {
		if t.kind == tokenKey {
			return tokens
		}
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].symbol {
			resolved := append([]token(nil), tokens...)
			resolved[i] = token{kind: tokenKey, text: tokens[i].text, hardBreak: true}
			return resolved
		}
	}
	return tokens
}

func tokenizeDraft(draft string) []token {
	return resolveSymbolKey(classify(splitWords(normalizeDraft(draft))))
}

// normalizeDraft lowercases and strips variation selectors but keeps
// separators and spacing intact for splitWords.
func normalizeDraft(draft string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(draft) {
		if unicode.Is(unicode.Variation_Selector, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseDraft parses a free-form hotkey such as "cmd+shift+d", "⌘⇧space"
// or "fn f6". It fails unless exactly one key remains after the
// modifiers are taken out; several words only count as one key when
// together they name one, as in "page down". The key may still be unsupported; callers
// check IsSupportedKey separately.
func ParseDraft(draft string) (ParsedHotkey, bool) {
	if key, ok := literalKeys[draft]; ok {
		return ParsedHotkey{Key: key}, true
	}
	if strings.TrimSpace(draft) == "" {
		return ParsedHotkey{}, false
	}

	tokens := tokenizeDraft(draft)
	candidates := keyCandidates(tokens)
	if len(candidates) != 1 {
		return ParsedHotkey{}, false
	}

	parsed := ParsedHotkey{Key: Canonicalize(candidates[0])}
	var (
		mods      ModifierSet
		modTokens int
	)
	for _, t := range tokens {
		switch t.kind {
		case tokenModifier:
			mods = mods.With(t.modifier)
			modTokens++
		case tokenNonConfigurable:
			parsed.ContainsNonConfigurableModifiers = true
			modTokens++
		}
	}
	if modTokens > 0 {
		parsed.RequiredModifiers = &mods
	}
	return parsed, true
}

// LooksLikeModifierComboInput reports whether s names a modifier next to
// something else, as in a full shortcut pasted where one key is expected.
func LooksLikeModifierComboInput(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	tokens := tokenizeDraft(s)
	if len(tokens) < 2 {
		return false
	}
	for _, t := range tokens {
		if t.kind != tokenKey {
			return true
		}
	}
	return false
}

// isModifierOnlyInput reports whether s consists solely of modifier
// names, such as "ctrl" or "caps lock".
func isModifierOnlyInput(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	tokens := tokenizeDraft(s)
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		if t.kind == tokenKey {
			return false
		}
	}
	return true
}
