//go:build windows || linux || darwin

package hotkey

import "golang.design/x/hotkey"

// libraryKeys maps canonical key names to the key constants that
// golang.design/x/hotkey defines on every supported platform.
// Platform files add native codes for the rest.
var libraryKeys = map[string]hotkey.Key{
	// Letters
	"a": hotkey.KeyA,
	"b": hotkey.KeyB,
	"c": hotkey.KeyC,
	"d": hotkey.KeyD,
	"e": hotkey.KeyE,
	"f": hotkey.KeyF,
	"g": hotkey.KeyG,
	"h": hotkey.KeyH,
	"i": hotkey.KeyI,
	"j": hotkey.KeyJ,
	"k": hotkey.KeyK,
	"l": hotkey.KeyL,
	"m": hotkey.KeyM,
	"n": hotkey.KeyN,
	"o": hotkey.KeyO,
	"p": hotkey.KeyP,
	"q": hotkey.KeyQ,
	"r": hotkey.KeyR,
	"s": hotkey.KeyS,
	"t": hotkey.KeyT,
	"u": hotkey.KeyU,
	"v": hotkey.KeyV,
	"w": hotkey.KeyW,
	"x": hotkey.KeyX,
	"y": hotkey.KeyY,
	"z": hotkey.KeyZ,

	// Numbers
	"0": hotkey.Key0,
	"1": hotkey.Key1,
	"2": hotkey.Key2,
	"3": hotkey.Key3,
	"4": hotkey.Key4,
	"5": hotkey.Key5,
	"6": hotkey.Key6,
	"7": hotkey.Key7,
	"8": hotkey.Key8,
	"9": hotkey.Key9,

	// Function keys
	"f1":  hotkey.KeyF1,
	"f2":  hotkey.KeyF2,
	"f3":  hotkey.KeyF3,
	"f4":  hotkey.KeyF4,
	"f5":  hotkey.KeyF5,
	"f6":  hotkey.KeyF6,
	"f7":  hotkey.KeyF7,
	"f8":  hotkey.KeyF8,
	"f9":  hotkey.KeyF9,
	"f10": hotkey.KeyF10,
	"f11": hotkey.KeyF11,
	"f12": hotkey.KeyF12,
	"f13": hotkey.KeyF13,
	"f14": hotkey.KeyF14,
	"f15": hotkey.KeyF15,
	"f16": hotkey.KeyF16,
	"f17": hotkey.KeyF17,
	"f18": hotkey.KeyF18,
	"f19": hotkey.KeyF19,
	"f20": hotkey.KeyF20,

	// Special keys
	"space":  hotkey.KeySpace,
	"tab":    hotkey.KeyTab,
	"return": hotkey.KeyReturn,
	"escape": hotkey.KeyEscape,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
}

// nativeKey resolves a canonical key on the current platform.
func nativeKey(key string) (hotkey.Key, bool) {
	if k, ok := libraryKeys[key]; ok {
		return k, true
	}
	k, ok := platformKeys[key]
	return k, ok
}

// nativeBinding maps b to the modifier variants to grab and the native key.
func nativeBinding(b Binding) ([][]hotkey.Modifier, hotkey.Key, error) {
	key, ok := nativeKey(Canonicalize(b.Key))
	if !ok {
		return nil, 0, ErrUnregistrableKey
	}
	mods, err := nativeModifiers(b.Modifiers)
	if err != nil {
		return nil, 0, err
	}
	return expandModifiers(mods, b), key, nil
}
