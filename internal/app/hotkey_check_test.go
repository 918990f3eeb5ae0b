package app

import (
	"context"
	"strings"
	"testing"

	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
	"github.com/TanaroSch/dictation-hotkey/internal/ui"
)

func TestCheckHotkeyWithoutGrab(t *testing.T) {
	a, _, _ := newTestApp(t)
	writeHotkey(t, a, hotkey.Configuration{Key: "d", Mode: hotkey.ModeToggle})
	a.reload(false)

	level, msg := a.checkHotkey(context.Background())
	if level != ui.LevelWarn || !strings.HasPrefix(msg, "No hotkey is registered.") {
		t.Errorf("checkHotkey() = %v %q", level, msg)
	}
}

func TestCheckHotkeyCanceled(t *testing.T) {
	a, _, recorder := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, msg := a.checkHotkey(ctx); msg != "" {
		t.Errorf("canceled check reported %q", msg)
	}
	select {
	case ev := <-recorder.events:
		t.Errorf("recorder got %q during a hotkey check", ev)
	default:
	}
}
