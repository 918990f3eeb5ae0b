package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
	"github.com/TanaroSch/dictation-hotkey/internal/ui"
	"github.com/ncruces/zenity"
)

// checkHotkey waits for the next press of the registered hotkey and
// describes the outcome. A canceled check returns an empty message.
func (a *Application) checkHotkey(ctx context.Context) (ui.Level, string) {
	c, err := a.hotkeyManager.CaptureNext(ctx)
	switch {
	case err == nil:
		return ui.LevelInfo, fmt.Sprintf("Received %s. The hotkey works.", hotkey.FormatHotkey(c.Modifiers, c.Key))
	case errors.Is(err, hotkey.ErrNotRegistered):
		return ui.LevelWarn, "No hotkey is registered. " + a.hotkeyManager.Status()
	case errors.Is(err, context.DeadlineExceeded):
		return ui.LevelWarn, fmt.Sprintf("No key press arrived within %d seconds.", int(hotkey.CaptureTimeout.Seconds()))
	default:
		return ui.LevelInfo, ""
	}
}

// onTestHotkey asks the user to press the hotkey and reports whether it
// arrived. The press does not start a recording.
func (a *Application) onTestHotkey() {
	if !a.hotkeyManager.Active() {
		ui.ShowAdminNotification(ui.LevelWarn, "Hotkey Inactive", a.hotkeyManager.Status())
		return
	}
	cfg := a.hotkeyManager.Configuration()
	combo := hotkey.FormatHotkey(cfg.Required, hotkey.Canonicalize(cfg.Key))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dialogClosed := make(chan struct{})
	go func() {
		defer close(dialogClosed)
		err := zenity.Info(
			fmt.Sprintf("Press %s now.\nThis window closes when the key press arrives.", combo),
			zenity.Title(appName+" - Test Hotkey"),
			zenity.Context(ctx),
			zenity.OKLabel("Cancel"),
			zenity.NoIcon,
		)
		switch {
		case ctx.Err() != nil:
		case err == nil || errors.Is(err, zenity.ErrCanceled):
			cancel()
		default:
			log.Printf("Test Hotkey dialog failed: %v", err)
		}
	}()

	level, msg := a.checkHotkey(ctx)
	cancel()
	<-dialogClosed
	if msg == "" {
		log.Println("Hotkey test canceled.")
		return
	}
	ui.ShowAdminNotification(level, "Hotkey Test", msg)
}
