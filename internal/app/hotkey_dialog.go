package app

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
	"github.com/TanaroSch/dictation-hotkey/internal/ui"
	"github.com/ncruces/zenity"
)

// hotkeyChange is a typed hotkey resolved against the current settings.
type hotkeyChange struct {
	Config   hotkey.Configuration
	Warnings []string
	// Refusal is set when the draft cannot be used at all.
	Refusal string
}

// planHotkeyChange parses draft and decides whether it may replace
// current. Unreadable, unsupported and high-risk drafts are refused;
// advisories come back as warnings for the user to confirm.
func planHotkeyChange(draft string, current hotkey.Configuration) hotkeyChange {
	parsed, ok := hotkey.ParseDraft(draft)
	if !ok {
		return refuse("Could not read one hotkey from '%s'. Try something like ctrl+shift+d or f6.", strings.TrimSpace(draft))
	}
	a := hotkey.Assess(parsed, current.Required, current.Mode)
	if !a.Supported {
		return refuse("'%s' is not a supported trigger key. Use one key like space, f6, or /.", parsed.Key)
	}
	if a.HighRisk {
		return refuse("%s without modifiers is too easy to trigger while typing. Add a modifier such as ctrl or option.", hotkey.DisplayKey(a.Key))
	}

	cfg := hotkey.Configuration{
		Required:  a.Modifiers,
		Forbidden: current.Forbidden.Minus(a.Modifiers),
		Key:       a.Key,
		Mode:      current.Mode,
	}
	return hotkeyChange{Config: cfg, Warnings: a.Warnings}
}

func refuse(format string, args ...any) hotkeyChange {
	return hotkeyChange{Refusal: fmt.Sprintf(format, args...)}
}

// draftText renders cfg the way a user would type it, to prefill the
// Set Hotkey dialog.
func draftText(cfg hotkey.Configuration) string {
	key := hotkey.Canonicalize(cfg.Key)
	if key == "" || cfg.Required.IsEmpty() {
		return key
	}
	return cfg.Required.String() + "+" + key
}

// onSetHotkey asks for a new hotkey, confirms any advisories and applies it.
func (a *Application) onSetHotkey() {
	current := a.hotkeyManager.Configuration()
	draft, err := zenity.Entry(
		"Type the new hotkey, for example ctrl+shift+d, ⌘⇧space or f6.\nfn/Globe cannot be required and is ignored.",
		zenity.Title(appName+" - Set Hotkey"),
		zenity.EntryText(draftText(current)),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("Set Hotkey dialog failed: %v", err)
			ui.ShowAdminNotification(ui.LevelWarn, "Input Error", "Failed to read the new hotkey.")
		}
		return
	}

	change := planHotkeyChange(draft, current)
	if change.Refusal != "" {
		log.Printf("Rejected hotkey draft '%s': %s", draft, change.Refusal)
		_ = zenity.Error(change.Refusal, zenity.Title(appName+" - Set Hotkey"), zenity.ErrorIcon)
		return
	}
	if len(change.Warnings) > 0 {
		err := zenity.Question(
			strings.Join(change.Warnings, "\n\n")+"\n\nUse this hotkey anyway?",
			zenity.Title(appName+" - Check Hotkey"),
			zenity.WarningIcon,
			zenity.OKLabel("Use Anyway"),
			zenity.CancelLabel("Choose Another"),
		)
		if err != nil {
			log.Printf("Hotkey change to '%s' not confirmed: %v", draft, err)
			return
		}
	}

	a.applyHotkey(change.Config)
}
