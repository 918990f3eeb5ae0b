package ui

import "testing"

type sentNotice struct{ title, message string }

func newRecordingManager(enabled bool) (*NotificationManager, *[]sentNotice) {
	var sent []sentNotice
	n := NewNotificationManager(enabled, "Dictation Hotkey", nil)
	n.notify = func(title, message string) error {
		sent = append(sent, sentNotice{title, message})
		return nil
	}
	return n, &sent
}

func TestNotifyLevels(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		level    Level
		wantSent bool
	}{
		{"info enabled", true, LevelInfo, true},
		{"info disabled", false, LevelInfo, false},
		{"warn disabled", false, LevelWarn, true},
		{"error disabled", false, LevelError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, sent := newRecordingManager(tt.enabled)
			n.Notify(tt.level, "Title", "Body")
			if got := len(*sent) == 1; got != tt.wantSent {
				t.Errorf("sent = %v, want %v", *sent, tt.wantSent)
			}
		})
	}
}

func TestSetEnabled(t *testing.T) {
	n, sent := newRecordingManager(true)
	n.SetEnabled(false)
	n.ShowNotification("Recording", "Started")
	if len(*sent) != 0 {
		t.Fatalf("disabled manager sent %v", *sent)
	}
	n.SetEnabled(true)
	n.ShowNotification("Recording", "Started")
	if len(*sent) != 1 || (*sent)[0] != (sentNotice{"Recording", "Started"}) {
		t.Errorf("sent = %v", *sent)
	}
}

func TestShowAdminNotificationUsesGlobal(t *testing.T) {
	n, sent := newRecordingManager(false)
	InitGlobalNotifications(n)
	defer InitGlobalNotifications(nil)

	ShowAdminNotification(LevelWarn, "Hotkey", "Not registered")
	if len(*sent) != 1 {
		t.Errorf("sent = %v, want one notice", *sent)
	}
}
