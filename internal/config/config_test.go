package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"config", FormatJSON},
		{"settings.toml", FormatTOML},
		{"settings.TOML", FormatTOML},
		{"settings.yaml", FormatYAML},
		{"settings.yml", FormatYAML},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if got := cfg.Configuration(); got != hotkey.DefaultConfiguration() {
		t.Errorf("Configuration() = %+v, want default", got)
	}
	if !cfg.UseNotifications || !cfg.WatchConfig {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q", cfg.GetConfigPath())
	}
}

func TestLoadMissingAndInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
		wantKey  string
		wantMode hotkey.Mode
	}{
		{
			name:     "json missing key",
			file:     "config.json",
			contents: `{"hotkey": {"mode": "hold"}}`,
			wantKey:  "space",
			wantMode: hotkey.ModeHold,
		},
		{
			name:     "json explicit empty key stays empty",
			file:     "config.json",
			contents: `{"hotkey": {"key": ""}}`,
			wantKey:  "",
			wantMode: hotkey.ModeToggle,
		},
		{
			name:     "json invalid mode",
			file:     "config.json",
			contents: `{"hotkey": {"key": "f6", "mode": "sideways"}}`,
			wantKey:  "f6",
			wantMode: hotkey.ModeToggle,
		},
		{
			name:     "toml",
			file:     "config.toml",
			contents: "[hotkey]\nkey = \"f6\"\nmode = \"hold\"\n",
			wantKey:  "f6",
			wantMode: hotkey.ModeHold,
		},
		{
			name:     "yaml missing mode",
			file:     "config.yaml",
			contents: "hotkey:\n  key: d\n",
			wantKey:  "d",
			wantMode: hotkey.ModeToggle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() = %v", err)
			}
			got := cfg.Configuration()
			if got.Key != tt.wantKey || got.Mode != tt.wantMode {
				t.Errorf("Configuration() = %+v, want key %q mode %q", got, tt.wantKey, tt.wantMode)
			}
		})
	}
}

func TestLoadModifierDefaults(t *testing.T) {
	ctrlShift := hotkey.NewModifierSet(hotkey.Control, hotkey.Shift)
	tests := []struct {
		name     string
		file     string
		contents string
		want     hotkey.ModifierSet
	}{
		{name: "omitted flags are off", file: "config.json", contents: `{"hotkey": {"key": "f6"}}`},
		{name: "explicit flags", file: "config.json", contents: `{"hotkey": {"key": "f6", "require_option": true}}`, want: hotkey.NewModifierSet(hotkey.Option)},
		{name: "no hotkey section", file: "config.json", contents: `{"use_notifications": false}`, want: ctrlShift},
		{name: "toml omitted flags", file: "config.toml", contents: "[hotkey]\nkey = \"f6\"\n"},
		{name: "yaml no hotkey section", file: "config.yaml", contents: "watch_config: false\n", want: ctrlShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() = %v", err)
			}
			if got := cfg.Configuration().Required; got != tt.want {
				t.Errorf("Required = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Load() = %v, want parse error", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	want := hotkey.Configuration{
		Required:  hotkey.NewModifierSet(hotkey.Command, hotkey.Option),
		Forbidden: hotkey.NewModifierSet(hotkey.CapsLock),
		Key:       "page down",
		Mode:      hotkey.ModeHold,
	}
	for _, file := range []string{"config.json", "config.toml", "config.yml"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() = %v", err)
			}
			cfg.UseNotifications = false
			cfg.SetConfiguration(want)
			if err := cfg.Save(); err != nil {
				t.Fatalf("Save() = %v", err)
			}

			reloaded, err := Load(path)
			if err != nil {
				t.Fatalf("reload = %v", err)
			}
			if got := reloaded.Configuration(); got != want {
				t.Errorf("round trip = %+v, want %+v", got, want)
			}
			if reloaded.UseNotifications {
				t.Error("use_notifications not persisted")
			}
		})
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 4)
	w, err := Watch(path, 20*time.Millisecond, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatalf("Watch() = %v", err)
	}
	defer w.Close()

	cfg.Hotkey.Key = "f6"
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := Watch(path, 20*time.Millisecond, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatalf("Watch() = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("unrelated file reported as config change")
	case <-time.After(200 * time.Millisecond):
	}
}
