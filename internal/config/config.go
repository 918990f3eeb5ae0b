package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/TanaroSch/dictation-hotkey/internal/hotkey"
	toml "github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// HotkeySettings is the stored form of the global hotkey: one required
// and one forbidden flag per modifier, the trigger key as typed, and the
// interaction mode.
type HotkeySettings struct {
	Key  string `json:"key" toml:"key" yaml:"key"`
	Mode string `json:"mode" toml:"mode" yaml:"mode"`

	RequireCommand  bool `json:"require_command" toml:"require_command" yaml:"require_command"`
	RequireShift    bool `json:"require_shift" toml:"require_shift" yaml:"require_shift"`
	RequireOption   bool `json:"require_option" toml:"require_option" yaml:"require_option"`
	RequireControl  bool `json:"require_control" toml:"require_control" yaml:"require_control"`
	RequireCapsLock bool `json:"require_caps_lock" toml:"require_caps_lock" yaml:"require_caps_lock"`

	ForbidCommand  bool `json:"forbid_command" toml:"forbid_command" yaml:"forbid_command"`
	ForbidShift    bool `json:"forbid_shift" toml:"forbid_shift" yaml:"forbid_shift"`
	ForbidOption   bool `json:"forbid_option" toml:"forbid_option" yaml:"forbid_option"`
	ForbidControl  bool `json:"forbid_control" toml:"forbid_control" yaml:"forbid_control"`
	ForbidCapsLock bool `json:"forbid_caps_lock" toml:"forbid_caps_lock" yaml:"forbid_caps_lock"`
}

// Config holds the application configuration
type Config struct {
	UseNotifications bool           `json:"use_notifications" toml:"use_notifications" yaml:"use_notifications"`
	WatchConfig      bool           `json:"watch_config" toml:"watch_config" yaml:"watch_config"`
	Hotkey           HotkeySettings `json:"hotkey" toml:"hotkey" yaml:"hotkey"`

	// Non-serialized fields (runtime state)
	configPath string
}

// Format is the on-disk encoding of a config file.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatForPath picks the encoding from the file extension. Anything
// that is not .toml, .yaml or .yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Default returns the configuration written for first-time users:
// ⌃⇧Space in toggle mode with notifications and file watching on.
func Default() *Config {
	def := hotkey.DefaultConfiguration()
	cfg := &Config{
		UseNotifications: true,
		WatchConfig:      true,
	}
	cfg.SetConfiguration(def)
	return cfg
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Format returns the encoding used when the config is saved.
func (c *Config) Format() Format {
	return FormatForPath(c.configPath)
}

// Configuration converts the stored settings to a hotkey.Configuration.
// The key is passed through as typed; the Monitor validates it.
func (c *Config) Configuration() hotkey.Configuration {
	h := c.Hotkey
	return hotkey.Configuration{
		Required:  modifierSet(h.RequireCommand, h.RequireShift, h.RequireOption, h.RequireControl, h.RequireCapsLock),
		Forbidden: modifierSet(h.ForbidCommand, h.ForbidShift, h.ForbidOption, h.ForbidControl, h.ForbidCapsLock),
		Key:       h.Key,
		Mode:      hotkey.ParseMode(h.Mode),
	}
}

// SetConfiguration stores cfg in the hotkey settings. Call Save to persist it.
func (c *Config) SetConfiguration(cfg hotkey.Configuration) {
	c.Hotkey = HotkeySettings{
		Key:             cfg.Key,
		Mode:            string(hotkey.ParseMode(string(cfg.Mode))),
		RequireCommand:  cfg.Required.Has(hotkey.Command),
		RequireShift:    cfg.Required.Has(hotkey.Shift),
		RequireOption:   cfg.Required.Has(hotkey.Option),
		RequireControl:  cfg.Required.Has(hotkey.Control),
		RequireCapsLock: cfg.Required.Has(hotkey.CapsLock),
		ForbidCommand:   cfg.Forbidden.Has(hotkey.Command),
		ForbidShift:     cfg.Forbidden.Has(hotkey.Shift),
		ForbidOption:    cfg.Forbidden.Has(hotkey.Option),
		ForbidControl:   cfg.Forbidden.Has(hotkey.Control),
		ForbidCapsLock:  cfg.Forbidden.Has(hotkey.CapsLock),
	}
}

func modifierSet(command, shift, option, control, capsLock bool) hotkey.ModifierSet {
	var s hotkey.ModifierSet
	for m, on := range map[hotkey.Modifier]bool{
		hotkey.Command:  command,
		hotkey.Shift:    shift,
		hotkey.Option:   option,
		hotkey.Control:  control,
		hotkey.CapsLock: capsLock,
	} {
		if on {
			s = s.With(m)
		}
	}
	return s
}

// Load reads and parses the configuration file, creating a default one
// when it does not exist. A file without a hotkey section gets the
// default hotkey. Inside the section only the key ("space") and the mode
// have defaults; modifier flags that are left out are off.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
		}
		log.Printf("Config file '%s' not found. Attempting to create default.", configPath)
		if createErr := CreateDefaultConfig(configPath); createErr != nil {
			return nil, fmt.Errorf("config file not found and failed to create default '%s': %w", configPath, createErr)
		}
		// Retry reading after creation
		data, err = os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s' even after creating default: %w", configPath, err)
		}
	}

	format := FormatForPath(configPath)
	cfg := Default()
	defaults := cfg.Hotkey
	cfg.Hotkey = HotkeySettings{Key: defaults.Key, Mode: defaults.Mode}
	if err := decode(format, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", configPath, err)
	}
	var sections map[string]any
	if err := decode(format, data, &sections); err == nil {
		if _, ok := sections["hotkey"]; !ok {
			cfg.Hotkey = defaults
		}
	}
	if mode := string(hotkey.ParseMode(cfg.Hotkey.Mode)); mode != cfg.Hotkey.Mode {
		log.Printf("Config: hotkey mode '%s' read as '%s'", cfg.Hotkey.Mode, mode)
		cfg.Hotkey.Mode = mode
	}

	// Store config path for future saves
	cfg.configPath = configPath
	return cfg, nil
}

func decode(format Format, data []byte, v any) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

func encode(format Format, cfg *Config) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return json.MarshalIndent(cfg, "", "  ")
	}
}

// Save writes the current configuration back to its file
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config has no file path")
	}
	data, err := encode(c.Format(), c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return atomicWrite(c.configPath, data)
}

// atomicWrite writes through a temp file and rename so the watcher never
// reads a half-written file.
func atomicWrite(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("save config: mkdir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".config.tmp.*")
	if err != nil {
		return fmt.Errorf("save config: create temp: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("save config: write: %w", err)
	}
	if err = tmpFile.Sync(); err != nil {
		return fmt.Errorf("save config: sync: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("save config: close: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save config: rename: %w", err)
	}
	return nil
}

// CreateDefaultConfig creates a default configuration file if none exists
func CreateDefaultConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil // File exists, don't overwrite
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking config path '%s': %w", configPath, err)
	}

	log.Printf("Creating default configuration file at: %s", configPath)

	cfg := Default()
	cfg.configPath = configPath
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write default config file '%s': %w", configPath, err)
	}

	log.Printf("Default configuration file created successfully.")
	return nil
}
