package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Mode selects the output format for reformatted citations.
type Mode string

const (
	ModePlain    Mode = "plain"
	ModeMarkdown Mode = "markdown"
)

// DisplayName returns the human-readable name used in the tray menu
// and notifications.
func (m Mode) DisplayName() string {
	if m == ModeMarkdown {
		return "Markdown Reference"
	}
	return "Plain Text"
}

func (m Mode) valid() bool {
	return m == ModePlain || m == ModeMarkdown
}

// Config holds the application configuration. The mode field is the
// single piece of shared state in the process: the tray selection
// handler writes it, the formatter reads it. Access goes through
// Mode()/SetMode(); the struct is always passed by pointer.
type Config struct {
	OutputMode       Mode   `json:"mode"`
	UseNotifications bool   `json:"use_notifications"`
	CopyHotkey       string `json:"copy_hotkey"`
	SettleDelayMs    int    `json:"settle_delay_ms"`

	// Non-JSON fields (runtime state)
	mu         sync.RWMutex
	configPath string
}

const (
	// AppName is used for the config directory, tray title and
	// notification identity.
	AppName = "zotclip"

	defaultCopyHotkey    = "ctrl+c"
	defaultSettleDelayMs = 300
)

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/zotclip/config.json (%APPDATA%\zotclip on Windows).
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config dir: %w", err)
	}
	return filepath.Join(base, AppName, "config.json"), nil
}

// Load reads the configuration file. A missing or unparseable file is
// not an error: the tool must come up with defaults rather than refuse
// to start, so problems are logged and a default config is returned.
func Load(configPath string) *Config {
	cfg := defaults(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file '%s' not found, creating default.", configPath)
			if saveErr := cfg.Save(); saveErr != nil {
				log.Printf("Warning: failed to create default config: %v", saveErr)
			}
		} else {
			log.Printf("Warning: failed to read config file '%s': %v. Using defaults.", configPath, err)
		}
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("Warning: failed to parse config file '%s': %v. Using defaults.", configPath, err)
		return defaults(configPath)
	}

	// Backfill anything the file left out or set to nonsense.
	if !cfg.OutputMode.valid() {
		log.Printf("Unknown output mode %q in config, falling back to %q.", cfg.OutputMode, ModePlain)
		cfg.OutputMode = ModePlain
	}
	if cfg.CopyHotkey == "" {
		cfg.CopyHotkey = defaultCopyHotkey
	}
	if cfg.SettleDelayMs <= 0 {
		cfg.SettleDelayMs = defaultSettleDelayMs
	}

	return cfg
}

func defaults(configPath string) *Config {
	return &Config{
		OutputMode:       ModePlain,
		UseNotifications: true,
		CopyHotkey:       defaultCopyHotkey,
		SettleDelayMs:    defaultSettleDelayMs,
		configPath:       configPath,
	}
}

// GetConfigPath returns the path to the configuration file.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Save writes the current configuration back to the config file,
// creating the directory if needed.
func (c *Config) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.configPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config dir '%s': %w", dir, err)
		}
	}
	return os.WriteFile(c.configPath, data, 0600)
}

// Mode returns the currently active output mode.
func (c *Config) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.OutputMode
}

// SetMode switches the active output mode and persists the change.
// The in-memory value is authoritative: a failed save is logged and
// the session keeps running with the new mode.
func (c *Config) SetMode(m Mode) {
	if !m.valid() {
		log.Printf("Ignoring request to set unknown output mode %q.", m)
		return
	}

	c.mu.Lock()
	c.OutputMode = m
	c.mu.Unlock()

	if err := c.Save(); err != nil {
		log.Printf("Warning: failed to persist mode change to '%s': %v", c.configPath, err)
	}
}

// SettleDelay returns the wait between the copy trigger and the
// clipboard read as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}
