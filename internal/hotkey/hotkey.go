// Package hotkey registers the global copy-detection hotkey.
package hotkey

import (
	"fmt"
	"log"
	"strings"

	"golang.design/x/hotkey"
)

// Manager owns the registration and lifecycle of the copy hotkey.
// It carries no payload; a keydown simply signals "copy detected"
// to the onCopy callback.
type Manager struct {
	hotkeyStr string
	hk        *hotkey.Hotkey
	onCopy    func()
}

// NewManager creates a manager for the given combination, e.g. "ctrl+c".
func NewManager(hotkeyStr string, onCopy func()) *Manager {
	return &Manager{
		hotkeyStr: hotkeyStr,
		onCopy:    onCopy,
	}
}

// Register parses and registers the hotkey and starts the listener
// goroutine. Failure here is fatal for the application: without the
// hook the tool cannot do anything.
func (m *Manager) Register() error {
	if m.hk != nil {
		return nil
	}

	if ds := DetectDisplayServer(); ds == DisplayServerWayland {
		log.Println("Warning: global hotkeys are not supported on Wayland; registration will likely fail.")
	}

	modifiers, key, err := parseHotkey(m.hotkeyStr)
	if err != nil {
		return fmt.Errorf("invalid hotkey '%s': %w", m.hotkeyStr, err)
	}

	hk := hotkey.New(modifiers, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("failed to register hotkey '%s': %w", m.hotkeyStr, err)
	}
	m.hk = hk

	go func() {
		for range hk.Keydown() {
			if m.onCopy != nil {
				m.onCopy()
			}
		}
	}()

	log.Printf("Registered copy hotkey '%s'", m.hotkeyStr)
	return nil
}

// Unregister removes the hotkey. Safe to call when nothing is registered.
func (m *Manager) Unregister() {
	if m.hk == nil {
		return
	}
	if err := m.hk.Unregister(); err != nil {
		log.Printf("Error unregistering hotkey '%s': %v", m.hotkeyStr, err)
	}
	m.hk = nil
}

// parseHotkey converts a string combination like "ctrl+c" into
// hotkey modifiers and key.
func parseHotkey(hotkeyStr string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(hotkeyStr)), "+")

	keyStr := parts[len(parts)-1]
	key, exists := KeyMap[keyStr]
	if !exists {
		return nil, 0, fmt.Errorf("unsupported key: %s", keyStr)
	}

	var modifiers []hotkey.Modifier
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl":
			modifiers = append(modifiers, hotkey.ModCtrl)
		case "alt":
			modifiers = append(modifiers, hotkey.ModAlt)
		case "shift":
			modifiers = append(modifiers, hotkey.ModShift)
		case "super", "win", "cmd":
			modifiers = append(modifiers, hotkey.ModWin)
		default:
			return nil, 0, fmt.Errorf("unsupported modifier: %s", part)
		}
	}

	return modifiers, key, nil
}
