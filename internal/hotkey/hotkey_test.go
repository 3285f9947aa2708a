package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.design/x/hotkey"
)

func TestParseHotkey(t *testing.T) {
	mods, key, err := parseHotkey("ctrl+c")
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModCtrl}, mods)
	assert.Equal(t, hotkey.KeyC, key)
}

func TestParseHotkeyMultipleModifiers(t *testing.T) {
	mods, key, err := parseHotkey("ctrl+shift+alt+z")
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift, hotkey.ModAlt}, mods)
	assert.Equal(t, hotkey.KeyZ, key)
}

func TestParseHotkeyNormalizesInput(t *testing.T) {
	mods, key, err := parseHotkey("  Ctrl+C ")
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModCtrl}, mods)
	assert.Equal(t, hotkey.KeyC, key)
}

func TestParseHotkeyBareKey(t *testing.T) {
	mods, key, err := parseHotkey("f5")
	require.NoError(t, err)
	assert.Empty(t, mods)
	assert.Equal(t, hotkey.KeyF5, key)
}

func TestParseHotkeyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unsupported key", "ctrl+home"},
		{"unsupported modifier", "hyper+c"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseHotkey(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestDisplayServerString(t *testing.T) {
	assert.Equal(t, "Windows", DisplayServerWindows.String())
	assert.Equal(t, "X11", DisplayServerX11.String())
	assert.Equal(t, "Wayland", DisplayServerWayland.String())
	assert.Equal(t, "Unknown", DisplayServerUnknown.String())
}
