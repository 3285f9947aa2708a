package hotkey

import (
	"log"
	"os"
	"runtime"
)

// DisplayServer represents the type of display server in use.
type DisplayServer int

const (
	DisplayServerUnknown DisplayServer = iota
	DisplayServerWindows
	DisplayServerX11
	DisplayServerWayland
)

func (ds DisplayServer) String() string {
	switch ds {
	case DisplayServerWindows:
		return "Windows"
	case DisplayServerX11:
		return "X11"
	case DisplayServerWayland:
		return "Wayland"
	default:
		return "Unknown"
	}
}

// DetectDisplayServer determines which display server is currently in
// use. Safe to call on any platform. Wayland is the one environment
// where golang.design/x/hotkey cannot register global shortcuts, so
// Register uses this to warn before it tries.
func DetectDisplayServer() DisplayServer {
	if runtime.GOOS == "windows" {
		return DisplayServerWindows
	}

	// Check Wayland first (more specific than DISPLAY).
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}

	// macOS uses its own windowing system but the hotkey library
	// supports it, so treat it like the X11 case.
	if runtime.GOOS == "darwin" {
		return DisplayServerX11
	}

	log.Println("Warning: could not detect display server type")
	return DisplayServerUnknown
}
