package hotkey

import (
	"log"
	"os"
	"runtime"
)

// DisplayServer represents the type of display server in use
type DisplayServer int

const (
	DisplayServerUnknown DisplayServer = iota
	DisplayServerWindows
	DisplayServerMacOS
	DisplayServerX11
	DisplayServerWayland
)

func (ds DisplayServer) String() string {
	switch ds {
	case DisplayServerWindows:
		return "Windows"
	case DisplayServerMacOS:
		return "macOS"
	case DisplayServerX11:
		return "X11"
	case DisplayServerWayland:
		return "Wayland"
	default:
		return "Unknown"
	}
}

// DetectDisplayServer reports the windowing system hotkeys are grabbed
// from. Linux sessions are told apart by their environment.
func DetectDisplayServer() DisplayServer {
	ds := detectDisplayServer(runtime.GOOS, os.Getenv)
	if ds == DisplayServerUnknown {
		log.Println("Warning: Could not detect display server type")
	} else {
		log.Printf("Detected display server: %s", ds)
	}
	return ds
}

func detectDisplayServer(goos string, getenv func(string) string) DisplayServer {
	switch goos {
	case "windows":
		return DisplayServerWindows
	case "darwin":
		return DisplayServerMacOS
	}
	// A Wayland session may also export DISPLAY for XWayland, whose grabs
	// never see keys typed into native Wayland windows.
	if getenv("WAYLAND_DISPLAY") != "" || getenv("XDG_SESSION_TYPE") == "wayland" {
		return DisplayServerWayland
	}
	if getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}
