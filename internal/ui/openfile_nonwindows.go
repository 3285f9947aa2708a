//go:build !windows

package ui

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// OpenFileInDefaultApp hands the file to the desktop's default
// application for its type.
func OpenFileInDefaultApp(filePath string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", filePath)
	default:
		// Assume Linux/Unix-like
		cmd = exec.Command("xdg-open", filePath)
	}

	log.Printf("Opening %s via %s", filePath, cmd.Path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command (%s): %w", cmd.String(), err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
