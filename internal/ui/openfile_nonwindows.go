//go:build !windows

package ui

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// opener names the command that hands a file to the desktop's default
// application.
func opener(goos string) string {
	if goos == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// OpenFileInDefaultApp opens filePath with the desktop's default handler
// without waiting for it to exit.
func OpenFileInDefaultApp(filePath string) error {
	cmd := exec.Command(opener(runtime.GOOS), filePath)
	log.Printf("Executing: %s", cmd.String())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command (%s): %w", cmd.String(), err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
