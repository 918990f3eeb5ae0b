//go:build windows

package ui

import (
	"fmt"
	"log"
)

// OpenFileInDefaultApp opens filePath with the file association registered
// for its extension.
func OpenFileInDefaultApp(filePath string) error {
	log.Printf("Opening %s via ShellExecuteW", filePath)
	if err := shellExecute(0, "open", filePath, "", "", swShowNormal); err != nil {
		return fmt.Errorf("failed to open '%s': %w", filePath, err)
	}
	return nil
}
