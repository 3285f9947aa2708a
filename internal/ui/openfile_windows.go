//go:build windows

package ui

import "log"

// OpenFileInDefaultApp hands the file to the default application via
// the ShellExecuteW API.
func OpenFileInDefaultApp(filePath string) error {
	err := windowsOpenFileInDefaultApp(filePath)
	if err != nil {
		log.Printf("ShellExecuteW open failed for %s: %v", filePath, err)
	}
	return err
}
