//go:build windows

package ui

import (
	"fmt"
	"syscall"
	"unsafe"
)

const swShowNormal = 1

var (
	shell32           = syscall.NewLazyDLL("shell32.dll")
	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

// shellExecute calls the Windows ShellExecuteW API to perform a verb
// (such as "open") on a file.
func shellExecute(hwnd uintptr, verb, file, params, dir string, showCmd int32) error {
	lpVerb, err := syscall.UTF16PtrFromString(verb)
	if err != nil {
		return fmt.Errorf("failed to convert verb to UTF16Ptr: %w", err)
	}
	lpFile, err := syscall.UTF16PtrFromString(file)
	if err != nil {
		return fmt.Errorf("failed to convert file path to UTF16Ptr: %w", err)
	}
	var lpParams, lpDir *uint16
	if params != "" {
		if lpParams, err = syscall.UTF16PtrFromString(params); err != nil {
			return fmt.Errorf("failed to convert params to UTF16Ptr: %w", err)
		}
	}
	if dir != "" {
		if lpDir, err = syscall.UTF16PtrFromString(dir); err != nil {
			return fmt.Errorf("failed to convert dir to UTF16Ptr: %w", err)
		}
	}

	ret, _, callErr := procShellExecuteW.Call(
		hwnd,
		uintptr(unsafe.Pointer(lpVerb)),
		uintptr(unsafe.Pointer(lpFile)),
		uintptr(unsafe.Pointer(lpParams)),
		uintptr(unsafe.Pointer(lpDir)),
		uintptr(showCmd),
	)

	// Values > 32 indicate success per the ShellExecute documentation.
	if ret <= 32 {
		if callErr != nil && callErr.Error() != "The operation completed successfully." {
			return fmt.Errorf("ShellExecuteW failed with return code %d: %w", ret, callErr)
		}
		return fmt.Errorf("ShellExecuteW failed with return code %d", ret)
	}
	return nil
}

func windowsOpenFileInDefaultApp(filePath string) error {
	return shellExecute(0, "open", filePath, "", "", swShowNormal)
}
