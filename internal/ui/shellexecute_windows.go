//go:build windows

package ui

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"
)

const swShowNormal = 1

var (
	shell32           = syscall.NewLazyDLL("shell32.dll")
	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

// utf16OrNil leaves optional ShellExecuteW arguments as NULL when empty.
func utf16OrNil(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return syscall.UTF16PtrFromString(s)
}

// shellExecute calls ShellExecuteW. Return values above 32 mean success.
func shellExecute(hwnd uintptr, verb, file, params, dir string, showCmd int32) error {
	var ptrs [4]*uint16
	for i, s := range []string{verb, file, params, dir} {
		p, err := utf16OrNil(s)
		if err != nil {
			return fmt.Errorf("ShellExecuteW argument %q: %w", s, err)
		}
		ptrs[i] = p
	}

	ret, _, callErr := procShellExecuteW.Call(
		hwnd,
		uintptr(unsafe.Pointer(ptrs[0])),
		uintptr(unsafe.Pointer(ptrs[1])),
		uintptr(unsafe.Pointer(ptrs[2])),
		uintptr(unsafe.Pointer(ptrs[3])),
		uintptr(showCmd),
	)
	if ret > 32 {
		return nil
	}
	var errno syscall.Errno
	if errors.As(callErr, &errno) && errno != 0 {
		return fmt.Errorf("ShellExecuteW failed with return code %d: %w", ret, callErr)
	}
	return fmt.Errorf("ShellExecuteW failed with return code %d", ret)
}
