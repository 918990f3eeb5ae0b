package resources

import (
	_ "embed"
	"errors"
	"runtime"
)

// ErrIconNotFound is returned when an embedded icon is empty.
var ErrIconNotFound = errors.New("embedded icon not found")

//go:embed icon.png
var pngData []byte

// icon.ico wraps the same PNG; the Windows tray only accepts ICO data.
//
//go:embed icon.ico
var icoData []byte

// GetIcon returns the bytes of the tray icon for the current platform
func GetIcon() ([]byte, error) {
	return iconFor(runtime.GOOS)
}

// GetPNG returns the PNG icon used for notifications.
func GetPNG() ([]byte, error) {
	if len(pngData) == 0 {
		return nil, ErrIconNotFound
	}
	return pngData, nil
}

func iconFor(goos string) ([]byte, error) {
	data := pngData
	if goos == "windows" {
		data = icoData
	}
	if len(data) == 0 {
		return nil, ErrIconNotFound
	}
	return data, nil
}
