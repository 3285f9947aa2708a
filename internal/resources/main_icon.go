package resources

import (
	_ "embed"
	"errors"
)

// ErrIconNotFound is returned when no icon data was embedded.
var ErrIconNotFound = errors.New("embedded icon data is empty")

//go:embed icon.ico
var iconData []byte

// GetIcon returns the bytes of the embedded tray icon.
func GetIcon() ([]byte, error) {
	if len(iconData) == 0 {
		return nil, ErrIconNotFound
	}
	return iconData, nil
}
