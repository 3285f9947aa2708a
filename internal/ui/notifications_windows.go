//go:build windows

package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-toast/toast"
)

func (n *NotificationManager) platformNotify(title, message string) error {
	var iconPathForToast string

	// Toast wants an icon file on disk, so write the embedded icon to
	// a temp file and clean it up after the notification has shown.
	if len(n.embeddedIcon) > 0 {
		path, err := writeTempIcon(n.embeddedIcon)
		if err != nil {
			log.Printf("Error writing temporary icon: %v", err)
		} else {
			iconPathForToast = path
			time.AfterFunc(10*time.Second, func() {
				if errRem := os.Remove(path); errRem != nil && !os.IsNotExist(errRem) {
					log.Printf("Error removing temporary icon file %s: %v", path, errRem)
				}
			})
		}
	}

	notification := toast.Notification{
		AppID:   n.appName,
		Title:   title,
		Message: message,
		Icon:    iconPathForToast,
	}

	if err := notification.Push(); err != nil {
		if strings.Contains(err.Error(), "notification platform is unavailable") {
			log.Println("Toast notification failed: platform unavailable (notifications may be disabled in Windows Settings).")
		}
		return err
	}
	return nil
}

func writeTempIcon(iconData []byte) (string, error) {
	if len(iconData) == 0 {
		return "", fmt.Errorf("cannot write empty icon data")
	}
	tmpFile, err := os.CreateTemp("", "zotclip-icon-*.ico")
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	if _, err := tmpFile.Write(iconData); err != nil {
		_ = os.Remove(tmpFile.Name())
		return "", err
	}

	absPath, err := filepath.Abs(tmpFile.Name())
	if err != nil {
		log.Printf("Warning: could not get absolute path for temp icon '%s': %v", tmpFile.Name(), err)
		return tmpFile.Name(), nil
	}
	return absPath, nil
}
