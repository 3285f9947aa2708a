package ui

import (
	"log"
)

// NotificationManager shows desktop notifications across platforms.
type NotificationManager struct {
	useNotifications bool
	appName          string
	embeddedIcon     []byte
}

// NewNotificationManager creates a new notification manager.
func NewNotificationManager(useNotifications bool, appName string, embeddedIcon []byte) *NotificationManager {
	return &NotificationManager{
		useNotifications: useNotifications,
		appName:          appName,
		embeddedIcon:     embeddedIcon,
	}
}

// ShowNotification displays a desktop notification if enabled.
func (n *NotificationManager) ShowNotification(title, message string) {
	if !n.useNotifications {
		return
	}
	if err := n.platformNotify(title, message); err != nil {
		log.Printf("Error showing notification: %v", err)
	}
}

// Global manager for callers that don't hold a reference themselves.
var globalNotificationManager *NotificationManager

// InitGlobalNotifications initializes the global notification manager.
// Called once from main after the config is loaded.
func InitGlobalNotifications(useNotifications bool, appName string, embeddedIcon []byte) {
	globalNotificationManager = NewNotificationManager(useNotifications, appName, embeddedIcon)
}

// ShowNotification is a convenience wrapper around the global manager.
func ShowNotification(title, message string) {
	if globalNotificationManager != nil {
		globalNotificationManager.ShowNotification(title, message)
	} else {
		log.Printf("Notification not shown (manager not initialized): %s - %s", title, message)
	}
}
