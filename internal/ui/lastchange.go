package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/ncruces/zenity"

	"github.com/zotclip/zotclip/internal/config"
	"github.com/zotclip/zotclip/internal/diffutil"
)

// ShowLastChange presents the most recent clipboard rewrite in a
// dialog: the original export, the output it was replaced with, and an
// inline diff between the two.
func ShowLastChange(original, formatted string) {
	body := fmt.Sprintf(
		"Original:\n%s\n\nReformatted:\n%s\n\nDiff:\n%s\n\n%s",
		original,
		formatted,
		diffutil.Inline(original, formatted),
		diffutil.Summary(original, formatted),
	)

	err := zenity.Info(body,
		zenity.Title(config.AppName+" - Last Change"),
		zenity.InfoIcon,
		zenity.Width(520),
	)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("Error showing last-change dialog: %v", err)
		ShowNotification("Last Change", diffutil.Summary(original, formatted))
	}
}
