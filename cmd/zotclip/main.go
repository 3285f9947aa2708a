package main

import (
	"fmt"
	"log"
	"os"

	"github.com/zotclip/zotclip/internal/app"
	"github.com/zotclip/zotclip/internal/config"
	"github.com/zotclip/zotclip/internal/resources"
	"github.com/zotclip/zotclip/internal/ui"
)

const version = "v1.0.0"

func main() {
	log.Printf("ZotClip %s starting...", version)

	configPath, err := config.DefaultPath()
	if err != nil {
		// No user config dir; fall back to the working directory.
		log.Printf("Warning: %v. Using ./config.json.", err)
		configPath = "config.json"
	}
	cfg := config.Load(configPath)

	icon, err := resources.GetIcon()
	if err != nil {
		log.Printf("Warning: failed to load embedded icon: %v", err)
	}
	ui.InitGlobalNotifications(cfg.UseNotifications, config.AppName, icon)

	application := app.New(cfg, version)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := application.Run(); err != nil {
		log.Fatalf("Error starting application: %v", err)
	}
}
