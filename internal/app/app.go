package app

import (
	"fmt"
	"log"

	"github.com/zotclip/zotclip/internal/clipboard"
	"github.com/zotclip/zotclip/internal/config"
	"github.com/zotclip/zotclip/internal/hotkey"
	"github.com/zotclip/zotclip/internal/resources"
	"github.com/zotclip/zotclip/internal/ui"
)

// Application wires the copy hotkey, the clipboard pipeline and the
// tray menu together.
type Application struct {
	config         *config.Config
	version        string
	pipeline       *clipboard.Pipeline
	hotkeyManager  *hotkey.Manager
	systrayManager *ui.SystrayManager
	iconData       []byte
}

// New creates a new application instance.
func New(cfg *config.Config, version string) *Application {
	app := &Application{
		config:  cfg,
		version: version,
	}

	var err error
	app.iconData, err = resources.GetIcon()
	if err != nil {
		log.Printf("Warning: failed to load embedded icon: %v", err)
	}

	app.pipeline = clipboard.New(cfg, app.onReformatted)
	app.hotkeyManager = hotkey.NewManager(cfg.CopyHotkey, app.pipeline.Trigger)
	app.systrayManager = ui.NewSystrayManager(
		cfg,
		version,
		app.iconData,
		app.onModeSelected,
		app.onViewLastDiff,
		app.onOpenConfigFile,
		app.onQuit,
	)

	return app
}

// Run starts the pipeline worker, registers the copy hotkey and hands
// control to the systray loop. It returns an error only for startup
// failures the application cannot function without.
func (a *Application) Run() error {
	a.pipeline.Start()

	if err := a.hotkeyManager.Register(); err != nil {
		a.pipeline.Stop()
		return fmt.Errorf("cannot register copy hotkey: %w", err)
	}

	log.Printf("Active output mode: %s", a.config.Mode().DisplayName())

	// Blocks until Exit is selected from the tray menu.
	a.systrayManager.Run()
	return nil
}

// onReformatted is called by the pipeline after every clipboard rewrite.
func (a *Application) onReformatted(original, formatted string) {
	ui.ShowNotification("Citation Reformatted", formatted)
	if a.systrayManager != nil {
		a.systrayManager.UpdateViewLastDiffStatus(true)
	}
}

// onModeSelected is called when a mode item is clicked in the tray.
func (a *Application) onModeSelected(m config.Mode) {
	a.config.SetMode(m)
	if a.systrayManager != nil {
		a.systrayManager.UpdateModeChecks(m)
	}
	ui.ShowNotification("Mode Changed", fmt.Sprintf("Output mode: %s", m.DisplayName()))
}

// onViewLastDiff shows the details of the most recent rewrite.
func (a *Application) onViewLastDiff() {
	original, formatted, ok := a.pipeline.LastChange()
	if !ok {
		log.Println("View Last Change clicked, but nothing has been rewritten yet.")
		ui.ShowNotification("Last Change", "No citation has been reformatted yet.")
		return
	}
	ui.ShowLastChange(original, formatted)
}

// onOpenConfigFile opens the JSON config in the default editor.
func (a *Application) onOpenConfigFile() {
	path := a.config.GetConfigPath()
	if err := ui.OpenFileInDefaultApp(path); err != nil {
		log.Printf("Could not open config file '%s': %v", path, err)
		ui.ShowNotification("Error Opening File", fmt.Sprintf("Could not open config file: %v", err))
	}
}

// onQuit is called when the Exit menu item is clicked.
func (a *Application) onQuit() {
	log.Println("Exit requested. Unregistering hotkey and stopping pipeline.")
	if a.hotkeyManager != nil {
		a.hotkeyManager.Unregister()
	}
	if a.pipeline != nil {
		a.pipeline.Stop()
	}
}
