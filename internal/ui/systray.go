package ui

import (
	"fmt"
	"log"

	"github.com/getlantern/systray"

	"github.com/zotclip/zotclip/internal/config"
)

// SystrayManager handles the system tray icon and menu. The menu
// offers the two output modes (mutually exclusive), the last-change
// viewer, the config file, and Exit.
type SystrayManager struct {
	cfg            *config.Config
	version        string
	embeddedIcon   []byte
	onModeSelected func(config.Mode)
	onViewLastDiff func()
	onOpenConfig   func()
	onQuit         func()

	miPlain        *systray.MenuItem
	miMarkdown     *systray.MenuItem
	miViewLastDiff *systray.MenuItem
}

// NewSystrayManager creates a new system tray manager.
func NewSystrayManager(
	cfg *config.Config,
	version string,
	embeddedIcon []byte,
	onModeSelected func(config.Mode),
	onViewLastDiff func(),
	onOpenConfig func(),
	onQuit func(),
) *SystrayManager {
	return &SystrayManager{
		cfg:            cfg,
		version:        version,
		embeddedIcon:   embeddedIcon,
		onModeSelected: onModeSelected,
		onViewLastDiff: onViewLastDiff,
		onOpenConfig:   onOpenConfig,
		onQuit:         onQuit,
	}
}

// Run initializes and starts the system tray. Blocks until Exit.
func (s *SystrayManager) Run() {
	systray.Run(s.onReady, s.onExit)
}

// UpdateModeChecks repaints the checkmark prefixes on the two mode
// items so exactly the active one is marked.
func (s *SystrayManager) UpdateModeChecks(active config.Mode) {
	if s.miPlain != nil {
		s.miPlain.SetTitle(modeTitle(config.ModePlain, active))
	}
	if s.miMarkdown != nil {
		s.miMarkdown.SetTitle(modeTitle(config.ModeMarkdown, active))
	}
}

// UpdateViewLastDiffStatus enables the last-change item once a rewrite
// has happened.
func (s *SystrayManager) UpdateViewLastDiffStatus(enabled bool) {
	if s.miViewLastDiff == nil {
		return
	}
	if enabled {
		s.miViewLastDiff.Enable()
	} else {
		s.miViewLastDiff.Disable()
	}
}

func modeTitle(m, active config.Mode) string {
	if m == active {
		return "✓ " + m.DisplayName()
	}
	return "  " + m.DisplayName()
}

// onReady is called by systray once the tray is ready.
func (s *SystrayManager) onReady() {
	title := fmt.Sprintf("ZotClip %s", s.version)
	systray.SetTitle(title)
	systray.SetTooltip(title + " - Zotero citation reformatter")
	if len(s.embeddedIcon) > 0 {
		systray.SetIcon(s.embeddedIcon)
	} else {
		log.Println("Warning: no embedded icon data to set for systray.")
	}

	miVersion := systray.AddMenuItem(fmt.Sprintf("Version: %s", s.version), "ZotClip version")
	miVersion.Disable()
	systray.AddSeparator()

	active := s.cfg.Mode()
	s.miPlain = systray.AddMenuItem(modeTitle(config.ModePlain, active),
		"Copy citations as the bare title")
	s.miMarkdown = systray.AddMenuItem(modeTitle(config.ModeMarkdown, active),
		"Copy citations as a [title](link) markdown reference")
	systray.AddSeparator()

	s.miViewLastDiff = systray.AddMenuItem("View Last Change", "Show the most recent citation rewrite")
	s.miViewLastDiff.Disable()
	miOpenConfig := systray.AddMenuItem("Open Config File", "Open config.json in the default editor")
	systray.AddSeparator()

	miQuit := systray.AddMenuItem("Exit", "Exit the application")

	go func() {
		for range s.miPlain.ClickedCh {
			log.Println("Plain Text mode selected from tray.")
			if s.onModeSelected != nil {
				s.onModeSelected(config.ModePlain)
			}
		}
	}()
	go func() {
		for range s.miMarkdown.ClickedCh {
			log.Println("Markdown Reference mode selected from tray.")
			if s.onModeSelected != nil {
				s.onModeSelected(config.ModeMarkdown)
			}
		}
	}()
	go func() {
		for range s.miViewLastDiff.ClickedCh {
			log.Println("View Last Change menu item clicked.")
			if s.onViewLastDiff != nil {
				s.onViewLastDiff()
			}
		}
	}()
	go func() {
		for range miOpenConfig.ClickedCh {
			log.Println("Open Config File menu item clicked.")
			if s.onOpenConfig != nil {
				s.onOpenConfig()
			}
		}
	}()
	go func() {
		<-miQuit.ClickedCh
		log.Println("Exit menu item clicked.")
		if s.onQuit != nil {
			s.onQuit()
		}
		systray.Quit()
	}()

	log.Println("Systray ready and menu configured.")
}

// onExit is called when the systray is exiting.
func (s *SystrayManager) onExit() {
	log.Println("Systray exiting.")
}
