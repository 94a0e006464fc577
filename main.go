package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"draglist/internal/config"
	"draglist/internal/eventbus"
	"draglist/internal/ui"
)

func main() {
	var configPath string
	var logPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&logPath, "log", "draglist.log", "Path to the log file")
	flag.Parse()

	if configPath == "" {
		configPath = ".draglist.toml"
	}
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		fmt.Printf("Error resolving config path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	configSvc := config.NewService(bus)
	cfg := loadOrCreateConfig(configSvc, absPath)

	// Persist the order whenever a reorder commits
	if cfg.UI.AutosaveOrder {
		bus.Subscribe(eventbus.EventItemsReordered, func(e eventbus.DomainEvent) {
			event, ok := e.(eventbus.ItemsReorderedEvent)
			if !ok {
				return
			}
			cfg.SetSections(event.Sections)
			if err := configSvc.SaveToPath(cfg, absPath); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", absPath)
			}
		})
	}

	// Hit zones for the mouse translation
	zone.NewGlobal()
	defer zone.Close()

	uiModel := ui.NewModel(bus, configSvc, cfg, absPath)

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	uiModel.SetProgram(p)

	// Forward bus events the UI displays
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config or falls back to the demo content
func loadOrCreateConfig(configSvc config.Service, path string) *config.Config {
	if _, err := os.Stat(path); err == nil {
		if cfg, err := configSvc.LoadFromPath(path); err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		} else {
			log.Printf("Failed to load config: %v", err)
		}
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
