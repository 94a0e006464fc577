package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"draglist/internal/domain"
	"draglist/internal/eventbus"
)

// Config represents the application configuration plus the list
// contents. The widget core keeps nothing on disk; persisting the
// order between runs is this layer's job.
type Config struct {
	Version  int        `toml:"version"`
	UI       UISettings `toml:"ui"`
	Sections []Section  `toml:"section"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SlewRate            float64 `toml:"slew_rate"`
	ActivationThreshold float64 `toml:"activation_threshold"`
	AutosaveOrder       bool    `toml:"autosave_order"`
}

// Section is one header row plus the value rows below it.
type Section struct {
	Label  string   `toml:"label"`
	Values []string `toml:"values"`
}

// DomainSections converts the configured sections into the domain shape.
func (c *Config) DomainSections() []domain.Section {
	out := make([]domain.Section, 0, len(c.Sections))
	for _, s := range c.Sections {
		out = append(out, domain.Section{Label: s.Label, Values: s.Values})
	}
	return out
}

// SetSections replaces the configured sections from the domain shape.
func (c *Config) SetSections(sections []domain.Section) {
	c.Sections = make([]Section, 0, len(sections))
	for _, s := range sections {
		c.Sections = append(c.Sections, Section{Label: s.Label, Values: s.Values})
	}
}

// Service handles configuration management
type Service interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	bus eventbus.EventBus
}

// NewService creates a new config service. The bus may be nil.
func NewService(bus eventbus.EventBus) Service {
	return &service{bus: bus}
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// applyDefaults fills in zero-valued tunables after a load.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.UI.SlewRate <= 0 {
		cfg.UI.SlewRate = def.UI.SlewRate
	}
	if cfg.UI.ActivationThreshold <= 0 {
		cfg.UI.ActivationThreshold = def.UI.ActivationThreshold
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = def.Sections
	}
}

// DefaultConfig returns the default configuration: two demo sections
// and the stock animation tunables.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			SlewRate:            300,
			ActivationThreshold: 5,
			AutosaveOrder:       true,
		},
		Sections: []Section{
			{Label: "Group A", Values: []string{"Element 1", "Element 2", "Element 3"}},
			{Label: "Group B", Values: []string{"Element 4", "Element 5", "Element 6", "Element 7"}},
		},
	}
}
