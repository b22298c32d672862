package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"seltable/internal/eventbus"
)

// Environment overrides, read after the optional .env file is loaded
const (
	EnvLocale       = "SELTABLE_LOCALE"
	EnvPageSize     = "SELTABLE_PAGE_SIZE"
	EnvKeepSelected = "SELTABLE_KEEP_SELECTED"
	EnvDataFile     = "SELTABLE_DATA_FILE"
	EnvStorage      = "SELTABLE_STORAGE"
)

// Config represents the application configuration
type Config struct {
	Version     int              `toml:"version"`
	DataFile    string           `toml:"data_file"`
	Storage     string           `toml:"storage,omitempty"` // "toml" or "sqlite"; empty picks by extension
	Locale      string           `toml:"locale"`
	MessagesDir string           `toml:"messages_dir,omitempty"` // extra go-i18n message files
	Table       TableSettings    `toml:"table"`
	Actions     []ActionSettings `toml:"actions"`      // buttons, shown in both toolbars
	MoreActions []ActionSettings `toml:"more_actions"` // entries of the "more actions" menu
}

// TableSettings represents table-related configuration
type TableSettings struct {
	Title        string `toml:"title"`
	PageSize     int    `toml:"page_size"`
	KeepSelected bool   `toml:"keep_selected"` // keep selections on rows that leave the page
}

// ActionSettings describes one toolbar action
type ActionSettings struct {
	ID      string `toml:"id"`
	Label   string `toml:"label"`
	Confirm bool   `toml:"confirm"`
	Delete  bool   `toml:"delete"` // removes the selected rows once confirmed
	Prompt  string `toml:"prompt,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "seltable", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when absent
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:   cs.filePath,
			Locale: cfg.Locale,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// PersistChanges saves the table settings carried by every
// ConfigChangedEvent. Saves go through a copy of base taken now; base is
// never written afterwards and stays safe to read from other goroutines.
func PersistChanges(bus eventbus.EventBus, cs ConfigService, base *Config) func() {
	saved := *base
	return bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			log.Printf("PersistChanges: unexpected event %T", e)
			return
		}
		saved.Table.KeepSelected = event.KeepSelected
		if event.PageSize > 0 {
			saved.Table.PageSize = event.PageSize
		}
		if err := cs.Save(&saved); err != nil {
			log.Printf("Error saving config: %v", err)
			bus.Publish(eventbus.ErrorEvent{Message: "could not save settings", Err: err})
		}
	})
}

// LoadEnvFile loads KEY=value pairs from a .env file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from SELTABLE_* environment variables.
// Malformed values are logged and ignored.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDataFile)); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorage)); v != "" {
		cfg.Storage = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageSize)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Table.PageSize = n
		} else {
			log.Printf("Ignoring invalid %s=%q", EnvPageSize, v)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvKeepSelected)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Table.KeepSelected = b
		} else {
			log.Printf("Ignoring invalid %s=%q", EnvKeepSelected, v)
		}
	}
	cfg.normalize()
}

func (c *Config) normalize() {
	if c.Table.PageSize < 1 {
		c.Table.PageSize = DefaultPageSize
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if len(c.Actions) == 0 {
		c.Actions = defaultActions()
	}
	if len(c.MoreActions) == 0 {
		c.MoreActions = defaultMoreActions()
	}
}

// DefaultPageSize is the number of rows rendered per page
const DefaultPageSize = 10

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		DataFile: "rows.toml",
		Locale:   "en",
		Table: TableSettings{
			Title:        "Names",
			PageSize:     DefaultPageSize,
			KeepSelected: true,
		},
		Actions:     defaultActions(),
		MoreActions: defaultMoreActions(),
	}
}

func defaultActions() []ActionSettings {
	return []ActionSettings{
		{ID: "delete", Label: "Delete", Confirm: true, Delete: true},
		{ID: "archive", Label: "Archive", Confirm: true, Prompt: "Archive all selections?"},
		{ID: "edit", Label: "Edit"},
		{ID: "export", Label: "Export"},
	}
}

func defaultMoreActions() []ActionSettings {
	return []ActionSettings{
		{ID: "action1", Label: "Action 1"},
		{ID: "action2", Label: "Action 2"},
		{ID: "action3", Label: "Action 3"},
		{ID: "action4", Label: "Action 4"},
	}
}
