package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"seltable/internal/activity"
	"seltable/internal/config"
	"seltable/internal/confirm"
	"seltable/internal/domain"
	"seltable/internal/eventbus"
	"seltable/internal/storage"
	"seltable/internal/table"
	"seltable/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	dataPath := flag.String("data", "", "row dataset, .toml or .db (overrides config)")
	envPath := flag.String("env", ".env", "optional .env file with SELTABLE_* overrides")
	locale := flag.String("locale", "", "locale for confirmation messages (overrides config)")
	logPath := flag.String("log", "seltable.log", "log file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		log.SetOutput(logFile)
	}
	// os.Exit skips deferred calls, so every exit path calls this
	closeLog := func() {
		if logFile != nil {
			logFile.Close()
		}
	}

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Printf("Error loading env file: %v", err)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	var configSvc config.ConfigService
	if *configPath != "" {
		configSvc = config.NewConfigServiceAt(*configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	config.ApplyEnv(cfg)
	if *locale != "" {
		cfg.Locale = *locale
	}

	dataFile := *dataPath
	if dataFile == "" {
		dataFile = cfg.DataFile
		if !filepath.IsAbs(dataFile) {
			dataFile = filepath.Join(filepath.Dir(configSvc.Path()), dataFile)
		}
	}

	backend, err := storage.Open(cfg.Storage, dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		bus.Close()
		closeLog()
		os.Exit(1)
	}

	rows, source := loadRows(backend)
	store := table.NewMemoryRowStore(rows...)

	builder, err := newBuilder(cfg)
	if err != nil {
		log.Printf("Error loading messages: %v", err)
		builder = confirm.NewDefault()
	}

	activityLog := activity.New(bus)
	uiModel := ui.NewModel(bus, cfg, store, builder, activityLog)

	// Persist the dataset after deletions and settings toggled in the UI
	storage.PersistRows(bus, backend)
	config.PersistChanges(bus, configSvc, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventRowsLoaded,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.RowsLoadedEvent{Count: len(rows), Source: source})

	// Run the UI
	_, runErr := p.Run()

	// Cleanup: flush pending saves before the forwarder channel goes away
	bus.Close()
	close(eventChan)
	if err := backend.Close(); err != nil {
		log.Printf("Error closing %s: %v", backend, err)
	}
	closeLog()

	if runErr != nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
}

// loadRows reads the dataset, falling back to the built-in sample rows
// when there is none yet
func loadRows(backend storage.Backend) ([]domain.Row, string) {
	rows, err := backend.Load()
	if err == nil {
		log.Printf("Loaded %d rows from %s", len(rows), backend)
		return rows, backend.String()
	}
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No dataset at %s, using sample rows", backend)
	} else {
		log.Printf("Error loading rows: %v", err)
	}
	return table.SampleRows(), "sample data"
}

func newBuilder(cfg *config.Config) (*confirm.Builder, error) {
	bundle, err := confirm.NewBundle(cfg.MessagesDir)
	if err != nil {
		return nil, err
	}
	return confirm.New(bundle, cfg.Locale), nil
}
