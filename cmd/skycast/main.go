package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/config"
	"skycast/internal/eventbus"
	"skycast/internal/forecast"
	"skycast/internal/geo"
	"skycast/internal/history"
	"skycast/internal/lookup"
	"skycast/internal/ui"
	"skycast/internal/weather"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("skycast.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.Default()
	}

	// Load persisted search history
	store := history.NewStore()
	ring := history.NewRing(cfg.HistoryLimit)
	ring.Replace(store.Load())

	// Create event bus
	bus := eventbus.New()

	// Initialize background services
	geocoder := geo.NewClient()
	forecastClient := weather.NewClient(geocoder, weather.Options{
		TemperatureUnit:   cfg.Units.Temperature,
		WindSpeedUnit:     cfg.Units.WindSpeed,
		PrecipitationUnit: cfg.Units.Precipitation,
	})
	lookupSvc := lookup.NewService(bus, geocoder, cfg.SuggestionLimit)
	forecastSvc := forecast.NewService(bus, forecastClient)

	// Create UI model
	uiModel := ui.NewModel(cfg, ring, store, lookupSvc, forecastSvc)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

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
	bus.Subscribe(eventbus.EventSuggestionsFetched, forward)
	bus.Subscribe(eventbus.EventWeatherFetched, forward)
	bus.Subscribe(eventbus.EventWeatherFailed, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}
