package main

import (
	"fmt"
	"log"

	"tradedocs/internal/config"
	"tradedocs/internal/extractor"
	"tradedocs/internal/extractor/claude"
	"tradedocs/internal/extractor/gemini"
	"tradedocs/internal/handler"
	"tradedocs/internal/port"
	"tradedocs/internal/router"
	"tradedocs/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerProviders() {
	extractor.RegisterProvider("gemini", func(cfg *config.ExtractorConfig) (port.DocumentExtractor, error) {
		return gemini.NewExtractor(cfg), nil
	})
	extractor.RegisterProvider("claude", func(cfg *config.ExtractorConfig) (port.DocumentExtractor, error) {
		return claude.NewExtractor(cfg), nil
	})
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registerProviders()

	ext, err := extractor.NewExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	if cfg.Extractor.APIKey == "" {
		// Not fatal: the server still comes up so the UI can report the
		// configuration error on each attempt.
		log.Printf("warning: extractor API key is not set; extraction attempts will fail until TRADEDOCS_EXTRACTOR_API_KEY is configured")
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(ext, &cfg.Extractor, &cfg.Upload)

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc)
	healthH := handler.NewHealthHandler(&cfg.Extractor)

	// Setup router
	r := router.Setup(cfg, extractionH, healthH)

	log.Printf("Server starting on %s (provider=%s)", cfg.Server.Port, cfg.Extractor.Provider)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
