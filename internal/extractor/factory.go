package extractor

import (
	"fmt"

	"tradedocs/internal/config"
	"tradedocs/internal/port"
)

// ProviderFactory is a function that creates a DocumentExtractor from the
// extractor config.
type ProviderFactory func(cfg *config.ExtractorConfig) (port.DocumentExtractor, error)

// registry of extractor provider factories, registered explicitly at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates a DocumentExtractor using the registered factory for
// cfg.Provider.
func NewExtractor(cfg *config.ExtractorConfig) (port.DocumentExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
