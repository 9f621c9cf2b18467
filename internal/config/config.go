package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Extractor ExtractorConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds multipart upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ExtractorConfig holds LLM extractor settings. The field list and the
// missing-field sentinel are configuration because they have changed between
// prompt revisions; the provider and model are pinned per deployment.
type ExtractorConfig struct {
	Provider    string   `mapstructure:"provider"`
	APIKey      string   `mapstructure:"api_key"`
	Model       string   `mapstructure:"model"`
	TimeoutSecs int      `mapstructure:"timeout_secs"`
	Fields      []string `mapstructure:"fields"`
	Sentinel    string   `mapstructure:"sentinel"`
}

// DefaultExtractionFields are the trade-document fields requested from the
// model when no field list is configured.
var DefaultExtractionFields = []string{
	"Exporter / Shipper",
	"Consignee",
	"Notify Party",
	"Invoice Number",
	"Invoice Date",
	"Currency",
	"Total Invoice Value",
	"Incoterms",
	"Country of Origin",
	"Port of Loading",
	"Port of Discharge",
	"Vessel / Voyage",
	"Bill of Lading Number",
	"Container Numbers",
	"Total Number of Packages",
	"Gross Weight",
	"Net Weight",
	"HS Codes",
}

// DefaultSentinel is the value reported for fields absent from the documents.
const DefaultSentinel = "Not Found"

// Load reads configuration from environment variables with the TRADEDOCS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRADEDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8080,http://127.0.0.1:8080")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 50)

	// Extractor defaults
	v.SetDefault("extractor.provider", "gemini")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.model", "")
	v.SetDefault("extractor.timeout_secs", 120)
	v.SetDefault("extractor.fields", "")
	v.SetDefault("extractor.sentinel", DefaultSentinel)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "TRADEDOCS_SERVER_PORT",
		"server.read_timeout":     "TRADEDOCS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "TRADEDOCS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "TRADEDOCS_SERVER_ENVIRONMENT",
		"log.level":               "TRADEDOCS_LOG_LEVEL",
		"log.format":              "TRADEDOCS_LOG_FORMAT",
		"cors.allowed_origins":    "TRADEDOCS_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "TRADEDOCS_UPLOAD_MAX_FILE_SIZE_MB",
		"extractor.provider":      "TRADEDOCS_EXTRACTOR_PROVIDER",
		"extractor.api_key":       "TRADEDOCS_EXTRACTOR_API_KEY",
		"extractor.model":         "TRADEDOCS_EXTRACTOR_MODEL",
		"extractor.timeout_secs":  "TRADEDOCS_EXTRACTOR_TIMEOUT_SECS",
		"extractor.fields":        "TRADEDOCS_EXTRACTOR_FIELDS",
		"extractor.sentinel":      "TRADEDOCS_EXTRACTOR_SENTINEL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TRADEDOCS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TRADEDOCS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitCommaList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	fields := splitCommaList(v.GetString("extractor.fields"))
	if len(fields) == 0 {
		fields = DefaultExtractionFields
	}
	sentinel := v.GetString("extractor.sentinel")
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	cfg.Extractor = ExtractorConfig{
		Provider:    v.GetString("extractor.provider"),
		APIKey:      v.GetString("extractor.api_key"),
		Model:       v.GetString("extractor.model"),
		TimeoutSecs: v.GetInt("extractor.timeout_secs"),
		Fields:      fields,
		Sentinel:    sentinel,
	}

	return cfg, nil
}

// splitCommaList parses a comma-separated string, trimming whitespace and
// dropping empty entries.
func splitCommaList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
