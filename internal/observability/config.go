package observability

import appconfig "github.com/kelolahq/anggaran/internal/config"

// Config carries the observability knobs derived from app configuration.
type Config struct {
	ServiceName  string
	Version      string
	Environment  string
	LogLevel     string
	OtelEnabled  bool
	OTLPEndpoint string
}

func LoadConfig(cfg appconfig.Config) Config {
	return Config{
		ServiceName:  cfg.AppName,
		Version:      cfg.AppVersion,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		OtelEnabled:  cfg.OtelEnabled,
		OTLPEndpoint: cfg.OTLPEndpoint,
	}
}

func (c Config) Debug() bool {
	return c.Environment != "production"
}
