package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/reoring/sdkmodel/protocol"
)

type config struct {
	Service  string
	Format   string
	Protocol string
	Endpoint string
	LogLevel string
}

type fileConfig struct {
	Service  string `toml:"service"`
	Format   string `toml:"format"`
	Protocol string `toml:"protocol"`
	Endpoint string `toml:"endpoint"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Format:   "table",
		Protocol: "json",
		Endpoint: "https://example.invalid",
		LogLevel: "warn",
	}
}

// loadConfig overlays the keys present in path onto the defaults. Keys that
// are absent keep their default; keys that are present but empty clear it.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("service") {
		cfg.Service = strings.TrimSpace(raw.Service)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("protocol") {
		cfg.Protocol = strings.TrimSpace(raw.Protocol)
	}
	if meta.IsDefined("endpoint") {
		cfg.Endpoint = strings.TrimSpace(raw.Endpoint)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}

func (c config) validate() error {
	switch c.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := protocol.ParseWire(c.Protocol); err != nil {
		return fmt.Errorf("unknown protocol %q", c.Protocol)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
