package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "estimador.yml"
	DefaultAddr = ":8080"
)

type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Catalog   CatalogConfig   `yaml:"catalog" json:"catalog"`
	Rules     RulesConfig     `yaml:"rules" json:"rules"`
	Share     ShareConfig     `yaml:"share" json:"share"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

// ServerConfig holds the listener settings. PublicURL is the origin share links
// point at, e.g. https://presupuesto.example.com.
type ServerConfig struct {
	Addr          string `yaml:"addr" json:"addr"`
	PublicURL     string `yaml:"public_url" json:"public_url"`
	UseDiskStatic bool   `yaml:"use_disk_static" json:"use_disk_static"`
	StaticDir     string `yaml:"static_dir" json:"static_dir"`
}

// CatalogConfig points at a YAML task table. Empty means the built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path" json:"path"`
}

type RulesConfig struct {
	// Policy is "hide" or "disable".
	Policy string `yaml:"policy" json:"policy"`
}

type ShareConfig struct {
	WhatsAppPhone string `yaml:"whatsapp_phone" json:"whatsapp_phone"`
}

// TelemetryConfig controls the in-memory action counters behind /api/stats.
type TelemetryConfig struct {
	Enabled  bool `yaml:"enabled" json:"enabled"`
	Capacity int  `yaml:"capacity" json:"capacity"`
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = DefaultAddr
	}
	if strings.TrimSpace(c.Server.StaticDir) == "" {
		c.Server.StaticDir = "static"
	}
	c.Server.PublicURL = strings.TrimRight(strings.TrimSpace(c.Server.PublicURL), "/")
	if strings.TrimSpace(c.Rules.Policy) == "" {
		c.Rules.Policy = "hide"
	}
	if c.Telemetry.Capacity <= 0 {
		c.Telemetry.Capacity = 10000
	}
}

func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

// Load reads path; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	r.ApplyDefaults()
	return &r, nil
}
