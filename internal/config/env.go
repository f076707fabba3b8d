package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAddr          = "ESTIMADOR_ADDR"
	EnvPublicURL     = "ESTIMADOR_PUBLIC_URL"
	EnvPolicy        = "ESTIMADOR_POLICY"
	EnvCatalog       = "ESTIMADOR_CATALOG"
	EnvWhatsAppPhone = "ESTIMADOR_WHATSAPP_PHONE"
	EnvDevStatic     = "ESTIMADOR_DEV_STATIC"
	EnvTelemetry     = "ESTIMADOR_TELEMETRY"
	EnvEnvironment   = "ESTIMADOR_ENV"
)

// ApplyEnv overrides file settings with any ESTIMADOR_* variables that are set.
func (c *Config) ApplyEnv() {
	if v := getEnv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := getEnv(EnvPublicURL); v != "" {
		c.Server.PublicURL = v
	}
	if v := getEnv(EnvPolicy); v != "" {
		c.Rules.Policy = v
	}
	if v := getEnv(EnvCatalog); v != "" {
		c.Catalog.Path = v
	}
	if v := getEnv(EnvWhatsAppPhone); v != "" {
		c.Share.WhatsAppPhone = v
	}
	if v, ok := getEnvBool(EnvDevStatic); ok {
		c.Server.UseDiskStatic = v
	}
	if v, ok := getEnvBool(EnvTelemetry); ok {
		c.Telemetry.Enabled = v
	}
	c.ApplyDefaults()
}

// IsProduction reports whether ESTIMADOR_ENV names a production deployment.
func IsProduction() bool {
	switch strings.ToLower(getEnv(EnvEnvironment)) {
	case "production", "prod":
		return true
	default:
		return false
	}
}

// LoadDotEnv reads the given .env files (".env" when none) into the process
// environment outside production. Variables already set win. Missing files are fine.
func LoadDotEnv(files ...string) error {
	if IsProduction() {
		return nil
	}
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getEnvBool(key string) (bool, bool) {
	val := getEnv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
