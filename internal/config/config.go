package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// ConfigFileName is the optional config file looked up in the working directory.
const ConfigFileName = "oasfix.yml"

// Config is the tool configuration.
// Specs is the list of spec files to rewrite.
// Validate enables the OpenAPI load check after rewriting.
// Fill enables example synthesis for media types left without examples.
// Backup enables a `.bak` copy of each file before it is overwritten.
type Config struct {
	Specs    []string `koanf:"specs" yaml:"specs"`
	Validate bool     `koanf:"validate" yaml:"validate"`
	Fill     bool     `koanf:"fill" yaml:"fill"`
	Backup   bool     `koanf:"backup" yaml:"backup"`
}

// NewDefaultConfig creates the config used when no config file is present.
// The default spec paths match the two files this tool was built to rewrite.
func NewDefaultConfig() *Config {
	return &Config{
		Specs: []string{
			filepath.Join("faults", "responses.yaml"),
			filepath.Join("data", "responses.yaml"),
		},
	}
}

// MustConfig creates a new config from the optional YAML file in baseDir.
// In case the file does not exist or has incorrect YAML it falls back
// to the default config.
func MustConfig(baseDir string) *Config {
	res := NewDefaultConfig()

	filePath := filepath.Join(baseDir, ConfigFileName)
	k := koanf.New(".")
	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		slog.Debug("no config file. using defaults", "error", err)
		return res.withEnv()
	}

	if err := k.Unmarshal("", res); err != nil {
		slog.Error("error loading config. using fallback", "error", err)
		return NewDefaultConfig().withEnv()
	}

	if len(res.Specs) == 0 {
		res.Specs = NewDefaultConfig().Specs
	}

	return res.withEnv()
}

// NewConfigFromContent creates a new config from YAML file contents.
func NewConfigFromContent(content []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if len(cfg.Specs) == 0 {
		cfg.Specs = NewDefaultConfig().Specs
	}

	return cfg, nil
}

// withEnv applies environment variable overrides.
// OASFIX_SPECS is a comma-separated list of spec paths.
// OASFIX_VALIDATE, OASFIX_FILL and OASFIX_BACKUP toggle the matching options.
func (c *Config) withEnv() *Config {
	if v, exists := os.LookupEnv("OASFIX_SPECS"); exists {
		var specs []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				specs = append(specs, p)
			}
		}
		if len(specs) > 0 {
			c.Specs = specs
		}
	}

	if v, exists := os.LookupEnv("OASFIX_VALIDATE"); exists {
		c.Validate = isTruthy(v)
	}
	if v, exists := os.LookupEnv("OASFIX_FILL"); exists {
		c.Fill = isTruthy(v)
	}
	if v, exists := os.LookupEnv("OASFIX_BACKUP"); exists {
		c.Backup = isTruthy(v)
	}

	return c
}

func isTruthy(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}
