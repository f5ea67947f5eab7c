package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jywlabs/namegame/internal/logging"
	"github.com/jywlabs/namegame/internal/template"
	"github.com/jywlabs/namegame/internal/verse"
)

// Output styles.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleColor = "color"
)

// Config is the effective namegame configuration.
type Config struct {
	NoVowel   verse.NoVowelPolicy `yaml:"noVowel" json:"noVowel"`
	Style     string              `yaml:"style" json:"style"`
	LogLevel  string              `yaml:"logLevel" json:"logLevel"`
	LogFormat string              `yaml:"logFormat" json:"logFormat"`

	// Path is the config file that was read, empty when defaults were used.
	Path string `yaml:"-" json:"-"`
}

// rawConfig is used for YAML unmarshaling to distinguish missing keys from explicit empty values.
type rawConfig struct {
	NoVowel   *string `yaml:"noVowel"`
	Style     *string `yaml:"style"`
	LogLevel  *string `yaml:"logLevel"`
	LogFormat *string `yaml:"logFormat"`
}

// envConfig holds overrides read from the environment. Empty means unset.
type envConfig struct {
	NoVowel   string `env:"NAMEGAME_NO_VOWEL"`
	Style     string `env:"NAMEGAME_STYLE"`
	LogLevel  string `env:"NAMEGAME_LOG_LEVEL"`
	LogFormat string `env:"NAMEGAME_LOG_FORMAT"`
}

// ParseStyle converts a config or flag value into an output style.
// Matching ignores case and surrounding space.
func ParseStyle(s string) (string, error) {
	style := strings.ToLower(strings.TrimSpace(s))
	switch style {
	case StyleAuto, StylePlain, StyleColor:
		return style, nil
	}
	return "", fmt.Errorf("style must be one of auto, plain, color (got %q)", s)
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		NoVowel:   verse.DefaultNoVowelPolicy,
		Style:     StyleAuto,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks that the Config fields are valid.
func (c *Config) Validate() error {
	if _, err := verse.ParseNoVowelPolicy(string(c.NoVowel)); err != nil {
		return fmt.Errorf("noVowel: %w", err)
	}
	if _, err := ParseStyle(c.Style); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("logFormat must be text or json (got %q)", c.LogFormat)
	}
	return nil
}

// FilePath returns the location of the config file under dir.
func FilePath(dir string) string {
	return filepath.Join(dir, template.ConfigDir, template.ConfigFile)
}

// Load reads .namegame/config.yaml under dir and applies environment
// overrides from dir/.env and the process environment, in that order of
// increasing precedence.
func Load(dir string) (*Config, error) {
	environ, err := Environ(dir)
	if err != nil {
		return nil, err
	}
	return LoadWithEnv(dir, environ)
}

// Environ merges dir/.env with the process environment. Process variables win.
func Environ(dir string) (map[string]string, error) {
	merged := map[string]string{}

	dotenv, err := godotenv.Read(filepath.Join(dir, template.EnvFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", template.EnvFile, err)
	}
	for k, v := range dotenv {
		merged[k] = v
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	return merged, nil
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(dir string, environ map[string]string) (*Config, error) {
	cfg := Default()

	path := FilePath(dir)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var raw rawConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		raw.applyTo(&cfg)
		cfg.Path = path
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var overrides envConfig
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	overrides.applyTo(&cfg)

	if p, err := verse.ParseNoVowelPolicy(string(cfg.NoVowel)); err == nil {
		cfg.NoVowel = p
	}
	if style, err := ParseStyle(cfg.Style); err == nil {
		cfg.Style = style
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge with defaults: only apply a value when the key was set in YAML.
func (r rawConfig) applyTo(cfg *Config) {
	if r.NoVowel != nil {
		cfg.NoVowel = verse.NoVowelPolicy(*r.NoVowel)
	}
	if r.Style != nil {
		cfg.Style = *r.Style
	}
	if r.LogLevel != nil {
		cfg.LogLevel = *r.LogLevel
	}
	if r.LogFormat != nil {
		cfg.LogFormat = *r.LogFormat
	}
}

func (e envConfig) applyTo(cfg *Config) {
	if e.NoVowel != "" {
		cfg.NoVowel = verse.NoVowelPolicy(e.NoVowel)
	}
	if e.Style != "" {
		cfg.Style = e.Style
	}
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.LogFormat != "" {
		cfg.LogFormat = e.LogFormat
	}
}

// YAML renders the config in file form.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
