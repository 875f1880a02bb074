package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/jask/nameform/internal/logging"
)

// Config holds application configuration.
type Config struct {
	Form FormConfig          `toml:"form"`
	Log  LogConfig           `toml:"log"`
	UI   UIConfig            `toml:"ui"`
	Keys map[string][]string `toml:"keys"`
}

// FormConfig holds controller options.
type FormConfig struct {
	ClearErrorsOnSuccess bool `mapstructure:"clear_errors_on_success" toml:"clear_errors_on_success"`
}

// LogConfig holds logger settings. An empty File means stderr outside the TUI.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string `toml:"title"`
}

// DefaultPath is $XDG_CONFIG_HOME/nameform/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "nameform", "config.toml"), nil
}

func defaultLogFile() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "nameform", "nameform.log")
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", File: defaultLogFile()},
		UI:  UIConfig{Title: "Formulir Nama"},
	}
}

// Load reads configuration from file and env. path wins over NAMEFORM_CONFIG;
// with neither set the default location is used. A missing file is not an
// error. Env var overrides use prefix NAMEFORM_.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("form.clear_errors_on_success", def.Form.ClearErrorsOnSuccess)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("ui.title", def.UI.Title)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("NAMEFORM_CONFIG")
	}
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	v.SetEnvPrefix("NAMEFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr == nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return Config{}, fmt.Errorf("log.level: %w", err)
	}
	c.UI.Title = strings.TrimSpace(c.UI.Title)
	if c.UI.Title == "" {
		c.UI.Title = def.UI.Title
	}
	return c, nil
}

// Save writes cfg as TOML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
