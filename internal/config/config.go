package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"searchpro/internal/domain"
)

// EnvPrefix is the prefix of environment overrides, e.g. SEARCHPRO_ENDPOINT
const EnvPrefix = "SEARCHPRO"

// FileName is the default config file name
const FileName = "searchpro.toml"

// Config represents the application configuration
type Config struct {
	Version      int         `mapstructure:"version" toml:"version"`
	Endpoint     string      `mapstructure:"endpoint" toml:"endpoint"`
	Timeout      string      `mapstructure:"timeout" toml:"timeout"` // Go duration, "0" disables
	Locale       string      `mapstructure:"locale" toml:"locale"`
	VoiceCommand string      `mapstructure:"voice_command" toml:"voice_command"` // {locale} is expanded
	ImageDir     string      `mapstructure:"image_dir" toml:"image_dir"`
	Log          LogSettings `mapstructure:"log" toml:"log"`
	UI           UISettings  `mapstructure:"ui" toml:"ui"`
}

// LogSettings configures the zap logger
type LogSettings struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"` // console or json
	File   string `mapstructure:"file" toml:"file"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Section      string `mapstructure:"section" toml:"section"`
	Mode         string `mapstructure:"mode" toml:"mode"`
	ToastSeconds int    `mapstructure:"toast_seconds" toml:"toast_seconds"`
	MaxToasts    int    `mapstructure:"max_toasts" toml:"max_toasts"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	Path() string
}

type configService struct {
	filePath string
	explicit bool
}

// NewConfigService creates a config service. An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		return &configService{filePath: DefaultPath()}
	}
	return &configService{filePath: path, explicit: true}
}

// DefaultPath returns <user config dir>/searchpro/searchpro.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchpro", FileName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the config file if present, applies SEARCHPRO_* environment
// overrides on top of the defaults and validates the result.
func (cs *configService) Load() (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(cs.filePath); err == nil {
		v.SetConfigFile(cs.filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	} else if cs.explicit {
		return nil, fmt.Errorf("config file not found: %s", cs.filePath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration as TOML
func (cs *configService) Save(cfg *Config) error {
	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cs.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadEnvFiles loads .env files into the process environment.
// Missing files are skipped; variables already set are not overridden.
func LoadEnvFiles(paths ...string) []string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err == nil {
			loaded = append(loaded, p)
		}
	}
	return loaded
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Endpoint: "http://127.0.0.1:8787/search",
		Timeout:  "15s",
		Locale:   "ru-RU",
		Log: LogSettings{
			Level:  "info",
			Format: "console",
			File:   "searchpro.log",
		},
		UI: UISettings{
			Section:      string(domain.SectionHome),
			Mode:         string(domain.ModeWeb),
			ToastSeconds: 4,
			MaxToasts:    3,
		},
	}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("voice_command", d.VoiceCommand)
	v.SetDefault("image_dir", d.ImageDir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("ui.section", d.UI.Section)
	v.SetDefault("ui.mode", d.UI.Mode)
	v.SetDefault("ui.toast_seconds", d.UI.ToastSeconds)
	v.SetDefault("ui.max_toasts", d.UI.MaxToasts)
}

// Validate checks the endpoint, timeout, mode and section values
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", c.Endpoint)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if _, err := domain.ParseSearchMode(c.UI.Mode); err != nil {
		return fmt.Errorf("ui.mode: %w", err)
	}
	if _, err := domain.ParseSection(c.UI.Section); err != nil {
		return fmt.Errorf("ui.section: %w", err)
	}
	if c.UI.ToastSeconds < 0 || c.UI.MaxToasts < 0 {
		return errors.New("ui.toast_seconds and ui.max_toasts must not be negative")
	}
	return nil
}

// RequestTimeout parses Timeout. Zero means no timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" || c.Timeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %s", d)
	}
	return d, nil
}

// ToastTTL returns how long a toast stays on screen
func (c *Config) ToastTTL() time.Duration {
	if c.UI.ToastSeconds <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.UI.ToastSeconds) * time.Second
}

// StartMode returns the configured initial search mode
func (c *Config) StartMode() domain.SearchMode {
	m, err := domain.ParseSearchMode(c.UI.Mode)
	if err != nil {
		return domain.ModeWeb
	}
	return m
}

// StartSection returns the configured initial sidebar section
func (c *Config) StartSection() domain.Section {
	s, err := domain.ParseSection(c.UI.Section)
	if err != nil {
		return domain.SectionHome
	}
	return s
}
