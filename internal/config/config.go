package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	configBaseName = "rota_config"

	// EnvConfigPath overrides the config file lookup when set
	EnvConfigPath = "ROTA_CONFIG"

	// EnvPort overrides the server port when set
	EnvPort = "PORT"

	DefaultLocale      = "pt-BR"
	DefaultDateLayout  = "02/Jan"
	DefaultHorizonDays = 90
	DefaultPort        = "8000"
)

// RoleConfig defines a recurring role and who is available for it
type RoleConfig struct {
	Key       string   `yaml:"key" validate:"required"`
	Label     string   `yaml:"label" validate:"required"`
	Day       string   `yaml:"day" validate:"required,oneof=saturday sunday"`
	Headcount int      `yaml:"headcount" validate:"min=1,max=10"`
	Eligible  []string `yaml:"eligible,omitempty" validate:"dive,required"`
}

// Weekday returns the role's day as a time.Weekday
func (r RoleConfig) Weekday() time.Weekday {
	if strings.EqualFold(r.Day, "saturday") {
		return time.Saturday
	}
	return time.Sunday
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port string `yaml:"port,omitempty" validate:"omitempty,numeric"`
}

// PublishConfig configures publishing rotas to Google Sheets
type PublishConfig struct {
	SpreadsheetID string `yaml:"spreadsheetID,omitempty"`
	TabPrefix     string `yaml:"tabPrefix,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Roster             []string      `yaml:"roster,omitempty" validate:"dive,required"`
	Roles              []RoleConfig  `yaml:"roles" validate:"required,min=1,unique=Key,dive"`
	Locale             string        `yaml:"locale,omitempty"`
	DateLayout         string        `yaml:"dateLayout,omitempty"`
	Seed               *int64        `yaml:"seed,omitempty" validate:"omitempty,min=0"`
	DefaultHorizonDays int           `yaml:"defaultHorizonDays,omitempty" validate:"omitempty,min=1,max=730"`
	Server             ServerConfig  `yaml:"server,omitempty"`
	Publish            PublishConfig `yaml:"publish,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from rota_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment
// For example, env="test" will look for "rota_config.test.yaml"
// ROTA_CONFIG takes precedence over the lookup when set
func LoadWithEnv(env string) (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFromPath(path)
	}

	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the locale tag
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
		}
	}

	return nil
}

// Default returns the configuration the parish rota shipped with
func Default() *Config {
	everyone := []string{
		"Ana Júlia", "Beatriz", "Bruna", "Davi", "Gi Sylos", "Henrique",
		"Isa Tomazini", "Zonta", "Laís", "Samantha", "Tavares",
		"Vanessa", "Iza Silva", "Nicolly", "Rafaela",
	}

	cfg := &Config{
		Roster: everyone,
		Roles: []RoleConfig{
			{Key: "sat-15h", Label: "Sábado 15h", Day: "saturday", Headcount: 1, Eligible: []string{"Beatriz", "Gi Sylos", "Henrique", "Samantha", "Tavares", "Iza Silva", "Rafaela"}},
			{Key: "sun-7h", Label: "Domingo 7h", Day: "sunday", Headcount: 1, Eligible: everyone},
			{Key: "sun-9h", Label: "Domingo 9h", Day: "sunday", Headcount: 2, Eligible: []string{"Ana Júlia", "Beatriz", "Bruna", "Davi", "Gi Sylos", "Henrique", "Isa Tomazini", "Laís", "Samantha", "Tavares", "Vanessa", "Iza Silva", "Nicolly", "Rafaela"}},
			{Key: "sun-11h", Label: "Domingo 11h", Day: "sunday", Headcount: 2, Eligible: everyone},
			{Key: "sun-19h", Label: "Domingo 19h", Day: "sunday", Headcount: 1, Eligible: []string{"Beatriz", "Bruna", "Gi Sylos", "Isa Tomazini", "Tavares", "Rafaela"}},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Port returns the server port, preferring the PORT environment variable
func (c *Config) Port() string {
	if port := os.Getenv(EnvPort); port != "" {
		return port
	}
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return DefaultPort
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.DateLayout == "" {
		c.DateLayout = DefaultDateLayout
	}
	if c.DefaultHorizonDays == 0 {
		c.DefaultHorizonDays = DefaultHorizonDays
	}
	if c.Publish.TabPrefix == "" {
		c.Publish.TabPrefix = "Escala"
	}
}

// findConfigFile searches for rota_config.yaml in current directory and home directory
// If env is provided, it adds it as an extension (e.g., "rota_config.test.yaml")
func findConfigFile(env string) (string, error) {
	configFileName := configBaseName + ".yaml"
	if env != "" {
		configFileName = configBaseName + "." + env + ".yaml"
	}

	return findFile(configFileName)
}
