package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Roster: []string{"Ana", "Bia"},
		Roles: []RoleConfig{
			{Key: "sat-15h", Label: "Sábado 15h", Day: "saturday", Headcount: 1, Eligible: []string{"Ana"}},
			{Key: "sun-9h", Label: "Domingo 9h", Day: "sunday", Headcount: 2, Eligible: []string{"Ana", "Bia"}},
		},
		Locale:     "pt-BR",
		DateLayout: "02/Jan",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_DefaultConfig(t *testing.T) {
	cfg := Default()
	assert.NoError(t, Validate(cfg))
	assert.Len(t, cfg.Roles, 5)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultHorizonDays, cfg.DefaultHorizonDays)
}

func TestValidate_NoRoles(t *testing.T) {
	cfg := validConfig()
	cfg.Roles = nil

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidDay(t *testing.T) {
	cfg := validConfig()
	cfg.Roles[0].Day = "monday"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_ZeroHeadcount(t *testing.T) {
	cfg := validConfig()
	cfg.Roles[1].Headcount = 0

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_DuplicateRoleKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Roles[1].Key = cfg.Roles[0].Key

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_EmptyEligibleName(t *testing.T) {
	cfg := validConfig()
	cfg.Roles[0].Eligible = []string{"Ana", ""}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestValidate_EmptyEligibilityIsAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Roles[0].Eligible = nil

	assert.NoError(t, Validate(cfg))
}

func TestValidate_InvalidLocale(t *testing.T) {
	cfg := validConfig()
	cfg.Locale = "not a locale!"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}

func TestValidate_NegativeSeed(t *testing.T) {
	cfg := validConfig()
	seed := int64(-3)
	cfg.Seed = &seed

	assert.Error(t, Validate(cfg))
}

func TestRoleConfig_Weekday(t *testing.T) {
	assert.Equal(t, time.Saturday, RoleConfig{Day: "saturday"}.Weekday())
	assert.Equal(t, time.Sunday, RoleConfig{Day: "sunday"}.Weekday())
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rota_config.yaml")

	validYAML := `
roster:
  - "Ana Júlia"
  - "Beatriz"
roles:
  - key: sat-15h
    label: "Sábado 15h"
    day: saturday
    headcount: 1
    eligible: ["Beatriz"]
  - key: sun-9h
    label: "Domingo 9h"
    day: sunday
    headcount: 2
    eligible: ["Ana Júlia", "Beatriz", "Davi"]
locale: pt-BR
seed: 424242
server:
  port: "9090"
publish:
  spreadsheetID: "sheet123"
`

	err := os.WriteFile(configPath, []byte(validYAML), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ana Júlia", "Beatriz"}, cfg.Roster)
	require.Len(t, cfg.Roles, 2)
	assert.Equal(t, "sun-9h", cfg.Roles[1].Key)
	assert.Equal(t, 2, cfg.Roles[1].Headcount)
	assert.Equal(t, time.Sunday, cfg.Roles[1].Weekday())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(424242), *cfg.Seed)
	assert.Equal(t, "sheet123", cfg.Publish.SpreadsheetID)

	// Defaults
	assert.Equal(t, DefaultDateLayout, cfg.DateLayout)
	assert.Equal(t, DefaultHorizonDays, cfg.DefaultHorizonDays)
	assert.Equal(t, "Escala", cfg.Publish.TabPrefix)
}

func TestLoadFromPath_MissingRoles(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rota_config.yaml")

	err := os.WriteFile(configPath, []byte("roster: [\"Ana\"]\n"), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
roster:
  - "Ana"
   invalid indentation
roles: []
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/rota_config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_UsesEnvironmentOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
roles:
  - key: sun-7h
    label: "Domingo 7h"
    day: sunday
    headcount: 1
`
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0644))
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	require.Len(t, cfg.Roles, 1)
	assert.Empty(t, cfg.Roles[0].Eligible)
}

func TestPort_Precedence(t *testing.T) {
	cfg := validConfig()
	t.Setenv(EnvPort, "")
	assert.Equal(t, DefaultPort, cfg.Port())

	cfg.Server.Port = "9090"
	assert.Equal(t, "9090", cfg.Port())

	t.Setenv(EnvPort, "7070")
	assert.Equal(t, "7070", cfg.Port())
}

func TestLoadWithEnv_NotFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv("missing-env")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
