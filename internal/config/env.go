package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables understood by tagstat.
type EnvConfig struct {
	Dir       string `env:"TAGSTAT_DIR" env-description:"input directory"`
	Ext       string `env:"TAGSTAT_EXT" env-description:"input file extension"`
	Workers   string `env:"TAGSTAT_WORKERS" env-description:"worker count"`
	Top       string `env:"TAGSTAT_TOP" env-description:"ranking cutoff"`
	Format    string `env:"TAGSTAT_FORMAT" env-description:"output format"`
	ReportID  string `env:"TAGSTAT_REPORT_ID" env-description:"report identifier"`
	SQLite    string `env:"TAGSTAT_SQLITE" env-description:"SQLite export path"`
	LogLevel  string `env:"TAGSTAT_LOG_LEVEL" env-description:"log level"`
	LogFormat string `env:"TAGSTAT_LOG_FORMAT" env-description:"log format (text or json)"`
}

// LoadEnv reads the TAGSTAT_* variables into a FileConfig overlay.
func LoadEnv() (FileConfig, error) {
	var env EnvConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return FileConfig{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env.fileConfig()
}

// EnvUsage describes the supported environment variables.
func EnvUsage() string {
	var env EnvConfig
	usage, err := cleanenv.GetDescription(&env, nil)
	if err != nil {
		return ""
	}
	return usage
}

func (e EnvConfig) fileConfig() (FileConfig, error) {
	var cfg FileConfig
	cfg.Run.Dir = optionalString(e.Dir)
	cfg.Run.Ext = optionalString(e.Ext)
	cfg.Run.Format = optionalString(e.Format)
	cfg.Run.ReportID = optionalString(e.ReportID)
	cfg.Run.SQLite = optionalString(e.SQLite)
	cfg.Log.Level = optionalString(e.LogLevel)
	cfg.Log.Format = optionalString(e.LogFormat)

	var err error
	if cfg.Run.Workers, err = optionalInt("TAGSTAT_WORKERS", e.Workers); err != nil {
		return FileConfig{}, err
	}
	if cfg.Run.Top, err = optionalInt("TAGSTAT_TOP", e.Top); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func optionalInt(name, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, value)
	}
	return &n, nil
}
