// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Nil fields are unset.
type FileConfig struct {
	Run RunConfig `toml:"run"`
	Log LogConfig `toml:"log"`
}

// RunConfig maps analysis settings.
type RunConfig struct {
	Dir      *string `toml:"dir"`
	Ext      *string `toml:"ext"`
	Workers  *int    `toml:"workers"`
	Top      *int    `toml:"top"`
	Format   *string `toml:"format"`
	ReportID *string `toml:"report-id"`
	SQLite   *string `toml:"sqlite"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Overlay returns base with every field set in top replacing it.
func Overlay(base, top FileConfig) FileConfig {
	out := base
	overlayString(&out.Run.Dir, top.Run.Dir)
	overlayString(&out.Run.Ext, top.Run.Ext)
	overlayInt(&out.Run.Workers, top.Run.Workers)
	overlayInt(&out.Run.Top, top.Run.Top)
	overlayString(&out.Run.Format, top.Run.Format)
	overlayString(&out.Run.ReportID, top.Run.ReportID)
	overlayString(&out.Run.SQLite, top.Run.SQLite)
	overlayString(&out.Log.Level, top.Log.Level)
	overlayString(&out.Log.Format, top.Log.Format)
	return out
}

func overlayString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func overlayInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}
