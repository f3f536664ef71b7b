package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tagstat/internal/config"
	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/pipeline"
	"github.com/verte-zerg/tagstat/internal/render"
)

const (
	defaultDir       = "data"
	defaultWorkers   = 1
	defaultFormat    = "json"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// runFlags holds the flag values shared by the report and browse commands.
type runFlags struct {
	configPath string

	dir       string
	ext       string
	workers   int
	top       int
	format    string
	reportID  string
	sqlite    string
	logLevel  string
	logFormat string
}

func (f *runFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", defaultDir, "input directory")
	cmd.Flags().StringVar(&f.ext, "ext", pipeline.DefaultExt, "input file extension")
	cmd.Flags().IntVar(&f.workers, "workers", defaultWorkers, "worker count")
	cmd.Flags().IntVar(&f.top, "top", model.DefaultTopN, "number of entries per ranking")
	cmd.Flags().StringVar(&f.format, "format", defaultFormat, "output format: json, yaml, table, markdown")
	cmd.Flags().StringVar(&f.reportID, "report-id", model.DefaultReportID, "identifier printed as padron")
	cmd.Flags().StringVar(&f.sqlite, "sqlite", "", "export the report to this SQLite file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", defaultLogFormat, "log format: text, json")
}

// resolveConfig merges defaults, the config file, the environment, flags and
// the positional worker count, in increasing order of precedence.
func resolveConfig(cmd *cobra.Command, args []string, f *runFlags) (model.Config, error) {
	path := f.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, err
	}
	merged := config.Overlay(fileCfg, envCfg)

	applyStringConfig(cmd, "dir", &f.dir, merged.Run.Dir)
	applyStringConfig(cmd, "ext", &f.ext, merged.Run.Ext)
	applyIntConfig(cmd, "workers", &f.workers, merged.Run.Workers)
	applyIntConfig(cmd, "top", &f.top, merged.Run.Top)
	applyStringConfig(cmd, "format", &f.format, merged.Run.Format)
	applyStringConfig(cmd, "report-id", &f.reportID, merged.Run.ReportID)
	applyStringConfig(cmd, "sqlite", &f.sqlite, merged.Run.SQLite)
	applyStringConfig(cmd, "log-level", &f.logLevel, merged.Log.Level)
	applyStringConfig(cmd, "log-format", &f.logFormat, merged.Log.Format)

	cfg := model.Config{
		Dir:       f.dir,
		Ext:       pipeline.NormalizeExt(f.ext),
		Workers:   f.workers,
		TopN:      f.top,
		Format:    f.format,
		ReportID:  f.reportID,
		SQLite:    f.sqlite,
		LogLevel:  f.logLevel,
		LogFormat: f.logFormat,
	}
	if len(args) > 0 {
		workers, err := parseWorkers(args[0])
		if err != nil {
			return model.Config{}, err
		}
		cfg.Workers = workers
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func parseWorkers(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid worker count %q: must be a positive integer", arg)
	}
	return n, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Dir) == "" {
		return fmt.Errorf("--dir must not be empty")
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be > 0")
	}
	if cfg.TopN <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	if strings.TrimSpace(cfg.ReportID) == "" {
		return fmt.Errorf("--report-id must not be empty")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "text", "json":
	default:
		return fmt.Errorf("--log-format must be text or json")
	}
	return nil
}
