// Package main provides the CLI entrypoint for tagstat.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tagstat/internal/config"
	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/pipeline"
	"github.com/verte-zerg/tagstat/internal/pool"
	"github.com/verte-zerg/tagstat/internal/render"
	"github.com/verte-zerg/tagstat/internal/stats"
	"github.com/verte-zerg/tagstat/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &runFlags{}
	rootCmd := &cobra.Command{
		Use:   "tagstat [workers]",
		Short: "Words-per-record statistics for tagged JSON-lines corpora",
		Long: "tagstat reads every matching file of a directory, counts words per tag\n" +
			"and per file, and prints the chattiest files and tags.\n\n" + config.EnvUsage(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportCmd(cmd, args, flags)
		},
	}
	flags.bind(rootCmd)
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/tagstat/config.toml)")

	rootCmd.AddCommand(newBrowseCmd(flags))
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, args []string, flags *runFlags) error {
	cfg, err := resolveConfig(cmd, args, flags)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := analyze(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	if cfg.SQLite != "" {
		if err := exportReport(cmd.Context(), cfg.SQLite, report, logger); err != nil {
			return err
		}
	}
	if err := render.Write(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}
	logger.Info("report complete",
		"files", len(report.Files),
		"tags", len(report.Tags),
		"workers", cfg.Workers,
		"elapsed", time.Since(start).Round(time.Microsecond).String(),
	)
	return nil
}

// analyze runs the whole pipeline for cfg. No partial report is returned on failure.
func analyze(ctx context.Context, cfg model.Config, logger *slog.Logger) (model.Report, error) {
	p, err := pool.New(cfg.Workers)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to create worker pool: %w", err)
	}
	paths, err := pipeline.ListInputs(cfg.Dir, cfg.Ext)
	if err != nil {
		return model.Report{}, err
	}
	logger.Debug("inputs listed", "dir", cfg.Dir, "ext", cfg.Ext, "files", len(paths))

	files, err := pipeline.NewProcessor(p, logger).ProcessFiles(ctx, paths)
	if err != nil {
		return model.Report{}, err
	}
	report, err := stats.BuildReport(ctx, p, files, stats.Options{ID: cfg.ReportID, TopN: cfg.TopN})
	if err != nil {
		return model.Report{}, err
	}
	return report, nil
}

func exportReport(ctx context.Context, path string, report model.Report, logger *slog.Logger) error {
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close db", "error", cerr)
		}
	}()
	runID := uuid.NewString()
	if err := st.SaveReport(ctx, runID, report); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	size := "unknown"
	if info, err := os.Stat(path); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	logger.Info("report exported", "path", path, "run", runID, "size", size)
	return nil
}
