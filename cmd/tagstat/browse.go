package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tagstat/internal/statsui"
)

func newBrowseCmd(root *runFlags) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "browse [workers]",
		Short: "Browse the report interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.configPath = root.configPath
			return runBrowseCmd(cmd, args, flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, args []string, flags *runFlags) error {
	cfg, err := resolveConfig(cmd, args, flags)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	report, err := analyze(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	if cfg.SQLite != "" {
		if err := exportReport(cmd.Context(), cfg.SQLite, report, logger); err != nil {
			return err
		}
	}

	program := tea.NewProgram(statsui.NewModel(report, cfg.Dir), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browse TUI: %w", err)
	}
	return nil
}
