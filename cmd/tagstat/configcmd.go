package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tagstat/internal/config"
	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/pipeline"
)

func newConfigCmd(root *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := root.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if err := ensureConfigFile(path); err != nil {
				return err
			}
			return openEditor(path)
		},
	}
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func openEditor(path string) error {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tagstat configuration
# Uncomment a value to enable it. Environment variables (TAGSTAT_*) override
# this file and CLI flags override both.

[run]
# dir = %q               # Input directory
# ext = %q             # Input file extension
# workers = %d              # Worker count
# top = %d                 # Entries per ranking
# format = %q           # json, yaml, table or markdown
# report-id = %q      # Identifier printed as padron
# sqlite = ""              # Export every report to this SQLite file

[log]
# level = %q            # debug, info, warn or error
# format = %q           # text or json
`,
		defaultDir,
		pipeline.DefaultExt,
		defaultWorkers,
		model.DefaultTopN,
		defaultFormat,
		model.DefaultReportID,
		defaultLogLevel,
		defaultLogFormat,
	)
}
