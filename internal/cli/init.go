package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ngoguened/zoo/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config and a sample layout",
		Long: `Create the configuration directory with a default config.yaml, and write a
sample layout file unless one already exists. The sample layout lives in the
configuration directory and config.yaml points at it; --layout writes it
elsewhere instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("create config directory: %w", err)}
	}

	layoutPath := filepath.Join(a.configDir, paths.DefaultLayoutName)
	configLayout := paths.DefaultLayoutName
	if a.flags.layout != "" {
		abs, err := filepath.Abs(a.flags.layout)
		if err != nil {
			return &exitError{code: exitSysError, err: err}
		}
		layoutPath = abs
		configLayout = abs
	}

	wroteConfig, err := writeConfigIfMissing(a.configDir, configLayout)
	if err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("write config: %w", err)}
	}
	wroteLayout, err := writeLayoutIfMissing(layoutPath, sampleLayout)
	if err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("write layout: %w", err)}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Zoo initialized successfully")
	fmt.Fprintln(out, "  config:", filepath.Join(a.configDir, configFileExt), created(wroteConfig))
	fmt.Fprintln(out, "  layout:", layoutPath, created(wroteLayout))
	return nil
}

func created(wrote bool) string {
	if wrote {
		return "(created)"
	}
	return "(kept)"
}
