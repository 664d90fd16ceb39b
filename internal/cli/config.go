package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gosmell/internal/configloader"
	"github.com/yaklabco/gosmell/internal/logging"
)

func newConfigCommand() *cobra.Command {
	var ignoreEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration the report command would use, after merging
defaults, config files and GOSMELL_* environment variables.

The files that contributed are listed in the header comment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, ignoreEnv)
		},
	}

	cmd.Flags().BoolVar(&ignoreEnv, "ignore-env", false, "skip GOSMELL_* environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command, ignoreEnv bool) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		IgnoreEnv:    ignoreEnv,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	header := []string{"resolved configuration"}
	if len(result.LoadedFrom) == 0 {
		header = append(header, "source: defaults")
	}
	for _, path := range result.LoadedFrom {
		header = append(header, "source: "+path)
	}

	if err := result.Config.WriteYAML(cmd.OutOrStdout(), header...); err != nil {
		return fmt.Errorf("print configuration: %w", err)
	}
	return nil
}
