package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/greenstack-labs/plantaudit/internal/cli/config"
	"github.com/greenstack-labs/plantaudit/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables. The fallback keeps commands usable in tests that
// bypass the root command's PersistentPreRunE.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	dataDir := os.Getenv("PLANTAUDIT_DATA_DIR")
	if dataDir == "" {
		dataDir = config.DefaultDataDir
	}
	outputFormat := os.Getenv("PLANTAUDIT_OUTPUT")
	if outputFormat == "" {
		outputFormat = config.DefaultOutput
	}

	return &config.Config{
		DataDir:      dataDir,
		OutputFormat: outputFormat,
		Verbose:      os.Getenv("PLANTAUDIT_VERBOSE") == "true",
	}
}
