package main

import (
	"github.com/spf13/cobra"

	"github.com/facturakit/facturakit/internal/config"
	"github.com/facturakit/facturakit/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "facturakit",
		Short:         "Facturakit builds and previews styled invoices in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation launches the builder on the sample invoice.
			return runEdit(flags, editFlags{}, nil)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a facturakit.yaml settings file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings resolves the application settings for a command run.
func loadSettings(flags *rootFlags) (*config.Settings, error) {
	return config.Load(flags.configPath)
}

// newLogger builds the command logger, verbose dropping the level to debug.
func newLogger(flags *rootFlags, settings *config.Settings) (*logger.Logger, error) {
	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	return logger.New(level)
}
