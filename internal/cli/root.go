package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adframe/internal/config"
)

// App carries what every subcommand needs once configuration is loaded.
type App struct {
	Config config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the adframe command tree. Configuration comes from
// the environment and is loaded before any subcommand runs.
func NewRootCommand() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "adframe",
		Short:         "adframe serves and tracks ads placed in publisher frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			app.Config = cfg
			app.Logger = cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
			return nil
		},
	}

	cmd.AddCommand(NewServeCommand(app))
	cmd.AddCommand(NewMigrateCommand(app))
	cmd.AddCommand(NewSeedCommand(app))
	return cmd
}
