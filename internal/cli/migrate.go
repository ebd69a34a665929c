package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"adframe/db/migrations"
	"adframe/internal/db"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(app *App) *cobra.Command {
	var version uint

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Move the schema to the given version. Without --version the latest
schema is applied; --version 0 drops every table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("version") {
				version = migrations.Version
			}
			if err := db.MigrateTo(app.Config.Psql.Addr.String(), version); err != nil {
				return err
			}
			app.Logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
			return nil
		},
	}
	cmd.Flags().UintVar(&version, "version", migrations.Version, "target schema version")
	return cmd
}
