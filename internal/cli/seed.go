package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"adframe/db/seed"
	"adframe/internal/adapter/postgres"
	"adframe/internal/db"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo listings and campaigns",
		Long: `Load a YAML fixture into the database. Without --file the bundled
demo fixture is used. Existing listings and campaigns are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				r   io.ReadCloser
				err error
			)
			if file == "" {
				r, err = seed.FS.Open(seed.Default)
			} else {
				r, err = os.Open(file)
			}
			if err != nil {
				return fmt.Errorf("open fixture: %w", err)
			}
			defer r.Close()

			fixture, err := db.LoadFixture(r)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := db.NewPostgresPool(ctx, app.Config.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			res, err := db.Seed(ctx, postgres.NewListingRepository(pool), postgres.NewCampaignRepository(pool), fixture, time.Now())
			if err != nil {
				return err
			}
			app.Logger.Info("seed complete",
				slog.Int("listings", res.Listings),
				slog.Int("frames", res.Frames),
				slog.Int("campaigns", res.Campaigns))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture file (defaults to the bundled demo)")
	return cmd
}
