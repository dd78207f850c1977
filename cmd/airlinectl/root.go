package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/config"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/repomanager"
)

// dbFlags are shared by every command that touches the database. Defaults
// come from the same environment the server reads.
type dbFlags struct {
	driver string
	dsn    string
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadEnvConfig()
	flags := &dbFlags{}

	root := &cobra.Command{
		Use:          "airlinectl",
		Short:        "Administer the airline admin database",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.driver, "db-driver", cfg.DatabaseDriver, "database driver (sqlite|pgx)")
	root.PersistentFlags().StringVar(&flags.dsn, "db-dsn", cfg.DatabaseDSN, "database DSN")

	root.AddCommand(
		newMigrateCmd(flags),
		newUserAddCmd(flags),
		newSecretCmd(),
	)

	return root
}

// open connects to the database and brings the schema up to date.
func (f *dbFlags) open(ctx context.Context) (*sql.DB, repomanager.RepositoryManager, error) {
	db, dialect, err := dbx.Open(ctx, f.driver, f.dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewRepositoryManager(dialect)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return db, rm, nil
}

func newMigrateCmd(flags *dbFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := flags.open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}
