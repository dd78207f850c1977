// Package repomanager provides the RepositoryManager for the supported SQL
// dialects, wiring repository constructors and goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/migrations"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/flights"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/passengers"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/shipments"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager builds repositories for a single dialect.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Passengers(db dbx.DBTX) passengers.Repository {
	return passengers.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Flights(db dbx.DBTX) flights.Repository {
	return flights.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Shipments(db dbx.DBTX) shipments.Repository {
	return shipments.NewSQLRepository(db, m.dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.Goose()); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, migrations.Dir(m.dialect.Goose())); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewRepositoryManager returns a manager for dialect.
func NewRepositoryManager(dialect dbx.Dialect) (RepositoryManager, error) {
	if _, err := dbx.ParseDialect(string(dialect)); err != nil {
		return nil, err
	}
	return &SQLRepositoryManager{dialect: dialect}, nil
}
