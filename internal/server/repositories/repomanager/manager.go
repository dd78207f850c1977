package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/flights"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/passengers"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/shipments"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// service code runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Passengers(db dbx.DBTX) passengers.Repository
	Flights(db dbx.DBTX) flights.Repository
	Shipments(db dbx.DBTX) shipments.Repository
}
