// Package server assembles the airline admin application: it opens the
// database, applies migrations, builds the services and runs the web UI
// until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/logging"
	"github.com/dmitrijs2005/airlineadmin/internal/server/config"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
	"github.com/dmitrijs2005/airlineadmin/internal/server/web"
)

// sessionPurgeInterval is how often expired session rows are removed.
const sessionPurgeInterval = 15 * time.Minute

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sessions *services.SessionService
	handler  *web.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	db, dialect, err := dbx.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewRepositoryManager(dialect)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	ss := services.NewSessionService(db, rm, c)

	h, err := web.NewHandler(web.Deps{
		Users:      services.NewUserService(db, rm),
		Sessions:   ss,
		Passengers: services.NewPassengerService(db, rm),
		Flights:    services.NewFlightService(db, rm, c),
		Shipments:  services.NewShipmentService(db, rm, c),
		DB:         db,
	}, logger, c.SecureCookies)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("template error: %w", err)
	}

	logger.Info(ctx, "Database ready", "driver", string(dialect))

	return &App{config: c, logger: logger, db: db, sessions: ss, handler: h}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := web.NewHTTPServer(app.config.EndpointAddrHTTP, app.handler, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// purgeSessions periodically deletes expired sessions until ctx is done.
func (app *App) purgeSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.sessions.PurgeExpired(ctx)
			if err != nil {
				app.logger.Error(ctx, "session purge failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Debug(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.purgeSessions(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
