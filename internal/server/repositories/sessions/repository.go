// Package sessions declares the storage contract for server-side login
// sessions referenced by the session cookie.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

type Repository interface {
	// Create stores a new session.
	Create(ctx context.Context, s *models.Session) error

	// Get returns the session by id, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions that expired before t and returns how
	// many were removed.
	DeleteExpired(ctx context.Context, t time.Time) (int64, error)
}
