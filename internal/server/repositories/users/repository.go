// Package users declares the storage contract for administrator accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

type Repository interface {
	// Create inserts the user and fills in its ID. A taken username yields
	// common.ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByUsername returns common.ErrorNotFound when no user matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
