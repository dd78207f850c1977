// Package passengers declares the storage contract for passenger records.
package passengers

import (
	"context"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

type Repository interface {
	// List returns all passengers, newest (highest pid) first.
	List(ctx context.Context) ([]models.Passenger, error)
	// Search returns passengers whose name contains term, ignoring case,
	// in pid order.
	Search(ctx context.Context, term string) ([]models.Passenger, error)
	Get(ctx context.Context, pid int64) (*models.Passenger, error)
	Create(ctx context.Context, p *models.Passenger) (*models.Passenger, error)
	// Update overwrites every mutable field; common.ErrorNotFound when pid
	// does not exist.
	Update(ctx context.Context, p *models.Passenger) error
	Delete(ctx context.Context, pid int64) error
}
