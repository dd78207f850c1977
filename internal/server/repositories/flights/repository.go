// Package flights declares the storage contract for flight records.
package flights

import (
	"context"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

type Repository interface {
	// List returns all flights by descending flight number.
	List(ctx context.Context) ([]models.Flight, error)
	Get(ctx context.Context, flightNo string) (*models.Flight, error)
	// Create yields common.ErrDuplicateKey when the flight number is taken.
	Create(ctx context.Context, f *models.Flight) error
	Update(ctx context.Context, f *models.Flight) error
	Delete(ctx context.Context, flightNo string) error
}
