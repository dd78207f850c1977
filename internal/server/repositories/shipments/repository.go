// Package shipments declares the storage contract for cargo shipments.
package shipments

import (
	"context"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

type Repository interface {
	// List returns all shipments, newest first.
	List(ctx context.Context) ([]models.Shipment, error)
	Get(ctx context.Context, id int64) (*models.Shipment, error)
	Create(ctx context.Context, s *models.Shipment) (*models.Shipment, error)
	Update(ctx context.Context, s *models.Shipment) error
	Delete(ctx context.Context, id int64) error
	// CountByFlight returns how many shipments reference flightNo.
	CountByFlight(ctx context.Context, flightNo string) (int, error)
}
