package web

import (
	"context"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
)

// The interfaces below are implemented by the services package.

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Verify(ctx context.Context, username, password string) (*models.User, error)
}

type SessionService interface {
	Start(ctx context.Context, user *models.User) (string, *services.Identity, error)
	Resolve(ctx context.Context, token string) (*services.Identity, error)
	End(ctx context.Context, token string) error
}

type PassengerService interface {
	List(ctx context.Context, search string) ([]models.Passenger, error)
	Get(ctx context.Context, pid int64) (*models.Passenger, error)
	Create(ctx context.Context, in services.PassengerInput) (*models.Passenger, error)
	Update(ctx context.Context, pid int64, in services.PassengerInput) (*models.Passenger, error)
	Delete(ctx context.Context, pid int64) error
}

type FlightService interface {
	Statuses() []models.FlightStatus
	List(ctx context.Context) ([]models.Flight, error)
	Get(ctx context.Context, flightNo string) (*models.Flight, error)
	Create(ctx context.Context, in services.FlightInput) (*models.Flight, error)
	Update(ctx context.Context, flightNo string, in services.FlightInput) (*models.Flight, error)
	Delete(ctx context.Context, flightNo string) error
}

type ShipmentService interface {
	List(ctx context.Context) ([]models.Shipment, error)
	Get(ctx context.Context, id int64) (*models.Shipment, error)
	Create(ctx context.Context, in services.ShipmentInput) (*models.Shipment, error)
	Update(ctx context.Context, id int64, in services.ShipmentInput) (*models.Shipment, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports database reachability for /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}
