package web

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUsers) Verify(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Start(ctx context.Context, user *models.User) (string, *services.Identity, error) {
	args := m.Called(ctx, user)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*services.Identity), args.Error(2)
}

func (m *mockSessions) Resolve(ctx context.Context, token string) (*services.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Identity), args.Error(1)
}

func (m *mockSessions) End(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockPassengers struct{ mock.Mock }

func (m *mockPassengers) List(ctx context.Context, search string) ([]models.Passenger, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Passenger), args.Error(1)
}

func (m *mockPassengers) Get(ctx context.Context, pid int64) (*models.Passenger, error) {
	args := m.Called(ctx, pid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Passenger), args.Error(1)
}

func (m *mockPassengers) Create(ctx context.Context, in services.PassengerInput) (*models.Passenger, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Passenger), args.Error(1)
}

func (m *mockPassengers) Update(ctx context.Context, pid int64, in services.PassengerInput) (*models.Passenger, error) {
	args := m.Called(ctx, pid, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Passenger), args.Error(1)
}

func (m *mockPassengers) Delete(ctx context.Context, pid int64) error {
	return m.Called(ctx, pid).Error(0)
}

type mockFlights struct{ mock.Mock }

func (m *mockFlights) Statuses() []models.FlightStatus {
	return models.FlightStatuses()
}

func (m *mockFlights) List(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *mockFlights) Get(ctx context.Context, flightNo string) (*models.Flight, error) {
	args := m.Called(ctx, flightNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *mockFlights) Create(ctx context.Context, in services.FlightInput) (*models.Flight, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *mockFlights) Update(ctx context.Context, flightNo string, in services.FlightInput) (*models.Flight, error) {
	args := m.Called(ctx, flightNo, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *mockFlights) Delete(ctx context.Context, flightNo string) error {
	return m.Called(ctx, flightNo).Error(0)
}

type mockShipments struct{ mock.Mock }

func (m *mockShipments) List(ctx context.Context) ([]models.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shipment), args.Error(1)
}

func (m *mockShipments) Get(ctx context.Context, id int64) (*models.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shipment), args.Error(1)
}

func (m *mockShipments) Create(ctx context.Context, in services.ShipmentInput) (*models.Shipment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shipment), args.Error(1)
}

func (m *mockShipments) Update(ctx context.Context, id int64, in services.ShipmentInput) (*models.Shipment, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shipment), args.Error(1)
}

func (m *mockShipments) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPinger struct{ mock.Mock }

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
