package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/config"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/repomanager"
)

type FlightInput struct {
	FlightNo string
	From     string
	To       string
	DepDate  string
	DepTime  string
	ArrDate  string
	ArrTime  string
	Status   string
}

func (in FlightInput) toModel() (*models.Flight, error) {
	if err := checkFields(
		field{name: "flight number", value: in.FlightNo, max: 10, required: true},
		field{name: "from", value: in.From, max: 50, required: true},
		field{name: "to", value: in.To, max: 50, required: true},
		field{name: "departure date", value: in.DepDate, max: 20},
		field{name: "departure time", value: in.DepTime, max: 20},
		field{name: "arrival date", value: in.ArrDate, max: 20},
		field{name: "arrival time", value: in.ArrTime, max: 20},
	); err != nil {
		return nil, err
	}

	status, err := models.ParseFlightStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidStatus, in.Status)
	}

	return &models.Flight{
		FlightNo: in.FlightNo,
		From:     in.From,
		To:       in.To,
		DepDate:  in.DepDate,
		DepTime:  in.DepTime,
		ArrDate:  in.ArrDate,
		ArrTime:  in.ArrTime,
		Status:   status,
	}, nil
}

type FlightService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	enforceReferences bool
}

func NewFlightService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *FlightService {
	return &FlightService{db: db, repomanager: m, enforceReferences: cfg.EnforceFlightReferences}
}

// Statuses lists the values offered by the status selector.
func (s *FlightService) Statuses() []models.FlightStatus {
	return models.FlightStatuses()
}

func (s *FlightService) List(ctx context.Context) ([]models.Flight, error) {
	out, err := s.repomanager.Flights(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing flights: %w", err)
	}
	return out, nil
}

func (s *FlightService) Get(ctx context.Context, flightNo string) (*models.Flight, error) {
	f, err := s.repomanager.Flights(s.db).Get(ctx, flightNo)
	if err != nil {
		return nil, fmt.Errorf("error loading flight %s: %w", flightNo, err)
	}
	return f, nil
}

// Create stores a new flight. A blank status means Scheduled; a taken
// flight number yields common.ErrDuplicateKey and nothing is written.
func (s *FlightService) Create(ctx context.Context, in FlightInput) (*models.Flight, error) {
	f, err := in.toModel()
	if err != nil {
		return nil, err
	}

	if err := s.repomanager.Flights(s.db).Create(ctx, f); err != nil {
		return nil, fmt.Errorf("error creating flight %s: %w", f.FlightNo, err)
	}
	return f, nil
}

// Update overwrites every field of flightNo except the number itself.
func (s *FlightService) Update(ctx context.Context, flightNo string, in FlightInput) (*models.Flight, error) {
	in.FlightNo = flightNo
	f, err := in.toModel()
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Flights(tx)

		current, err := repo.Get(ctx, flightNo)
		if err != nil {
			return err
		}
		if !models.CanTransition(current.Status, f.Status) {
			return fmt.Errorf("%w: %s to %s", common.ErrInvalidStatus, current.Status, f.Status)
		}

		return repo.Update(ctx, f)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating flight %s: %w", flightNo, err)
	}
	return f, nil
}

// Delete removes a flight. With reference enforcement on, a flight that
// still carries shipments yields common.ErrFlightInUse.
func (s *FlightService) Delete(ctx context.Context, flightNo string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Flights(tx).Get(ctx, flightNo); err != nil {
			return err
		}

		if s.enforceReferences {
			n, err := s.repomanager.Shipments(tx).CountByFlight(ctx, flightNo)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w (%d)", common.ErrFlightInUse, n)
			}
		}

		return s.repomanager.Flights(tx).Delete(ctx, flightNo)
	})
	if err != nil {
		return fmt.Errorf("error deleting flight %s: %w", flightNo, err)
	}
	return nil
}

// flightExists is shared with the shipment service.
func flightExists(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, flightNo string) (bool, error) {
	_, err := m.Flights(db).Get(ctx, flightNo)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	return err == nil, err
}
