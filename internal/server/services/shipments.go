package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/config"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/repomanager"
)

// ShipmentInput carries raw form values. IsInsured reflects the presence
// of the checkbox field.
type ShipmentInput struct {
	Contents    string
	WeightKg    string
	Category    string
	IsInsured   bool
	FlightNo    string
	CostPerKg   string
	HandlingFee string
}

func (in ShipmentInput) toModel() (*models.Shipment, error) {
	if err := checkFields(
		field{name: "contents", value: in.Contents, max: 200, required: true},
		field{name: "category", value: in.Category, max: 50, required: true},
		field{name: "flight number", value: in.FlightNo, max: 10, required: true},
	); err != nil {
		return nil, err
	}

	weight, err := parseFloat("weight", in.WeightKg, nil)
	if err != nil {
		return nil, err
	}
	rate, err := parseFloat("cost per kg", in.CostPerKg, ptr(models.DefaultCostPerKg))
	if err != nil {
		return nil, err
	}
	fee, err := parseFloat("handling fee", in.HandlingFee, ptr(models.DefaultHandlingFee))
	if err != nil {
		return nil, err
	}

	return &models.Shipment{
		Contents:    in.Contents,
		WeightKg:    weight,
		Category:    in.Category,
		IsInsured:   in.IsInsured,
		FlightNo:    in.FlightNo,
		CostPerKg:   rate,
		HandlingFee: fee,
	}, nil
}

type ShipmentService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	enforceReferences bool
}

func NewShipmentService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ShipmentService {
	return &ShipmentService{db: db, repomanager: m, enforceReferences: cfg.EnforceFlightReferences}
}

func (s *ShipmentService) List(ctx context.Context) ([]models.Shipment, error) {
	out, err := s.repomanager.Shipments(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing shipments: %w", err)
	}
	return out, nil
}

func (s *ShipmentService) Get(ctx context.Context, id int64) (*models.Shipment, error) {
	sh, err := s.repomanager.Shipments(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading shipment %d: %w", id, err)
	}
	return sh, nil
}

func (s *ShipmentService) checkFlight(ctx context.Context, tx dbx.DBTX, flightNo string) error {
	if !s.enforceReferences {
		return nil
	}
	ok, err := flightExists(ctx, s.repomanager, tx, flightNo)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrInvalidFlightReference, flightNo)
	}
	return nil
}

// Create stores a shipment. Any unparsable number fails the whole
// operation with common.ErrInvalidNumeric.
func (s *ShipmentService) Create(ctx context.Context, in ShipmentInput) (*models.Shipment, error) {
	sh, err := in.toModel()
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkFlight(ctx, tx, sh.FlightNo); err != nil {
			return err
		}
		sh, err = s.repomanager.Shipments(tx).Create(ctx, sh)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating shipment: %w", err)
	}
	return sh, nil
}

func (s *ShipmentService) Update(ctx context.Context, id int64, in ShipmentInput) (*models.Shipment, error) {
	sh, err := in.toModel()
	if err != nil {
		return nil, err
	}
	sh.ID = id

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkFlight(ctx, tx, sh.FlightNo); err != nil {
			return err
		}
		return s.repomanager.Shipments(tx).Update(ctx, sh)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating shipment %d: %w", id, err)
	}
	return sh, nil
}

func (s *ShipmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Shipments(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting shipment %d: %w", id, err)
	}
	return nil
}
