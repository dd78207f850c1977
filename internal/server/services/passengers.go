package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/repomanager"
)

// PassengerInput carries raw form values; Age is parsed by the service.
type PassengerInput struct {
	Name    string
	Age     string
	Sex     string
	Address string
	Contact string
	Email   string
}

func (in PassengerInput) toModel() (*models.Passenger, error) {
	if err := checkFields(
		field{name: "name", value: in.Name, max: 100, required: true},
		field{name: "age", value: in.Age, max: 11, required: true},
		field{name: "sex", value: in.Sex, max: 10, required: true},
		field{name: "address", value: in.Address, max: 200},
		field{name: "contact", value: in.Contact, max: 50},
		field{name: "email", value: in.Email, max: 100},
	); err != nil {
		return nil, err
	}

	age, err := parseInt("age", in.Age)
	if err != nil {
		return nil, err
	}

	return &models.Passenger{
		Name:    in.Name,
		Age:     age,
		Sex:     in.Sex,
		Address: in.Address,
		Contact: in.Contact,
		Email:   in.Email,
	}, nil
}

type PassengerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPassengerService(db *sql.DB, m repomanager.RepositoryManager) *PassengerService {
	return &PassengerService{db: db, repomanager: m}
}

// List returns every passenger, newest first, or with a non-blank search
// term the passengers whose name contains it, ignoring case.
func (s *PassengerService) List(ctx context.Context, search string) ([]models.Passenger, error) {
	repo := s.repomanager.Passengers(s.db)

	var (
		out []models.Passenger
		err error
	)
	if term := strings.TrimSpace(search); term != "" {
		out, err = repo.Search(ctx, term)
	} else {
		out, err = repo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing passengers: %w", err)
	}
	return out, nil
}

func (s *PassengerService) Get(ctx context.Context, pid int64) (*models.Passenger, error) {
	p, err := s.repomanager.Passengers(s.db).Get(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("error loading passenger %d: %w", pid, err)
	}
	return p, nil
}

func (s *PassengerService) Create(ctx context.Context, in PassengerInput) (*models.Passenger, error) {
	p, err := in.toModel()
	if err != nil {
		return nil, err
	}

	p, err = s.repomanager.Passengers(s.db).Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error creating passenger: %w", err)
	}
	return p, nil
}

// Update overwrites all fields of passenger pid.
func (s *PassengerService) Update(ctx context.Context, pid int64, in PassengerInput) (*models.Passenger, error) {
	p, err := in.toModel()
	if err != nil {
		return nil, err
	}
	p.PID = pid

	if err := s.repomanager.Passengers(s.db).Update(ctx, p); err != nil {
		return nil, fmt.Errorf("error updating passenger %d: %w", pid, err)
	}
	return p, nil
}

func (s *PassengerService) Delete(ctx context.Context, pid int64) error {
	if err := s.repomanager.Passengers(s.db).Delete(ctx, pid); err != nil {
		return fmt.Errorf("error deleting passenger %d: %w", pid, err)
	}
	return nil
}
