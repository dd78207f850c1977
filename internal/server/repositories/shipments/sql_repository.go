package shipments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

const columns = `id, contents, weight_kg, category, is_insured, flight_no, cost_per_kg, handling_fee`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShipment(row scanner) (models.Shipment, error) {
	var s models.Shipment
	err := row.Scan(&s.ID, &s.Contents, &s.WeightKg, &s.Category, &s.IsInsured, &s.FlightNo, &s.CostPerKg, &s.HandlingFee)
	return s, err
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Shipment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM shipments ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Shipment{}
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Shipment, error) {
	query := r.dialect.Rebind(`SELECT ` + columns + ` FROM shipments WHERE id = ?`)

	s, err := scanShipment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &s, nil
}

func (r *SQLRepository) Create(ctx context.Context, s *models.Shipment) (*models.Shipment, error) {
	query := r.dialect.Rebind(
		`INSERT INTO shipments (contents, weight_kg, category, is_insured, flight_no, cost_per_kg, handling_fee)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		s.Contents, s.WeightKg, s.Category, s.IsInsured, s.FlightNo, s.CostPerKg, s.HandlingFee).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *models.Shipment) error {
	query := r.dialect.Rebind(
		`UPDATE shipments
		 SET contents = ?, weight_kg = ?, category = ?, is_insured = ?, flight_no = ?, cost_per_kg = ?, handling_fee = ?
		 WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		s.Contents, s.WeightKg, s.Category, s.IsInsured, s.FlightNo, s.CostPerKg, s.HandlingFee, s.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM shipments WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *SQLRepository) CountByFlight(ctx context.Context, flightNo string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`SELECT COUNT(*) FROM shipments WHERE flight_no = ?`), flightNo).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
