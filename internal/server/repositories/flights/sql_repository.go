package flights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

const columns = `flight_no, origin, destination, dep_date, dep_time, arr_date, arr_time, status`

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

func scanFlight(row scanner) (models.Flight, error) {
	var f models.Flight
	err := row.Scan(&f.FlightNo, &f.From, &f.To, &f.DepDate, &f.DepTime, &f.ArrDate, &f.ArrTime, &f.Status)
	return f, err
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Flight, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM flights ORDER BY flight_no DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Flight{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *SQLRepository) Get(ctx context.Context, flightNo string) (*models.Flight, error) {
	query := r.dialect.Rebind(`SELECT ` + columns + ` FROM flights WHERE flight_no = ?`)

	f, err := scanFlight(r.db.QueryRowContext(ctx, query, flightNo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &f, nil
}

func (r *SQLRepository) Create(ctx context.Context, f *models.Flight) error {
	query := r.dialect.Rebind(
		`INSERT INTO flights (` + columns + `)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		f.FlightNo, f.From, f.To, f.DepDate, f.DepTime, f.ArrDate, f.ArrTime, string(f.Status))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrDuplicateKey
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) Update(ctx context.Context, f *models.Flight) error {
	query := r.dialect.Rebind(
		`UPDATE flights
		 SET origin = ?, destination = ?, dep_date = ?, dep_time = ?, arr_date = ?, arr_time = ?, status = ?
		 WHERE flight_no = ?`)

	res, err := r.db.ExecContext(ctx, query,
		f.From, f.To, f.DepDate, f.DepTime, f.ArrDate, f.ArrTime, string(f.Status), f.FlightNo)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *SQLRepository) Delete(ctx context.Context, flightNo string) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM flights WHERE flight_no = ?`), flightNo)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
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
