package passengers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

const columns = `pid, name, age, sex, address, contact, email`

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

func scanPassenger(row scanner) (models.Passenger, error) {
	var p models.Passenger
	err := row.Scan(&p.PID, &p.Name, &p.Age, &p.Sex, &p.Address, &p.Contact, &p.Email)
	return p, err
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]models.Passenger, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Passenger, error) {
	return r.query(ctx, `SELECT `+columns+` FROM passengers ORDER BY pid DESC`)
}

func (r *SQLRepository) Search(ctx context.Context, term string) ([]models.Passenger, error) {
	return r.query(ctx,
		`SELECT `+columns+` FROM passengers
		 WHERE LOWER(name) LIKE LOWER(?) ESCAPE '`+dbx.LikeEscape+`'
		 ORDER BY pid`,
		dbx.ContainsPattern(term))
}

func (r *SQLRepository) Get(ctx context.Context, pid int64) (*models.Passenger, error) {
	query := r.dialect.Rebind(`SELECT ` + columns + ` FROM passengers WHERE pid = ?`)

	p, err := scanPassenger(r.db.QueryRowContext(ctx, query, pid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &p, nil
}

func (r *SQLRepository) Create(ctx context.Context, p *models.Passenger) (*models.Passenger, error) {
	query := r.dialect.Rebind(
		`INSERT INTO passengers (name, age, sex, address, contact, email)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING pid`)

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Age, p.Sex, p.Address, p.Contact, p.Email).Scan(&p.PID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *SQLRepository) Update(ctx context.Context, p *models.Passenger) error {
	query := r.dialect.Rebind(
		`UPDATE passengers
		 SET name = ?, age = ?, sex = ?, address = ?, contact = ?, email = ?
		 WHERE pid = ?`)

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Age, p.Sex, p.Address, p.Contact, p.Email, p.PID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *SQLRepository) Delete(ctx context.Context, pid int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM passengers WHERE pid = ?`), pid)
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
