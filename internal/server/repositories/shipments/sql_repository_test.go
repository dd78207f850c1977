package shipments

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/dbx"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "contents", "weight_kg", "category", "is_insured", "flight_no", "cost_per_kg", "handling_fee"}

func newRepoWithMock(t *testing.T, dialect dbx.Dialect) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewSQLRepository(db, dialect), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t, dbx.SQLite)

	mock.ExpectQuery(`^SELECT\s+id,.*FROM\s+shipments\s+ORDER\s+BY\s+id\s+DESC$`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), "Machine parts", 120.5, "Industrial", true, "BT101", 4.0, 25.0).
			AddRow(int64(1), "Books", 10.0, "Paper", false, "BT202", 5.0, 10.0))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Shipment{
		ID: 2, Contents: "Machine parts", WeightKg: 120.5, Category: "Industrial",
		IsInsured: true, FlightNo: "BT101", CostPerKg: 4, HandlingFee: 25,
	}, got[0])
	assert.InDelta(t, 60.0, got[1].TotalCost(), 1e-9)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t, dbx.Postgres)
	mock.ExpectQuery(`FROM\s+shipments\s+WHERE\s+id\s*=\s*\$1$`).WithArgs(int64(4)).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 4)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t, dbx.Postgres)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+shipments\s*\(contents,\s*weight_kg,\s*category,\s*is_insured,\s*flight_no,\s*cost_per_kg,\s*handling_fee\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*RETURNING\s+id$`).
		WithArgs("Books", 10.0, "Paper", false, "BT101", 5.0, 10.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	got, err := repo.Create(context.Background(), &models.Shipment{
		Contents: "Books", WeightKg: 10, Category: "Paper", FlightNo: "BT101", CostPerKg: 5, HandlingFee: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
}

func TestUpdate(t *testing.T) {
	q := `(?s)^UPDATE\s+shipments\s+SET\s+contents\s*=\s*\?,.*handling_fee\s*=\s*\?\s+WHERE\s+id\s*=\s*\?$`
	s := &models.Shipment{ID: 3, Contents: "Books", WeightKg: 12, Category: "Paper", IsInsured: true, FlightNo: "BT202", CostPerKg: 5, HandlingFee: 10}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t, dbx.SQLite)
		mock.ExpectExec(q).
			WithArgs("Books", 12.0, "Paper", true, "BT202", 5.0, 10.0, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Update(context.Background(), s))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t, dbx.SQLite)
		mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Update(context.Background(), s), common.ErrorNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t, dbx.SQLite)

	mock.ExpectExec(`^DELETE\s+FROM\s+shipments\s+WHERE\s+id\s*=\s*\?$`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), common.ErrorNotFound)
}

func TestCountByFlight(t *testing.T) {
	q := `^SELECT\s+COUNT\(\*\)\s+FROM\s+shipments\s+WHERE\s+flight_no\s*=\s*\?$`

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t, dbx.SQLite)
		mock.ExpectQuery(q).WithArgs("BT101").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		n, err := repo.CountByFlight(context.Background(), "BT101")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t, dbx.SQLite)
		mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

		_, err := repo.CountByFlight(context.Background(), "BT101")
		assert.Error(t, err)
	})
}
