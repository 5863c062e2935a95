package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

func TestRateHistoryWriteRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRateHistoryWriteRepository(sqlxDB)

	fetchedAt := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)
	quote := models.Quote{Pair: "USDBRL", Bid: "5.32", FetchedAt: fetchedAt}

	mock.ExpectExec("INSERT INTO rates").
		WithArgs("USDBRL", "5.32", fetchedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Save(context.Background(), quote)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateHistoryWriteRepository_Save_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRateHistoryWriteRepository(sqlxDB)

	mock.ExpectExec("INSERT INTO rates").
		WillReturnError(errors.New("connection reset"))

	err = repo.Save(context.Background(), models.Quote{Pair: "USDBRL", Bid: "5.32"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateHistoryReadRepository_GetLatest(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRateHistoryReadRepository(sqlxDB)

	newer := time.Date(2025, 8, 29, 12, 10, 0, 0, time.UTC)
	older := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "pair", "bid", "fetched_at"}).
		AddRow(int64(2), "USDBRL", "5.33", newer).
		AddRow(int64(1), "USDBRL", "5.32", older)

	mock.ExpectQuery("SELECT id, pair, bid, fetched_at").
		WithArgs("USDBRL", 2).
		WillReturnRows(rows)

	got, err := repo.GetLatest(context.Background(), "USDBRL", 2)
	assert.NoError(t, err)
	assert.Equal(t, []models.RateDB{
		{ID: 2, Pair: "USDBRL", Bid: "5.33", FetchedAt: newer},
		{ID: 1, Pair: "USDBRL", Bid: "5.32", FetchedAt: older},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateHistoryReadRepository_GetLatest_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRateHistoryReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT id, pair, bid, fetched_at").
		WillReturnError(errors.New("relation does not exist"))

	got, err := repo.GetLatest(context.Background(), "USDBRL", 10)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
