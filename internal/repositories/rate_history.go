package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

// RateHistoryWriteRepository appends fetched quotes to the rates table.
type RateHistoryWriteRepository struct {
	db *sqlx.DB
}

func NewRateHistoryWriteRepository(db *sqlx.DB) *RateHistoryWriteRepository {
	return &RateHistoryWriteRepository{db: db}
}

func (r *RateHistoryWriteRepository) Save(ctx context.Context, quote models.Quote) error {
	const query = `
		INSERT INTO rates (pair, bid, fetched_at)
		VALUES ($1, $2, $3)
	`
	args := []any{quote.Pair.String(), quote.Bid, quote.FetchedAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// RateHistoryReadRepository reads recently stored quotes.
type RateHistoryReadRepository struct {
	db *sqlx.DB
}

func NewRateHistoryReadRepository(db *sqlx.DB) *RateHistoryReadRepository {
	return &RateHistoryReadRepository{db: db}
}

func (r *RateHistoryReadRepository) GetLatest(ctx context.Context, pair models.SymbolPair, limit int) ([]models.RateDB, error) {
	const query = `
		SELECT id, pair, bid, fetched_at
		FROM rates
		WHERE pair = $1
		ORDER BY fetched_at DESC
		LIMIT $2
	`

	var rates []models.RateDB
	err := r.db.SelectContext(ctx, &rates, query, pair.String(), limit)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pair.String(), limit},
		"result", len(rates),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rates, nil
}
