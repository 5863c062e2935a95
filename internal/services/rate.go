package services

import (
	"context"
	"errors"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

var (
	// ErrRateUnavailable is returned before the first successful fetch when
	// the cache holds nothing either.
	ErrRateUnavailable = errors.New("no exchange rate fetched yet")
)

// RateCacheReader fetches a cached bid for a pair.
type RateCacheReader interface {
	GetRate(ctx context.Context, pair models.SymbolPair) (string, error)
}

// RateHistoryReader reads recently stored quotes.
type RateHistoryReader interface {
	GetLatest(ctx context.Context, pair models.SymbolPair, limit int) ([]models.RateDB, error)
}

// Refresher triggers an immediate poll. Implemented by RatePoller.
type Refresher interface {
	Refresh()
}

// RateService is the read side of the poller: it serves the current quote
// from the cell, falls back to the cache when the cell is still empty, and
// exposes the stored history. It also applies symbol pair edits.
type RateService struct {
	cell      *QuoteCell
	pairs     *PairCell
	cache     RateCacheReader
	history   RateHistoryReader
	refresher Refresher
}

// NewRateService creates a new RateService. cache, history and refresher may
// be nil.
func NewRateService(
	cell *QuoteCell,
	pairs *PairCell,
	cache RateCacheReader,
	history RateHistoryReader,
	refresher Refresher,
) *RateService {
	return &RateService{
		cell:      cell,
		pairs:     pairs,
		cache:     cache,
		history:   history,
		refresher: refresher,
	}
}

// GetRate returns the latest known quote. The cell wins; before the first
// successful fetch the Redis cache is consulted so a restart does not blank
// the display for a whole poll interval.
func (svc *RateService) GetRate(ctx context.Context) (models.Quote, error) {
	if q, ok := svc.cell.Load(); ok {
		return q, nil
	}

	pair := svc.pairs.Load()
	if svc.cache != nil {
		bid, err := svc.cache.GetRate(ctx, pair)
		if err == nil && bid != "" {
			// FetchedAt stays zero: the cache does not record fetch time.
			return models.Quote{Pair: pair, Bid: bid}, nil
		}
		if err != nil {
			logger.Log.Debugw("cache miss for rate", "pair", pair, "error", err)
		}
	}

	return models.Quote{}, ErrRateUnavailable
}

// GetHistory returns the latest stored quotes for the current pair.
func (svc *RateService) GetHistory(ctx context.Context, limit int) ([]models.RateDB, error) {
	if svc.history == nil {
		return nil, nil
	}
	rates, err := svc.history.GetLatest(ctx, svc.pairs.Load(), limit)
	if err != nil {
		logger.Log.Errorw("failed to read rate history", "error", err)
		return nil, err
	}
	return rates, nil
}

// SetPair makes future polls target the given pair and triggers an immediate
// fetch so the displayed rate tracks the edit.
func (svc *RateService) SetPair(pair models.SymbolPair) {
	svc.pairs.Store(pair)
	logger.Log.Infow("symbol pair updated", "pair", pair)
	if svc.refresher != nil {
		svc.refresher.Refresh()
	}
}
