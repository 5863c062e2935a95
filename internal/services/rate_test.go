package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

func TestRateService_GetRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func() *RateService
		want      models.Quote
		wantErr   error
	}{
		{
			name: "cell_hit",
			mockSetup: func() *RateService {
				cell := NewQuoteCell()
				cell.Store(models.Quote{Pair: "USDBRL", Bid: "5.32", FetchedAt: time.Unix(100, 0)})
				cache := NewMockRateCacheReader(ctrl)
				return NewRateService(cell, NewPairCell("USDBRL"), cache, nil, nil)
			},
			want: models.Quote{Pair: "USDBRL", Bid: "5.32", FetchedAt: time.Unix(100, 0)},
		},
		{
			name: "cache_fallback_before_first_fetch",
			mockSetup: func() *RateService {
				cache := NewMockRateCacheReader(ctrl)
				cache.EXPECT().
					GetRate(ctx, models.SymbolPair("USDBRL")).
					Return("5.30", nil)
				return NewRateService(NewQuoteCell(), NewPairCell("USDBRL"), cache, nil, nil)
			},
			want: models.Quote{Pair: "USDBRL", Bid: "5.30"},
		},
		{
			name: "unavailable_when_cell_and_cache_empty",
			mockSetup: func() *RateService {
				cache := NewMockRateCacheReader(ctrl)
				cache.EXPECT().
					GetRate(ctx, models.SymbolPair("USDBRL")).
					Return("", errors.New("rate not cached for USDBRL"))
				return NewRateService(NewQuoteCell(), NewPairCell("USDBRL"), cache, nil, nil)
			},
			wantErr: ErrRateUnavailable,
		},
		{
			name: "unavailable_without_cache",
			mockSetup: func() *RateService {
				return NewRateService(NewQuoteCell(), NewPairCell("USDBRL"), nil, nil, nil)
			},
			wantErr: ErrRateUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockSetup()

			got, err := svc.GetRate(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateService_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rows := []models.RateDB{
		{ID: 2, Pair: "USDBRL", Bid: "5.33", FetchedAt: time.Unix(200, 0)},
		{ID: 1, Pair: "USDBRL", Bid: "5.32", FetchedAt: time.Unix(100, 0)},
	}

	history := NewMockRateHistoryReader(ctrl)
	history.EXPECT().
		GetLatest(ctx, models.SymbolPair("USDBRL"), 20).
		Return(rows, nil)

	svc := NewRateService(NewQuoteCell(), NewPairCell("USDBRL"), nil, history, nil)

	got, err := svc.GetHistory(ctx, 20)
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestRateService_GetHistory_NoStorage(t *testing.T) {
	svc := NewRateService(NewQuoteCell(), NewPairCell("USDBRL"), nil, nil, nil)

	got, err := svc.GetHistory(context.Background(), 20)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRateService_SetPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := NewMockRefresher(ctrl)
	refresher.EXPECT().Refresh().Times(1)

	pairs := NewPairCell("USDBRL")
	svc := NewRateService(NewQuoteCell(), pairs, nil, nil, refresher)

	svc.SetPair("USDEUR")

	assert.Equal(t, models.SymbolPair("USDEUR"), pairs.Load())
}
