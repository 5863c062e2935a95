package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// RateHistoryReader defines the interface that the history service must implement.
type RateHistoryReader interface {
	GetHistory(ctx context.Context, limit int) ([]models.RateDB, error)
}

// NewGetRateHistoryHandler returns an HTTP handler for reading recent rates.
// @Summary Get rate history
// @Description Returns recently fetched rates for the current symbol pair, newest first
// @Tags rate
// @Produce json
// @Param limit query int false "Maximum number of rates to return" default(20)
// @Success 200 {object} models.RateHistoryResponse "Recent rates"
// @Failure 400 {object} models.RateErrorResponse "Invalid limit"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /rate/history [get]
func NewGetRateHistoryHandler(svc RateHistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.RateErrorResponse{
					Error: "limit must be a positive integer",
				})
				return
			}
			limit = n
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}

		rates, err := svc.GetHistory(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.RateErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := models.RateHistoryResponse{
			Rates: make([]models.RateResponse, 0, len(rates)),
		}
		for _, rate := range rates {
			resp.Rates = append(resp.Rates, models.RateResponse{
				Pair:      rate.Pair,
				Bid:       rate.Bid,
				FetchedAt: rate.FetchedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
