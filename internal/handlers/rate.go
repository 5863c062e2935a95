package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/services"
)

// RateReader defines the interface that the rate service must implement.
type RateReader interface {
	GetRate(ctx context.Context) (models.Quote, error)
}

// NewGetRateHandler returns an HTTP handler for reading the current exchange rate.
// @Summary Get current exchange rate
// @Description Returns the most recently fetched rate for the configured symbol pair
// @Tags rate
// @Produce json
// @Success 200 {object} models.RateResponse "Current rate"
// @Failure 503 {object} models.RateErrorResponse "No rate fetched yet"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /rate [get]
func NewGetRateHandler(svc RateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quote, err := svc.GetRate(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRateUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(models.RateErrorResponse{
					Error: "no exchange rate fetched yet",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.RateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.RateResponse{
			Pair:      quote.Pair.String(),
			Bid:       quote.Bid,
			FetchedAt: quote.FetchedAt,
		})
	}
}
