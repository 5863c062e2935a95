package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

// PairSetter defines the interface that the pair update service must implement.
type PairSetter interface {
	SetPair(pair models.SymbolPair)
}

// PairRequest represents the JSON body for updating the symbol pair
// swagger:model PairRequest
type PairRequest struct {
	// Symbol pair
	// required: true
	// default: USDBRL
	Pair string `json:"pair"`
}

// PairResponse represents a successful pair update
// swagger:model PairResponse
type PairResponse struct {
	// Accepted symbol pair
	// default: USDBRL
	Pair string `json:"pair"`
}

// PairErrorResponse represents an error response for pair updates
// swagger:model PairErrorResponse
type PairErrorResponse struct {
	// Error message
	// default: symbol pair must be exactly 6 letters
	Error string `json:"error"`
}

// NewSetPairHandler returns an HTTP handler for updating the polled symbol pair.
// @Summary Update symbol pair
// @Description Sets the pair future polls target and triggers an immediate fetch
// @Tags rate
// @Accept json
// @Produce json
// @Param pairRequest body handlers.PairRequest true "Pair Request"
// @Success 200 {object} handlers.PairResponse "Pair accepted"
// @Failure 400 {object} handlers.PairErrorResponse "Invalid request body or pair"
// @Router /pair [put]
func NewSetPairHandler(svc PairSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PairRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PairErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		pair, err := models.ParseSymbolPair(req.Pair)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PairErrorResponse{
				Error: err.Error(),
			})
			return
		}

		svc.SetPair(pair)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PairResponse{
			Pair: pair.String(),
		})
	}
}
