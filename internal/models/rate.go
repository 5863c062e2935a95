package models

import "time"

// RateResponse represents the current exchange rate returned by the API
// swagger:model RateResponse
type RateResponse struct {
	// Symbol pair, e.g. USDBRL
	Pair string `json:"pair" example:"USDBRL"`

	// Latest bid value as returned by the upstream provider
	Bid string `json:"bid" example:"5.32"`

	// When the rate was fetched; zero when served from cache after a restart
	FetchedAt time.Time `json:"fetched_at"`
}

// RateHistoryResponse represents a list of recently fetched rates
// swagger:model RateHistoryResponse
type RateHistoryResponse struct {
	// Recent rates, newest first
	Rates []RateResponse `json:"rates"`
}

// RateErrorResponse represents an error response for rate endpoints
// swagger:model RateErrorResponse
type RateErrorResponse struct {
	// Error message
	// example: no exchange rate fetched yet
	Error string `json:"error"`
}
