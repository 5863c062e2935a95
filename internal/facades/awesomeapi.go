package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

// DefaultBaseURL is the public AwesomeAPI endpoint for last-known rates.
const DefaultBaseURL = "https://economia.awesomeapi.com.br"

// ErrRateNotFound is returned when the response body has no bid for the pair.
var ErrRateNotFound = errors.New("rate not found in upstream response")

// AwesomeAPIFacade fetches exchange rates over HTTP from AwesomeAPI.
type AwesomeAPIFacade struct {
	baseURL string
	client  *http.Client
}

// NewAwesomeAPIFacade creates a new facade with a per-request timeout.
func NewAwesomeAPIFacade(baseURL string, timeout time.Duration) *AwesomeAPIFacade {
	return &AwesomeAPIFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// awesomeQuote is the per-pair object in the AwesomeAPI response body.
// The body is keyed by the concatenated pair, e.g. {"USDBRL":{"bid":"5.32"}}.
type awesomeQuote struct {
	Bid string `json:"bid"`
}

// FetchRate fetches the current bid for a symbol pair.
func (f *AwesomeAPIFacade) FetchRate(ctx context.Context, pair models.SymbolPair) (models.Quote, error) {
	url := fmt.Sprintf("%s/last/%s-%s", f.baseURL, pair.Base(), pair.Quote())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Quote{}, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate", "pair", pair, "url", url, "error", err)
		return models.Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("unexpected status from upstream", "pair", pair, "status", resp.StatusCode)
		return models.Quote{}, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var body map[string]awesomeQuote
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode upstream response", "pair", pair, "error", err)
		return models.Quote{}, err
	}

	q, ok := body[pair.String()]
	if !ok || q.Bid == "" {
		logger.Log.Errorw("bid missing in upstream response", "pair", pair)
		return models.Quote{}, ErrRateNotFound
	}

	return models.Quote{
		Pair:      pair,
		Bid:       q.Bid,
		FetchedAt: time.Now().UTC(),
	}, nil
}
