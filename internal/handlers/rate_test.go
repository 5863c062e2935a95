package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/handlers"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/services"
)

func TestGetRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockRateReader(ctrl)
	handler := handlers.NewGetRateHandler(mockReader)

	fetchedAt := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				mockReader.EXPECT().
					GetRate(gomock.Any()).
					Return(models.Quote{Pair: "USDBRL", Bid: "5.32", FetchedAt: fetchedAt}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"pair":       "USDBRL",
				"bid":        "5.32",
				"fetched_at": "2025-08-29T12:00:00Z",
			},
		},
		{
			name: "unavailable_before_first_fetch",
			mockSetup: func() {
				mockReader.EXPECT().
					GetRate(gomock.Any()).
					Return(models.Quote{}, services.ErrRateUnavailable)
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: map[string]interface{}{"error": "no exchange rate fetched yet"},
		},
		{
			name: "internal_error",
			mockSetup: func() {
				mockReader.EXPECT().
					GetRate(gomock.Any()).
					Return(models.Quote{}, errors.New("redis down"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]interface{}{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/rate", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantCode, rr.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			require.Equal(t, tt.wantBody, body)
		})
	}
}
