package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-agent/repository"
	"pricing-agent/service"
)

func newCapitalCostRouter() *mux.Router {
	amortizationService := service.NewAmortizationService(
		repository.NewMemoryCache(service.BreakEvenCacheSize), newTestLogger())
	handler := NewCapitalCostHandler(amortizationService, newTestLogger())

	router := mux.NewRouter()
	handler.RegisterRoutes(router.PathPrefix("/capital-cost").Subrouter())
	return router
}

func TestScheduleHandler_OK(t *testing.T) {
	router := newCapitalCostRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/capital-cost/schedule?purchase_price=1000&annual_rate=0.15", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp scheduleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	require.Len(t, resp.Months, 12) // default horizon
	assert.Equal(t, 1, resp.Months[0].Month)
	assert.Equal(t, 1000.0, resp.Months[0].OutstandingBalance)
	assert.InDelta(t, 1000.0/12, resp.Months[11].OutstandingBalance, 0.01)
	assert.InDelta(t, 7.6147, resp.BreakEvenRatePct, 0.001)
}

func TestScheduleHandler_ExplicitMonths(t *testing.T) {
	router := newCapitalCostRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/capital-cost/schedule?purchase_price=1000&annual_rate=0.15&months=6", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp scheduleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Months, 6)
}

func TestScheduleHandler_MissingParam(t *testing.T) {
	router := newCapitalCostRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/capital-cost/schedule?annual_rate=0.15", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "purchase_price")
}

func TestScheduleHandler_InvalidParams(t *testing.T) {
	router := newCapitalCostRouter()

	cases := []struct {
		name  string
		query string
	}{
		{"unparsable price", "purchase_price=abc&annual_rate=0.15"},
		{"unparsable months", "purchase_price=1000&annual_rate=0.15&months=x"},
		{"negative rate", "purchase_price=1000&annual_rate=-0.15"},
		{"zero months", "purchase_price=1000&annual_rate=0.15&months=0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/capital-cost/schedule?"+tc.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMinimumRateHandler_OK(t *testing.T) {
	router := newCapitalCostRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/capital-cost/minimum-rate?purchase_price=1000&annual_rate=0.15", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp minimumRateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.InDelta(t, 7.6147, resp.MinimumRatePct, 0.001)
	assert.Equal(t, service.DefaultInterestRatePct, resp.SuggestedRatePct)
}

func TestMinimumRateHandler_ZeroRate(t *testing.T) {
	router := newCapitalCostRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/capital-cost/minimum-rate?purchase_price=1000&annual_rate=0", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp minimumRateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Zero(t, resp.MinimumRatePct)
	assert.Equal(t, service.DefaultInterestRatePct, resp.SuggestedRatePct)
}
