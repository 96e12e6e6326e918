package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-agent/domain"
	"pricing-agent/repository"
	"pricing-agent/service"
)

func newSensitivityRouter() *mux.Router {
	pricingService := service.NewPricingService(repository.NewQuoteRepositoryMemory(), newTestLogger())
	sensitivityService := service.NewSensitivityService(pricingService, newTestLogger())
	handler := NewSensitivityHandler(sensitivityService, domain.EffectiveTaxRate, newTestLogger())

	router := mux.NewRouter()
	handler.RegisterRoutes(router.PathPrefix("/pricing").Subrouter())
	return router
}

func TestSensitivityHandler_Annual(t *testing.T) {
	router := newSensitivityRouter()

	body := []byte(`{
		"sale_horizon": "annual",
		"profit_placement": "at_cost",
		"purchase_price": 100,
		"profit_rate": 0.20
	}`)

	req := httptest.NewRequest(http.MethodPost, "/pricing/sensitivity", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.SensitivityResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, domain.HorizonAnnual, resp.Horizon)
	assert.Nil(t, resp.Monthly)
	require.Len(t, resp.Annual, 7) // default delta of 3 on each side
	assert.Equal(t, 17, resp.Annual[0].ProfitRatePct)
}

func TestSensitivityHandler_Monthly(t *testing.T) {
	router := newSensitivityRouter()

	body := []byte(`{
		"sale_horizon": "monthly",
		"profit_placement": "at_sale",
		"purchase_price": 100,
		"profit_rate": 0.20,
		"interest_rate": 0.12,
		"profit_delta": 2,
		"interest_delta": 1
	}`)

	req := httptest.NewRequest(http.MethodPost, "/pricing/sensitivity", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.SensitivityResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, domain.HorizonMonthly, resp.Horizon)
	require.NotNil(t, resp.Monthly)
	assert.Equal(t, []int{18, 19, 20, 21, 22}, resp.Monthly.ProfitRatesPct)
	assert.Equal(t, []int{11, 12, 13}, resp.Monthly.InterestRatesPct)
	require.Len(t, resp.Monthly.SalePrices, 5)
	require.Len(t, resp.Monthly.SalePrices[0], 3)
	assert.NotNil(t, resp.Monthly.SalePrices[0][0])
}

func TestSensitivityHandler_BadDelta(t *testing.T) {
	router := newSensitivityRouter()

	body := []byte(`{
		"sale_horizon": "annual",
		"profit_placement": "at_cost",
		"purchase_price": 100,
		"profit_rate": 0.20,
		"profit_delta": 0
	}`)

	req := httptest.NewRequest(http.MethodPost, "/pricing/sensitivity", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "profit_delta")
}

func TestSensitivityHandler_BadBody(t *testing.T) {
	router := newSensitivityRouter()

	req := httptest.NewRequest(http.MethodPost, "/pricing/sensitivity",
		bytes.NewBuffer([]byte(`not json`)))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
