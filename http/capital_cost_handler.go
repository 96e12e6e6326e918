package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
	"pricing-agent/service"
)

type CapitalCostHandler struct {
	service *service.AmortizationService
	log     *logrus.Logger
}

func NewCapitalCostHandler(service *service.AmortizationService, log *logrus.Logger) *CapitalCostHandler {
	return &CapitalCostHandler{service: service, log: log}
}

type scheduleResponse struct {
	Months           []domain.AmortizationStep `json:"months"`
	BreakEvenRatePct float64                   `json:"break_even_rate_pct"`
}

type minimumRateResponse struct {
	MinimumRatePct   float64 `json:"minimum_rate_pct"`
	SuggestedRatePct float64 `json:"suggested_rate_pct"`
}

func (h *CapitalCostHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	purchasePrice, annualRate, ok := h.parseRates(w, r)
	if !ok {
		return
	}

	totalMonths := service.AnnualMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}
		totalMonths = parsed
	}

	steps, err := h.service.Schedule(purchasePrice, annualRate, totalMonths)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	rate, err := h.service.MinimumBreakEvenRate(purchasePrice, annualRate, totalMonths)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	writeJSON(w, http.StatusOK, scheduleResponse{
		Months:           steps,
		BreakEvenRatePct: rate,
	}, h.log)
}

func (h *CapitalCostHandler) MinimumRate(w http.ResponseWriter, r *http.Request) {
	purchasePrice, annualRate, ok := h.parseRates(w, r)
	if !ok {
		return
	}

	minimum, suggested, err := h.service.SuggestedInterestRate(purchasePrice, annualRate)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	writeJSON(w, http.StatusOK, minimumRateResponse{
		MinimumRatePct:   minimum,
		SuggestedRatePct: suggested,
	}, h.log)
}

func (h *CapitalCostHandler) parseRates(w http.ResponseWriter, r *http.Request) (purchasePrice, annualRate float64, ok bool) {
	purchasePrice, err := parseFloatParam(r, "purchase_price")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	annualRate, err = parseFloatParam(r, "annual_rate")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return purchasePrice, annualRate, true
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return value, nil
}

func (h *CapitalCostHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/schedule", h.Schedule).Methods(http.MethodGet)
	router.HandleFunc("/minimum-rate", h.MinimumRate).Methods(http.MethodGet)
}
