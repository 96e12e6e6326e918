package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
	"pricing-agent/service"
)

type SensitivityHandler struct {
	service        *service.SensitivityService
	defaultTaxRate float64
	log            *logrus.Logger
}

func NewSensitivityHandler(service *service.SensitivityService, defaultTaxRate float64, log *logrus.Logger) *SensitivityHandler {
	return &SensitivityHandler{service: service, defaultTaxRate: defaultTaxRate, log: log}
}

type sensitivityRequest struct {
	quoteRequest
	ProfitDelta   *int `json:"profit_delta"`
	InterestDelta *int `json:"interest_delta"`
}

func (h *SensitivityHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req sensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	taxRate := h.defaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	profitDelta := service.DefaultSweepDelta
	if req.ProfitDelta != nil {
		profitDelta = *req.ProfitDelta
	}
	interestDelta := service.DefaultSweepDelta
	if req.InterestDelta != nil {
		interestDelta = *req.InterestDelta
	}

	input := domain.SensitivityInput{
		PricingInput: domain.PricingInput{
			Horizon:       domain.SaleHorizon(req.SaleHorizon),
			Placement:     domain.ProfitPlacement(req.ProfitPlacement),
			PurchasePrice: req.PurchasePrice,
			TaxRate:       taxRate,
			ProfitRate:    req.ProfitRate,
			InterestRate:  req.InterestRate,
		},
		ProfitDelta:   profitDelta,
		InterestDelta: interestDelta,
	}

	result, err := h.service.Sweep(input)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	writeJSON(w, http.StatusOK, result, h.log)
}

func (h *SensitivityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sensitivity", h.Sweep).Methods(http.MethodPost)
}
