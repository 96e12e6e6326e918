package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
	"pricing-agent/service"
)

type QuoteHandler struct {
	service        *service.PricingService
	defaultTaxRate float64
	log            *logrus.Logger
}

func NewQuoteHandler(service *service.PricingService, defaultTaxRate float64, log *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{service: service, defaultTaxRate: defaultTaxRate, log: log}
}

type quoteRequest struct {
	SaleHorizon     string   `json:"sale_horizon"`
	ProfitPlacement string   `json:"profit_placement"`
	PurchasePrice   float64  `json:"purchase_price"`
	TaxRate         *float64 `json:"tax_rate"`
	ProfitRate      float64  `json:"profit_rate"`
	InterestRate    float64  `json:"interest_rate"`
	SellerMargin    *float64 `json:"seller_margin"`
}

type quoteResponse struct {
	SalePrice          float64                 `json:"sale_price"`
	NetProfit          float64                 `json:"net_profit"`
	SellerMarginAmount float64                 `json:"seller_margin_amount"`
	Derivation         []domain.DerivationStep `json:"derivation"`
}

func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	taxRate := h.defaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	margin := service.DefaultSellerMargin
	if req.SellerMargin != nil {
		margin = *req.SellerMargin
	}

	input := domain.PricingInput{
		Horizon:       domain.SaleHorizon(req.SaleHorizon),
		Placement:     domain.ProfitPlacement(req.ProfitPlacement),
		PurchasePrice: req.PurchasePrice,
		TaxRate:       taxRate,
		ProfitRate:    req.ProfitRate,
		InterestRate:  req.InterestRate,
	}

	result, err := h.service.ComputeSalePrice(input)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	marginAmount, err := h.service.SellerMarginAmount(result.NetProfit, margin)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		SalePrice:          result.SalePrice,
		NetProfit:          result.NetProfit,
		SellerMarginAmount: marginAmount,
		Derivation:         result.Derivation,
	}, h.log)
}

func (h *QuoteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/quote", h.Quote).Methods(http.MethodPost)
}
