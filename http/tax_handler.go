package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
)

// TaxHandler serves the static breakdown of the effective tax rate.
type TaxHandler struct {
	log *logrus.Logger
}

func NewTaxHandler(log *logrus.Logger) *TaxHandler {
	return &TaxHandler{log: log}
}

func (h *TaxHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.EffectiveTaxBreakdown(), h.log)
}

func (h *TaxHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/breakdown", h.Breakdown).Methods(http.MethodGet)
}
