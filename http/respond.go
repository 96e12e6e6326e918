package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
)

// writeJSON encodes v into a buffer first so no headers are written if
// encoding fails.
func writeJSON(w http.ResponseWriter, status int, v interface{}, log *logrus.Logger) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

// writeServiceError maps the two calculation error kinds onto statuses:
// invalid single-field input is a 400, an infeasible rate combination a 422.
// Anything else is unexpected and reported as a 500.
func writeServiceError(w http.ResponseWriter, err error, log *logrus.Logger) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		http.Error(w, invalid.Error(), http.StatusBadRequest)
		return
	}

	var infeasible *domain.InfeasiblePricingError
	if errors.As(err, &infeasible) {
		http.Error(w, infeasible.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.WithError(err).Error("unexpected calculation error")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
