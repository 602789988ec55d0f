package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "translate-api/internal/pkg/errors"
)

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithError maps the error taxonomy to HTTP status codes: quota
// exhaustion is a 402 carrying the remaining/required amounts, provider
// failures and everything else are 500s.
func respondWithError(w http.ResponseWriter, err error) {
	var quotaErr *apperrors.QuotaExceededError
	var gatewayErr *apperrors.GatewayError

	switch {
	case errors.As(err, &quotaErr):
		http.Error(w, quotaErr.Error(), http.StatusPaymentRequired)
	case errors.As(err, &gatewayErr):
		http.Error(w, "translation failed: "+gatewayErr.Error(), http.StatusInternalServerError)
	case errors.Is(err, apperrors.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
