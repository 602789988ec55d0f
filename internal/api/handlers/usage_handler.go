package handlers

import (
	"net/http"

	"translate-api/internal/services"
)

type UsageHandler struct {
	accountService services.AccountService
}

func NewUsageHandler(accountService services.AccountService) *UsageHandler {
	return &UsageHandler{
		accountService: accountService,
	}
}

// GetUsage returns the account's current quota fields. No rollover happens on
// this path; a stale billing_period_start is served until the next translate.
func (h *UsageHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	account, ok := services.AccountFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	respondWithJSON(w, http.StatusOK, h.accountService.UsageInfo(account))
}
