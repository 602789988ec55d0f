package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"translate-api/internal/services"
)

// TranslateHandler handles translation requests: billing-period rollover,
// quota pre-check, the provider call, and the usage commit, in that order.
type TranslateHandler struct {
	accountService     services.AccountService
	quotaService       services.QuotaService
	translationService services.TranslationService
}

func NewTranslateHandler(
	accountService services.AccountService,
	quotaService services.QuotaService,
	translationService services.TranslationService,
) *TranslateHandler {
	return &TranslateHandler{
		accountService:     accountService,
		quotaService:       quotaService,
		translationService: translationService,
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	TranslatedText  string `json:"translated_text"`
	EstimatedTokens int    `json:"estimated_tokens"`
	RemainingTokens int    `json:"remaining_tokens"`
}

func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, ok := services.AccountFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text must be a non-empty string", http.StatusBadRequest)
		return
	}

	targetLang := req.TargetLang
	if targetLang == "" {
		targetLang = services.DefaultTargetLang
	}

	account = h.accountService.RefreshBillingPeriod(ctx, account)

	estimatedTokens := h.quotaService.EstimateTokens(req.Text)
	if err := h.quotaService.Check(account, estimatedTokens); err != nil {
		respondWithError(w, err)
		return
	}

	translated, err := h.translationService.Translate(ctx, req.Text, targetLang)
	if err != nil {
		respondWithError(w, err)
		return
	}

	remaining, err := h.quotaService.Commit(ctx, account, req.Text, translated, estimatedTokens)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, translateResponse{
		TranslatedText:  translated,
		EstimatedTokens: estimatedTokens,
		RemainingTokens: remaining,
	})
}
