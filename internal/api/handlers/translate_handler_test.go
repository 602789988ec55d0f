package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"
	"translate-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccountService struct {
	refreshed *models.Account
}

func (s *stubAccountService) EnsureAccount(ctx context.Context, identity *services.Identity) (*models.Account, error) {
	return nil, nil
}

func (s *stubAccountService) RefreshBillingPeriod(ctx context.Context, account *models.Account) *models.Account {
	if s.refreshed != nil {
		return s.refreshed
	}
	return account
}

func (s *stubAccountService) UsageInfo(account *models.Account) *services.UsageInfo {
	return &services.UsageInfo{
		MonthlyQuotaTokens:   account.MonthlyQuotaTokens,
		UsedTokensThisPeriod: account.UsedTokensThisPeriod,
		BillingPeriodStart:   account.BillingPeriodStart.Format("2006-01-02"),
		RemainingTokens:      account.RemainingTokens(),
	}
}

type stubQuotaService struct {
	estimate        int
	checkErr        error
	commitRemaining int
	commitErr       error
	commitCalls     int
}

func (s *stubQuotaService) EstimateTokens(text string) int {
	return s.estimate
}

func (s *stubQuotaService) Check(account *models.Account, estimatedTokens int) error {
	return s.checkErr
}

func (s *stubQuotaService) Commit(ctx context.Context, account *models.Account, originalText, translatedText string, estimatedTokens int) (int, error) {
	s.commitCalls++
	return s.commitRemaining, s.commitErr
}

type stubTranslator struct {
	calls      int
	lastText   string
	lastTarget string
	result     string
	err        error
}

func (s *stubTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	s.calls++
	s.lastText = text
	s.lastTarget = targetLang
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func handlerAccount() *models.Account {
	return &models.Account{
		ID:                   uuid.New(),
		AuthUserID:           "auth-123",
		Name:                 "Jo",
		MonthlyQuotaTokens:   50000,
		UsedTokensThisPeriod: 100,
		BillingPeriodStart:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func translateRequestWithAccount(body string, account *models.Account) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(body))
	if account != nil {
		req = req.WithContext(services.WithAccountContext(req.Context(), account))
	}
	return req
}

func TestTranslateRequiresAccountInContext(t *testing.T) {
	handler := NewTranslateHandler(&stubAccountService{}, &stubQuotaService{}, &stubTranslator{})

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"hi"}`, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTranslateRejectsInvalidBody(t *testing.T) {
	handler := NewTranslateHandler(&stubAccountService{}, &stubQuotaService{}, &stubTranslator{})

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{`, handlerAccount()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateRejectsEmptyText(t *testing.T) {
	translator := &stubTranslator{}
	handler := NewTranslateHandler(&stubAccountService{}, &stubQuotaService{}, translator)

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"   ","target_lang":"fr"}`, handlerAccount()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, translator.calls)
}

func TestTranslateQuotaExceededNeverCallsProvider(t *testing.T) {
	translator := &stubTranslator{}
	quota := &stubQuotaService{
		estimate: 100,
		checkErr: &errors.QuotaExceededError{Remaining: 50, Required: 100},
	}
	handler := NewTranslateHandler(&stubAccountService{}, quota, translator)

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"a long text","target_lang":"fr"}`, handlerAccount()))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "50 tokens remaining, 100 required")
	assert.Equal(t, 0, translator.calls)
	assert.Equal(t, 0, quota.commitCalls)
}

func TestTranslateSuccess(t *testing.T) {
	translator := &stubTranslator{result: "bonjour"}
	quota := &stubQuotaService{estimate: 8, commitRemaining: 49892}
	handler := NewTranslateHandler(&stubAccountService{}, quota, translator)

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"good morning","target_lang":"French"}`, handlerAccount()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, translator.calls)
	assert.Equal(t, "good morning", translator.lastText)
	assert.Equal(t, "French", translator.lastTarget)
	assert.Equal(t, 1, quota.commitCalls)

	var resp struct {
		TranslatedText  string `json:"translated_text"`
		EstimatedTokens int    `json:"estimated_tokens"`
		RemainingTokens int    `json:"remaining_tokens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bonjour", resp.TranslatedText)
	assert.Equal(t, 8, resp.EstimatedTokens)
	assert.Equal(t, 49892, resp.RemainingTokens)
}

func TestTranslateDefaultsTargetLanguage(t *testing.T) {
	translator := &stubTranslator{result: "hello"}
	handler := NewTranslateHandler(&stubAccountService{}, &stubQuotaService{estimate: 2}, translator)

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"你好"}`, handlerAccount()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.DefaultTargetLang, translator.lastTarget)
}

func TestTranslateGatewayFailureIsServerError(t *testing.T) {
	translator := &stubTranslator{err: &errors.GatewayError{Message: "provider unreachable"}}
	quota := &stubQuotaService{estimate: 4}
	handler := NewTranslateHandler(&stubAccountService{}, quota, translator)

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"hello","target_lang":"fr"}`, handlerAccount()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "translation failed")
	assert.Equal(t, 0, quota.commitCalls)
}

func TestTranslateCommitFailureIsServerError(t *testing.T) {
	translator := &stubTranslator{result: "bonjour"}
	quota := &stubQuotaService{estimate: 4, commitErr: errors.ErrStorage}
	handler := NewTranslateHandler(&stubAccountService{}, quota, translator)

	rec := httptest.NewRecorder()
	handler.Translate(rec, translateRequestWithAccount(`{"text":"hello","target_lang":"fr"}`, handlerAccount()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
