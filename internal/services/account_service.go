package services

import (
	"context"
	goerrors "errors"
	"time"

	"translate-api/internal/logger"
	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"
	"translate-api/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UsageInfo is the read-only quota projection served by GET /me/usage.
type UsageInfo struct {
	MonthlyQuotaTokens   int    `json:"monthly_quota_tokens"`
	UsedTokensThisPeriod int    `json:"used_tokens_this_period"`
	BillingPeriodStart   string `json:"billing_period_start"`
	RemainingTokens      int    `json:"remaining_tokens"`
}

type AccountService interface {
	EnsureAccount(ctx context.Context, identity *Identity) (*models.Account, error)
	RefreshBillingPeriod(ctx context.Context, account *models.Account) *models.Account
	UsageInfo(account *models.Account) *UsageInfo
}

type accountService struct {
	accountRepo repository.AccountRepository
	now         func() time.Time
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

// EnsureAccount looks up the account for a verified identity, provisioning it
// with default quota fields on first sight.
func (s *accountService) EnsureAccount(ctx context.Context, identity *Identity) (*models.Account, error) {
	account, err := s.accountRepo.GetByAuthUserID(ctx, identity.AuthUserID)
	if err == nil {
		return account, nil
	}
	if !goerrors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	account = &models.Account{
		ID:                 uuid.New(),
		AuthUserID:         identity.AuthUserID,
		Name:               identity.Name,
		MonthlyQuotaTokens: models.DefaultMonthlyQuotaTokens,
		BillingPeriodStart: dateOnly(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// RefreshBillingPeriod resets the usage counter when the calendar month has
// changed since the stored period start. A persistence failure is logged and
// the stale counters are served for this request instead of failing it.
func (s *accountService) RefreshBillingPeriod(ctx context.Context, account *models.Account) *models.Account {
	today := dateOnly(s.now())
	start := account.BillingPeriodStart

	if !start.IsZero() && start.Year() == today.Year() && start.Month() == today.Month() {
		return account
	}

	if err := s.accountRepo.ResetBillingPeriod(ctx, account.ID, today); err != nil {
		logger.Logger.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err,
		}).Warn("billing period rollover failed, serving stale counters")
		return account
	}

	account.UsedTokensThisPeriod = 0
	account.BillingPeriodStart = today
	return account
}

func (s *accountService) UsageInfo(account *models.Account) *UsageInfo {
	return &UsageInfo{
		MonthlyQuotaTokens:   account.MonthlyQuotaTokens,
		UsedTokensThisPeriod: account.UsedTokensThisPeriod,
		BillingPeriodStart:   account.BillingPeriodStart.Format("2006-01-02"),
		RemainingTokens:      account.RemainingTokens(),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
