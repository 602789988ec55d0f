package services

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"
	"translate-api/internal/repository"
)

// QuotaService enforces admission control against the monthly token quota and
// durably records consumption after a successful translation.
type QuotaService interface {
	EstimateTokens(text string) int
	Check(account *models.Account, estimatedTokens int) error
	Commit(ctx context.Context, account *models.Account, originalText, translatedText string, estimatedTokens int) (int, error)
}

type quotaService struct {
	usageLogRepo     repository.UsageLogRepository
	monthlyUsageRepo repository.MonthlyUsageRepository
	accountRepo      repository.AccountRepository
}

func NewQuotaService(
	usageLogRepo repository.UsageLogRepository,
	monthlyUsageRepo repository.MonthlyUsageRepository,
	accountRepo repository.AccountRepository,
) QuotaService {
	return &quotaService{
		usageLogRepo:     usageLogRepo,
		monthlyUsageRepo: monthlyUsageRepo,
		accountRepo:      accountRepo,
	}
}

// EstimateTokens approximates translation cost as ceil(characters / 1.5),
// never less than 1.
func (s *quotaService) EstimateTokens(text string) int {
	chars := utf8.RuneCountInString(text)
	estimated := int(math.Ceil(float64(chars) / 1.5))
	if estimated < 1 {
		estimated = 1
	}
	return estimated
}

// Check rejects the request when the estimate exceeds the remaining balance.
// Callers must not invoke the translation provider after a rejection.
func (s *quotaService) Check(account *models.Account, estimatedTokens int) error {
	remaining := account.RemainingTokens()
	if estimatedTokens > remaining {
		return &errors.QuotaExceededError{
			Remaining: remaining,
			Required:  estimatedTokens,
		}
	}
	return nil
}

// Commit records one successful translation: it appends the usage log entry,
// bumps the monthly summary row, and advances the account counter. The three
// writes are sequential and independent; a failure part way through leaves the
// earlier writes in place and is not reconciled. Returns the post-commit
// remaining balance.
func (s *quotaService) Commit(ctx context.Context, account *models.Account, originalText, translatedText string, estimatedTokens int) (int, error) {
	entry := &models.UsageLog{
		AccountID:       account.ID,
		Model:           translationModel,
		InputChars:      utf8.RuneCountInString(originalText),
		EstimatedTokens: estimatedTokens,
		OriginalText:    originalText,
		TranslatedText:  translatedText,
	}
	if err := s.usageLogRepo.Create(ctx, entry); err != nil {
		return 0, err
	}

	periodStart := firstOfMonth(account.BillingPeriodStart)
	if err := s.monthlyUsageRepo.Increment(ctx, account.ID, periodStart, estimatedTokens); err != nil {
		return 0, err
	}

	newUsed := account.UsedTokensThisPeriod + estimatedTokens
	if err := s.accountRepo.UpdateUsedTokens(ctx, account.ID, newUsed); err != nil {
		return 0, err
	}

	account.UsedTokensThisPeriod = newUsed
	return account.RemainingTokens(), nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
