package repository

import (
	"context"
	"time"

	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MonthlyUsageRepository interface {
	Increment(ctx context.Context, accountID uuid.UUID, periodStart time.Time, tokens int) error
}

type monthlyUsageRepository struct {
	db *gorm.DB
}

func NewMonthlyUsageRepository(db *gorm.DB) MonthlyUsageRepository {
	return &monthlyUsageRepository{db: db}
}

// Increment adds one request and the given token count to the summary row for
// the period, creating the row on first use in that period.
func (r *monthlyUsageRepository) Increment(ctx context.Context, accountID uuid.UUID, periodStart time.Time, tokens int) error {
	var usage models.MonthlyUsage
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND period_start = ?", accountID, periodStart).
		First(&usage).Error

	if err == gorm.ErrRecordNotFound {
		usage = models.MonthlyUsage{
			AccountID:     accountID,
			PeriodStart:   periodStart,
			TotalTokens:   tokens,
			TotalRequests: 1,
		}
		if err := r.db.WithContext(ctx).Create(&usage).Error; err != nil {
			return errors.Wrap(err, "failed to create monthly usage row")
		}
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "failed to load monthly usage row")
	}

	err = r.db.WithContext(ctx).Model(&usage).
		Updates(map[string]interface{}{
			"total_tokens":   usage.TotalTokens + tokens,
			"total_requests": usage.TotalRequests + 1,
			"updated_at":     time.Now(),
		}).Error

	if err != nil {
		return errors.Wrap(err, "failed to update monthly usage row")
	}

	return nil
}
