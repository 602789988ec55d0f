package repository

import (
	"context"
	"time"

	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByAuthUserID(ctx context.Context, authUserID string) (*models.Account, error)
	ResetBillingPeriod(ctx context.Context, id uuid.UUID, periodStart time.Time) error
	UpdateUsedTokens(ctx context.Context, id uuid.UUID, usedTokens int) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	result := r.db.WithContext(ctx).Create(account)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to create account")
	}
	return nil
}

func (r *accountRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*models.Account, error) {
	var account models.Account
	result := r.db.WithContext(ctx).First(&account, "auth_user_id = ?", authUserID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get account by auth user ID")
	}

	return &account, nil
}

func (r *accountRepository) ResetBillingPeriod(ctx context.Context, id uuid.UUID, periodStart time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"used_tokens_this_period": 0,
			"billing_period_start":    periodStart,
			"updated_at":              time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reset billing period")
	}

	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}

	return nil
}

func (r *accountRepository) UpdateUsedTokens(ctx context.Context, id uuid.UUID, usedTokens int) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"used_tokens_this_period": usedTokens,
			"updated_at":              time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update used tokens")
	}

	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}

	return nil
}
