package repository

import (
	"context"

	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"

	"gorm.io/gorm"
)

type UsageLogRepository interface {
	Create(ctx context.Context, entry *models.UsageLog) error
}

type usageLogRepository struct {
	db *gorm.DB
}

func NewUsageLogRepository(db *gorm.DB) UsageLogRepository {
	return &usageLogRepository{db: db}
}

func (r *usageLogRepository) Create(ctx context.Context, entry *models.UsageLog) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to create usage log entry")
	}
	return nil
}
