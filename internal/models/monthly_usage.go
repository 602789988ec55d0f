package models

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyUsage aggregates token and request totals per account and calendar
// month. The composite unique index enforces exactly one row per
// (account, period start) pair.
type MonthlyUsage struct {
	ID            uint      `gorm:"primarykey"`
	AccountID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_monthly_usage_account_period;not null"`
	PeriodStart   time.Time `gorm:"type:date;uniqueIndex:idx_monthly_usage_account_period;not null"`
	TotalTokens   int
	TotalRequests int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MonthlyUsage) TableName() string {
	return "monthly_usage"
}
