package models

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog is an append-only record of one translation call. Rows are never
// updated or deleted.
type UsageLog struct {
	ID              uint      `gorm:"primarykey"`
	AccountID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Model           string    `gorm:"type:varchar(64);not null"`
	InputChars      int
	EstimatedTokens int
	CostInCents     int
	OriginalText    string `gorm:"type:text"`
	TranslatedText  string `gorm:"type:text"`
	CreatedAt       time.Time
}

func (UsageLog) TableName() string {
	return "usage_logs"
}
