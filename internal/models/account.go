package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMonthlyQuotaTokens is the token allowance granted to newly
// provisioned accounts.
const DefaultMonthlyQuotaTokens = 50000

// Account tracks one user's monthly token quota and consumption. Accounts are
// auto-provisioned the first time an identity is verified and are never
// deleted. The unique index on AuthUserID is what keeps concurrent first
// requests from the same identity from creating duplicates.
type Account struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthUserID           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"auth_user_id"`
	Name                 string    `gorm:"type:varchar(255)" json:"name"`
	MonthlyQuotaTokens   int       `gorm:"not null;default:50000" json:"monthly_quota_tokens"`
	UsedTokensThisPeriod int       `gorm:"not null;default:0" json:"used_tokens_this_period"`
	BillingPeriodStart   time.Time `gorm:"type:date;not null" json:"billing_period_start"`
	CreatedAt            time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return nil
}

func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}

func (Account) TableName() string {
	return "accounts"
}

// RemainingTokens is the balance the quota pre-check is evaluated against.
func (a *Account) RemainingTokens() int {
	return a.MonthlyQuotaTokens - a.UsedTokensThisPeriod
}
