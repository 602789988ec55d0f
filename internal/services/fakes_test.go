package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"translate-api/internal/models"
	"translate-api/internal/pkg/errors"

	"github.com/google/uuid"
)

type fakeAccountRepo struct {
	accounts map[string]*models.Account
	created  []*models.Account

	createErr error
	getErr    error
	resetErr  error
	updateErr error

	resetCalls  int
	lastReset   time.Time
	usedUpdates []int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*models.Account)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, account)
	f.accounts[account.AuthUserID] = account
	return nil
}

func (f *fakeAccountRepo) GetByAuthUserID(ctx context.Context, authUserID string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	account, ok := f.accounts[authUserID]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) ResetBillingPeriod(ctx context.Context, id uuid.UUID, periodStart time.Time) error {
	f.resetCalls++
	if f.resetErr != nil {
		return f.resetErr
	}
	f.lastReset = periodStart
	return nil
}

func (f *fakeAccountRepo) UpdateUsedTokens(ctx context.Context, id uuid.UUID, usedTokens int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.usedUpdates = append(f.usedUpdates, usedTokens)
	return nil
}

type fakeUsageLogRepo struct {
	entries []*models.UsageLog
	err     error
}

func (f *fakeUsageLogRepo) Create(ctx context.Context, entry *models.UsageLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

type monthlyIncrement struct {
	accountID   uuid.UUID
	periodStart time.Time
	tokens      int
}

type fakeMonthlyUsageRepo struct {
	increments []monthlyIncrement
	err        error
}

func (f *fakeMonthlyUsageRepo) Increment(ctx context.Context, accountID uuid.UUID, periodStart time.Time, tokens int) error {
	if f.err != nil {
		return f.err
	}
	f.increments = append(f.increments, monthlyIncrement{accountID, periodStart, tokens})
	return nil
}

type fakeCache struct {
	values map[string]string
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", fmt.Errorf("cache miss")
	}
	return value, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(jsonData)
	f.sets++
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func testAccount(quota, used int, periodStart time.Time) *models.Account {
	return &models.Account{
		ID:                   uuid.New(),
		AuthUserID:           uuid.NewString(),
		Name:                 "Test User",
		MonthlyQuotaTokens:   quota,
		UsedTokensThisPeriod: used,
		BillingPeriodStart:   periodStart,
	}
}
