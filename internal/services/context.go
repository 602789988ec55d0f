package services

import (
	"context"

	"translate-api/internal/models"
)

type contextKey string

const AccountContextKey contextKey = "account"

// Helper function to add the authenticated account to context
func WithAccountContext(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, AccountContextKey, account)
}

// Helper function to get the authenticated account from context
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountContextKey).(*models.Account)
	return account, ok
}
