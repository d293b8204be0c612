package services

import (
	"context"
	"time"

	"school-erp/internal/ledger"
	"school-erp/internal/models"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, draft ledger.AccountDraft) (*models.Account, error)
	ListAccountOptions(ctx context.Context) ([]ledger.AccountOption, error)
	ResolveSelection(ctx context.Context, key string) (*models.Account, error)
}

// TransferServiceInterface defines fund transfer operations
type TransferServiceInterface interface {
	ListTransfers(ctx context.Context, query string, filters models.TransferFilters) ([]models.Transfer, error)
	GetTransfer(ctx context.Context, id string) (*models.Transfer, error)
	CreateTransfer(ctx context.Context, draft ledger.TransferDraft) (*models.Transfer, error)
}

// LedgerServiceInterface builds per-account ledger views
type LedgerServiceInterface interface {
	AccountLedger(ctx context.Context, key string, filter ledger.Filter) (*ledger.View, error)
}

// AccountCacheInterface is the read-through cache in front of the account list
type AccountCacheInterface interface {
	GetAccounts(ctx context.Context) ([]models.Account, bool, error)
	SetAccounts(ctx context.Context, accounts []models.Account) error
	InvalidateAccounts(ctx context.Context) error
}

// EventPublisherInterface publishes domain events to a topic
type EventPublisherInterface interface {
	Publish(ctx context.Context, topic, key string, event any) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account *models.Account)
	LogTransferCreated(ctx context.Context, transfer *models.Transfer, durationMs int64)
	LogTransferPending(ctx context.Context, transfer *models.Transfer, unresolved string)
	LogTransferRejected(ctx context.Context, transfer *models.Transfer, reason string)
	LogBalanceUpdate(ctx context.Context, account *models.Account, oldBalance, newBalance string, transferID string)
	LogEventPublishFailed(ctx context.Context, topic, key, errorMsg string)
}
