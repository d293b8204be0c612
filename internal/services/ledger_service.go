package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"school-erp/internal/ledger"
	"school-erp/internal/repositories"
)

// ledgerService implements LedgerServiceInterface interface
type ledgerService struct {
	accountService AccountServiceInterface
	transferRepo   repositories.TransferRepositoryInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewLedgerService creates a ledger service
func NewLedgerService(
	accountService AccountServiceInterface,
	transferRepo repositories.TransferRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		accountService: accountService,
		transferRepo:   transferRepo,
		metrics:        metrics,
		logger:         logger,
	}
}

// AccountLedger resolves the selection key and derives the account's view
func (s *ledgerService) AccountLedger(ctx context.Context, key string, filter ledger.Filter) (*ledger.View, error) {
	start := time.Now()

	account, err := s.accountService.ResolveSelection(ctx, key)
	if err != nil {
		return nil, err
	}

	transfers, err := s.transferRepo.ListTouchingAccount(ctx, *account)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfers for account: %w", err)
	}

	view := ledger.BuildView(*account, transfers, filter)

	s.metrics.IncrementCounter("ledger_views", map[string]string{"direction": string(filter)})
	s.metrics.RecordProcessingTime("ledger_view", time.Since(start))
	s.metrics.RecordGauge("ledger_rows", float64(len(view.Rows)), nil)
	s.logger.DebugContext(ctx, "ledger view built",
		"account", ledger.SelectionKey(*account),
		"direction", filter,
		"rows", len(view.Rows),
	)

	return &view, nil
}
