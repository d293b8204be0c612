package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"school-erp/internal/events"
	"school-erp/internal/ledger"
	"school-erp/internal/models"
	"school-erp/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const rejectReasonInsufficientFunds = "insufficient funds"

// transferService implements TransferServiceInterface interface
type transferService struct {
	accountRepo  repositories.AccountRepositoryInterface
	transferRepo repositories.TransferRepositoryInterface
	cache        AccountCacheInterface
	publisher    EventPublisherInterface
	metrics      MetricsRecorderInterface
	auditLogger  AuditLoggerInterface
	topic        string
	logger       *slog.Logger
}

// NewTransferService creates a transfer service. topic is where transfer_created events go.
func NewTransferService(
	accountRepo repositories.AccountRepositoryInterface,
	transferRepo repositories.TransferRepositoryInterface,
	cache AccountCacheInterface,
	publisher EventPublisherInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	topic string,
	logger *slog.Logger,
) TransferServiceInterface {
	return &transferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		auditLogger:  auditLogger,
		topic:        topic,
		logger:       logger,
	}
}

// ListTransfers returns transfers newest first, narrowed by a free-text query
func (s *transferService) ListTransfers(ctx context.Context, query string, filters models.TransferFilters) ([]models.Transfer, error) {
	transfers, err := s.transferRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return ledger.SearchTransfers(transfers, query), nil
}

// GetTransfer looks a transfer up by database id or by transfer number
func (s *transferService) GetTransfer(ctx context.Context, id string) (*models.Transfer, error) {
	var (
		transfer *models.Transfer
		err      error
	)

	if parsed, parseErr := uuid.Parse(id); parseErr == nil {
		transfer, err = s.transferRepo.FindByID(ctx, parsed)
	} else {
		transfer, err = s.transferRepo.FindByTransferID(ctx, strings.TrimSpace(id))
	}

	if err != nil {
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return transfer, nil
}

// CreateTransfer validates the draft, records the transfer and settles it when
// both sides resolve to known accounts. Unresolvable legacy names leave the
// transfer Pending; a short source balance rejects it.
func (s *transferService) CreateTransfer(ctx context.Context, draft ledger.TransferDraft) (*models.Transfer, error) {
	start := time.Now()

	amount, err := draft.Validate()
	if err != nil {
		return nil, err
	}

	date, err := draft.Date()
	if err != nil {
		return nil, err
	}

	fromSide, fromAccount, err := s.resolveEndpoint(ctx, draft.From)
	if err != nil {
		return nil, err
	}

	toSide, toAccount, err := s.resolveEndpoint(ctx, draft.To)
	if err != nil {
		return nil, err
	}

	if fromAccount != nil && toAccount != nil && fromAccount.ID == toAccount.ID {
		return nil, ledger.ErrSameAccount
	}
	if fromSide.AccountID != "" && fromSide.AccountID == toSide.AccountID {
		return nil, ledger.ErrSameAccount
	}

	transfer := &models.Transfer{
		FromAccountID: fromSide.AccountID,
		FromAccount:   fromSide.Name,
		ToAccountID:   toSide.AccountID,
		ToAccount:     toSide.Name,
		Amount:        amount,
		Date:          date,
		Reference:     strings.TrimSpace(draft.Reference),
		ApprovedBy:    strings.TrimSpace(draft.ApprovedBy),
		Notes:         strings.TrimSpace(draft.Notes),
		Status:        models.TransferStatusPending,
	}

	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	switch {
	case fromAccount == nil:
		s.auditLogger.LogTransferPending(ctx, transfer, fromSide.Name)
	case toAccount == nil:
		s.auditLogger.LogTransferPending(ctx, transfer, toSide.Name)
	default:
		if err := s.settle(ctx, transfer, fromAccount, toAccount); err != nil {
			s.metrics.IncrementCounter("transfers_total", map[string]string{"status": "failed"})
			return nil, err
		}
	}

	duration := time.Since(start)
	s.publish(ctx, transfer.TransferID, events.NewTransferEvent(transfer))
	s.metrics.IncrementCounter("transfers_total", map[string]string{"status": strings.ToLower(transfer.Status)})
	s.metrics.RecordProcessingTime("transfer_duration", duration)
	s.metrics.RecordGauge("transfer_amount", amount.InexactFloat64(), nil)
	s.auditLogger.LogTransferCreated(ctx, transfer, duration.Milliseconds())

	return transfer, nil
}

// resolveEndpoint looks one transfer side up. An identifier that matches no
// account is an error; a name that matches no account is kept as a legacy
// reference and returns a nil account.
func (s *transferService) resolveEndpoint(ctx context.Context, side ledger.Endpoint) (ledger.Endpoint, *models.Account, error) {
	side.AccountID = strings.TrimSpace(side.AccountID)
	side.Name = strings.TrimSpace(side.Name)

	if side.AccountID != "" {
		account, err := s.accountRepo.GetByAccountID(ctx, side.AccountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return side, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, side.AccountID)
			}
			return side, nil, fmt.Errorf("failed to resolve account %s: %w", side.AccountID, err)
		}
		if side.Name == "" {
			side.Name = account.DisplayName()
		}
		return side, account, nil
	}

	account, err := s.accountRepo.FindByName(ctx, side.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return side, nil, nil
		}
		return side, nil, fmt.Errorf("failed to resolve account %q: %w", side.Name, err)
	}

	side.AccountID = account.StableID()
	side.Name = account.Name
	return side, account, nil
}

// settle moves the funds and records the outcome on the transfer. A completed
// transfer is written inside the balance transaction; a rejection is written
// afterwards since no funds moved.
func (s *transferService) settle(ctx context.Context, transfer *models.Transfer, from, to *models.Account) error {
	err := s.accountRepo.ExecuteAtomicTransfer(ctx, from.ID, to.ID, transfer)

	switch {
	case err == nil:
		s.logBalanceMove(ctx, transfer, from, transfer.Amount.Neg())
		s.logBalanceMove(ctx, transfer, to, transfer.Amount)

		if err := s.cache.InvalidateAccounts(ctx); err != nil {
			s.logger.WarnContext(ctx, "account cache invalidation failed", "error", err)
		}
		return nil
	case errors.Is(err, repositories.ErrInsufficientFunds):
		transfer.Reject(rejectReasonInsufficientFunds)
		if err := s.transferRepo.Update(ctx, transfer); err != nil {
			return fmt.Errorf("failed to update transfer status: %w", err)
		}
		s.auditLogger.LogTransferRejected(ctx, transfer, rejectReasonInsufficientFunds)
		return nil
	default:
		transfer.Reject(err.Error())
		if updateErr := s.transferRepo.Update(ctx, transfer); updateErr != nil {
			s.logger.ErrorContext(ctx, "failed to update transfer status", "error", updateErr, "transfer_id", transfer.TransferID)
		}
		s.auditLogger.LogTransferRejected(ctx, transfer, err.Error())
		return fmt.Errorf("failed to settle transfer: %w", err)
	}
}

func (s *transferService) logBalanceMove(ctx context.Context, transfer *models.Transfer, account *models.Account, delta decimal.Decimal) {
	s.auditLogger.LogBalanceUpdate(ctx, account,
		account.Balance.String(),
		account.Balance.Add(delta).String(),
		transfer.TransferID,
	)
}

func (s *transferService) publish(ctx context.Context, key string, event any) {
	status := "success"
	if err := s.publisher.Publish(ctx, s.topic, key, event); err != nil {
		status = "failed"
		s.auditLogger.LogEventPublishFailed(ctx, s.topic, key, err.Error())
	}
	s.metrics.IncrementCounter("events_published", map[string]string{"topic": s.topic, "status": status})
}
