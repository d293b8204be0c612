package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"school-erp/internal/events"
	"school-erp/internal/ledger"
	"school-erp/internal/models"
	"school-erp/internal/repositories"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("an account with this identifier already exists")
	ErrTransferNotFound     = errors.New("transfer not found")
)

// accountService implements AccountServiceInterface interface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	cache       AccountCacheInterface
	publisher   EventPublisherInterface
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
	topic       string
	logger      *slog.Logger
}

// NewAccountService creates an account service. topic is where account_created events go.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	cache AccountCacheInterface,
	publisher EventPublisherInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	topic string,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		cache:       cache,
		publisher:   publisher,
		metrics:     metrics,
		auditLogger: auditLogger,
		topic:       topic,
		logger:      logger,
	}
}

// ListAccounts returns every account, newest first, served from the cache when warm
func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	cached, ok, err := s.cache.GetAccounts(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "account cache read failed", "error", err)
	}
	if ok {
		s.metrics.IncrementCounter("account_cache", map[string]string{"result": "hit"})
		return cached, nil
	}
	s.metrics.IncrementCounter("account_cache", map[string]string{"result": "miss"})

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if err := s.cache.SetAccounts(ctx, accounts); err != nil {
		s.logger.WarnContext(ctx, "account cache write failed", "error", err)
	}

	return accounts, nil
}

// CreateAccount validates the add-account form and stores the account
func (s *accountService) CreateAccount(ctx context.Context, draft ledger.AccountDraft) (*models.Account, error) {
	balance, err := draft.Validate()
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:          strings.TrimSpace(draft.Name),
		Bank:          strings.TrimSpace(draft.Bank),
		AccountNumber: strings.TrimSpace(draft.AccountNumber),
		Balance:       balance,
	}
	if id := strings.TrimSpace(draft.AccountID); id != "" {
		account.AccountID = &id
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrAccountIDExists) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.cache.InvalidateAccounts(ctx); err != nil {
		s.logger.WarnContext(ctx, "account cache invalidation failed", "error", err)
	}

	s.publish(ctx, account.ObjectID(), events.NewAccountEvent(account))
	s.metrics.IncrementCounter("accounts_created", nil)
	s.auditLogger.LogAccountCreated(ctx, account)

	return account, nil
}

// ListAccountOptions returns the account picker entries
func (s *accountService) ListAccountOptions(ctx context.Context) ([]ledger.AccountOption, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ListAccountOptions(accounts), nil
}

// ResolveSelection finds the account a selection key addresses
func (s *accountService) ResolveSelection(ctx context.Context, key string) (*models.Account, error) {
	ref, err := ledger.ParseSelectionKey(key)
	if err != nil {
		return nil, err
	}

	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	account, err := ledger.ResolveAccount(accounts, ref)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (s *accountService) publish(ctx context.Context, key string, event any) {
	status := "success"
	if err := s.publisher.Publish(ctx, s.topic, key, event); err != nil {
		status = "failed"
		s.auditLogger.LogEventPublishFailed(ctx, s.topic, key, err.Error())
	}
	s.metrics.IncrementCounter("events_published", map[string]string{"topic": s.topic, "status": status})
}
