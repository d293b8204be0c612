package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"school-erp/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountIDExists   = errors.New("account identifier already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAccountIDExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by its database ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByAccountID retrieves an account by its stable identifier
func (r *accountRepository) GetByAccountID(ctx context.Context, accountID string) (*models.Account, error) {
	if accountID == "" {
		return nil, ErrAccountNotFound
	}

	var account models.Account
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by identifier: %w", err)
	}
	return &account, nil
}

// FindByName retrieves the oldest account whose name matches, ignoring case
func (r *accountRepository) FindByName(ctx context.Context, name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAccountNotFound
	}

	// SQL LOWER folds only ASCII under sqlite; compare in Go instead
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to find account by name: %w", err)
	}

	for i := range accounts {
		if strings.EqualFold(accounts[i].Name, name) {
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// List retrieves all accounts, newest first
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ExecuteAtomicTransfer debits fromID, credits toID and records transfer as
// completed in one database transaction. On success transfer carries the
// completed status; on any error nothing is written and transfer is unchanged.
func (r *accountRepository) ExecuteAtomicTransfer(ctx context.Context, fromID, toID uuid.UUID, transfer *models.Transfer) error {
	if transfer == nil {
		return errors.New("transfer cannot be nil")
	}

	amount := transfer.Amount
	if !amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive")
	}

	settled := *transfer
	settled.Complete()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fromAcct, err := lockAccount(tx, fromID)
		if err != nil {
			return fmt.Errorf("failed to lock source account: %w", err)
		}

		if fromAcct.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		if err := tx.Model(fromAcct).Update("balance", fromAcct.Balance.Sub(amount)).Error; err != nil {
			return fmt.Errorf("failed to debit source account: %w", err)
		}

		toAcct, err := lockAccount(tx, toID)
		if err != nil {
			return fmt.Errorf("failed to lock destination account: %w", err)
		}

		if err := tx.Model(toAcct).Update("balance", toAcct.Balance.Add(amount)).Error; err != nil {
			return fmt.Errorf("failed to credit destination account: %w", err)
		}

		if err := tx.Save(&settled).Error; err != nil {
			return fmt.Errorf("failed to record transfer completion: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	*transfer = settled
	return nil
}

// lockAccount reads an account inside tx, taking a row lock where the dialect supports it
func lockAccount(tx *gorm.DB, id uuid.UUID) (*models.Account, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var account models.Account
	if err := query.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
