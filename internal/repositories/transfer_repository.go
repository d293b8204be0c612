package repositories

import (
	"context"
	"errors"
	"fmt"

	"school-erp/internal/ledger"
	"school-erp/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransferNotFound = errors.New("transfer not found")
	ErrTransferIDExists = errors.New("transfer identifier already exists")
)

// transferRepository implements TransferRepositoryInterface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{
		db: db,
	}
}

// Create creates a new transfer
func (r *transferRepository) Create(ctx context.Context, transfer *models.Transfer) error {
	if transfer == nil {
		return errors.New("transfer cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(transfer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrTransferIDExists
		}
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

// Update updates an existing transfer
func (r *transferRepository) Update(ctx context.Context, transfer *models.Transfer) error {
	if transfer == nil {
		return errors.New("transfer cannot be nil")
	}

	if err := r.db.WithContext(ctx).Save(transfer).Error; err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}

	return nil
}

// FindByID retrieves a transfer by database ID
func (r *transferRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to find transfer by ID: %w", err)
	}

	return &transfer, nil
}

// FindByTransferID retrieves a transfer by its human-facing transfer number
func (r *transferRepository) FindByTransferID(ctx context.Context, transferID string) (*models.Transfer, error) {
	var transfer models.Transfer

	if err := r.db.WithContext(ctx).Where("transfer_id = ?", transferID).First(&transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to find transfer by transfer ID: %w", err)
	}

	return &transfer, nil
}

// List retrieves transfers matching filters, newest first
func (r *transferRepository) List(ctx context.Context, filters models.TransferFilters) ([]models.Transfer, error) {
	transfers := make([]models.Transfer, 0)

	query := r.db.WithContext(ctx).Model(&models.Transfer{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Order("date DESC").Order("created_at DESC").Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return transfers, nil
}

// ListTouchingAccount retrieves every transfer that references account on either side.
// SQL narrows to identifier matches plus every side that has no identifier;
// name matching happens in Go so it folds case the same way ledger derivation does.
func (r *transferRepository) ListTouchingAccount(ctx context.Context, account models.Account) ([]models.Transfer, error) {
	transfers := make([]models.Transfer, 0)

	stableID := account.StableID()
	if account.Name == "" && stableID == "" {
		return transfers, nil
	}

	db := r.db.WithContext(ctx)
	cond := db.Where("1 = 0")

	if stableID != "" {
		cond = cond.Or("from_account_id = ?", stableID).Or("to_account_id = ?", stableID)
	}

	if account.Name != "" {
		cond = cond.
			Or("from_account_id IS NULL OR from_account_id = ''").
			Or("to_account_id IS NULL OR to_account_id = ''")
	}

	var candidates []models.Transfer
	if err := db.Model(&models.Transfer{}).
		Where(cond).
		Order("date DESC").
		Order("created_at DESC").
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers for account: %w", err)
	}

	for _, t := range candidates {
		if ledger.Touches(account, t) {
			transfers = append(transfers, t)
		}
	}

	return transfers, nil
}
