package repositories

import (
	"context"

	"school-erp/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByAccountID(ctx context.Context, accountID string) (*models.Account, error)
	FindByName(ctx context.Context, name string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	ExecuteAtomicTransfer(ctx context.Context, fromID, toID uuid.UUID, transfer *models.Transfer) error
}

// TransferRepositoryInterface defines the contract for transfer repository operations
type TransferRepositoryInterface interface {
	Create(ctx context.Context, transfer *models.Transfer) error
	Update(ctx context.Context, transfer *models.Transfer) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transfer, error)
	FindByTransferID(ctx context.Context, transferID string) (*models.Transfer, error)
	List(ctx context.Context, filters models.TransferFilters) ([]models.Transfer, error)
	ListTouchingAccount(ctx context.Context, account models.Account) ([]models.Transfer, error)
}
