package repositories

import (
	"context"
	"testing"
	"time"

	"school-erp/internal/database"
	"school-erp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AccountRepositoryTestSuite is the test suite for Account repository
type AccountRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test
func (s *AccountRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test
func (s *AccountRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositoryTestSuite runs the test suite
func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

// Helper function to build an unsaved account
func (s *AccountRepositoryTestSuite) newAccount(accountID string) *models.Account {
	account := &models.Account{
		Name:          gofakeit.Company(),
		Bank:          gofakeit.Company() + " Bank",
		AccountNumber: gofakeit.DigitN(12),
		Balance:       decimal.NewFromInt(1000),
	}
	if accountID != "" {
		account.AccountID = &accountID
	}
	return account
}

// TestCreate_ValidAccount tests creating a valid account
func (s *AccountRepositoryTestSuite) TestCreate_ValidAccount() {
	account := s.newAccount("ACC-100")

	err := s.repo.Create(s.ctx, account)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, account.ID)

	found, err := s.repo.GetByAccountID(s.ctx, "ACC-100")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), account.ID, found.ID)
	assert.True(s.T(), found.Balance.Equal(decimal.NewFromInt(1000)))
}

// TestCreate_NilAccount tests creating a nil account
func (s *AccountRepositoryTestSuite) TestCreate_NilAccount() {
	err := s.repo.Create(s.ctx, nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "account cannot be nil")
}

// TestCreate_DuplicateAccountID tests the unique stable identifier
func (s *AccountRepositoryTestSuite) TestCreate_DuplicateAccountID() {
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newAccount("ACC-1")))

	err := s.repo.Create(s.ctx, s.newAccount("ACC-1"))
	assert.ErrorIs(s.T(), err, ErrAccountIDExists)
}

// TestCreate_AccountsWithoutIdentifier tests that several legacy accounts can coexist
func (s *AccountRepositoryTestSuite) TestCreate_AccountsWithoutIdentifier() {
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newAccount("")))
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newAccount("")))

	accounts, err := s.repo.List(s.ctx)
	require.NoError(s.T(), err)
	assert.Len(s.T(), accounts, 2)
}

// TestGetByID_NotFound tests lookup of a missing account
func (s *AccountRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)
}

// TestGetByAccountID_Empty tests that an empty identifier never matches
func (s *AccountRepositoryTestSuite) TestGetByAccountID_Empty() {
	database.CreateTestAccount(s.T(), s.db, "", "Petty Cash", decimal.Zero)

	_, err := s.repo.GetByAccountID(s.ctx, "")
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)
}

// TestFindByName_CaseInsensitive tests legacy name lookup
func (s *AccountRepositoryTestSuite) TestFindByName_CaseInsensitive() {
	created := database.CreateTestAccount(s.T(), s.db, "", "Petty Cash", decimal.NewFromInt(50))

	found, err := s.repo.FindByName(s.ctx, "  petty CASH ")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, found.ID)

	_, err = s.repo.FindByName(s.ctx, "Canteen")
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)

	_, err = s.repo.FindByName(s.ctx, " ")
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)

	ecole := database.CreateTestAccount(s.T(), s.db, "", "École Fund", decimal.NewFromInt(5))
	found, err = s.repo.FindByName(s.ctx, "ÉCOLE FUND")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), ecole.ID, found.ID)
}

// TestList_NewestFirst tests list ordering
func (s *AccountRepositoryTestSuite) TestList_NewestFirst() {
	older := s.newAccount("ACC-OLD")
	older.CreatedAt = time.Now().AddDate(-1, 0, 0)
	require.NoError(s.T(), s.repo.Create(s.ctx, older))

	newer := s.newAccount("ACC-NEW")
	require.NoError(s.T(), s.repo.Create(s.ctx, newer))

	accounts, err := s.repo.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), accounts, 2)
	assert.Equal(s.T(), "ACC-NEW", accounts[0].StableID())
	assert.Equal(s.T(), "ACC-OLD", accounts[1].StableID())
}

// TestList_Empty tests that an empty table yields an empty, non-nil slice
func (s *AccountRepositoryTestSuite) TestList_Empty() {
	accounts, err := s.repo.List(s.ctx)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), accounts)
	assert.Empty(s.T(), accounts)
}

// Helper function to persist a pending transfer between two accounts
func (s *AccountRepositoryTestSuite) createPendingTransfer(from, to *models.Account, amount decimal.Decimal) *models.Transfer {
	transfer := &models.Transfer{
		FromAccountID: from.StableID(),
		FromAccount:   from.Name,
		ToAccountID:   to.StableID(),
		ToAccount:     to.Name,
		Amount:        amount,
		Status:        models.TransferStatusPending,
	}
	require.NoError(s.T(), NewTransferRepository(s.db.DB).Create(s.ctx, transfer))
	return transfer
}

func (s *AccountRepositoryTestSuite) assertBalance(id uuid.UUID, expected string) {
	account, err := s.repo.GetByID(s.ctx, id)
	require.NoError(s.T(), err)
	assert.True(s.T(), account.Balance.Equal(decimal.RequireFromString(expected)), account.Balance.String())
}

// TestExecuteAtomicTransfer_MovesFunds tests a funded transfer
func (s *AccountRepositoryTestSuite) TestExecuteAtomicTransfer_MovesFunds() {
	from := database.CreateTestAccount(s.T(), s.db, "ACC-FEES", "Fees", decimal.NewFromInt(500))
	to := database.CreateTestAccount(s.T(), s.db, "ACC-OPS", "Operations", decimal.NewFromInt(20))
	transfer := s.createPendingTransfer(from, to, decimal.NewFromFloat(120.5))

	err := s.repo.ExecuteAtomicTransfer(s.ctx, from.ID, to.ID, transfer)
	require.NoError(s.T(), err)

	s.assertBalance(from.ID, "379.5")
	s.assertBalance(to.ID, "140.5")

	assert.Equal(s.T(), models.TransferStatusCompleted, transfer.Status)
	assert.NotNil(s.T(), transfer.CompletedAt)

	stored, err := NewTransferRepository(s.db.DB).FindByID(s.ctx, transfer.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TransferStatusCompleted, stored.Status)
}

// TestExecuteAtomicTransfer_InsufficientFunds tests that nothing moves when the source is short
func (s *AccountRepositoryTestSuite) TestExecuteAtomicTransfer_InsufficientFunds() {
	from := database.CreateTestAccount(s.T(), s.db, "ACC-FEES", "Fees", decimal.NewFromInt(10))
	to := database.CreateTestAccount(s.T(), s.db, "ACC-OPS", "Operations", decimal.NewFromInt(0))
	transfer := s.createPendingTransfer(from, to, decimal.NewFromInt(11))

	err := s.repo.ExecuteAtomicTransfer(s.ctx, from.ID, to.ID, transfer)
	assert.ErrorIs(s.T(), err, ErrInsufficientFunds)

	s.assertBalance(from.ID, "10")
	assert.Equal(s.T(), models.TransferStatusPending, transfer.Status)
}

// TestExecuteAtomicTransfer_MissingDestination tests rollback when the destination is unknown
func (s *AccountRepositoryTestSuite) TestExecuteAtomicTransfer_MissingDestination() {
	from := database.CreateTestAccount(s.T(), s.db, "ACC-FEES", "Fees", decimal.NewFromInt(100))
	transfer := &models.Transfer{FromAccountID: "ACC-FEES", ToAccount: "Nowhere", Amount: decimal.NewFromInt(5)}

	err := s.repo.ExecuteAtomicTransfer(s.ctx, from.ID, uuid.New(), transfer)
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)

	s.assertBalance(from.ID, "100")
}

// TestExecuteAtomicTransfer_CompletionWriteFailureRollsBack tests that balances stay put
// when the completed transfer cannot be saved
func (s *AccountRepositoryTestSuite) TestExecuteAtomicTransfer_CompletionWriteFailureRollsBack() {
	from := database.CreateTestAccount(s.T(), s.db, "ACC-FEES", "Fees", decimal.NewFromInt(100))
	to := database.CreateTestAccount(s.T(), s.db, "ACC-OPS", "Operations", decimal.NewFromInt(0))
	transfer := s.createPendingTransfer(from, to, decimal.NewFromInt(40))

	// the update hook rejects a transfer whose sides share an identifier
	broken := *transfer
	broken.ToAccountID = broken.FromAccountID

	err := s.repo.ExecuteAtomicTransfer(s.ctx, from.ID, to.ID, &broken)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, models.ErrSameAccountTransfer)
	assert.Contains(s.T(), err.Error(), "failed to record transfer completion")

	s.assertBalance(from.ID, "100")
	s.assertBalance(to.ID, "0")
	assert.Equal(s.T(), models.TransferStatusPending, broken.Status)

	stored, err := NewTransferRepository(s.db.DB).FindByID(s.ctx, transfer.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TransferStatusPending, stored.Status)
}

// TestExecuteAtomicTransfer_NonPositiveAmount tests amount guard
func (s *AccountRepositoryTestSuite) TestExecuteAtomicTransfer_NonPositiveAmount() {
	err := s.repo.ExecuteAtomicTransfer(s.ctx, uuid.New(), uuid.New(), &models.Transfer{Amount: decimal.Zero})
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "must be positive")
}

// TestExecuteAtomicTransfer_NilTransfer tests nil guard
func (s *AccountRepositoryTestSuite) TestExecuteAtomicTransfer_NilTransfer() {
	err := s.repo.ExecuteAtomicTransfer(s.ctx, uuid.New(), uuid.New(), nil)
	require.Error(s.T(), err)
}
