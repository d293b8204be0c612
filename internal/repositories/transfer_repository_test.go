package repositories

import (
	"context"
	"testing"
	"time"

	"school-erp/internal/database"
	"school-erp/internal/ledger"
	"school-erp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TransferRepositoryTestSuite is the test suite for Transfer repository
type TransferRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo TransferRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test
func (s *TransferRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransferRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test
func (s *TransferRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransferRepositoryTestSuite runs the test suite
func TestTransferRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransferRepositoryTestSuite))
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC)
}

// Helper function to create a test transfer
func (s *TransferRepositoryTestSuite) createTestTransfer(fromID, fromName, toID, toName string, date time.Time) *models.Transfer {
	transfer := &models.Transfer{
		FromAccountID: fromID,
		FromAccount:   fromName,
		ToAccountID:   toID,
		ToAccount:     toName,
		Amount:        decimal.NewFromFloat(gofakeit.Float64Range(10, 1000)).Round(2),
		Date:          date,
		Reference:     gofakeit.Sentence(3),
		ApprovedBy:    gofakeit.Name(),
	}
	require.NoError(s.T(), s.repo.Create(s.ctx, transfer))
	return transfer
}

// TestCreate_ValidTransfer tests creating a valid transfer
func (s *TransferRepositoryTestSuite) TestCreate_ValidTransfer() {
	transfer := s.createTestTransfer("A1", "Main", "", "Ops", day(3))

	assert.NotEqual(s.T(), uuid.Nil, transfer.ID)
	assert.Equal(s.T(), models.TransferStatusPending, transfer.Status)
	assert.Contains(s.T(), transfer.TransferID, "20240103")
}

// TestCreate_NilTransfer tests creating a nil transfer
func (s *TransferRepositoryTestSuite) TestCreate_NilTransfer() {
	err := s.repo.Create(s.ctx, nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "transfer cannot be nil")
}

// TestCreate_DuplicateTransferID tests the unique transfer number
func (s *TransferRepositoryTestSuite) TestCreate_DuplicateTransferID() {
	first := s.createTestTransfer("A1", "", "A2", "", day(1))

	second := &models.Transfer{
		TransferID:    first.TransferID,
		FromAccountID: "A2",
		ToAccountID:   "A1",
		Amount:        decimal.NewFromInt(5),
	}
	err := s.repo.Create(s.ctx, second)
	assert.ErrorIs(s.T(), err, ErrTransferIDExists)
}

// TestCreate_SameAccount tests that the model rejects identical identifiers
func (s *TransferRepositoryTestSuite) TestCreate_SameAccount() {
	err := s.repo.Create(s.ctx, &models.Transfer{
		FromAccountID: "A1",
		ToAccountID:   "A1",
		Amount:        decimal.NewFromInt(5),
	})
	assert.ErrorIs(s.T(), err, models.ErrSameAccountTransfer)
}

// TestUpdate_CompletesTransfer tests persisting a status change
func (s *TransferRepositoryTestSuite) TestUpdate_CompletesTransfer() {
	transfer := s.createTestTransfer("A1", "Main", "A2", "Ops", day(2))
	transfer.Complete()

	require.NoError(s.T(), s.repo.Update(s.ctx, transfer))

	retrieved, err := s.repo.FindByID(s.ctx, transfer.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TransferStatusCompleted, retrieved.Status)
	assert.NotNil(s.T(), retrieved.CompletedAt)
}

// TestFindByID_NotFound tests lookup of a missing transfer
func (s *TransferRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := s.repo.FindByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, ErrTransferNotFound)
}

// TestFindByTransferID tests lookup by transfer number
func (s *TransferRepositoryTestSuite) TestFindByTransferID() {
	transfer := s.createTestTransfer("A1", "", "", "Ops", day(2))

	found, err := s.repo.FindByTransferID(s.ctx, transfer.TransferID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), transfer.ID, found.ID)

	_, err = s.repo.FindByTransferID(s.ctx, "TRF-00000000-000000")
	assert.ErrorIs(s.T(), err, ErrTransferNotFound)
}

// TestList_NewestFirstWithFilters tests ordering and filters
func (s *TransferRepositoryTestSuite) TestList_NewestFirstWithFilters() {
	t1 := s.createTestTransfer("A1", "", "A2", "", day(1))
	t3 := s.createTestTransfer("A1", "", "A2", "", day(3))
	t2 := s.createTestTransfer("A2", "", "A1", "", day(2))

	all, err := s.repo.List(s.ctx, models.TransferFilters{})
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	assert.Equal(s.T(), []uuid.UUID{t3.ID, t2.ID, t1.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	start := day(2)
	ranged, err := s.repo.List(s.ctx, models.TransferFilters{StartDate: &start})
	require.NoError(s.T(), err)
	assert.Len(s.T(), ranged, 2)

	limited, err := s.repo.List(s.ctx, models.TransferFilters{Limit: 1})
	require.NoError(s.T(), err)
	require.Len(s.T(), limited, 1)
	assert.Equal(s.T(), t3.ID, limited[0].ID)

	t2.Complete()
	require.NoError(s.T(), s.repo.Update(s.ctx, t2))
	completed, err := s.repo.List(s.ctx, models.TransferFilters{Status: models.TransferStatusCompleted})
	require.NoError(s.T(), err)
	require.Len(s.T(), completed, 1)
	assert.Equal(s.T(), t2.ID, completed[0].ID)
}

// TestListTouchingAccount tests identifier and legacy name matching
func (s *TransferRepositoryTestSuite) TestListTouchingAccount() {
	out := s.createTestTransfer("A1", "Main", "", "Ops", day(1))
	in := s.createTestTransfer("", "Ops", "A1", "Main", day(2))
	legacy := s.createTestTransfer("", "main", "", "Ops", day(3))
	// the name matches but this side carries another identifier
	s.createTestTransfer("B7", "Main", "", "Ops", day(4))
	s.createTestTransfer("", "Ops", "", "Canteen", day(5))

	accountID := "A1"
	account := models.Account{AccountID: &accountID, Name: "Main"}

	transfers, err := s.repo.ListTouchingAccount(s.ctx, account)
	require.NoError(s.T(), err)

	ids := make([]uuid.UUID, 0, len(transfers))
	for _, t := range transfers {
		ids = append(ids, t.ID)
	}
	assert.Equal(s.T(), []uuid.UUID{legacy.ID, in.ID, out.ID}, ids)
}

// TestListTouchingAccount_FoldsNonASCIINames tests that legacy names match the way ledger derivation folds them
func (s *TransferRepositoryTestSuite) TestListTouchingAccount_FoldsNonASCIINames() {
	upper := s.createTestTransfer("", "ÉCOLE FUND", "", "Canteen", day(1))
	padded := s.createTestTransfer("", "Canteen", "", " École Fund", day(2))

	account := models.Account{Name: "École Fund"}

	transfers, err := s.repo.ListTouchingAccount(s.ctx, account)
	require.NoError(s.T(), err)

	rows := ledger.DeriveAccountTransactions(account, []models.Transfer{*upper, *padded}, ledger.FilterAll)
	require.Len(s.T(), transfers, len(rows))
	require.Len(s.T(), transfers, 1)
	assert.Equal(s.T(), upper.ID, transfers[0].ID)
	assert.Equal(s.T(), ledger.DirectionOut, rows[0].Direction)
}

// TestListTouchingAccount_NoAddressing tests an account with neither identifier nor name
func (s *TransferRepositoryTestSuite) TestListTouchingAccount_NoAddressing() {
	s.createTestTransfer("", "Ops", "", "Canteen", day(1))

	transfers, err := s.repo.ListTouchingAccount(s.ctx, models.Account{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), transfers)
}
