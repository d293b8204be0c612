package models

import (
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TransferTestSuite is the test suite for Transfer model
type TransferTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *TransferTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&Transfer{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *TransferTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestTransferTestSuite runs the test suite
func TestTransferTestSuite(t *testing.T) {
	suite.Run(t, new(TransferTestSuite))
}

func (s *TransferTestSuite) newTransfer() *Transfer {
	return &Transfer{
		FromAccountID: "ACC-" + gofakeit.DigitN(4),
		ToAccount:     gofakeit.Company(),
		Amount:        decimal.NewFromFloat(gofakeit.Float64Range(10, 1000)).Round(2),
		Reference:     gofakeit.Sentence(3),
		ApprovedBy:    gofakeit.Name(),
	}
}

// TestTransfer_BeforeCreate_SetsDefaults tests ID, status, date and transfer number defaults
func (s *TransferTestSuite) TestTransfer_BeforeCreate_SetsDefaults() {
	transfer := s.newTransfer()

	err := s.db.Create(transfer).Error
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), uuid.Nil, transfer.ID)
	assert.Equal(s.T(), TransferStatusPending, transfer.Status)
	assert.False(s.T(), transfer.Date.IsZero())
	assert.True(s.T(), strings.HasPrefix(transfer.TransferID, "TRF-"))
}

// TestTransfer_BeforeCreate_KeepsProvidedDate tests that a supplied transfer date is preserved
func (s *TransferTestSuite) TestTransfer_BeforeCreate_KeepsProvidedDate() {
	date := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	transfer := s.newTransfer()
	transfer.Date = date

	err := s.db.Create(transfer).Error
	require.NoError(s.T(), err)

	assert.True(s.T(), transfer.Date.Equal(date))
	assert.Contains(s.T(), transfer.TransferID, "20240103")
}

// TestTransfer_BeforeCreate_RejectsInvalid tests that validation runs on create
func (s *TransferTestSuite) TestTransfer_BeforeCreate_RejectsInvalid() {
	transfer := s.newTransfer()
	transfer.Amount = decimal.Zero

	err := s.db.Create(transfer).Error
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, ErrInvalidTransferAmount)
}

// TestTransfer_Validate tests the validation rules
func (s *TransferTestSuite) TestTransfer_Validate() {
	testCases := []struct {
		name     string
		mutate   func(t *Transfer)
		expected error
	}{
		{
			name:     "valid id to name",
			mutate:   func(t *Transfer) {},
			expected: nil,
		},
		{
			name: "missing source",
			mutate: func(t *Transfer) {
				t.FromAccountID = ""
				t.FromAccount = "  "
			},
			expected: ErrMissingSource,
		},
		{
			name: "missing destination",
			mutate: func(t *Transfer) {
				t.ToAccount = ""
			},
			expected: ErrMissingDestination,
		},
		{
			name: "same identifiers",
			mutate: func(t *Transfer) {
				t.FromAccountID = "A1"
				t.ToAccountID = "A1"
			},
			expected: ErrSameAccountTransfer,
		},
		{
			name: "same legacy names are allowed",
			mutate: func(t *Transfer) {
				t.FromAccountID = ""
				t.FromAccount = "Ops"
				t.ToAccount = "Ops"
			},
			expected: nil,
		},
		{
			name: "negative amount",
			mutate: func(t *Transfer) {
				t.Amount = decimal.NewFromInt(-5)
			},
			expected: ErrInvalidTransferAmount,
		},
		{
			name: "unknown status",
			mutate: func(t *Transfer) {
				t.Status = "approved"
			},
			expected: ErrInvalidTransferStatus,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			transfer := s.newTransfer()
			transfer.Status = TransferStatusPending
			tc.mutate(transfer)

			err := transfer.Validate()
			if tc.expected == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tc.expected)
			}
		})
	}
}

// TestTransfer_CompleteAndReject tests status transitions
func (s *TransferTestSuite) TestTransfer_CompleteAndReject() {
	transfer := s.newTransfer()
	transfer.Status = TransferStatusPending

	s.True(transfer.CanTransitionTo(TransferStatusCompleted))
	s.True(transfer.CanTransitionTo(TransferStatusRejected))

	transfer.Reject("insufficient funds")
	s.True(transfer.IsRejected())
	s.Require().NotNil(transfer.RejectReason)
	s.Equal("insufficient funds", *transfer.RejectReason)
	s.False(transfer.CanTransitionTo(TransferStatusCompleted))

	other := s.newTransfer()
	other.Status = TransferStatusPending
	other.Complete()
	s.True(other.IsCompleted())
	s.NotNil(other.CompletedAt)
	s.Nil(other.RejectReason)
}

// TestGenerateTransferID tests the transfer number format
func (s *TransferTestSuite) TestGenerateTransferID() {
	id := uuid.MustParse("1a2b3c4d-0000-4000-8000-000000000000")
	date := time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC)

	s.Equal("TRF-20240103-1A2B3C", GenerateTransferID(date, id))
}
