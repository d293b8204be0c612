package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"school-erp/internal/ledger"
	"school-erp/internal/models"
	"school-erp/internal/repositories"
	"school-erp/internal/repositories/repository_mocks"
	"school-erp/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testAccountTopic = "fee.accounts"

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	cache       *service_mocks.MockAccountCacheInterface
	publisher   *service_mocks.MockEventPublisherInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	service     *accountService
	ctx         context.Context
}

// SetupTest runs before each test in the suite
func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.cache = service_mocks.NewMockAccountCacheInterface(s.ctrl)
	s.publisher = service_mocks.NewMockEventPublisherInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.service = NewAccountService(
		s.accountRepo,
		s.cache,
		s.publisher,
		s.metrics,
		s.auditLogger,
		testAccountTopic,
		slog.Default(),
	).(*accountService)
	s.ctx = context.Background()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
}

// TearDownTest runs after each test in the suite
func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountServiceSuite runs the test suite
func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func accountWithID(accountID, name string, balance int64) models.Account {
	a := models.Account{
		ID:            uuid.New(),
		Name:          name,
		Bank:          "City Bank",
		AccountNumber: "0001",
		Balance:       decimal.NewFromInt(balance),
	}
	if accountID != "" {
		a.AccountID = &accountID
	}
	return a
}

// TestListAccounts_CacheHit tests that a warm cache skips the database
func (s *AccountServiceSuite) TestListAccounts_CacheHit() {
	cached := []models.Account{accountWithID("ACC-FEES", "Fees", 10)}
	s.cache.EXPECT().GetAccounts(s.ctx).Return(cached, true, nil)

	accounts, err := s.service.ListAccounts(s.ctx)

	s.NoError(err)
	s.Equal(cached, accounts)
}

// TestListAccounts_CacheMiss tests read-through on a miss
func (s *AccountServiceSuite) TestListAccounts_CacheMiss() {
	stored := []models.Account{accountWithID("ACC-FEES", "Fees", 10), accountWithID("", "Petty Cash", 0)}

	gomock.InOrder(
		s.cache.EXPECT().GetAccounts(s.ctx).Return(nil, false, nil),
		s.accountRepo.EXPECT().List(s.ctx).Return(stored, nil),
		s.cache.EXPECT().SetAccounts(s.ctx, stored).Return(nil),
	)

	accounts, err := s.service.ListAccounts(s.ctx)

	s.NoError(err)
	s.Len(accounts, 2)
}

// TestListAccounts_CacheErrorsAreNotFatal tests that Redis failures fall back to the database
func (s *AccountServiceSuite) TestListAccounts_CacheErrorsAreNotFatal() {
	stored := []models.Account{accountWithID("ACC-FEES", "Fees", 10)}

	s.cache.EXPECT().GetAccounts(s.ctx).Return(nil, false, errors.New("redis down"))
	s.accountRepo.EXPECT().List(s.ctx).Return(stored, nil)
	s.cache.EXPECT().SetAccounts(s.ctx, stored).Return(errors.New("redis down"))

	accounts, err := s.service.ListAccounts(s.ctx)

	s.NoError(err)
	s.Equal(stored, accounts)
}

// TestListAccounts_RepositoryError tests database failures
func (s *AccountServiceSuite) TestListAccounts_RepositoryError() {
	s.cache.EXPECT().GetAccounts(s.ctx).Return(nil, false, nil)
	s.accountRepo.EXPECT().List(s.ctx).Return(nil, errors.New("connection refused"))

	_, err := s.service.ListAccounts(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "failed to list accounts")
}

// TestCreateAccount_Success tests the add-account flow
func (s *AccountServiceSuite) TestCreateAccount_Success() {
	draft := ledger.AccountDraft{
		AccountID:     " ACC-OPS ",
		Name:          " Operations ",
		Bank:          "City Bank",
		AccountNumber: "123456",
		Balance:       "250.50",
	}

	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, account *models.Account) error {
			s.Equal("ACC-OPS", account.StableID())
			s.Equal("Operations", account.Name)
			s.Equal("250.5", account.Balance.String())
			account.ID = uuid.New()
			return nil
		})
	s.cache.EXPECT().InvalidateAccounts(s.ctx).Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, testAccountTopic, gomock.Any(), gomock.Any()).Return(nil)
	s.auditLogger.EXPECT().LogAccountCreated(s.ctx, gomock.Any())

	account, err := s.service.CreateAccount(s.ctx, draft)

	s.NoError(err)
	s.NotNil(account)
	s.NotEqual(uuid.Nil, account.ID)
}

// TestCreateAccount_BlankIdentifierAndBalance tests legacy accounts opening at zero
func (s *AccountServiceSuite) TestCreateAccount_BlankIdentifierAndBalance() {
	draft := ledger.AccountDraft{Name: "Petty Cash", Bank: "Cash", AccountNumber: "N/A"}

	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, account *models.Account) error {
			s.Nil(account.AccountID)
			s.True(account.Balance.IsZero())
			return nil
		})
	s.cache.EXPECT().InvalidateAccounts(s.ctx).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.auditLogger.EXPECT().LogAccountCreated(s.ctx, gomock.Any())

	_, err := s.service.CreateAccount(s.ctx, draft)
	s.NoError(err)
}

// TestCreateAccount_InvalidDraft tests that invalid forms never reach the repository
func (s *AccountServiceSuite) TestCreateAccount_InvalidDraft() {
	_, err := s.service.CreateAccount(s.ctx, ledger.AccountDraft{Name: "Fees"})
	s.ErrorIs(err, ledger.ErrAccountFieldMissing)

	_, err = s.service.CreateAccount(s.ctx, ledger.AccountDraft{
		Name: "Fees", Bank: "City", AccountNumber: "1", Balance: "-5",
	})
	s.ErrorIs(err, ledger.ErrNegativeBalance)
}

// TestCreateAccount_DuplicateIdentifier tests the unique identifier rule
func (s *AccountServiceSuite) TestCreateAccount_DuplicateIdentifier() {
	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(repositories.ErrAccountIDExists)

	_, err := s.service.CreateAccount(s.ctx, ledger.AccountDraft{
		AccountID: "ACC-FEES", Name: "Fees", Bank: "City", AccountNumber: "1",
	})

	s.ErrorIs(err, ErrAccountAlreadyExists)
}

// TestCreateAccount_PublishFailureIsAudited tests that broker errors do not fail the request
func (s *AccountServiceSuite) TestCreateAccount_PublishFailureIsAudited() {
	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.cache.EXPECT().InvalidateAccounts(s.ctx).Return(errors.New("redis down"))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	s.auditLogger.EXPECT().LogEventPublishFailed(s.ctx, testAccountTopic, gomock.Any(), "broker down")
	s.auditLogger.EXPECT().LogAccountCreated(s.ctx, gomock.Any())

	account, err := s.service.CreateAccount(s.ctx, ledger.AccountDraft{
		Name: "Fees", Bank: "City", AccountNumber: "1",
	})

	s.NoError(err)
	s.NotNil(account)
}

// TestListAccountOptions tests picker keys for every addressing scheme
func (s *AccountServiceSuite) TestListAccountOptions() {
	withID := accountWithID("ACC-FEES", "Fees", 10)
	withOID := accountWithID("", "Operations", 5)
	s.cache.EXPECT().GetAccounts(s.ctx).Return([]models.Account{withID, withOID}, true, nil)

	options, err := s.service.ListAccountOptions(s.ctx)

	s.NoError(err)
	s.Require().Len(options, 2)
	s.Equal("aid:ACC-FEES", options[0].Key)
	s.Equal("oid:"+withOID.ID.String(), options[1].Key)
	s.Equal("Fees • ACC-FEES • 10", options[0].Label)
}

// TestResolveSelection tests key parsing and lookup
func (s *AccountServiceSuite) TestResolveSelection() {
	fees := accountWithID("ACC-FEES", "Fees", 10)
	petty := accountWithID("", "Petty Cash", 0)
	s.cache.EXPECT().GetAccounts(s.ctx).Return([]models.Account{fees, petty}, true, nil).Times(3)

	account, err := s.service.ResolveSelection(s.ctx, "aid:ACC-FEES")
	s.NoError(err)
	s.Equal(fees.ID, account.ID)

	account, err = s.service.ResolveSelection(s.ctx, "name:Petty Cash")
	s.NoError(err)
	s.Equal(petty.ID, account.ID)

	_, err = s.service.ResolveSelection(s.ctx, "aid:ACC-NOPE")
	s.ErrorIs(err, ErrAccountNotFound)
}

// TestResolveSelection_InvalidKey tests that malformed keys are rejected before any lookup
func (s *AccountServiceSuite) TestResolveSelection_InvalidKey() {
	_, err := s.service.ResolveSelection(s.ctx, "ACC-FEES")
	s.ErrorIs(err, ledger.ErrInvalidSelectionKey)
}
