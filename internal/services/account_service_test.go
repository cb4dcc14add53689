package services

import (
	"context"
	"log/slog"
	"testing"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/models"
	"deposit-accounts/internal/repositories"
	"deposit-accounts/internal/repositories/repository_mocks"
	"deposit-accounts/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	customerService *service_mocks.MockCustomerServiceInterface
	ruleValidator   *service_mocks.MockAccountRuleValidatorInterface
	notifier        *service_mocks.MockAccountNotifierInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         *accountService
	ctx             context.Context
	testCustomerID  uuid.UUID
	testAccountID   uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.customerService = service_mocks.NewMockCustomerServiceInterface(s.ctrl)
	s.ruleValidator = service_mocks.NewMockAccountRuleValidatorInterface(s.ctrl)
	s.notifier = service_mocks.NewMockAccountNotifierInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewAccountService(
		s.accountRepo,
		s.customerService,
		s.ruleValidator,
		s.notifier,
		slog.Default(),
		s.metrics,
	).(*accountService)

	s.ctx = context.Background()
	s.testCustomerID = uuid.New()
	s.testAccountID = uuid.New()

	// Metric recording is incidental to the behavior under test
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

func (s *AccountServiceSuite) creationRequest() *dto.AccountRequest {
	balance := decimal.NewFromFloat(500.00)
	return &dto.AccountRequest{
		AccountType:    models.AccountTypeSaving,
		CustomerID:     s.testCustomerID.String(),
		InitialBalance: &balance,
	}
}

func (s *AccountServiceSuite) testCustomer() *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           s.testCustomerID.String(),
		CustomerType: dto.CustomerTypePersonal,
	}
}

func (s *AccountServiceSuite) TestCreateAccount_Success() {
	req := s.creationRequest()
	customer := s.testCustomer()

	s.customerService.EXPECT().GetCustomerByID(s.ctx, s.testCustomerID).Return(customer, nil)
	s.accountRepo.EXPECT().CountByCustomerIDAndType(s.testCustomerID, models.AccountTypeSaving).Return(int64(0), nil)
	s.ruleValidator.EXPECT().ValidateCreation(req, customer, int64(0)).Return(nil)
	s.accountRepo.EXPECT().GenerateUniqueAccountNumber().Return("ACC-0123456789", nil)
	s.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.notifier.EXPECT().AccountCreated(s.ctx, gomock.Any())

	account, err := s.service.CreateAccount(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("ACC-0123456789", account.AccountNumber)
	s.Equal(models.AccountTypeSaving, account.AccountType)
	s.Equal(s.testCustomerID, account.CustomerID)
	s.True(account.Balance.Equal(decimal.NewFromFloat(500.00)))
	// Type defaults applied on creation
	s.True(account.MaintenanceFee.IsZero())
	s.Require().NotNil(account.MaxMonthlyTransactions)
	s.Equal(models.DefaultSavingMonthlyTransactionCap, *account.MaxMonthlyTransactions)
}

func (s *AccountServiceSuite) TestCreateAccount_InvalidCustomerID() {
	req := s.creationRequest()
	req.CustomerID = "not-a-uuid"

	_, err := s.service.CreateAccount(s.ctx, req)

	s.ErrorIs(err, ErrInvalidCustomerID)
}

func (s *AccountServiceSuite) TestCreateAccount_CustomerNotFound() {
	req := s.creationRequest()

	s.customerService.EXPECT().GetCustomerByID(s.ctx, s.testCustomerID).Return(nil, ErrCustomerNotFound)

	_, err := s.service.CreateAccount(s.ctx, req)

	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *AccountServiceSuite) TestCreateAccount_CustomerServiceUnavailable() {
	req := s.creationRequest()

	s.customerService.EXPECT().GetCustomerByID(s.ctx, s.testCustomerID).Return(nil, ErrCustomerServiceUnavailable)

	_, err := s.service.CreateAccount(s.ctx, req)

	s.ErrorIs(err, ErrCustomerServiceUnavailable)
}

func (s *AccountServiceSuite) TestCreateAccount_RuleRejection() {
	req := s.creationRequest()
	customer := s.testCustomer()
	rejection := &BusinessRuleError{Reason: "customer already holds a SAVING account"}

	s.customerService.EXPECT().GetCustomerByID(s.ctx, s.testCustomerID).Return(customer, nil)
	s.accountRepo.EXPECT().CountByCustomerIDAndType(s.testCustomerID, models.AccountTypeSaving).Return(int64(1), nil)
	s.ruleValidator.EXPECT().ValidateCreation(req, customer, int64(1)).Return(rejection)

	_, err := s.service.CreateAccount(s.ctx, req)

	var ruleErr *BusinessRuleError
	s.Require().ErrorAs(err, &ruleErr)
	s.Equal("customer already holds a SAVING account", ruleErr.Reason)
}

func (s *AccountServiceSuite) TestGetAccountByID_NotFound() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.GetAccountByID(s.testAccountID)

	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestGetAccountByNumber() {
	account := &models.Account{ID: s.testAccountID, AccountNumber: "ACC-0123456789"}
	s.accountRepo.EXPECT().GetByAccountNumber("ACC-0123456789").Return(account, nil)

	found, err := s.service.GetAccountByNumber("ACC-0123456789")

	s.Require().NoError(err)
	s.Equal(s.testAccountID, found.ID)
}

func (s *AccountServiceSuite) TestUpdateAccount_Success() {
	account := &models.Account{
		ID:          s.testAccountID,
		AccountType: models.AccountTypeChecking,
		CustomerID:  s.testCustomerID,
		Version:     3,
	}
	fee := decimal.NewFromFloat(15.00)
	req := &dto.AccountUpdateRequest{
		MaintenanceFee: &fee,
		Version:        3,
	}

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)
	s.notifier.EXPECT().AccountUpdated(s.ctx, account)

	updated, err := s.service.UpdateAccount(s.ctx, s.testAccountID, req)

	s.Require().NoError(err)
	s.True(updated.MaintenanceFee.Equal(fee))
}

func (s *AccountServiceSuite) TestUpdateAccount_StaleVersion() {
	account := &models.Account{
		ID:          s.testAccountID,
		AccountType: models.AccountTypeChecking,
		CustomerID:  s.testCustomerID,
		Version:     5,
	}
	req := &dto.AccountUpdateRequest{Version: 3}

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(account).Return(repositories.ErrVersionConflict)

	_, err := s.service.UpdateAccount(s.ctx, s.testAccountID, req)

	s.ErrorIs(err, ErrVersionConflict)
}

func (s *AccountServiceSuite) TestDeleteAccount_Success() {
	s.accountRepo.EXPECT().Delete(s.testAccountID).Return(nil)
	s.notifier.EXPECT().AccountDeleted(s.ctx, s.testAccountID)

	s.NoError(s.service.DeleteAccount(s.ctx, s.testAccountID))
}

func (s *AccountServiceSuite) TestDeleteAccount_NotFound() {
	s.accountRepo.EXPECT().Delete(s.testAccountID).Return(repositories.ErrAccountNotFound)

	err := s.service.DeleteAccount(s.ctx, s.testAccountID)

	s.ErrorIs(err, ErrAccountNotFound)
}
