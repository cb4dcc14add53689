package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/models"
	"deposit-accounts/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrVersionConflict   = errors.New("account was modified concurrently")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	customerService CustomerServiceInterface
	ruleValidator   AccountRuleValidatorInterface
	notifier        AccountNotifierInterface
	logger          *slog.Logger
	metrics         MetricsRecorderInterface
}

// NewAccountService creates the deposit account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	customerService CustomerServiceInterface,
	ruleValidator AccountRuleValidatorInterface,
	notifier AccountNotifierInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		customerService: customerService,
		ruleValidator:   ruleValidator,
		notifier:        notifier,
		logger:          logger,
		metrics:         metrics,
	}
}

// CreateAccount validates and opens a new deposit account
func (s *accountService) CreateAccount(ctx context.Context, req *dto.AccountRequest) (*models.Account, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrInvalidCustomerID
	}

	// Creation fails before any rule runs when the owner does not resolve
	customer, err := s.customerService.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	existingOfType, err := s.accountRepo.CountByCustomerIDAndType(customerID, req.AccountType)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing accounts: %w", err)
	}

	if err := s.ruleValidator.ValidateCreation(req, customer, existingOfType); err != nil {
		s.logger.Info("account creation rejected",
			"customer_id", customerID,
			"account_type", req.AccountType,
			"reason", err.Error())
		s.metrics.IncrementCounter("account_creation", map[string]string{"status": "rejected"})
		return nil, err
	}

	accountNumber, err := s.accountRepo.GenerateUniqueAccountNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account number: %w", err)
	}

	account := s.buildAccount(req, customerID, accountNumber)
	account.ApplyTypeDefaults()

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"account_number", account.AccountNumber,
		"account_type", account.AccountType,
		"customer_id", customerID)
	s.metrics.IncrementCounter("account_creation", map[string]string{"status": "success"})

	s.notifier.AccountCreated(ctx, account)

	return account, nil
}

func (s *accountService) buildAccount(req *dto.AccountRequest, customerID uuid.UUID, accountNumber string) *models.Account {
	account := &models.Account{
		AccountNumber:            accountNumber,
		AccountType:              req.AccountType,
		CustomerID:               customerID,
		CommissionPerTransaction: models.DefaultCommissionPerTransaction,
		FreeTransactionsPerMonth: models.DefaultFreeTransactionsPerMonth,
		Holders:                  models.StringList(req.Holders),
		AuthorizedSigners:        models.StringList(req.AuthorizedSigners),
	}

	if req.InitialBalance != nil {
		account.Balance = *req.InitialBalance
	}
	if req.MaintenanceFee != nil {
		account.MaintenanceFee = *req.MaintenanceFee
	}
	if req.MinimumOpeningAmount != nil {
		account.MinimumOpeningAmount = *req.MinimumOpeningAmount
	}
	if req.CommissionPerTransaction != nil {
		account.CommissionPerTransaction = *req.CommissionPerTransaction
	}
	if req.FreeTransactionsPerMonth != nil {
		account.FreeTransactionsPerMonth = *req.FreeTransactionsPerMonth
	}
	if req.MaxMonthlyTransactions != nil {
		account.MaxMonthlyTransactions = req.MaxMonthlyTransactions
	}
	if req.TransactionDay != nil {
		account.TransactionDay = req.TransactionDay
	}
	if req.MinimumDailyAverage != nil {
		account.MinimumDailyAverage = req.MinimumDailyAverage
	}

	return account
}

// GetAccountByID retrieves an account by its id
func (s *accountService) GetAccountByID(id uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAccountByNumber retrieves an account by its account number
func (s *accountService) GetAccountByNumber(accountNumber string) (*models.Account, error) {
	account, err := s.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return account, nil
}

// GetCustomerAccounts retrieves all accounts owned by a customer
func (s *accountService) GetCustomerAccounts(customerID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer accounts: %w", err)
	}
	return accounts, nil
}

// GetAllAccounts retrieves every account
func (s *accountService) GetAllAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies the requested changes guarded by the version the
// caller last read
func (s *accountService) UpdateAccount(ctx context.Context, id uuid.UUID, req *dto.AccountUpdateRequest) (*models.Account, error) {
	account, err := s.GetAccountByID(id)
	if err != nil {
		return nil, err
	}

	s.applyUpdates(account, req)
	account.Version = req.Version

	if err := s.accountRepo.Update(account); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, repositories.ErrVersionConflict):
			s.logger.Warn("account update rejected on stale version",
				"account_id", id,
				"requested_version", req.Version)
			return nil, ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.logger.Info("account updated", "account_id", id, "version", account.Version)
	s.notifier.AccountUpdated(ctx, account)

	return account, nil
}

func (s *accountService) applyUpdates(account *models.Account, req *dto.AccountUpdateRequest) {
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.MaintenanceFee != nil {
		account.MaintenanceFee = *req.MaintenanceFee
	}
	if req.MaxMonthlyTransactions != nil {
		account.MaxMonthlyTransactions = req.MaxMonthlyTransactions
	}
	if req.TransactionDay != nil {
		account.TransactionDay = req.TransactionDay
	}
	if req.Holders != nil {
		account.Holders = models.StringList(req.Holders)
	}
	if req.AuthorizedSigners != nil {
		account.AuthorizedSigners = models.StringList(req.AuthorizedSigners)
	}
	if req.FreeTransactionsPerMonth != nil {
		account.FreeTransactionsPerMonth = *req.FreeTransactionsPerMonth
	}
	if req.CommissionPerTransaction != nil {
		account.CommissionPerTransaction = *req.CommissionPerTransaction
	}
	if req.MinimumDailyAverage != nil {
		account.MinimumDailyAverage = req.MinimumDailyAverage
	}
}

// DeleteAccount removes an account
func (s *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.accountRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("account deleted", "account_id", id)
	s.metrics.IncrementCounter("account_deletion", map[string]string{"status": "success"})
	s.notifier.AccountDeleted(ctx, id)

	return nil
}
