package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"deposit-accounts/internal/models"
	"deposit-accounts/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// commissionService implements CommissionServiceInterface
type commissionService struct {
	accountRepo repositories.AccountRepositoryInterface
	notifier    AccountNotifierInterface
	logger      *slog.Logger
	metrics     MetricsRecorderInterface
	now         func() time.Time
}

// NewCommissionService creates the transaction commission service
func NewCommissionService(
	accountRepo repositories.AccountRepositoryInterface,
	notifier AccountNotifierInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) CommissionServiceInterface {
	return &commissionService{
		accountRepo: accountRepo,
		notifier:    notifier,
		logger:      logger,
		metrics:     metrics,
		now:         time.Now,
	}
}

// QuoteNextTransaction returns the account with its current commission state
// without mutating anything
func (s *commissionService) QuoteNextTransaction(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ApplyTransactionCommission records one transaction against the account:
// rejects when the hard monthly cap is exhausted, prices the commission from
// the pre-increment counter, charges it against the balance, and advances
// both monthly counters.
func (s *commissionService) ApplyTransactionCommission(ctx context.Context, accountID uuid.UUID) (*models.Account, decimal.Decimal, error) {
	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	if account.HasReachedTransactionLimit() {
		s.metrics.IncrementCounter("commission_application", map[string]string{"status": "limit_reached"})
		return nil, decimal.Zero, newBusinessRuleError("account %s has reached its monthly transaction limit of %d",
			account.AccountNumber, *account.MaxMonthlyTransactions)
	}

	// Price before incrementing: the transaction being recorded is the one
	// being charged, so it must not count against its own allowance.
	commission := account.NextTransactionCommission()

	now := s.now().UTC()
	account.IncrementTransactionCount(int(now.Month()), now.Year())
	account.CurrentMonthTransactions++

	if commission.IsPositive() {
		account.Balance = account.Balance.Sub(commission)
	}

	if err := s.saveAccount(account); err != nil {
		return nil, decimal.Zero, err
	}

	s.logger.Info("transaction commission applied",
		"account_id", account.ID,
		"commission", commission,
		"current_month_transaction_count", account.CurrentMonthTransactionCount)
	s.metrics.IncrementCounter("commission_application", map[string]string{"status": "success"})
	s.metrics.RecordGauge("commission_charged", commission.InexactFloat64(), nil)

	s.notifier.AccountUpdated(ctx, account)

	return account, commission, nil
}

// ResetMonthlyCounter zeroes the commission counter on an explicit trigger
func (s *commissionService) ResetMonthlyCounter(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, err
	}

	account.ResetMonthlyCounter(s.now().UTC())
	account.CurrentMonthTransactions = 0

	if err := s.saveAccount(account); err != nil {
		return nil, err
	}

	s.logger.Info("monthly transaction counter reset", "account_id", account.ID)
	s.metrics.IncrementCounter("counter_reset", map[string]string{"status": "success"})

	s.notifier.AccountUpdated(ctx, account)

	return account, nil
}

func (s *commissionService) getAccount(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *commissionService) saveAccount(account *models.Account) error {
	if err := s.accountRepo.Update(account); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return ErrAccountNotFound
		case errors.Is(err, repositories.ErrVersionConflict):
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}
