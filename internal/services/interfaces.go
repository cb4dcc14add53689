package services

import (
	"context"
	"time"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines deposit account lifecycle operations
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req *dto.AccountRequest) (*models.Account, error)
	GetAccountByID(id uuid.UUID) (*models.Account, error)
	GetAccountByNumber(accountNumber string) (*models.Account, error)
	GetCustomerAccounts(customerID uuid.UUID) ([]models.Account, error)
	GetAllAccounts() ([]models.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, req *dto.AccountUpdateRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// CommissionServiceInterface defines the monthly transaction commission operations
type CommissionServiceInterface interface {
	QuoteNextTransaction(accountID uuid.UUID) (*models.Account, error)
	ApplyTransactionCommission(ctx context.Context, accountID uuid.UUID) (*models.Account, decimal.Decimal, error)
	ResetMonthlyCounter(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// CustomerServiceInterface resolves customers from the customer directory
type CustomerServiceInterface interface {
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error)
}

// AccountRuleValidatorInterface gates account creation with customer-type
// business rules
type AccountRuleValidatorInterface interface {
	ValidateCreation(req *dto.AccountRequest, customer *dto.CustomerResponse, existingOfType int64) error
}

// AccountNotifierInterface delivers account lifecycle events best-effort
type AccountNotifierInterface interface {
	AccountCreated(ctx context.Context, account *models.Account)
	AccountUpdated(ctx context.Context, account *models.Account)
	AccountDeleted(ctx context.Context, accountID uuid.UUID)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	RecordEventPublished(eventType string)
	RecordEventPublishFailure(eventType string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
