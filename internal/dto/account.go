package dto

import (
	"time"

	"deposit-accounts/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// AccountRequest represents the request payload for creating or updating a deposit account
type AccountRequest struct {
	AccountType              string           `json:"account_type" validate:"required,deposit_account_type"`
	CustomerID               string           `json:"customer_id" validate:"required,uuid"`
	InitialBalance           *decimal.Decimal `json:"initial_balance,omitempty" validate:"omitempty,non_negative_amount"`
	MaintenanceFee           *decimal.Decimal `json:"maintenance_fee,omitempty" validate:"omitempty,non_negative_amount"`
	MaxMonthlyTransactions   *int             `json:"max_monthly_transactions,omitempty" validate:"omitempty,min=1"`
	TransactionDay           *int             `json:"transaction_day,omitempty" validate:"omitempty,transaction_day"`
	Holders                  []string         `json:"holders,omitempty" validate:"omitempty,dive,uuid"`
	AuthorizedSigners        []string         `json:"authorized_signers,omitempty" validate:"omitempty,dive,uuid"`
	MinimumOpeningAmount     *decimal.Decimal `json:"minimum_opening_amount,omitempty" validate:"omitempty,non_negative_amount"`
	FreeTransactionsPerMonth *int             `json:"free_transactions_per_month,omitempty" validate:"omitempty,min=0"`
	CommissionPerTransaction *decimal.Decimal `json:"commission_per_transaction,omitempty" validate:"omitempty,non_negative_amount"`
	MinimumDailyAverage      *decimal.Decimal `json:"minimum_daily_average,omitempty" validate:"omitempty,non_negative_amount"`
}

// AccountUpdateRequest represents the request payload for updating a deposit
// account. Version must carry the version the caller last read; a stale
// version is rejected with a conflict.
type AccountUpdateRequest struct {
	Balance                  *decimal.Decimal `json:"balance,omitempty" validate:"omitempty,non_negative_amount"`
	MaintenanceFee           *decimal.Decimal `json:"maintenance_fee,omitempty" validate:"omitempty,non_negative_amount"`
	MaxMonthlyTransactions   *int             `json:"max_monthly_transactions,omitempty" validate:"omitempty,min=1"`
	TransactionDay           *int             `json:"transaction_day,omitempty" validate:"omitempty,transaction_day"`
	Holders                  []string         `json:"holders,omitempty" validate:"omitempty,dive,uuid"`
	AuthorizedSigners        []string         `json:"authorized_signers,omitempty" validate:"omitempty,dive,uuid"`
	FreeTransactionsPerMonth *int             `json:"free_transactions_per_month,omitempty" validate:"omitempty,min=0"`
	CommissionPerTransaction *decimal.Decimal `json:"commission_per_transaction,omitempty" validate:"omitempty,non_negative_amount"`
	MinimumDailyAverage      *decimal.Decimal `json:"minimum_daily_average,omitempty" validate:"omitempty,non_negative_amount"`
	Version                  int              `json:"version" validate:"min=0"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses, including the
// commission quote for the next transaction
type AccountResponse struct {
	*models.Account
	NextTransactionCommission decimal.Decimal `json:"next_transaction_commission"`
}

// NewAccountResponse builds an account response from the entity
func NewAccountResponse(account *models.Account) *AccountResponse {
	return &AccountResponse{
		Account:                   account,
		NextTransactionCommission: account.NextTransactionCommission(),
	}
}

// AccountListResponse represents a list of accounts
type AccountListResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int                `json:"total"`
}

// NewAccountListResponse builds a list response from entities
func NewAccountListResponse(accounts []models.Account) *AccountListResponse {
	responses := make([]*AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, NewAccountResponse(&accounts[i]))
	}
	return &AccountListResponse{
		Accounts: responses,
		Total:    len(responses),
	}
}

// CommissionQuoteResponse reports the commission the next transaction would
// incur without applying it
type CommissionQuoteResponse struct {
	AccountID                    string          `json:"account_id"`
	CurrentMonthTransactionCount int             `json:"current_month_transaction_count"`
	FreeTransactionsPerMonth     int             `json:"free_transactions_per_month"`
	NextTransactionCommission    decimal.Decimal `json:"next_transaction_commission"`
	HasFreeTransactionsAvailable bool            `json:"has_free_transactions_available"`
}

// CommissionAppliedResponse reports the commission charged for a transaction
// together with the updated counters
type CommissionAppliedResponse struct {
	AccountID                    string          `json:"account_id"`
	Commission                   decimal.Decimal `json:"commission"`
	CurrentMonthTransactionCount int             `json:"current_month_transaction_count"`
	FreeTransactionsPerMonth     int             `json:"free_transactions_per_month"`
}

// CounterResetResponse reports the state after an explicit monthly counter reset
type CounterResetResponse struct {
	AccountID                    string    `json:"account_id"`
	CurrentMonthTransactionCount int       `json:"current_month_transaction_count"`
	ResetAt                      time.Time `json:"reset_at"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
