package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeSaving    = "SAVING"
	AccountTypeChecking  = "CHECKING"
	AccountTypeFixedTerm = "FIXED_TERM"

	// AccountNumberPrefix is the fixed literal prefix for every account number
	AccountNumberPrefix = "ACC-"

	// DefaultFreeTransactionsPerMonth is the monthly commission-free allowance
	DefaultFreeTransactionsPerMonth = 5

	// DefaultSavingMonthlyTransactionCap is the hard cap applied to SAVING accounts
	DefaultSavingMonthlyTransactionCap = 5

	// DefaultFixedTermTransactionDay is the day of month FIXED_TERM accounts may transact
	DefaultFixedTermTransactionDay = 1
)

var (
	// DefaultCommissionPerTransaction is charged once the free allowance is exhausted
	DefaultCommissionPerTransaction = decimal.NewFromFloat(2.00)

	// DefaultCheckingMaintenanceFee is the monthly fee for CHECKING accounts
	DefaultCheckingMaintenanceFee = decimal.NewFromFloat(10.00)
)

var (
	ErrInvalidAccountType    = errors.New("invalid account type")
	ErrNegativeBalance       = errors.New("balance cannot be negative")
	ErrNegativeFee           = errors.New("maintenance fee cannot be negative")
	ErrNegativeOpeningAmount = errors.New("minimum opening amount cannot be negative")
	ErrNegativeCommission    = errors.New("commission per transaction cannot be negative")
	ErrInvalidTransactionDay = errors.New("transaction day must be between 1 and 31")
)

// StringList is an ordered list of customer IDs stored as a JSON column.
// Used for the holders and authorized signers of business accounts.
type StringList []string

// Value implements driver.Valuer for database serialization
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for database deserialization
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	return json.Unmarshal(data, l)
}

// Account represents a deposit account (passive product) owned by a customer.
// SAVING accounts carry a monthly transaction cap, CHECKING accounts a
// maintenance fee, and FIXED_TERM accounts a single permitted transaction day.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountNumber string    `gorm:"type:varchar(14);uniqueIndex;not null" json:"account_number"`
	AccountType   string    `gorm:"type:varchar(20);not null" json:"account_type"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`

	Balance                  decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	MaintenanceFee           decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"maintenance_fee"`
	MinimumOpeningAmount     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"minimum_opening_amount"`
	CommissionPerTransaction decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"commission_per_transaction"`
	MinimumDailyAverage      *decimal.Decimal `gorm:"type:decimal(15,2)" json:"minimum_daily_average,omitempty"`

	// MaxMonthlyTransactions is the hard monthly cap (SAVING only). Nil means unlimited.
	MaxMonthlyTransactions *int `json:"max_monthly_transactions,omitempty"`
	// CurrentMonthTransactions counts toward the hard cap. Tracked separately
	// from CurrentMonthTransactionCount, which feeds the commission engine.
	CurrentMonthTransactions     int  `gorm:"not null;default:0" json:"current_month_transactions"`
	FreeTransactionsPerMonth     int  `gorm:"not null;default:5" json:"free_transactions_per_month"`
	CurrentMonthTransactionCount int  `gorm:"not null;default:0" json:"current_month_transaction_count"`
	LastTransactionMonth         *int `json:"last_transaction_month,omitempty"`
	LastTransactionYear          *int `json:"last_transaction_year,omitempty"`

	// TransactionDay is the day of month transactions are permitted (FIXED_TERM only)
	TransactionDay *int `json:"transaction_day,omitempty"`

	Holders           StringList `gorm:"type:jsonb" json:"holders"`
	AuthorizedSigners StringList `gorm:"type:jsonb" json:"authorized_signers"`

	// Version is the optimistic concurrency token, incremented on every save
	Version int `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Holders == nil {
		a.Holders = StringList{}
	}
	if a.AuthorizedSigners == nil {
		a.AuthorizedSigners = StringList{}
	}

	// Set timestamps if not already set (for tests)
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}

	if a.AccountNumber == "" {
		return errors.New("account number is required")
	}

	if !strings.HasPrefix(a.AccountNumber, AccountNumberPrefix) {
		return errors.New("account number must start with " + AccountNumberPrefix)
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}
	if a.MaintenanceFee.IsNegative() {
		return ErrNegativeFee
	}
	if a.MinimumOpeningAmount.IsNegative() {
		return ErrNegativeOpeningAmount
	}
	if a.CommissionPerTransaction.IsNegative() {
		return ErrNegativeCommission
	}

	if a.TransactionDay != nil && (*a.TransactionDay < 1 || *a.TransactionDay > 31) {
		return ErrInvalidTransactionDay
	}

	return nil
}

// IsValidAccountType checks whether the given type is a supported deposit account type
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeSaving, AccountTypeChecking, AccountTypeFixedTerm:
		return true
	}
	return false
}

// IsBusinessAccount reports whether the account has additional holders or
// authorized signers, which classifies it as a business account
func (a *Account) IsBusinessAccount() bool {
	return len(a.Holders) > 0 || len(a.AuthorizedSigners) > 0
}

// HasReachedTransactionLimit reports whether the hard monthly transaction cap
// is exhausted. A nil cap means unlimited and never reaches the limit.
func (a *Account) HasReachedTransactionLimit() bool {
	if a.MaxMonthlyTransactions == nil {
		return false
	}
	return a.CurrentMonthTransactions >= *a.MaxMonthlyTransactions
}

// HasFreeTransactionsAvailable reports whether the next transaction is still
// within the monthly commission-free allowance
func (a *Account) HasFreeTransactionsAvailable() bool {
	return a.CurrentMonthTransactionCount < a.FreeTransactionsPerMonth
}

// NextTransactionCommission returns the commission the next transaction would
// incur. Zero while free transactions remain, the per-transaction commission
// afterwards. Pure; callers must invoke it before IncrementTransactionCount.
func (a *Account) NextTransactionCommission() decimal.Decimal {
	if a.HasFreeTransactionsAvailable() {
		return decimal.Zero
	}
	return a.CommissionPerTransaction
}

// IncrementTransactionCount records a transaction against the commission
// counter for the given accounting period. A period change (or an
// uninitialized period) resets the counter before incrementing, so counts
// never carry over between months.
func (a *Account) IncrementTransactionCount(month, year int) {
	if a.LastTransactionMonth == nil || a.LastTransactionYear == nil ||
		*a.LastTransactionMonth != month || *a.LastTransactionYear != year {
		a.CurrentMonthTransactionCount = 0
		a.LastTransactionMonth = &month
		a.LastTransactionYear = &year
	}

	a.CurrentMonthTransactionCount++
}

// ResetMonthlyCounter zeroes the commission counter and stamps the accounting
// period from the supplied time. Invoked by an external scheduled or manual
// trigger, independent of transaction activity.
func (a *Account) ResetMonthlyCounter(now time.Time) {
	month := int(now.Month())
	year := now.Year()

	a.CurrentMonthTransactionCount = 0
	a.LastTransactionMonth = &month
	a.LastTransactionYear = &year
}

// ApplyTypeDefaults enforces the per-type configuration on creation and update:
// SAVING accounts have no maintenance fee and a default transaction cap,
// CHECKING accounts have a default maintenance fee and no cap, and FIXED_TERM
// accounts have no fee and a default transaction day.
func (a *Account) ApplyTypeDefaults() {
	switch a.AccountType {
	case AccountTypeSaving:
		a.MaintenanceFee = decimal.Zero
		if a.MaxMonthlyTransactions == nil {
			limit := DefaultSavingMonthlyTransactionCap
			a.MaxMonthlyTransactions = &limit
		}

	case AccountTypeChecking:
		if a.MaintenanceFee.IsZero() {
			a.MaintenanceFee = DefaultCheckingMaintenanceFee
		}
		a.MaxMonthlyTransactions = nil // unlimited

	case AccountTypeFixedTerm:
		a.MaintenanceFee = decimal.Zero
		if a.TransactionDay == nil {
			day := DefaultFixedTermTransactionDay
			a.TransactionDay = &day
		}
	}
}

// GenerateAccountNumber generates an account number with the fixed prefix and
// 10 uppercase alphanumeric characters derived from a random UUID
func GenerateAccountNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return AccountNumberPrefix + strings.ToUpper(raw[:10])
}
