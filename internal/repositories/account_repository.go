package repositories

import (
	"errors"
	"fmt"
	"sync"

	"deposit-accounts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrVersionConflict     = errors.New("account was modified concurrently")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
	mu sync.Mutex // For account number generation
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByAccountNumber retrieves an account by account number
func (r *accountRepository) GetByAccountNumber(accountNumber string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("account_number = ?", accountNumber).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// GetByCustomerID retrieves all accounts owned by a customer
func (r *accountRepository) GetByCustomerID(customerID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// GetAll retrieves all accounts
func (r *accountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// CountByCustomerIDAndType counts a customer's accounts of the given type
func (r *accountRepository) CountByCustomerIDAndType(customerID uuid.UUID, accountType string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).
		Where("customer_id = ? AND account_type = ?", customerID, accountType).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts by type: %w", err)
	}
	return count, nil
}

// Update persists an account guarded by its version. The version the caller
// loaded must still be current or the update is rejected with
// ErrVersionConflict, so concurrent writers cannot silently overwrite each
// other's commission counters.
func (r *accountRepository) Update(account *models.Account) error {
	expected := account.Version
	account.Version = expected + 1

	result := r.db.Model(&models.Account{}).
		Where("id = ? AND version = ?", account.ID, expected).
		Select("*").Omit("id", "created_at").
		Updates(account)

	if result.Error != nil {
		account.Version = expected
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		account.Version = expected

		var count int64
		if err := r.db.Model(&models.Account{}).
			Where("id = ?", account.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check account existence: %w", err)
		}
		if count == 0 {
			return ErrAccountNotFound
		}
		return ErrVersionConflict
	}

	return nil
}

// Delete removes an account
func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Account{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// CheckAccountNumberExists checks if an account number already exists
func (r *accountRepository) CheckAccountNumberExists(accountNumber string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account number existence: %w", err)
	}
	return count > 0, nil
}

// GenerateUniqueAccountNumber generates an account number not yet in use
func (r *accountRepository) GenerateUniqueAccountNumber() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxAttempts := 10
	for i := 0; i < maxAttempts; i++ {
		accountNumber := models.GenerateAccountNumber()

		exists, err := r.CheckAccountNumberExists(accountNumber)
		if err != nil {
			return "", fmt.Errorf("failed to check account number uniqueness: %w", err)
		}

		if !exists {
			return accountNumber, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique account number after %d attempts", maxAttempts)
}
