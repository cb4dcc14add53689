package repositories

import (
	"deposit-accounts/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for the account document store
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByAccountNumber(accountNumber string) (*models.Account, error)
	GetByCustomerID(customerID uuid.UUID) ([]models.Account, error)
	GetAll() ([]models.Account, error)
	CountByCustomerIDAndType(customerID uuid.UUID, accountType string) (int64, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
	CheckAccountNumberExists(accountNumber string) (bool, error)
	GenerateUniqueAccountNumber() (string, error)
}
