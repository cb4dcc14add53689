package services

import (
	"testing"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func creationRequest(accountType string) *dto.AccountRequest {
	return &dto.AccountRequest{
		AccountType: accountType,
		CustomerID:  uuid.New().String(),
	}
}

func customer(customerType string, hasCreditCard bool) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            uuid.New().String(),
		CustomerType:  customerType,
		HasCreditCard: hasCreditCard,
	}
}

func TestRuleValidator_MinimumOpeningBalance(t *testing.T) {
	validator := NewAccountRuleValidator()

	req := creationRequest(models.AccountTypeSaving)
	req.InitialBalance = decimalPtr(50)
	req.MinimumOpeningAmount = decimalPtr(100)

	err := validator.ValidateCreation(req, customer(dto.CustomerTypePersonal, false), 0)
	require.Error(t, err)

	var ruleErr *BusinessRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Contains(t, ruleErr.Reason, "below minimum opening amount")
}

func TestRuleValidator_MinimumOpeningBalance_DefaultsToZeroBalance(t *testing.T) {
	validator := NewAccountRuleValidator()

	req := creationRequest(models.AccountTypeSaving)
	req.MinimumOpeningAmount = decimalPtr(100)

	err := validator.ValidateCreation(req, customer(dto.CustomerTypePersonal, false), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum opening amount")
}

func TestRuleValidator_MinimumBalanceEvaluatedFirst(t *testing.T) {
	validator := NewAccountRuleValidator()

	// Business customer requesting SAVING would also fail the type rule, but
	// the balance rule runs first
	req := creationRequest(models.AccountTypeSaving)
	req.InitialBalance = decimalPtr(10)
	req.MinimumOpeningAmount = decimalPtr(100)

	err := validator.ValidateCreation(req, customer(dto.CustomerTypeBusiness, true), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum opening amount")
}

func TestRuleValidator_PersonalOneAccountPerType(t *testing.T) {
	validator := NewAccountRuleValidator()

	for _, accountType := range []string{models.AccountTypeSaving, models.AccountTypeChecking, models.AccountTypeFixedTerm} {
		t.Run(accountType, func(t *testing.T) {
			req := creationRequest(accountType)

			assert.NoError(t, validator.ValidateCreation(req, customer(dto.CustomerTypePersonal, false), 0))

			err := validator.ValidateCreation(req, customer(dto.CustomerTypePersonal, false), 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "already holds")
		})
	}
}

func TestRuleValidator_PersonalMayNotRegisterHoldersOrSigners(t *testing.T) {
	validator := NewAccountRuleValidator()

	req := creationRequest(models.AccountTypeChecking)
	req.Holders = []string{uuid.New().String()}

	err := validator.ValidateCreation(req, customer(dto.CustomerTypePersonal, false), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holders or authorized signers")

	req = creationRequest(models.AccountTypeChecking)
	req.AuthorizedSigners = []string{uuid.New().String()}

	err = validator.ValidateCreation(req, customer(dto.CustomerTypePersonalVIP, true), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holders or authorized signers")
}

func TestRuleValidator_BusinessOnlyChecking(t *testing.T) {
	validator := NewAccountRuleValidator()

	for _, customerType := range []string{dto.CustomerTypeBusiness, dto.CustomerTypeBusinessPyme} {
		for _, accountType := range []string{models.AccountTypeSaving, models.AccountTypeFixedTerm} {
			err := validator.ValidateCreation(creationRequest(accountType), customer(customerType, true), 0)
			require.Error(t, err, "%s should not open %s", customerType, accountType)
			assert.Contains(t, err.Error(), "CHECKING")
		}
	}
}

func TestRuleValidator_BusinessMultipleCheckingAllowed(t *testing.T) {
	validator := NewAccountRuleValidator()

	req := creationRequest(models.AccountTypeChecking)
	req.Holders = []string{uuid.New().String()}

	// No uniqueness rule for business customers, regardless of existing count
	assert.NoError(t, validator.ValidateCreation(req, customer(dto.CustomerTypeBusiness, false), 7))
}

func TestRuleValidator_CreditCardCrossRules(t *testing.T) {
	validator := NewAccountRuleValidator()

	t.Run("VIP saving requires credit card", func(t *testing.T) {
		req := creationRequest(models.AccountTypeSaving)

		err := validator.ValidateCreation(req, customer(dto.CustomerTypePersonalVIP, false), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credit card")

		assert.NoError(t, validator.ValidateCreation(req, customer(dto.CustomerTypePersonalVIP, true), 0))
	})

	t.Run("VIP checking does not require credit card", func(t *testing.T) {
		req := creationRequest(models.AccountTypeChecking)
		assert.NoError(t, validator.ValidateCreation(req, customer(dto.CustomerTypePersonalVIP, false), 0))
	})

	t.Run("PYME checking requires credit card", func(t *testing.T) {
		req := creationRequest(models.AccountTypeChecking)

		err := validator.ValidateCreation(req, customer(dto.CustomerTypeBusinessPyme, false), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credit card")

		assert.NoError(t, validator.ValidateCreation(req, customer(dto.CustomerTypeBusinessPyme, true), 0))
	})
}
