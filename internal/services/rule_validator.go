package services

import (
	"fmt"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/models"

	"github.com/shopspring/decimal"
)

// BusinessRuleError reports a rejected account creation with the rule that
// failed
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

func newBusinessRuleError(format string, args ...interface{}) *BusinessRuleError {
	return &BusinessRuleError{Reason: fmt.Sprintf(format, args...)}
}

// accountPolicy describes what a customer type may do with an account type
type accountPolicy struct {
	allowed            bool
	onePerCustomer     bool
	holdersAllowed     bool
	requiresCreditCard bool
}

type policyKey struct {
	customerType string
	accountType  string
}

// accountPolicies is the customer-type / account-type rule matrix. Adding a
// customer or account type is a table change, not new branching.
var accountPolicies = map[policyKey]accountPolicy{
	{dto.CustomerTypePersonal, models.AccountTypeSaving}:    {allowed: true, onePerCustomer: true},
	{dto.CustomerTypePersonal, models.AccountTypeChecking}:  {allowed: true, onePerCustomer: true},
	{dto.CustomerTypePersonal, models.AccountTypeFixedTerm}: {allowed: true, onePerCustomer: true},

	{dto.CustomerTypePersonalVIP, models.AccountTypeSaving}:    {allowed: true, onePerCustomer: true, requiresCreditCard: true},
	{dto.CustomerTypePersonalVIP, models.AccountTypeChecking}:  {allowed: true, onePerCustomer: true},
	{dto.CustomerTypePersonalVIP, models.AccountTypeFixedTerm}: {allowed: true, onePerCustomer: true},

	{dto.CustomerTypeBusiness, models.AccountTypeSaving}:    {allowed: false},
	{dto.CustomerTypeBusiness, models.AccountTypeChecking}:  {allowed: true, holdersAllowed: true},
	{dto.CustomerTypeBusiness, models.AccountTypeFixedTerm}: {allowed: false},

	{dto.CustomerTypeBusinessPyme, models.AccountTypeSaving}:    {allowed: false},
	{dto.CustomerTypeBusinessPyme, models.AccountTypeChecking}:  {allowed: true, holdersAllowed: true, requiresCreditCard: true},
	{dto.CustomerTypeBusinessPyme, models.AccountTypeFixedTerm}: {allowed: false},
}

// accountRuleValidator implements AccountRuleValidatorInterface
type accountRuleValidator struct{}

// NewAccountRuleValidator creates the account creation rule validator
func NewAccountRuleValidator() AccountRuleValidatorInterface {
	return &accountRuleValidator{}
}

// ValidateCreation applies the creation rules in order; the first failing
// rule wins and nothing else is evaluated.
func (v *accountRuleValidator) ValidateCreation(req *dto.AccountRequest, customer *dto.CustomerResponse, existingOfType int64) error {
	if err := v.validateMinimumBalance(req); err != nil {
		return err
	}

	policy, ok := accountPolicies[policyKey{customer.CustomerType, req.AccountType}]
	if !ok || !policy.allowed {
		return newBusinessRuleError("%s customers may only open CHECKING accounts", customer.CustomerType)
	}

	if policy.onePerCustomer && existingOfType >= 1 {
		return newBusinessRuleError("customer already holds a %s account", req.AccountType)
	}

	if !policy.holdersAllowed && (len(req.Holders) > 0 || len(req.AuthorizedSigners) > 0) {
		return newBusinessRuleError("%s customers may not register holders or authorized signers", customer.CustomerType)
	}

	if policy.requiresCreditCard && !customer.HasCreditCard {
		return newBusinessRuleError("%s customer requires a credit card to open a %s account", customer.CustomerType, req.AccountType)
	}

	return nil
}

// validateMinimumBalance checks the requested opening balance against the
// requested minimum opening amount
func (v *accountRuleValidator) validateMinimumBalance(req *dto.AccountRequest) error {
	if req.MinimumOpeningAmount == nil {
		return nil
	}

	balance := decimal.Zero
	if req.InitialBalance != nil {
		balance = *req.InitialBalance
	}

	if balance.LessThan(*req.MinimumOpeningAmount) {
		return newBusinessRuleError("initial balance %s is below minimum opening amount %s",
			balance.StringFixed(2), req.MinimumOpeningAmount.StringFixed(2))
	}

	return nil
}
