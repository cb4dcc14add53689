package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "deposit-accounts/internal/errors"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles deposit account HTTP requests
type AccountHandler struct {
	accountService    services.AccountServiceInterface
	commissionService services.CommissionServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, commissionService services.CommissionServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService:    accountService,
		commissionService: commissionService,
	}
}

// RegisterRoutes wires the account endpoints onto the given group
func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/accounts", h.CreateAccount)
	g.GET("/accounts", h.GetAllAccounts)
	g.GET("/accounts/:id", h.GetAccount)
	g.GET("/accounts/number/:accountNumber", h.GetAccountByNumber)
	g.GET("/accounts/customer/:customerId", h.GetCustomerAccounts)
	g.PUT("/accounts/:id", h.UpdateAccount)
	g.DELETE("/accounts/:id", h.DeleteAccount)
	g.GET("/accounts/:id/commission", h.QuoteCommission)
	g.POST("/accounts/:id/commission", h.ApplyCommission)
	g.POST("/accounts/:id/commission/reset", h.ResetMonthlyCounter)
}

// CreateAccount opens a new deposit account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.AccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), &req)
	if err != nil {
		var ruleErr *services.BusinessRuleError
		switch {
		case errors.Is(err, services.ErrInvalidCustomerID):
			return SendError(c, apierrors.CustomerInvalidID)
		case errors.Is(err, services.ErrCustomerNotFound):
			return SendError(c, apierrors.CustomerNotFound)
		case errors.Is(err, services.ErrCustomerServiceUnavailable):
			return SendError(c, apierrors.CustomerServiceUnavailable)
		case errors.As(err, &ruleErr):
			return SendError(c, apierrors.BusinessRuleViolation, apierrors.WithDetails(ruleErr.Reason))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// GetAllAccounts lists every account
func (h *AccountHandler) GetAllAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAllAccounts()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts))
}

// GetAccount retrieves an account by its id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// GetAccountByNumber retrieves an account by its account number
func (h *AccountHandler) GetAccountByNumber(c echo.Context) error {
	accountNumber := c.Param("accountNumber")
	if accountNumber == "" {
		return SendError(c, apierrors.AccountInvalidNumber)
	}

	account, err := h.accountService.GetAccountByNumber(accountNumber)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// GetCustomerAccounts lists all accounts owned by a customer
func (h *AccountHandler) GetCustomerAccounts(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	accounts, err := h.accountService.GetCustomerAccounts(customerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts))
}

// UpdateAccount applies changes to an account, guarded by the version the
// caller last read
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	var req dto.AccountUpdateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	account, err := h.accountService.UpdateAccount(c.Request().Context(), accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return SendError(c, apierrors.AccountNotFound)
		case errors.Is(err, services.ErrVersionConflict):
			return SendError(c, apierrors.ConflictVersionMismatch)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// DeleteAccount removes an account
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	if err := h.accountService.DeleteAccount(c.Request().Context(), accountID); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

// QuoteCommission reports the commission the next transaction would incur
// without recording anything
func (h *AccountHandler) QuoteCommission(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	account, err := h.commissionService.QuoteNextTransaction(accountID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CommissionQuoteResponse{
		AccountID:                    account.ID.String(),
		CurrentMonthTransactionCount: account.CurrentMonthTransactionCount,
		FreeTransactionsPerMonth:     account.FreeTransactionsPerMonth,
		NextTransactionCommission:    account.NextTransactionCommission(),
		HasFreeTransactionsAvailable: account.HasFreeTransactionsAvailable(),
	})
}

// ApplyCommission records one transaction against the account and charges
// the commission it was priced at
func (h *AccountHandler) ApplyCommission(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	account, commission, err := h.commissionService.ApplyTransactionCommission(c.Request().Context(), accountID)
	if err != nil {
		var ruleErr *services.BusinessRuleError
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return SendError(c, apierrors.AccountNotFound)
		case errors.Is(err, services.ErrVersionConflict):
			return SendError(c, apierrors.ConflictVersionMismatch)
		case errors.As(err, &ruleErr):
			return SendError(c, apierrors.BusinessRuleViolation, apierrors.WithDetails(ruleErr.Reason))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CommissionAppliedResponse{
		AccountID:                    account.ID.String(),
		Commission:                   commission,
		CurrentMonthTransactionCount: account.CurrentMonthTransactionCount,
		FreeTransactionsPerMonth:     account.FreeTransactionsPerMonth,
	})
}

// ResetMonthlyCounter zeroes the monthly commission counter
func (h *AccountHandler) ResetMonthlyCounter(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	account, err := h.commissionService.ResetMonthlyCounter(c.Request().Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return SendError(c, apierrors.AccountNotFound)
		case errors.Is(err, services.ErrVersionConflict):
			return SendError(c, apierrors.ConflictVersionMismatch)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CounterResetResponse{
		AccountID:                    account.ID.String(),
		CurrentMonthTransactionCount: account.CurrentMonthTransactionCount,
		ResetAt:                      time.Now().UTC(),
	})
}
