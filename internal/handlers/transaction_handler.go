package handlers

import (
	stderrors "errors"
	"net/http"

	"spendtrack/internal/dto"
	"spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a transaction together with its user and category
// association sets in one atomic operation
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(
		req.Amount, req.Type, req.Description, req.Date, req.UserIDs, req.CategoryIDs)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetTransaction retrieves a transaction with its resolved associations
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.Get(id)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// ListTransactions retrieves all transactions with resolved associations
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// UpdateTransaction applies a partial update; non-empty id lists replace the
// matching association set wholesale
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Update(id, req.ToPatch())
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction and both association sets
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.Delete(id); err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TransactionHandler) mapTransactionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, services.ErrInvalidDateFormat):
		return SendError(c, errors.TransactionInvalidDate)
	case stderrors.Is(err, services.ErrUsersRequired),
		stderrors.Is(err, services.ErrCategoriesRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrNoValidUsers):
		return SendError(c, errors.TransactionNoValidUsers)
	case stderrors.Is(err, services.ErrNoValidCategories):
		return SendError(c, errors.TransactionNoValidCategories)
	default:
		return SendSystemError(c, err)
	}
}
