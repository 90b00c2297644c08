package dto

import (
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for recording a transaction. The
// date string, when present, must use the "2006-01-02 15:04:05" layout.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,transaction_type"`
	Description string          `json:"description" validate:"max=255"`
	Date        string          `json:"date" validate:"omitempty,transaction_datetime"`
	UserIDs     []uuid.UUID     `json:"user_ids" validate:"required,min=1"`
	CategoryIDs []uuid.UUID     `json:"category_ids" validate:"required,min=1"`
}

// UpdateTransactionRequest carries partial transaction updates. Absent scalar
// fields stay unchanged; an absent or empty id list leaves that association
// set untouched, a non-empty list replaces it wholesale.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" validate:"omitempty,transaction_type"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Date        *string          `json:"date" validate:"omitempty,transaction_datetime"`
	UserIDs     []uuid.UUID      `json:"user_ids"`
	CategoryIDs []uuid.UUID      `json:"category_ids"`
}

// ToPatch converts the request into a service-level patch
func (r UpdateTransactionRequest) ToPatch() models.TransactionPatch {
	return models.TransactionPatch{
		Amount:      r.Amount,
		Type:        r.Type,
		Description: r.Description,
		Date:        r.Date,
		UserIDs:     r.UserIDs,
		CategoryIDs: r.CategoryIDs,
	}
}

// TransactionResponse is the public representation of a transaction with its
// resolved user ids and category names
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	UserIDs     []uuid.UUID     `json:"user_ids"`
	Categories  []string        `json:"categories"`
}

// NewTransactionResponse maps a transaction model to its response form
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		Description: transaction.Description,
		Date:        transaction.Date.Format(models.DateTimeLayout),
		UserIDs:     transaction.UserIDs(),
		Categories:  transaction.CategoryNames(),
	}
}

// NewTransactionListResponse maps a slice of transaction models
func NewTransactionListResponse(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = NewTransactionResponse(&transactions[i])
	}
	return responses
}
