package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionPatch carries a partial transaction update. Pointer fields
// distinguish "update this field" from "leave it alone"; a nil or empty id
// list leaves the corresponding association set untouched (an explicit empty
// list is not a clear — the mandatory ≥1 association invariant would break).
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Type        *string
	Description *string
	Date        *string
	UserIDs     []uuid.UUID
	CategoryIDs []uuid.UUID
}

// UserPatch carries a partial user update with the same presence semantics.
type UserPatch struct {
	Username *string
	Email    *string
	AboutMe  *string
	Password *string
}
