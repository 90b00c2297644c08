package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeExpense = "expense"
	TransactionTypeRevenue = "revenue"
)

var ErrInvalidTransactionType = errors.New("invalid transaction type")

// Transaction is a shared financial record. It is linked to at least one user
// and at least one category through the two junction sets; the repository layer
// maintains those rows explicitly as part of each write.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`
	Description string          `gorm:"type:varchar(255)" json:"description,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Loaded explicitly by the repository, never by gorm itself.
	Users      []User     `gorm:"-" json:"-"`
	Categories []Category `gorm:"-" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now.UTC()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	return nil
}

// UserIDs returns the ids of the loaded user associations.
func (t *Transaction) UserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Users))
	for _, u := range t.Users {
		ids = append(ids, u.ID)
	}
	return ids
}

// CategoryNames returns the names of the loaded category associations.
func (t *Transaction) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	return names
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks the closed expense/revenue enumeration.
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeExpense, TransactionTypeRevenue:
		return true
	default:
		return false
	}
}

// UserTransaction links a user to a shared transaction. The composite primary
// key keeps the pair unique; deleting either side removes the row.
type UserTransaction struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	TransactionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"transaction_id"`
}

func (UserTransaction) TableName() string {
	return "user_transactions"
}

// TransactionCategory tags a transaction with a category, same cascade
// contract as UserTransaction.
type TransactionCategory struct {
	TransactionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"transaction_id"`
	CategoryID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (TransactionCategory) TableName() string {
	return "transaction_categories"
}
