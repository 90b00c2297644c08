package repositories

import (
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetByIDs(ids []uuid.UUID) ([]models.Category, error)
	List() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository
// operations. Create and Update are atomic units: the transaction row and its
// association rows are committed together or not at all. Deletes cascade the
// association rows for the removed entity; no orphaned pairs survive any of
// these operations.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction, users []models.User, categories []models.Category) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List() ([]models.Transaction, error)
	Update(transaction *models.Transaction, users []models.User, categories []models.Category) error
	Delete(id uuid.UUID) error

	SumByCategory(userID uuid.UUID, start, end time.Time, transactionType, categoryName string) ([]models.CategoryTotal, error)
	GetForUserByDateRange(userID uuid.UUID, transactionType string, start, end time.Time) ([]models.Transaction, error)
}
