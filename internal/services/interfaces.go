package services

import (
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	Create(username, email, password, aboutMe string) (*models.User, error)
	Get(id uuid.UUID) (*models.User, error)
	List() ([]models.User, error)
	Update(id uuid.UUID, patch models.UserPatch) (*models.User, error)
	Delete(id uuid.UUID) error
	Authenticate(email, password string) (*models.User, error)
}

// CategoryServiceInterface defines the contract for category operations
type CategoryServiceInterface interface {
	Create(name string) (*models.Category, error)
	Get(id uuid.UUID) (*models.Category, error)
	List() ([]models.Category, error)
	Update(id uuid.UUID, name string) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// TransactionServiceInterface defines the contract for transaction CRUD operations
type TransactionServiceInterface interface {
	Create(amount decimal.Decimal, transactionType, description, date string, userIDs, categoryIDs []uuid.UUID) (*models.Transaction, error)
	Get(id uuid.UUID) (*models.Transaction, error)
	List() ([]models.Transaction, error)
	Update(id uuid.UUID, patch models.TransactionPatch) (*models.Transaction, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the contract for the aggregation reports
type ReportServiceInterface interface {
	MonthlyByCategory(userID uuid.UUID, month, transactionType, categoryName string) ([]models.CategoryTotal, error)
	DailyRange(userID uuid.UUID, transactionType, startDate, endDate string) ([]models.DailyTotal, error)
}

// PasswordServiceInterface defines the contract for credential hashing
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// TokenServiceInterface defines the contract for access token issuing
type TokenServiceInterface interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (uuid.UUID, error)
}

// MetricsRecorderInterface defines the contract for operation metrics
type MetricsRecorderInterface interface {
	RecordEntityOperation(entity, operation, status string)
	RecordReportDuration(report string, durationMs float64)
}
