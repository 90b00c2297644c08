package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUsersRequired      = errors.New("at least one user is required")
	ErrCategoriesRequired = errors.New("at least one category is required")
	ErrNoValidUsers       = errors.New("no valid users found")
	ErrNoValidCategories  = errors.New("no valid categories found")
	ErrInvalidDateFormat  = fmt.Errorf("date must use format %s", models.DateTimeLayout)
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create validates the input and persists a transaction together with both
// association sets in one atomic unit. Supplied ids that resolve to no
// existing row are dropped; the create proceeds as long as at least one user
// and one category resolve.
func (s *transactionService) Create(amount decimal.Decimal, transactionType, description, date string, userIDs, categoryIDs []uuid.UUID) (*models.Transaction, error) {
	if !models.IsValidTransactionType(transactionType) {
		s.recordOperation("create", "invalid")
		return nil, models.ErrInvalidTransactionType
	}

	if len(userIDs) == 0 {
		s.recordOperation("create", "invalid")
		return nil, ErrUsersRequired
	}
	if len(categoryIDs) == 0 {
		s.recordOperation("create", "invalid")
		return nil, ErrCategoriesRequired
	}

	transactionDate := time.Now().UTC()
	if date != "" {
		parsed, err := time.Parse(models.DateTimeLayout, date)
		if err != nil {
			s.recordOperation("create", "invalid")
			return nil, ErrInvalidDateFormat
		}
		transactionDate = parsed
	}

	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		s.recordOperation("create", "error")
		return nil, err
	}
	if len(users) == 0 {
		s.recordOperation("create", "invalid")
		return nil, ErrNoValidUsers
	}

	categories, err := s.categoryRepo.GetByIDs(categoryIDs)
	if err != nil {
		s.recordOperation("create", "error")
		return nil, err
	}
	if len(categories) == 0 {
		s.recordOperation("create", "invalid")
		return nil, ErrNoValidCategories
	}

	transaction := &models.Transaction{
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		Date:        transactionDate,
	}

	if err := s.transactionRepo.Create(transaction, users, categories); err != nil {
		s.recordOperation("create", "error")
		return nil, err
	}

	s.recordOperation("create", "success")
	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"amount", transaction.Amount,
		"users", len(users),
		"categories", len(categories))

	return transaction, nil
}

// Get retrieves a transaction with its resolved user and category sets
func (s *transactionService) Get(id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// List retrieves all transactions, each with resolved associations
func (s *transactionService) List() ([]models.Transaction, error) {
	return s.transactionRepo.List()
}

// Update applies only the fields present in the patch. A supplied non-empty
// user or category id list wholesale-replaces that association set; an absent
// or empty list leaves the set untouched. Validation failures leave the
// stored transaction unchanged.
func (s *transactionService) Update(id uuid.UUID, patch models.TransactionPatch) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		if !models.IsValidTransactionType(*patch.Type) {
			s.recordOperation("update", "invalid")
			return nil, models.ErrInvalidTransactionType
		}
		transaction.Type = *patch.Type
	}

	if patch.Date != nil {
		parsed, err := time.Parse(models.DateTimeLayout, *patch.Date)
		if err != nil {
			s.recordOperation("update", "invalid")
			return nil, ErrInvalidDateFormat
		}
		transaction.Date = parsed
	}

	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}

	var users []models.User
	if len(patch.UserIDs) > 0 {
		users, err = s.userRepo.GetByIDs(patch.UserIDs)
		if err != nil {
			s.recordOperation("update", "error")
			return nil, err
		}
		if len(users) == 0 {
			s.recordOperation("update", "invalid")
			return nil, ErrNoValidUsers
		}
	}

	var categories []models.Category
	if len(patch.CategoryIDs) > 0 {
		categories, err = s.categoryRepo.GetByIDs(patch.CategoryIDs)
		if err != nil {
			s.recordOperation("update", "error")
			return nil, err
		}
		if len(categories) == 0 {
			s.recordOperation("update", "invalid")
			return nil, ErrNoValidCategories
		}
	}

	if err := s.transactionRepo.Update(transaction, users, categories); err != nil {
		s.recordOperation("update", "error")
		return nil, err
	}

	s.recordOperation("update", "success")
	s.logger.Info("transaction updated", "transaction_id", transaction.ID)

	return transaction, nil
}

// Delete removes a transaction and cascades both association sets
func (s *transactionService) Delete(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		if !errors.Is(err, repositories.ErrTransactionNotFound) {
			s.recordOperation("delete", "error")
		}
		return err
	}

	s.recordOperation("delete", "success")
	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

func (s *transactionService) recordOperation(operation, status string) {
	if s.metrics != nil {
		s.metrics.RecordEntityOperation("transaction", operation, status)
	}
}
