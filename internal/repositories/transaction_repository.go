package repositories

import (
	"errors"
	"fmt"
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface. It owns the
// lifecycle of the user_transactions and transaction_categories join rows:
// every write that touches them runs inside a single database transaction so
// no reader ever observes a transaction row without its association rows.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a transaction together with one association row per user
// and per category, atomically.
func (r *transactionRepository) Create(transaction *models.Transaction, users []models.User, categories []models.Category) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if err := insertUserLinks(tx, transaction.ID, users); err != nil {
			return err
		}
		return insertCategoryLinks(tx, transaction.ID, categories)
	})
	if err != nil {
		return err
	}

	transaction.Users = users
	transaction.Categories = categories
	return nil
}

// GetByID retrieves a transaction with its user and category sets resolved
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := r.loadAssociations(&transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// List retrieves all transactions, each with resolved associations
func (r *transactionRepository) List() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	for i := range transactions {
		if err := r.loadAssociations(&transactions[i]); err != nil {
			return nil, err
		}
	}
	return transactions, nil
}

// Update saves the transaction row and, for each non-nil entity set, replaces
// the full association set on that side (delete existing rows, insert the new
// set). A nil set leaves that side untouched. The whole operation is atomic.
func (r *transactionRepository) Update(transaction *models.Transaction, users []models.User, categories []models.Category) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(transaction).Error; err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		if users != nil {
			if err := tx.Where("transaction_id = ?", transaction.ID).Delete(&models.UserTransaction{}).Error; err != nil {
				return fmt.Errorf("failed to clear user associations: %w", err)
			}
			if err := insertUserLinks(tx, transaction.ID, users); err != nil {
				return err
			}
		}

		if categories != nil {
			if err := tx.Where("transaction_id = ?", transaction.ID).Delete(&models.TransactionCategory{}).Error; err != nil {
				return fmt.Errorf("failed to clear category associations: %w", err)
			}
			if err := insertCategoryLinks(tx, transaction.ID, categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if users != nil {
		transaction.Users = users
	}
	if categories != nil {
		transaction.Categories = categories
	}
	return nil
}

// Delete removes a transaction and every association row on both sides
func (r *transactionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&models.UserTransaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete user associations: %w", err)
		}
		if err := tx.Where("transaction_id = ?", id).Delete(&models.TransactionCategory{}).Error; err != nil {
			return fmt.Errorf("failed to delete category associations: %w", err)
		}

		result := tx.Delete(&models.Transaction{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}
		return nil
	})
}

// SumByCategory aggregates a user's transactions inside the half-open
// [start, end) window, grouped by category name. Type and category filters
// apply only when non-empty. A transaction tagged with several categories
// counts its full amount toward each of them.
func (r *transactionRepository) SumByCategory(userID uuid.UUID, start, end time.Time, transactionType, categoryName string) ([]models.CategoryTotal, error) {
	query := r.db.Table("transactions").
		Select("categories.name AS category, SUM(transactions.amount) AS total").
		Joins("JOIN user_transactions ON user_transactions.transaction_id = transactions.id").
		Joins("JOIN transaction_categories ON transaction_categories.transaction_id = transactions.id").
		Joins("JOIN categories ON categories.id = transaction_categories.category_id").
		Where("user_transactions.user_id = ?", userID).
		Where("transactions.date >= ? AND transactions.date < ?", start, end)

	if transactionType != "" {
		query = query.Where("transactions.type = ?", transactionType)
	}
	if categoryName != "" {
		query = query.Where("categories.name = ?", categoryName)
	}

	var totals []models.CategoryTotal
	if err := query.Group("categories.name").Order("categories.name ASC").Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions by category: %w", err)
	}
	return totals, nil
}

// GetForUserByDateRange retrieves a user's transactions of the given type
// within the inclusive [start, end] window, ordered by date ascending.
func (r *transactionRepository) GetForUserByDateRange(userID uuid.UUID, transactionType string, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Select("transactions.*").
		Joins("JOIN user_transactions ON user_transactions.transaction_id = transactions.id").
		Where("user_transactions.user_id = ?", userID).
		Where("transactions.type = ?", transactionType).
		Where("transactions.date BETWEEN ? AND ?", start, end).
		Order("transactions.date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) loadAssociations(transaction *models.Transaction) error {
	var userLinks []models.UserTransaction
	if err := r.db.Where("transaction_id = ?", transaction.ID).Find(&userLinks).Error; err != nil {
		return fmt.Errorf("failed to load user associations: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(userLinks))
	for _, link := range userLinks {
		userIDs = append(userIDs, link.UserID)
	}
	transaction.Users = nil
	if len(userIDs) > 0 {
		if err := r.db.Where("id IN ?", userIDs).Find(&transaction.Users).Error; err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
	}

	var categoryLinks []models.TransactionCategory
	if err := r.db.Where("transaction_id = ?", transaction.ID).Find(&categoryLinks).Error; err != nil {
		return fmt.Errorf("failed to load category associations: %w", err)
	}

	categoryIDs := make([]uuid.UUID, 0, len(categoryLinks))
	for _, link := range categoryLinks {
		categoryIDs = append(categoryIDs, link.CategoryID)
	}
	transaction.Categories = nil
	if len(categoryIDs) > 0 {
		if err := r.db.Where("id IN ?", categoryIDs).Find(&transaction.Categories).Error; err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
	}

	return nil
}

func insertUserLinks(tx *gorm.DB, transactionID uuid.UUID, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	links := make([]models.UserTransaction, 0, len(users))
	for _, user := range users {
		links = append(links, models.UserTransaction{UserID: user.ID, TransactionID: transactionID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to create user associations: %w", err)
	}
	return nil
}

func insertCategoryLinks(tx *gorm.DB, transactionID uuid.UUID, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	links := make([]models.TransactionCategory, 0, len(categories))
	for _, category := range categories {
		links = append(links, models.TransactionCategory{TransactionID: transactionID, CategoryID: category.ID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to create category associations: %w", err)
	}
	return nil
}
