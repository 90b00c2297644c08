package repositories

import (
	"testing"
	"time"

	"spendtrack/internal/database"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface

	alice     *models.User
	bob       *models.User
	groceries *models.Category
	rent      *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	s.alice = database.CreateTestUser(s.T(), s.db, "alice", "alice@example.com")
	s.bob = database.CreateTestUser(s.T(), s.db, "bob", "bob@example.com")
	s.groceries = database.CreateTestCategory(s.T(), s.db, "groceries")
	s.rent = database.CreateTestCategory(s.T(), s.db, "rent")
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) createTransaction(amount float64, transactionType string, date time.Time, users []models.User, categories []models.Category) *models.Transaction {
	transaction := &models.Transaction{
		Amount: decimal.NewFromFloat(amount),
		Type:   transactionType,
		Date:   date,
	}
	err := s.repo.Create(transaction, users, categories)
	s.Require().NoError(err)
	return transaction
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create() {
	transaction := s.createTransaction(42.50, models.TransactionTypeExpense, time.Now().UTC(),
		[]models.User{*s.alice, *s.bob}, []models.Category{*s.groceries})

	s.NotEqual(uuid.Nil, transaction.ID)

	var userLinks, categoryLinks int64
	s.db.Model(&models.UserTransaction{}).Where("transaction_id = ?", transaction.ID).Count(&userLinks)
	s.db.Model(&models.TransactionCategory{}).Where("transaction_id = ?", transaction.ID).Count(&categoryLinks)
	s.EqualValues(2, userLinks)
	s.EqualValues(1, categoryLinks)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByID_ResolvesAssociations() {
	created := s.createTransaction(10.00, models.TransactionTypeExpense, time.Now().UTC(),
		[]models.User{*s.alice, *s.bob}, []models.Category{*s.groceries, *s.rent})

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Len(found.Users, 2)
	s.Len(found.Categories, 2)
	s.ElementsMatch([]uuid.UUID{s.alice.ID, s.bob.ID}, found.UserIDs())
	s.ElementsMatch([]string{"groceries", "rent"}, found.CategoryNames())
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_List() {
	older := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC)
	s.createTransaction(10.00, models.TransactionTypeExpense, older,
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(20.00, models.TransactionTypeRevenue, newer,
		[]models.User{*s.bob}, []models.Category{*s.rent})

	transactions, err := s.repo.List()
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.True(transactions[0].Date.After(transactions[1].Date))
	s.Len(transactions[0].Users, 1)
	s.Len(transactions[1].Users, 1)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update_ReplacesAssociationSets() {
	transaction := s.createTransaction(10.00, models.TransactionTypeExpense, time.Now().UTC(),
		[]models.User{*s.alice}, []models.Category{*s.groceries})

	transaction.Description = "weekly shop"
	err := s.repo.Update(transaction, []models.User{*s.bob}, []models.Category{*s.groceries, *s.rent})
	s.NoError(err)

	updated, err := s.repo.GetByID(transaction.ID)
	s.NoError(err)
	s.Equal("weekly shop", updated.Description)
	s.Equal([]uuid.UUID{s.bob.ID}, updated.UserIDs())
	s.ElementsMatch([]string{"groceries", "rent"}, updated.CategoryNames())
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update_NilSetsLeftUntouched() {
	transaction := s.createTransaction(10.00, models.TransactionTypeExpense, time.Now().UTC(),
		[]models.User{*s.alice, *s.bob}, []models.Category{*s.groceries})

	transaction.Description = "edited"
	err := s.repo.Update(transaction, nil, nil)
	s.NoError(err)

	updated, err := s.repo.GetByID(transaction.ID)
	s.NoError(err)
	s.Equal("edited", updated.Description)
	s.ElementsMatch([]uuid.UUID{s.alice.ID, s.bob.ID}, updated.UserIDs())
	s.Equal([]string{"groceries"}, updated.CategoryNames())
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete_CascadesBothSides() {
	transaction := s.createTransaction(10.00, models.TransactionTypeExpense, time.Now().UTC(),
		[]models.User{*s.alice}, []models.Category{*s.groceries, *s.rent})

	err := s.repo.Delete(transaction.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(transaction.ID)
	s.Equal(ErrTransactionNotFound, err)

	var userLinks, categoryLinks int64
	s.db.Model(&models.UserTransaction{}).Where("transaction_id = ?", transaction.ID).Count(&userLinks)
	s.db.Model(&models.TransactionCategory{}).Where("transaction_id = ?", transaction.ID).Count(&categoryLinks)
	s.Zero(userLinks)
	s.Zero(categoryLinks)

	// Users and categories are untouched
	var users, categories int64
	s.db.Model(&models.User{}).Count(&users)
	s.db.Model(&models.Category{}).Count(&categories)
	s.EqualValues(2, users)
	s.EqualValues(2, categories)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumByCategory() {
	feb := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	s.createTransaction(30.00, models.TransactionTypeExpense, feb,
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(20.00, models.TransactionTypeExpense, feb.AddDate(0, 0, 5),
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(700.00, models.TransactionTypeExpense, feb,
		[]models.User{*s.alice}, []models.Category{*s.rent})
	// Bob's spending must not leak into Alice's report
	s.createTransaction(99.00, models.TransactionTypeExpense, feb,
		[]models.User{*s.bob}, []models.Category{*s.groceries})

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	totals, err := s.repo.SumByCategory(s.alice.ID, start, end, "", "")
	s.NoError(err)
	s.Require().Len(totals, 2)
	s.Equal("groceries", totals[0].Category)
	s.True(totals[0].Total.Equal(decimal.NewFromFloat(50.00)))
	s.Equal("rent", totals[1].Category)
	s.True(totals[1].Total.Equal(decimal.NewFromFloat(700.00)))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumByCategory_HalfOpenWindow() {
	// The first instant of the next month falls outside the window
	s.createTransaction(10.00, models.TransactionTypeExpense,
		time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(99.00, models.TransactionTypeExpense,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.groceries})

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	totals, err := s.repo.SumByCategory(s.alice.ID, start, start.AddDate(0, 1, 0), "", "")
	s.NoError(err)
	s.Require().Len(totals, 1)
	s.True(totals[0].Total.Equal(decimal.NewFromFloat(10.00)))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumByCategory_MultiCategoryCountsFullAmount() {
	s.createTransaction(60.00, models.TransactionTypeExpense,
		time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.groceries, *s.rent})

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	totals, err := s.repo.SumByCategory(s.alice.ID, start, start.AddDate(0, 1, 0), "", "")
	s.NoError(err)
	s.Require().Len(totals, 2)
	s.True(totals[0].Total.Equal(decimal.NewFromFloat(60.00)))
	s.True(totals[1].Total.Equal(decimal.NewFromFloat(60.00)))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumByCategory_Filters() {
	date := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	s.createTransaction(30.00, models.TransactionTypeExpense, date,
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(1000.00, models.TransactionTypeRevenue, date,
		[]models.User{*s.alice}, []models.Category{*s.rent})

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	totals, err := s.repo.SumByCategory(s.alice.ID, start, end, models.TransactionTypeRevenue, "")
	s.NoError(err)
	s.Require().Len(totals, 1)
	s.Equal("rent", totals[0].Category)

	totals, err = s.repo.SumByCategory(s.alice.ID, start, end, "", "groceries")
	s.NoError(err)
	s.Require().Len(totals, 1)
	s.Equal("groceries", totals[0].Category)

	totals, err = s.repo.SumByCategory(s.alice.ID, start, end, models.TransactionTypeExpense, "rent")
	s.NoError(err)
	s.Empty(totals)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetForUserByDateRange() {
	s.createTransaction(10.00, models.TransactionTypeExpense,
		time.Date(2025, 2, 5, 10, 0, 0, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(20.00, models.TransactionTypeExpense,
		time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.groceries})
	s.createTransaction(99.00, models.TransactionTypeRevenue,
		time.Date(2025, 2, 4, 10, 0, 0, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.rent})
	s.createTransaction(50.00, models.TransactionTypeExpense,
		time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		[]models.User{*s.alice}, []models.Category{*s.groceries})

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)

	transactions, err := s.repo.GetForUserByDateRange(s.alice.ID, models.TransactionTypeExpense, start, end)
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.True(transactions[0].Date.Before(transactions[1].Date))
}
