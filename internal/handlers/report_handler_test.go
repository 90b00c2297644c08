package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spendtrack/internal/database"
	"spendtrack/internal/dto"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *ReportHandler

	transactionRepo repositories.TransactionRepositoryInterface
	alice           *models.User
	groceries       *models.Category
	rent            *models.Category
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reportService := services.NewReportService(
		s.transactionRepo,
		repositories.NewUserRepository(s.db.DB),
		nil,
		logger,
	)
	s.handler = NewReportHandler(reportService)

	s.alice = database.CreateTestUser(s.T(), s.db, "alice", "alice@example.com")
	s.groceries = database.CreateTestCategory(s.T(), s.db, "groceries")
	s.rent = database.CreateTestCategory(s.T(), s.db, "rent")

	s.record(30.00, models.TransactionTypeExpense, time.Date(2025, 2, 5, 10, 0, 0, 0, time.UTC), s.groceries)
	s.record(20.00, models.TransactionTypeExpense, time.Date(2025, 2, 5, 18, 0, 0, 0, time.UTC), s.groceries)
	s.record(700.00, models.TransactionTypeExpense, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), s.rent)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReportHandlerTestSuite) record(amount float64, transactionType string, date time.Time, category *models.Category) {
	transaction := &models.Transaction{
		Amount: decimal.NewFromFloat(amount),
		Type:   transactionType,
		Date:   date,
	}
	err := s.transactionRepo.Create(transaction, []models.User{*s.alice}, []models.Category{*category})
	s.Require().NoError(err)
}

func (s *ReportHandlerTestSuite) newContext(query string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID)
	return c, rec
}

func (s *ReportHandlerTestSuite) TestMonthlyByCategory() {
	c, rec := s.newContext("month=2025-02", s.alice.ID.String())
	c.SetPath("/api/v1/users/:id/reports/monthly")

	err := s.handler.MonthlyByCategory(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.MonthlyReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("2025-02", response.Month)
	s.Require().Len(response.Totals, 2)
	s.Equal("groceries", response.Totals[0].Category)
	s.True(response.Totals[0].Total.Equal(decimal.NewFromFloat(50.00)))
	s.Equal("rent", response.Totals[1].Category)
}

func (s *ReportHandlerTestSuite) TestMonthlyByCategory_MissingMonth() {
	c, rec := s.newContext("", s.alice.ID.String())

	err := s.handler.MonthlyByCategory(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_002")
}

func (s *ReportHandlerTestSuite) TestMonthlyByCategory_BadMonth() {
	c, rec := s.newContext("month=Feb-2025", s.alice.ID.String())

	err := s.handler.MonthlyByCategory(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "REPORT_001")
}

func (s *ReportHandlerTestSuite) TestDailyRange() {
	c, rec := s.newContext("type=expense&start_date=2025-02-01&end_date=2025-02-28", s.alice.ID.String())
	c.SetPath("/api/v1/users/:id/reports/daily")

	err := s.handler.DailyRange(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DailyReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("expense", response.Type)
	s.Require().Len(response.Totals, 2)
	s.Equal("2025-02-01", response.Totals[0].Date)
	s.Equal("2025-02-05", response.Totals[1].Date)
	s.True(response.Totals[1].Total.Equal(decimal.NewFromFloat(50.00)))
}

func (s *ReportHandlerTestSuite) TestDailyRange_MissingType() {
	c, rec := s.newContext("start_date=2025-02-01", s.alice.ID.String())

	err := s.handler.DailyRange(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_002")
}

func (s *ReportHandlerTestSuite) TestDailyRange_UnknownUser() {
	c, rec := s.newContext("type=expense", uuid.New().String())

	err := s.handler.DailyRange(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "USER_001")
}
