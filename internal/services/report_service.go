package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonthFormat = fmt.Errorf("month must use format %s", models.MonthLayout)
	ErrInvalidDateRange   = fmt.Errorf("date must use format %s", models.DateLayout)
)

type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &reportService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// MonthlyByCategory sums the user's transactions for the given month, grouped
// by category name. The month window is the half-open interval
// [first instant of month, first instant of next month). Type and category
// filters apply only when supplied. Categories with no matching transactions
// are omitted, never zero-filled.
func (s *reportService) MonthlyByCategory(userID uuid.UUID, month, transactionType, categoryName string) ([]models.CategoryTotal, error) {
	started := time.Now()

	start, err := time.Parse(models.MonthLayout, month)
	if err != nil {
		return nil, ErrInvalidMonthFormat
	}
	end := start.AddDate(0, 1, 0)

	if transactionType != "" && !models.IsValidTransactionType(transactionType) {
		return nil, models.ErrInvalidTransactionType
	}

	totals, err := s.transactionRepo.SumByCategory(userID, start, end, transactionType, categoryName)
	if err != nil {
		return nil, err
	}

	s.recordDuration("monthly_by_category", started)
	s.logger.Info("monthly report generated",
		"user_id", userID,
		"month", month,
		"rows", len(totals))

	return totals, nil
}

// DailyRange sums the user's transactions of the given type per calendar day,
// ascending. The range defaults to [first day of current month, today]; the
// end date's time component is forced to the last instant of that day so the
// whole end day is included. An empty result is not an error.
func (s *reportService) DailyRange(userID uuid.UUID, transactionType, startDate, endDate string) ([]models.DailyTotal, error) {
	started := time.Now()

	if !models.IsValidTransactionType(transactionType) {
		return nil, models.ErrInvalidTransactionType
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := now

	if startDate != "" {
		parsed, err := time.Parse(models.DateLayout, startDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		start = parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(models.DateLayout, endDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		end = parsed
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)

	transactions, err := s.transactionRepo.GetForUserByDateRange(userID, transactionType, start, end)
	if err != nil {
		return nil, err
	}

	totalsByDay := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		day := transaction.Date.Format(models.DateLayout)
		totalsByDay[day] = totalsByDay[day].Add(transaction.Amount)
	}

	days := make([]string, 0, len(totalsByDay))
	for day := range totalsByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	totals := make([]models.DailyTotal, 0, len(days))
	for _, day := range days {
		totals = append(totals, models.DailyTotal{Date: day, Total: totalsByDay[day]})
	}

	s.recordDuration("daily_range", started)
	s.logger.Info("daily report generated",
		"user_id", userID,
		"type", transactionType,
		"rows", len(totals))

	return totals, nil
}

func (s *reportService) recordDuration(report string, started time.Time) {
	if s.metrics != nil {
		s.metrics.RecordReportDuration(report, float64(time.Since(started).Milliseconds()))
	}
}
