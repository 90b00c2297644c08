package handlers

import (
	stderrors "errors"
	"net/http"

	"spendtrack/internal/dto"
	"spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles the aggregation report endpoints
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MonthlyByCategory returns a user's per-category totals for one calendar
// month. Query params: month (required, "2006-01"), type and category
// (optional filters).
func (h *ReportHandler) MonthlyByCategory(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	month := c.QueryParam("month")
	if month == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("month: is required"))
	}

	totals, err := h.reportService.MonthlyByCategory(
		userID, month, c.QueryParam("type"), c.QueryParam("category"))
	if err != nil {
		return h.mapReportError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthlyReportResponse{
		Month:  month,
		Totals: dto.NewCategoryTotals(totals),
	})
}

// DailyRange returns a user's per-day totals of one transaction type over a
// date range. Query params: type (required), start_date and end_date
// (optional, "2006-01-02", defaulting to the current month so far).
func (h *ReportHandler) DailyRange(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	transactionType := c.QueryParam("type")
	if transactionType == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("type: is required"))
	}

	totals, err := h.reportService.DailyRange(
		userID, transactionType, c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return h.mapReportError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DailyReportResponse{
		Type:   transactionType,
		Totals: dto.NewDailyTotals(totals),
	})
}

func (h *ReportHandler) mapReportError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidMonthFormat):
		return SendError(c, errors.ReportInvalidMonth)
	case stderrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.ReportInvalidDate)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, repositories.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	default:
		return SendSystemError(c, err)
	}
}
