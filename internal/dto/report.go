package dto

import (
	"spendtrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one row of a monthly-by-category report
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DailyTotalResponse is one row of a daily-range report
type DailyTotalResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyReportResponse wraps a monthly-by-category report
type MonthlyReportResponse struct {
	Month  string                  `json:"month"`
	Totals []CategoryTotalResponse `json:"totals"`
}

// DailyReportResponse wraps a daily-range report
type DailyReportResponse struct {
	Type   string               `json:"type"`
	Totals []DailyTotalResponse `json:"totals"`
}

// NewCategoryTotals maps category total rows
func NewCategoryTotals(totals []models.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(totals))
	for i, total := range totals {
		responses[i] = CategoryTotalResponse{Category: total.Category, Total: total.Total}
	}
	return responses
}

// NewDailyTotals maps daily total rows
func NewDailyTotals(totals []models.DailyTotal) []DailyTotalResponse {
	responses := make([]DailyTotalResponse, len(totals))
	for i, total := range totals {
		responses[i] = DailyTotalResponse{Date: total.Date, Total: total.Total}
	}
	return responses
}
