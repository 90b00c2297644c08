package models

import "github.com/shopspring/decimal"

// CategoryTotal is one row of the monthly per-category report. A transaction
// tagged with several categories contributes its full amount to each row;
// categories are tags, not partitions of the amount.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DailyTotal is one row of the daily range report, keyed by calendar date
// (YYYY-MM-DD), ordered ascending.
type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}
