package models

// Wire formats for dates exchanged with clients. Transactions carry a full
// timestamp; reports select by month or by date-only bounds.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
)
