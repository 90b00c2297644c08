package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type reportQuery struct {
	Month string `json:"month" validate:"required,report_month"`
	Date  string `json:"date" validate:"omitempty,report_date"`
	Type  string `json:"type" validate:"omitempty,transaction_type"`
	At    string `json:"at" validate:"omitempty,transaction_datetime"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(reportQuery{
		Month: "2025-02",
		Date:  "2025-02-28",
		Type:  "expense",
		At:    "2025-02-28 23:59:59",
	}))

	assert.Error(t, v.Struct(reportQuery{Month: "Feb 2025"}))
	assert.Error(t, v.Struct(reportQuery{Month: "2025-02", Date: "28/02/2025"}))
	assert.Error(t, v.Struct(reportQuery{Month: "2025-02", Type: "income"}))
	assert.Error(t, v.Struct(reportQuery{Month: "2025-02", At: "2025-02-28"}))
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := GetValidator().GetValidate()

	err := v.Struct(reportQuery{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "month")
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
