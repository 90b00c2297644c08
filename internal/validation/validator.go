package validation

import (
	"reflect"
	"strings"
	"time"

	"spendtrack/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("transaction_datetime", validateTransactionDateTime)
	_ = v.RegisterValidation("report_month", validateReportMonth)
	_ = v.RegisterValidation("report_date", validateReportDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType checks the value is one of the allowed transaction types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateTransactionDateTime checks a full "2006-01-02 15:04:05" timestamp
func validateTransactionDateTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateTimeLayout, fl.Field().String())
	return err == nil
}

// validateReportMonth checks a "2006-01" month selector
func validateReportMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.MonthLayout, fl.Field().String())
	return err == nil
}

// validateReportDate checks a "2006-01-02" date-only bound
func validateReportDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}
