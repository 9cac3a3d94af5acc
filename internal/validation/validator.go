package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"elliora-dashboard/internal/models"

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

	_ = v.RegisterValidation("account_id", validateAccountID)
	_ = v.RegisterValidation("status_filter", validateStatusFilter)
	_ = v.RegisterValidation("type_filter", validateTypeFilter)
	_ = v.RegisterValidation("sort_field", validateSortField)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
	_ = v.RegisterValidation("date_string", validateDateString)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	return &Validator{validate: v}
}

// Custom validation functions

var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// validateAccountID validates the opaque account identifier format
func validateAccountID(fl validator.FieldLevel) bool {
	return accountIDPattern.MatchString(fl.Field().String())
}

// validateStatusFilter accepts "all" or a concrete transaction status.
// Empty is allowed; it normalizes to "all" downstream.
func validateStatusFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidStatusFilter(value)
}

// validateTypeFilter accepts "all", "credit" or "debit"
func validateTypeFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidTypeFilter(value)
}

// validateSortField accepts the sortable transaction columns
func validateSortField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidSortField(value)
}

// validateSortOrder accepts "asc" or "desc"
func validateSortOrder(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidSortOrder(value)
}

// validateDateString accepts an empty string or a YYYY-MM-DD calendar date
func validateDateString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
