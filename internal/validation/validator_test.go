package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type queryInput struct {
	AccountID string `query:"account_id" validate:"required,account_id"`
	Status    string `query:"status" validate:"omitempty,status_filter"`
	Type      string `query:"type" validate:"omitempty,type_filter"`
	SortBy    string `query:"sort_by" validate:"omitempty,sort_field"`
	SortOrder string `query:"sort_order" validate:"omitempty,sort_order"`
	StartDate string `query:"start_date" validate:"omitempty,date_string"`
}

func TestValidator_ValidInput(t *testing.T) {
	v := NewValidator()

	input := queryInput{
		AccountID: "ACC-1001",
		Status:    "pending",
		Type:      "debit",
		SortBy:    "amount",
		SortOrder: "asc",
		StartDate: "2026-08-01",
	}
	assert.NoError(t, v.GetValidate().Struct(input))
}

func TestValidator_EmptyOptionalFieldsPass(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.GetValidate().Struct(queryInput{AccountID: "acc1"}))
}

func TestValidator_RejectsInvalidValues(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		input queryInput
	}{
		{"missing account id", queryInput{}},
		{"account id with spaces", queryInput{AccountID: "no spaces"}},
		{"unknown status", queryInput{AccountID: "acc1", Status: "archived"}},
		{"unknown type", queryInput{AccountID: "acc1", Type: "refund"}},
		{"unknown sort field", queryInput{AccountID: "acc1", SortBy: "balance"}},
		{"unknown sort order", queryInput{AccountID: "acc1", SortOrder: "sideways"}},
		{"malformed date", queryInput{AccountID: "acc1", StartDate: "08/01/2026"}},
		{"impossible date", queryInput{AccountID: "acc1", StartDate: "2026-13-40"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.GetValidate().Struct(tt.input))
		})
	}
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
