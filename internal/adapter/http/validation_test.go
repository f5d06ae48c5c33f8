package http

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `json:"amount" validate:"dec2"`
	}
	cv := NewValidator()

	for _, s := range []string{"1.29", "2.00", "0.9", "50000", "-3.10"} {
		if err := cv.Validate(P{Amount: decimal.RequireFromString(s)}); err != nil {
			t.Fatalf("expected dec2 OK for %s, got %v", s, err)
		}
	}
	for _, s := range []string{"1.234", "2.9999", "0.001"} {
		err := cv.Validate(P{Amount: decimal.RequireFromString(s)})
		if err == nil {
			t.Fatalf("expected dec2 error for %s", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %s, got %+v", s, fe)
		}
	}
}

func TestNonNegValidation_PointerDecimal(t *testing.T) {
	type P struct {
		Rate *decimal.Decimal `json:"interest_rate" validate:"omitempty,nonneg,dec2"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{}); err != nil {
		t.Fatalf("nil pointer should be skipped, got %v", err)
	}
	ok := decimal.RequireFromString("0")
	if err := cv.Validate(P{Rate: &ok}); err != nil {
		t.Fatalf("zero should pass, got %v", err)
	}
	neg := decimal.RequireFromString("-0.5")
	err := cv.Validate(P{Rate: &neg})
	if err == nil {
		t.Fatalf("expected nonneg error")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "interest_rate", "must not be negative") {
		t.Fatalf("expected nonneg message, got %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string           `json:"name" validate:"required,max=5"`
		Email  string           `json:"email" validate:"omitempty,email"`
		ID     uint64           `json:"assigned_to_id" validate:"gt=0"`
		Min    int              `json:"min" validate:"gte=10"`
		Max    int              `json:"max" validate:"lte=5"`
		Amount *decimal.Decimal `json:"amount" validate:"required"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{Email: "not-an-email", Min: 9, Max: 6})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	for _, want := range []struct{ field, msg string }{
		{"name", "is required"},
		{"email", "valid email"},
		{"assigned_to_id", "greater than 0"},
		{"min", "greater than or equal to 10"},
		{"max", "less than or equal to 5"},
		{"amount", "is required"},
	} {
		if !containsFieldMsg(fe, want.field, want.msg) {
			t.Fatalf("missing %q for %s: %+v", want.msg, want.field, fe)
		}
	}

	err = cv.Validate(P{Name: "toolong", ID: 1, Min: 10, Max: 5, Amount: &decimal.Zero})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "name", "at most 5") {
		t.Fatalf("missing max message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
