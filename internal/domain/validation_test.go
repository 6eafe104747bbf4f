package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateID(t *testing.T) {
	if err := ValidateID("cust-1", ErrMissingCustomerID); err != nil {
		t.Errorf("expected valid id, got %v", err)
	}

	if err := ValidateID("  ", ErrMissingCustomerID); !errors.Is(err, ErrMissingCustomerID) {
		t.Errorf("expected missing-id error for blank id, got %v", err)
	}

	long := strings.Repeat("x", MaxIDLength+1)
	if err := ValidateID(long, ErrMissingCompanyID); !errors.Is(err, ErrMissingCompanyID) {
		t.Errorf("expected wrapped error for oversized id, got %v", err)
	}
}

func TestValidateOrderAmount(t *testing.T) {
	if err := ValidateOrderAmount(decimal.Zero); err != nil {
		t.Errorf("expected zero amount allowed for status checks, got %v", err)
	}

	if err := ValidateOrderAmount(decimal.RequireFromString("2500.50")); err != nil {
		t.Errorf("expected positive amount allowed, got %v", err)
	}

	if err := ValidateOrderAmount(decimal.RequireFromString("-0.01")); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected negative amount rejected, got %v", err)
	}

	atMax := decimal.RequireFromString(MaxOrderAmount)
	if err := ValidateOrderAmount(atMax); err != nil {
		t.Errorf("expected amount at the cap allowed, got %v", err)
	}

	if err := ValidateOrderAmount(atMax.Add(decimal.NewFromInt(1))); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected amount above the cap rejected, got %v", err)
	}
}

func TestValidateVisibilityMode(t *testing.T) {
	if err := ValidateVisibilityMode(VisibilityExtended); err != nil {
		t.Errorf("expected extended mode valid, got %v", err)
	}

	if err := ValidateVisibilityMode(VisibilityMode("secret")); !errors.Is(err, ErrInvalidVisibilityMode) {
		t.Errorf("expected unknown mode rejected, got %v", err)
	}
}

func TestValidateBatch(t *testing.T) {
	if err := ValidateBatch([]string{"cust-1", "cust-2"}); err != nil {
		t.Errorf("expected small batch valid, got %v", err)
	}

	if err := ValidateBatch(nil); !errors.Is(err, ErrMissingCustomerID) {
		t.Errorf("expected empty batch rejected, got %v", err)
	}

	oversized := make([]string, MaxBatchCustomers+1)
	for i := range oversized {
		oversized[i] = "cust"
	}
	if err := ValidateBatch(oversized); err == nil {
		t.Errorf("expected oversized batch rejected")
	}
}
