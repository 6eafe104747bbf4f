package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Input validation constants
const (
	MaxIDLength       = 64
	MaxOrderAmount    = "1000000000000" // 1 trillion
	MaxBatchCustomers = 500
)

var maxOrderAmount = decimal.RequireFromString(MaxOrderAmount)

// ValidateID validates a customer or company identifier.
func ValidateID(id string, missing error) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return missing
	}
	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: exceeds %d characters", missing, MaxIDLength)
	}
	return nil
}

// ValidateOrderAmount validates a requested order amount. Zero is allowed so
// callers can run a pure status check through the full validation.
func ValidateOrderAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(maxOrderAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxOrderAmount)
	}

	return nil
}

// ValidateVisibilityMode validates a caller-supplied visibility mode.
func ValidateVisibilityMode(mode VisibilityMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidVisibilityMode, string(mode))
	}
	return nil
}

// ValidateBatch bounds the id list accepted by the batch quick-status call.
func ValidateBatch(ids []string) error {
	if len(ids) == 0 {
		return ErrMissingCustomerID
	}
	if len(ids) > MaxBatchCustomers {
		return fmt.Errorf("batch size %d exceeds limit of %d", len(ids), MaxBatchCustomers)
	}
	return nil
}
