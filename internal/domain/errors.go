package domain

import "errors"

var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrScopeMismatch    = errors.New("customer belongs to a different company")

	// Policy errors
	ErrPolicyNotFound = errors.New("no credit policy configured for company")

	// Input errors
	ErrInvalidAmount         = errors.New("order amount must not be negative")
	ErrInvalidVisibilityMode = errors.New("invalid visibility mode")
	ErrMissingCustomerID     = errors.New("customer id is required")
	ErrMissingCompanyID      = errors.New("company id is required")
)
