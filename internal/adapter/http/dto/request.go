package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/creditgate/internal/domain"
	"github.com/iho/creditgate/internal/usecase"
)

// ValidateRequest represents a request for a full credit validation.
type ValidateRequest struct {
	CustomerID     string          `json:"customer_id"`
	CompanyID      string          `json:"company_id"`
	OrderAmount    decimal.Decimal `json:"order_amount"`
	VisibilityMode string          `json:"visibility_mode,omitempty"`
	CallerID       string          `json:"caller_id,omitempty"`
	SkipValidation bool            `json:"skip_validation,omitempty"`
}

// ToUseCaseInput converts to use case input. An empty visibility mode
// defaults to standard.
func (r *ValidateRequest) ToUseCaseInput() usecase.ValidateInput {
	mode := domain.VisibilityMode(r.VisibilityMode)
	if r.VisibilityMode == "" {
		mode = domain.VisibilityStandard
	}

	return usecase.ValidateInput{
		CustomerID:     r.CustomerID,
		CompanyID:      r.CompanyID,
		OrderAmount:    r.OrderAmount,
		VisibilityMode: mode,
		CallerID:       r.CallerID,
		SkipValidation: r.SkipValidation,
	}
}

// BatchQuickStatusRequest represents a request to classify many customers at
// once.
type BatchQuickStatusRequest struct {
	CustomerIDs    []string `json:"customer_ids"`
	CompanyID      string   `json:"company_id"`
	VisibilityMode string   `json:"visibility_mode,omitempty"`
}

// Mode resolves the requested visibility mode, defaulting to standard.
func (r *BatchQuickStatusRequest) Mode() domain.VisibilityMode {
	if r.VisibilityMode == "" {
		return domain.VisibilityStandard
	}
	return domain.VisibilityMode(r.VisibilityMode)
}
