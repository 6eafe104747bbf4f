package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the account record the engine validates against. Owned by the
// account-management subsystem; this engine only reads it.
type Customer struct {
	ID                 string
	CompanyID          string
	Name               string
	TaxID              string
	CreditLimit        decimal.Decimal
	CachedBalance      decimal.Decimal
	PaymentTermsDays   int
	CreditBlocked      bool
	BlockReason        string
	BlockedAt          *time.Time
	CheckLimitOverride *decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BelongsTo reports whether the customer is scoped to the given company.
func (c *Customer) BelongsTo(companyID string) bool {
	return c.CompanyID == companyID
}

// CheckLimit resolves the effective check-portfolio limit: the per-customer
// override when configured, otherwise the company default from policy.
func (c *Customer) CheckLimit(companyDefault decimal.Decimal) decimal.Decimal {
	if c.CheckLimitOverride != nil {
		return *c.CheckLimitOverride
	}
	return companyDefault
}
