package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UtilizationDisplayCap bounds the reported utilization percentage so a
// near-zero limit cannot produce pathological values.
var UtilizationDisplayCap = decimal.NewFromInt(999)

// CreditStatus is the credit-limit view of a validation.
type CreditStatus struct {
	Limit               decimal.Decimal
	UsedFromLedger      decimal.Decimal
	CachedDebt          decimal.Decimal
	Available           decimal.Decimal
	UtilizationPercent  decimal.Decimal
	NeedsReconciliation bool
	DifferenceAmount    decimal.Decimal
}

// OverdueInvoice is one qualifying invoice in the overdue detail list.
type OverdueInvoice struct {
	ID             string
	Number         string
	Total          decimal.Decimal
	PendingBalance decimal.Decimal
	DueDate        time.Time
	DaysOverdue    int
}

// OverdueStatus is the receivables-aging view of a validation.
type OverdueStatus struct {
	HasOverdue        bool
	OverdueAmount     decimal.Decimal
	OldestOverdueDays int
	OverdueInvoices   []OverdueInvoice
	AgingBuckets      []AgingBucket
}

// CheckPortfolioStatus is the held-instrument view of a validation.
type CheckPortfolioStatus struct {
	TotalInPortfolio     decimal.Decimal
	Count                int
	ExceedsLimit         bool
	Limit                decimal.Decimal
	NextMaturity         *time.Time
	MaturingWithin30Days int
}

// BlockStatus is the explicit-block view of a validation.
type BlockStatus struct {
	IsBlocked bool
	Reason    string
	BlockedAt *time.Time
	BlockType BlockType
}

// CustomerInfo identifies the validated customer for display.
type CustomerInfo struct {
	ID               string
	Name             string
	TaxID            string
	PaymentTermsDays int
}

// ValidationResult is the ephemeral aggregate a validation produces. It is
// never persisted; the caller consumes it and the audit trail keeps only a
// summary.
type ValidationResult struct {
	ValidationID     string
	CanProceed       bool
	RequiresOverride bool
	Warnings         []string
	Errors           []string
	CreditStatus     CreditStatus
	OverdueStatus    OverdueStatus
	CheckStatus      CheckPortfolioStatus
	BlockStatus      BlockStatus
	CustomerInfo     CustomerInfo
	EvaluatedAt      time.Time
}

// Utilization computes (used+amount)/limit as a percentage, capped at the
// display cap. A non-positive limit reports the cap directly.
func Utilization(used, orderAmount, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return UtilizationDisplayCap
	}
	pct := used.Add(orderAmount).Div(limit).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(UtilizationDisplayCap) {
		return UtilizationDisplayCap
	}
	return pct
}
