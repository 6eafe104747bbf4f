package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/creditgate/internal/domain"
)

// CreditStatusResponse represents the credit-limit view in API responses.
type CreditStatusResponse struct {
	Limit               decimal.Decimal `json:"limit"`
	UsedFromLedger      decimal.Decimal `json:"used_from_ledger"`
	CachedDebt          decimal.Decimal `json:"cached_debt"`
	Available           decimal.Decimal `json:"available"`
	UtilizationPercent  decimal.Decimal `json:"utilization_percent"`
	NeedsReconciliation bool            `json:"needs_reconciliation"`
	DifferenceAmount    decimal.Decimal `json:"difference_amount"`
}

// OverdueInvoiceResponse represents one overdue invoice in API responses.
type OverdueInvoiceResponse struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Total          decimal.Decimal `json:"total"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	DueDate        time.Time       `json:"due_date"`
	DaysOverdue    int             `json:"days_overdue"`
}

// AgingBucketResponse represents one receivables-aging bucket.
type AgingBucketResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// OverdueStatusResponse represents the receivables-aging view.
type OverdueStatusResponse struct {
	HasOverdue        bool                     `json:"has_overdue"`
	OverdueAmount     decimal.Decimal          `json:"overdue_amount"`
	OldestOverdueDays int                      `json:"oldest_overdue_days"`
	OverdueInvoices   []OverdueInvoiceResponse `json:"overdue_invoices,omitempty"`
	AgingBuckets      []AgingBucketResponse    `json:"aging_buckets,omitempty"`
}

// CheckStatusResponse represents the check-portfolio view.
type CheckStatusResponse struct {
	TotalInPortfolio     decimal.Decimal `json:"total_in_portfolio"`
	Count                int             `json:"count"`
	ExceedsLimit         bool            `json:"exceeds_limit"`
	Limit                decimal.Decimal `json:"limit"`
	NextMaturity         *time.Time      `json:"next_maturity,omitempty"`
	MaturingWithin30Days int             `json:"maturing_within_30_days"`
}

// BlockStatusResponse represents the explicit-block view.
type BlockStatusResponse struct {
	IsBlocked bool       `json:"is_blocked"`
	Reason    string     `json:"reason,omitempty"`
	BlockedAt *time.Time `json:"blocked_at,omitempty"`
	BlockType string     `json:"block_type,omitempty"`
}

// CustomerInfoResponse identifies the validated customer.
type CustomerInfoResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TaxID            string `json:"tax_id"`
	PaymentTermsDays int    `json:"payment_terms_days"`
}

// ValidationResponse represents a full validation result in API responses.
type ValidationResponse struct {
	ValidationID     string                `json:"validation_id"`
	CanProceed       bool                  `json:"can_proceed"`
	RequiresOverride bool                  `json:"requires_override"`
	Warnings         []string              `json:"warnings"`
	Errors           []string              `json:"errors"`
	CreditStatus     CreditStatusResponse  `json:"credit_status"`
	OverdueStatus    OverdueStatusResponse `json:"overdue_status"`
	CheckStatus      CheckStatusResponse   `json:"check_status"`
	BlockStatus      BlockStatusResponse   `json:"block_status"`
	CustomerInfo     CustomerInfoResponse  `json:"customer_info"`
	EvaluatedAt      time.Time             `json:"evaluated_at"`
}

// ValidationFromDomain converts a domain validation result to a response.
func ValidationFromDomain(r *domain.ValidationResult) *ValidationResponse {
	invoices := make([]OverdueInvoiceResponse, len(r.OverdueStatus.OverdueInvoices))
	for i, inv := range r.OverdueStatus.OverdueInvoices {
		invoices[i] = OverdueInvoiceResponse{
			ID:             inv.ID,
			Number:         inv.Number,
			Total:          inv.Total,
			PendingBalance: inv.PendingBalance,
			DueDate:        inv.DueDate,
			DaysOverdue:    inv.DaysOverdue,
		}
	}

	buckets := make([]AgingBucketResponse, len(r.OverdueStatus.AgingBuckets))
	for i, b := range r.OverdueStatus.AgingBuckets {
		buckets[i] = AgingBucketResponse{
			Label:  b.Label,
			Amount: b.Amount,
			Count:  b.Count,
		}
	}

	return &ValidationResponse{
		ValidationID:     r.ValidationID,
		CanProceed:       r.CanProceed,
		RequiresOverride: r.RequiresOverride,
		Warnings:         r.Warnings,
		Errors:           r.Errors,
		CreditStatus: CreditStatusResponse{
			Limit:               r.CreditStatus.Limit,
			UsedFromLedger:      r.CreditStatus.UsedFromLedger,
			CachedDebt:          r.CreditStatus.CachedDebt,
			Available:           r.CreditStatus.Available,
			UtilizationPercent:  r.CreditStatus.UtilizationPercent,
			NeedsReconciliation: r.CreditStatus.NeedsReconciliation,
			DifferenceAmount:    r.CreditStatus.DifferenceAmount,
		},
		OverdueStatus: OverdueStatusResponse{
			HasOverdue:        r.OverdueStatus.HasOverdue,
			OverdueAmount:     r.OverdueStatus.OverdueAmount,
			OldestOverdueDays: r.OverdueStatus.OldestOverdueDays,
			OverdueInvoices:   invoices,
			AgingBuckets:      buckets,
		},
		CheckStatus: CheckStatusResponse{
			TotalInPortfolio:     r.CheckStatus.TotalInPortfolio,
			Count:                r.CheckStatus.Count,
			ExceedsLimit:         r.CheckStatus.ExceedsLimit,
			Limit:                r.CheckStatus.Limit,
			NextMaturity:         r.CheckStatus.NextMaturity,
			MaturingWithin30Days: r.CheckStatus.MaturingWithin30Days,
		},
		BlockStatus: BlockStatusResponse{
			IsBlocked: r.BlockStatus.IsBlocked,
			Reason:    r.BlockStatus.Reason,
			BlockedAt: r.BlockStatus.BlockedAt,
			BlockType: string(r.BlockStatus.BlockType),
		},
		CustomerInfo: CustomerInfoResponse{
			ID:               r.CustomerInfo.ID,
			Name:             r.CustomerInfo.Name,
			TaxID:            r.CustomerInfo.TaxID,
			PaymentTermsDays: r.CustomerInfo.PaymentTermsDays,
		},
		EvaluatedAt: r.EvaluatedAt,
	}
}

// QuickStatusResponse represents a quick classification in API responses.
type QuickStatusResponse struct {
	CustomerID         string          `json:"customer_id"`
	HasCredit          bool            `json:"has_credit"`
	IsBlocked          bool            `json:"is_blocked"`
	HasOverdue         bool            `json:"has_overdue"`
	UtilizationPercent decimal.Decimal `json:"utilization_percent"`
	StatusColor        string          `json:"status_color"`
	StatusLabel        string          `json:"status_label"`
}

// QuickStatusFromDomain converts a domain quick status to a response.
func QuickStatusFromDomain(qs domain.QuickStatus) QuickStatusResponse {
	return QuickStatusResponse{
		CustomerID:         qs.CustomerID,
		HasCredit:          qs.HasCredit,
		IsBlocked:          qs.IsBlocked,
		HasOverdue:         qs.HasOverdue,
		UtilizationPercent: qs.UtilizationPercent,
		StatusColor:        qs.StatusColor,
		StatusLabel:        qs.StatusLabel,
	}
}

// BatchQuickStatusResponse maps customer id to its quick status.
type BatchQuickStatusResponse struct {
	Statuses map[string]QuickStatusResponse `json:"statuses"`
}

// BatchQuickStatusFromDomain converts a batch classification to a response.
func BatchQuickStatusFromDomain(statuses map[string]domain.QuickStatus) *BatchQuickStatusResponse {
	out := make(map[string]QuickStatusResponse, len(statuses))
	for id, qs := range statuses {
		out[id] = QuickStatusFromDomain(qs)
	}
	return &BatchQuickStatusResponse{Statuses: out}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
