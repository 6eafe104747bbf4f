package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the collection state of an invoice.
type InvoiceStatus string

const (
	InvoiceIssued             InvoiceStatus = "issued"
	InvoicePartiallyCollected InvoiceStatus = "partially_collected"
	InvoiceCollected          InvoiceStatus = "collected"
	InvoiceVoided             InvoiceStatus = "voided"
	InvoiceDraft              InvoiceStatus = "draft"
)

// Invoice is a receivable document. Only issued or partially-collected
// invoices with a pending balance and a due date participate in overdue
// analysis.
type Invoice struct {
	ID             string
	CustomerID     string
	CompanyID      string
	Number         string
	DocType        string
	Total          decimal.Decimal
	PendingBalance decimal.Decimal
	DueDate        *time.Time
	Status         InvoiceStatus
	IssuedAt       time.Time
}

// Pending reports whether the invoice still carries an open balance.
func (i *Invoice) Pending() bool {
	if i.Status != InvoiceIssued && i.Status != InvoicePartiallyCollected {
		return false
	}
	return i.PendingBalance.IsPositive()
}

// DaysOverdue returns whole days past the due date at asOf, negative when the
// invoice is not yet due. Both dates are truncated to midnight UTC before
// subtraction.
func (i *Invoice) DaysOverdue(asOf time.Time) int {
	if i.DueDate == nil {
		return 0
	}
	return daysBetween(*i.DueDate, asOf)
}

// Overdue reports whether the invoice counts as overdue at asOf given the
// policy grace period: due date strictly before asOf minus graceDays.
func (i *Invoice) Overdue(asOf time.Time, graceDays int) bool {
	if !i.Pending() || i.DueDate == nil {
		return false
	}
	cutoff := midnight(asOf).AddDate(0, 0, -graceDays)
	return midnight(*i.DueDate).Before(cutoff)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}
