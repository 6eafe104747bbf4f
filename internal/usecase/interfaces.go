package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/creditgate/internal/domain"
)

// CustomerRepository defines data access for customer accounts.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// GetByIDs returns only the customers that exist within the company
	// scope; callers synthesize entries for missing ids.
	GetByIDs(ctx context.Context, ids []string, companyID string) ([]*domain.Customer, error)
}

// LedgerRepository defines read access to the append-only customer ledger.
type LedgerRepository interface {
	// OutstandingTotals sums debit and credit over non-voided entries for
	// the customer within company and document-type scope.
	OutstandingTotals(ctx context.Context, customerID, companyID string, docTypes []string) (totalDebit, totalCredit decimal.Decimal, err error)
}

// InvoiceRepository defines read access to receivable invoices.
type InvoiceRepository interface {
	// ListPending returns issued or partially-collected invoices with a
	// positive pending balance and a due date, within scope.
	ListPending(ctx context.Context, customerID, companyID string, docTypes []string) ([]*domain.Invoice, error)
	// CountOverdue returns per-customer counts of pending invoices due
	// strictly before the cutoff, grouped in a single query.
	CountOverdue(ctx context.Context, customerIDs []string, companyID string, docTypes []string, before time.Time) (map[string]int, error)
}

// CheckRepository defines read access to held payment instruments.
type CheckRepository interface {
	// PortfolioSummary aggregates in-portfolio checks linked to the
	// customer through their payments, within scope.
	PortfolioSummary(ctx context.Context, customerID, companyID string, docTypes []string, asOf time.Time) (domain.PortfolioSummary, error)
}

// PolicyRepository defines read access to per-company credit policy.
type PolicyRepository interface {
	// GetByCompany returns domain.ErrPolicyNotFound when no record exists;
	// callers fall back to domain.DefaultPolicy.
	GetByCompany(ctx context.Context, companyID string) (*domain.PolicyConfig, error)
}

// BlockHistoryRepository defines read access to customer block history.
type BlockHistoryRepository interface {
	// LatestOpen returns the most recent block record with no unblocked
	// timestamp, or (nil, nil) when the customer has none.
	LatestOpen(ctx context.Context, customerID string) (*domain.BlockEvent, error)
}

// AuditRepository persists decision summaries.
type AuditRepository interface {
	Create(ctx context.Context, audit *domain.DecisionAudit) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// StatusCache caches serialized quick statuses with a TTL. Entries are not
// durable across process restarts.
type StatusCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
