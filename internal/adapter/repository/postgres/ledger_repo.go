package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository over the append-only
// customer ledger. Read-only by construction: the single query it issues is
// an aggregate.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// OutstandingTotals sums debit and credit for the customer within company and
// document-type scope. Voided entries never count.
func (r *LedgerRepository) OutstandingTotals(ctx context.Context, customerID, companyID string, docTypes []string) (decimal.Decimal, decimal.Decimal, error) {
	var totalDebit, totalCredit decimal.Decimal

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM ledger_entries
		WHERE customer_id = $1
		  AND company_id = $2
		  AND doc_type = ANY($3)
		  AND NOT voided
	`, customerID, companyID, docTypes).Scan(&totalDebit, &totalCredit)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return totalDebit, totalCredit, nil
}
