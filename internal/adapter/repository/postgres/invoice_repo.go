package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/creditgate/internal/domain"
)

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// ListPending returns invoices that still carry an open balance: issued or
// partially collected, pending balance above zero, and a due date set.
func (r *InvoiceRepository) ListPending(ctx context.Context, customerID, companyID string, docTypes []string) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_id, company_id, number, doc_type, total,
		       pending_balance, due_date, status, issued_at
		FROM invoices
		WHERE customer_id = $1
		  AND company_id = $2
		  AND doc_type = ANY($3)
		  AND status IN ('issued', 'partially_collected')
		  AND pending_balance > 0
		  AND due_date IS NOT NULL
		ORDER BY due_date
	`, customerID, companyID, docTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		var (
			inv    domain.Invoice
			status string
		)
		err := rows.Scan(
			&inv.ID,
			&inv.CustomerID,
			&inv.CompanyID,
			&inv.Number,
			&inv.DocType,
			&inv.Total,
			&inv.PendingBalance,
			&inv.DueDate,
			&status,
			&inv.IssuedAt,
		)
		if err != nil {
			return nil, err
		}
		inv.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, &inv)
	}

	return invoices, rows.Err()
}

// CountOverdue groups overdue pending invoices per customer in one query.
func (r *InvoiceRepository) CountOverdue(ctx context.Context, customerIDs []string, companyID string, docTypes []string, before time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT customer_id, COUNT(*)
		FROM invoices
		WHERE customer_id = ANY($1)
		  AND company_id = $2
		  AND doc_type = ANY($3)
		  AND status IN ('issued', 'partially_collected')
		  AND pending_balance > 0
		  AND due_date < $4
		GROUP BY customer_id
	`, customerIDs, companyID, docTypes, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int, len(customerIDs))
	for rows.Next() {
		var (
			customerID string
			count      int
		)
		if err := rows.Scan(&customerID, &count); err != nil {
			return nil, err
		}
		counts[customerID] = count
	}

	return counts, rows.Err()
}
