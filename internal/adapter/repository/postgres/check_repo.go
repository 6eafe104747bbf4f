package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/creditgate/internal/domain"
)

// CheckRepository implements usecase.CheckRepository. Checks reach the
// customer through their payment, so the aggregate joins both tables.
type CheckRepository struct {
	pool *pgxpool.Pool
}

// NewCheckRepository creates a new CheckRepository.
func NewCheckRepository(pool *pgxpool.Pool) *CheckRepository {
	return &CheckRepository{pool: pool}
}

// PortfolioSummary aggregates in-portfolio checks for the customer in one
// query: total, count, nearest future maturity, and the count maturing inside
// the near-term window.
func (r *CheckRepository) PortfolioSummary(ctx context.Context, customerID, companyID string, docTypes []string, asOf time.Time) (domain.PortfolioSummary, error) {
	windowEnd := asOf.AddDate(0, 0, domain.MaturityWindowDays)

	var summary domain.PortfolioSummary
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(c.amount), 0),
		       COUNT(*),
		       MIN(c.maturity_date) FILTER (WHERE c.maturity_date >= $4),
		       COUNT(*) FILTER (WHERE c.maturity_date >= $4 AND c.maturity_date < $5)
		FROM checks c
		JOIN payments p ON p.id = c.payment_id
		WHERE p.customer_id = $1
		  AND p.company_id = $2
		  AND p.doc_type = ANY($3)
		  AND c.status = 'in_portfolio'
	`, customerID, companyID, docTypes, asOf, windowEnd).Scan(
		&summary.Total,
		&summary.Count,
		&summary.NextMaturity,
		&summary.MaturingWithinWindow,
	)
	if err != nil {
		return domain.PortfolioSummary{}, err
	}

	return summary, nil
}
