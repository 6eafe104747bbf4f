package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/creditgate/internal/domain"
)

// AuditRepository implements usecase.AuditRepository.
type AuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Create persists one decision audit record.
func (r *AuditRepository) Create(ctx context.Context, audit *domain.DecisionAudit) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO decision_audits (
			id, customer_id, company_id, caller_id, order_amount,
			outcome, error_count, warning_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		audit.ID,
		audit.CustomerID,
		audit.CompanyID,
		audit.CallerID,
		audit.OrderAmount,
		string(audit.Outcome),
		audit.ErrorCount,
		audit.WarningCount,
		audit.CreatedAt,
	)

	return err
}
