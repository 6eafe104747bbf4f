package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/creditgate/internal/domain"
)

// PolicyRepository implements usecase.PolicyRepository.
type PolicyRepository struct {
	pool *pgxpool.Pool
}

// NewPolicyRepository creates a new PolicyRepository.
func NewPolicyRepository(pool *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{pool: pool}
}

// GetByCompany retrieves the credit policy for a company. Absence is reported
// as domain.ErrPolicyNotFound so the engine can fall back to no enforcement.
func (r *PolicyRepository) GetByCompany(ctx context.Context, companyID string) (*domain.PolicyConfig, error) {
	var (
		p          domain.PolicyConfig
		boundaries []int32
	)

	err := r.pool.QueryRow(ctx, `
		SELECT company_id, enforce_credit_limit, hard_block_on_exceeded,
		       enforce_overdue_block, grace_days, aging_enabled,
		       aging_boundaries, alert_threshold, enforce_check_limit,
		       default_check_limit
		FROM credit_policies
		WHERE company_id = $1
	`, companyID).Scan(
		&p.CompanyID,
		&p.EnforceCreditLimit,
		&p.HardBlockOnExceeded,
		&p.EnforceOverdueBlock,
		&p.GraceDays,
		&p.AgingEnabled,
		&boundaries,
		&p.AlertThreshold,
		&p.EnforceCheckLimit,
		&p.DefaultCheckLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}

	p.AgingBoundaries = make([]int, len(boundaries))
	for i, b := range boundaries {
		p.AgingBoundaries[i] = int(b)
	}

	return &p, nil
}
