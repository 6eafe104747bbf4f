package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/creditgate/internal/domain"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = `
	id, company_id, name, tax_id, credit_limit, cached_balance,
	payment_terms_days, credit_blocked, block_reason, blocked_at,
	check_limit_override, created_at, updated_at
`

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	return customer, nil
}

// GetByIDs retrieves the customers among ids that exist within the company
// scope. Missing ids are simply absent from the result.
func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []string, companyID string) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = ANY($1) AND company_id = $2`,
		ids, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0, len(ids))
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer

	err := row.Scan(
		&c.ID,
		&c.CompanyID,
		&c.Name,
		&c.TaxID,
		&c.CreditLimit,
		&c.CachedBalance,
		&c.PaymentTermsDays,
		&c.CreditBlocked,
		&c.BlockReason,
		&c.BlockedAt,
		&c.CheckLimitOverride,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
