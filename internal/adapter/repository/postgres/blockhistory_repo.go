package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/creditgate/internal/domain"
)

// BlockHistoryRepository implements usecase.BlockHistoryRepository.
type BlockHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewBlockHistoryRepository creates a new BlockHistoryRepository.
func NewBlockHistoryRepository(pool *pgxpool.Pool) *BlockHistoryRepository {
	return &BlockHistoryRepository{pool: pool}
}

// LatestOpen returns the most recent block record that has not been closed
// with an unblocked timestamp, or (nil, nil) when the customer has none.
func (r *BlockHistoryRepository) LatestOpen(ctx context.Context, customerID string) (*domain.BlockEvent, error) {
	var (
		event     domain.BlockEvent
		blockType string
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, block_type, reason, blocked_by, blocked_at, unblocked_at
		FROM customer_block_history
		WHERE customer_id = $1
		  AND unblocked_at IS NULL
		ORDER BY blocked_at DESC
		LIMIT 1
	`, customerID).Scan(
		&event.ID,
		&event.CustomerID,
		&blockType,
		&event.Reason,
		&event.BlockedBy,
		&event.BlockedAt,
		&event.UnblockedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	event.Type = domain.BlockType(blockType)

	return &event, nil
}
