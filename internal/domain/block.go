package domain

import "time"

// BlockType classifies why an account is blocked.
type BlockType string

const (
	// BlockManual is a block placed explicitly by an operator.
	BlockManual BlockType = "manual"
	// BlockAutomaticOverdue is a block placed by the overdue automation.
	BlockAutomaticOverdue BlockType = "automatic_overdue"
	// BlockUnspecified is used when no open history record explains the block.
	BlockUnspecified BlockType = "unspecified"
)

// BlockEvent is one record in a customer's block history. An open event has
// no UnblockedAt timestamp.
type BlockEvent struct {
	ID          string
	CustomerID  string
	Type        BlockType
	Reason      string
	BlockedBy   string
	BlockedAt   time.Time
	UnblockedAt *time.Time
}

// Open reports whether the block event is still in effect.
func (e *BlockEvent) Open() bool {
	return e.UnblockedAt == nil
}
