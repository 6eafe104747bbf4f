package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditOutcome classifies a recorded decision.
type AuditOutcome string

const (
	AuditOutcomeProceed  AuditOutcome = "proceed"
	AuditOutcomeBlocked  AuditOutcome = "blocked"
	AuditOutcomeBypassed AuditOutcome = "bypassed"
)

// DecisionAudit is the persisted summary of one validation decision. It
// records who asked, what was decided and whether validation was bypassed;
// the full ValidationResult itself is never stored.
type DecisionAudit struct {
	ID           string
	CustomerID   string
	CompanyID    string
	CallerID     string
	OrderAmount  decimal.Decimal
	Outcome      AuditOutcome
	ErrorCount   int
	WarningCount int
	CreatedAt    time.Time
}

// AuditOutcomeFor derives the audit outcome from a validation result.
// Bypassed takes precedence so override use is always visible in the trail.
func AuditOutcomeFor(r *ValidationResult, bypassed bool) AuditOutcome {
	switch {
	case bypassed:
		return AuditOutcomeBypassed
	case r.CanProceed:
		return AuditOutcomeProceed
	default:
		return AuditOutcomeBlocked
	}
}
