package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckStatusCode is the lifecycle state of a post-dated payment instrument.
type CheckStatusCode string

const (
	CheckInPortfolio CheckStatusCode = "in_portfolio"
	CheckDeposited   CheckStatusCode = "deposited"
	CheckCleared     CheckStatusCode = "cleared"
	CheckBounced     CheckStatusCode = "bounced"
)

// Check is a post-dated payment instrument linked to a customer through its
// payment. Only in-portfolio checks count toward portfolio limits.
type Check struct {
	ID           string
	PaymentID    string
	Amount       decimal.Decimal
	MaturityDate time.Time
	Status       CheckStatusCode
}

// MaturityWindowDays is the near-term window used for the informational
// count of soon-maturing instruments.
const MaturityWindowDays = 30

// PortfolioSummary is the aggregate position of a customer's held checks.
type PortfolioSummary struct {
	Total                decimal.Decimal
	Count                int
	NextMaturity         *time.Time
	MaturingWithinWindow int
}

// ExceedsLimit reports whether the portfolio total is over the given limit.
// A zero or negative limit means no limit is configured and never constrains.
func (p PortfolioSummary) ExceedsLimit(limit decimal.Decimal) bool {
	if !limit.IsPositive() {
		return false
	}
	return p.Total.GreaterThan(limit)
}
