package domain

import "github.com/shopspring/decimal"

// Policy defaults applied once at load time.
var (
	defaultAgingBoundaries = []int{30, 60, 90, 120}
	defaultAlertThreshold  = decimal.NewFromInt(80)
)

// PolicyConfig is the per-company credit policy. It is read-only external
// configuration: the engine consumes it but never owns or mutates it. An
// absent record resolves to DefaultPolicy (all enforcement off).
type PolicyConfig struct {
	CompanyID           string
	EnforceCreditLimit  bool
	HardBlockOnExceeded bool
	EnforceOverdueBlock bool
	GraceDays           int
	AgingEnabled        bool
	AgingBoundaries     []int
	AlertThreshold      decimal.Decimal
	EnforceCheckLimit   bool
	DefaultCheckLimit   decimal.Decimal
}

// DefaultPolicy is the fallback when no policy record exists for a company:
// every enforcement flag off, so validation can only warn, never block.
func DefaultPolicy(companyID string) *PolicyConfig {
	p := &PolicyConfig{CompanyID: companyID}
	p.Normalize()
	return p
}

// Normalize applies defaults in one place so callers never default inline:
// aging boundaries fall back to 30/60/90/120, the alert threshold to 80%,
// and a negative grace period is clamped to zero.
func (p *PolicyConfig) Normalize() {
	if len(p.AgingBoundaries) == 0 {
		p.AgingBoundaries = append([]int(nil), defaultAgingBoundaries...)
	}
	if !p.AlertThreshold.IsPositive() {
		p.AlertThreshold = defaultAlertThreshold
	}
	if p.GraceDays < 0 {
		p.GraceDays = 0
	}
}
