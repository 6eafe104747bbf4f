package domain

import "github.com/shopspring/decimal"

// Status colors for list rendering.
const (
	StatusRed    = "red"
	StatusYellow = "yellow"
	StatusGreen  = "green"
)

// Quick-status labels, highest priority first.
const (
	LabelBlocked    = "Blocked"
	LabelInArrears  = "In arrears"
	LabelNoCredit   = "No credit"
	LabelHighCredit = "High credit"
	LabelOK         = "OK"
	LabelNotFound   = "Not found"
)

// HighUtilizationThreshold is the fixed cutoff for the "High credit" quick
// classification.
var HighUtilizationThreshold = decimal.NewFromInt(80)

// QuickStatus is the cheap single-pass classification used by list views and
// bulk screens. It relies on the cached balance, not the ledger.
type QuickStatus struct {
	CustomerID         string
	HasCredit          bool
	IsBlocked          bool
	HasOverdue         bool
	UtilizationPercent decimal.Decimal
	StatusColor        string
	StatusLabel        string
}

// ClassifyQuickStatus derives the quick status for a customer from its cached
// balance and overdue invoice count. Priority, highest wins: blocked, in
// arrears, no usable credit, high utilization, ok.
func ClassifyQuickStatus(c *Customer, overdueCount int) QuickStatus {
	utilization := Utilization(c.CachedBalance, decimal.Zero, c.CreditLimit)
	hasCredit := c.CreditLimit.IsPositive() && c.CachedBalance.LessThan(c.CreditLimit)

	qs := QuickStatus{
		CustomerID:         c.ID,
		HasCredit:          hasCredit,
		IsBlocked:          c.CreditBlocked,
		HasOverdue:         overdueCount > 0,
		UtilizationPercent: utilization,
	}

	switch {
	case qs.IsBlocked:
		qs.StatusColor, qs.StatusLabel = StatusRed, LabelBlocked
	case qs.HasOverdue:
		qs.StatusColor, qs.StatusLabel = StatusRed, LabelInArrears
	case !qs.HasCredit:
		qs.StatusColor, qs.StatusLabel = StatusRed, LabelNoCredit
	case utilization.GreaterThanOrEqual(HighUtilizationThreshold):
		qs.StatusColor, qs.StatusLabel = StatusYellow, LabelHighCredit
	default:
		qs.StatusColor, qs.StatusLabel = StatusGreen, LabelOK
	}

	return qs
}

// NotFoundQuickStatus synthesizes the conservative entry returned for ids
// that do not resolve to a customer, so bulk screens can always render a row.
func NotFoundQuickStatus(customerID string) QuickStatus {
	return QuickStatus{
		CustomerID:         customerID,
		IsBlocked:          true,
		UtilizationPercent: decimal.Zero,
		StatusColor:        StatusRed,
		StatusLabel:        LabelNotFound,
	}
}
