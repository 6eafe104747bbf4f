package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single append-only debit/credit record in a customer's
// current account. The engine never writes entries; it only sums them.
// Voided entries are excluded from every aggregate.
type LedgerEntry struct {
	ID         string
	CustomerID string
	CompanyID  string
	DocType    string
	Debit      decimal.Decimal
	Credit     decimal.Decimal
	Voided     bool
	CreatedAt  time.Time
}

// OutstandingBalance is the ledger-derived position of a customer:
// sum(debit) - sum(credit) over non-voided entries in scope.
// Positive means the customer owes.
func OutstandingBalance(totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	return totalDebit.Sub(totalCredit)
}

// ReconciliationTolerance is the maximum drift between the ledger-derived
// balance and the cached balance field before reconciliation is flagged,
// in currency minor units.
var ReconciliationTolerance = decimal.RequireFromString("0.01")

// ReconciliationDrift returns the absolute drift between ledger and cache and
// whether it exceeds tolerance. Drift is a data-quality signal, never a risk
// signal.
func ReconciliationDrift(usedFromLedger, cachedBalance decimal.Decimal) (drift decimal.Decimal, needsReconciliation bool) {
	drift = usedFromLedger.Sub(cachedBalance).Abs()
	return drift, drift.GreaterThan(ReconciliationTolerance)
}
