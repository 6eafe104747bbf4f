package domain

// Document-type tags carried by ledger entries, invoices and payments.
const (
	DocTypeFiscal   = "fiscal"
	DocTypeInternal = "internal"
)

// VisibilityMode selects which document classes downstream queries include.
type VisibilityMode string

const (
	// VisibilityStandard includes only fiscal documents.
	VisibilityStandard VisibilityMode = "standard"
	// VisibilityExtended includes fiscal plus internal documents.
	VisibilityExtended VisibilityMode = "extended"
)

// Valid reports whether the mode is a known visibility mode.
func (m VisibilityMode) Valid() bool {
	return m == VisibilityStandard || m == VisibilityExtended
}

// DocScope resolves the document-type tags that every downstream query for
// this mode must filter on. Unknown modes resolve to the standard scope.
func (m VisibilityMode) DocScope() []string {
	if m == VisibilityExtended {
		return []string{DocTypeFiscal, DocTypeInternal}
	}
	return []string{DocTypeFiscal}
}
