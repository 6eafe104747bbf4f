package metrics

import (
	"context"
	"time"

	"github.com/iho/creditgate/internal/domain"
	"github.com/iho/creditgate/internal/usecase"
)

// ValidationService is the slice of the validation use case this package
// observes.
type ValidationService interface {
	Validate(ctx context.Context, input usecase.ValidateInput) (*domain.ValidationResult, error)
}

// QuickStatusService is the slice of the quick-status use case this package
// observes.
type QuickStatusService interface {
	QuickStatus(ctx context.Context, customerID, companyID string, mode domain.VisibilityMode) (domain.QuickStatus, error)
	BatchQuickStatus(ctx context.Context, customerIDs []string, companyID string, mode domain.VisibilityMode) (map[string]domain.QuickStatus, error)
}

// InstrumentedValidation decorates a validation service with outcome and
// duration metrics.
type InstrumentedValidation struct {
	next ValidationService
	m    *Metrics
}

// NewInstrumentedValidation creates a new InstrumentedValidation.
func NewInstrumentedValidation(next ValidationService, m *Metrics) *InstrumentedValidation {
	return &InstrumentedValidation{next: next, m: m}
}

// Validate delegates and records the decision.
func (s *InstrumentedValidation) Validate(ctx context.Context, input usecase.ValidateInput) (*domain.ValidationResult, error) {
	start := time.Now()

	result, err := s.next.Validate(ctx, input)
	if err != nil {
		s.m.ValidationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// A bypass always yields a proceed decision, so a skipped validation
	// that still blocked (unknown customer) counts as blocked here too.
	bypassed := input.SkipValidation && result.CanProceed

	s.m.ValidationDuration.Observe(time.Since(start).Seconds())
	s.m.ValidationsTotal.WithLabelValues(string(domain.AuditOutcomeFor(result, bypassed))).Inc()
	s.m.ValidationWarnings.Add(float64(len(result.Warnings)))
	s.m.ValidationErrors.Add(float64(len(result.Errors)))

	if bypassed {
		s.m.ValidationBypasses.Inc()
	}
	if result.CreditStatus.NeedsReconciliation {
		s.m.ReconciliationDrift.Inc()
	}

	return result, nil
}

// InstrumentedQuickStatus decorates a quick-status service with
// classification and cache-shape metrics.
type InstrumentedQuickStatus struct {
	next QuickStatusService
	m    *Metrics
}

// NewInstrumentedQuickStatus creates a new InstrumentedQuickStatus.
func NewInstrumentedQuickStatus(next QuickStatusService, m *Metrics) *InstrumentedQuickStatus {
	return &InstrumentedQuickStatus{next: next, m: m}
}

// QuickStatus delegates and counts the resulting label.
func (s *InstrumentedQuickStatus) QuickStatus(ctx context.Context, customerID, companyID string, mode domain.VisibilityMode) (domain.QuickStatus, error) {
	status, err := s.next.QuickStatus(ctx, customerID, companyID, mode)
	if err != nil {
		return status, err
	}

	s.m.QuickStatusTotal.WithLabelValues(status.StatusLabel).Inc()

	return status, nil
}

// BatchQuickStatus delegates and records batch size plus per-label counts.
func (s *InstrumentedQuickStatus) BatchQuickStatus(ctx context.Context, customerIDs []string, companyID string, mode domain.VisibilityMode) (map[string]domain.QuickStatus, error) {
	statuses, err := s.next.BatchQuickStatus(ctx, customerIDs, companyID, mode)
	if err != nil {
		return nil, err
	}

	s.m.BatchSize.Observe(float64(len(customerIDs)))
	for _, status := range statuses {
		s.m.QuickStatusTotal.WithLabelValues(status.StatusLabel).Inc()
	}

	return statuses, nil
}
