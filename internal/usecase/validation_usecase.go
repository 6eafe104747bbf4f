package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/creditgate/internal/domain"
)

// ValidationUseCase is the credit and risk gate every order-creation flow
// passes through. It reconstructs the customer's position from the ledger,
// reconciles it against the cached balance, ages the receivables, measures
// the check portfolio and combines everything into one policy decision.
//
// The use case is read-only: it never mutates the entities it reads, takes
// no locks, and surfaces ledger/cache skew instead of correcting it.
type ValidationUseCase struct {
	customerRepo CustomerRepository
	ledgerRepo   LedgerRepository
	invoiceRepo  InvoiceRepository
	checkRepo    CheckRepository
	policyRepo   PolicyRepository
	blockRepo    BlockHistoryRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
	now          func() time.Time
}

// NewValidationUseCase creates a new ValidationUseCase. auditRepo may be nil
// to disable the decision audit trail.
func NewValidationUseCase(
	customerRepo CustomerRepository,
	ledgerRepo LedgerRepository,
	invoiceRepo InvoiceRepository,
	checkRepo CheckRepository,
	policyRepo PolicyRepository,
	blockRepo BlockHistoryRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
) *ValidationUseCase {
	return &ValidationUseCase{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		invoiceRepo:  invoiceRepo,
		checkRepo:    checkRepo,
		policyRepo:   policyRepo,
		blockRepo:    blockRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ValidateInput represents input for a full credit validation.
type ValidateInput struct {
	CustomerID     string
	CompanyID      string
	OrderAmount    decimal.Decimal
	VisibilityMode domain.VisibilityMode
	CallerID       string
	SkipValidation bool
}

func (in ValidateInput) validate() error {
	if err := domain.ValidateID(in.CustomerID, domain.ErrMissingCustomerID); err != nil {
		return err
	}
	if err := domain.ValidateID(in.CompanyID, domain.ErrMissingCompanyID); err != nil {
		return err
	}
	if err := domain.ValidateOrderAmount(in.OrderAmount); err != nil {
		return err
	}
	return domain.ValidateVisibilityMode(in.VisibilityMode)
}

// snapshot holds the outputs of the concurrent reads feeding the evaluator.
type snapshot struct {
	customer    *domain.Customer
	notFound    bool
	totalDebit  decimal.Decimal
	totalCredit decimal.Decimal
	pending     []*domain.Invoice
	portfolio   domain.PortfolioSummary
	blockEvent  *domain.BlockEvent
	policy      *domain.PolicyConfig
}

// Validate runs the full credit and risk validation for one prospective
// order. A missing customer yields a conservative blocked result, not an
// error; any failing data-source read is fatal because a credit decision
// must never be made on a partial snapshot.
func (uc *ValidationUseCase) Validate(ctx context.Context, input ValidateInput) (*domain.ValidationResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	asOf := uc.now()
	snap, err := uc.fetchSnapshot(ctx, input, asOf)
	if err != nil {
		return nil, err
	}

	result := uc.evaluate(input, snap, asOf)
	bypassed := input.SkipValidation && !snap.notFound
	uc.recordAudit(ctx, input, result, bypassed)

	log.Info().
		Str("validation_id", result.ValidationID).
		Str("customer_id", input.CustomerID).
		Str("outcome", string(domain.AuditOutcomeFor(result, bypassed))).
		Bool("can_proceed", result.CanProceed).
		Bool("requires_override", result.RequiresOverride).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Msg("credit validation evaluated")

	return result, nil
}

// fetchSnapshot issues the independent reads concurrently so latency is
// bounded by the slowest read. The caller's context cancels all branches.
func (uc *ValidationUseCase) fetchSnapshot(ctx context.Context, input ValidateInput, asOf time.Time) (*snapshot, error) {
	scope := input.VisibilityMode.DocScope()
	snap := &snapshot{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		customer, err := uc.customerRepo.GetByID(gctx, input.CustomerID)
		if err != nil {
			if errors.Is(err, domain.ErrCustomerNotFound) {
				snap.notFound = true
				return nil
			}
			return fmt.Errorf("fetch customer: %w", err)
		}
		snap.customer = customer
		return nil
	})

	g.Go(func() error {
		debit, credit, err := uc.ledgerRepo.OutstandingTotals(gctx, input.CustomerID, input.CompanyID, scope)
		if err != nil {
			return fmt.Errorf("aggregate ledger: %w", err)
		}
		snap.totalDebit, snap.totalCredit = debit, credit
		return nil
	})

	g.Go(func() error {
		pending, err := uc.invoiceRepo.ListPending(gctx, input.CustomerID, input.CompanyID, scope)
		if err != nil {
			return fmt.Errorf("list pending invoices: %w", err)
		}
		snap.pending = pending
		return nil
	})

	g.Go(func() error {
		portfolio, err := uc.checkRepo.PortfolioSummary(gctx, input.CustomerID, input.CompanyID, scope, asOf)
		if err != nil {
			return fmt.Errorf("summarize check portfolio: %w", err)
		}
		snap.portfolio = portfolio
		return nil
	})

	g.Go(func() error {
		event, err := uc.blockRepo.LatestOpen(gctx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("fetch block history: %w", err)
		}
		snap.blockEvent = event
		return nil
	})

	g.Go(func() error {
		policy, err := uc.policyRepo.GetByCompany(gctx, input.CompanyID)
		if err != nil {
			if errors.Is(err, domain.ErrPolicyNotFound) {
				snap.policy = domain.DefaultPolicy(input.CompanyID)
				return nil
			}
			return fmt.Errorf("fetch credit policy: %w", err)
		}
		policy.Normalize()
		snap.policy = policy
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

func (uc *ValidationUseCase) evaluate(input ValidateInput, snap *snapshot, asOf time.Time) *domain.ValidationResult {
	result := &domain.ValidationResult{
		ValidationID: uc.idGen.Generate(),
		EvaluatedAt:  asOf,
	}

	if snap.notFound {
		// List and bulk callers must be able to render a row even for a
		// missing customer, so this is a conservative result, not an error.
		result.Errors = append(result.Errors, domain.ErrCustomerNotFound.Error())
		result.CustomerInfo = domain.CustomerInfo{ID: input.CustomerID}
		return result
	}

	customer := snap.customer
	policy := snap.policy

	result.CustomerInfo = domain.CustomerInfo{
		ID:               customer.ID,
		Name:             customer.Name,
		TaxID:            customer.TaxID,
		PaymentTermsDays: customer.PaymentTermsDays,
	}
	result.CreditStatus = buildCreditStatus(customer, snap, input.OrderAmount)
	result.OverdueStatus = buildOverdueStatus(snap.pending, policy, asOf)
	result.CheckStatus = buildCheckStatus(customer, snap.portfolio, policy)
	result.BlockStatus = buildBlockStatus(customer, snap.blockEvent)

	if input.SkipValidation {
		result.CanProceed = true
		result.Warnings = []string{BypassWarning}
		return result
	}

	if !customer.BelongsTo(input.CompanyID) {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"%s: customer is scoped to company %s, call was for %s",
			domain.ErrScopeMismatch.Error(), customer.CompanyID, input.CompanyID))
	}

	if result.BlockStatus.IsBlocked {
		reason := result.BlockStatus.Reason
		if reason == "" {
			reason = "no reason recorded"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("account blocked: %s", reason))
	}

	if policy.EnforceCreditLimit {
		if result.CreditStatus.Available.IsNegative() {
			msg := fmt.Sprintf("credit limit exceeded by %s (limit %s, ledger balance %s, requested %s)",
				result.CreditStatus.Available.Neg(), customer.CreditLimit,
				result.CreditStatus.UsedFromLedger, input.OrderAmount)
			if policy.HardBlockOnExceeded {
				result.Errors = append(result.Errors, msg)
			} else {
				result.Warnings = append(result.Warnings, msg)
			}
		} else if result.CreditStatus.UtilizationPercent.GreaterThanOrEqual(policy.AlertThreshold) {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"projected credit utilization %s%% is at or above the %s%% alert threshold",
				result.CreditStatus.UtilizationPercent.StringFixed(1), policy.AlertThreshold))
		}
	}

	if policy.EnforceOverdueBlock && result.OverdueStatus.HasOverdue {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"%d overdue invoice(s) totaling %s, oldest %d days past due",
			len(result.OverdueStatus.OverdueInvoices),
			result.OverdueStatus.OverdueAmount,
			result.OverdueStatus.OldestOverdueDays))
	}

	if policy.EnforceCheckLimit && result.CheckStatus.ExceedsLimit {
		// Never a hard error: the limit throttles acceptance of future
		// instruments, not the current order.
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"check portfolio %s exceeds limit %s",
			result.CheckStatus.TotalInPortfolio, result.CheckStatus.Limit))
	}

	if result.CreditStatus.NeedsReconciliation {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"cached balance %s is out of sync with ledger balance %s (drift %s)",
			result.CreditStatus.CachedDebt,
			result.CreditStatus.UsedFromLedger,
			result.CreditStatus.DifferenceAmount))
	}

	result.CanProceed = len(result.Errors) == 0
	result.RequiresOverride = !result.CanProceed && len(result.Warnings) > 0

	return result
}

func buildCreditStatus(customer *domain.Customer, snap *snapshot, orderAmount decimal.Decimal) domain.CreditStatus {
	used := domain.OutstandingBalance(snap.totalDebit, snap.totalCredit)
	drift, needsReconciliation := domain.ReconciliationDrift(used, customer.CachedBalance)

	return domain.CreditStatus{
		Limit:               customer.CreditLimit,
		UsedFromLedger:      used,
		CachedDebt:          customer.CachedBalance,
		Available:           customer.CreditLimit.Sub(used).Sub(orderAmount),
		UtilizationPercent:  domain.Utilization(used, orderAmount, customer.CreditLimit),
		NeedsReconciliation: needsReconciliation,
		DifferenceAmount:    drift,
	}
}

func buildOverdueStatus(pending []*domain.Invoice, policy *domain.PolicyConfig, asOf time.Time) domain.OverdueStatus {
	status := domain.OverdueStatus{OverdueAmount: decimal.Zero}

	if policy.AgingEnabled {
		status.AgingBuckets = domain.BuildAgingBuckets(policy.AgingBoundaries)
	}

	for _, inv := range pending {
		if !inv.Pending() || inv.DueDate == nil {
			continue
		}

		days := inv.DaysOverdue(asOf)
		if policy.AgingEnabled {
			domain.PlaceInBucket(status.AgingBuckets, days, inv.PendingBalance)
		}

		if !inv.Overdue(asOf, policy.GraceDays) {
			continue
		}

		status.HasOverdue = true
		status.OverdueAmount = status.OverdueAmount.Add(inv.PendingBalance)
		if days > status.OldestOverdueDays {
			status.OldestOverdueDays = days
		}
		status.OverdueInvoices = append(status.OverdueInvoices, domain.OverdueInvoice{
			ID:             inv.ID,
			Number:         inv.Number,
			Total:          inv.Total,
			PendingBalance: inv.PendingBalance,
			DueDate:        *inv.DueDate,
			DaysOverdue:    days,
		})
	}

	return status
}

func buildCheckStatus(customer *domain.Customer, portfolio domain.PortfolioSummary, policy *domain.PolicyConfig) domain.CheckPortfolioStatus {
	limit := customer.CheckLimit(policy.DefaultCheckLimit)

	return domain.CheckPortfolioStatus{
		TotalInPortfolio:     portfolio.Total,
		Count:                portfolio.Count,
		ExceedsLimit:         portfolio.ExceedsLimit(limit),
		Limit:                limit,
		NextMaturity:         portfolio.NextMaturity,
		MaturingWithin30Days: portfolio.MaturingWithinWindow,
	}
}

func buildBlockStatus(customer *domain.Customer, event *domain.BlockEvent) domain.BlockStatus {
	status := domain.BlockStatus{
		IsBlocked: customer.CreditBlocked,
		Reason:    customer.BlockReason,
		BlockedAt: customer.BlockedAt,
	}

	if !status.IsBlocked {
		return status
	}

	status.BlockType = domain.BlockUnspecified
	if event != nil && event.Open() {
		status.BlockType = event.Type
		if status.Reason == "" {
			status.Reason = event.Reason
		}
	}

	return status
}

// recordAudit persists a decision summary. Best effort: the validation result
// is already final, so an audit failure is logged and swallowed.
func (uc *ValidationUseCase) recordAudit(ctx context.Context, input ValidateInput, result *domain.ValidationResult, bypassed bool) {
	if uc.auditRepo == nil {
		return
	}

	audit := &domain.DecisionAudit{
		ID:           result.ValidationID,
		CustomerID:   input.CustomerID,
		CompanyID:    input.CompanyID,
		CallerID:     input.CallerID,
		OrderAmount:  input.OrderAmount,
		Outcome:      domain.AuditOutcomeFor(result, bypassed),
		ErrorCount:   len(result.Errors),
		WarningCount: len(result.Warnings),
		CreatedAt:    result.EvaluatedAt,
	}

	if err := uc.auditRepo.Create(ctx, audit); err != nil {
		log.Warn().Err(err).
			Str("validation_id", result.ValidationID).
			Str("customer_id", input.CustomerID).
			Msg("failed to record decision audit")
	}
}
