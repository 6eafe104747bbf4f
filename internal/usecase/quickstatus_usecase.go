package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iho/creditgate/internal/domain"
)

// QuickStatusUseCase is the cheap single-pass variant of the credit decision,
// meant for list views and bulk screens. It reads the cached balance and an
// overdue invoice count instead of the full ledger and invoice detail.
type QuickStatusUseCase struct {
	customerRepo CustomerRepository
	invoiceRepo  InvoiceRepository
	cache        StatusCache
	cacheTTL     time.Duration
	now          func() time.Time
}

// NewQuickStatusUseCase creates a new QuickStatusUseCase. cache may be nil to
// disable caching.
func NewQuickStatusUseCase(
	customerRepo CustomerRepository,
	invoiceRepo InvoiceRepository,
	cache StatusCache,
	cacheTTL time.Duration,
) *QuickStatusUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultStatusCacheTTL
	}
	return &QuickStatusUseCase{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// QuickStatus classifies a single customer. A customer that does not exist,
// or exists under another company, yields the synthesized not-found entry.
func (uc *QuickStatusUseCase) QuickStatus(ctx context.Context, customerID, companyID string, mode domain.VisibilityMode) (domain.QuickStatus, error) {
	if err := domain.ValidateID(customerID, domain.ErrMissingCustomerID); err != nil {
		return domain.QuickStatus{}, err
	}
	if err := domain.ValidateID(companyID, domain.ErrMissingCompanyID); err != nil {
		return domain.QuickStatus{}, err
	}
	if err := domain.ValidateVisibilityMode(mode); err != nil {
		return domain.QuickStatus{}, err
	}

	key := statusCacheKey(companyID, customerID, mode)
	if cached, ok := uc.cachedStatus(ctx, key); ok {
		return cached, nil
	}

	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.NotFoundQuickStatus(customerID), nil
		}
		return domain.QuickStatus{}, fmt.Errorf("fetch customer: %w", err)
	}
	if !customer.BelongsTo(companyID) {
		return domain.NotFoundQuickStatus(customerID), nil
	}

	counts, err := uc.invoiceRepo.CountOverdue(ctx, []string{customerID}, companyID, mode.DocScope(), uc.overdueCutoff())
	if err != nil {
		return domain.QuickStatus{}, fmt.Errorf("count overdue invoices: %w", err)
	}

	status := domain.ClassifyQuickStatus(customer, counts[customerID])
	uc.storeStatus(ctx, key, status)

	return status, nil
}

// BatchQuickStatus classifies a set of customers with exactly two aggregate
// reads, issued concurrently. The result map carries an entry for every
// requested id; unresolved ids map to the not-found entry.
func (uc *QuickStatusUseCase) BatchQuickStatus(ctx context.Context, customerIDs []string, companyID string, mode domain.VisibilityMode) (map[string]domain.QuickStatus, error) {
	if err := domain.ValidateBatch(customerIDs); err != nil {
		return nil, err
	}
	if err := domain.ValidateID(companyID, domain.ErrMissingCompanyID); err != nil {
		return nil, err
	}
	if err := domain.ValidateVisibilityMode(mode); err != nil {
		return nil, err
	}

	var (
		customers []*domain.Customer
		counts    map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := uc.customerRepo.GetByIDs(gctx, customerIDs, companyID)
		if err != nil {
			return fmt.Errorf("fetch customers: %w", err)
		}
		customers = found
		return nil
	})

	g.Go(func() error {
		overdue, err := uc.invoiceRepo.CountOverdue(gctx, customerIDs, companyID, mode.DocScope(), uc.overdueCutoff())
		if err != nil {
			return fmt.Errorf("count overdue invoices: %w", err)
		}
		counts = overdue
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	statuses := make(map[string]domain.QuickStatus, len(customerIDs))
	for _, id := range customerIDs {
		customer, ok := byID[id]
		if !ok {
			statuses[id] = domain.NotFoundQuickStatus(id)
			continue
		}
		statuses[id] = domain.ClassifyQuickStatus(customer, counts[id])
	}

	return statuses, nil
}

// overdueCutoff is midnight today: the quick variant applies no grace period.
func (uc *QuickStatusUseCase) overdueCutoff() time.Time {
	now := uc.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func statusCacheKey(companyID, customerID string, mode domain.VisibilityMode) string {
	return fmt.Sprintf("qs:%s:%s:%s", companyID, customerID, mode)
}

func (uc *QuickStatusUseCase) cachedStatus(ctx context.Context, key string) (domain.QuickStatus, bool) {
	if uc.cache == nil {
		return domain.QuickStatus{}, false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		return domain.QuickStatus{}, false
	}

	var status domain.QuickStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return domain.QuickStatus{}, false
	}

	return status, true
}

func (uc *QuickStatusUseCase) storeStatus(ctx context.Context, key string, status domain.QuickStatus) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(status)
	if err != nil {
		return
	}

	// Cache write failures are ignored: the cache is an optimization.
	_ = uc.cache.Set(ctx, key, raw, uc.cacheTTL)
}
