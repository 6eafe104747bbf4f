package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/creditgate/internal/domain"
)

// StubCustomerRepository is a hand-rolled stub implementation of CustomerRepository.
type StubCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	GetByIDFunc  func(ctx context.Context, id string) (*domain.Customer, error)
	GetByIDsFunc func(ctx context.Context, ids []string, companyID string) ([]*domain.Customer, error)
}

func NewStubCustomerRepository() *StubCustomerRepository {
	return &StubCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// Add seeds the in-memory store backing the default behaviors.
func (m *StubCustomerRepository) Add(c *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
}

func (m *StubCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *StubCustomerRepository) GetByIDs(ctx context.Context, ids []string, companyID string) ([]*domain.Customer, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids, companyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	found := make([]*domain.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.customers[id]; ok && c.CompanyID == companyID {
			found = append(found, c)
		}
	}
	return found, nil
}

// StubLedgerRepository is a hand-rolled stub implementation of LedgerRepository.
type StubLedgerRepository struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal

	OutstandingTotalsFunc func(ctx context.Context, customerID, companyID string, docTypes []string) (decimal.Decimal, decimal.Decimal, error)
}

func NewStubLedgerRepository() *StubLedgerRepository {
	return &StubLedgerRepository{Debit: decimal.Zero, Credit: decimal.Zero}
}

func (m *StubLedgerRepository) OutstandingTotals(ctx context.Context, customerID, companyID string, docTypes []string) (decimal.Decimal, decimal.Decimal, error) {
	if m.OutstandingTotalsFunc != nil {
		return m.OutstandingTotalsFunc(ctx, customerID, companyID, docTypes)
	}
	return m.Debit, m.Credit, nil
}

// StubInvoiceRepository is a hand-rolled stub implementation of InvoiceRepository.
type StubInvoiceRepository struct {
	Pending []*domain.Invoice
	Counts  map[string]int

	ListPendingFunc  func(ctx context.Context, customerID, companyID string, docTypes []string) ([]*domain.Invoice, error)
	CountOverdueFunc func(ctx context.Context, customerIDs []string, companyID string, docTypes []string, before time.Time) (map[string]int, error)
}

func NewStubInvoiceRepository() *StubInvoiceRepository {
	return &StubInvoiceRepository{Counts: make(map[string]int)}
}

func (m *StubInvoiceRepository) ListPending(ctx context.Context, customerID, companyID string, docTypes []string) ([]*domain.Invoice, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, customerID, companyID, docTypes)
	}
	return m.Pending, nil
}

func (m *StubInvoiceRepository) CountOverdue(ctx context.Context, customerIDs []string, companyID string, docTypes []string, before time.Time) (map[string]int, error) {
	if m.CountOverdueFunc != nil {
		return m.CountOverdueFunc(ctx, customerIDs, companyID, docTypes, before)
	}
	return m.Counts, nil
}

// StubCheckRepository is a hand-rolled stub implementation of CheckRepository.
type StubCheckRepository struct {
	Summary domain.PortfolioSummary

	PortfolioSummaryFunc func(ctx context.Context, customerID, companyID string, docTypes []string, asOf time.Time) (domain.PortfolioSummary, error)
}

func NewStubCheckRepository() *StubCheckRepository {
	return &StubCheckRepository{
		Summary: domain.PortfolioSummary{Total: decimal.Zero},
	}
}

func (m *StubCheckRepository) PortfolioSummary(ctx context.Context, customerID, companyID string, docTypes []string, asOf time.Time) (domain.PortfolioSummary, error) {
	if m.PortfolioSummaryFunc != nil {
		return m.PortfolioSummaryFunc(ctx, customerID, companyID, docTypes, asOf)
	}
	return m.Summary, nil
}

// StubPolicyRepository is a hand-rolled stub implementation of PolicyRepository.
type StubPolicyRepository struct {
	Policy *domain.PolicyConfig

	GetByCompanyFunc func(ctx context.Context, companyID string) (*domain.PolicyConfig, error)
}

func NewStubPolicyRepository() *StubPolicyRepository {
	return &StubPolicyRepository{}
}

func (m *StubPolicyRepository) GetByCompany(ctx context.Context, companyID string) (*domain.PolicyConfig, error) {
	if m.GetByCompanyFunc != nil {
		return m.GetByCompanyFunc(ctx, companyID)
	}
	if m.Policy == nil {
		return nil, domain.ErrPolicyNotFound
	}
	return m.Policy, nil
}

// StubBlockHistoryRepository is a hand-rolled stub implementation of BlockHistoryRepository.
type StubBlockHistoryRepository struct {
	Event *domain.BlockEvent

	LatestOpenFunc func(ctx context.Context, customerID string) (*domain.BlockEvent, error)
}

func NewStubBlockHistoryRepository() *StubBlockHistoryRepository {
	return &StubBlockHistoryRepository{}
}

func (m *StubBlockHistoryRepository) LatestOpen(ctx context.Context, customerID string) (*domain.BlockEvent, error) {
	if m.LatestOpenFunc != nil {
		return m.LatestOpenFunc(ctx, customerID)
	}
	return m.Event, nil
}

// StubAuditRepository is a hand-rolled stub implementation of AuditRepository.
type StubAuditRepository struct {
	mu      sync.Mutex
	Records []*domain.DecisionAudit

	CreateFunc func(ctx context.Context, audit *domain.DecisionAudit) error
}

func NewStubAuditRepository() *StubAuditRepository {
	return &StubAuditRepository{}
}

func (m *StubAuditRepository) Create(ctx context.Context, audit *domain.DecisionAudit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, audit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, audit)
	return nil
}

// Created returns a snapshot of the recorded audits.
func (m *StubAuditRepository) Created() []*domain.DecisionAudit {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.DecisionAudit, len(m.Records))
	copy(out, m.Records)
	return out
}

// StubIDGenerator is a hand-rolled stub implementation of IDGenerator.
type StubIDGenerator struct {
	GenerateFunc func() string
}

func NewStubIDGenerator() *StubIDGenerator {
	return &StubIDGenerator{}
}

func (m *StubIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-id"
}

// StubStatusCache is an in-memory stub implementation of StatusCache.
type StubStatusCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func NewStubStatusCache() *StubStatusCache {
	return &StubStatusCache{entries: make(map[string][]byte)}
}

func (m *StubStatusCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *StubStatusCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}
