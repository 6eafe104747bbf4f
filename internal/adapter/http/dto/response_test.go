package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/creditgate/internal/domain"
)

func TestValidationFromDomain(t *testing.T) {
	blockedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	result := &domain.ValidationResult{
		ValidationID:     "val-1",
		CanProceed:       false,
		RequiresOverride: true,
		Warnings:         []string{"warn"},
		Errors:           []string{"err"},
		CreditStatus: domain.CreditStatus{
			Limit:              decimal.NewFromInt(10000),
			UsedFromLedger:     decimal.NewFromInt(4000),
			Available:          decimal.NewFromInt(6000),
			UtilizationPercent: decimal.NewFromInt(40),
		},
		OverdueStatus: domain.OverdueStatus{
			HasOverdue:        true,
			OverdueAmount:     decimal.NewFromInt(500),
			OldestOverdueDays: 12,
			OverdueInvoices: []domain.OverdueInvoice{
				{ID: "inv-1", Number: "A-0001", PendingBalance: decimal.NewFromInt(500), DaysOverdue: 12},
			},
			AgingBuckets: []domain.AgingBucket{
				{Label: "Current", Amount: decimal.Zero},
				{Label: "1-30 days", Amount: decimal.NewFromInt(500), Count: 1},
			},
		},
		BlockStatus: domain.BlockStatus{
			IsBlocked: true,
			Reason:    "manual review",
			BlockedAt: &blockedAt,
			BlockType: domain.BlockManual,
		},
		CustomerInfo: domain.CustomerInfo{ID: "cust-1", Name: "Acme"},
		EvaluatedAt:  time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	resp := ValidationFromDomain(result)

	require.NotNil(t, resp)
	assert.Equal(t, "val-1", resp.ValidationID)
	assert.False(t, resp.CanProceed)
	assert.True(t, resp.RequiresOverride)
	assert.Equal(t, []string{"warn"}, resp.Warnings)
	assert.Equal(t, []string{"err"}, resp.Errors)

	require.Len(t, resp.OverdueStatus.OverdueInvoices, 1)
	assert.Equal(t, "inv-1", resp.OverdueStatus.OverdueInvoices[0].ID)
	require.Len(t, resp.OverdueStatus.AgingBuckets, 2)
	assert.Equal(t, "1-30 days", resp.OverdueStatus.AgingBuckets[1].Label)

	assert.Equal(t, "manual", resp.BlockStatus.BlockType)
	require.NotNil(t, resp.BlockStatus.BlockedAt)
	assert.True(t, resp.BlockStatus.BlockedAt.Equal(blockedAt))
}

func TestValidationResponseJSONShape(t *testing.T) {
	resp := ValidationFromDomain(&domain.ValidationResult{
		ValidationID: "val-2",
		CanProceed:   true,
		Warnings:     []string{},
		Errors:       []string{},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "validation_id")
	assert.Contains(t, decoded, "can_proceed")
	assert.Contains(t, decoded, "credit_status")
	assert.Contains(t, decoded, "overdue_status")
	assert.Contains(t, decoded, "check_status")
	assert.Contains(t, decoded, "block_status")
	assert.Contains(t, decoded, "customer_info")
}

func TestBatchQuickStatusFromDomain(t *testing.T) {
	statuses := map[string]domain.QuickStatus{
		"cust-1": {CustomerID: "cust-1", StatusColor: domain.StatusGreen, StatusLabel: domain.LabelOK},
		"ghost":  domain.NotFoundQuickStatus("ghost"),
	}

	resp := BatchQuickStatusFromDomain(statuses)

	require.Len(t, resp.Statuses, 2)
	assert.Equal(t, domain.LabelOK, resp.Statuses["cust-1"].StatusLabel)
	assert.Equal(t, domain.LabelNotFound, resp.Statuses["ghost"].StatusLabel)
	assert.True(t, resp.Statuses["ghost"].IsBlocked)
}
