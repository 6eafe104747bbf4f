package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyQuickStatus(t *testing.T) {
	tests := []struct {
		name         string
		limit        int64
		cached       int64
		blocked      bool
		overdueCount int
		wantLabel    string
		wantColor    string
	}{
		{
			name:      "blocked wins over everything",
			limit:     10000, cached: 0,
			blocked:      true,
			overdueCount: 3,
			wantLabel:    LabelBlocked, wantColor: StatusRed,
		},
		{
			name:  "overdue beats credit state",
			limit: 10000, cached: 0,
			overdueCount: 1,
			wantLabel:    LabelInArrears, wantColor: StatusRed,
		},
		{
			name:  "zero limit means no credit",
			limit: 0, cached: 0,
			wantLabel: LabelNoCredit, wantColor: StatusRed,
		},
		{
			name:  "fully used limit means no credit",
			limit: 1000, cached: 1000,
			wantLabel: LabelNoCredit, wantColor: StatusRed,
		},
		{
			name:  "high utilization at exactly 80",
			limit: 1000, cached: 800,
			wantLabel: LabelHighCredit, wantColor: StatusYellow,
		},
		{
			name:  "healthy",
			limit: 1000, cached: 200,
			wantLabel: LabelOK, wantColor: StatusGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Customer{
				ID:            "cust-1",
				CreditLimit:   decimal.NewFromInt(tt.limit),
				CachedBalance: decimal.NewFromInt(tt.cached),
				CreditBlocked: tt.blocked,
			}

			qs := ClassifyQuickStatus(c, tt.overdueCount)

			if qs.StatusLabel != tt.wantLabel {
				t.Errorf("expected label %q, got %q", tt.wantLabel, qs.StatusLabel)
			}
			if qs.StatusColor != tt.wantColor {
				t.Errorf("expected color %q, got %q", tt.wantColor, qs.StatusColor)
			}
		})
	}
}

func TestNotFoundQuickStatus(t *testing.T) {
	qs := NotFoundQuickStatus("ghost")

	if qs.StatusLabel != LabelNotFound {
		t.Errorf("expected label %q, got %q", LabelNotFound, qs.StatusLabel)
	}
	if qs.StatusColor != StatusRed {
		t.Errorf("expected color red, got %q", qs.StatusColor)
	}
	if !qs.IsBlocked {
		t.Error("not-found entries must be treated as blocked")
	}
	if qs.CustomerID != "ghost" {
		t.Errorf("expected customer id preserved, got %q", qs.CustomerID)
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name   string
		used   int64
		order  int64
		limit  int64
		want   string
	}{
		{name: "projected 85 percent", used: 6500, order: 2000, limit: 10000, want: "85"},
		{name: "over the limit", used: 8000, order: 3000, limit: 10000, want: "110"},
		{name: "zero limit capped", used: 100, order: 0, limit: 0, want: "999"},
		{name: "tiny limit capped", used: 100000, order: 0, limit: 1, want: "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Utilization(decimal.NewFromInt(tt.used), decimal.NewFromInt(tt.order), decimal.NewFromInt(tt.limit))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s%%, got %s%%", tt.want, got)
			}
		})
	}
}
