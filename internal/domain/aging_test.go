package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildAgingBuckets_Labels(t *testing.T) {
	buckets := BuildAgingBuckets([]int{30, 60, 90})

	if len(buckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"Current", "1-30 days", "31-60 days", "61-90 days", "> 90 days"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Errorf("bucket %d: expected label %q, got %q", i, want, buckets[i].Label)
		}
	}
}

func TestPlaceInBucket(t *testing.T) {
	tests := []struct {
		name        string
		daysOverdue int
		wantLabel   string
	}{
		{name: "not yet due", daysOverdue: -10, wantLabel: "Current"},
		{name: "due today", daysOverdue: 0, wantLabel: "Current"},
		{name: "first day overdue", daysOverdue: 1, wantLabel: "1-30 days"},
		{name: "boundary exact", daysOverdue: 30, wantLabel: "1-30 days"},
		{name: "45 days overdue", daysOverdue: 45, wantLabel: "31-60 days"},
		{name: "upper boundary", daysOverdue: 90, wantLabel: "61-90 days"},
		{name: "overflow", daysOverdue: 91, wantLabel: "> 90 days"},
		{name: "deep overflow", daysOverdue: 400, wantLabel: "> 90 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := BuildAgingBuckets([]int{30, 60, 90})
			PlaceInBucket(buckets, tt.daysOverdue, decimal.NewFromInt(100))

			placed := ""
			for _, b := range buckets {
				if b.Count == 1 {
					if placed != "" {
						t.Fatalf("amount placed in more than one bucket: %q and %q", placed, b.Label)
					}
					placed = b.Label
				}
			}

			if placed != tt.wantLabel {
				t.Errorf("expected bucket %q, got %q", tt.wantLabel, placed)
			}
		})
	}
}

func TestAgingPartition_Completeness(t *testing.T) {
	buckets := BuildAgingBuckets([]int{30, 60, 90, 120})

	total := decimal.Zero
	for _, days := range []int{-30, 0, 1, 15, 31, 59, 88, 120, 121, 999} {
		amount := decimal.NewFromInt(int64(days + 1000))
		PlaceInBucket(buckets, days, amount)
		total = total.Add(amount)
	}

	bucketed := decimal.Zero
	count := 0
	for _, b := range buckets {
		bucketed = bucketed.Add(b.Amount)
		count += b.Count
	}

	if !bucketed.Equal(total) {
		t.Errorf("bucket amounts sum to %s, expected %s", bucketed, total)
	}

	if count != 10 {
		t.Errorf("expected 10 placements, got %d", count)
	}
}
