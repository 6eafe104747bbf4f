package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultPolicy_AllEnforcementOff(t *testing.T) {
	p := DefaultPolicy("co-1")

	if p.EnforceCreditLimit || p.HardBlockOnExceeded || p.EnforceOverdueBlock || p.EnforceCheckLimit {
		t.Error("default policy must have every enforcement flag off")
	}

	if p.AgingEnabled {
		t.Error("default policy must not enable aging")
	}
}

func TestPolicyConfig_Normalize(t *testing.T) {
	p := &PolicyConfig{
		CompanyID: "co-1",
		GraceDays: -3,
	}
	p.Normalize()

	wantBoundaries := []int{30, 60, 90, 120}
	if len(p.AgingBoundaries) != len(wantBoundaries) {
		t.Fatalf("expected %d boundaries, got %d", len(wantBoundaries), len(p.AgingBoundaries))
	}
	for i, b := range wantBoundaries {
		if p.AgingBoundaries[i] != b {
			t.Errorf("boundary %d: expected %d, got %d", i, b, p.AgingBoundaries[i])
		}
	}

	if !p.AlertThreshold.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected default alert threshold 80, got %s", p.AlertThreshold)
	}

	if p.GraceDays != 0 {
		t.Errorf("expected negative grace days clamped to 0, got %d", p.GraceDays)
	}
}

func TestPolicyConfig_NormalizeKeepsExplicitValues(t *testing.T) {
	p := &PolicyConfig{
		CompanyID:       "co-1",
		GraceDays:       5,
		AgingBoundaries: []int{15, 45},
		AlertThreshold:  decimal.NewFromInt(90),
	}
	p.Normalize()

	if len(p.AgingBoundaries) != 2 || p.AgingBoundaries[0] != 15 {
		t.Errorf("explicit boundaries must be preserved, got %v", p.AgingBoundaries)
	}
	if !p.AlertThreshold.Equal(decimal.NewFromInt(90)) {
		t.Errorf("explicit threshold must be preserved, got %s", p.AlertThreshold)
	}
	if p.GraceDays != 5 {
		t.Errorf("explicit grace days must be preserved, got %d", p.GraceDays)
	}
}
