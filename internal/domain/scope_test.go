package domain

import "testing"

func TestVisibilityMode_DocScope(t *testing.T) {
	tests := []struct {
		mode VisibilityMode
		want []string
	}{
		{mode: VisibilityStandard, want: []string{DocTypeFiscal}},
		{mode: VisibilityExtended, want: []string{DocTypeFiscal, DocTypeInternal}},
		{mode: VisibilityMode("bogus"), want: []string{DocTypeFiscal}},
	}

	for _, tt := range tests {
		got := tt.mode.DocScope()
		if len(got) != len(tt.want) {
			t.Fatalf("mode %q: expected %d tags, got %d", tt.mode, len(tt.want), len(got))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("mode %q: expected tag %q, got %q", tt.mode, tt.want[i], got[i])
			}
		}
	}
}

func TestVisibilityMode_Valid(t *testing.T) {
	if !VisibilityStandard.Valid() || !VisibilityExtended.Valid() {
		t.Error("standard and extended must be valid modes")
	}
	if VisibilityMode("full").Valid() {
		t.Error("unknown mode must not be valid")
	}
}
