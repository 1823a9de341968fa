package model

import "testing"

func TestPairKeySymmetric(t *testing.T) {
	a, b := "U111", "U222"
	if PairKey(a, b) != PairKey(b, a) {
		t.Fatalf("PairKey is not order independent: %q vs %q", PairKey(a, b), PairKey(b, a))
	}
	if got, want := PairKey(b, a), "U111:U222"; got != want {
		t.Fatalf("PairKey(%q, %q) = %q, want %q", b, a, got, want)
	}
}

func TestPairKeyDistinctPairs(t *testing.T) {
	if PairKey("U1", "U2") == PairKey("U1", "U3") {
		t.Fatal("different pairs produced the same key")
	}
}

func TestPeriodNamesFor(t *testing.T) {
	tests := []struct {
		periodType string
		want       int
	}{
		{PeriodTypeQuarters, 4},
		{PeriodTypeSemesters, 2},
		{PeriodTypeTrimesters, 3},
		{"unknown", 4}, // falls back to quarters
	}
	for _, tt := range tests {
		if got := PeriodNamesFor(tt.periodType); len(got) != tt.want {
			t.Errorf("PeriodNamesFor(%q) returned %d names, want %d", tt.periodType, len(got), tt.want)
		}
	}
}
