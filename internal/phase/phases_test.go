package phase

import "testing"

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from, to ModulePhase
		expected bool
	}{
		{PhaseNotStarted, PhaseLexed, true},
		{PhaseLexed, PhaseParsed, true},
		{PhaseParsed, PhaseTypeChecked, true},
		{PhaseNotStarted, PhaseParsed, false},
		{PhaseLexed, PhaseTypeChecked, false},
		{PhaseTypeChecked, PhaseLexed, false},
		{PhaseParsed, PhaseNotStarted, false},
	}

	for _, tt := range tests {
		if got := CanAdvance(tt.from, tt.to); got != tt.expected {
			t.Errorf("CanAdvance(%s, %s) = %v, expected %v", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseTypeChecked.String() != "TypeChecked" {
		t.Errorf("unexpected name %q", PhaseTypeChecked.String())
	}
	if ModulePhase(42).String() != "Unknown" {
		t.Error("expected out of range phases to print as Unknown")
	}
}
