package fence

import (
	"strings"
	"testing"
)

func TestNormalizeCoercesBadNumericsToZero(t *testing.T) {
	in, warnings := Normalize(RawInputs{
		"totalLength": "-50",
		"fenceHeight": "abc",
		"postSpacing": "8",
		"numRails":    "NaN",
	})

	if in.TotalLengthWithGates != 0 {
		t.Errorf("negative totalLength = %v, want 0", in.TotalLengthWithGates)
	}
	if in.FenceHeight != 0 {
		t.Errorf("non-numeric fenceHeight = %v, want 0", in.FenceHeight)
	}
	if in.NumRails != 0 {
		t.Errorf("NaN numRails = %v, want 0", in.NumRails)
	}
	if in.PostSpacing != 8 {
		t.Errorf("postSpacing = %v, want 8", in.PostSpacing)
	}

	var badLength, badHeight bool
	for _, w := range warnings {
		if strings.Contains(w, "totalLength") {
			badLength = true
		}
		if strings.Contains(w, "fenceHeight") {
			badHeight = true
		}
	}
	if !badLength || !badHeight {
		t.Errorf("expected warnings for totalLength and fenceHeight, got %v", warnings)
	}
}

func TestNormalizeMissingFieldWarnsAndZeroes(t *testing.T) {
	in, warnings := Normalize(RawInputs{"totalLength": "100"})

	if in.FenceHeight != 0 {
		t.Errorf("missing fenceHeight = %v, want 0", in.FenceHeight)
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "fenceHeight") && strings.Contains(w, "missing") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-field warning for fenceHeight, got %v", warnings)
	}
}

func TestNormalizePullLengths(t *testing.T) {
	in, _ := Normalize(RawInputs{
		"numStretches": "3",
		"totalLength":  "150",
		"pullLength_1": "60",
		"pullLength_2": "0",
		"pullLength_3": "90",
	})

	if len(in.PullLengths) != 2 || in.PullLengths[0] != 60 || in.PullLengths[1] != 90 {
		t.Errorf("pull lengths = %v, want [60 90] (zero pulls dropped)", in.PullLengths)
	}

	// Without stretch mode the whole length is one pull.
	in, _ = Normalize(RawInputs{"numStretches": "0", "totalLength": "150"})
	if len(in.PullLengths) != 1 || in.PullLengths[0] != 150 {
		t.Errorf("single-pull lengths = %v, want [150]", in.PullLengths)
	}
}

func TestNormalizeGateWidthsAndDerivedLengths(t *testing.T) {
	in, _ := Normalize(RawInputs{
		"totalLength":        "100",
		"numSingleGates":     "2",
		"singleGateWidth_1":  "3",
		"singleGateWidth_2":  "4",
		"numDoubleGates":     "1",
		"doubleGateWidth_1":  "10",
		"numSlidingGates":    "1",
		"slidingGateWidth_1": "12",
	})

	if got := in.TotalGateWidth(); got != 29 {
		t.Errorf("TotalGateWidth = %v, want 29", got)
	}
	if in.TotalLengthWithoutGates != 71 {
		t.Errorf("TotalLengthWithoutGates = %v, want 71", in.TotalLengthWithoutGates)
	}
	if got := in.TotalGates(); got != 4 {
		t.Errorf("TotalGates = %v, want 4", got)
	}
}

func TestNormalizeDoesNotClampNegativeGatelessLength(t *testing.T) {
	in, _ := Normalize(RawInputs{
		"totalLength":       "10",
		"numDoubleGates":    "1",
		"doubleGateWidth_1": "16",
	})
	if in.TotalLengthWithoutGates != -6 {
		t.Errorf("TotalLengthWithoutGates = %v, want -6 (misconfiguration passes through)", in.TotalLengthWithoutGates)
	}
}
