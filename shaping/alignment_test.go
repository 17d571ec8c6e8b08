package shaping

import "testing"

func TestAdjustAlignmentFlipsLeftToRightForRTL(t *testing.T) {
	text := utf8Bytes(0x0627, 0x0628) // Alef Beh
	got := AdjustAlignment(text, AlignLeft)
	if got != AlignRight {
		t.Errorf("AdjustAlignment = %v, want AlignRight", got)
	}
}

func TestAdjustAlignmentLeavesLTRTextLeft(t *testing.T) {
	text := []byte("Hello\x00")
	got := AdjustAlignment(text, AlignLeft)
	if got != AlignLeft {
		t.Errorf("AdjustAlignment = %v, want AlignLeft", got)
	}
}

func TestAdjustAlignmentSkipsLeadingNeutralsAndDigits(t *testing.T) {
	// Leading space and digits are neither RTL nor strong-LTR; the first
	// opinionated code point here is the Arabic Alef.
	text := append([]byte("  123"), utf8Bytes(0x0627)...)
	got := AdjustAlignment(text, AlignLeft)
	if got != AlignRight {
		t.Errorf("AdjustAlignment = %v, want AlignRight (first opinionated rune is RTL)", got)
	}
}

func TestAdjustAlignmentPassesThroughNonLeftRequests(t *testing.T) {
	text := utf8Bytes(0x0627)
	if got := AdjustAlignment(text, AlignCenter); got != AlignCenter {
		t.Errorf("AdjustAlignment(_, AlignCenter) = %v, want AlignCenter unchanged", got)
	}
	if got := AdjustAlignment(text, AlignRight); got != AlignRight {
		t.Errorf("AdjustAlignment(_, AlignRight) = %v, want AlignRight unchanged", got)
	}
}

func TestAdjustAlignmentAllNeutralFallsThrough(t *testing.T) {
	text := []byte("   \x00")
	got := AdjustAlignment(text, AlignLeft)
	if got != AlignLeft {
		t.Errorf("AdjustAlignment on all-neutral text = %v, want input unchanged (AlignLeft)", got)
	}
}
