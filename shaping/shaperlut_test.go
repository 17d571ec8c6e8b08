package shaping

import "testing"

func TestLookupBaseFound(t *testing.T) {
	entry, ok := LookupBase(0x0645) // Meem
	if !ok {
		t.Fatal("LookupBase(Meem) not found")
	}
	if entry.Base != 0x0645 || entry.Joining != DualJoining {
		t.Fatalf("entry = %+v, want Base=0x645 Joining=DualJoining", entry)
	}
}

func TestLookupBaseNotFound(t *testing.T) {
	if _, ok := LookupBase(0x0041); ok {
		t.Fatal("LookupBase('A') unexpectedly found an entry")
	}
}

func TestFormForRightJoiningHasNoMedialOrInitial(t *testing.T) {
	entry, ok := LookupBase(0x0627) // Alef, right-joining
	if !ok {
		t.Fatal("LookupBase(Alef) not found")
	}
	if got := entry.FormFor(StateInitial); got != 0 {
		t.Errorf("FormFor(StateInitial) on right-joining entry = %#x, want 0", got)
	}
	if got := entry.FormFor(StateMedial); got != 0 {
		t.Errorf("FormFor(StateMedial) on right-joining entry = %#x, want 0", got)
	}
	if got := entry.FormFor(StateIsolated); got != entry.Isolated {
		t.Errorf("FormFor(StateIsolated) = %#x, want %#x", got, entry.Isolated)
	}
	if got := entry.FormFor(StateFinal); got != entry.Final {
		t.Errorf("FormFor(StateFinal) = %#x, want %#x", got, entry.Final)
	}
}

func TestFormForDualJoiningHasAllFourForms(t *testing.T) {
	entry, ok := LookupBase(0x0628) // Beh, dual-joining
	if !ok {
		t.Fatal("LookupBase(Beh) not found")
	}
	for _, st := range []JoinState{StateIsolated, StateInitial, StateMedial, StateFinal} {
		if entry.FormFor(st) == 0 {
			t.Errorf("FormFor(%v) on dual-joining Beh returned 0", st)
		}
	}
}
