package shaping

import "testing"

func TestTryFoldLamAlef(t *testing.T) {
	virtual, ok := TryFold(0x0644, 0x0627)
	if !ok {
		t.Fatal("TryFold(Lam, Alef) not found")
	}
	if virtual != virtualLamAlef {
		t.Errorf("TryFold(Lam, Alef) = %#x, want %#x", virtual, virtualLamAlef)
	}
}

func TestTryFoldNoMatch(t *testing.T) {
	if _, ok := TryFold(0x0645, 0x0627); ok {
		t.Fatal("TryFold(Meem, Alef) unexpectedly matched: only Lam+Alef is a known ligature pair")
	}
	if _, ok := TryFold(0x0644, 0x0645); ok {
		t.Fatal("TryFold(Lam, Meem) unexpectedly matched")
	}
}

func TestUnfoldLigatureInvertsTryFold(t *testing.T) {
	virtual, ok := TryFold(0x0644, 0x0627)
	if !ok {
		t.Fatal("TryFold(Lam, Alef) not found")
	}
	first, second, ok := UnfoldLigature(virtual)
	if !ok {
		t.Fatal("UnfoldLigature did not recognize the virtual base TryFold just produced")
	}
	if first != 0x0644 || second != 0x0627 {
		t.Errorf("UnfoldLigature(%#x) = (%#x, %#x), want (0x644, 0x627)", virtual, first, second)
	}
}

func TestUnfoldLigatureRejectsOrdinaryBase(t *testing.T) {
	if _, _, ok := UnfoldLigature(0x0645); ok {
		t.Fatal("UnfoldLigature(Meem) unexpectedly reported a ligature")
	}
}
