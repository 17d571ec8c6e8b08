package shaping

// Ligature folding (C4).
//
// The teacher's GSUB ligature lookup keys substitutions off already-shaped
// presentation forms (e.g. "Lam initial + Alef final" -> one glyph id).
// This shim instead folds at the base-codepoint level, ahead of
// contextual shaping, which is what spec component C4 calls for: a
// two-letter run of base code points collapses to a single virtual base
// code point before the state machine ever assigns it a contextual form.
// That virtual base then gets its own ShaperEntry (virtualLamAlef, in
// shaperlut.go) and flows through the ordinary isolated/final lookup like
// any right-joining letter, so the ligature's own context-sensitivity
// falls out of the existing state machine for free instead of needing a
// second one.

// ligaturePair names a two-base-codepoint sequence that folds into a
// single virtual base.
type ligaturePair struct {
	first, second uint16
	virtual       uint16
}

var ligatureTable = []ligaturePair{
	{first: 0x0644, second: 0x0627, virtual: virtualLamAlef}, // Lam + Alef
}

// TryFold reports whether (first, second) is a known ligature pair and, if
// so, returns the virtual base code point it folds to.
func TryFold(first, second uint16) (uint16, bool) {
	for _, p := range ligatureTable {
		if p.first == first && p.second == second {
			return p.virtual, true
		}
	}
	return 0, false
}

// ligatureReverse maps a virtual base back to the two original base code
// points Unshape restores it to. Built once from ligatureTable so the two
// tables can never drift apart.
var ligatureReverse = make(map[uint16][2]uint16, len(ligatureTable))

func init() {
	for _, p := range ligatureTable {
		ligatureReverse[p.virtual] = [2]uint16{p.first, p.second}
	}
}

// UnfoldLigature reports whether virtual is a known folded ligature and,
// if so, returns the two base code points it expands back to.
func UnfoldLigature(virtual uint16) (first, second uint16, ok bool) {
	pair, found := ligatureReverse[virtual]
	if !found {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}
