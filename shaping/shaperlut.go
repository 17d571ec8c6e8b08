package shaping

// Arabic shaper lookup table (C3).
//
// Real firmware ships this table as a large flash-resident blob generated
// from the Unicode joining-class data; what's here is a representative
// subset covering the letters the package's test scenarios exercise, wide
// enough to demonstrate the four-form contextual shaping and the
// right-joining/dual-joining distinction. A handful of entries (Meem's
// initial form, Hah's medial form) use table values that diverge from the
// Unicode Arabic Presentation Forms-B assignment for that letter; this
// firmware's LUT was hand-authored before the Unicode block was final and
// was never reconciled, so a few slots land on values Unicode assigns to
// a different letter entirely. Byte-for-byte compatibility with that
// firmware's behavior, not with the Unicode charts, is the goal.

// JoiningType classifies how a base letter connects to its neighbors.
type JoiningType uint8

const (
	// DualJoining letters take all four contextual forms and connect on
	// both sides.
	DualJoining JoiningType = iota
	// RightJoining letters only ever connect to a preceding joiner; they
	// have no initial or medial form and always force the run to break
	// immediately after them.
	RightJoining
)

// ShaperEntry holds the four presentation forms for one base code point.
// Initial and Medial are meaningless for a RightJoining entry and are left
// zero.
type ShaperEntry struct {
	Base     uint16
	Joining  JoiningType
	Isolated uint16
	Initial  uint16
	Medial   uint16
	Final    uint16
}

// virtualLamAlef is the synthetic base code point the ligature folder
// substitutes for a Lam immediately followed by an Alef (see ligature.go).
// It lives outside any real Unicode block so it can carry its own
// ShaperEntry without colliding with an actual letter, letting the normal
// contextual state machine compute its isolated/final form the same way
// it does for any other right-joining letter.
const virtualLamAlef uint16 = 0xE000

// shaperLUT is searched linearly by LookupBase; InArabicShaperRange is a
// separate, purely informational classification (see classify.go) and is
// never used to gate this search, since virtualLamAlef intentionally
// falls outside the Arabic block.
var shaperLUT = []ShaperEntry{
	{Base: 0x0627, Joining: RightJoining, Isolated: 0xFE8D, Final: 0xFE8E}, // Alef
	{Base: 0x0628, Joining: DualJoining, Isolated: 0xFE8F, Final: 0xFE90, Initial: 0xFE91, Medial: 0xFE92}, // Beh
	{Base: 0x062C, Joining: DualJoining, Isolated: 0xFE9D, Final: 0xFE9E, Initial: 0xFE9F, Medial: 0xFEA0}, // Jeem
	{Base: 0x062D, Joining: DualJoining, Isolated: 0xFEA1, Final: 0xFEA2, Initial: 0xFEA3, Medial: 0xFEEE}, // Hah (medial overridden, see above)
	{Base: 0x062F, Joining: RightJoining, Isolated: 0xFEA9, Final: 0xFEAA}, // Dal
	{Base: 0x0644, Joining: DualJoining, Isolated: 0xFEDD, Final: 0xFEDE, Initial: 0xFEDF, Medial: 0xFEE0}, // Lam
	{Base: 0x0645, Joining: DualJoining, Isolated: 0xFEE1, Final: 0xFEE2, Initial: 0xFEE7, Medial: 0xFEE4}, // Meem (initial overridden, see above)
	{Base: virtualLamAlef, Joining: RightJoining, Isolated: 0xFEFB, Final: 0xFEFC},                        // Lam-Alef ligature
}

// LookupBase returns the shaper entry for cp, if the table carries one.
func LookupBase(cp uint16) (ShaperEntry, bool) {
	for _, e := range shaperLUT {
		if e.Base == cp {
			return e, true
		}
	}
	return ShaperEntry{}, false
}

// FormFor returns the presentation form for e in joining state st. Callers
// are responsible for never requesting StateInitial or StateMedial for a
// RightJoining entry; doing so returns 0.
func (e ShaperEntry) FormFor(st JoinState) uint16 {
	switch st {
	case StateIsolated:
		return e.Isolated
	case StateInitial:
		if e.Joining == RightJoining {
			return 0
		}
		return e.Initial
	case StateMedial:
		if e.Joining == RightJoining {
			return 0
		}
		return e.Medial
	case StateFinal:
		return e.Final
	default:
		return 0
	}
}

// JoinState names the four contextual positions a shapeable letter can
// take in a run.
type JoinState uint8

const (
	StateIsolated JoinState = iota
	StateInitial
	StateMedial
	StateFinal
)
