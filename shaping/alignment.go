package shaping

// Alignment correction (C8).
//
// A host label is normally laid out Left-aligned unless told otherwise.
// That default is wrong for a string whose dominant direction is RTL: a
// right-to-left label left-aligned against its container reads
// backwards relative to the rest of the line. AdjustAlignment only ever
// touches a Left request: it flips to Right when the first code point in
// text that actually carries a direction (skipping leading neutrals and
// weak-LTR digits) turns out to be RTL. Center and Right requests, and a
// Left request over text whose first opinionated rune is LTR, pass
// through unchanged.
func AdjustAlignment(text []byte, requested Alignment) Alignment {
	if requested != AlignLeft {
		return requested
	}
	end := nulIndex(text)
	pos := 0
	for pos < end {
		cp, width := DecodeRune(text, pos)
		switch {
		case IsRTL(cp):
			return AlignRight
		case IsNeutral(cp), IsWeakLTR(cp):
			pos += width
			continue
		default:
			return requested
		}
	}
	return requested
}
