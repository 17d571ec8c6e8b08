package shaping

// Character classification (C2).
//
// The firmware's own rtl_ranges.c hand-rolls a handful of narrow,
// oddly-shaped ranges (e.g. splitting the Arabic block at its numerals,
// [0x60E,0x660) and [0x66D,0x700)) rather than using whole Unicode block
// boundaries. This package generalizes to the block boundaries below
// (full Hebrew, Arabic, Arabic Supplement, Arabic Extended-A, both Arabic
// Presentation Forms blocks), with one exception: the Arabic block's two
// digit ranges (U+0660-0669 and U+06F0-06F9) are left out of the RTL
// table and are weak-LTR only, so no code point belongs to both classes.
// The fix spec's Open Questions call for is folded into this broader
// table rather than layered on top of the original's narrower one: the
// corrected upper bound ([0x66D, 0x700), not the typo'd [0x66D, 0xFF))
// is covered by the Arabic entries here, which reach U+06FF.

type runeRange struct {
	lo, hi uint16
}

// rtlRanges covers Hebrew and the Arabic block family, minus the Arabic
// digits listed in weakLTRRanges. The upper bound of the Arabic
// Extended-A entry is 0x08FF, not 0x08FE: the off-by-one in the firmware's
// very first revision silently dropped the final code point of the Arabic
// Extended-A block, which this table corrects.
var rtlRanges = []runeRange{
	{0x0591, 0x05F4}, // Hebrew
	{0x0600, 0x065F}, // Arabic, before the Arabic-Indic digits
	{0x066A, 0x06EF}, // Arabic, between the two digit ranges
	{0x06FA, 0x06FF}, // Arabic, after the Extended Arabic-Indic digits
	{0x0750, 0x077F}, // Arabic Supplement
	{0x08A0, 0x08FF}, // Arabic Extended-A
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

// weakLTRRanges covers ASCII and Arabic-Indic digits, which inherit the
// directionality of their surrounding context rather than carrying one of
// their own.
var weakLTRRanges = []runeRange{
	{0x0030, 0x0039}, // ASCII digits
	{0x0660, 0x0669}, // Arabic-Indic digits
	{0x06F0, 0x06F9}, // Extended Arabic-Indic digits
}

// neutralRanges covers whitespace and punctuation that takes on the
// direction of whichever side closes around it.
var neutralRanges = []runeRange{
	{0x0020, 0x002F},
	{0x003A, 0x0040},
	{0x005B, 0x0060},
	{0x007B, 0x007E},
}

func inRanges(cp uint16, ranges []runeRange) bool {
	for _, r := range ranges {
		if cp >= r.lo && cp <= r.hi {
			return true
		}
	}
	return false
}

// IsRTL reports whether cp belongs to a script that reads right-to-left.
func IsRTL(cp uint16) bool {
	return inRanges(cp, rtlRanges)
}

// IsWeakLTR reports whether cp is a digit that takes its direction from
// context rather than carrying one intrinsically.
func IsWeakLTR(cp uint16) bool {
	return inRanges(cp, weakLTRRanges)
}

// IsNeutral reports whether cp is whitespace or punctuation with no
// directionality of its own. Per spec §6 the neutral class also includes
// the zero-width placeholder the ligature folder leaves behind: a folded
// Lam sitting inside an RTL run must ride along with its run rather than
// breaking it, the same way a wrapping parenthesis does.
func IsNeutral(cp uint16) bool {
	return inRanges(cp, neutralRanges) || IsZeroWidth(cp)
}

// IsZeroWidth reports whether cp is the placeholder the ligature folder
// leaves behind; callers that walk a shaped buffer rune-by-rune use this
// to skip over folded positions without special-casing the ligature LUT.
func IsZeroWidth(cp uint16) bool {
	return cp == ZeroWidthCodepoint
}

// InArabicShaperRange reports whether cp falls in the core Arabic block
// the contextual shaper operates over. This is informational only: it
// classifies a code point for diagnostics and tests, but LookupBase never
// gates on it, since doing so would also reject the shaper's own
// out-of-block virtual ligature code points (see shaperlut.go).
func InArabicShaperRange(cp uint16) bool {
	return cp >= 0x0600 && cp <= 0x06FF
}
