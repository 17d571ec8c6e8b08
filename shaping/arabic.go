package shaping

// Arabic contextual shaper (C5).
//
// Shape/Unshape walk the buffer left to right in a single pass, the same
// streaming style as the firmware's own text_shaper.c state machine: each
// letter is written as soon as it's seen, using only what's already been
// decided about the letter before it. A dual-joining letter that opens a
// run doesn't yet know whether anything will follow it, so it's written
// speculatively as Initial/Medial and only gets corrected to
// Isolated/Final in hindsight, the moment the run turns out to have
// ended — that correction is pendingForm.finalize below.
//
// A two-letter ligature is detected one letter ahead of where it's
// written: seeing a Lam, the encoder peeks at the following base code
// point, and if it's an Alef folds both into the single virtual ligature
// base before either letter would otherwise have been shaped.

// pendingForm records the most recently written speculative form so it
// can be corrected once the run's true extent is known.
type pendingForm struct {
	pos, width int
	entry      ShaperEntry
	state      JoinState // always StateInitial or StateMedial
	open       bool
}

func (p *pendingForm) finalize(text []byte) {
	if !p.open {
		return
	}
	final := StateFinal
	if p.state == StateInitial {
		final = StateIsolated
	}
	EncodeRune(text, p.pos, p.width, p.entry.FormFor(final))
	p.open = false
}

// Shape rewrites every contiguous run of shapeable Arabic letters in text
// into their isolated/initial/medial/final presentation forms in place,
// folding any Lam-Alef pair it encounters into a single ligature glyph
// plus a zero-width placeholder. Non-shapeable bytes, including runs of
// ASCII and punctuation, are left untouched. The buffer's length and NUL
// terminator are preserved.
func Shape(text []byte) {
	end := nulIndex(text)
	var pending pendingForm
	inRun := false

	write := func(entry ShaperEntry, pos, width int) {
		var state JoinState
		if inRun {
			if entry.Joining == DualJoining {
				state = StateMedial
			} else {
				state = StateFinal
			}
		} else {
			if entry.Joining == DualJoining {
				state = StateInitial
			} else {
				state = StateIsolated
			}
		}
		EncodeRune(text, pos, width, entry.FormFor(state))

		if entry.Joining == DualJoining {
			pending = pendingForm{pos: pos, width: width, entry: entry, state: state, open: true}
			inRun = true
		} else {
			pending.open = false
			inRun = false
		}
	}

	pos := 0
	for pos < end {
		cp, width := DecodeRune(text, pos)

		// a zero-width placeholder emits nothing and leaves the run open.
		if IsZeroWidth(cp) {
			pos += width
			continue
		}

		if cp == 0x0644 && pos+width < end {
			nextCP, nextWidth := DecodeRune(text, pos+width)
			if virtual, ok := TryFold(cp, nextCP); ok {
				entry, _ := LookupBase(virtual)
				EncodeRune(text, pos, width, ZeroWidthCodepoint)
				write(entry, pos+width, nextWidth)
				pos = pos + width + nextWidth
				continue
			}
		}

		entry, ok := LookupBase(cp)
		if !ok {
			pending.finalize(text)
			inRun = false
			pos += width
			continue
		}
		write(entry, pos, width)
		pos += width
	}
	pending.finalize(text)
}

// reverseFormLUT maps every nonzero presentation form in shaperLUT back to
// the base code point it was shaped from, built once so Unshape never
// needs to search shaperLUT directly.
var reverseFormLUT = make(map[uint16]uint16)

func init() {
	for _, e := range shaperLUT {
		for _, form := range [...]uint16{e.Isolated, e.Initial, e.Medial, e.Final} {
			if form != 0 {
				reverseFormLUT[form] = e.Base
			}
		}
	}
}

// Unshape restores every presentation form in text to its base code
// point, including expanding a folded ligature back into its two original
// letters, inverting Shape exactly. Bytes Shape left untouched are left
// untouched here too.
func Unshape(text []byte) {
	end := nulIndex(text)
	pos := 0
	for pos < end {
		cp, width := DecodeRune(text, pos)

		if IsZeroWidth(cp) && pos+width < end {
			nextPos := pos + width
			nextCP, nextWidth := DecodeRune(text, nextPos)
			if base, ok := reverseFormLUT[nextCP]; ok {
				if first, second, isLig := UnfoldLigature(base); isLig {
					EncodeRune(text, pos, width, first)
					EncodeRune(text, nextPos, nextWidth, second)
					pos = nextPos + nextWidth
					continue
				}
			}
			pos += width
			continue
		}

		if base, ok := reverseFormLUT[cp]; ok {
			EncodeRune(text, pos, width, base)
		}
		pos += width
	}
}
