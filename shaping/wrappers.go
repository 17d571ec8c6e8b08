package shaping

// Entry-point wrappers (C7).
//
// These mirror the three points the firmware patch intercepts: the
// platform's text measurement call, its single-rect draw call, and its
// line-by-line renderer. MeasureText and DrawText sandwich the host's own
// routine between a forward transform and its inverse: shape the buffer,
// let the host measure or draw against the shaped bytes, then unshape, so
// the host never has to know any of this happened and the caller gets its
// buffer back exactly as it gave it, unless IsMutable(addr) says the
// buffer can't be touched at all, in which case the host runs against the
// original bytes untouched (scenario S6). Bidi reordering is not part of
// this sandwich: a measure/draw call sees the whole label before the host
// has decided where it will wrap into visual lines, so reordering happens
// later, per line, in RenderLine.
//
// The host's own font, graphics-context and line-layout types aren't
// reproduced here; Font, DrawContext and GContext stand in for whatever
// opaque handles the platform's real headers define, carried through
// unexamined.

// Font stands in for the host's opaque font handle.
type Font struct{ Handle uintptr }

// Size is a measured width/height in the host's pixel units.
type Size struct{ W, H int32 }

// Rect is a drawing destination in the host's pixel units.
type Rect struct{ X, Y, W, H int32 }

// TextAttributes mirrors the host's text-drawing parameter struct.
type TextAttributes struct {
	Font      *Font
	Alignment Alignment
	Overflow  OverflowMode
}

// DrawContext stands in for the host's opaque single-rect drawing
// context.
type DrawContext struct{ Handle uintptr }

// GContext stands in for the host's opaque graphics context used by the
// line renderer.
type GContext struct{ Handle uintptr }

// LineLayout carries the destination rect and attributes for one line of
// a multi-line render pass.
type LineLayout struct {
	Box   Rect
	Attrs TextAttributes
}

// MeasureHost is the host's own text measurement routine.
type MeasureHost func(text []byte, attrs TextAttributes) Size

// DrawHost is the host's own single-rect text drawing routine.
type DrawHost func(ctx DrawContext, text []byte, box Rect, attrs TextAttributes)

// RenderLineHost is the host's own per-line text rendering routine.
type RenderLineHost func(ctx GContext, text []byte, layout LineLayout)

// prepare shapes text in place. It's a no-op when addr falls outside the
// mutable SRAM window. Bidi reordering is not part of this step: per spec
// §4.7 it is scoped to RenderLine, which reorders one already-laid-out
// visual line at a time inside the host's own line-breaking loop, not the
// whole (possibly multi-line, word-wrapped) buffer measure/draw sees.
func prepare(addr uintptr, text []byte) bool {
	if !IsMutable(addr) {
		return false
	}
	Shape(text)
	return true
}

// restore reverses prepare: unshape, unless attrs carries the diagnostics
// sentinel, in which case the shaped buffer is left in place for
// inspection.
func restore(text []byte, attrs TextAttributes) {
	if attrs.Overflow != DiagnosticSentinel {
		Unshape(text)
	}
}

// MeasureText wraps a host measurement routine, shaping text before the
// call and restoring it afterward. Unlike DrawText, it never runs the
// alignment adjuster: a measurement has no visual alignment to get right,
// only a width to report.
func MeasureText(addr uintptr, text []byte, attrs TextAttributes, host MeasureHost) Size {
	if !prepare(addr, text) {
		return host(text, attrs)
	}
	size := host(text, attrs)
	restore(text, attrs)
	return size
}

// DrawText wraps a host single-rect draw routine the same way MeasureText
// wraps measurement, additionally running the alignment adjuster (C8)
// against the shaped text before handing it to the host.
func DrawText(addr uintptr, ctx DrawContext, text []byte, box Rect, attrs TextAttributes, host DrawHost) {
	if !prepare(addr, text) {
		host(ctx, text, box, attrs)
		return
	}
	attrs.Alignment = AdjustAlignment(text, attrs.Alignment)
	host(ctx, text, box, attrs)
	restore(text, attrs)
}

// RenderLine wraps a host per-line renderer. Unlike MeasureText and
// DrawText, it does not shape or unshape: by the time the host's line
// renderer runs, the draw call that owns the whole label has already
// shaped it, so render_line's only job is bidi-reordering the one line's
// span. Trailing space bytes are trimmed off the span first, mirroring
// the firmware's own render_wrap_pre, which walks line_end backward past
// spaces before handing the span to reverse_span: trailing whitespace has
// no visual direction of its own and reversing it into the span just
// moves blanks from one end of the line to the other for no reason.
func RenderLine(addr uintptr, ctx GContext, text []byte, layout LineLayout, host RenderLineHost) {
	if !IsMutable(addr) {
		host(ctx, text, layout)
		return
	}
	end := nulIndex(text)
	for end > 0 && text[end-1] == ' ' {
		end--
	}
	transformed := ApplyBidiRange(text, 0, end)
	host(ctx, text, layout)
	if transformed {
		ApplyBidiRange(text, 0, end)
	}
}
