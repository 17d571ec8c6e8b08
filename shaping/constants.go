package shaping

// ZeroWidthCodepoint is the placeholder glyph written over the first
// component of a folded ligature. It carries zero advance width, so its
// presence does not shift anything drawn after it.
//
// EncodeRune writes it back into the 3-byte slot the ligature's first base
// letter occupied (see utf8.go on why Arabic letters live in 3-byte slots),
// so any 16-bit value is safe to use here. U+200B ZERO WIDTH SPACE is the
// standard Unicode placeholder for exactly this purpose.
const ZeroWidthCodepoint uint16 = 0x200B

// OverflowMode mirrors the host's GTextOverflowMode parameter. Only one
// value is meaningful to this package: DiagnosticSentinel.
type OverflowMode uint8

// DiagnosticSentinel is a magic value a host diagnostics app passes as
// overflow_mode to ask the wrapper to leave the buffer in its shaped state
// instead of restoring the original bytes on return. It is an external
// contract this package honors verbatim, not a bug.
const DiagnosticSentinel OverflowMode = 0xE5

// Alignment mirrors the host's GTextAlignment parameter.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)
