// Package shaping implements the text-shaping and bidirectional-reordering
// core for a firmware shim that adds Arabic/Hebrew support to a watch
// platform with no native support for either.
//
// The functions in this package are pure operations over caller-owned byte
// slices: they mutate a buffer in place, preserve its total length and NUL
// terminator, and are safe to invert (Shape/Unshape, and ApplyBidi applied
// to itself) so that a wrapper can sandwich a host primitive between the
// forward and inverse transform and leave no visible trace afterward.
//
// The four algorithmic pieces are:
//
//   - UTF-8 micro-codec (DecodeRune/EncodeRune): single-code-point,
//     width-preserving decode/encode.
//   - Arabic shaper (Shape/Unshape): a streaming state machine that
//     rewrites base Arabic letters into contextual presentation forms and
//     folds two-letter ligatures into a single precomposed code point.
//   - Bidi reorderer (ApplyBidi): an in-place, byte-level span reverser
//     that finds RTL runs, reverses them, and mirrors bracket glyphs.
//   - Entry-point wrappers (MeasureText, DrawText, RenderLine): the thin
//     pre/post shims a host firmware's text-measurement and text-drawing
//     routines would call through.
//
// The firmware interception mechanism that locates and calls these
// functions, the glyph rasterizer, and the shaper/ligature/font-range
// lookup tables themselves are all external to this package; the tables
// here are a representative subset sufficient to exercise the algorithms,
// not the full firmware data.
package shaping
