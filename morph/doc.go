// Package morph implements the morphological segmenter: the decomposition of
// an opaque token into an optional prefix, an optional middle (stem), and an
// optional suffix by longest match over fixed affix inventories.
//
// Segmentation is total and referentially pure: any string — including the
// empty string — yields exactly one Result, the concatenation of whose parts
// reconstructs the input byte-for-byte. No context, no corpus frequency, no
// shared state participates in the decision; callers may therefore cache
// results keyed by token text.
//
// Match policy (in order):
//  1. The longest inventory prefix that literally starts the token is
//     stripped from the front; none matching leaves Prefix empty.
//  2. On the remainder, the longest inventory suffix that literally ends it
//     AND is strictly shorter than it is stripped from the back — a suffix
//     may never swallow the whole remainder.
//  3. Whatever is left is the Middle, returned verbatim even when it is not
//     a known kernel stem.
//
// Same-length candidates are ordered by a fixed total order chosen at
// inventory construction time (lexicographic ascending by default), never by
// corpus statistics, so the function's output is stable forever.
package morph
