package morph

import "strings"

// Result is one token decomposition. Empty strings stand for absent parts;
// Prefix + Middle + Suffix always reconstructs the segmented token exactly.
type Result struct {
	Prefix string
	Middle string
	Suffix string
}

// Join reconstructs the original token from its parts.
func (r Result) Join() string { return r.Prefix + r.Middle + r.Suffix }

// Segmenter decomposes tokens against one immutable Inventory.
// The zero value is not usable; construct via NewSegmenter.
// A Segmenter is stateless beyond its inventory and safe for concurrent use.
type Segmenter struct {
	inv *Inventory
}

// NewSegmenter returns a Segmenter over inv. A nil inv falls back to the
// default EVA inventory.
func NewSegmenter(inv *Inventory) *Segmenter {
	if inv == nil {
		inv = DefaultInventory()
	}
	return &Segmenter{inv: inv}
}

// Inventory returns the inventory the segmenter matches against.
func (s *Segmenter) Inventory() *Inventory { return s.inv }

// Segment decomposes text into (prefix, middle, suffix).
//
// The function is total: it never fails, never drops information, and maps
// the empty string to the all-empty Result. The first matching candidate in
// each inventory's fixed order wins, which makes longest-match deterministic
// including among same-length ties.
func (s *Segmenter) Segment(text string) Result {
	if text == "" {
		return Result{}
	}
	var res Result
	rest := text
	for _, p := range s.inv.prefixes {
		if strings.HasPrefix(rest, p) {
			res.Prefix = p
			rest = rest[len(p):]
			break
		}
	}
	for _, suf := range s.inv.suffixes {
		// A suffix must leave a non-empty remainder: it may not swallow the
		// whole post-prefix text.
		if len(suf) < len(rest) && strings.HasSuffix(rest, suf) {
			res.Suffix = suf
			rest = rest[:len(rest)-len(suf)]
			break
		}
	}
	res.Middle = rest
	return res
}

// Middle is a convenience for callers that only need the stem.
func (s *Segmenter) Middle(text string) string { return s.Segment(text).Middle }
