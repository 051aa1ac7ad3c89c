package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// Origin records where a token came from: real source text, or a
// synthetic token manufactured by doc-comment lowering.
type Origin struct {
	synthetic   bool
	extent      charseq.CharSeq // Natural
	loweredFrom charseq.CharSeq // Synthetic
	stringified charseq.CharSeq // Synthetic
}

// NaturalOrigin builds the Origin for a token taken verbatim from the
// cleaned source text.
func NaturalOrigin(extent charseq.CharSeq) Origin {
	return Origin{extent: extent}
}

// SyntheticOrigin builds the Origin for a token manufactured by
// doc-comment lowering: loweredFrom is the original comment's extent,
// stringified is this synthetic token's own textual rendering.
func SyntheticOrigin(loweredFrom, stringified charseq.CharSeq) Origin {
	return Origin{synthetic: true, loweredFrom: loweredFrom, stringified: stringified}
}

// IsSynthetic reports whether the origin is synthetic (doc-lowering) as
// opposed to natural (real source).
func (o Origin) IsSynthetic() bool { return o.synthetic }

// Extent returns the natural origin's consumed source text. Only valid
// when !IsSynthetic().
func (o Origin) Extent() charseq.CharSeq { return o.extent }

// LoweredFrom returns the original doc-comment's extent. Only valid when
// IsSynthetic().
func (o Origin) LoweredFrom() charseq.CharSeq { return o.loweredFrom }

// Stringified returns this synthetic token's own textual rendering. Only
// valid when IsSynthetic().
func (o Origin) Stringified() charseq.CharSeq { return o.stringified }

// CombineOrigins merges the origin information for two adjacent fine tokens
// being glued into one coarse token. Two natural origins concatenate
// their extents; any combination involving a synthetic origin degrades
// to a synthetic origin derived from the first synthetic side (gluing
// across a lowering boundary doesn't occur in practice, since lowering
// only ever produces single-character punctuation tokens that are never
// adjacent to another synthetic token in a glue-eligible pair except
// trivially).
func CombineOrigins(a, b Origin) Origin {
	switch {
	case !a.synthetic && !b.synthetic:
		return NaturalOrigin(charseq.Concat(a.extent, b.extent))
	case a.synthetic:
		return SyntheticOrigin(a.loweredFrom, charseq.CharSeq{})
	default:
		return SyntheticOrigin(b.loweredFrom, charseq.CharSeq{})
	}
}
