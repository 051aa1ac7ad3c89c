package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// DocCommentStyle distinguishes inner (`//!`, `/*! */`) from outer
// (`///`, `/** */`) doc-comments. Non-doc comments don't survive into
// coarse tokens at all — they're treated as whitespace.
type DocCommentStyle int

const (
	InnerDocComment DocCommentStyle = iota
	OuterDocComment
)

// CoarseTokenKind tags the variant held by CoarseTokenData.
type CoarseTokenKind int

const (
	CoarseLineComment CoarseTokenKind = iota
	CoarseBlockComment
	CoarsePunctuation
	CoarseIdent
	CoarseRawIdent
	CoarseLifetimeOrLabel
	CoarseRawLifetimeOrLabel
	CoarseCharLiteral
	CoarseByteLiteral
	CoarseStringLiteral
	CoarseRawStringLiteral
	CoarseByteStringLiteral
	CoarseRawByteStringLiteral
	CoarseCStringLiteral
	CoarseRawCStringLiteral
	CoarseIntegerLiteral
	CoarseFloatLiteral
)

func (k CoarseTokenKind) String() string {
	switch k {
	case CoarseLineComment:
		return "line-comment"
	case CoarseBlockComment:
		return "block-comment"
	case CoarsePunctuation:
		return "punctuation"
	case CoarseIdent:
		return "ident"
	case CoarseRawIdent:
		return "raw-ident"
	case CoarseLifetimeOrLabel:
		return "lifetime-or-label"
	case CoarseRawLifetimeOrLabel:
		return "raw-lifetime-or-label"
	case CoarseCharLiteral:
		return "char-literal"
	case CoarseByteLiteral:
		return "byte-literal"
	case CoarseStringLiteral:
		return "string-literal"
	case CoarseRawStringLiteral:
		return "raw-string-literal"
	case CoarseByteStringLiteral:
		return "byte-string-literal"
	case CoarseRawByteStringLiteral:
		return "raw-byte-string-literal"
	case CoarseCStringLiteral:
		return "c-string-literal"
	case CoarseRawCStringLiteral:
		return "raw-c-string-literal"
	case CoarseIntegerLiteral:
		return "integer-literal"
	case CoarseFloatLiteral:
		return "float-literal"
	default:
		return "unknown-coarse-token-kind"
	}
}

func (s Spacing) String() string {
	if s == SpacingJoint {
		return "joint"
	}
	return "alone"
}

// CoarseTokenData is a coarse-grained token's kind and attributes: no
// whitespace tokens, comments are always doc-comments, punctuation may
// span multiple marks, and punctuation never represents a delimiter
// (delimiters only appear as Forest group structure by this stage).
type CoarseTokenData struct {
	Kind CoarseTokenKind

	DocStyle DocCommentStyle
	Body     charseq.CharSeq

	Marks []rune

	RepresentedIdent charseq.CharSeq
	Name             charseq.CharSeq

	RepresentedCharacter rune
	RepresentedByte      byte
	RepresentedString    charseq.CharSeq
	RepresentedBytes     []byte

	Base   NumericBase
	Digits charseq.CharSeq

	FloatBody charseq.CharSeq

	Suffix charseq.CharSeq
}

// CoarseToken is a single coarse-grained token.
type CoarseToken struct {
	Data    CoarseTokenData
	Origin  Origin
	Spacing Spacing
}

// Spacing records whether a coarse token is immediately followed by
// another coarse token, with no intervening whitespace or comment —
// information a macro-expansion-style consumer needs even for
// punctuation pairs that didn't qualify for gluing.
type Spacing int

const (
	SpacingAlone Spacing = iota
	SpacingJoint
)

// pairs lists the two-mark punctuation combinations that glue into one
// coarse token, taken from the writeup's gluing table.
var pairs = map[[2]rune]bool{
	{'<', '='}: true, {'=', '='}: true, {'!', '='}: true, {'>', '='}: true,
	{'&', '&'}: true, {'|', '|'}: true, {'.', '.'}: true, {':', ':'}: true,
	{'-', '>'}: true, {'<', '-'}: true, {'=', '>'}: true,
	{'<', '<'}: true, {'>', '>'}: true,
	{'+', '='}: true, {'-', '='}: true, {'*', '='}: true, {'/', '='}: true,
	{'%', '='}: true, {'^', '='}: true, {'&', '='}: true, {'|', '='}: true,
}

// triples lists the three-mark combinations formed by extending an
// already-glued pair with one more mark.
var triples = map[[3]rune]bool{
	{'.', '.', '.'}: true, {'.', '.', '='}: true,
	{'<', '<', '='}: true, {'>', '>', '='}: true,
}

// Coarsen converts a fine-grained token forest into a coarse-grained
// one: whitespace and non-doc comments are dropped, adjacent punctuation
// marks are glued per the pair/triple tables above, and every surviving
// fine token is reshaped into CoarseTokenData.
func Coarsen(forest Forest[FineToken]) Forest[CoarseToken] {
	return glue(elideWhitespace(forest))
}

type spacedToken struct {
	token   FineToken
	spacing Spacing
}

// elideWhitespace drops whitespace and non-doc-comment tokens, recording
// for each survivor whether it's immediately followed (no intervening
// whitespace) by another survivor.
func elideWhitespace(forest Forest[FineToken]) Forest[spacedToken] {
	return CombiningMap(forest, func(token FineToken, rest *cursor[FineToken]) (spacedToken, bool) {
		if token.Data.IsWhitespace() {
			return spacedToken{}, false
		}
		sp := SpacingAlone
		if next, ok := rest.Peek(); ok && (next.IsGroup || !next.Token.Data.IsWhitespace()) {
			sp = SpacingJoint
		}
		return spacedToken{token: token, spacing: sp}, true
	})
}

// glue merges runs of Joint-spaced punctuation tokens per the pair/triple
// tables, emitting one CoarseToken per fine token otherwise. A token's own
// Spacing always reflects the last fine token folded into it, whether or
// not any gluing happened.
func glue(forest Forest[spacedToken]) Forest[CoarseToken] {
	return CombiningMap(forest, func(st spacedToken, rest *cursor[spacedToken]) (CoarseToken, bool) {
		if st.spacing == SpacingJoint {
			if next, ok := rest.Peek(); ok && !next.IsGroup {
				if mark1, ok1 := st.token.Data.AsDelimiter(); ok1 {
					if mark2, ok2 := next.Token.Data.AsDelimiter(); ok2 && pairs[[2]rune{mark1, mark2}] {
						rest.Next()
						marks := []rune{mark1, mark2}
						origin := CombineOrigins(st.token.Origin, next.Token.Origin)
						resultSpacing := next.Token.spacing
						if resultSpacing == SpacingJoint {
							if third, ok := rest.Peek(); ok && !third.IsGroup {
								if mark3, ok3 := third.Token.Data.AsDelimiter(); ok3 && triples[[3]rune{marks[0], marks[1], mark3}] {
									rest.Next()
									marks = []rune{marks[0], marks[1], mark3}
									origin = CombineOrigins(origin, third.Token.Origin)
									resultSpacing = third.Token.spacing
								}
							}
						}
						return CoarseToken{
							Data:    CoarseTokenData{Kind: CoarsePunctuation, Marks: marks},
							Origin:  origin,
							Spacing: resultSpacing,
						}, true
					}
				}
			}
		}
		coarse, keep := fineToCoarse(st.token)
		coarse.Spacing = st.spacing
		return coarse, keep
	})
}

// fineToCoarse reshapes a single surviving fine token into a coarse one,
// leaving Spacing unset for the caller to fill in.
// keep is false only for non-doc comments, which elideWhitespace should
// already have dropped — kept here as a defensive fallback matching the
// original's fallible TryFrom.
func fineToCoarse(t FineToken) (CoarseToken, bool) {
	d := t.Data
	switch d.Kind {
	case FineWhitespace:
		return CoarseToken{}, false
	case FineLineComment, FineBlockComment:
		if d.CommentStyle == NonDoc {
			return CoarseToken{}, false
		}
		style := InnerDocComment
		if d.CommentStyle == OuterDoc {
			style = OuterDocComment
		}
		kind := CoarseLineComment
		if d.Kind == FineBlockComment {
			kind = CoarseBlockComment
		}
		return CoarseToken{Data: CoarseTokenData{Kind: kind, DocStyle: style, Body: d.Body}, Origin: t.Origin}, true
	case FinePunctuation:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarsePunctuation, Marks: []rune{d.Mark}}, Origin: t.Origin}, true
	case FineIdent:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseIdent, RepresentedIdent: d.RepresentedIdent}, Origin: t.Origin}, true
	case FineRawIdent:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseRawIdent, RepresentedIdent: d.RepresentedIdent}, Origin: t.Origin}, true
	case FineLifetimeOrLabel:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseLifetimeOrLabel, Name: d.Name}, Origin: t.Origin}, true
	case FineRawLifetimeOrLabel:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseRawLifetimeOrLabel, Name: d.Name}, Origin: t.Origin}, true
	case FineCharLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseCharLiteral, RepresentedCharacter: d.RepresentedCharacter, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineByteLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseByteLiteral, RepresentedByte: d.RepresentedByte, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineStringLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseStringLiteral, RepresentedString: d.RepresentedString, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineRawStringLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseRawStringLiteral, RepresentedString: d.RepresentedString, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineByteStringLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseByteStringLiteral, RepresentedBytes: d.RepresentedBytes, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineRawByteStringLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseRawByteStringLiteral, RepresentedBytes: d.RepresentedBytes, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineCStringLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseCStringLiteral, RepresentedBytes: d.RepresentedBytes, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineRawCStringLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseRawCStringLiteral, RepresentedBytes: d.RepresentedBytes, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineIntegerLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseIntegerLiteral, Base: d.Base, Digits: d.Digits, Suffix: d.Suffix}, Origin: t.Origin}, true
	case FineFloatLiteral:
		return CoarseToken{Data: CoarseTokenData{Kind: CoarseFloatLiteral, FloatBody: d.FloatBody, Suffix: d.Suffix}, Origin: t.Origin}, true
	default:
		return CoarseToken{}, false
	}
}
