package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// RegularTokenKind tags the variant held by RegularTokenData.
type RegularTokenKind int

const (
	RegularDocComment RegularTokenKind = iota
	RegularPunctuation
	RegularIdentifier
	RegularLifetimeOrLabel
	RegularByteLiteral
	RegularByteStringLiteral
	RegularCharacterLiteral
	RegularStringLiteral
	RegularCstringLiteral
	RegularIntegerLiteral
	RegularFloatLiteral
	RegularLiteralWithForbiddenSuffix
	RegularOther
)

func (k RegularTokenKind) String() string {
	switch k {
	case RegularDocComment:
		return "doc-comment"
	case RegularPunctuation:
		return "punctuation"
	case RegularIdentifier:
		return "identifier"
	case RegularLifetimeOrLabel:
		return "lifetime-or-label"
	case RegularByteLiteral:
		return "byte-literal"
	case RegularByteStringLiteral:
		return "byte-string-literal"
	case RegularCharacterLiteral:
		return "character-literal"
	case RegularStringLiteral:
		return "string-literal"
	case RegularCstringLiteral:
		return "c-string-literal"
	case RegularIntegerLiteral:
		return "integer-literal"
	case RegularFloatLiteral:
		return "float-literal"
	case RegularLiteralWithForbiddenSuffix:
		return "literal-with-forbidden-suffix"
	default:
		return "other"
	}
}

// CommentKind distinguishes a line comment from a block comment,
// independent of doc-comment style.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// IdentifierStyle records whether an identifier or lifetime/label was
// written in raw (`r#...`) form.
type IdentifierStyle int

const (
	NonRaw IdentifierStyle = iota
	Raw
)

// StringStyle records whether a string-family literal was written in raw
// form.
type StringStyle int

const (
	StringNonRaw StringStyle = iota
	StringRaw
)

// RegularTokenData is a coarse-grained, implementation-agnostic
// description of one token's kind and attributes, suitable for comparing
// the output of two different lexer implementations: punctuation marks
// are reduced to their kind (not their spelling), and literal tokens are
// reduced to their represented values rather than their source spelling.
type RegularTokenData struct {
	Kind RegularTokenKind

	CommentKind CommentKind
	DocStyle    DocCommentStyle
	Body        charseq.CharSeq

	RepresentedIdentifier charseq.CharSeq
	IdentStyle            IdentifierStyle

	Symbol charseq.CharSeq // LifetimeOrLabel, includes the leading '

	RepresentedCharacter rune
	RepresentedByte      byte
	RepresentedString    charseq.CharSeq
	RepresentedBytes     []byte
	StringStyle          StringStyle

	Suffix charseq.CharSeq // IntegerLiteral, FloatLiteral, LiteralWithForbiddenSuffix
}

// RegularToken is a single regularised token: the source text it spans,
// whether it's immediately followed by another token, and its
// implementation-agnostic kind and attributes.
type RegularToken struct {
	Extent  charseq.CharSeq
	Spacing Spacing
	Data    RegularTokenData
}

// RegulariseForest converts a Forest[CoarseToken] into a flat sequence of
// RegularTokens, suitable for comparing this lexer's output against a
// reference lexer's. Group structure is flattened: delimiters no longer
// appear in the input (they're implicit in the forest's nesting) and
// aren't reintroduced here, since spec.md's comparator only needs a
// common representation of token content, not structure.
func RegulariseForest(forest Forest[CoarseToken]) []RegularToken {
	var out []RegularToken
	var walk func(Forest[CoarseToken])
	walk = func(f Forest[CoarseToken]) {
		for _, tree := range f.Contents {
			if tree.IsGroup {
				walk(tree.Group)
				continue
			}
			out = append(out, regulariseOne(tree.Token))
		}
	}
	walk(forest)
	return out
}

func regulariseOne(token CoarseToken) RegularToken {
	extent := token.Origin.Extent()
	if token.Origin.IsSynthetic() {
		extent = token.Origin.Stringified()
	}
	return RegularToken{
		Extent:  extent,
		Spacing: token.Spacing,
		Data:    regulariseData(token.Data),
	}
}

func regulariseData(d CoarseTokenData) RegularTokenData {
	if suffix, hasSuffix := forbiddenLiteralSuffix(d); hasSuffix && suffix.Len() > 0 {
		return RegularTokenData{Kind: RegularLiteralWithForbiddenSuffix, Suffix: suffix}
	}
	switch d.Kind {
	case CoarseLineComment:
		return RegularTokenData{Kind: RegularDocComment, CommentKind: LineComment, DocStyle: d.DocStyle, Body: d.Body}
	case CoarseBlockComment:
		return RegularTokenData{Kind: RegularDocComment, CommentKind: BlockComment, DocStyle: d.DocStyle, Body: d.Body}
	case CoarsePunctuation:
		return RegularTokenData{Kind: RegularPunctuation}
	case CoarseIdent:
		return RegularTokenData{Kind: RegularIdentifier, RepresentedIdentifier: d.RepresentedIdent, IdentStyle: NonRaw}
	case CoarseRawIdent:
		return RegularTokenData{Kind: RegularIdentifier, RepresentedIdentifier: d.RepresentedIdent, IdentStyle: Raw}
	case CoarseLifetimeOrLabel:
		return RegularTokenData{Kind: RegularLifetimeOrLabel, Symbol: prependQuote(d.Name), IdentStyle: NonRaw}
	case CoarseRawLifetimeOrLabel:
		return RegularTokenData{Kind: RegularLifetimeOrLabel, Symbol: prependQuote(d.Name), IdentStyle: Raw}
	case CoarseCharLiteral:
		return RegularTokenData{Kind: RegularCharacterLiteral, RepresentedCharacter: d.RepresentedCharacter}
	case CoarseByteLiteral:
		return RegularTokenData{Kind: RegularByteLiteral, RepresentedByte: d.RepresentedByte}
	case CoarseStringLiteral:
		return RegularTokenData{Kind: RegularStringLiteral, RepresentedString: d.RepresentedString, StringStyle: StringNonRaw}
	case CoarseRawStringLiteral:
		return RegularTokenData{Kind: RegularStringLiteral, RepresentedString: d.RepresentedString, StringStyle: StringRaw}
	case CoarseByteStringLiteral:
		return RegularTokenData{Kind: RegularByteStringLiteral, RepresentedBytes: d.RepresentedBytes, StringStyle: StringNonRaw}
	case CoarseRawByteStringLiteral:
		return RegularTokenData{Kind: RegularByteStringLiteral, RepresentedBytes: d.RepresentedBytes, StringStyle: StringRaw}
	case CoarseCStringLiteral:
		return RegularTokenData{Kind: RegularCstringLiteral, RepresentedBytes: appendNUL(d.RepresentedBytes), StringStyle: StringNonRaw}
	case CoarseRawCStringLiteral:
		return RegularTokenData{Kind: RegularCstringLiteral, RepresentedBytes: appendNUL(d.RepresentedBytes), StringStyle: StringRaw}
	case CoarseIntegerLiteral:
		return RegularTokenData{Kind: RegularIntegerLiteral, Suffix: d.Suffix}
	case CoarseFloatLiteral:
		return RegularTokenData{Kind: RegularFloatLiteral, Suffix: d.Suffix}
	default:
		return RegularTokenData{Kind: RegularOther}
	}
}

// forbiddenLiteralSuffix reports the suffix attached to any string-family
// literal kind: rustc doesn't unescape a string-family literal carrying a
// suffix it doesn't recognise, so such tokens are regularised to a
// separate catch-all kind rather than claiming a represented value for
// them.
func forbiddenLiteralSuffix(d CoarseTokenData) (charseq.CharSeq, bool) {
	switch d.Kind {
	case CoarseCharLiteral, CoarseByteLiteral, CoarseStringLiteral, CoarseByteStringLiteral,
		CoarseCStringLiteral, CoarseRawStringLiteral, CoarseRawByteStringLiteral, CoarseRawCStringLiteral:
		return d.Suffix, true
	default:
		return charseq.CharSeq{}, false
	}
}

func prependQuote(name charseq.CharSeq) charseq.CharSeq {
	runes := append([]rune{'\''}, name.Runes()...)
	return charseq.New(runes)
}

func appendNUL(bytes []byte) []byte {
	out := make([]byte, len(bytes)+1)
	copy(out, bytes)
	return out
}
