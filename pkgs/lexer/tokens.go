package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// CommentStyle classifies a line or block comment by its first body
// scalar value.
type CommentStyle int

const (
	NonDoc CommentStyle = iota
	InnerDoc
	OuterDoc
)

func (s CommentStyle) String() string {
	switch s {
	case NonDoc:
		return "non-doc"
	case InnerDoc:
		return "inner-doc"
	case OuterDoc:
		return "outer-doc"
	default:
		return "unknown-comment-style"
	}
}

// NumericBase is the base an integer literal was written in.
type NumericBase int

const (
	Binary NumericBase = iota
	Octal
	Decimal
	Hexadecimal
)

func (b NumericBase) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown-base"
	}
}

// FineTokenKind tags the variant held by FineTokenData.
type FineTokenKind int

const (
	FineWhitespace FineTokenKind = iota
	FineLineComment
	FineBlockComment
	FinePunctuation
	FineIdent
	FineRawIdent
	FineLifetimeOrLabel
	FineRawLifetimeOrLabel
	FineCharLiteral
	FineByteLiteral
	FineStringLiteral
	FineRawStringLiteral
	FineByteStringLiteral
	FineRawByteStringLiteral
	FineCStringLiteral
	FineRawCStringLiteral
	FineIntegerLiteral
	FineFloatLiteral
)

func (k FineTokenKind) String() string {
	switch k {
	case FineWhitespace:
		return "whitespace"
	case FineLineComment:
		return "line-comment"
	case FineBlockComment:
		return "block-comment"
	case FinePunctuation:
		return "punctuation"
	case FineIdent:
		return "ident"
	case FineRawIdent:
		return "raw-ident"
	case FineLifetimeOrLabel:
		return "lifetime-or-label"
	case FineRawLifetimeOrLabel:
		return "raw-lifetime-or-label"
	case FineCharLiteral:
		return "char-literal"
	case FineByteLiteral:
		return "byte-literal"
	case FineStringLiteral:
		return "string-literal"
	case FineRawStringLiteral:
		return "raw-string-literal"
	case FineByteStringLiteral:
		return "byte-string-literal"
	case FineRawByteStringLiteral:
		return "raw-byte-string-literal"
	case FineCStringLiteral:
		return "c-string-literal"
	case FineRawCStringLiteral:
		return "raw-c-string-literal"
	case FineIntegerLiteral:
		return "integer-literal"
	case FineFloatLiteral:
		return "float-literal"
	default:
		return "unknown-fine-token-kind"
	}
}

// FineTokenData is a tagged union over every fine-grained token kind.
// Only the fields relevant to Kind are meaningful; this mirrors the
// writeup's tagged-union FineTokenData, expressed in Go as a flat struct
// rather than an interface, so that equality (used heavily by go-cmp in
// tests) is structural and doesn't need a type switch.
type FineTokenData struct {
	Kind FineTokenKind

	// FineLineComment / FineBlockComment
	CommentStyle CommentStyle
	Body         charseq.CharSeq

	// FinePunctuation
	Mark rune

	// FineIdent / FineRawIdent
	RepresentedIdent charseq.CharSeq

	// FineLifetimeOrLabel / FineRawLifetimeOrLabel
	Name charseq.CharSeq

	// FineCharLiteral
	RepresentedCharacter rune

	// FineByteLiteral
	RepresentedByte byte

	// FineStringLiteral / FineRawStringLiteral
	RepresentedString charseq.CharSeq

	// FineByteStringLiteral / FineRawByteStringLiteral / FineCStringLiteral / FineRawCStringLiteral
	RepresentedBytes []byte

	// FineIntegerLiteral
	Base   NumericBase
	Digits charseq.CharSeq

	// FineFloatLiteral
	FloatBody charseq.CharSeq

	// Literal suffix, shared by every literal kind (empty CharSeq if absent).
	Suffix charseq.CharSeq
}

// IsWhitespace reports whether this token is dropped during coarsening:
// real whitespace, or a non-doc comment.
func (d FineTokenData) IsWhitespace() bool {
	if d.Kind == FineWhitespace {
		return true
	}
	if (d.Kind == FineLineComment || d.Kind == FineBlockComment) && d.CommentStyle == NonDoc {
		return true
	}
	return false
}

// AsDelimiter returns the punctuation mark of any punctuation token (not
// only the group delimiters), for use by tree construction, shebang
// detection and punctuation gluing.
func (d FineTokenData) AsDelimiter() (rune, bool) {
	if d.Kind != FinePunctuation {
		return 0, false
	}
	return d.Mark, true
}

// FineToken is a single fine-grained token: whitespace, comments, single
// punctuation marks, identifiers, lifetimes, and literals with their
// decoded represented values.
type FineToken struct {
	Data   FineTokenData
	Origin Origin
}

// AsDelimiter implements Delimiter for tree construction.
func (t FineToken) AsDelimiter() (rune, bool) { return t.Data.AsDelimiter() }
