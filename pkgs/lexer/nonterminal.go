package lexer

// Nonterminal names a PEG-style grammar rule, either one of the top-level
// token-kind alternatives the matcher chooses among, or one of the
// subsidiary rules recorded in a match's elaboration. The set is shared
// across the tokenisation grammar and the escape-processing micro-grammar,
// mirroring the single Rule enum the model shares between both pest
// grammars.
type Nonterminal string

const (
	// Top-level token-kind nonterminals (tokenisation, §4.2).
	NTWhitespace             Nonterminal = "WHITESPACE"
	NTLineComment            Nonterminal = "LINE_COMMENT"
	NTBlockComment           Nonterminal = "BLOCK_COMMENT"
	NTCharLiteral            Nonterminal = "CHAR_LITERAL"
	NTByteLiteral            Nonterminal = "BYTE_LITERAL"
	NTStringLiteral          Nonterminal = "STRING_LITERAL"
	NTRawStringLiteral       Nonterminal = "RAW_STRING_LITERAL"
	NTByteStringLiteral      Nonterminal = "BYTE_STRING_LITERAL"
	NTRawByteStringLiteral   Nonterminal = "RAW_BYTE_STRING_LITERAL"
	NTCStringLiteral         Nonterminal = "C_STRING_LITERAL"
	NTRawCStringLiteral      Nonterminal = "RAW_C_STRING_LITERAL"
	NTIntegerLiteral         Nonterminal = "INTEGER_LITERAL"
	NTFloatLiteral           Nonterminal = "FLOAT_LITERAL"
	NTIdent                  Nonterminal = "IDENT"
	NTRawIdent               Nonterminal = "RAW_IDENT"
	NTLifetimeOrLabel        Nonterminal = "LIFETIME_OR_LABEL"
	NTRawLifetimeOrLabel     Nonterminal = "RAW_LIFETIME_OR_LABEL"
	NTPunctuation            Nonterminal = "PUNCTUATION"
	NTUnterminatedBlockComment Nonterminal = "RESERVED_UNTERMINATED_BLOCK_COMMENT"
	NTUnterminatedSingleQuoted Nonterminal = "RESERVED_UNTERMINATED_SINGLE_QUOTED"
	NTUnterminatedDoubleQuoted Nonterminal = "RESERVED_UNTERMINATED_DOUBLE_QUOTED"
	NTReservedPrefix           Nonterminal = "RESERVED_PREFIX"
	NTReservedLifetimePrefix   Nonterminal = "RESERVED_LIFETIME_PREFIX"
	NTReservedGuard            Nonterminal = "RESERVED_GUARD"
	NTReservedEmptyExponent    Nonterminal = "RESERVED_EMPTY_EXPONENT_FLOAT"
	NTReservedBasedFloat       Nonterminal = "RESERVED_BASED_FLOAT"

	// Subsidiary nonterminals recorded in a match's elaboration.
	NTBinaryIntLiteral  Nonterminal = "BINARY_INT_LITERAL"
	NTOctalIntLiteral   Nonterminal = "OCTAL_INT_LITERAL"
	NTDecimalIntLiteral Nonterminal = "DECIMAL_INT_LITERAL"
	NTHexIntLiteral     Nonterminal = "HEX_INT_LITERAL"
	NTIntDigits         Nonterminal = "INT_DIGITS"
	NTIntSuffix         Nonterminal = "INT_SUFFIX"

	NTFloatWithExponent    Nonterminal = "FLOAT_WITH_EXPONENT"
	NTFloatWithoutExponent Nonterminal = "FLOAT_WITHOUT_EXPONENT"
	NTFloatWithFinalDot    Nonterminal = "FLOAT_WITH_FINAL_DOT"
	NTFloatSuffix          Nonterminal = "FLOAT_SUFFIX"

	NTLiteralSuffix Nonterminal = "LITERAL_SUFFIX"
	NTLiteralBody   Nonterminal = "LITERAL_BODY"
	NTHashes        Nonterminal = "HASHES"

	// Escape-processing micro-grammar (§4.4).
	NTLiteralComponent           Nonterminal = "LITERAL_COMPONENT"
	NTLiteralComponents          Nonterminal = "LITERAL_COMPONENTS"
	NTNonEscape                  Nonterminal = "NON_ESCAPE"
	NTEscapeBody                 Nonterminal = "ESCAPE_BODY"
	NTSimpleEscapeBody           Nonterminal = "SIMPLE_ESCAPE_BODY"
	NTHexadecimalEscapeBody      Nonterminal = "HEXADECIMAL_ESCAPE_BODY"
	NTUnicodeEscapeBody          Nonterminal = "UNICODE_ESCAPE_BODY"
	NTStringContinuationEscapeBody Nonterminal = "STRING_CONTINUATION_ESCAPE_BODY"
	NTHexadecimalDigit           Nonterminal = "HEXADECIMAL_DIGIT"

	// Documented-as-terminal nonterminals (§9's "is_documented_as_terminal"):
	// these participate in matches but are omitted from elaboration.
	NTTab        Nonterminal = "TAB"
	NTCR         Nonterminal = "CR"
	NTLF         Nonterminal = "LF"
	NTDoublequote Nonterminal = "DOUBLEQUOTE"
	NTBackslash  Nonterminal = "BACKSLASH"
)

// isDocumentedAsTerminal reports whether a nonterminal is documented as a
// terminal in the writeup, and so is omitted from elaboration even though
// it is a distinct rule internally.
func isDocumentedAsTerminal(nt Nonterminal) bool {
	switch nt {
	case NTTab, NTCR, NTLF, NTDoublequote, NTBackslash:
		return true
	default:
		return false
	}
}
