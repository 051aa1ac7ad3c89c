package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// scanDigitRun returns the length of the maximal run at the start of
// input of runes satisfying isDigit or equal to '_'.
func scanDigitRun(input []rune, isDigit func(rune) bool) int {
	n := 0
	for n < len(input) && (isDigit(input[n]) || input[n] == '_') {
		n++
	}
	return n
}

func isBinDigitClass(r rune) bool { return isAsciiDigit(r) } // processing rejects digits >= 2
func isOctDigitClass(r rune) bool { return isAsciiDigit(r) } // processing rejects digits >= 8
func isHexDigitClass(r rune) bool { return isAsciiHexDigit(r) }
func isDecDigitClass(r rune) bool { return isAsciiDigit(r) }

func hasNonUnderscoreDigit(runes []rune) bool {
	for _, r := range runes {
		if r != '_' {
			return true
		}
	}
	return false
}

// scanSuffix returns the length of an optional literal suffix (an
// identifier-like token directly following a literal's body, with no
// separator).
func scanSuffix(input []rune) int {
	return scanIdentRunes(input)
}

// matchIntegerLiteral matches INTEGER_LITERAL: a binary, octal, or hex
// literal (by prefix) or else a decimal literal, followed by an optional
// suffix. Exactly one base-specific subsidiary nonterminal participates,
// recorded for Process to pick up.
func matchIntegerLiteral(input []rune, _ Edition) (MatchData, bool) {
	var baseNT Nonterminal
	var prefixLen int
	var digitClass func(rune) bool

	switch {
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'b' || input[1] == 'B'):
		baseNT, prefixLen, digitClass = NTBinaryIntLiteral, 2, isBinDigitClass
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'o' || input[1] == 'O'):
		baseNT, prefixLen, digitClass = NTOctalIntLiteral, 2, isOctDigitClass
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X'):
		baseNT, prefixLen, digitClass = NTHexIntLiteral, 2, isHexDigitClass
	default:
		baseNT, prefixLen, digitClass = NTDecimalIntLiteral, 0, isDecDigitClass
	}

	if prefixLen > 0 && len(input) < prefixLen {
		return MatchData{}, false
	}
	if prefixLen == 0 && (len(input) == 0 || !isAsciiDigit(input[0])) {
		return MatchData{}, false
	}

	digitsLen := scanDigitRun(input[prefixLen:], digitClass)
	if digitsLen == 0 {
		return MatchData{}, false
	}
	digits := input[prefixLen : prefixLen+digitsLen]

	total := prefixLen + digitsLen
	b := &builder{}
	b.record(baseNT, seq(input[:total]))
	b.record(NTIntDigits, seq(digits))

	suffixLen := 0
	if total < len(input) {
		suffixLen = scanSuffix(input[total:])
		if suffixLen > 0 {
			b.record(NTIntSuffix, seq(input[total:total+suffixLen]))
		}
	}
	total += suffixLen

	return newMatchData(NTIntegerLiteral, seq(input[:total]), b), true
}

// matchFloatLiteral matches FLOAT_LITERAL in one of its three
// non-overlapping shapes.
func matchFloatLiteral(input []rune, _ Edition) (MatchData, bool) {
	intLen := scanDigitRun(input, isDecDigitClass)
	if intLen == 0 || !hasNonUnderscoreDigit(input[:intLen]) {
		return MatchData{}, false
	}
	pos := intLen
	hasDot := pos < len(input) && input[pos] == '.'
	afterDot := pos
	if hasDot {
		afterDot = pos + 1
	}

	// Shape 1: WITH_EXPONENT, with or without a fractional part:
	// DIGITS ('.' DIGITS)? [eE] [+-]? DIGITS
	hasFraction := hasDot && afterDot < len(input) && isAsciiDigit(input[afterDot])
	if expLen, bodyEnd, ok := tryMatchExponent(input, intLen, afterDot); ok && (!hasDot || hasFraction) {
		b := &builder{}
		b.record(NTFloatWithExponent, seq(input[:bodyEnd]))
		total := bodyEnd
		suffixLen := 0
		if total < len(input) {
			suffixLen = scanSuffix(input[total:])
			if suffixLen > 0 {
				b.record(NTFloatSuffix, seq(input[total:total+suffixLen]))
			}
		}
		_ = expLen
		total += suffixLen
		return newMatchData(NTFloatLiteral, seq(input[:total]), b), true
	}
	if !hasDot {
		return MatchData{}, false
	}

	// Shape 2: WITHOUT_EXPONENT: DIGITS '.' DIGITS (fractional part present,
	// no exponent)
	fracLen := scanDigitRun(input[afterDot:], isDecDigitClass)
	if fracLen > 0 && hasNonUnderscoreDigit(input[afterDot:afterDot+fracLen]) {
		bodyEnd := afterDot + fracLen
		// Must not actually be followed by an exponent marker (that shape
		// is handled above and is strictly longer, so ordered checking
		// here is just for clarity).
		b := &builder{}
		b.record(NTFloatWithoutExponent, seq(input[:bodyEnd]))
		total := bodyEnd
		suffixLen := 0
		if total < len(input) {
			suffixLen = scanSuffix(input[total:])
			if suffixLen > 0 {
				b.record(NTFloatSuffix, seq(input[total:total+suffixLen]))
			}
		}
		total += suffixLen
		return newMatchData(NTFloatLiteral, seq(input[:total]), b), true
	}

	// Shape 3: WITH_FINAL_DOT: DIGITS '.' with no fractional digits, and
	// the dot not immediately followed by another '.', '_', or XID-start
	// (which would mean a method call / range / field access follows).
	if afterDot < len(input) {
		next := input[afterDot]
		if next == '.' || next == '_' || charseq.XIDStart(next) {
			return MatchData{}, false
		}
	}
	bodyEnd := afterDot
	b := &builder{}
	b.record(NTFloatWithFinalDot, seq(input[:bodyEnd]))
	return newMatchData(NTFloatLiteral, seq(input[:bodyEnd]), b), true
}

// tryMatchExponent attempts shape 1 (WITH_EXPONENT) starting from the
// integer part [0,intLen); afterDot is intLen+1 when a dot follows the
// integer part, or intLen when none does.
// Returns the exponent digit run length, the end of the whole body, and
// whether the shape matched (a fractional part between the dot and the
// exponent marker is optional).
func tryMatchExponent(input []rune, intLen, afterDot int) (expLen int, bodyEnd int, ok bool) {
	pos := afterDot
	fracLen := scanDigitRun(input[pos:], isDecDigitClass)
	// The fractional digits are optional; skip them if non-empty and
	// genuinely digits (not just underscores is fine here, rustc allows
	// "1._0e1"? no: require a marker next regardless).
	candidatePos := pos + fracLen
	if candidatePos >= len(input) || (input[candidatePos] != 'e' && input[candidatePos] != 'E') {
		// Try without any fractional part at all (dot immediately followed
		// by exponent marker).
		if pos >= len(input) || (input[pos] != 'e' && input[pos] != 'E') {
			return 0, 0, false
		}
		candidatePos = pos
	}
	expMarker := candidatePos
	cursor := expMarker + 1
	if cursor < len(input) && (input[cursor] == '+' || input[cursor] == '-') {
		cursor++
	}
	digitsStart := cursor
	digitsLen := scanDigitRun(input[digitsStart:], isDecDigitClass)
	if digitsLen == 0 || !hasNonUnderscoreDigit(input[digitsStart:digitsStart+digitsLen]) {
		return 0, 0, false
	}
	return digitsLen, digitsStart + digitsLen, true
}

// matchReservedEmptyExponent matches a float-like body ending in an
// exponent marker with no exponent digits following it (e.g. "1e",
// "1.0e+"), which rustc reserves rather than treating as DEC_LITERAL
// followed by an identifier.
func matchReservedEmptyExponent(input []rune, _ Edition) (MatchData, bool) {
	intLen := scanDigitRun(input, isDecDigitClass)
	if intLen == 0 || !hasNonUnderscoreDigit(input[:intLen]) {
		return MatchData{}, false
	}
	pos := intLen
	if pos < len(input) && input[pos] == '.' {
		fracLen := scanDigitRun(input[pos+1:], isDecDigitClass)
		pos = pos + 1 + fracLen
	}
	if pos >= len(input) || (input[pos] != 'e' && input[pos] != 'E') {
		return MatchData{}, false
	}
	cursor := pos + 1
	if cursor < len(input) && (input[cursor] == '+' || input[cursor] == '-') {
		cursor++
	}
	digitsLen := scanDigitRun(input[cursor:], isDecDigitClass)
	if digitsLen > 0 && hasNonUnderscoreDigit(input[cursor:cursor+digitsLen]) {
		// A genuine exponent is present; this is a valid FLOAT_LITERAL, not
		// the reserved empty-exponent form.
		return MatchData{}, false
	}
	b := &builder{}
	return newMatchData(NTReservedEmptyExponent, seq(input[:cursor]), b), true
}

// matchReservedBasedFloat matches a binary/octal/hex integer prefix
// followed directly by a `.` and more digits, a shape with no valid
// interpretation (floats are always decimal) that is reserved rather
// than left to parse as two separate tokens.
func matchReservedBasedFloat(input []rune, _ Edition) (MatchData, bool) {
	var prefixLen int
	var digitClass func(rune) bool
	switch {
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'b' || input[1] == 'B'):
		prefixLen, digitClass = 2, isBinDigitClass
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'o' || input[1] == 'O'):
		prefixLen, digitClass = 2, isOctDigitClass
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X'):
		prefixLen, digitClass = 2, isHexDigitClass
	default:
		return MatchData{}, false
	}
	digitsLen := scanDigitRun(input[prefixLen:], digitClass)
	if digitsLen == 0 {
		return MatchData{}, false
	}
	pos := prefixLen + digitsLen
	if pos >= len(input) || input[pos] != '.' {
		return MatchData{}, false
	}
	pos++
	fracLen := scanDigitRun(input[pos:], digitClass)
	pos += fracLen
	b := &builder{}
	return newMatchData(NTReservedBasedFloat, seq(input[:pos]), b), true
}
