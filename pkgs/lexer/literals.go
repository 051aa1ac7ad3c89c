package lexer

// scanQuotedBody scans the content of a quoted literal starting just
// after the opening quote, stopping at the first unescaped occurrence of
// quote. Backslash escapes are skipped wholesale here (their internal
// structure is validated later by Process via the escape-processing
// micro-grammar); this just needs to find the right end position. If
// allowRawNewline is false, an un-escaped LF ends the scan as
// unterminated (matching the rule that char/byte literals can't span
// lines).
func scanQuotedBody(input []rune, quote rune, allowRawNewline bool) (bodyEnd int, terminated bool) {
	i := 0
	for i < len(input) {
		c := input[i]
		if c == quote {
			return i, true
		}
		if c == '\\' {
			if i+1 >= len(input) {
				i++
				continue
			}
			switch input[i+1] {
			case 'u':
				if i+2 < len(input) && input[i+2] == '{' {
					j := i + 3
					for j < len(input) && input[j] != '}' {
						j++
					}
					if j < len(input) {
						j++
					}
					i = j
					continue
				}
				i += 2
			case 'x':
				i += 2
				n := 0
				for i < len(input) && n < 2 && isAsciiHexDigit(input[i]) {
					i++
					n++
				}
			default:
				i += 2
			}
			continue
		}
		if !allowRawNewline && c == '\n' {
			return i, false
		}
		i++
	}
	return i, false
}

// recordLiteralSuffix scans for an optional suffix directly following a
// literal's closing delimiter at position total in input, recording it
// under NTLiteralSuffix if present, and returns the new total length.
func recordLiteralSuffix(input []rune, total int, b *builder) int {
	if total < len(input) {
		if suffixLen := scanSuffix(input[total:]); suffixLen > 0 {
			b.record(NTLiteralSuffix, seq(input[total:total+suffixLen]))
			total += suffixLen
		}
	}
	return total
}

func matchCharLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) == 0 || input[0] != '\'' {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[1:], '\'', false)
	if !terminated {
		return MatchData{}, false
	}
	body := input[1 : 1+bodyEnd]
	total := 1 + bodyEnd + 1
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTCharLiteral, seq(input[:total]), b), true
}

func matchByteLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != 'b' || input[1] != '\'' {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[2:], '\'', false)
	if !terminated {
		return MatchData{}, false
	}
	body := input[2 : 2+bodyEnd]
	total := 2 + bodyEnd + 1
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTByteLiteral, seq(input[:total]), b), true
}

func matchStringLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) == 0 || input[0] != '"' {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[1:], '"', true)
	if !terminated {
		return MatchData{}, false
	}
	body := input[1 : 1+bodyEnd]
	total := 1 + bodyEnd + 1
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTStringLiteral, seq(input[:total]), b), true
}

func matchByteStringLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != 'b' || input[1] != '"' {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[2:], '"', true)
	if !terminated {
		return MatchData{}, false
	}
	body := input[2 : 2+bodyEnd]
	total := 2 + bodyEnd + 1
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTByteStringLiteral, seq(input[:total]), b), true
}

func matchCStringLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != 'c' || input[1] != '"' {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[2:], '"', true)
	if !terminated {
		return MatchData{}, false
	}
	body := input[2 : 2+bodyEnd]
	total := 2 + bodyEnd + 1
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTCStringLiteral, seq(input[:total]), b), true
}

// runesEqualAt reports whether input[i:i+len(want)] equals want, without
// panicking when that range runs past the end of input.
func runesEqualAt(input []rune, i int, want []rune) bool {
	if i+len(want) > len(input) {
		return false
	}
	for k, r := range want {
		if input[i+k] != r {
			return false
		}
	}
	return true
}

// matchRawDelimited matches the `#`*-hashes `"` body `"` `#`*-hashes tail
// of a raw (string/byte-string/c-string) literal, with prefixLen scalar
// values of a fixed prefix (e.g. "r", "br", "cr") already skipped.
func matchRawDelimited(input []rune, prefixLen int) (bodyStart, bodyEnd, hashCount, total int, ok bool) {
	i := prefixLen
	for i < len(input) && input[i] == '#' {
		hashCount++
		i++
	}
	if i >= len(input) || input[i] != '"' {
		return 0, 0, 0, 0, false
	}
	i++
	bodyStart = i
	closer := make([]rune, 0, hashCount+1)
	closer = append(closer, '"')
	for k := 0; k < hashCount; k++ {
		closer = append(closer, '#')
	}
	for i < len(input) {
		if input[i] == '"' && runesEqualAt(input, i, closer) {
			return bodyStart, i, hashCount, i + len(closer), true
		}
		i++
	}
	return 0, 0, 0, 0, false
}

func matchRawStringLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) == 0 || input[0] != 'r' {
		return MatchData{}, false
	}
	bodyStart, bodyEnd, hashCount, total, ok := matchRawDelimited(input, 1)
	if !ok {
		return MatchData{}, false
	}
	b := &builder{}
	b.record(NTHashes, seq(repeatHash(hashCount)))
	b.record(NTLiteralBody, seq(input[bodyStart:bodyEnd]))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTRawStringLiteral, seq(input[:total]), b), true
}

func matchRawByteStringLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != 'b' || input[1] != 'r' {
		return MatchData{}, false
	}
	bodyStart, bodyEnd, hashCount, total, ok := matchRawDelimited(input, 2)
	if !ok {
		return MatchData{}, false
	}
	b := &builder{}
	b.record(NTHashes, seq(repeatHash(hashCount)))
	b.record(NTLiteralBody, seq(input[bodyStart:bodyEnd]))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTRawByteStringLiteral, seq(input[:total]), b), true
}

func matchRawCStringLiteral(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != 'c' || input[1] != 'r' {
		return MatchData{}, false
	}
	bodyStart, bodyEnd, hashCount, total, ok := matchRawDelimited(input, 2)
	if !ok {
		return MatchData{}, false
	}
	b := &builder{}
	b.record(NTHashes, seq(repeatHash(hashCount)))
	b.record(NTLiteralBody, seq(input[bodyStart:bodyEnd]))
	total = recordLiteralSuffix(input, total, b)
	return newMatchData(NTRawCStringLiteral, seq(input[:total]), b), true
}

func repeatHash(n int) []rune {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = '#'
	}
	return runes
}

// matchUnterminatedSingleQuoted matches the reserved form of a char or
// byte literal whose opening quote has no matching close before a raw
// newline or the end of input. A `'` directly followed by an identifier
// start is not matched here: that shape is a lifetime or label.
func matchUnterminatedSingleQuoted(input []rune, _ Edition) (MatchData, bool) {
	quotePos := 0
	if len(input) >= 2 && input[0] == 'b' && input[1] == '\'' {
		quotePos = 1
	} else if len(input) == 0 || input[0] != '\'' {
		return MatchData{}, false
	} else if scanIdentRunes(input[1:]) > 0 {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[quotePos+1:], '\'', false)
	if terminated {
		return MatchData{}, false
	}
	total := quotePos + 1 + bodyEnd
	b := &builder{}
	b.record(NTLiteralBody, seq(input[quotePos+1:quotePos+1+bodyEnd]))
	return newMatchData(NTUnterminatedSingleQuoted, seq(input[:total]), b), true
}

// matchUnterminatedDoubleQuoted matches the reserved form of a string,
// byte-string, or c-string literal with no closing quote before the end
// of input.
func matchUnterminatedDoubleQuoted(input []rune, _ Edition) (MatchData, bool) {
	quotePos := 0
	if len(input) >= 2 && (input[0] == 'b' || input[0] == 'c') && input[1] == '"' {
		quotePos = 1
	} else if len(input) == 0 || input[0] != '"' {
		return MatchData{}, false
	}
	bodyEnd, terminated := scanQuotedBody(input[quotePos+1:], '"', true)
	if terminated {
		return MatchData{}, false
	}
	total := quotePos + 1 + bodyEnd
	b := &builder{}
	b.record(NTLiteralBody, seq(input[quotePos+1:quotePos+1+bodyEnd]))
	return newMatchData(NTUnterminatedDoubleQuoted, seq(input[:total]), b), true
}
