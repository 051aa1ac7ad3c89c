package lexer

import "github.com/mattheww/lexeywan/pkgs/lexerrors"

// ruleTable lists every top-level token-kind alternative the matcher
// tries at a given position, in declaration order. Declaration order
// only matters as a tie-break when two alternatives produce matches of
// exactly equal length at the same position; reserved/more-specific
// forms are listed ahead of the general forms they'd otherwise tie
// with, so the more specific nonterminal always wins.
func ruleTable() []alternative {
	return []alternative{
		{NTWhitespace, matchWhitespace},
		{NTLineComment, matchLineComment},
		{NTBlockComment, matchBlockComment},
		{NTUnterminatedBlockComment, matchUnterminatedBlockComment},

		// Reserved/specific forms before the general forms they tie with.
		{NTReservedGuard, matchReservedGuard},
		{NTRawLifetimeOrLabel, matchRawLifetimeOrLabel},
		{NTReservedLifetimePrefix, matchReservedLifetimePrefix},
		{NTLifetimeOrLabel, matchLifetimeOrLabel},
		{NTRawIdent, matchRawIdent},
		{NTReservedPrefix, matchReservedPrefix},
		{NTIdent, matchIdent},

		{NTRawByteStringLiteral, matchRawByteStringLiteral},
		{NTRawCStringLiteral, matchRawCStringLiteral},
		{NTRawStringLiteral, matchRawStringLiteral},
		{NTByteStringLiteral, matchByteStringLiteral},
		{NTCStringLiteral, matchCStringLiteral},
		{NTStringLiteral, matchStringLiteral},
		{NTByteLiteral, matchByteLiteral},
		{NTCharLiteral, matchCharLiteral},
		{NTUnterminatedSingleQuoted, matchUnterminatedSingleQuoted},
		{NTUnterminatedDoubleQuoted, matchUnterminatedDoubleQuoted},

		{NTReservedEmptyExponent, matchReservedEmptyExponent},
		{NTReservedBasedFloat, matchReservedBasedFloat},
		{NTFloatLiteral, matchFloatLiteral},
		{NTIntegerLiteral, matchIntegerLiteral},

		{NTPunctuation, matchPunctuation},
	}
}

// matchOneAt tries every alternative in the rule table at the given
// position and selects the longest match, breaking ties by earliest
// table position: the table above lists reserved and more specific forms
// ahead of the general forms they tie with, so those win. It returns a
// rejection if no alternative matches.
func matchOneAt(input []rune, edition Edition) (MatchData, error) {
	var best *MatchData
	bestLen := -1

	for _, alt := range ruleTable() {
		m, ok := alt.match(input, edition)
		if !ok {
			continue
		}
		// Only a strictly longer match replaces the current best, so an
		// equal-length match from a later alternative never wins.
		if n := m.Consumed.Len(); n > bestLen {
			mCopy := m
			best = &mCopy
			bestLen = n
		}
	}

	if best == nil {
		return MatchData{}, lexerrors.Reject("no token matches at this position")
	}
	return *best, nil
}

// TokensMatchData is the result of matching a whole input to the end:
// the sequence of top-level matches found, and whether they account for
// every scalar value of the input.
type TokensMatchData struct {
	Matches             []MatchData
	ConsumedEntireInput bool
}

// MatchAll repeatedly applies matchOneAt from the start of the
// (remaining) input until no further alternative matches, implementing
// the contract match_tokens(edition, chars).
func MatchAll(input []rune, edition Edition) (TokensMatchData, error) {
	var matches []MatchData
	pos := 0
	for pos < len(input) {
		m, err := matchOneAt(input[pos:], edition)
		if err != nil {
			if lexerrors.Is(err, lexerrors.KindModelError) {
				return TokensMatchData{}, err
			}
			// A plain reject just means no alternative matched here: the
			// run of successfully-matched tokens so far is returned with
			// consumedEntireInput=false so the caller can report where
			// tokenisation stalled.
			return TokensMatchData{Matches: matches, ConsumedEntireInput: false}, nil
		}
		matches = append(matches, m)
		pos += m.Consumed.Len()
	}
	return TokensMatchData{Matches: matches, ConsumedEntireInput: true}, nil
}
