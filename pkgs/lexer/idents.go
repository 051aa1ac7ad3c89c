package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// scanIdentRunes returns the length of the maximal XID-start/XID-continue
// run at the start of input, or 0 if input doesn't start with an
// identifier.
func scanIdentRunes(input []rune) int {
	if len(input) == 0 || !charseq.XIDStart(input[0]) {
		return 0
	}
	n := 1
	for n < len(input) && charseq.XIDContinue(input[n]) {
		n++
	}
	return n
}

func matchIdent(input []rune, _ Edition) (MatchData, bool) {
	n := scanIdentRunes(input)
	if n == 0 {
		return MatchData{}, false
	}
	b := &builder{}
	return newMatchData(NTIdent, seq(input[:n]), b), true
}

// matchRawIdent matches `r#` followed by an identifier.
func matchRawIdent(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 3 || input[0] != 'r' || input[1] != '#' {
		return MatchData{}, false
	}
	n := scanIdentRunes(input[2:])
	if n == 0 {
		return MatchData{}, false
	}
	b := &builder{}
	total := 2 + n
	return newMatchData(NTRawIdent, seq(input[:total]), b), true
}

// matchLifetimeOrLabel matches `'` followed by an identifier.
func matchLifetimeOrLabel(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != '\'' {
		return MatchData{}, false
	}
	n := scanIdentRunes(input[1:])
	if n == 0 {
		return MatchData{}, false
	}
	b := &builder{}
	total := 1 + n
	return newMatchData(NTLifetimeOrLabel, seq(input[:total]), b), true
}

// matchRawLifetimeOrLabel matches `'r#` followed by an identifier.
// Only active in edition >= 2021.
func matchRawLifetimeOrLabel(input []rune, edition Edition) (MatchData, bool) {
	if edition < E2021 {
		return MatchData{}, false
	}
	if len(input) < 4 || input[0] != '\'' || input[1] != 'r' || input[2] != '#' {
		return MatchData{}, false
	}
	n := scanIdentRunes(input[3:])
	if n == 0 {
		return MatchData{}, false
	}
	b := &builder{}
	total := 3 + n
	return newMatchData(NTRawLifetimeOrLabel, seq(input[:total]), b), true
}

// matchReservedPrefix matches an identifier-or-underscore immediately
// followed by `#`, `"`, or `'`, without consuming the trigger character.
// Only active in edition >= 2021; has the same extent as a plain IDENT
// match at the same position, so it must be listed ahead of IDENT in the
// rule table to win the tie.
func matchReservedPrefix(input []rune, edition Edition) (MatchData, bool) {
	if edition < E2021 {
		return MatchData{}, false
	}
	n := scanIdentRunes(input)
	if n == 0 {
		return MatchData{}, false
	}
	if n >= len(input) {
		return MatchData{}, false
	}
	switch input[n] {
	case '#', '"', '\'':
	default:
		return MatchData{}, false
	}
	b := &builder{}
	return newMatchData(NTReservedPrefix, seq(input[:n]), b), true
}

// matchReservedLifetimePrefix matches `'` followed by an identifier
// immediately followed by `#`, without consuming the `#`. Only active in
// edition >= 2021 (this is the counterpart to raw lifetimes for a
// lifetime written as `'foo#` which isn't `'r#foo`).
func matchReservedLifetimePrefix(input []rune, edition Edition) (MatchData, bool) {
	if edition < E2021 {
		return MatchData{}, false
	}
	if len(input) < 2 || input[0] != '\'' {
		return MatchData{}, false
	}
	n := scanIdentRunes(input[1:])
	if n == 0 {
		return MatchData{}, false
	}
	total := 1 + n
	if total >= len(input) || input[total] != '#' {
		return MatchData{}, false
	}
	b := &builder{}
	return newMatchData(NTReservedLifetimePrefix, seq(input[:total]), b), true
}
