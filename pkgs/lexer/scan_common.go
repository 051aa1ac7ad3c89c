package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// matchFunc attempts to match its nonterminal at the start of input,
// returning the longest match it can build there. ok is false if the
// nonterminal does not match at this position at all.
type matchFunc func(input []rune, edition Edition) (MatchData, bool)

// alternative pairs a top-level token-kind nonterminal with the function
// that matches it, for one entry in an edition's rule table.
type alternative struct {
	nonterminal Nonterminal
	match       matchFunc
}

func isPatternWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', 0x0B, 0x0C, 0x85, 0x200E, 0x200F, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

func isAsciiHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isAsciiDigit(r rune) bool { return r >= '0' && r <= '9' }

const punctuationMarks = ";,.(){}[]@#~?:$=!<>-&|+*/^%"

func isPunctuationMark(r rune) bool {
	for _, m := range punctuationMarks {
		if m == r {
			return true
		}
	}
	return false
}

// seq builds a CharSeq from a rune slice, used pervasively when packaging
// a match's consumed text.
func seq(runes []rune) charseq.CharSeq { return charseq.New(runes) }
