package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

const maxDocHashCount = 255

// ApplyDocCommentLowering replaces every doc-comment token (inner or
// outer) in tokens with the synthetic token sequence representing the
// attribute it's equivalent to: `#![doc = "body"]` for an inner
// doc-comment, `#[doc = "body"]` for an outer one. Non-doc comments and
// every other token kind pass through unchanged.
func ApplyDocCommentLowering(tokens []FineToken, edition Edition) []FineToken {
	out := make([]FineToken, 0, len(tokens))
	for _, token := range tokens {
		loweredFrom := token.Origin.Extent()
		if token.Origin.IsSynthetic() {
			loweredFrom = token.Origin.LoweredFrom()
		}
		d := token.Data
		isDocComment := (d.Kind == FineLineComment || d.Kind == FineBlockComment) &&
			(d.CommentStyle == InnerDoc || d.CommentStyle == OuterDoc)
		if !isDocComment {
			out = append(out, token)
			continue
		}
		out = append(out, lowerOneDocComment(d.Body, d.CommentStyle, loweredFrom, edition)...)
	}
	return out
}

func lowerOneDocComment(body charseq.CharSeq, style CommentStyle, loweredFrom charseq.CharSeq, edition Edition) []FineToken {
	syntheticWhitespace := func() FineToken {
		return FineToken{
			Data:   FineTokenData{Kind: FineWhitespace},
			Origin: SyntheticOrigin(loweredFrom, charseq.FromString(" ")),
		}
	}
	syntheticPunct := func(c rune) FineToken {
		return FineToken{
			Data:   FineTokenData{Kind: FinePunctuation, Mark: c},
			Origin: SyntheticOrigin(loweredFrom, charseq.New([]rune{c})),
		}
	}
	syntheticIdent := func(name string) FineToken {
		return FineToken{
			Data:   FineTokenData{Kind: FineIdent, RepresentedIdent: charseq.FromString(name)},
			Origin: SyntheticOrigin(loweredFrom, charseq.FromString(name)),
		}
	}
	syntheticRawString := func(representedString, stringified charseq.CharSeq) FineToken {
		return FineToken{
			Data:   FineTokenData{Kind: FineRawStringLiteral, RepresentedString: representedString},
			Origin: SyntheticOrigin(loweredFrom, stringified),
		}
	}

	stringified := stringifiedAsRawLiteral(body, edition)

	tokens := []FineToken{syntheticPunct('#'), syntheticWhitespace()}
	if style != OuterDoc {
		tokens = append(tokens, syntheticPunct('!'))
	}
	tokens = append(tokens,
		syntheticPunct('['),
		syntheticIdent("doc"),
		syntheticPunct('='),
		syntheticWhitespace(),
		syntheticRawString(body, stringified),
		syntheticPunct(']'),
	)
	return tokens
}

// stringifiedAsRawLiteral finds the minimal-hash-count raw string literal
// form (`r"..."`, `r#"..."#`, `r##"..."##`, ...) that represents
// representedString, by actually re-lexing each candidate and checking it
// tokenises as exactly one raw string literal consuming the whole
// candidate. Falls back to the maximum hash count if no candidate works
// (matching the attribute-printer behaviour this is ported from).
func stringifiedAsRawLiteral(representedString charseq.CharSeq, edition Edition) charseq.CharSeq {
	for hashCount := 0; hashCount < maxDocHashCount; hashCount++ {
		candidate := quoteAsRaw(representedString, hashCount)
		if lexAsSingleRawString(candidate, representedString, edition) {
			return candidate
		}
	}
	return quoteAsRaw(representedString, maxDocHashCount)
}

func quoteAsRaw(representedString charseq.CharSeq, hashCount int) charseq.CharSeq {
	runes := make([]rune, 0, 3+2*hashCount+representedString.Len())
	runes = append(runes, 'r')
	for i := 0; i < hashCount; i++ {
		runes = append(runes, '#')
	}
	runes = append(runes, '"')
	runes = append(runes, representedString.Runes()...)
	runes = append(runes, '"')
	for i := 0; i < hashCount; i++ {
		runes = append(runes, '#')
	}
	return charseq.New(runes)
}

// lexAsSingleRawString reports whether candidate lexes, in its entirety,
// to exactly one raw string literal token representing representedString
// — i.e. whether candidate is a valid way to write representedString as a
// raw string literal, with no leftover input and no ambiguity about where
// the literal ends.
func lexAsSingleRawString(candidate, representedString charseq.CharSeq, edition Edition) bool {
	runes := candidate.Runes()
	m, err := matchOneAt(runes, edition)
	if err != nil || m.Consumed.Len() != len(runes) {
		return false
	}
	verdict := Process(m, edition)
	token, ok := verdict.Value()
	if !ok {
		return false
	}
	if token.Data.Kind != FineRawStringLiteral {
		return false
	}
	return token.Data.RepresentedString.String() == representedString.String()
}
