package lexer

// matchWhitespace matches a maximal run of pattern-white-space scalar
// values.
func matchWhitespace(input []rune, _ Edition) (MatchData, bool) {
	n := 0
	for n < len(input) && isPatternWhitespace(input[n]) {
		n++
	}
	if n == 0 {
		return MatchData{}, false
	}
	b := &builder{}
	return newMatchData(NTWhitespace, seq(input[:n]), b), true
}

// classifyLineCommentBody classifies the text following a line comment's
// opening `//`, returning its doc style and the body with any leading
// doc marker (`/` or `!`) stripped off. A third or later leading slash,
// as in `////`, marks a non-doc comment.
func classifyLineCommentBody(content []rune) (CommentStyle, []rune) {
	switch {
	case len(content) >= 2 && content[0] == '/' && content[1] == '/':
		return NonDoc, nil
	case len(content) >= 1 && content[0] == '/':
		return OuterDoc, content[1:]
	case len(content) >= 1 && content[0] == '!':
		return InnerDoc, content[1:]
	default:
		return NonDoc, nil
	}
}

// classifyBlockCommentBody classifies the text between a block comment's
// delimiters the same way, except the outer-doc marker is `*` rather
// than `/`, and a lone `*` with nothing following it (as in `/***/`)
// doesn't count as a doc comment.
func classifyBlockCommentBody(content []rune) (CommentStyle, []rune) {
	switch {
	case len(content) >= 2 && content[0] == '*' && content[1] == '*':
		return NonDoc, nil
	case len(content) >= 2 && content[0] == '*':
		return OuterDoc, content[1:]
	case len(content) >= 1 && content[0] == '!':
		return InnerDoc, content[1:]
	default:
		return NonDoc, nil
	}
}

// matchLineComment matches `//` followed by a run of non-LF scalar
// values.
func matchLineComment(input []rune, _ Edition) (MatchData, bool) {
	if len(input) < 2 || input[0] != '/' || input[1] != '/' {
		return MatchData{}, false
	}
	n := 2
	for n < len(input) && input[n] != '\n' {
		n++
	}
	body := input[2:n]
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	m := newMatchData(NTLineComment, seq(input[:n]), b)
	return m, true
}

// matchBlockComment matches a correctly nested `/* ... */` block
// comment, or reports the reserved unterminated form.
func matchBlockComment(input []rune, edition Edition) (MatchData, bool) {
	return matchBlockCommentGeneric(input, edition, NTBlockComment, true)
}

func matchUnterminatedBlockComment(input []rune, edition Edition) (MatchData, bool) {
	return matchBlockCommentGeneric(input, edition, NTUnterminatedBlockComment, false)
}

// matchBlockCommentGeneric implements nested-comment balancing by
// tracking depth; wantTerminated selects whether a terminated or
// unterminated match is being attempted (these are two distinct
// top-level alternatives so the unique-longest-match property can see
// them separately, matching the way the writeup models "unterminated
// block comment" as its own reserved nonterminal).
func matchBlockCommentGeneric(input []rune, _ Edition, nt Nonterminal, wantTerminated bool) (MatchData, bool) {
	if len(input) < 2 || input[0] != '/' || input[1] != '*' {
		return MatchData{}, false
	}
	depth := 1
	i := 2
	for i < len(input) && depth > 0 {
		switch {
		case i+1 < len(input) && input[i] == '/' && input[i+1] == '*':
			depth++
			i += 2
		case i+1 < len(input) && input[i] == '*' && input[i+1] == '/':
			depth--
			i += 2
		default:
			i++
		}
	}
	terminated := depth == 0
	if terminated != wantTerminated {
		return MatchData{}, false
	}
	var body []rune
	if terminated {
		body = input[2 : i-2]
	} else {
		body = input[2:i]
	}
	b := &builder{}
	b.record(NTLiteralBody, seq(body))
	return newMatchData(nt, seq(input[:i]), b), true
}

// commentStyleAndBody extracts the CommentStyle and doc-marker-stripped
// body recorded by matchLineComment/matchBlockComment, for use by
// Process. isBlock selects which of the two sibling classification rules
// applies (line comments use `/`/`!` as doc markers, block comments use
// `*`/`!`).
func commentStyleAndBody(m MatchData, isBlock bool) (CommentStyle, []rune) {
	body, _ := m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	runes := body.Runes()
	if isBlock {
		return classifyBlockCommentBody(runes)
	}
	return classifyLineCommentBody(runes)
}
