package lexer

import (
	"github.com/mattheww/lexeywan/pkgs/charseq"
	"github.com/mattheww/lexeywan/pkgs/lexerrors"
)

const byteOrderMark rune = 0xFEFF

// removeBOM strips a single leading byte-order-mark scalar value, if
// present.
func removeBOM(input []rune) []rune {
	if len(input) > 0 && input[0] == byteOrderMark {
		return input[1:]
	}
	return input
}

// replaceCRLF drops every '\r' that is immediately followed by '\n',
// leaving the '\n' in place — CRLF normalisation by deletion rather than
// substitution.
func replaceCRLF(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for i, c := range input {
		if c == '\r' && i+1 < len(input) && input[i+1] == '\n' {
			continue
		}
		out = append(out, c)
	}
	return out
}

// firstNonWhitespaceToken matches and processes tokens from the start of
// input until it finds one that isn't whitespace (real whitespace or a
// non-doc comment), returning that token. Returns false if tokenisation
// runs out of input, or hits a reject/model-error, before finding one.
func firstNonWhitespaceToken(input []rune, edition Edition) (FineToken, bool) {
	pos := 0
	for pos < len(input) {
		m, err := matchOneAt(input[pos:], edition)
		if err != nil {
			return FineToken{}, false
		}
		verdict := Process(m, edition)
		tok, ok := verdict.Value()
		if !ok {
			return FineToken{}, false
		}
		if !tok.Data.IsWhitespace() {
			return tok, true
		}
		pos += m.Consumed.Len()
	}
	return FineToken{}, false
}

// cleanShebang performs shebang removal: a leading `#!` line is dropped
// up to, but not including, its LF, unless the first non-whitespace token
// after the `#!` (whitespace and non-doc comments are skipped) is `[`,
// which makes it an inner attribute, not a shebang.
func cleanShebang(input []rune, edition Edition) []rune {
	if len(input) < 2 || input[0] != '#' || input[1] != '!' {
		return input
	}
	if tok, ok := firstNonWhitespaceToken(input[2:], edition); ok {
		if mark, isDelim := tok.Data.AsDelimiter(); isDelim && mark == '[' {
			return input
		}
	}
	for i, c := range input {
		if c == '\n' {
			return input[i:]
		}
	}
	return nil
}

// frontmatterFence describes one border line of a frontmatter block: a
// run of 3 or more '-' at the start of a line, optionally followed (on
// the opening fence only) by an infostring of ident-continue characters,
// then only whitespace up to the line's end.
type frontmatterFence struct {
	dashCount int
	lineEnd   int // index one past the line's terminating '\n', or len(input)
}

// scanFrontmatterFence scans a candidate fence line starting at pos.
// allowInfostring permits (and skips) a trailing infostring, used for
// the opening fence only.
func scanFrontmatterFence(input []rune, pos int, allowInfostring bool) (frontmatterFence, bool) {
	i := pos
	dashCount := 0
	for i < len(input) && input[i] == '-' {
		dashCount++
		i++
	}
	if dashCount < 3 {
		return frontmatterFence{}, false
	}
	if allowInfostring {
		for i < len(input) && (charseq.XIDContinue(input[i]) || input[i] == '-') {
			i++
		}
	}
	for i < len(input) && isPatternWhitespace(input[i]) && input[i] != '\n' {
		i++
	}
	if i < len(input) && input[i] != '\n' {
		return frontmatterFence{}, false
	}
	lineEnd := i
	if i < len(input) {
		lineEnd = i + 1
	}
	return frontmatterFence{dashCount: dashCount, lineEnd: lineEnd}, true
}

// findFrontmatter looks for a frontmatter block at the very start of
// input: an opening fence of 3+ dashes (with an optional infostring),
// content lines, and a closing fence of exactly as many dashes as the
// opening one. Returns the length of the block to remove, whether one
// was found at all, and whether what was found is the reserved
// malformed form (an opening fence with no valid closing fence).
func findFrontmatter(input []rune) (removeLen int, found bool, reserved bool) {
	open, ok := scanFrontmatterFence(input, 0, true)
	if !ok {
		return 0, false, false
	}
	pos := open.lineEnd
	for pos <= len(input) {
		lineStart := pos
		if close, ok := scanFrontmatterFence(input, lineStart, false); ok && close.dashCount == open.dashCount {
			return close.lineEnd, true, false
		}
		next := -1
		for i := lineStart; i < len(input); i++ {
			if input[i] == '\n' {
				next = i + 1
				break
			}
		}
		if next == -1 {
			break
		}
		pos = next
	}
	return 0, false, true
}

// Clean applies every pre-tokenisation transformation implied by mode:
// BOM removal and CRLF normalisation always, shebang removal for
// CleanShebang and above, frontmatter removal for
// CleanShebangAndFrontmatter.
func Clean(input charseq.CharSeq, edition Edition, mode CleaningMode) lexerrors.Verdict[charseq.CharSeq] {
	runes := removeBOM(input.Runes())
	runes = replaceCRLF(runes)

	if mode == CleanShebang || mode == CleanShebangAndFrontmatter {
		runes = cleanShebang(runes, edition)
	}

	if mode == CleanShebangAndFrontmatter {
		removeLen, found, reserved := findFrontmatter(runes)
		if reserved {
			return lexerrors.Rejects[charseq.CharSeq]("malformed frontmatter")
		}
		if found {
			runes = runes[removeLen:]
		}
	}

	return lexerrors.Accepts(charseq.New(runes))
}

// CleanForMacroInput applies the cleaning behaviour used for input to a
// declarative macro: CRLF normalisation only, regardless of the
// requested cleaning mode (macro input is never a whole source file, so
// BOM/shebang/frontmatter stripping don't apply).
func CleanForMacroInput(input charseq.CharSeq, _ Edition) charseq.CharSeq {
	return charseq.New(replaceCRLF(input.Runes()))
}
