package lexer

import (
	"fmt"

	"github.com/mattheww/lexeywan/pkgs/charseq"
	"github.com/mattheww/lexeywan/pkgs/lexerrors"
)

// reject and modelError build single-reason Verdicts from a format
// string, since lexerrors.Rejects/ModelErrors take pre-formatted reason
// strings rather than a format and args.
func reject(format string, args ...any) lexerrors.Verdict[FineToken] {
	return lexerrors.Rejects[FineToken](fmt.Sprintf(format, args...))
}

func modelError(format string, args ...any) lexerrors.Verdict[FineToken] {
	return lexerrors.ModelErrors[FineToken](fmt.Sprintf(format, args...))
}

// isReservedNonterminal reports whether nt is one of the reserved
// top-level nonterminals, which are matched only so that Process can
// reject them.
func isReservedNonterminal(nt Nonterminal) bool {
	switch nt {
	case NTUnterminatedBlockComment, NTUnterminatedSingleQuoted, NTUnterminatedDoubleQuoted,
		NTReservedPrefix, NTReservedLifetimePrefix, NTReservedGuard,
		NTReservedEmptyExponent, NTReservedBasedFloat:
		return true
	default:
		return false
	}
}

// forbiddenIdentNames are names a raw ident (after NFC normalisation) or
// a raw lifetime/label must not spell; plain forms may use them.
var forbiddenIdentNames = map[string]bool{
	"_":     true,
	"crate": true,
	"self":  true,
	"super": true,
	"Self":  true,
}

// ForbiddenIdentName reports whether name is one of the five names a raw
// ident or raw lifetime/label must not spell, after NFC normalisation.
// Exported so callers outside this package (the identcheck CLI
// subcommand) can preview the same check Process applies.
func ForbiddenIdentName(name string) bool {
	return forbiddenIdentNames[name]
}

const maxHashCount = 255

// Process turns a single top-level MatchData into a FineToken, per the
// writeup's Processing page: this is where escape interpretation,
// identifier normalisation, and every other per-kind validation happens
// that the PEG grammar alone can't express.
func Process(m MatchData, edition Edition) lexerrors.Verdict[FineToken] {
	if isReservedNonterminal(m.MatchedNonterminal) {
		return reject("reserved form: %s", m.MatchedNonterminal)
	}

	origin := NaturalOrigin(m.Consumed)

	switch m.MatchedNonterminal {
	case NTWhitespace:
		return lexerrors.Accepts(FineToken{Data: FineTokenData{Kind: FineWhitespace}, Origin: origin})

	case NTLineComment:
		style, body := commentStyleAndBody(m, false)
		if style != NonDoc && containsCR(body) {
			return reject("line doc comment: bare carriage return is not allowed")
		}
		return lexerrors.Accepts(FineToken{
			Data:   FineTokenData{Kind: FineLineComment, CommentStyle: style, Body: seq(body)},
			Origin: origin,
		})

	case NTBlockComment:
		style, body := commentStyleAndBody(m, true)
		if style != NonDoc && containsCR(body) {
			return reject("block doc comment: bare carriage return is not allowed")
		}
		return lexerrors.Accepts(FineToken{
			Data:   FineTokenData{Kind: FineBlockComment, CommentStyle: style, Body: seq(body)},
			Origin: origin,
		})

	case NTPunctuation:
		runes := m.Consumed.Runes()
		return lexerrors.Accepts(FineToken{
			Data:   FineTokenData{Kind: FinePunctuation, Mark: runes[0]},
			Origin: origin,
		})

	case NTIdent:
		return processIdent(m, origin, false)
	case NTRawIdent:
		return processIdent(m, origin, true)

	case NTLifetimeOrLabel:
		return processLifetime(m, origin, false)
	case NTRawLifetimeOrLabel:
		return processLifetime(m, origin, true)

	case NTCharLiteral:
		return processCharLiteral(m, origin)
	case NTByteLiteral:
		return processByteLiteral(m, origin)
	case NTStringLiteral:
		return processStringLiteral(m, origin)
	case NTByteStringLiteral:
		return processByteStringLiteral(m, origin)
	case NTCStringLiteral:
		return processCStringLiteral(m, origin)
	case NTRawStringLiteral:
		return processRawStringLiteral(m, origin)
	case NTRawByteStringLiteral:
		return processRawByteStringLiteral(m, origin)
	case NTRawCStringLiteral:
		return processRawCStringLiteral(m, origin)

	case NTIntegerLiteral:
		return processIntegerLiteral(m, origin)
	case NTFloatLiteral:
		return processFloatLiteral(m, origin)

	default:
		return modelError("Process called on unexpected nonterminal %s", m.MatchedNonterminal)
	}
}

func identSuffixCheck(suffix charseq.CharSeq) error {
	if suffix.String() == "_" {
		return lexerrors.Reject("literal suffix `_` is reserved")
	}
	return nil
}

// containsCR reports whether runes contains a bare carriage return. Only
// doc comments reject this; a plain comment's content is never inspected
// beyond finding its extent.
func containsCR(runes []rune) bool {
	for _, r := range runes {
		if r == '\r' {
			return true
		}
	}
	return false
}

func extractSuffix(m MatchData, nt Nonterminal) charseq.CharSeq {
	body, ok := m.ConsumedByFirstParticipatingMatch(nt)
	if !ok {
		return charseq.CharSeq{}
	}
	return body
}

func processIdent(m MatchData, origin Origin, raw bool) lexerrors.Verdict[FineToken] {
	runes := m.Consumed.Runes()
	if raw {
		runes = runes[2:] // drop the "r#" marker
	}
	normalised := seq(runes).NFC()
	// Only the raw form rejects the five forbidden names: plain "self" is
	// an ordinary identifier at this layer (keyword-ness is a parser
	// concern), but "r#self" exists to escape keyword status and these
	// five are carved out of that escape.
	if raw && forbiddenIdentNames[normalised.String()] {
		return reject("%q is a forbidden raw ident", normalised.String())
	}
	kind := FineIdent
	if raw {
		kind = FineRawIdent
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: kind, RepresentedIdent: normalised},
		Origin: origin,
	})
}

func processLifetime(m MatchData, origin Origin, raw bool) lexerrors.Verdict[FineToken] {
	// Unlike idents, a lifetime/label name is taken verbatim: NFC is
	// applied exactly once in the whole pipeline, at ident/raw-ident
	// processing, not here.
	runes := m.Consumed.Runes()
	start := 1
	if raw {
		start = 3
	}
	name := seq(runes[start:])
	if raw && forbiddenIdentNames[name.String()] {
		return reject("%q is a forbidden raw lifetime or label", name.String())
	}
	kind := FineLifetimeOrLabel
	if raw {
		kind = FineRawLifetimeOrLabel
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: kind, Name: name},
		Origin: origin,
	})
}

func processCharLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, _ := m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	interp, err := TrySingleEscapeInterpretation(body)
	if err != nil {
		return modelError("char literal: %v", err)
	}
	if !interp.Has {
		return reject("char literal: %s", interp.Reason)
	}
	ch, ok := interp.Value.RepresentedCharacterOf()
	if !ok {
		return reject("char literal: escape does not represent a scalar value")
	}
	if interp.Value.Kind == NonEscape && (ch == '\t' || ch == '\n' || ch == '\r') {
		return reject("char literal: bare control character must be escaped")
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineCharLiteral, RepresentedCharacter: ch, Suffix: suffix},
		Origin: origin,
	})
}

func processByteLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, _ := m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	interp, err := TrySingleEscapeInterpretation(body)
	if err != nil {
		return modelError("byte literal: %v", err)
	}
	if !interp.Has {
		return reject("byte literal: %s", interp.Reason)
	}
	if interp.Value.Kind == UnicodeEscape {
		return reject("byte literal: unicode escapes are not allowed")
	}
	b, ok := interp.Value.RepresentedByteOf()
	if !ok {
		return reject("byte literal: escape does not represent a byte")
	}
	if interp.Value.Kind == NonEscape && (b == '\t' || b == '\n' || b == '\r') {
		return reject("byte literal: bare control character must be escaped")
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineByteLiteral, RepresentedByte: b, Suffix: suffix},
		Origin: origin,
	})
}

func processStringLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, _ := m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	interp, err := TryEscapeInterpretation(body)
	if err != nil {
		return modelError("string literal: %v", err)
	}
	if !interp.Has {
		return reject("string literal: %s", interp.Reason)
	}
	var out []rune
	for _, c := range interp.Value {
		ch, ok := c.RepresentedCharacterOf()
		if !ok {
			return reject("string literal: escape does not represent a scalar value")
		}
		if c.Kind == NonEscape && ch == '\r' {
			return reject("string literal: bare carriage return must be escaped")
		}
		out = append(out, ch)
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineStringLiteral, RepresentedString: seq(out), Suffix: suffix},
		Origin: origin,
	})
}

func processByteStringLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, _ := m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	interp, err := TryEscapeInterpretation(body)
	if err != nil {
		return modelError("byte string literal: %v", err)
	}
	if !interp.Has {
		return reject("byte string literal: %s", interp.Reason)
	}
	var out []byte
	for _, c := range interp.Value {
		if c.Kind == UnicodeEscape {
			return reject("byte string literal: unicode escapes are not allowed")
		}
		b, ok := c.RepresentedByteOf()
		if !ok {
			return reject("byte string literal: escape does not represent a byte")
		}
		if c.Kind == NonEscape && b == '\r' {
			return reject("byte string literal: bare carriage return must be escaped")
		}
		out = append(out, b)
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineByteStringLiteral, RepresentedBytes: out, Suffix: suffix},
		Origin: origin,
	})
}

func processCStringLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, _ := m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	interp, err := TryEscapeInterpretation(body)
	if err != nil {
		return modelError("c-string literal: %v", err)
	}
	if !interp.Has {
		return reject("c-string literal: %s", interp.Reason)
	}
	var out []byte
	for _, c := range interp.Value {
		if ch, ok := c.RepresentedCharacterOf(); ok && ch < 128 {
			if ch == 0 {
				return reject("c-string literal: embedded NUL is not allowed")
			}
			if c.Kind == NonEscape && ch == '\r' {
				return reject("c-string literal: bare carriage return must be escaped")
			}
			out = append(out, []byte(string(ch))...)
			continue
		}
		if ch, ok := c.RepresentedCharacterOf(); ok {
			out = append(out, []byte(string(ch))...)
			continue
		}
		if b, ok := c.RepresentedByteOf(); ok {
			if b == 0 {
				return reject("c-string literal: embedded NUL is not allowed")
			}
			out = append(out, b)
			continue
		}
		return reject("c-string literal: escape has no representable value")
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineCStringLiteral, RepresentedBytes: out, Suffix: suffix},
		Origin: origin,
	})
}

func rawBodyAndHashes(m MatchData) (body charseq.CharSeq, hashCount int) {
	body, _ = m.ConsumedByFirstParticipatingMatch(NTLiteralBody)
	hashes, _ := m.ConsumedByFirstParticipatingMatch(NTHashes)
	return body, hashes.Len()
}

func processRawStringLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, hashCount := rawBodyAndHashes(m)
	if hashCount > maxHashCount {
		return reject("raw string literal: more than %d hashes", maxHashCount)
	}
	for _, r := range body.Runes() {
		if r == '\r' {
			return reject("raw string literal: bare carriage return is not allowed")
		}
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineRawStringLiteral, RepresentedString: body, Suffix: suffix},
		Origin: origin,
	})
}

func processRawByteStringLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, hashCount := rawBodyAndHashes(m)
	if hashCount > maxHashCount {
		return reject("raw byte string literal: more than %d hashes", maxHashCount)
	}
	var out []byte
	for _, r := range body.Runes() {
		if r == '\r' {
			return reject("raw byte string literal: bare carriage return is not allowed")
		}
		if r >= 128 {
			return reject("raw byte string literal: non-ASCII scalar value")
		}
		out = append(out, byte(r))
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineRawByteStringLiteral, RepresentedBytes: out, Suffix: suffix},
		Origin: origin,
	})
}

func processRawCStringLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	body, hashCount := rawBodyAndHashes(m)
	if hashCount > maxHashCount {
		return reject("raw c-string literal: more than %d hashes", maxHashCount)
	}
	var out []byte
	for _, r := range body.Runes() {
		if r == 0 {
			return reject("raw c-string literal: embedded NUL is not allowed")
		}
		if r == '\r' {
			return reject("raw c-string literal: bare carriage return is not allowed")
		}
		out = append(out, []byte(string(r))...)
	}
	suffix := extractSuffix(m, NTLiteralSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}
	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineRawCStringLiteral, RepresentedBytes: out, Suffix: suffix},
		Origin: origin,
	})
}

func processIntegerLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	var base NumericBase
	var maxDigit rune
	switch {
	case m.Participated(NTBinaryIntLiteral):
		base, maxDigit = Binary, '1'
	case m.Participated(NTOctalIntLiteral):
		base, maxDigit = Octal, '7'
	case m.Participated(NTHexIntLiteral):
		base = Hexadecimal
	case m.Participated(NTDecimalIntLiteral):
		base = Decimal
	default:
		return modelError("integer literal: no base-specific submatch participated")
	}

	digits, ok := m.ConsumedByFirstParticipatingMatch(NTIntDigits)
	if !ok {
		return modelError("integer literal: INT_DIGITS did not participate")
	}
	if !hasNonUnderscoreDigit(digits.Runes()) {
		return reject("integer literal: digit sequence is all underscores")
	}
	if base == Binary || base == Octal {
		for _, r := range digits.Runes() {
			if r == '_' {
				continue
			}
			if r > maxDigit {
				return reject("integer literal: digit %q is out of range for %s", string(r), base)
			}
		}
	}

	suffix := extractSuffix(m, NTIntSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}

	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineIntegerLiteral, Base: base, Digits: digits, Suffix: suffix},
		Origin: origin,
	})
}

func processFloatLiteral(m MatchData, origin Origin) lexerrors.Verdict[FineToken] {
	participating := 0
	var body charseq.CharSeq
	for _, nt := range []Nonterminal{NTFloatWithExponent, NTFloatWithoutExponent, NTFloatWithFinalDot} {
		if c, ok := m.ConsumedByFirstParticipatingMatch(nt); ok {
			participating++
			body = c
		}
	}
	if participating != 1 {
		return modelError("float literal: expected exactly one shape to participate, saw %d", participating)
	}

	suffix := extractSuffix(m, NTFloatSuffix)
	if err := identSuffixCheck(suffix); err != nil {
		return reject("%v", err)
	}

	return lexerrors.Accepts(FineToken{
		Data:   FineTokenData{Kind: FineFloatLiteral, FloatBody: body, Suffix: suffix},
		Origin: origin,
	})
}
