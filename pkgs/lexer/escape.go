package lexer

import (
	"github.com/mattheww/lexeywan/pkgs/charseq"
	"github.com/mattheww/lexeywan/pkgs/lexerrors"
)

// LiteralComponent is the classification of a single LITERAL_COMPONENT
// match, carrying the most fundamental attribute defined for each kind:
// a NonEscape or SimpleEscape carries the character it represents; a
// UnicodeEscape carries its numeric value before Unicode-scalar-value
// validation; a HexadecimalEscape carries its represented byte; a
// StringContinuationEscape carries nothing.
type LiteralComponent struct {
	Kind                 LiteralComponentKind
	RepresentedCharacter rune // valid for NonEscape, SimpleEscape
	NumericValue         uint32
	RepresentedByte      byte
}

type LiteralComponentKind int

const (
	NonEscape LiteralComponentKind = iota
	SimpleEscape
	UnicodeEscape
	HexadecimalEscape
	StringContinuationEscape
)

// RepresentedCharacterOf returns the component's represented character,
// or (0, false) if it has none (a surrogate-range Unicode escape, an
// out-of-ASCII-range hexadecimal escape, or a string continuation
// escape).
func (c LiteralComponent) RepresentedCharacterOf() (rune, bool) {
	switch c.Kind {
	case NonEscape, SimpleEscape:
		return c.RepresentedCharacter, true
	case UnicodeEscape:
		if c.NumericValue > 0x10FFFF || (c.NumericValue >= 0xD800 && c.NumericValue <= 0xDFFF) {
			return 0, false
		}
		return rune(c.NumericValue), true
	case HexadecimalEscape:
		if c.RepresentedByte < 128 {
			return rune(c.RepresentedByte), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// RepresentedByteOf returns the component's represented byte, or
// (0, false) if it has none.
func (c LiteralComponent) RepresentedByteOf() (byte, bool) {
	switch c.Kind {
	case NonEscape, SimpleEscape:
		if c.RepresentedCharacter < 128 {
			return byte(c.RepresentedCharacter), true
		}
		return 0, false
	case HexadecimalEscape:
		return c.RepresentedByte, true
	default:
		return 0, false
	}
}

// matchLiteralComponentAt matches one LITERAL_COMPONENT at the start of
// input: either a single non-backslash scalar value, or one of the four
// escape shapes.
func matchLiteralComponentAt(input []rune) (MatchData, bool) {
	if len(input) == 0 {
		return MatchData{}, false
	}
	if input[0] != '\\' {
		b := &builder{}
		b.record(NTNonEscape, seq(input[:1]))
		return newMatchData(NTLiteralComponent, seq(input[:1]), b), true
	}
	if len(input) < 2 {
		return MatchData{}, false
	}
	switch input[1] {
	case '0', 't', 'n', 'r', '"', '\'', '\\':
		body := input[1:2]
		b := &builder{}
		b.record(NTEscapeBody, seq(body))
		b.record(NTSimpleEscapeBody, seq(body))
		return newMatchData(NTLiteralComponent, seq(input[:2]), b), true

	case 'x':
		if len(input) < 4 || !isAsciiHexDigit(input[2]) || !isAsciiHexDigit(input[3]) {
			return MatchData{}, false
		}
		body := input[2:4]
		b := &builder{}
		b.record(NTEscapeBody, seq(body))
		b.record(NTHexadecimalEscapeBody, seq(body))
		b.record(NTHexadecimalDigit, seq(input[2:3]))
		b.record(NTHexadecimalDigit, seq(input[3:4]))
		return newMatchData(NTLiteralComponent, seq(input[:4]), b), true

	case 'u':
		if len(input) < 3 || input[2] != '{' {
			return MatchData{}, false
		}
		j := 3
		for j < len(input) && input[j] != '}' {
			j++
		}
		if j >= len(input) {
			return MatchData{}, false
		}
		digits := input[3:j]
		if len(digits) == 0 || digits[0] == '_' {
			return MatchData{}, false
		}
		for _, d := range digits {
			if d != '_' && !isAsciiHexDigit(d) {
				return MatchData{}, false
			}
		}
		total := j + 1
		body := input[2:total]
		b := &builder{}
		b.record(NTEscapeBody, seq(body))
		b.record(NTUnicodeEscapeBody, seq(body))
		for _, d := range digits {
			if d == '_' {
				continue
			}
			b.record(NTHexadecimalDigit, seq([]rune{d}))
		}
		return newMatchData(NTLiteralComponent, seq(input[:total]), b), true

	case '\n':
		j := 2
		for j < len(input) && isPatternWhitespace(input[j]) {
			j++
		}
		body := input[1:j]
		b := &builder{}
		b.record(NTEscapeBody, seq(body))
		b.record(NTStringContinuationEscapeBody, seq(body))
		return newMatchData(NTLiteralComponent, seq(input[:j]), b), true

	default:
		return MatchData{}, false
	}
}

// classifyEscape implements "Classifying escapes" from the writeup: it
// looks at which of the ESCAPE_BODY family of subsidiary nonterminals
// participated in m and performs enough interpretation of the consumed
// text to report a LiteralComponent, or a model error if m's shape
// doesn't match any of the documented possibilities.
func classifyEscape(m MatchData) (LiteralComponent, error) {
	hasBody := m.Participated(NTEscapeBody)
	hasSimple := m.Participated(NTSimpleEscapeBody)
	hasUnicode := m.Participated(NTUnicodeEscapeBody)
	hasHex := m.Participated(NTHexadecimalEscapeBody)
	hasCont := m.Participated(NTStringContinuationEscapeBody)

	switch {
	case !hasBody && !hasSimple && !hasUnicode && !hasHex && !hasCont:
		runes := m.Consumed.Runes()
		if len(runes) != 1 {
			return LiteralComponent{}, lexerrors.ModelError("impossible non-escape: %q", m.Consumed.String())
		}
		return LiteralComponent{Kind: NonEscape, RepresentedCharacter: runes[0]}, nil

	case hasBody && hasSimple && !hasUnicode && !hasHex && !hasCont:
		body, ok, unambiguous := m.ConsumedByOnlyParticipatingMatch(NTSimpleEscapeBody)
		if !ok || !unambiguous {
			return LiteralComponent{}, lexerrors.ModelError("simple escape body did not participate exactly once")
		}
		ch, err := interpretSimpleEscapeBody(body)
		if err != nil {
			return LiteralComponent{}, err
		}
		return LiteralComponent{Kind: SimpleEscape, RepresentedCharacter: ch}, nil

	case hasBody && !hasSimple && hasUnicode && !hasHex && !hasCont:
		digits := m.ConsumedByAllParticipatingMatches(NTHexadecimalDigit)
		value, err := interpretUnicodeEscapeDigits(digits)
		if err != nil {
			return LiteralComponent{}, err
		}
		return LiteralComponent{Kind: UnicodeEscape, NumericValue: value}, nil

	case hasBody && !hasSimple && !hasUnicode && hasHex && !hasCont:
		digits := m.ConsumedByAllParticipatingMatches(NTHexadecimalDigit)
		b, err := interpretHexadecimalEscapeDigits(digits)
		if err != nil {
			return LiteralComponent{}, err
		}
		return LiteralComponent{Kind: HexadecimalEscape, RepresentedByte: b}, nil

	case hasBody && !hasSimple && !hasUnicode && !hasHex && hasCont:
		return LiteralComponent{Kind: StringContinuationEscape}, nil

	default:
		return LiteralComponent{}, lexerrors.ModelError("impossible literal-component shape")
	}
}

func interpretSimpleEscapeBody(body charseq.CharSeq) (rune, error) {
	runes := body.Runes()
	if len(runes) != 1 {
		return 0, lexerrors.ModelError("simple escape: wrong body length %d", len(runes))
	}
	switch runes[0] {
	case '0':
		return 0x0000, nil
	case 't':
		return 0x0009, nil
	case 'n':
		return 0x000a, nil
	case 'r':
		return 0x000d, nil
	case '"':
		return 0x0022, nil
	case '\'':
		return 0x0027, nil
	case '\\':
		return 0x005c, nil
	default:
		return 0, lexerrors.ModelError("simple escape: unrecognised body %q", string(runes[0]))
	}
}

func interpretUnicodeEscapeDigits(digits charseq.CharSeq) (uint32, error) {
	runes := digits.Runes()
	if len(runes) == 0 {
		return 0, lexerrors.ModelError("unicode escape: empty digits")
	}
	if len(runes) > 6 {
		return 0, lexerrors.ModelError("unicode escape: too many digits")
	}
	var value uint32
	for _, r := range runes {
		d, ok := hexDigitValue(r)
		if !ok {
			return 0, lexerrors.ModelError("unicode escape: bad digit %q", string(r))
		}
		value = value*16 + uint32(d)
	}
	return value, nil
}

func interpretHexadecimalEscapeDigits(digits charseq.CharSeq) (byte, error) {
	runes := digits.Runes()
	if len(runes) != 2 {
		return 0, lexerrors.ModelError("hexadecimal escape: wrong number of digits")
	}
	var value byte
	for _, r := range runes {
		d, ok := hexDigitValue(r)
		if !ok {
			return 0, lexerrors.ModelError("hexadecimal escape: bad digit %q", string(r))
		}
		value = value*16 + byte(d)
	}
	return value, nil
}

func hexDigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// MaybeInterpretation is the result of TrySingleEscapeInterpretation or
// TryEscapeInterpretation: either a successful interpretation, or a
// reason there wasn't one.
type MaybeInterpretation[T any] struct {
	Value  T
	Reason string
	Has    bool
}

// TrySingleEscapeInterpretation implements "Single-escape
// interpretation": charseq must match LITERAL_COMPONENT in its entirety,
// and the match must not be a string continuation escape.
func TrySingleEscapeInterpretation(cs charseq.CharSeq) (MaybeInterpretation[LiteralComponent], error) {
	runes := cs.Runes()
	m, ok := matchLiteralComponentAt(runes)
	if !ok || m.Consumed.Len() != len(runes) {
		return MaybeInterpretation[LiteralComponent]{Reason: "LITERAL_COMPONENT did not match the entire input"}, nil
	}
	component, err := classifyEscape(m)
	if err != nil {
		return MaybeInterpretation[LiteralComponent]{}, err
	}
	if component.Kind == StringContinuationEscape {
		return MaybeInterpretation[LiteralComponent]{Reason: "string continuation escape"}, nil
	}
	return MaybeInterpretation[LiteralComponent]{Value: component, Has: true}, nil
}

// TryEscapeInterpretation implements "Escape interpretation": charseq is
// matched as zero or more LITERAL_COMPONENTs consuming the entire input,
// with string continuation escapes omitted from the result.
func TryEscapeInterpretation(cs charseq.CharSeq) (MaybeInterpretation[[]LiteralComponent], error) {
	runes := cs.Runes()
	var components []LiteralComponent
	pos := 0
	for pos < len(runes) {
		m, ok := matchLiteralComponentAt(runes[pos:])
		if !ok {
			return MaybeInterpretation[[]LiteralComponent]{Reason: "LITERAL_COMPONENTS did not consume the entire input"}, nil
		}
		component, err := classifyEscape(m)
		if err != nil {
			return MaybeInterpretation[[]LiteralComponent]{}, err
		}
		if component.Kind != StringContinuationEscape {
			components = append(components, component)
		}
		pos += m.Consumed.Len()
	}
	return MaybeInterpretation[[]LiteralComponent]{Value: components, Has: true}, nil
}
