// Package charseq provides CharSeq, an ordered sequence of Unicode scalar
// values. All lexer text handling goes through this type rather than Go's
// native byte strings, so that scalar-value indexing (not byte or UTF-16
// indexing) is the unit of position everywhere in the pipeline.
package charseq

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CharSeq is an immutable ordered sequence of Unicode scalar values.
type CharSeq struct {
	runes []rune
}

// New builds a CharSeq from a slice of runes. The slice is copied.
func New(runes []rune) CharSeq {
	cp := make([]rune, len(runes))
	copy(cp, runes)
	return CharSeq{runes: cp}
}

// FromString builds a CharSeq from a decoded Go string.
func FromString(s string) CharSeq {
	return CharSeq{runes: []rune(s)}
}

// Len returns the number of scalar values in the sequence.
func (c CharSeq) Len() int { return len(c.runes) }

// IsEmpty reports whether the sequence has no scalar values.
func (c CharSeq) IsEmpty() bool { return len(c.runes) == 0 }

// At returns the scalar value at scalar index i.
func (c CharSeq) At(i int) rune { return c.runes[i] }

// Slice returns the scalar values in [start, end) as a new CharSeq.
func (c CharSeq) Slice(start, end int) CharSeq {
	return New(c.runes[start:end])
}

// SliceFrom returns the scalar values from start to the end of the
// sequence.
func (c CharSeq) SliceFrom(start int) CharSeq {
	return New(c.runes[start:])
}

// Runes returns the underlying scalar values. The caller must not mutate
// the returned slice.
func (c CharSeq) Runes() []rune { return c.runes }

// String returns the sequence rendered as a Go string.
func (c CharSeq) String() string { return string(c.runes) }

// StartsWith reports whether the sequence begins with the given runes.
func (c CharSeq) StartsWith(prefix ...rune) bool {
	if len(prefix) > len(c.runes) {
		return false
	}
	for i, r := range prefix {
		if c.runes[i] != r {
			return false
		}
	}
	return true
}

// IndexRune returns the scalar index of the first occurrence of target,
// or -1 if not present.
func (c CharSeq) IndexRune(target rune) int {
	for i, r := range c.runes {
		if r == target {
			return i
		}
	}
	return -1
}

// Concat returns a new CharSeq formed by concatenating the sequences.
func Concat(seqs ...CharSeq) CharSeq {
	total := 0
	for _, s := range seqs {
		total += len(s.runes)
	}
	out := make([]rune, 0, total)
	for _, s := range seqs {
		out = append(out, s.runes...)
	}
	return CharSeq{runes: out}
}

// RemoveRange returns a new CharSeq with the scalar values in [start, end)
// removed.
func (c CharSeq) RemoveRange(start, end int) CharSeq {
	out := make([]rune, 0, len(c.runes)-(end-start))
	out = append(out, c.runes[:start]...)
	out = append(out, c.runes[end:]...)
	return CharSeq{runes: out}
}

// NFC returns the sequence normalised to Unicode Normalization Form C.
//
// This is the single point in the whole pipeline where NFC normalisation
// happens: the invariant in the writeup requires it be applied exactly
// once, at ident/raw-ident processing time.
func (c CharSeq) NFC() CharSeq {
	return FromString(norm.NFC.String(c.String()))
}

// IsNFC reports whether the sequence is already in Normalization Form C.
func (c CharSeq) IsNFC() bool {
	return norm.NFC.IsNormalString(c.String())
}

// DebugString renders the sequence for diagnostics, making non-ASCII and
// control scalar values visible as guillemet-wrapped hex escapes, e.g.
// «U+0000». Printable ASCII is rendered verbatim.
func (c CharSeq) DebugString() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range c.runes {
		if r >= 0x20 && r < 0x7f && r != '"' && r != '\\' {
			b.WriteRune(r)
			continue
		}
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			fmt.Fprintf(&b, "«U+%04X»", r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// GoString supports %#v and debug printing via go-cmp.
func (c CharSeq) GoString() string {
	return "charseq.FromString(" + fmt.Sprintf("%q", c.String()) + ")"
}

// XIDStart reports whether r can start an identifier, approximating the
// Unicode UAX #31 XID_Start property with the standard library's L and
// Nl range tables (the same approach go/scanner uses for identifiers),
// plus the ASCII underscore which the writeup's grammar treats as a
// valid identifier start.
func XIDStart(r rune) bool {
	return r == '_' || unicode.In(r, unicode.L, unicode.Nl)
}

// XIDContinue reports whether r can continue an identifier, approximating
// XID_Continue with L, Nl, Mn, Mc, Nd, Pc.
func XIDContinue(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}
