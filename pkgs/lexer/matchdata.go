package lexer

import "github.com/mattheww/lexeywan/pkgs/charseq"

// elaborationEntry is one (nonterminal, consumed) pair recorded while
// building a MatchData, skipping nonterminals documented as terminals.
type elaborationEntry struct {
	nonterminal Nonterminal
	consumed    charseq.CharSeq
}

// MatchData is the record of a single successful match attempt of a
// PEG-style nonterminal: the matched nonterminal, the consumed
// characters, and the elaboration (participating subsidiary matches).
// This is a direct port of the model's pegs::MatchData.
type MatchData struct {
	MatchedNonterminal Nonterminal
	Consumed           charseq.CharSeq
	elaboration        []elaborationEntry
}

// builder accumulates elaboration entries while a matchFunc runs,
// standing in for the way a single Pest match attempt flattens all of
// its descendant pair matches into one elaboration list.
type builder struct {
	entries []elaborationEntry
}

func (b *builder) record(nt Nonterminal, consumed charseq.CharSeq) {
	if isDocumentedAsTerminal(nt) {
		return
	}
	b.entries = append(b.entries, elaborationEntry{nonterminal: nt, consumed: consumed})
}

// adopt merges a nested builder's entries into this one (used when a
// sub-rule match recurses into matchFunc and its own elaboration must be
// flattened into the parent's, matching Pest's into_inner().flatten()).
func (b *builder) adopt(child *builder) {
	b.entries = append(b.entries, child.entries...)
}

func newMatchData(nonterminal Nonterminal, consumed charseq.CharSeq, b *builder) MatchData {
	return MatchData{MatchedNonterminal: nonterminal, Consumed: consumed, elaboration: b.entries}
}

// Participated reports whether the given subsidiary nonterminal
// participated in this match.
func (m MatchData) Participated(nt Nonterminal) bool {
	for _, e := range m.elaboration {
		if e.nonterminal == nt {
			return true
		}
	}
	return false
}

// ConsumedByOnlyParticipatingMatch returns the characters consumed by the
// only participating match of nt, or (zero, false, true) if nt did not
// participate. The final bool is false if nt participated more than
// once, signalling a model error to the caller.
func (m MatchData) ConsumedByOnlyParticipatingMatch(nt Nonterminal) (charseq.CharSeq, bool, bool) {
	var found *charseq.CharSeq
	for i := range m.elaboration {
		if m.elaboration[i].nonterminal == nt {
			if found != nil {
				return charseq.CharSeq{}, false, false
			}
			found = &m.elaboration[i].consumed
		}
	}
	if found == nil {
		return charseq.CharSeq{}, false, true
	}
	return *found, true, true
}

// ConsumedByFirstParticipatingMatch returns the characters consumed by
// the first participating match of nt in this match, or (zero, false) if
// nt did not participate.
func (m MatchData) ConsumedByFirstParticipatingMatch(nt Nonterminal) (charseq.CharSeq, bool) {
	for _, e := range m.elaboration {
		if e.nonterminal == nt {
			return e.consumed, true
		}
	}
	return charseq.CharSeq{}, false
}

// ConsumedByAllParticipatingMatches concatenates the characters consumed
// by every participating match of nt, in order, per "Sequences of
// matches" in the writeup.
func (m MatchData) ConsumedByAllParticipatingMatches(nt Nonterminal) charseq.CharSeq {
	var parts []charseq.CharSeq
	for _, e := range m.elaboration {
		if e.nonterminal == nt {
			parts = append(parts, e.consumed)
		}
	}
	return charseq.Concat(parts...)
}

// CountParticipating returns how many times nt participated in this match.
func (m MatchData) CountParticipating(nt Nonterminal) int {
	n := 0
	for _, e := range m.elaboration {
		if e.nonterminal == nt {
			n++
		}
	}
	return n
}
