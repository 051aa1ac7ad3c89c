package lexer

import "testing"

func buildMatchData(nt Nonterminal, consumed string, children ...elaborationEntry) MatchData {
	b := &builder{entries: children}
	return newMatchData(nt, seq([]rune(consumed)), b)
}

func TestMatchDataParticipated(t *testing.T) {
	m := buildMatchData(NTIntegerLiteral, "1u32",
		elaborationEntry{nonterminal: NTDecimalIntLiteral, consumed: seq([]rune("1"))},
		elaborationEntry{nonterminal: NTIntSuffix, consumed: seq([]rune("u32"))},
	)
	if !m.Participated(NTIntSuffix) {
		t.Fatalf("Participated(NTIntSuffix) = false, want true")
	}
	if m.Participated(NTHexIntLiteral) {
		t.Fatalf("Participated(NTHexIntLiteral) = true, want false")
	}
}

func TestMatchDataConsumedByOnlyParticipatingMatch(t *testing.T) {
	m := buildMatchData(NTIntegerLiteral, "1u32",
		elaborationEntry{nonterminal: NTIntSuffix, consumed: seq([]rune("u32"))},
	)
	consumed, found, unambiguous := m.ConsumedByOnlyParticipatingMatch(NTIntSuffix)
	if !found || !unambiguous || consumed.String() != "u32" {
		t.Fatalf("ConsumedByOnlyParticipatingMatch = (%q, %v, %v), want (\"u32\", true, true)", consumed.String(), found, unambiguous)
	}

	_, found, _ = m.ConsumedByOnlyParticipatingMatch(NTHexIntLiteral)
	if found {
		t.Fatalf("ConsumedByOnlyParticipatingMatch(absent) found = true, want false")
	}
}

func TestMatchDataConsumedByOnlyParticipatingMatchAmbiguous(t *testing.T) {
	m := buildMatchData(NTLiteralComponents, "ab",
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("a"))},
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("b"))},
	)
	_, _, unambiguous := m.ConsumedByOnlyParticipatingMatch(NTLiteralComponent)
	if unambiguous {
		t.Fatalf("ConsumedByOnlyParticipatingMatch should report ambiguity when a nonterminal participates twice")
	}
}

func TestMatchDataConsumedByFirstParticipatingMatch(t *testing.T) {
	m := buildMatchData(NTLiteralComponents, "ab",
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("a"))},
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("b"))},
	)
	consumed, ok := m.ConsumedByFirstParticipatingMatch(NTLiteralComponent)
	if !ok || consumed.String() != "a" {
		t.Fatalf("ConsumedByFirstParticipatingMatch = (%q, %v), want (\"a\", true)", consumed.String(), ok)
	}
}

func TestMatchDataConsumedByAllParticipatingMatches(t *testing.T) {
	m := buildMatchData(NTLiteralComponents, "ab",
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("a"))},
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("b"))},
	)
	got := m.ConsumedByAllParticipatingMatches(NTLiteralComponent)
	if got.String() != "ab" {
		t.Fatalf("ConsumedByAllParticipatingMatches = %q, want %q", got.String(), "ab")
	}
}

func TestMatchDataCountParticipating(t *testing.T) {
	m := buildMatchData(NTLiteralComponents, "ab",
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("a"))},
		elaborationEntry{nonterminal: NTLiteralComponent, consumed: seq([]rune("b"))},
	)
	if got := m.CountParticipating(NTLiteralComponent); got != 2 {
		t.Fatalf("CountParticipating = %d, want 2", got)
	}
	if got := m.CountParticipating(NTHexIntLiteral); got != 0 {
		t.Fatalf("CountParticipating(absent) = %d, want 0", got)
	}
}

func TestBuilderRecordSkipsDocumentedAsTerminal(t *testing.T) {
	b := &builder{}
	b.record(NTTab, seq([]rune("\t")))
	b.record(NTIdent, seq([]rune("x")))
	if len(b.entries) != 1 || b.entries[0].nonterminal != NTIdent {
		t.Fatalf("builder.record entries = %+v, want only the non-terminal-documented NTIdent entry", b.entries)
	}
}

func TestBuilderAdoptFlattensChild(t *testing.T) {
	parent := &builder{}
	parent.record(NTIdent, seq([]rune("x")))
	child := &builder{}
	child.record(NTIntSuffix, seq([]rune("u32")))
	parent.adopt(child)
	if len(parent.entries) != 2 {
		t.Fatalf("adopt did not flatten child entries: %+v", parent.entries)
	}
}
