package lexer

import "testing"

func TestMatchOneAtPrefersLongestMatch(t *testing.T) {
	m, err := matchOneAt([]rune("r#raw"), DefaultEdition)
	if err != nil {
		t.Fatalf("matchOneAt model error: %v", err)
	}
	if m.MatchedNonterminal != NTRawIdent {
		t.Fatalf("matchOneAt(\"r#raw\") matched %v, want NTRawIdent", m.MatchedNonterminal)
	}
	if m.Consumed.String() != "r#raw" {
		t.Fatalf("matchOneAt(\"r#raw\") consumed %q, want the whole input", m.Consumed.String())
	}
}

func TestMatchOneAtReservedFormBeatsGeneralIdent(t *testing.T) {
	// A lone "r#" with nothing identifier-shaped after it is the reserved
	// prefix form, not a 1-character plain ident "r" followed by "#".
	m, err := matchOneAt([]rune("r#"), DefaultEdition)
	if err != nil {
		t.Fatalf("matchOneAt model error: %v", err)
	}
	if m.MatchedNonterminal != NTReservedPrefix {
		t.Fatalf("matchOneAt(\"r#\") matched %v, want NTReservedPrefix", m.MatchedNonterminal)
	}
}

func TestMatchAllConsumesWholeSimpleProgram(t *testing.T) {
	result, err := MatchAll([]rune("fn main() {}"), DefaultEdition)
	if err != nil {
		t.Fatalf("MatchAll model error: %v", err)
	}
	if !result.ConsumedEntireInput {
		t.Fatalf("expected MatchAll to consume the entire input")
	}
	if len(result.Matches) == 0 {
		t.Fatalf("expected at least one match")
	}
}

func TestMatchAllStopsAtFirstUnmatchableRune(t *testing.T) {
	result, err := MatchAll([]rune("a ` b"), DefaultEdition)
	if err != nil {
		t.Fatalf("MatchAll model error: %v", err)
	}
	if result.ConsumedEntireInput {
		t.Fatalf("expected MatchAll to stop before the unmatchable '`'")
	}
}
