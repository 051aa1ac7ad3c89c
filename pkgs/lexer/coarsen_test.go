package lexer

import "testing"

func TestCoarsenTreatsFollowingGroupAsJointEligible(t *testing.T) {
	analysis := analyseString(t, "a.(b)")
	var dotSpacing Spacing
	found := false
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation && tok.Extent.String() == "." {
			dotSpacing = tok.Spacing
			found = true
		}
	}
	if !found {
		t.Fatalf("expected to find the '.' token in the regularised output")
	}
	if dotSpacing != SpacingJoint {
		t.Fatalf("'.' immediately before a group should be Joint, got %v", dotSpacing)
	}
}

func TestCoarsenTreatsWhitespaceBeforeGroupAsAlone(t *testing.T) {
	analysis := analyseString(t, "a. (b)")
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation && tok.Extent.String() == "." {
			if tok.Spacing != SpacingAlone {
				t.Fatalf("'.' followed by whitespace then a group should be Alone, got %v", tok.Spacing)
			}
			return
		}
	}
	t.Fatalf("expected to find the '.' token in the regularised output")
}

func TestCoarsenGluesTriplePunctuation(t *testing.T) {
	analysis := analyseString(t, "a..=b")
	var punct []string
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation {
			punct = append(punct, tok.Extent.String())
		}
	}
	if len(punct) != 1 || punct[0] != "..=" {
		t.Fatalf("expected a single glued \"..=\" token, got %v", punct)
	}
}

func TestCoarsenDoesNotGlueAcrossWhitespace(t *testing.T) {
	analysis := analyseString(t, "a.. =b")
	var punct []string
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation {
			punct = append(punct, tok.Extent.String())
		}
	}
	if len(punct) != 2 || punct[0] != ".." || punct[1] != "=" {
		t.Fatalf("expected \"..\" and \"=\" to stay separate, got %v", punct)
	}
}

func TestCoarsenLeavesNonGluingPairUnjoined(t *testing.T) {
	// "+*" isn't in the pairs table, so even written Joint it must stay
	// as two separate punctuation tokens.
	analysis := analyseString(t, "a+*b")
	var punct []string
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation {
			punct = append(punct, tok.Extent.String())
		}
	}
	if len(punct) != 2 || punct[0] != "+" || punct[1] != "*" {
		t.Fatalf("expected \"+\" and \"*\" to stay separate, got %v", punct)
	}
}
