package lexer

import (
	"testing"

	"github.com/mattheww/lexeywan/pkgs/charseq"
)

func analyseString(t *testing.T, src string, opts ...Option) Analysis {
	t.Helper()
	verdict := Analyse(charseq.FromString(src), opts...)
	analysis, ok := verdict.Value()
	if !ok {
		t.Fatalf("Analyse(%q) rejected: %v", src, verdict.Reasons())
	}
	return analysis
}

func TestAnalyseAcceptsSimpleExpression(t *testing.T) {
	analysis := analyseString(t, "let x = 1 + 2;")
	if len(analysis.FineTokens) == 0 {
		t.Fatalf("expected at least one fine token")
	}
	if len(analysis.Regular) == 0 {
		t.Fatalf("expected at least one regular token")
	}
}

func TestAnalyseElidesWhitespaceInCoarseForest(t *testing.T) {
	analysis := analyseString(t, "a   b")
	var kinds []RegularTokenKind
	for _, tok := range analysis.Regular {
		kinds = append(kinds, tok.Data.Kind)
	}
	if len(kinds) != 2 {
		t.Fatalf("expected 2 regular tokens after whitespace elision, got %d (%v)", len(kinds), kinds)
	}
	for _, k := range kinds {
		if k != RegularIdentifier {
			t.Fatalf("expected identifiers only, got %v", kinds)
		}
	}
}

func TestAnalyseGluesJointPunctuation(t *testing.T) {
	analysis := analyseString(t, "a::b")
	var punctCount int
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation {
			punctCount++
		}
	}
	if punctCount != 1 {
		t.Fatalf("expected a::b to glue to a single punctuation token, got %d", punctCount)
	}
}

func TestAnalyseDoesNotGlueAcrossSpace(t *testing.T) {
	analysis := analyseString(t, "a : : b")
	var punctCount int
	for _, tok := range analysis.Regular {
		if tok.Data.Kind == RegularPunctuation {
			punctCount++
		}
	}
	if punctCount != 2 {
		t.Fatalf("expected two separate colons to stay ungrouped, got %d", punctCount)
	}
}

func TestAnalyseRejectsUnterminatedStringLiteral(t *testing.T) {
	verdict := Analyse(charseq.FromString(`"abc`))
	if !verdict.IsReject() {
		t.Fatalf("expected rejection for unterminated string, got %v", verdict)
	}
}

func TestAnalyseLiteralSuffixIsCarried(t *testing.T) {
	analysis := analyseString(t, `1u32`)
	if len(analysis.FineTokens) != 1 {
		t.Fatalf("expected a single fine token, got %d", len(analysis.FineTokens))
	}
	if got := analysis.FineTokens[0].Data.Suffix.String(); got != "u32" {
		t.Fatalf("integer literal suffix = %q, want %q", got, "u32")
	}
}

func TestAnalyseStringLiteralSuffixBecomesForbidden(t *testing.T) {
	analysis := analyseString(t, `"abc"xyz`)
	if len(analysis.Regular) != 1 {
		t.Fatalf("expected a single regular token, got %d", len(analysis.Regular))
	}
	if got := analysis.Regular[0].Data.Kind; got != RegularLiteralWithForbiddenSuffix {
		t.Fatalf("string literal with suffix regularised to %v, want RegularLiteralWithForbiddenSuffix", got)
	}
	if got := analysis.Regular[0].Data.Suffix.String(); got != "xyz" {
		t.Fatalf("forbidden suffix = %q, want %q", got, "xyz")
	}
}

func TestAnalyseCharLiteralWithoutSuffixStillRepresentsCharacter(t *testing.T) {
	analysis := analyseString(t, `'a'`)
	if len(analysis.Regular) != 1 {
		t.Fatalf("expected a single regular token, got %d", len(analysis.Regular))
	}
	data := analysis.Regular[0].Data
	if data.Kind != RegularCharacterLiteral {
		t.Fatalf("char literal regularised to %v, want RegularCharacterLiteral", data.Kind)
	}
	if data.RepresentedCharacter != 'a' {
		t.Fatalf("represented character = %q, want 'a'", data.RepresentedCharacter)
	}
}

func TestAnalyseRejectsReservedUnderscoreSuffix(t *testing.T) {
	verdict := Analyse(charseq.FromString(`'a'_`))
	if !verdict.IsReject() {
		t.Fatalf("expected char literal with suffix `_` to be rejected")
	}
}

func TestAnalyseDocCommentLoweringProducesAttributeTokens(t *testing.T) {
	analysis := analyseString(t, "/// hello\nfn f() {}", WithLowering(LowerDocComments))
	if len(analysis.FineTokens) == 0 {
		t.Fatalf("expected fine tokens")
	}
	first := analysis.FineTokens[0]
	if first.Data.Kind != FinePunctuation || first.Data.Mark != '#' {
		t.Fatalf("expected lowered doc comment to start with '#', got %+v", first.Data)
	}
}

func TestAnalyseWithoutLoweringKeepsDocCommentToken(t *testing.T) {
	analysis := analyseString(t, "/// hello\nfn f() {}")
	first := analysis.FineTokens[0]
	if first.Data.Kind != FineLineComment || first.Data.CommentStyle != OuterDoc {
		t.Fatalf("expected an unlowered outer doc comment, got %+v", first.Data)
	}
}

func TestAnalyseGroupsAreBalanced(t *testing.T) {
	verdict := Analyse(charseq.FromString("fn f() { (1 + 2] }"))
	if !verdict.IsReject() {
		t.Fatalf("expected mismatched delimiters to be rejected")
	}
}

func TestAnalyseRespectsCleaningMode(t *testing.T) {
	src := "#!/usr/bin/env run\nfn main() {}"
	// Without cleaning, the shebang line is ordinary source text and lexes
	// as punctuation and identifiers, starting with '#'.
	uncleaned := analyseString(t, src)
	if first := uncleaned.FineTokens[0].Data; first.Kind != FinePunctuation || first.Mark != '#' {
		t.Fatalf("expected the shebang line to be kept as tokens without cleaning enabled, got %+v", first)
	}
	analysis := analyseString(t, src, WithCleaning(CleanShebang))
	if len(analysis.FineTokens) == 0 {
		t.Fatalf("expected tokens after shebang cleaning")
	}
}
