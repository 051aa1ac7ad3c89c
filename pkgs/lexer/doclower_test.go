package lexer

import (
	"testing"

	"github.com/mattheww/lexeywan/pkgs/charseq"
)

func TestQuoteAsRawRoundTrips(t *testing.T) {
	body := charseq.FromString(`hello "world"`)
	candidate := quoteAsRaw(body, 1)
	if got, want := candidate.String(), `r#"hello "world""#`; got != want {
		t.Fatalf("quoteAsRaw = %q, want %q", got, want)
	}
}

func TestStringifiedAsRawLiteralPicksMinimalHashCount(t *testing.T) {
	// A body with no embedded quote needs no hashes at all.
	plain := charseq.FromString("plain text")
	got := stringifiedAsRawLiteral(plain, DefaultEdition)
	if got.String() != `r"plain text"` {
		t.Fatalf("stringifiedAsRawLiteral(plain) = %q, want %q", got.String(), `r"plain text"`)
	}
}

func TestStringifiedAsRawLiteralEscalatesHashCountForEmbeddedQuotes(t *testing.T) {
	body := charseq.FromString(`a "quoted" word`)
	got := stringifiedAsRawLiteral(body, DefaultEdition)
	if !lexAsSingleRawString(got, body, DefaultEdition) {
		t.Fatalf("stringifiedAsRawLiteral result %q does not re-lex to the original body", got.String())
	}
	// r"a "quoted" word" would terminate early at the first embedded
	// quote, so zero hashes must not be chosen here.
	if got.String() == `r"a "quoted" word"` {
		t.Fatalf("expected escalated hash count, got the zero-hash form")
	}
}

func TestApplyDocCommentLoweringOuterDoc(t *testing.T) {
	fine := []FineToken{
		{
			Data:   FineTokenData{Kind: FineLineComment, CommentStyle: OuterDoc, Body: charseq.FromString(" hello")},
			Origin: NaturalOrigin(charseq.FromString("/// hello")),
		},
	}
	lowered := ApplyDocCommentLowering(fine, DefaultEdition)
	if len(lowered) != 8 {
		t.Fatalf("expected 8 synthetic tokens for an outer doc comment, got %d", len(lowered))
	}
	if lowered[0].Data.Kind != FinePunctuation || lowered[0].Data.Mark != '#' {
		t.Fatalf("token 0 = %+v, want '#'", lowered[0].Data)
	}
	if lowered[1].Data.Kind != FineWhitespace {
		t.Fatalf("token 1 = %+v, want whitespace", lowered[1].Data)
	}
	if lowered[2].Data.Kind != FinePunctuation || lowered[2].Data.Mark != '[' {
		t.Fatalf("token 2 = %+v, want '['", lowered[2].Data)
	}
	if lowered[3].Data.Kind != FineIdent || lowered[3].Data.RepresentedIdent.String() != "doc" {
		t.Fatalf("token 3 = %+v, want ident \"doc\"", lowered[3].Data)
	}
	if lowered[4].Data.Kind != FinePunctuation || lowered[4].Data.Mark != '=' {
		t.Fatalf("token 4 = %+v, want '='", lowered[4].Data)
	}
	if lowered[7].Data.Kind != FinePunctuation || lowered[7].Data.Mark != ']' {
		t.Fatalf("token 7 = %+v, want ']'", lowered[7].Data)
	}
}

func TestApplyDocCommentLoweringInnerDocHasExtraBang(t *testing.T) {
	fine := []FineToken{
		{
			Data:   FineTokenData{Kind: FineLineComment, CommentStyle: InnerDoc, Body: charseq.FromString(" hello")},
			Origin: NaturalOrigin(charseq.FromString("//! hello")),
		},
	}
	lowered := ApplyDocCommentLowering(fine, DefaultEdition)
	if len(lowered) != 9 {
		t.Fatalf("expected 9 synthetic tokens for an inner doc comment, got %d", len(lowered))
	}
	if lowered[2].Data.Kind != FinePunctuation || lowered[2].Data.Mark != '!' {
		t.Fatalf("token 2 = %+v, want '!'", lowered[2].Data)
	}
}

func TestApplyDocCommentLoweringLeavesNonDocCommentsAlone(t *testing.T) {
	fine := []FineToken{
		{
			Data:   FineTokenData{Kind: FineLineComment, CommentStyle: NonDoc},
			Origin: NaturalOrigin(charseq.FromString("// plain")),
		},
	}
	lowered := ApplyDocCommentLowering(fine, DefaultEdition)
	if len(lowered) != 1 || lowered[0].Data.Kind != FineLineComment {
		t.Fatalf("expected the plain comment token to pass through unchanged, got %+v", lowered)
	}
}
