package lexer

import "testing"

func punctToken(mark rune) FineToken {
	return FineToken{Data: FineTokenData{Kind: FinePunctuation, Mark: mark}, Origin: NaturalOrigin(seq([]rune{mark}))}
}

func identToken(name string) FineToken {
	return FineToken{Data: FineTokenData{Kind: FineIdent, RepresentedIdent: seq([]rune(name))}, Origin: NaturalOrigin(seq([]rune(name)))}
}

func TestConstructForestBalancedNesting(t *testing.T) {
	tokens := []FineToken{punctToken('('), identToken("x"), punctToken('['), identToken("y"), punctToken(']'), punctToken(')')}
	verdict := ConstructForest(tokens)
	forest, ok := verdict.Value()
	if !ok {
		t.Fatalf("ConstructForest(balanced) did not accept: %v", verdict.Reasons())
	}
	if len(forest.Contents) != 1 || !forest.Contents[0].IsGroup || forest.Contents[0].Kind != Parenthesised {
		t.Fatalf("top level = %+v, want a single parenthesised group", forest.Contents)
	}
	inner := forest.Contents[0].Group
	if len(inner.Contents) != 2 || !inner.Contents[1].IsGroup || inner.Contents[1].Kind != Bracketed {
		t.Fatalf("inner contents = %+v, want [ident, bracketed group]", inner.Contents)
	}
}

func TestConstructForestMissingCloser(t *testing.T) {
	tokens := []FineToken{punctToken('('), identToken("x")}
	verdict := ConstructForest(tokens)
	if !verdict.IsReject() {
		t.Fatalf("ConstructForest with a missing closer should reject")
	}
}

func TestConstructForestMismatchedCloser(t *testing.T) {
	tokens := []FineToken{punctToken('('), identToken("x"), punctToken('}')}
	verdict := ConstructForest(tokens)
	if !verdict.IsReject() {
		t.Fatalf("ConstructForest with a mismatched closer should reject")
	}
}

func TestConstructForestUnexpectedTopLevelCloser(t *testing.T) {
	tokens := []FineToken{identToken("x"), punctToken(')')}
	verdict := ConstructForest(tokens)
	if !verdict.IsReject() {
		t.Fatalf("ConstructForest with an unmatched top-level closer should reject")
	}
}

func TestMapForestPreservesGroupStructure(t *testing.T) {
	inner := NewForest[int]()
	inner.Push(TokenTree(1))
	outer := NewForest[int]()
	outer.Push(TokenTree(0))
	outer.Push(GroupTree(Braced, inner))

	mapped := MapForest(outer, func(n int) int { return n * 10 })
	if len(mapped.Contents) != 2 || mapped.Contents[0].Token != 0 {
		t.Fatalf("mapped top level = %+v", mapped.Contents)
	}
	if !mapped.Contents[1].IsGroup || mapped.Contents[1].Kind != Braced {
		t.Fatalf("mapped group not preserved: %+v", mapped.Contents[1])
	}
	if got := mapped.Contents[1].Group.Contents[0].Token; got != 10 {
		t.Fatalf("mapped inner token = %d, want 10", got)
	}
}

func TestCombiningMapCanDropAndPeek(t *testing.T) {
	forest := NewForest[int]()
	for _, n := range []int{1, 2, 4, 3} {
		forest.Push(TokenTree(n))
	}
	// Drop odd values, and sum any even value immediately followed by
	// another even value (consuming that follower), to exercise both the
	// peek and the drop paths through one CombiningMap call.
	out := CombiningMap(forest, func(n int, rest *cursor[int]) (int, bool) {
		if n%2 != 0 {
			return 0, false
		}
		if next, ok := rest.Peek(); ok && !next.IsGroup && next.Token%2 == 0 {
			rest.Next()
			return n + next.Token, true
		}
		return n, true
	})
	if len(out.Contents) != 1 || out.Contents[0].Token != 6 {
		t.Fatalf("CombiningMap result = %+v, want a single token 6 (2+4)", out.Contents)
	}
}

func TestGroupKindOpenCloseChars(t *testing.T) {
	cases := []struct {
		kind       GroupKind
		open, close rune
	}{
		{Parenthesised, '(', ')'},
		{Braced, '{', '}'},
		{Bracketed, '[', ']'},
	}
	for _, c := range cases {
		if c.kind.OpenChar() != c.open || c.kind.CloseChar() != c.close {
			t.Fatalf("GroupKind %v chars = (%c,%c), want (%c,%c)", c.kind, c.kind.OpenChar(), c.kind.CloseChar(), c.open, c.close)
		}
	}
	if _, ok := GroupKindForOpenChar('<'); ok {
		t.Fatalf("GroupKindForOpenChar('<') should fail: '<' isn't a delimiter in this grammar")
	}
	if _, ok := GroupKindForCloseChar('<'); ok {
		t.Fatalf("GroupKindForCloseChar('<') should fail")
	}
}
