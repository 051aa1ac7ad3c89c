package lexer

import "testing"

func TestClassifyLineCommentBody(t *testing.T) {
	cases := []struct {
		content  string
		style    CommentStyle
		stripped string
	}{
		{" plain", NonDoc, ""},
		{"/ outer", OuterDoc, " outer"},
		{"! inner", InnerDoc, " inner"},
	}
	for _, c := range cases {
		style, body := classifyLineCommentBody([]rune(c.content))
		if style != c.style {
			t.Fatalf("classifyLineCommentBody(%q) style = %v, want %v", c.content, style, c.style)
		}
		if string(body) != c.stripped {
			t.Fatalf("classifyLineCommentBody(%q) body = %q, want %q", c.content, string(body), c.stripped)
		}
	}
}

func TestClassifyLineCommentBodyFourSlashesIsNonDoc(t *testing.T) {
	// "////" comment: after the opening "//", the content is "//", which
	// must classify as NonDoc, not OuterDoc.
	style, body := classifyLineCommentBody([]rune("//"))
	if style != NonDoc {
		t.Fatalf("classifyLineCommentBody(\"//\") style = %v, want NonDoc", style)
	}
	if len(body) != 0 {
		t.Fatalf("classifyLineCommentBody(\"//\") body = %q, want empty", string(body))
	}
}

func TestClassifyBlockCommentBody(t *testing.T) {
	cases := []struct {
		content  string
		style    CommentStyle
		stripped string
	}{
		{"", NonDoc, ""},
		{"*", NonDoc, ""},         // "/***/": lone star, nothing follows
		{"* hi", OuterDoc, " hi"}, // "/** hi*/"
		{"**", NonDoc, ""},        // "/****/"
		{"**hi", NonDoc, ""},      // "/****hi*/"
		{"! hi", InnerDoc, " hi"}, // "/*! hi*/"
	}
	for _, c := range cases {
		style, body := classifyBlockCommentBody([]rune(c.content))
		if style != c.style {
			t.Fatalf("classifyBlockCommentBody(%q) style = %v, want %v", c.content, style, c.style)
		}
		if string(body) != c.stripped {
			t.Fatalf("classifyBlockCommentBody(%q) body = %q, want %q", c.content, string(body), c.stripped)
		}
	}
}

func TestAnalyseOuterDocLineCommentRejectsBareCR(t *testing.T) {
	verdict := Analyse(seq([]rune("/// doc\rmore\n")))
	if !verdict.IsReject() {
		t.Fatalf("expected bare CR in outer doc comment to be rejected")
	}
}

func TestAnalysePlainLineCommentAllowsBareCR(t *testing.T) {
	// A plain (non-doc) comment's content is never inspected for CR, so a
	// stray CR inside one is accepted (it isn't part of a doc comment's
	// represented body).
	verdict := Analyse(seq([]rune("// plain\rmore\n")))
	if !verdict.IsAccept() {
		t.Fatalf("expected plain comment with bare CR to be accepted, got %v", verdict.Reasons())
	}
}
